package entities

import (
	"time"

	"lifehub/internal/db"
)

type ExpenseRequest struct {
	Category   string    `json:"category"`
	AmountCent int64     `json:"amount_cent"`
	Currency   string    `json:"currency"`
	IncurredAt time.Time `json:"incurred_at"`
	Notes      string    `json:"notes"`
}

type ExpenseResponse struct {
	ID         string    `json:"id"`
	Category   string    `json:"category"`
	AmountCent int64     `json:"amount_cent"`
	Currency   string    `json:"currency"`
	IncurredAt time.Time `json:"incurred_at"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type ExpenseCategorySummary struct {
	Category  string `json:"category"`
	Count     int    `json:"count"`
	TotalCent int64  `json:"total_cent"`
}

type ExpenseSummary struct {
	From       time.Time                `json:"from"`
	To         time.Time                `json:"to"`
	TotalCent  int64                    `json:"total_cent"`
	Categories []ExpenseCategorySummary `json:"categories"`
}

func ExpenseToResponse(e *db.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:         e.ID,
		Category:   e.Category,
		AmountCent: e.AmountCent,
		Currency:   e.Currency,
		IncurredAt: e.IncurredAt,
		Notes:      e.Notes,
		CreatedAt:  e.CreatedAt,
	}
}
