package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lifehub/internal/db"
	"lifehub/internal/entities"
	apperrors "lifehub/internal/errors"
	"lifehub/internal/repository"
)

type ExpenseService struct {
	Repo *repository.ExpenseRepository
}

func NewExpenseService(repo *repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{Repo: repo}
}

func (s *ExpenseService) CreateExpense(ctx context.Context, ownerID string, req *entities.ExpenseRequest) (*db.Expense, error) {
	if req.AmountCent <= 0 {
		return nil, apperrors.ErrBadRequest("expense amount must be positive")
	}
	if req.Category == "" {
		return nil, apperrors.ErrBadRequest("expense category is required")
	}
	currency := req.Currency
	if currency == "" {
		currency = "eur"
	}
	incurred := req.IncurredAt
	if incurred.IsZero() {
		incurred = time.Now().UTC()
	}
	expense := &db.Expense{
		ID:         uuid.NewString(),
		OwnerID:    ownerID,
		Category:   req.Category,
		AmountCent: req.AmountCent,
		Currency:   currency,
		IncurredAt: incurred,
		Notes:      req.Notes,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.CreateExpense(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseService) ListExpenses(ctx context.Context, ownerID string, from, to time.Time) ([]db.Expense, error) {
	if to.Before(from) {
		return nil, apperrors.ErrBadRequest("range end precedes range start")
	}
	return s.Repo.ListExpenses(ctx, ownerID, from, to)
}

func (s *ExpenseService) Summary(ctx context.Context, ownerID string, from, to time.Time) (*entities.ExpenseSummary, error) {
	if to.Before(from) {
		return nil, apperrors.ErrBadRequest("range end precedes range start")
	}
	categories, err := s.Repo.SummarizeExpenses(ctx, ownerID, from, to)
	if err != nil {
		return nil, err
	}
	summary := &entities.ExpenseSummary{From: from, To: to, Categories: categories}
	for _, c := range categories {
		summary.TotalCent += c.TotalCent
	}
	return summary, nil
}

func (s *ExpenseService) GetExpense(ctx context.Context, ownerID, id string) (*db.Expense, error) {
	return s.Repo.GetExpense(ctx, ownerID, id)
}

func (s *ExpenseService) UpdateExpense(ctx context.Context, ownerID, id string, req *entities.ExpenseRequest) (*db.Expense, error) {
	expense, err := s.Repo.GetExpense(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if req.AmountCent <= 0 {
		return nil, apperrors.ErrBadRequest("expense amount must be positive")
	}
	expense.Category = req.Category
	expense.AmountCent = req.AmountCent
	if req.Currency != "" {
		expense.Currency = req.Currency
	}
	if !req.IncurredAt.IsZero() {
		expense.IncurredAt = req.IncurredAt
	}
	expense.Notes = req.Notes
	if err := s.Repo.UpdateExpense(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, ownerID, id string) error {
	return s.Repo.DeleteExpense(ctx, ownerID, id)
}
