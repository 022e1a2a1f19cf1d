package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lifehub/internal/db"
	"lifehub/internal/entities"
)

type ExpenseRepository struct {
	DB *sql.DB
}

func NewExpenseRepository(database *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{DB: database}
}

const expenseColumns = `id, owner_id, category, amount_cent, currency, incurred_at, notes, created_at`

func scanExpense(row interface{ Scan(...interface{}) error }) (*db.Expense, error) {
	var e db.Expense
	err := row.Scan(&e.ID, &e.OwnerID, &e.Category, &e.AmountCent, &e.Currency, &e.IncurredAt, &e.Notes, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ExpenseRepository) ListExpenses(ctx context.Context, ownerID string, from, to time.Time) ([]db.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses
		WHERE owner_id = $1 AND incurred_at >= $2 AND incurred_at <= $3
		ORDER BY incurred_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, ownerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying expenses: %w", err)
	}
	defer rows.Close()

	var expenses []db.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning expense: %w", err)
		}
		expenses = append(expenses, *e)
	}
	return expenses, rows.Err()
}

// SummarizeExpenses groups the owner's spend by category for a range.
func (r *ExpenseRepository) SummarizeExpenses(ctx context.Context, ownerID string, from, to time.Time) ([]entities.ExpenseCategorySummary, error) {
	query := `
		SELECT category, COUNT(*), SUM(amount_cent)
		FROM expenses
		WHERE owner_id = $1 AND incurred_at >= $2 AND incurred_at <= $3
		GROUP BY category
		ORDER BY SUM(amount_cent) DESC`
	rows, err := r.DB.QueryContext(ctx, query, ownerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying expense summary: %w", err)
	}
	defer rows.Close()

	var summary []entities.ExpenseCategorySummary
	for rows.Next() {
		var s entities.ExpenseCategorySummary
		if err := rows.Scan(&s.Category, &s.Count, &s.TotalCent); err != nil {
			return nil, fmt.Errorf("error scanning expense summary: %w", err)
		}
		summary = append(summary, s)
	}
	return summary, rows.Err()
}

func (r *ExpenseRepository) GetExpense(ctx context.Context, ownerID, id string) (*db.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1 AND owner_id = $2`
	e, err := scanExpense(r.DB.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("expense '%s' not found: %w", id, err)
		}
		return nil, fmt.Errorf("error querying expense: %w", err)
	}
	return e, nil
}

func (r *ExpenseRepository) CreateExpense(ctx context.Context, e *db.Expense) error {
	query := `
		INSERT INTO expenses (id, owner_id, category, amount_cent, currency, incurred_at, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`
	return r.DB.QueryRowContext(ctx, query,
		e.ID, e.OwnerID, e.Category, e.AmountCent, e.Currency, e.IncurredAt, e.Notes, e.CreatedAt,
	).Scan(&e.CreatedAt)
}

func (r *ExpenseRepository) UpdateExpense(ctx context.Context, e *db.Expense) error {
	query := `
		UPDATE expenses
		SET category = $3, amount_cent = $4, currency = $5, incurred_at = $6, notes = $7
		WHERE id = $1 AND owner_id = $2`
	result, err := r.DB.ExecContext(ctx, query, e.ID, e.OwnerID, e.Category, e.AmountCent, e.Currency, e.IncurredAt, e.Notes)
	if err != nil {
		return fmt.Errorf("error updating expense: %w", err)
	}
	return requireRow(result, "expense", e.ID)
}

func (r *ExpenseRepository) DeleteExpense(ctx context.Context, ownerID, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("error deleting expense: %w", err)
	}
	return requireRow(result, "expense", id)
}
