package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type BillingRepository struct {
	DB *sql.DB
}

func NewBillingRepository(database *sql.DB) *BillingRepository {
	return &BillingRepository{DB: database}
}

// SetCheckoutSession records the Stripe checkout session opened for a user.
func (r *BillingRepository) SetCheckoutSession(ctx context.Context, userID, sessionID, paymentStatus string) error {
	query := `UPDATE users SET stripe_session_id = $2, payment_status = $3, updated_at = NOW() WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, userID, sessionID, paymentStatus)
	return err
}

// UpdatePlanBySessionID moves the user attached to a checkout session onto a
// plan and returns the user id.
func (r *BillingRepository) UpdatePlanBySessionID(ctx context.Context, sessionID, plan, paymentStatus string) (string, error) {
	query := `UPDATE users SET plan = $2, payment_status = $3, updated_at = NOW()
		WHERE stripe_session_id = $1 RETURNING id`
	var userID string
	err := r.DB.QueryRowContext(ctx, query, sessionID, plan, paymentStatus).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("no user for checkout session '%s': %w", sessionID, err)
		}
		return "", fmt.Errorf("error updating plan by session: %w", err)
	}
	return userID, nil
}
