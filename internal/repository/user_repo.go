package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lifehub/internal/db"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*db.User, error)
	GetByID(ctx context.Context, id string) (*db.User, error)
	CreateUser(ctx context.Context, u *db.User) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(database *sql.DB) UserRepository {
	return &userRepository{db: database}
}

const userColumns = `id, email, full_name, phone, password_hash, plan, stripe_session_id, payment_status, created_at, updated_at`

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*db.User, error) {
	var u db.User
	err := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email).Scan(
		&u.ID, &u.Email, &u.FullName, &u.Phone, &u.PasswordHash, &u.Plan,
		&u.StripeSessionID, &u.PaymentStatus, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*db.User, error) {
	var u db.User
	err := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id).Scan(
		&u.ID, &u.Email, &u.FullName, &u.Phone, &u.PasswordHash, &u.Plan,
		&u.StripeSessionID, &u.PaymentStatus, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user '%s' not found: %w", id, err)
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) CreateUser(ctx context.Context, u *db.User) error {
	query := `
		INSERT INTO users (id, email, full_name, phone, password_hash, plan, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query, u.ID, u.Email, u.FullName, u.Phone, u.PasswordHash, u.Plan, u.CreatedAt, u.UpdatedAt)
	return err
}
