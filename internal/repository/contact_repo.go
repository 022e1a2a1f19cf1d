package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lifehub/internal/db"
)

type ContactRepository struct {
	DB *sql.DB
}

func NewContactRepository(database *sql.DB) *ContactRepository {
	return &ContactRepository{DB: database}
}

const contactColumns = `id, owner_id, full_name, email, phone, company, notes, created_at, updated_at`

func scanContact(row interface{ Scan(...interface{}) error }) (*db.Contact, error) {
	var c db.Contact
	err := row.Scan(&c.ID, &c.OwnerID, &c.FullName, &c.Email, &c.Phone, &c.Company, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListContacts returns the owner's contacts, optionally filtered by a
// case-insensitive name/email/company match.
func (r *ContactRepository) ListContacts(ctx context.Context, ownerID, q string) ([]db.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE owner_id = $1`
	args := []interface{}{ownerID}
	if q != "" {
		query += ` AND (full_name ILIKE $2 OR email ILIKE $2 OR company ILIKE $2)`
		args = append(args, "%"+q+"%")
	}
	query += ` ORDER BY full_name ASC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying contacts: %w", err)
	}
	defer rows.Close()

	var contacts []db.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning contact: %w", err)
		}
		contacts = append(contacts, *c)
	}
	return contacts, rows.Err()
}

func (r *ContactRepository) GetContact(ctx context.Context, ownerID, id string) (*db.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1 AND owner_id = $2`
	c, err := scanContact(r.DB.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("contact '%s' not found: %w", id, err)
		}
		return nil, fmt.Errorf("error querying contact: %w", err)
	}
	return c, nil
}

func (r *ContactRepository) CreateContact(ctx context.Context, c *db.Contact) error {
	query := `
		INSERT INTO contacts (id, owner_id, full_name, email, phone, company, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`
	return r.DB.QueryRowContext(ctx, query,
		c.ID, c.OwnerID, c.FullName, c.Email, c.Phone, c.Company, c.Notes, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
}

func (r *ContactRepository) UpdateContact(ctx context.Context, c *db.Contact) error {
	query := `
		UPDATE contacts
		SET full_name = $3, email = $4, phone = $5, company = $6, notes = $7, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2`
	result, err := r.DB.ExecContext(ctx, query, c.ID, c.OwnerID, c.FullName, c.Email, c.Phone, c.Company, c.Notes)
	if err != nil {
		return fmt.Errorf("error updating contact: %w", err)
	}
	return requireRow(result, "contact", c.ID)
}

func (r *ContactRepository) DeleteContact(ctx context.Context, ownerID, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("error deleting contact: %w", err)
	}
	return requireRow(result, "contact", id)
}
