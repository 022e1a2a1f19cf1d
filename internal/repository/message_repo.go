package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lifehub/internal/db"
)

type MessageRepository struct {
	DB *sql.DB
}

func NewMessageRepository(database *sql.DB) *MessageRepository {
	return &MessageRepository{DB: database}
}

const messageColumns = `id, owner_id, folder, from_addr, to_addr, subject, body, read, created_at`

func scanMessage(row interface{ Scan(...interface{}) error }) (*db.Message, error) {
	var m db.Message
	err := row.Scan(&m.ID, &m.OwnerID, &m.Folder, &m.FromAddr, &m.ToAddr, &m.Subject, &m.Body, &m.Read, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MessageRepository) ListMessages(ctx context.Context, ownerID, folder string, limit, offset int) ([]db.Message, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	query := `SELECT ` + messageColumns + ` FROM messages WHERE owner_id = $1 AND folder = $2
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.DB.QueryContext(ctx, query, ownerID, folder, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error querying messages: %w", err)
	}
	defer rows.Close()

	var messages []db.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning message: %w", err)
		}
		messages = append(messages, *m)
	}
	return messages, rows.Err()
}

func (r *MessageRepository) GetMessage(ctx context.Context, ownerID, id string) (*db.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE id = $1 AND owner_id = $2`
	m, err := scanMessage(r.DB.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("message '%s' not found: %w", id, err)
		}
		return nil, fmt.Errorf("error querying message: %w", err)
	}
	return m, nil
}

func (r *MessageRepository) CreateMessage(ctx context.Context, m *db.Message) error {
	query := `
		INSERT INTO messages (id, owner_id, folder, from_addr, to_addr, subject, body, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`
	return r.DB.QueryRowContext(ctx, query,
		m.ID, m.OwnerID, m.Folder, m.FromAddr, m.ToAddr, m.Subject, m.Body, m.Read, m.CreatedAt,
	).Scan(&m.CreatedAt)
}

func (r *MessageRepository) MarkMessageRead(ctx context.Context, ownerID, id string) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE messages SET read = TRUE WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("error marking message read: %w", err)
	}
	return requireRow(result, "message", id)
}

func (r *MessageRepository) DeleteMessage(ctx context.Context, ownerID, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM messages WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("error deleting message: %w", err)
	}
	return requireRow(result, "message", id)
}
