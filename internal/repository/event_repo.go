package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lifehub/internal/db"
)

type EventRepository struct {
	DB *sql.DB
}

func NewEventRepository(database *sql.DB) *EventRepository {
	return &EventRepository{DB: database}
}

const eventColumns = `id, owner_id, title, description, location, start_time, end_time,
		timezone, is_online, attendees, status, reminder_sent, created_at, updated_at`

func scanEvent(row interface{ Scan(...interface{}) error }) (*db.Event, error) {
	var ev db.Event
	var attendees []byte
	err := row.Scan(
		&ev.ID, &ev.OwnerID, &ev.Title, &ev.Description, &ev.Location, &ev.Start, &ev.End,
		&ev.Timezone, &ev.IsOnline, &attendees, &ev.Status, &ev.ReminderSent, &ev.CreatedAt, &ev.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(attendees) > 0 {
		if err := json.Unmarshal(attendees, &ev.Attendees); err != nil {
			return nil, fmt.Errorf("error decoding attendees for event %s: %w", ev.ID, err)
		}
	}
	return &ev, nil
}

// ListEvents returns the owner's events whose start falls within
// [rangeStart, rangeEnd], ordered by start ascending. This is the snapshot
// the scheduling engine computes over.
func (r *EventRepository) ListEvents(ctx context.Context, ownerID string, rangeStart, rangeEnd time.Time) ([]db.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE owner_id = $1 AND start_time >= $2 AND start_time <= $3
		ORDER BY start_time ASC`

	rows, err := r.DB.QueryContext(ctx, query, ownerID, rangeStart, rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("error querying events: %w", err)
	}
	defer rows.Close()

	var events []db.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning event: %w", err)
		}
		events = append(events, *ev)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating event rows: %w", err)
	}
	return events, nil
}

func (r *EventRepository) GetEvent(ctx context.Context, ownerID, id string) (*db.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 AND owner_id = $2`
	ev, err := scanEvent(r.DB.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("event '%s' not found: %w", id, err)
		}
		return nil, fmt.Errorf("error querying event: %w", err)
	}
	return ev, nil
}

func (r *EventRepository) CreateEvent(ctx context.Context, ev *db.Event) error {
	attendees, err := json.Marshal(ev.Attendees)
	if err != nil {
		return fmt.Errorf("error encoding attendees: %w", err)
	}
	query := `
		INSERT INTO events
		(id, owner_id, title, description, location, start_time, end_time, timezone, is_online, attendees, status, reminder_sent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at`
	return r.DB.QueryRowContext(ctx, query,
		ev.ID, ev.OwnerID, ev.Title, ev.Description, ev.Location, ev.Start, ev.End,
		ev.Timezone, ev.IsOnline, attendees, ev.Status, ev.ReminderSent, ev.CreatedAt, ev.UpdatedAt,
	).Scan(&ev.CreatedAt, &ev.UpdatedAt)
}

func (r *EventRepository) UpdateEvent(ctx context.Context, ev *db.Event) error {
	attendees, err := json.Marshal(ev.Attendees)
	if err != nil {
		return fmt.Errorf("error encoding attendees: %w", err)
	}
	query := `
		UPDATE events
		SET title = $3, description = $4, location = $5, start_time = $6, end_time = $7,
			timezone = $8, is_online = $9, attendees = $10, status = $11, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2`
	result, err := r.DB.ExecContext(ctx, query,
		ev.ID, ev.OwnerID, ev.Title, ev.Description, ev.Location, ev.Start, ev.End,
		ev.Timezone, ev.IsOnline, attendees, ev.Status,
	)
	if err != nil {
		return fmt.Errorf("error updating event: %w", err)
	}
	return requireRow(result, "event", ev.ID)
}

func (r *EventRepository) DeleteEvent(ctx context.Context, ownerID, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}
	return requireRow(result, "event", id)
}

func requireRow(result sql.Result, kind, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s '%s' not found: %w", kind, id, sql.ErrNoRows)
	}
	return nil
}
