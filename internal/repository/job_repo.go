package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/lib/pq"

	"lifehub/internal/db"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(database *sql.DB) *JobRepository {
	return &JobRepository{DB: database}
}

// GetConfirmedEventIDsPastEnd returns ids of confirmed events whose end time
// has already passed.
func (r *JobRepository) GetConfirmedEventIDsPastEnd(ctx context.Context) ([]string, error) {
	query := `SELECT id FROM events WHERE status = 'confirmed' AND end_time < NOW()`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying confirmed events past end time: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning event ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return ids, nil
}

// UpdateEventStatuses bulk-updates the given events to a new status.
func (r *JobRepository) UpdateEventStatuses(ctx context.Context, ids []string, newStatus string) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE events SET status = $1, updated_at = NOW() WHERE id = ANY($2)`
	result, err := r.DB.ExecContext(ctx, query, newStatus, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("error updating event statuses: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Could not get rows affected: %v", err)
	} else {
		log.Printf("Updated status for %d events to '%s'", rowsAffected, newStatus)
	}
	return nil
}

// GetEventsNeedingReminder returns confirmed events, with their owner's
// contact details, that start within (now, until] and have not been reminded.
func (r *JobRepository) GetEventsNeedingReminder(ctx context.Context, until time.Time) ([]ReminderInfo, error) {
	query := `
		SELECT e.id, e.owner_id, e.title, e.location, e.start_time, e.end_time, e.timezone, e.is_online,
			u.email, u.full_name, u.phone
		FROM events e
		JOIN users u ON u.id = e.owner_id
		WHERE e.status = 'confirmed'
			AND e.reminder_sent = FALSE
			AND e.start_time > NOW()
			AND e.start_time <= $1
		ORDER BY e.start_time ASC`
	rows, err := r.DB.QueryContext(ctx, query, until)
	if err != nil {
		return nil, fmt.Errorf("error querying events needing reminder: %w", err)
	}
	defer rows.Close()

	var out []ReminderInfo
	for rows.Next() {
		var ri ReminderInfo
		err := rows.Scan(&ri.Event.ID, &ri.Event.OwnerID, &ri.Event.Title, &ri.Event.Location,
			&ri.Event.Start, &ri.Event.End, &ri.Event.Timezone, &ri.Event.IsOnline,
			&ri.OwnerEmail, &ri.OwnerName, &ri.OwnerPhone)
		if err != nil {
			return nil, fmt.Errorf("error scanning reminder row: %w", err)
		}
		out = append(out, ri)
	}
	return out, rows.Err()
}

// ReminderInfo pairs an upcoming event with the owner's contact details.
type ReminderInfo struct {
	Event      db.Event
	OwnerEmail string
	OwnerName  string
	OwnerPhone string
}

// MarkRemindersSent flags events whose reminder went out.
func (r *JobRepository) MarkRemindersSent(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.DB.ExecContext(ctx, `UPDATE events SET reminder_sent = TRUE, updated_at = NOW() WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("error marking reminders sent: %w", err)
	}
	return nil
}

// MarkOverdueTasks flips pending tasks past their due time to 'overdue'.
func (r *JobRepository) MarkOverdueTasks(ctx context.Context) (int64, error) {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE tasks SET status = 'overdue', updated_at = NOW()
		 WHERE status = 'pending' AND due_at IS NOT NULL AND due_at < NOW()`)
	if err != nil {
		return 0, fmt.Errorf("error marking overdue tasks: %w", err)
	}
	return result.RowsAffected()
}
