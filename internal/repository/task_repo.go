package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lifehub/internal/db"
)

type TaskRepository struct {
	DB *sql.DB
}

func NewTaskRepository(database *sql.DB) *TaskRepository {
	return &TaskRepository{DB: database}
}

const taskColumns = `id, owner_id, title, notes, due_at, priority, status, created_at, updated_at`

func scanTask(row interface{ Scan(...interface{}) error }) (*db.Task, error) {
	var t db.Task
	var due sql.NullTime
	err := row.Scan(&t.ID, &t.OwnerID, &t.Title, &t.Notes, &due, &t.Priority, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if due.Valid {
		t.DueAt = &due.Time
	}
	return &t, nil
}

func (r *TaskRepository) ListTasks(ctx context.Context, ownerID, status string) ([]db.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE owner_id = $1`
	args := []interface{}{ownerID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY due_at ASC NULLS LAST, created_at ASC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying tasks: %w", err)
	}
	defer rows.Close()

	var tasks []db.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

// ListTasksDueBefore returns pending tasks whose due time is before the given
// cutoff. The cutoff comes from the caller so "overdue" stays deterministic.
func (r *TaskRepository) ListTasksDueBefore(ctx context.Context, ownerID string, cutoff time.Time) ([]db.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE owner_id = $1 AND status = 'pending' AND due_at IS NOT NULL AND due_at < $2
		ORDER BY due_at ASC`
	rows, err := r.DB.QueryContext(ctx, query, ownerID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("error querying overdue tasks: %w", err)
	}
	defer rows.Close()

	var tasks []db.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

// ListTasksDueBetween returns pending tasks due within [from, to).
func (r *TaskRepository) ListTasksDueBetween(ctx context.Context, ownerID string, from, to time.Time) ([]db.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE owner_id = $1 AND status = 'pending' AND due_at >= $2 AND due_at < $3
		ORDER BY due_at ASC`
	rows, err := r.DB.QueryContext(ctx, query, ownerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying tasks due in window: %w", err)
	}
	defer rows.Close()

	var tasks []db.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) GetTask(ctx context.Context, ownerID, id string) (*db.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND owner_id = $2`
	t, err := scanTask(r.DB.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task '%s' not found: %w", id, err)
		}
		return nil, fmt.Errorf("error querying task: %w", err)
	}
	return t, nil
}

func (r *TaskRepository) CreateTask(ctx context.Context, t *db.Task) error {
	query := `
		INSERT INTO tasks (id, owner_id, title, notes, due_at, priority, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`
	return r.DB.QueryRowContext(ctx, query,
		t.ID, t.OwnerID, t.Title, t.Notes, t.DueAt, t.Priority, t.Status, t.CreatedAt, t.UpdatedAt,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
}

func (r *TaskRepository) UpdateTask(ctx context.Context, t *db.Task) error {
	query := `
		UPDATE tasks
		SET title = $3, notes = $4, due_at = $5, priority = $6, status = $7, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2`
	result, err := r.DB.ExecContext(ctx, query, t.ID, t.OwnerID, t.Title, t.Notes, t.DueAt, t.Priority, t.Status)
	if err != nil {
		return fmt.Errorf("error updating task: %w", err)
	}
	return requireRow(result, "task", t.ID)
}

func (r *TaskRepository) DeleteTask(ctx context.Context, ownerID, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("error deleting task: %w", err)
	}
	return requireRow(result, "task", id)
}
