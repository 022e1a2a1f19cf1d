package entities

import (
	"time"

	"lifehub/internal/db"
)

type TaskRequest struct {
	Title    string     `json:"title"`
	Notes    string     `json:"notes"`
	DueAt    *time.Time `json:"due_at"`
	Priority string     `json:"priority"`
	Status   string     `json:"status"` // not sent on create
}

type TaskResponse struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Notes     string     `json:"notes,omitempty"`
	DueAt     *time.Time `json:"due_at,omitempty"`
	Priority  string     `json:"priority"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func TaskToResponse(t *db.Task) TaskResponse {
	return TaskResponse{
		ID:        t.ID,
		Title:     t.Title,
		Notes:     t.Notes,
		DueAt:     t.DueAt,
		Priority:  t.Priority,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
