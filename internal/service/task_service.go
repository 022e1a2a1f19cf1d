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

type TaskService struct {
	Repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{Repo: repo}
}

func (s *TaskService) CreateTask(ctx context.Context, ownerID string, req *entities.TaskRequest) (*db.Task, error) {
	if req.Title == "" {
		return nil, apperrors.ErrBadRequest("task title is required")
	}
	priority := req.Priority
	if priority == "" {
		priority = "normal"
	}
	now := time.Now().UTC()
	task := &db.Task{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Title:     req.Title,
		Notes:     req.Notes,
		DueAt:     req.DueAt,
		Priority:  priority,
		Status:    "pending",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.CreateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// ListTasks supports the plain list plus the "overdue" and "today" views. The
// reference instant comes from the caller so both views stay deterministic.
func (s *TaskService) ListTasks(ctx context.Context, ownerID, view, status string, now time.Time) ([]db.Task, error) {
	switch view {
	case "":
		return s.Repo.ListTasks(ctx, ownerID, status)
	case "overdue":
		return s.Repo.ListTasksDueBefore(ctx, ownerID, now)
	case "today":
		y, m, d := now.Date()
		from := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
		return s.Repo.ListTasksDueBetween(ctx, ownerID, from, from.AddDate(0, 0, 1))
	default:
		return nil, apperrors.ErrBadRequest("unknown view: " + view)
	}
}

func (s *TaskService) GetTask(ctx context.Context, ownerID, id string) (*db.Task, error) {
	return s.Repo.GetTask(ctx, ownerID, id)
}

func (s *TaskService) UpdateTask(ctx context.Context, ownerID, id string, req *entities.TaskRequest) (*db.Task, error) {
	task, err := s.Repo.GetTask(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	task.Title = req.Title
	task.Notes = req.Notes
	task.DueAt = req.DueAt
	if req.Priority != "" {
		task.Priority = req.Priority
	}
	if req.Status != "" {
		task.Status = req.Status
	}
	if err := s.Repo.UpdateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, ownerID, id string) error {
	return s.Repo.DeleteTask(ctx, ownerID, id)
}
