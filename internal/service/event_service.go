package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lifehub/internal/db"
	"lifehub/internal/entities"
	apperrors "lifehub/internal/errors"
	"lifehub/internal/repository"
	"lifehub/internal/scheduling"
)

const (
	statusConfirmed = "confirmed"
	statusCompleted = "completed"
	statusCanceled  = "canceled"
)

type EventService struct {
	Repo   *repository.EventRepository
	engine *scheduling.Engine
}

func NewEventService(repo *repository.EventRepository) *EventService {
	return &EventService{
		Repo:   repo,
		engine: scheduling.NewEngine(repo),
	}
}

func (s *EventService) CreateEvent(ctx context.Context, ownerID string, req *entities.EventRequest) (*db.Event, error) {
	if !req.Start.Before(req.End) {
		return nil, apperrors.ErrBadRequest("event start must be before end")
	}
	conflict, err := s.engine.HasConflict(ctx, ownerID, req.Start, req.End, "")
	if err != nil {
		return nil, fmt.Errorf("checking conflicts before create: %w", err)
	}
	if conflict {
		return nil, apperrors.ErrConflict("event overlaps an existing event")
	}

	now := time.Now().UTC()
	ev := &db.Event{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Start:       req.Start,
		End:         req.End,
		Timezone:    req.Timezone,
		IsOnline:    req.IsOnline,
		Attendees:   req.Attendees,
		Status:      statusConfirmed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.CreateEvent(ctx, ev); err != nil {
		return nil, fmt.Errorf("creating event: %w", err)
	}
	return ev, nil
}

func (s *EventService) GetEvent(ctx context.Context, ownerID, id string) (*db.Event, error) {
	return s.Repo.GetEvent(ctx, ownerID, id)
}

func (s *EventService) ListEvents(ctx context.Context, ownerID string, rangeStart, rangeEnd time.Time) ([]db.Event, error) {
	if rangeEnd.Before(rangeStart) {
		return nil, apperrors.ErrBadRequest("range end precedes range start")
	}
	return s.Repo.ListEvents(ctx, ownerID, rangeStart, rangeEnd)
}

// UpdateEvent verifies ownership, re-checks conflicts with the event itself
// excluded, and persists the new version.
func (s *EventService) UpdateEvent(ctx context.Context, ownerID, id string, req *entities.EventRequest) (*db.Event, error) {
	if !req.Start.Before(req.End) {
		return nil, apperrors.ErrBadRequest("event start must be before end")
	}
	ev, err := s.Repo.GetEvent(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	conflict, err := s.engine.HasConflict(ctx, ownerID, req.Start, req.End, id)
	if err != nil {
		return nil, fmt.Errorf("checking conflicts before update: %w", err)
	}
	if conflict {
		return nil, apperrors.ErrConflict("updated time overlaps another event")
	}

	ev.Title = req.Title
	ev.Description = req.Description
	ev.Location = req.Location
	ev.Start = req.Start
	ev.End = req.End
	ev.Timezone = req.Timezone
	ev.IsOnline = req.IsOnline
	ev.Attendees = req.Attendees
	if req.Status != "" {
		ev.Status = req.Status
	}
	if err := s.Repo.UpdateEvent(ctx, ev); err != nil {
		return nil, fmt.Errorf("updating event: %w", err)
	}
	return ev, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, ownerID, id string) error {
	return s.Repo.DeleteEvent(ctx, ownerID, id)
}

func (s *EventService) HasConflict(ctx context.Context, ownerID string, start, end time.Time, excludeID string) (bool, error) {
	return s.engine.HasConflict(ctx, ownerID, start, end, excludeID)
}

func (s *EventService) FindSlots(ctx context.Context, ownerID string, req scheduling.SlotRequest) ([]scheduling.Slot, error) {
	return s.engine.FindSlots(ctx, ownerID, req)
}

func (s *EventService) Stats(ctx context.Context, ownerID string, rangeStart, rangeEnd time.Time) (*scheduling.ScheduleStats, error) {
	return s.engine.Stats(ctx, ownerID, rangeStart, rangeEnd)
}
