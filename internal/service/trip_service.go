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

type TripService struct {
	Repo *repository.TripRepository
}

func NewTripService(repo *repository.TripRepository) *TripService {
	return &TripService{Repo: repo}
}

func (s *TripService) CreateTrip(ctx context.Context, ownerID string, req *entities.TripRequest) (*db.Trip, error) {
	if req.Destination == "" {
		return nil, apperrors.ErrBadRequest("trip destination is required")
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, apperrors.ErrBadRequest("trip end date precedes start date")
	}
	now := time.Now().UTC()
	trip := &db.Trip{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Notes:       req.Notes,
		Status:      "planned",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.CreateTrip(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

func (s *TripService) ListTrips(ctx context.Context, ownerID, status string) ([]db.Trip, error) {
	return s.Repo.ListTrips(ctx, ownerID, status)
}

func (s *TripService) GetTrip(ctx context.Context, ownerID, id string) (*db.Trip, error) {
	return s.Repo.GetTrip(ctx, ownerID, id)
}

func (s *TripService) UpdateTrip(ctx context.Context, ownerID, id string, req *entities.TripRequest) (*db.Trip, error) {
	if req.EndDate.Before(req.StartDate) {
		return nil, apperrors.ErrBadRequest("trip end date precedes start date")
	}
	trip, err := s.Repo.GetTrip(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	trip.Destination = req.Destination
	trip.StartDate = req.StartDate
	trip.EndDate = req.EndDate
	trip.Notes = req.Notes
	if req.Status != "" {
		trip.Status = req.Status
	}
	if err := s.Repo.UpdateTrip(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

func (s *TripService) DeleteTrip(ctx context.Context, ownerID, id string) error {
	return s.Repo.DeleteTrip(ctx, ownerID, id)
}
