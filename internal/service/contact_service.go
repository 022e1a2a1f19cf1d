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

type ContactService struct {
	Repo *repository.ContactRepository
}

func NewContactService(repo *repository.ContactRepository) *ContactService {
	return &ContactService{Repo: repo}
}

func (s *ContactService) CreateContact(ctx context.Context, ownerID string, req *entities.ContactRequest) (*db.Contact, error) {
	if req.FullName == "" {
		return nil, apperrors.ErrBadRequest("contact name is required")
	}
	now := time.Now().UTC()
	contact := &db.Contact{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.CreateContact(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *ContactService) ListContacts(ctx context.Context, ownerID, q string) ([]db.Contact, error) {
	return s.Repo.ListContacts(ctx, ownerID, q)
}

func (s *ContactService) GetContact(ctx context.Context, ownerID, id string) (*db.Contact, error) {
	return s.Repo.GetContact(ctx, ownerID, id)
}

func (s *ContactService) UpdateContact(ctx context.Context, ownerID, id string, req *entities.ContactRequest) (*db.Contact, error) {
	contact, err := s.Repo.GetContact(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	contact.FullName = req.FullName
	contact.Email = req.Email
	contact.Phone = req.Phone
	contact.Company = req.Company
	contact.Notes = req.Notes
	if err := s.Repo.UpdateContact(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *ContactService) DeleteContact(ctx context.Context, ownerID, id string) error {
	return s.Repo.DeleteContact(ctx, ownerID, id)
}
