package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"lifehub/internal/db"
	"lifehub/internal/entities"
	apperrors "lifehub/internal/errors"
	"lifehub/internal/repository"
)

type MailService struct {
	Repo *repository.MessageRepository
}

func NewMailService(repo *repository.MessageRepository) *MailService {
	return &MailService{Repo: repo}
}

func (s *MailService) ListMessages(ctx context.Context, ownerID, folder string, limit, offset int) ([]db.Message, error) {
	if folder == "" {
		folder = "inbox"
	}
	return s.Repo.ListMessages(ctx, ownerID, folder, limit, offset)
}

// GetMessage fetches a message and marks it read on first open.
func (s *MailService) GetMessage(ctx context.Context, ownerID, id string) (*db.Message, error) {
	msg, err := s.Repo.GetMessage(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if !msg.Read {
		if err := s.Repo.MarkMessageRead(ctx, ownerID, id); err != nil {
			return nil, err
		}
		msg.Read = true
	}
	return msg, nil
}

// SendMessage delivers the mail through SendGrid and files a copy in the
// owner's sent folder.
func (s *MailService) SendMessage(ctx context.Context, ownerID, fromEmail, fromName string, req *entities.SendMessageRequest) (*db.Message, error) {
	if req.To == "" {
		return nil, apperrors.ErrBadRequest("recipient is required")
	}
	if fromEmail == "" {
		fromEmail = os.Getenv("SENDGRID_FROM_EMAIL")
	}

	if err := SendEmailWithSendGrid(req.To, "", req.Subject, req.Body, ""); err != nil {
		return nil, fmt.Errorf("delivering message: %w", err)
	}

	msg := &db.Message{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Folder:    "sent",
		FromAddr:  fromEmail,
		ToAddr:    req.To,
		Subject:   req.Subject,
		Body:      req.Body,
		Read:      true,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.CreateMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("storing sent message: %w", err)
	}
	return msg, nil
}

func (s *MailService) DeleteMessage(ctx context.Context, ownerID, id string) error {
	return s.Repo.DeleteMessage(ctx, ownerID, id)
}
