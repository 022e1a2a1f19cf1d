package entities

import (
	"time"

	"lifehub/internal/db"
)

type SendMessageRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type MessageResponse struct {
	ID        string    `json:"id"`
	Folder    string    `json:"folder"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func MessageToResponse(m *db.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		Folder:    m.Folder,
		From:      m.FromAddr,
		To:        m.ToAddr,
		Subject:   m.Subject,
		Body:      m.Body,
		Read:      m.Read,
		CreatedAt: m.CreatedAt,
	}
}
