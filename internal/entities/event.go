package entities

import (
	"time"

	"lifehub/internal/db"
)

type EventRequest struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Location    string        `json:"location"`
	Start       time.Time     `json:"start"`
	End         time.Time     `json:"end"`
	Timezone    string        `json:"timezone"`
	IsOnline    bool          `json:"is_online"`
	Attendees   []db.Attendee `json:"attendees"`
	Status      string        `json:"status"` // not sent on create
}

type EventResponse struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Location    string        `json:"location,omitempty"`
	Start       time.Time     `json:"start"`
	End         time.Time     `json:"end"`
	Timezone    string        `json:"timezone,omitempty"`
	IsOnline    bool          `json:"is_online"`
	Attendees   []db.Attendee `json:"attendees,omitempty"`
	Status      string        `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type EventsList struct {
	Total  int             `json:"total"`
	Events []EventResponse `json:"events"`
}

func EventToResponse(ev *db.Event) EventResponse {
	return EventResponse{
		ID:          ev.ID,
		Title:       ev.Title,
		Description: ev.Description,
		Location:    ev.Location,
		Start:       ev.Start,
		End:         ev.End,
		Timezone:    ev.Timezone,
		IsOnline:    ev.IsOnline,
		Attendees:   ev.Attendees,
		Status:      ev.Status,
		CreatedAt:   ev.CreatedAt,
		UpdatedAt:   ev.UpdatedAt,
	}
}
