package db

import "time"

type User struct {
	ID              string
	Email           string
	FullName        string
	Phone           string
	PasswordHash    string
	Plan            string
	StripeSessionID string
	PaymentStatus   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Attendee rows live inside the event record (attendees jsonb column).
type Attendee struct {
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	Organizer bool   `json:"organizer,omitempty"`
	Status    string `json:"status,omitempty"`
}

type Event struct {
	ID           string
	OwnerID      string
	Title        string
	Description  string
	Location     string
	Start        time.Time
	End          time.Time
	Timezone     string
	IsOnline     bool
	Attendees    []Attendee
	Status       string
	ReminderSent bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Task struct {
	ID        string
	OwnerID   string
	Title     string
	Notes     string
	DueAt     *time.Time
	Priority  string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Contact struct {
	ID        string
	OwnerID   string
	FullName  string
	Email     string
	Phone     string
	Company   string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Trip struct {
	ID          string
	OwnerID     string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Notes       string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Expense struct {
	ID         string
	OwnerID    string
	Category   string
	AmountCent int64
	Currency   string
	IncurredAt time.Time
	Notes      string
	CreatedAt  time.Time
}

type Message struct {
	ID        string
	OwnerID   string
	Folder    string
	FromAddr  string
	ToAddr    string
	Subject   string
	Body      string
	Read      bool
	CreatedAt time.Time
}
