package scheduling

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"lifehub/internal/db"
)

// ErrInvalidArgument marks validation failures (bad working-hours strings,
// non-positive duration, inverted ranges). Callers map it to a 4xx response.
var ErrInvalidArgument = errors.New("invalid argument")

// EventSource supplies the event snapshot the engine computes over: all events
// for an owner whose start falls within [rangeStart, rangeEnd], ordered by
// start ascending. The engine never mutates what it receives.
type EventSource interface {
	ListEvents(ctx context.Context, ownerID string, rangeStart, rangeEnd time.Time) ([]db.Event, error)
}

// Engine performs conflict detection, free-slot search and schedule statistics
// over event snapshots. It holds no state across calls.
type Engine struct {
	source EventSource
}

func NewEngine(source EventSource) *Engine {
	return &Engine{source: source}
}

// Slot is a free interval, half-open [Start, End).
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SlotRequest describes a free-slot search. WorkStart/WorkEnd are wall-clock
// "HH:MM" strings applied per calendar day.
type SlotRequest struct {
	RangeStart      time.Time
	RangeEnd        time.Time
	DurationMinutes int
	WorkStart       string
	WorkEnd         string
	BufferMinutes   int
}

const (
	DefaultWorkStart     = "09:00"
	DefaultWorkEnd       = "17:00"
	DefaultBufferMinutes = 15
)

// ScheduleStats is the aggregated meeting load for a range.
type ScheduleStats struct {
	TotalMeetings                 int     `json:"total_meetings"`
	TotalMinutes                  float64 `json:"total_minutes"`
	AverageDuration               float64 `json:"average_duration"`
	VirtualMeetings               int     `json:"virtual_meetings"`
	InPersonMeetings              int     `json:"in_person_meetings"`
	MeetingsWithExternalAttendees int     `json:"meetings_with_external_attendees"`
}

// clockTime is a parsed wall-clock "HH:MM".
type clockTime struct {
	hour   int
	minute int
}

func parseClock(s string) (clockTime, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return clockTime{}, fmt.Errorf("%w: working hours %q must be HH:MM", ErrInvalidArgument, s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return clockTime{}, fmt.Errorf("%w: working hours %q must be HH:MM", ErrInvalidArgument, s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return clockTime{}, fmt.Errorf("%w: working hours %q must be HH:MM", ErrInvalidArgument, s)
	}
	return clockTime{hour: h, minute: m}, nil
}

// at anchors the wall-clock time on the given day.
func (c clockTime) at(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), c.hour, c.minute, 0, 0, day.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
