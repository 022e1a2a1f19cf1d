package scheduling

import (
	"context"
	"fmt"
	"time"

	"lifehub/internal/db"
)

// FindSlots searches the request range for free intervals of the requested
// duration inside working hours, weekdays only, keeping the configured buffer
// from neighboring events. Slots come back in chronological order.
func (e *Engine) FindSlots(ctx context.Context, ownerID string, req SlotRequest) ([]Slot, error) {
	if req.WorkStart == "" {
		req.WorkStart = DefaultWorkStart
	}
	if req.WorkEnd == "" {
		req.WorkEnd = DefaultWorkEnd
	}
	if req.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration must be a positive number of minutes", ErrInvalidArgument)
	}
	if req.BufferMinutes < 0 {
		return nil, fmt.Errorf("%w: buffer minutes must not be negative", ErrInvalidArgument)
	}
	if req.RangeEnd.Before(req.RangeStart) {
		return nil, fmt.Errorf("%w: range end precedes range start", ErrInvalidArgument)
	}
	workStart, err := parseClock(req.WorkStart)
	if err != nil {
		return nil, err
	}
	workEnd, err := parseClock(req.WorkEnd)
	if err != nil {
		return nil, err
	}

	events, err := e.source.ListEvents(ctx, ownerID, req.RangeStart, req.RangeEnd)
	if err != nil {
		return nil, fmt.Errorf("fetching events for slot search: %w", err)
	}

	duration := time.Duration(req.DurationMinutes) * time.Minute
	buffer := time.Duration(req.BufferMinutes) * time.Minute

	var slots []Slot
	lastDay := startOfDay(req.RangeEnd)
	for day := startOfDay(req.RangeStart); !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		slots = append(slots, daySlots(day, dayEvents(events, day), workStart, workEnd, duration, buffer)...)
	}
	return slots, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// dayEvents partitions the sorted snapshot down to events starting on the
// given calendar day, preserving order.
func dayEvents(events []db.Event, day time.Time) []db.Event {
	var out []db.Event
	for _, ev := range events {
		if sameDay(ev.Start, day) {
			out = append(out, ev)
		}
	}
	return out
}

// daySlots folds one working day left to right. The cursor starts at the
// working-hours open and sits buffer minutes past each event it passes; a gap
// of at least the requested duration between the cursor and the next event
// emits one slot at the gap's left edge. The cursor moves past event.end +
// buffer whether or not a slot was emitted, and never moves backwards, so
// events ending before it (pre-work-hours or overlapping meetings) cannot
// reopen time that has already been passed.
func daySlots(day time.Time, events []db.Event, workStart, workEnd clockTime, duration, buffer time.Duration) []Slot {
	dayStart := workStart.at(day)
	dayEnd := workEnd.at(day)

	cursor := dayStart
	var slots []Slot
	for _, ev := range events {
		// The usable gap never extends past the working-hours close, even
		// when the next event starts after it.
		limit := ev.Start
		if limit.After(dayEnd) {
			limit = dayEnd
		}
		if limit.Sub(cursor) >= duration {
			slots = append(slots, Slot{Start: cursor, End: cursor.Add(duration)})
		}
		if next := ev.End.Add(buffer); next.After(cursor) {
			cursor = next
		}
	}
	if dayEnd.Sub(cursor) >= duration {
		slots = append(slots, Slot{Start: cursor, End: cursor.Add(duration)})
	}
	return slots
}
