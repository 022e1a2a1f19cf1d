package scheduling

import (
	"context"
	"fmt"
	"time"

	"lifehub/internal/db"
)

// Stats aggregates meeting load for all events starting within
// [rangeStart, rangeEnd].
func (e *Engine) Stats(ctx context.Context, ownerID string, rangeStart, rangeEnd time.Time) (*ScheduleStats, error) {
	if rangeEnd.Before(rangeStart) {
		return nil, fmt.Errorf("%w: range end precedes range start", ErrInvalidArgument)
	}
	events, err := e.source.ListEvents(ctx, ownerID, rangeStart, rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("fetching events for stats: %w", err)
	}
	stats := aggregate(events)
	return &stats, nil
}

func aggregate(events []db.Event) ScheduleStats {
	var stats ScheduleStats
	for _, ev := range events {
		stats.TotalMeetings++
		stats.TotalMinutes += ev.End.Sub(ev.Start).Minutes()
		if ev.IsOnline {
			stats.VirtualMeetings++
		}
		if hasExternalAttendee(ev.Attendees) {
			stats.MeetingsWithExternalAttendees++
		}
	}
	stats.InPersonMeetings = stats.TotalMeetings - stats.VirtualMeetings
	if stats.TotalMeetings > 0 {
		stats.AverageDuration = stats.TotalMinutes / float64(stats.TotalMeetings)
	}
	return stats
}

// hasExternalAttendee reports whether the list is non-empty and contains at
// least one attendee not flagged as organizer.
func hasExternalAttendee(attendees []db.Attendee) bool {
	for _, a := range attendees {
		if !a.Organizer {
			return true
		}
	}
	return false
}
