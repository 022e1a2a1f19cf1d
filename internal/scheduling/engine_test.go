package scheduling

import (
	"context"
	"sort"
	"time"

	"lifehub/internal/db"
)

// fakeSource mimics the event repository contract: events whose start falls
// within the window, ordered by start ascending.
type fakeSource struct {
	events []db.Event
}

func (f *fakeSource) ListEvents(_ context.Context, ownerID string, rangeStart, rangeEnd time.Time) ([]db.Event, error) {
	var out []db.Event
	for _, ev := range f.events {
		if ev.OwnerID != ownerID {
			continue
		}
		if ev.Start.Before(rangeStart) || ev.Start.After(rangeEnd) {
			continue
		}
		out = append(out, ev)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

const testOwner = "owner-1"

// 2026-08-31 is a Monday; 2026-08-29/30 the weekend before it.
var monday = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

func at(day time.Time, hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
}

func busyEvent(id string, start, end time.Time) db.Event {
	return db.Event{
		ID:      id,
		OwnerID: testOwner,
		Start:   start,
		End:     end,
		Status:  "confirmed",
	}
}
