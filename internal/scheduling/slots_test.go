package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"lifehub/internal/db"
)

func findSlots(t *testing.T, src *fakeSource, req SlotRequest) []Slot {
	t.Helper()
	slots, err := NewEngine(src).FindSlots(context.Background(), testOwner, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return slots
}

func TestFindSlots_BusyMonday(t *testing.T) {
	// Events 09:00-09:30 and 10:15-11:00, working hours 09:00-17:00,
	// 30 minute meetings with a 15 minute buffer.
	src := &fakeSource{events: []db.Event{
		busyEvent("e1", at(monday, 9, 0), at(monday, 9, 30)),
		busyEvent("e2", at(monday, 10, 15), at(monday, 11, 0)),
	}}
	slots := findSlots(t, src, SlotRequest{
		RangeStart:      at(monday, 0, 0),
		RangeEnd:        at(monday, 23, 59),
		DurationMinutes: 30,
		BufferMinutes:   15,
	})

	want := []Slot{
		{Start: at(monday, 9, 45), End: at(monday, 10, 15)},
		{Start: at(monday, 11, 15), End: at(monday, 11, 45)},
	}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d: %v", len(want), len(slots), slots)
	}
	for i := range want {
		if !slots[i].Start.Equal(want[i].Start) || !slots[i].End.Equal(want[i].End) {
			t.Fatalf("slot %d: expected %v-%v, got %v-%v",
				i, want[i].Start, want[i].End, slots[i].Start, slots[i].End)
		}
	}
}

func TestFindSlots_EmptyWeekFullWindows(t *testing.T) {
	// Eight free hours requested over a Monday-to-Sunday range: one slot
	// spanning the whole working window per weekday, nothing on the weekend.
	slots := findSlots(t, &fakeSource{}, SlotRequest{
		RangeStart:      at(monday, 0, 0),
		RangeEnd:        monday.AddDate(0, 0, 6),
		DurationMinutes: 480,
	})

	if len(slots) != 5 {
		t.Fatalf("expected 5 slots, got %d: %v", len(slots), slots)
	}
	for i, s := range slots {
		day := monday.AddDate(0, 0, i)
		if !s.Start.Equal(at(day, 9, 0)) || !s.End.Equal(at(day, 17, 0)) {
			t.Fatalf("slot %d: expected %v 09:00-17:00, got %v-%v", i, day, s.Start, s.End)
		}
	}
}

func TestFindSlots_WeekendOnlyIsEmpty(t *testing.T) {
	saturday := monday.AddDate(0, 0, -2)
	sunday := monday.AddDate(0, 0, -1)
	slots := findSlots(t, &fakeSource{}, SlotRequest{
		RangeStart:      at(saturday, 8, 0),
		RangeEnd:        at(sunday, 20, 0),
		DurationMinutes: 30,
	})
	if len(slots) != 0 {
		t.Fatalf("expected no slots over a weekend, got %v", slots)
	}
}

func TestFindSlots_GreedyLeftSingleSlotPerGap(t *testing.T) {
	// A gap much larger than duration+buffer still yields one slot at its
	// left edge.
	src := &fakeSource{events: []db.Event{
		busyEvent("e1", at(monday, 12, 0), at(monday, 13, 0)),
	}}
	slots := findSlots(t, src, SlotRequest{
		RangeStart:      at(monday, 0, 0),
		RangeEnd:        at(monday, 23, 59),
		DurationMinutes: 60,
		BufferMinutes:   15,
	})

	want := []Slot{
		{Start: at(monday, 9, 0), End: at(monday, 10, 0)},
		{Start: at(monday, 13, 15), End: at(monday, 14, 15)},
	}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d: %v", len(want), len(slots), slots)
	}
	for i := range want {
		if !slots[i].Start.Equal(want[i].Start) || !slots[i].End.Equal(want[i].End) {
			t.Fatalf("slot %d: expected %v-%v, got %v-%v",
				i, want[i].Start, want[i].End, slots[i].Start, slots[i].End)
		}
	}
}

func TestFindSlots_BufferConsumedWithoutEmission(t *testing.T) {
	// Two short meetings in quick succession each consume their trailing
	// buffer even though neither preceding gap was usable.
	src := &fakeSource{events: []db.Event{
		busyEvent("e1", at(monday, 9, 0), at(monday, 9, 5)),
		busyEvent("e2", at(monday, 9, 10), at(monday, 9, 15)),
	}}
	slots := findSlots(t, src, SlotRequest{
		RangeStart:      at(monday, 0, 0),
		RangeEnd:        at(monday, 23, 59),
		DurationMinutes: 30,
		BufferMinutes:   15,
	})

	if len(slots) == 0 {
		t.Fatal("expected at least one slot")
	}
	if !slots[0].Start.Equal(at(monday, 9, 30)) {
		t.Fatalf("expected first slot at 09:30 (buffer past the second event), got %v", slots[0].Start)
	}
}

func TestFindSlots_NoSlotBeyondWorkingHoursEnd(t *testing.T) {
	src := &fakeSource{events: []db.Event{
		busyEvent("e1", at(monday, 9, 0), at(monday, 16, 30)),
	}}
	slots := findSlots(t, src, SlotRequest{
		RangeStart:      at(monday, 0, 0),
		RangeEnd:        at(monday, 23, 59),
		DurationMinutes: 30,
		BufferMinutes:   15,
	})
	if len(slots) != 0 {
		t.Fatalf("expected no slots when the remaining window is too short, got %v", slots)
	}
}

func TestFindSlots_EveningEventDoesNotExtendTheDay(t *testing.T) {
	// A dinner at 18:00 must not let the gap before it spill past 17:00.
	src := &fakeSource{events: []db.Event{
		busyEvent("e1", at(monday, 9, 0), at(monday, 16, 15)),
		busyEvent("e2", at(monday, 18, 0), at(monday, 19, 0)),
	}}
	slots := findSlots(t, src, SlotRequest{
		RangeStart:      at(monday, 0, 0),
		RangeEnd:        at(monday, 23, 59),
		DurationMinutes: 30,
		BufferMinutes:   15,
	})

	want := []Slot{{Start: at(monday, 16, 30), End: at(monday, 17, 0)}}
	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d: %v", len(slots), slots)
	}
	if !slots[0].Start.Equal(want[0].Start) || !slots[0].End.Equal(want[0].End) {
		t.Fatalf("expected %v-%v, got %v-%v", want[0].Start, want[0].End, slots[0].Start, slots[0].End)
	}
}

func TestFindSlots_Invariants(t *testing.T) {
	// A busy multi-day snapshot; every returned slot must hold the duration,
	// weekday, working-hours and no-conflict guarantees.
	tuesday := monday.AddDate(0, 0, 1)
	wednesday := monday.AddDate(0, 0, 2)
	events := []db.Event{
		busyEvent("e1", at(monday, 9, 30), at(monday, 10, 0)),
		busyEvent("e2", at(monday, 11, 0), at(monday, 12, 30)),
		busyEvent("e3", at(tuesday, 8, 0), at(tuesday, 8, 45)),
		busyEvent("e4", at(tuesday, 16, 0), at(tuesday, 16, 50)),
		busyEvent("e5", at(wednesday, 13, 0), at(wednesday, 14, 0)),
	}
	src := &fakeSource{events: events}
	eng := NewEngine(src)

	req := SlotRequest{
		RangeStart:      at(monday, 0, 0),
		RangeEnd:        monday.AddDate(0, 0, 6),
		DurationMinutes: 45,
		WorkStart:       "09:00",
		WorkEnd:         "17:00",
		BufferMinutes:   15,
	}
	slots, err := eng.FindSlots(context.Background(), testOwner, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) == 0 {
		t.Fatal("expected slots for a week with sparse meetings")
	}

	prev := time.Time{}
	for _, s := range slots {
		if s.End.Sub(s.Start) != 45*time.Minute {
			t.Fatalf("slot %v-%v does not have the requested duration", s.Start, s.End)
		}
		if wd := s.Start.Weekday(); wd == time.Saturday || wd == time.Sunday {
			t.Fatalf("slot %v falls on a weekend", s.Start)
		}
		if s.Start.Before(at(s.Start, 9, 0)) || s.End.After(at(s.Start, 17, 0)) {
			t.Fatalf("slot %v-%v escapes working hours", s.Start, s.End)
		}
		if !s.Start.After(prev) {
			t.Fatalf("slots out of order: %v after %v", s.Start, prev)
		}
		prev = s.Start

		conflict, err := eng.HasConflict(context.Background(), testOwner, s.Start, s.End, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if conflict {
			t.Fatalf("returned slot %v-%v conflicts with the snapshot", s.Start, s.End)
		}
	}
}

func TestFindSlots_Validation(t *testing.T) {
	eng := NewEngine(&fakeSource{})
	ctx := context.Background()

	cases := []SlotRequest{
		{RangeStart: at(monday, 0, 0), RangeEnd: at(monday, 23, 0), DurationMinutes: 0},
		{RangeStart: at(monday, 0, 0), RangeEnd: at(monday, 23, 0), DurationMinutes: 30, BufferMinutes: -1},
		{RangeStart: at(monday, 23, 0), RangeEnd: at(monday, 0, 0), DurationMinutes: 30},
		{RangeStart: at(monday, 0, 0), RangeEnd: at(monday, 23, 0), DurationMinutes: 30, WorkStart: "9am"},
		{RangeStart: at(monday, 0, 0), RangeEnd: at(monday, 23, 0), DurationMinutes: 30, WorkEnd: "25:00"},
		{RangeStart: at(monday, 0, 0), RangeEnd: at(monday, 23, 0), DurationMinutes: 30, WorkEnd: "17:99"},
	}
	for i, req := range cases {
		if _, err := eng.FindSlots(ctx, testOwner, req); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("case %d: expected ErrInvalidArgument, got %v", i, err)
		}
	}
}

func TestFindSlots_DefaultsApplied(t *testing.T) {
	// Leaving working hours unset means 09:00-17:00.
	slots := findSlots(t, &fakeSource{}, SlotRequest{
		RangeStart:      at(monday, 0, 0),
		RangeEnd:        at(monday, 23, 59),
		DurationMinutes: 480,
	})
	if len(slots) != 1 {
		t.Fatalf("expected exactly one slot, got %v", slots)
	}
	if !slots[0].Start.Equal(at(monday, 9, 0)) || !slots[0].End.Equal(at(monday, 17, 0)) {
		t.Fatalf("expected 09:00-17:00, got %v-%v", slots[0].Start, slots[0].End)
	}
}
