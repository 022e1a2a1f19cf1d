package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"lifehub/internal/db"
)

func TestStats_MixedWeek(t *testing.T) {
	// Three meetings of 30, 45 and 60 minutes, one of them online.
	e1 := busyEvent("e1", at(monday, 9, 0), at(monday, 9, 30))
	e2 := busyEvent("e2", at(monday, 10, 0), at(monday, 10, 45))
	e2.IsOnline = true
	e3 := busyEvent("e3", at(monday, 14, 0), at(monday, 15, 0))
	src := &fakeSource{events: []db.Event{e1, e2, e3}}

	stats, err := NewEngine(src).Stats(context.Background(), testOwner, at(monday, 0, 0), at(monday, 23, 59))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalMeetings != 3 {
		t.Fatalf("expected 3 meetings, got %d", stats.TotalMeetings)
	}
	if stats.TotalMinutes != 135 {
		t.Fatalf("expected 135 total minutes, got %v", stats.TotalMinutes)
	}
	if stats.AverageDuration != 45 {
		t.Fatalf("expected average 45, got %v", stats.AverageDuration)
	}
	if stats.VirtualMeetings != 1 || stats.InPersonMeetings != 2 {
		t.Fatalf("expected 1 virtual / 2 in person, got %d/%d", stats.VirtualMeetings, stats.InPersonMeetings)
	}
	if stats.VirtualMeetings+stats.InPersonMeetings != stats.TotalMeetings {
		t.Fatal("virtual + in person must equal total")
	}
}

func TestStats_EmptyRange(t *testing.T) {
	stats, err := NewEngine(&fakeSource{}).Stats(context.Background(), testOwner, at(monday, 0, 0), at(monday, 23, 59))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalMeetings != 0 || stats.TotalMinutes != 0 || stats.AverageDuration != 0 {
		t.Fatalf("expected all-zero stats, got %+v", stats)
	}
}

func TestStats_ExternalAttendees(t *testing.T) {
	noAttendees := busyEvent("e1", at(monday, 9, 0), at(monday, 9, 30))

	organizersOnly := busyEvent("e2", at(monday, 10, 0), at(monday, 10, 30))
	organizersOnly.Attendees = []db.Attendee{
		{Email: "me@example.com", Organizer: true},
	}

	withExternal := busyEvent("e3", at(monday, 11, 0), at(monday, 11, 30))
	withExternal.Attendees = []db.Attendee{
		{Email: "me@example.com", Organizer: true},
		{Email: "client@customer.example", Name: "Client"},
	}

	src := &fakeSource{events: []db.Event{noAttendees, organizersOnly, withExternal}}
	stats, err := NewEngine(src).Stats(context.Background(), testOwner, at(monday, 0, 0), at(monday, 23, 59))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.MeetingsWithExternalAttendees != 1 {
		t.Fatalf("expected 1 meeting with external attendees, got %d", stats.MeetingsWithExternalAttendees)
	}
}

func TestStats_FractionalMinutes(t *testing.T) {
	ev := busyEvent("e1", at(monday, 9, 0), at(monday, 9, 0).Add(90*time.Second))
	src := &fakeSource{events: []db.Event{ev}}

	stats, err := NewEngine(src).Stats(context.Background(), testOwner, at(monday, 0, 0), at(monday, 23, 59))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalMinutes != 1.5 {
		t.Fatalf("expected 1.5 minutes unrounded, got %v", stats.TotalMinutes)
	}
	if stats.AverageDuration != 1.5 {
		t.Fatalf("expected average 1.5, got %v", stats.AverageDuration)
	}
}

func TestStats_InvertedRange(t *testing.T) {
	_, err := NewEngine(&fakeSource{}).Stats(context.Background(), testOwner, at(monday, 23, 0), at(monday, 0, 0))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
