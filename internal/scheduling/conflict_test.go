package scheduling

import (
	"context"
	"testing"

	"lifehub/internal/db"
)

func TestHasConflict_Containment(t *testing.T) {
	src := &fakeSource{events: []db.Event{
		busyEvent("e1", at(monday, 13, 0), at(monday, 16, 0)),
	}}
	eng := NewEngine(src)

	got, err := eng.HasConflict(context.Background(), testOwner, at(monday, 14, 0), at(monday, 15, 0), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Fatal("expected containment to be reported as a conflict")
	}
}

func TestHasConflict_PartialOverlaps(t *testing.T) {
	src := &fakeSource{events: []db.Event{
		busyEvent("e1", at(monday, 10, 0), at(monday, 11, 0)),
	}}
	eng := NewEngine(src)
	ctx := context.Background()

	// Existing event's start falls inside the candidate.
	got, err := eng.HasConflict(ctx, testOwner, at(monday, 9, 30), at(monday, 10, 30), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Fatal("expected overlap at the candidate's tail to conflict")
	}

	// Existing event's end falls inside the candidate.
	got, err = eng.HasConflict(ctx, testOwner, at(monday, 10, 30), at(monday, 11, 30), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Fatal("expected overlap at the candidate's head to conflict")
	}

	// Candidate fully contains the existing event.
	got, err = eng.HasConflict(ctx, testOwner, at(monday, 9, 0), at(monday, 12, 0), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Fatal("expected candidate containing an event to conflict")
	}
}

func TestHasConflict_BoundariesTouchDoNotConflict(t *testing.T) {
	src := &fakeSource{events: []db.Event{
		busyEvent("e1", at(monday, 10, 0), at(monday, 11, 0)),
	}}
	eng := NewEngine(src)
	ctx := context.Background()

	got, err := eng.HasConflict(ctx, testOwner, at(monday, 11, 0), at(monday, 12, 0), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got {
		t.Fatal("candidate starting at an event's end must not conflict")
	}

	got, err = eng.HasConflict(ctx, testOwner, at(monday, 9, 0), at(monday, 10, 0), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got {
		t.Fatal("candidate ending at an event's start must not conflict")
	}
}

func TestHasConflict_ExcludeID(t *testing.T) {
	src := &fakeSource{events: []db.Event{
		busyEvent("e1", at(monday, 10, 0), at(monday, 11, 0)),
	}}
	eng := NewEngine(src)
	ctx := context.Background()

	// Moving e1 half an hour later only collides with itself.
	got, err := eng.HasConflict(ctx, testOwner, at(monday, 10, 30), at(monday, 11, 30), "e1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got {
		t.Fatal("excluded event must not conflict with its own update")
	}

	got, err = eng.HasConflict(ctx, testOwner, at(monday, 10, 30), at(monday, 11, 30), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Fatal("without the exclusion the update must conflict")
	}

	// An exclude id that matches nothing excludes nothing.
	got, err = eng.HasConflict(ctx, testOwner, at(monday, 10, 30), at(monday, 11, 30), "no-such-event")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Fatal("unknown exclude id must leave the conflict in place")
	}
}

func TestHasConflict_EmptySetAndInvertedCandidate(t *testing.T) {
	eng := NewEngine(&fakeSource{})
	ctx := context.Background()

	got, err := eng.HasConflict(ctx, testOwner, at(monday, 9, 0), at(monday, 10, 0), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got {
		t.Fatal("empty snapshot must yield no conflict")
	}

	// start >= end is the caller's bug; the detector just reports no conflict.
	got, err = eng.HasConflict(ctx, testOwner, at(monday, 10, 0), at(monday, 9, 0), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got {
		t.Fatal("inverted candidate must yield no conflict")
	}
}

func TestHasConflict_EventStartedEarlier(t *testing.T) {
	// The event begins before the candidate window; the widened fetch still
	// has to surface it.
	src := &fakeSource{events: []db.Event{
		busyEvent("e1", at(monday, 8, 0), at(monday, 15, 0)),
	}}
	eng := NewEngine(src)

	got, err := eng.HasConflict(context.Background(), testOwner, at(monday, 14, 0), at(monday, 14, 30), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Fatal("long-running earlier event must be detected")
	}
}
