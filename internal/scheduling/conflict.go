package scheduling

import (
	"context"
	"fmt"
	"time"
)

// conflictLookback widens the snapshot fetch so events that started before the
// candidate but run into it are still seen. Events longer than this are not a
// supported shape in the product.
const conflictLookback = 24 * time.Hour

// HasConflict reports whether any existing event of the owner overlaps the
// candidate interval [start, end). excludeID, when non-empty, names an event
// to ignore, so an update can be checked against everything but itself. A
// candidate with start >= end reports no conflict.
func (e *Engine) HasConflict(ctx context.Context, ownerID string, start, end time.Time, excludeID string) (bool, error) {
	if !start.Before(end) {
		return false, nil
	}
	events, err := e.source.ListEvents(ctx, ownerID, start.Add(-conflictLookback), end)
	if err != nil {
		return false, fmt.Errorf("fetching events for conflict check: %w", err)
	}
	for _, ev := range events {
		if excludeID != "" && ev.ID == excludeID {
			continue
		}
		if overlaps(ev.Start, ev.End, start, end) {
			return true, nil
		}
	}
	return false, nil
}

// overlaps applies the half-open intersection rule, spelled out as three cases
// so the boundary behavior stays auditable. Touching endpoints do not overlap:
// back-to-back meetings are fine.
func overlaps(evStart, evEnd, candStart, candEnd time.Time) bool {
	// Event starts inside [candStart, candEnd).
	if !evStart.Before(candStart) && evStart.Before(candEnd) {
		return true
	}
	// Event ends inside (candStart, candEnd].
	if evEnd.After(candStart) && !evEnd.After(candEnd) {
		return true
	}
	// Event fully contains the candidate.
	if !evStart.After(candStart) && !evEnd.Before(candEnd) {
		return true
	}
	return false
}
