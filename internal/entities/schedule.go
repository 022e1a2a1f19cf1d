package entities

import "time"

type ConflictRequest struct {
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	ExcludeEventID string    `json:"exclude_event_id,omitempty"`
}

type ConflictResponse struct {
	Conflict bool `json:"conflict"`
}
