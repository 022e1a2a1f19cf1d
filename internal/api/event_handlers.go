package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"lifehub/internal/auth"
	"lifehub/internal/entities"
	"lifehub/internal/scheduling"
	"lifehub/internal/service"
)

type EventHandler struct {
	Service *service.EventService
}

func NewEventHandler(svc *service.EventService) *EventHandler {
	return &EventHandler{Service: svc}
}

func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req entities.EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	ev, err := h.Service.CreateEvent(r.Context(), auth.UserID(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entities.EventToResponse(ev))
}

func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	rangeStart, err := parseTimeParam(r, "start", now.AddDate(0, -1, 0))
	if err != nil {
		writeError(w, err)
		return
	}
	rangeEnd, err := parseTimeParam(r, "end", now.AddDate(0, 1, 0))
	if err != nil {
		writeError(w, err)
		return
	}

	events, err := h.Service.ListEvents(r.Context(), auth.UserID(r), rangeStart, rangeEnd)
	if err != nil {
		writeError(w, err)
		return
	}
	list := entities.EventsList{Total: len(events)}
	for i := range events {
		list.Events = append(list.Events, entities.EventToResponse(&events[i]))
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	ev, err := h.Service.GetEvent(r.Context(), auth.UserID(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entities.EventToResponse(ev))
}

func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req entities.EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	ev, err := h.Service.UpdateEvent(r.Context(), auth.UserID(r), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entities.EventToResponse(ev))
}

func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.Service.DeleteEvent(r.Context(), auth.UserID(r), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Event deleted"})
}

// CheckConflict answers whether a candidate interval collides with the
// owner's calendar.
func (h *EventHandler) CheckConflict(w http.ResponseWriter, r *http.Request) {
	var req entities.ConflictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	conflict, err := h.Service.HasConflict(r.Context(), auth.UserID(r), req.Start, req.End, req.ExcludeEventID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entities.ConflictResponse{Conflict: conflict})
}

// FindSlots searches a range for free slots of the requested duration.
func (h *EventHandler) FindSlots(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	rangeStart, err := parseTimeParam(r, "start", time.Time{})
	if err != nil {
		writeError(w, err)
		return
	}
	rangeEnd, err := parseTimeParam(r, "end", time.Time{})
	if err != nil {
		writeError(w, err)
		return
	}
	if rangeStart.IsZero() || rangeEnd.IsZero() {
		http.Error(w, "'start' and 'end' are required", http.StatusBadRequest)
		return
	}

	duration, err := strconv.Atoi(q.Get("duration"))
	if err != nil {
		http.Error(w, "'duration' must be a number of minutes", http.StatusBadRequest)
		return
	}

	req := scheduling.SlotRequest{
		RangeStart:      rangeStart,
		RangeEnd:        rangeEnd,
		DurationMinutes: duration,
		WorkStart:       q.Get("work_start"),
		WorkEnd:         q.Get("work_end"),
		BufferMinutes:   scheduling.DefaultBufferMinutes,
	}
	if raw := q.Get("buffer"); raw != "" {
		buffer, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "'buffer' must be a number of minutes", http.StatusBadRequest)
			return
		}
		req.BufferMinutes = buffer
	}

	slots, err := h.Service.FindSlots(r.Context(), auth.UserID(r), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total": len(slots),
		"slots": slots,
	})
}

// GetStats aggregates the owner's meeting load for a range.
func (h *EventHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	rangeStart, err := parseTimeParam(r, "start", now.AddDate(0, -1, 0))
	if err != nil {
		writeError(w, err)
		return
	}
	rangeEnd, err := parseTimeParam(r, "end", now)
	if err != nil {
		writeError(w, err)
		return
	}

	stats, err := h.Service.Stats(r.Context(), auth.UserID(r), rangeStart, rangeEnd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// ExportICS streams the owner's calendar as an iCalendar file.
func (h *EventHandler) ExportICS(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	rangeStart, err := parseTimeParam(r, "start", now.AddDate(0, -3, 0))
	if err != nil {
		writeError(w, err)
		return
	}
	rangeEnd, err := parseTimeParam(r, "end", now.AddDate(1, 0, 0))
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="lifehub.ics"`)
	if err := h.Service.WriteCalendarICS(r.Context(), w, auth.UserID(r), rangeStart, rangeEnd); err != nil {
		writeError(w, err)
	}
}
