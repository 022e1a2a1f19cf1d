package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"lifehub/internal/auth"
	"lifehub/internal/entities"
	"lifehub/internal/service"
)

type TripHandler struct {
	Service *service.TripService
}

func NewTripHandler(svc *service.TripService) *TripHandler {
	return &TripHandler{Service: svc}
}

func (h *TripHandler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req entities.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	trip, err := h.Service.CreateTrip(r.Context(), auth.UserID(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entities.TripToResponse(trip))
}

func (h *TripHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := h.Service.ListTrips(r.Context(), auth.UserID(r), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]entities.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, entities.TripToResponse(&trips[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *TripHandler) GetTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := h.Service.GetTrip(r.Context(), auth.UserID(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entities.TripToResponse(trip))
}

func (h *TripHandler) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	var req entities.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	trip, err := h.Service.UpdateTrip(r.Context(), auth.UserID(r), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entities.TripToResponse(trip))
}

func (h *TripHandler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteTrip(r.Context(), auth.UserID(r), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Trip deleted"})
}
