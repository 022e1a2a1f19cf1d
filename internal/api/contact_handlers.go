package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"lifehub/internal/auth"
	"lifehub/internal/entities"
	"lifehub/internal/service"
)

type ContactHandler struct {
	Service *service.ContactService
}

func NewContactHandler(svc *service.ContactService) *ContactHandler {
	return &ContactHandler{Service: svc}
}

func (h *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req entities.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	contact, err := h.Service.CreateContact(r.Context(), auth.UserID(r), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entities.ContactToResponse(contact))
}

func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.Service.ListContacts(r.Context(), auth.UserID(r), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]entities.ContactResponse, 0, len(contacts))
	for i := range contacts {
		out = append(out, entities.ContactToResponse(&contacts[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ContactHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	contact, err := h.Service.GetContact(r.Context(), auth.UserID(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entities.ContactToResponse(contact))
}

func (h *ContactHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	var req entities.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	contact, err := h.Service.UpdateContact(r.Context(), auth.UserID(r), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entities.ContactToResponse(contact))
}

func (h *ContactHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteContact(r.Context(), auth.UserID(r), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Contact deleted"})
}
