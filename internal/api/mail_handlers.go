package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"lifehub/internal/auth"
	"lifehub/internal/entities"
	"lifehub/internal/service"
)

type MailHandler struct {
	Service *service.MailService
}

func NewMailHandler(svc *service.MailService) *MailHandler {
	return &MailHandler{Service: svc}
}

func (h *MailHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	messages, err := h.Service.ListMessages(r.Context(), auth.UserID(r), q.Get("folder"), limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]entities.MessageResponse, 0, len(messages))
	for i := range messages {
		resp := entities.MessageToResponse(&messages[i])
		resp.Body = "" // list view carries headers only
		out = append(out, resp)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *MailHandler) GetMessage(w http.ResponseWriter, r *http.Request) {
	msg, err := h.Service.GetMessage(r.Context(), auth.UserID(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entities.MessageToResponse(msg))
}

func (h *MailHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req entities.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	msg, err := h.Service.SendMessage(r.Context(), auth.UserID(r), "", "", &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entities.MessageToResponse(msg))
}

func (h *MailHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteMessage(r.Context(), auth.UserID(r), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Message deleted"})
}
