package notification

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mbakke/torget/internal/http/auth"
	"github.com/mbakke/torget/internal/http/httperr"
	"github.com/mbakke/torget/internal/notification"
)

type Handler struct {
	svc *notification.Service
}

func NewHandler(svc *notification.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/unread", h.unread)
	r.Get("/unread/count", h.unreadCount)
	r.Post("/read-all", h.markAllRead)
	r.Post("/{id}/read", h.markRead)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		limit, _ = strconv.Atoi(s)
	}

	notifications, err := h.svc.ListForUser(r.Context(), userID, limit)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(notifications)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) unread(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	notifications, err := h.svc.Unread(r.Context(), userID)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(notifications)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) unreadCount(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	count, err := h.svc.UnreadCount(r.Context(), userID)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(map[string]int{"unread": count}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) markRead(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	n, err := h.svc.MarkRead(r.Context(), id, userID)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(n)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) markAllRead(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	if err := h.svc.MarkAllRead(r.Context(), userID); err != nil {
		httperr.Write(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type notificationResponse struct {
	ID          uuid.UUID         `json:"id"`
	Type        notification.Type `json:"type"`
	ReferenceID uuid.UUID         `json:"reference_id"`
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Read        bool              `json:"read"`
	CreatedAt   time.Time         `json:"created_at"`
}

func toResponse(n *notification.Notification) notificationResponse {
	return notificationResponse{
		ID:          n.ID,
		Type:        n.Type,
		ReferenceID: n.ReferenceID,
		Title:       n.Title,
		Body:        n.Body,
		Read:        n.Read,
		CreatedAt:   n.CreatedAt,
	}
}

func toResponseList(notifications []*notification.Notification) []notificationResponse {
	resp := make([]notificationResponse, len(notifications))
	for i, n := range notifications {
		resp[i] = toResponse(n)
	}

	return resp
}
