package history

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mbakke/torget/internal/history"
	"github.com/mbakke/torget/internal/http/auth"
	"github.com/mbakke/torget/internal/http/httperr"
)

type Handler struct {
	svc *history.Service
}

func NewHandler(svc *history.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.recent)
}

type entryResponse struct {
	ListingID uuid.UUID `json:"listing_id"`
	ViewCount int       `json:"view_count"`
	ViewedAt  time.Time `json:"viewed_at"`
}

func (h *Handler) recent(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		limit, _ = strconv.Atoi(s)
	}

	entries, err := h.svc.Recent(r.Context(), userID, limit)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = entryResponse{ListingID: e.ListingID, ViewCount: e.ViewCount, ViewedAt: e.ViewedAt}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
