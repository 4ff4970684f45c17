package listing

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mbakke/torget/internal/http/auth"
	"github.com/mbakke/torget/internal/http/httperr"
	"github.com/mbakke/torget/internal/listing"
)

type Handler struct {
	svc *listing.Service
}

func NewHandler(svc *listing.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes mounts the listing endpoints. Browsing is public (with optional
// identity for history tracking); everything that mutates requires a caller.
func (h *Handler) Routes(r chi.Router, authMW *auth.Middleware) {
	r.Group(func(r chi.Router) {
		r.Use(authMW.Optional)
		r.Get("/", h.list)
		r.Get("/{id}", h.get)
	})

	r.Group(func(r chi.Router) {
		r.Use(authMW.Require)
		r.Post("/", h.create)
		r.Get("/mine", h.mine)
		r.Patch("/{id}", h.update)
		r.Patch("/{id}/status", h.updateStatus)
		r.Delete("/{id}", h.delete)
	})
}

type createListingRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Price       decimal.Decimal   `json:"price"`
	Currency    string            `json:"currency"`
	Quantity    int               `json:"quantity"`
	Condition   listing.Condition `json:"condition"`
	AllowOffers bool              `json:"allow_offers"`
	Draft       bool              `json:"draft"`
	ExpiresAt   *time.Time        `json:"expires_at,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	sellerID, _ := auth.UserID(r.Context())

	var req createListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Quantity == 0 {
		req.Quantity = 1
	}

	l, err := h.svc.Create(r.Context(), sellerID, listing.CreateParams{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Currency:    req.Currency,
		Quantity:    req.Quantity,
		Condition:   req.Condition,
		AllowOffers: req.AllowOffers,
		Draft:       req.Draft,
		ExpiresAt:   req.ExpiresAt,
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(l)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := listing.ListFilter{}

	if s := r.URL.Query().Get("category"); s != "" {
		filter.Category = &s
	}

	if s := r.URL.Query().Get("min_price"); s != "" {
		if p, err := decimal.NewFromString(s); err == nil {
			filter.MinPrice = &p
		}
	}

	if s := r.URL.Query().Get("max_price"); s != "" {
		if p, err := decimal.NewFromString(s); err == nil {
			filter.MaxPrice = &p
		}
	}

	listings, err := h.svc.ListActive(r.Context(), filter)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(listings)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var viewerID *uuid.UUID
	if uid, ok := auth.UserID(r.Context()); ok {
		viewerID = &uid
	}

	l, err := h.svc.View(r.Context(), id, viewerID)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(l)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) mine(w http.ResponseWriter, r *http.Request) {
	sellerID, _ := auth.UserID(r.Context())

	listings, err := h.svc.ListBySeller(r.Context(), sellerID)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(listings)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateListingRequest struct {
	Title       *string            `json:"title,omitempty"`
	Description *string            `json:"description,omitempty"`
	Category    *string            `json:"category,omitempty"`
	Price       *decimal.Decimal   `json:"price,omitempty"`
	Quantity    *int               `json:"quantity,omitempty"`
	Condition   *listing.Condition `json:"condition,omitempty"`
	AllowOffers *bool              `json:"allow_offers,omitempty"`
	ExpiresAt   *time.Time         `json:"expires_at,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	sellerID, _ := auth.UserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	l, err := h.svc.Update(r.Context(), id, sellerID, listing.UpdateParams{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Condition:   req.Condition,
		AllowOffers: req.AllowOffers,
		ExpiresAt:   req.ExpiresAt,
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(l)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateStatusRequest struct {
	Status listing.Status `json:"status"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	actorID, _ := auth.UserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	l, err := h.svc.ChangeStatus(r.Context(), id, actorID, req.Status)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(l)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	actorID, _ := auth.UserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if auth.IsAdmin(r.Context()) {
		err = h.svc.ForceDelete(r.Context(), id)
	} else {
		err = h.svc.Delete(r.Context(), id, actorID)
	}

	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
