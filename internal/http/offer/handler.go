package offer

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mbakke/torget/internal/http/auth"
	"github.com/mbakke/torget/internal/http/httperr"
	"github.com/mbakke/torget/internal/offer"
)

type Handler struct {
	svc *offer.Service
}

func NewHandler(svc *offer.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.submit)
	r.Get("/mine", h.mine)
	r.Get("/received", h.received)
	r.Get("/received/count", h.receivedCount)
	r.Get("/listing/{listingID}", h.byListing)
	r.Get("/{id}", h.get)
	r.Post("/{id}/accept", h.accept)
	r.Post("/{id}/reject", h.reject)
	r.Post("/{id}/retract", h.retract)
}

type submitOfferRequest struct {
	ListingID uuid.UUID       `json:"listing_id"`
	Amount    decimal.Decimal `json:"amount"`
	Message   string          `json:"message"`
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	buyerID, _ := auth.UserID(r.Context())

	var req submitOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	o, err := h.svc.Submit(r.Context(), buyerID, offer.SubmitParams{
		ListingID: req.ListingID,
		Amount:    req.Amount,
		Message:   req.Message,
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(o)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	actorID, _ := auth.UserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	o, err := h.svc.Get(r.Context(), id, actorID)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(o)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) accept(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.Accept)
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.Reject)
}

func (h *Handler) retract(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.Retract)
}

// decide runs one of the verdict operations, which all share the
// (actor, offer id) shape.
func (h *Handler) decide(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, actorID, offerID uuid.UUID) (*offer.Offer, error)) {
	actorID, _ := auth.UserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	o, err := op(r.Context(), actorID, id)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(o)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) mine(w http.ResponseWriter, r *http.Request) {
	buyerID, _ := auth.UserID(r.Context())

	offers, err := h.svc.ListByBuyer(r.Context(), buyerID)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(offers)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) received(w http.ResponseWriter, r *http.Request) {
	sellerID, _ := auth.UserID(r.Context())

	offers, err := h.svc.ListBySeller(r.Context(), sellerID)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(offers)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) byListing(w http.ResponseWriter, r *http.Request) {
	sellerID, _ := auth.UserID(r.Context())

	listingID, err := uuid.Parse(chi.URLParam(r, "listingID"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	offers, err := h.svc.ListForListing(r.Context(), sellerID, listingID)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(offers)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) receivedCount(w http.ResponseWriter, r *http.Request) {
	sellerID, _ := auth.UserID(r.Context())

	count, err := h.svc.CountPendingBySeller(r.Context(), sellerID)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(map[string]int{"pending": count}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
