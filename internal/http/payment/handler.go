package payment

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mbakke/torget/internal/http/auth"
	"github.com/mbakke/torget/internal/http/httperr"
	"github.com/mbakke/torget/internal/payment"
)

type Handler struct {
	svc *payment.Service
}

func NewHandler(svc *payment.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.initiate)
	r.Get("/mine", h.mine)
	r.Get("/sales", h.sales)
	r.Get("/stats", h.stats)
	r.Get("/{id}", h.get)
	r.Post("/{id}/complete", h.complete)
	r.Post("/{id}/cancel", h.cancel)
	r.Post("/{id}/fail", h.fail)
	r.Post("/{id}/refund", h.refund)
}

type initiateRequest struct {
	ListingID *uuid.UUID     `json:"listing_id,omitempty"`
	OfferID   *uuid.UUID     `json:"offer_id,omitempty"`
	Method    payment.Method `json:"payment_method"`
}

func (h *Handler) initiate(w http.ResponseWriter, r *http.Request) {
	buyerID, _ := auth.UserID(r.Context())

	var req initiateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.svc.Initiate(r.Context(), buyerID, payment.InitiateParams{
		ListingID: req.ListingID,
		OfferID:   req.OfferID,
		Method:    req.Method,
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
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

	t, err := h.svc.Get(r.Context(), id, actorID)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type settleRequest struct {
	Reference string `json:"payment_reference"`
}

func (h *Handler) complete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req settleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.svc.Complete(r.Context(), id, req.Reference)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req settleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.svc.Fail(r.Context(), id, req.Reference)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type reasonRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	h.abort(w, r, h.svc.Cancel)
}

func (h *Handler) refund(w http.ResponseWriter, r *http.Request) {
	h.abort(w, r, h.svc.Refund)
}

func (h *Handler) abort(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, transactionID, actorID uuid.UUID, reason string) (*payment.Transaction, error)) {
	actorID, _ := auth.UserID(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req reasonRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	t, err := op(r.Context(), id, actorID, req.Reason)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) mine(w http.ResponseWriter, r *http.Request) {
	buyerID, _ := auth.UserID(r.Context())

	transactions, err := h.svc.ListByBuyer(r.Context(), buyerID, statusFilter(r))
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(transactions)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) sales(w http.ResponseWriter, r *http.Request) {
	sellerID, _ := auth.UserID(r.Context())

	transactions, err := h.svc.ListBySeller(r.Context(), sellerID, statusFilter(r))
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(transactions)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	sellerID, _ := auth.UserID(r.Context())

	stats, err := h.svc.Stats(r.Context(), sellerID)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toStatsResponse(stats)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func statusFilter(r *http.Request) *payment.Status {
	if s := r.URL.Query().Get("status"); s != "" {
		status := payment.Status(s)
		return &status
	}

	return nil
}
