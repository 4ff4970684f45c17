package payment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mbakke/torget/internal/apperr"
	"github.com/mbakke/torget/internal/listing"
	"github.com/mbakke/torget/internal/notification"
	"github.com/mbakke/torget/internal/offer"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=payment
type Repository interface {
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListByBuyer(ctx context.Context, buyerID uuid.UUID, status *Status) ([]*Transaction, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID, status *Status) ([]*Transaction, error)
	SellerStats(ctx context.Context, sellerID uuid.UUID, since time.Time) (*SellerStats, error)

	BeginCheckout(ctx context.Context, listingID uuid.UUID) (CheckoutTx, error)
	BeginCheckoutForOffer(ctx context.Context, offerID uuid.UUID) (CheckoutTx, error)
	BeginSettlement(ctx context.Context, transactionID uuid.UUID) (SettlementTx, error)
}

// CheckoutTx is the scoped transaction for payment initiation. The listing
// row is locked at begin; for offer-based checkouts the linked offer row is
// locked right after it, matching the lock order used by the offer engine.
type CheckoutTx interface {
	Listing() *listing.Listing
	Offer() *offer.Offer // nil for a direct purchase
	HasPendingTransaction(ctx context.Context) (bool, error)
	CreateTransaction(ctx context.Context, t *Transaction) error
	ReserveListing(ctx context.Context) error
	Commit() error
	Rollback() error
}

// SettlementTx is the scoped transaction for completing, cancelling or
// failing a payment. Lock order is listing, then transaction, then the
// linked offer if any.
type SettlementTx interface {
	Transaction() *Transaction
	Listing() *listing.Listing
	MarkCompleted(ctx context.Context) error
	MarkCancelled(ctx context.Context) error
	MarkFailed(ctx context.Context) error
	MarkRefunded(ctx context.Context) error
	UpdateListingStatus(ctx context.Context, status listing.Status) error
	ReopenOffer(ctx context.Context) error
	Commit() error
	Rollback() error
}

// Notifier delivers notes best-effort after a state change has committed.
type Notifier interface {
	Notify(ctx context.Context, note notification.Note) error
}

// SellerStats summarizes a seller's completed sales.
type SellerStats struct {
	CompletedSales int64
	TotalRevenue   decimal.Decimal
	RecentSales    int64
}

type Service struct {
	repo     Repository
	notifier Notifier
	now      func() time.Time
}

type Option func(*Service)

// WithNow overrides the clock, for tests that pin time.
func WithNow(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo Repository, notifier Notifier, opts ...Option) *Service {
	s := &Service{repo: repo, notifier: notifier, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

type InitiateParams struct {
	ListingID *uuid.UUID
	OfferID   *uuid.UUID
	Method    Method
}

// Initiate creates a pending transaction for a direct purchase (listing id)
// or an offer-based purchase (offer id) and reserves the listing. A listing
// that already has a pending transaction fails with Conflict instead of
// getting a duplicate.
func (s *Service) Initiate(ctx context.Context, buyerID uuid.UUID, params InitiateParams) (*Transaction, error) {
	if !params.Method.Valid() {
		return nil, apperr.Validation("payment_method", "unknown method")
	}

	if (params.ListingID == nil) == (params.OfferID == nil) {
		return nil, apperr.Validation("target", "exactly one of listing_id or offer_id must be given")
	}

	var (
		ckt CheckoutTx
		err error
	)

	if params.ListingID != nil {
		ckt, err = s.repo.BeginCheckout(ctx, *params.ListingID)
	} else {
		ckt, err = s.repo.BeginCheckoutForOffer(ctx, *params.OfferID)
	}

	if err != nil {
		return nil, err
	}
	defer ckt.Rollback()

	l := ckt.Listing()
	o := ckt.Offer()

	t := &Transaction{
		ListingID: l.ID,
		BuyerID:   buyerID,
		SellerID:  l.SellerID,
		Currency:  l.Currency,
		Method:    params.Method,
		Reference: NewReference(),
		Status:    StatusPending,
	}

	if o == nil {
		// Direct purchase: listing must still be up for sale.
		if l.SellerID == buyerID {
			return nil, apperr.ErrForbidden
		}

		if l.Status != listing.StatusActive {
			return nil, apperr.ErrInvalidState
		}

		t.Amount = l.Price
	} else {
		// Offer-based purchase: only the accepted offer's buyer may pay.
		if o.BuyerID != buyerID {
			return nil, apperr.ErrForbidden
		}

		if o.Status != offer.StatusAccepted {
			return nil, apperr.ErrInvalidState
		}

		if l.Status != listing.StatusReserved && l.Status != listing.StatusActive {
			return nil, apperr.ErrInvalidState
		}

		t.OfferID = &o.ID
		t.Amount = o.Amount
	}

	pending, err := ckt.HasPendingTransaction(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking pending transactions: %w", err)
	}

	if pending {
		return nil, apperr.ErrConflict
	}

	if err := ckt.CreateTransaction(ctx, t); err != nil {
		return nil, fmt.Errorf("creating transaction: %w", err)
	}

	if l.Status == listing.StatusActive {
		if err := ckt.ReserveListing(ctx); err != nil {
			return nil, fmt.Errorf("reserving listing: %w", err)
		}
	}

	if err := ckt.Commit(); err != nil {
		return nil, fmt.Errorf("committing checkout: %w", err)
	}

	slog.Info("payment initiated", "transaction_id", t.ID, "listing_id", l.ID, "buyer_id", buyerID)

	s.notify(ctx, notification.Note{
		UserID:      l.SellerID,
		Type:        notification.TypeTransaction,
		ReferenceID: t.ID,
		Title:       "Payment initiated",
		Body:        fmt.Sprintf("A buyer has initiated payment for %q.", l.Title),
	})

	return t, nil
}

// Complete records a confirmed settlement. It is idempotent: completing an
// already-completed transaction returns it unchanged, with no second flip
// and no duplicate notifications.
func (s *Service) Complete(ctx context.Context, transactionID uuid.UUID, reference string) (*Transaction, error) {
	stx, err := s.repo.BeginSettlement(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	defer stx.Rollback()

	t := stx.Transaction()
	l := stx.Listing()

	if t.Reference != reference {
		return nil, apperr.Validation("payment_reference", "does not match")
	}

	if t.Status == StatusCompleted {
		return t, nil
	}

	if t.Status != StatusPending {
		return nil, apperr.ErrInvalidState
	}

	if err := stx.MarkCompleted(ctx); err != nil {
		return nil, fmt.Errorf("completing transaction: %w", err)
	}

	if l.Status != listing.StatusSold {
		if !l.Status.CanTransitionTo(listing.StatusSold) {
			return nil, apperr.ErrInvalidState
		}

		if err := stx.UpdateListingStatus(ctx, listing.StatusSold); err != nil {
			return nil, fmt.Errorf("marking listing sold: %w", err)
		}
	}

	if err := stx.Commit(); err != nil {
		return nil, fmt.Errorf("committing settlement: %w", err)
	}

	slog.Info("payment completed", "transaction_id", t.ID, "listing_id", l.ID)

	s.notify(ctx,
		notification.Note{
			UserID:      t.SellerID,
			Type:        notification.TypeTransaction,
			ReferenceID: t.ID,
			Title:       "Payment completed",
			Body:        fmt.Sprintf("Payment for %q has been completed.", l.Title),
		},
		notification.Note{
			UserID:      t.BuyerID,
			Type:        notification.TypeTransaction,
			ReferenceID: t.ID,
			Title:       "Payment completed",
			Body:        fmt.Sprintf("Your payment for %q has been completed.", l.Title),
		},
	)

	return t, nil
}

// Cancel aborts a pending transaction on behalf of its buyer or seller,
// reactivates the listing and, for an offer-based purchase, reopens the
// linked offer. Competing offers rejected when that offer was accepted stay
// rejected.
func (s *Service) Cancel(ctx context.Context, transactionID, actorID uuid.UUID, reason string) (*Transaction, error) {
	return s.abort(ctx, transactionID, &actorID, reason, false)
}

// Fail records a rejected settlement, applying the same compensating
// transitions as a cancellation.
func (s *Service) Fail(ctx context.Context, transactionID uuid.UUID, reference string) (*Transaction, error) {
	stx, err := s.repo.BeginSettlement(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	defer stx.Rollback()

	if stx.Transaction().Reference != reference {
		return nil, apperr.Validation("payment_reference", "does not match")
	}

	return s.finishAbort(ctx, stx, nil, "settlement was rejected", true)
}

func (s *Service) abort(ctx context.Context, transactionID uuid.UUID, actorID *uuid.UUID, reason string, failed bool) (*Transaction, error) {
	stx, err := s.repo.BeginSettlement(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	defer stx.Rollback()

	return s.finishAbort(ctx, stx, actorID, reason, failed)
}

func (s *Service) finishAbort(ctx context.Context, stx SettlementTx, actorID *uuid.UUID, reason string, failed bool) (*Transaction, error) {
	t := stx.Transaction()
	l := stx.Listing()

	if actorID != nil && *actorID != t.BuyerID && *actorID != t.SellerID {
		return nil, apperr.ErrForbidden
	}

	if t.Status != StatusPending {
		// Completed transactions can only be refunded through the dispute
		// path; everything else already reached a terminal state.
		return nil, apperr.ErrInvalidState
	}

	if failed {
		if err := stx.MarkFailed(ctx); err != nil {
			return nil, fmt.Errorf("failing transaction: %w", err)
		}
	} else {
		if err := stx.MarkCancelled(ctx); err != nil {
			return nil, fmt.Errorf("cancelling transaction: %w", err)
		}
	}

	if l.Status != listing.StatusActive {
		if !l.Status.CanTransitionTo(listing.StatusActive) {
			return nil, apperr.ErrInvalidState
		}

		if err := stx.UpdateListingStatus(ctx, listing.StatusActive); err != nil {
			return nil, fmt.Errorf("reactivating listing: %w", err)
		}
	}

	if t.OfferID != nil {
		if err := stx.ReopenOffer(ctx); err != nil {
			return nil, fmt.Errorf("reopening offer: %w", err)
		}
	}

	if err := stx.Commit(); err != nil {
		return nil, fmt.Errorf("committing cancellation: %w", err)
	}

	slog.Info("payment aborted", "transaction_id", t.ID, "listing_id", l.ID, "failed", failed)

	notes := s.abortNotes(t, l, actorID, reason)
	s.notify(ctx, notes...)

	return t, nil
}

func (s *Service) abortNotes(t *Transaction, l *listing.Listing, actorID *uuid.UUID, reason string) []notification.Note {
	body := fmt.Sprintf("Payment for %q was cancelled.", l.Title)
	if reason != "" {
		body = fmt.Sprintf("Payment for %q was cancelled: %s.", l.Title, reason)
	}

	if actorID == nil {
		// Settlement failure: both parties hear about it.
		return []notification.Note{
			{UserID: t.BuyerID, Type: notification.TypeTransaction, ReferenceID: t.ID, Title: "Payment failed", Body: body},
			{UserID: t.SellerID, Type: notification.TypeTransaction, ReferenceID: t.ID, Title: "Payment failed", Body: body},
		}
	}

	// User cancellation: notify the other party.
	counterpart := t.SellerID
	if *actorID == t.SellerID {
		counterpart = t.BuyerID
	}

	return []notification.Note{
		{UserID: counterpart, Type: notification.TypeTransaction, ReferenceID: t.ID, Title: "Payment cancelled", Body: body},
	}
}

// Refund moves a completed transaction to refunded. This is the dispute
// boundary: no settlement reversal is modeled and the listing stays sold.
func (s *Service) Refund(ctx context.Context, transactionID, actorID uuid.UUID, reason string) (*Transaction, error) {
	stx, err := s.repo.BeginSettlement(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	defer stx.Rollback()

	t := stx.Transaction()

	if actorID != t.BuyerID && actorID != t.SellerID {
		return nil, apperr.ErrForbidden
	}

	if t.Status != StatusCompleted {
		return nil, apperr.ErrInvalidState
	}

	if err := stx.MarkRefunded(ctx); err != nil {
		return nil, fmt.Errorf("refunding transaction: %w", err)
	}

	if err := stx.Commit(); err != nil {
		return nil, fmt.Errorf("committing refund: %w", err)
	}

	counterpart := t.SellerID
	if actorID == t.SellerID {
		counterpart = t.BuyerID
	}

	body := "A payment you were part of has been refunded."
	if reason != "" {
		body = fmt.Sprintf("A payment you were part of has been refunded: %s.", reason)
	}

	s.notify(ctx, notification.Note{
		UserID:      counterpart,
		Type:        notification.TypeTransaction,
		ReferenceID: t.ID,
		Title:       "Payment refunded",
		Body:        body,
	})

	return t, nil
}

// Get returns a transaction to one of its parties.
func (s *Service) Get(ctx context.Context, id, actorID uuid.UUID) (*Transaction, error) {
	t, err := s.repo.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	if t.BuyerID != actorID && t.SellerID != actorID {
		return nil, apperr.ErrForbidden
	}

	return t, nil
}

func (s *Service) ListByBuyer(ctx context.Context, buyerID uuid.UUID, status *Status) ([]*Transaction, error) {
	return s.repo.ListByBuyer(ctx, buyerID, status)
}

func (s *Service) ListBySeller(ctx context.Context, sellerID uuid.UUID, status *Status) ([]*Transaction, error) {
	return s.repo.ListBySeller(ctx, sellerID, status)
}

// Stats summarizes a seller's completed sales; recent means the last 30 days.
func (s *Service) Stats(ctx context.Context, sellerID uuid.UUID) (*SellerStats, error) {
	since := s.now().AddDate(0, 0, -30)

	return s.repo.SellerStats(ctx, sellerID, since)
}

func (s *Service) notify(ctx context.Context, notes ...notification.Note) {
	for _, note := range notes {
		if err := s.notifier.Notify(ctx, note); err != nil {
			slog.Warn("failed to deliver notification", "user_id", note.UserID, "type", note.Type, "error", err)
		}
	}
}
