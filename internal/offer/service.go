package offer

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
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=offer
type Repository interface {
	CreateOffer(ctx context.Context, o *Offer) error
	GetOffer(ctx context.Context, id uuid.UUID) (*Offer, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	ListByListing(ctx context.Context, listingID uuid.UUID) ([]*Offer, error)
	ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*Offer, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*Offer, error)
	CountPendingBySeller(ctx context.Context, sellerID uuid.UUID) (int, error)
	ExpirePending(ctx context.Context, now time.Time) (int64, error)

	BeginAccept(ctx context.Context, offerID uuid.UUID) (AcceptTx, error)
}

// AcceptTx is the scoped transaction for an offer acceptance. BeginAccept
// locks the listing row before the offer row, so concurrent accepts and
// payment operations on the same listing serialize on the listing row.
type AcceptTx interface {
	Offer() *Offer
	Listing() *listing.Listing
	AcceptOffer(ctx context.Context) error
	ReserveListing(ctx context.Context) error
	// RejectOtherPending re-derives the listing's still-pending offers from
	// storage after the flip and marks them rejected. It must never work
	// from a snapshot taken before BeginAccept.
	RejectOtherPending(ctx context.Context) ([]*Offer, error)
	Commit() error
	Rollback() error
}

// Listings is the slice of the listing lifecycle manager the engine reads.
type Listings interface {
	Get(ctx context.Context, id uuid.UUID) (*listing.Listing, error)
}

// Notifier delivers notes best-effort after a state change has committed.
type Notifier interface {
	Notify(ctx context.Context, note notification.Note) error
}

// offerTTL is how long a submitted offer stays open for the seller.
const offerTTL = 7 * 24 * time.Hour

type Service struct {
	repo     Repository
	listings Listings
	notifier Notifier
	now      func() time.Time
}

type Option func(*Service)

// WithNow overrides the clock, for expiry-sensitive tests.
func WithNow(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo Repository, listings Listings, notifier Notifier, opts ...Option) *Service {
	s := &Service{repo: repo, listings: listings, notifier: notifier, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

type SubmitParams struct {
	ListingID uuid.UUID
	Amount    decimal.Decimal
	Message   string
}

// Submit creates a pending offer on an active listing that allows offers.
func (s *Service) Submit(ctx context.Context, buyerID uuid.UUID, params SubmitParams) (*Offer, error) {
	if !params.Amount.IsPositive() {
		return nil, apperr.Validation("amount", "must be greater than zero")
	}

	l, err := s.listings.Get(ctx, params.ListingID)
	if err != nil {
		return nil, err
	}

	if l.SellerID == buyerID {
		return nil, apperr.ErrForbidden
	}

	if l.Status != listing.StatusActive || !l.AllowOffers {
		return nil, apperr.ErrInvalidState
	}

	o := &Offer{
		ListingID: params.ListingID,
		BuyerID:   buyerID,
		Amount:    params.Amount,
		Message:   params.Message,
		Status:    StatusPending,
		ExpiresAt: s.now().Add(offerTTL),
	}
	if err := s.repo.CreateOffer(ctx, o); err != nil {
		return nil, err
	}

	slog.Info("offer submitted", "offer_id", o.ID, "listing_id", l.ID, "buyer_id", buyerID)

	s.notify(ctx, notification.Note{
		UserID:      l.SellerID,
		Type:        notification.TypeOffer,
		ReferenceID: o.ID,
		Title:       "New offer on your listing",
		Body:        fmt.Sprintf("You received an offer of %s %s for %q.", o.Amount, l.Currency, l.Title),
	})

	return o, nil
}

// Accept accepts a pending offer on behalf of the listing's seller. In one
// scoped transaction it marks the offer accepted, reserves the listing and
// rejects every other pending offer on it. A listing already flipped by a
// competing accept or payment is observed under the row lock and fails with
// invalid state.
func (s *Service) Accept(ctx context.Context, sellerID, offerID uuid.UUID) (*Offer, error) {
	atx, err := s.repo.BeginAccept(ctx, offerID)
	if err != nil {
		return nil, err
	}
	defer atx.Rollback()

	o := atx.Offer()
	l := atx.Listing()

	if l.SellerID != sellerID {
		return nil, apperr.ErrForbidden
	}

	if o.Status != StatusPending {
		return nil, apperr.ErrInvalidState
	}

	if l.Status != listing.StatusActive {
		return nil, apperr.ErrInvalidState
	}

	if err := atx.AcceptOffer(ctx); err != nil {
		return nil, fmt.Errorf("accepting offer: %w", err)
	}

	if err := atx.ReserveListing(ctx); err != nil {
		return nil, fmt.Errorf("reserving listing: %w", err)
	}

	rejected, err := atx.RejectOtherPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("rejecting competing offers: %w", err)
	}

	if err := atx.Commit(); err != nil {
		return nil, fmt.Errorf("committing accept: %w", err)
	}

	o.Status = StatusAccepted

	slog.Info("offer accepted", "offer_id", o.ID, "listing_id", l.ID, "rejected", len(rejected))

	notes := make([]notification.Note, 0, len(rejected)+1)
	notes = append(notes, notification.Note{
		UserID:      o.BuyerID,
		Type:        notification.TypeOffer,
		ReferenceID: o.ID,
		Title:       "Offer accepted",
		Body:        fmt.Sprintf("Your offer on %q was accepted. Please proceed to payment.", l.Title),
	})

	for _, r := range rejected {
		notes = append(notes, notification.Note{
			UserID:      r.BuyerID,
			Type:        notification.TypeOffer,
			ReferenceID: r.ID,
			Title:       "Offer rejected",
			Body:        fmt.Sprintf("Your offer on %q was rejected because another offer was accepted.", l.Title),
		})
	}

	s.notify(ctx, notes...)

	return o, nil
}

// Reject declines a pending offer on behalf of the listing's seller.
func (s *Service) Reject(ctx context.Context, sellerID, offerID uuid.UUID) (*Offer, error) {
	o, err := s.repo.GetOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}

	l, err := s.listings.Get(ctx, o.ListingID)
	if err != nil {
		return nil, err
	}

	if l.SellerID != sellerID {
		return nil, apperr.ErrForbidden
	}

	if o.Status != StatusPending {
		return nil, apperr.ErrInvalidState
	}

	if err := s.repo.UpdateStatus(ctx, offerID, StatusRejected); err != nil {
		return nil, err
	}

	o.Status = StatusRejected

	s.notify(ctx, notification.Note{
		UserID:      o.BuyerID,
		Type:        notification.TypeOffer,
		ReferenceID: o.ID,
		Title:       "Offer rejected",
		Body:        fmt.Sprintf("Your offer on %q was rejected.", l.Title),
	})

	return o, nil
}

// Retract withdraws a pending offer on behalf of the buyer who made it.
func (s *Service) Retract(ctx context.Context, buyerID, offerID uuid.UUID) (*Offer, error) {
	o, err := s.repo.GetOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}

	if o.BuyerID != buyerID {
		return nil, apperr.ErrForbidden
	}

	if o.Status != StatusPending {
		return nil, apperr.ErrInvalidState
	}

	if err := s.repo.UpdateStatus(ctx, offerID, StatusRetracted); err != nil {
		return nil, err
	}

	o.Status = StatusRetracted

	l, err := s.listings.Get(ctx, o.ListingID)
	if err != nil {
		slog.Warn("failed to load listing for retract notification", "listing_id", o.ListingID, "error", err)
		return o, nil
	}

	s.notify(ctx, notification.Note{
		UserID:      l.SellerID,
		Type:        notification.TypeOffer,
		ReferenceID: o.ID,
		Title:       "Offer retracted",
		Body:        fmt.Sprintf("A buyer retracted their offer on %q.", l.Title),
	})

	return o, nil
}

// SweepExpired marks every pending offer past its expiry as expired and
// returns how many were swept. Safe to run concurrently with user-driven
// operations: it only touches rows still pending at update time.
func (s *Service) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	count, err := s.repo.ExpirePending(ctx, now)
	if err != nil {
		return 0, err
	}

	if count > 0 {
		slog.Info("expired pending offers", "count", count)
	}

	return count, nil
}

// Get returns an offer to one of its parties.
func (s *Service) Get(ctx context.Context, id, actorID uuid.UUID) (*Offer, error) {
	o, err := s.repo.GetOffer(ctx, id)
	if err != nil {
		return nil, err
	}

	if o.BuyerID == actorID {
		return o, nil
	}

	l, err := s.listings.Get(ctx, o.ListingID)
	if err != nil {
		return nil, err
	}

	if l.SellerID != actorID {
		return nil, apperr.ErrForbidden
	}

	return o, nil
}

// ListForListing returns every offer on a listing to the listing's seller.
func (s *Service) ListForListing(ctx context.Context, sellerID, listingID uuid.UUID) ([]*Offer, error) {
	l, err := s.listings.Get(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if l.SellerID != sellerID {
		return nil, apperr.ErrForbidden
	}

	return s.repo.ListByListing(ctx, listingID)
}

func (s *Service) ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*Offer, error) {
	return s.repo.ListByBuyer(ctx, buyerID)
}

func (s *Service) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*Offer, error) {
	return s.repo.ListBySeller(ctx, sellerID)
}

func (s *Service) CountPendingBySeller(ctx context.Context, sellerID uuid.UUID) (int, error) {
	return s.repo.CountPendingBySeller(ctx, sellerID)
}

func (s *Service) notify(ctx context.Context, notes ...notification.Note) {
	for _, note := range notes {
		if err := s.notifier.Notify(ctx, note); err != nil {
			slog.Warn("failed to deliver notification", "user_id", note.UserID, "type", note.Type, "error", err)
		}
	}
}
