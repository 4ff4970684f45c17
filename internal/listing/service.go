package listing

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mbakke/torget/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=listing
type Repository interface {
	CreateListing(ctx context.Context, l *Listing) error
	GetListing(ctx context.Context, id uuid.UUID) (*Listing, error)
	UpdateListing(ctx context.Context, l *Listing) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	IncrementViews(ctx context.Context, id uuid.UUID) (*Listing, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*Listing, error)
	ListActive(ctx context.Context, filter ListFilter) ([]*Listing, error)
}

// Recorder keeps per-user browsing history. Recording is best-effort and
// never affects the outcome of a view.
type Recorder interface {
	Record(ctx context.Context, userID, listingID uuid.UUID) error
}

// defaultTTL is how long a listing stays up when no expiry is given.
const defaultTTL = 30 * 24 * time.Hour

type Service struct {
	repo    Repository
	history Recorder
	now     func() time.Time
}

type Option func(*Service)

// WithNow overrides the clock, for expiry-sensitive tests.
func WithNow(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo Repository, history Recorder, opts ...Option) *Service {
	s := &Service{repo: repo, history: history, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

type CreateParams struct {
	Title       string
	Description string
	Category    string
	Price       decimal.Decimal
	Currency    string
	Quantity    int
	Condition   Condition
	AllowOffers bool
	Draft       bool
	ExpiresAt   *time.Time
}

func (s *Service) Create(ctx context.Context, sellerID uuid.UUID, params CreateParams) (*Listing, error) {
	if params.Title == "" {
		return nil, apperr.Validation("title", "must not be empty")
	}

	if params.Category == "" {
		return nil, apperr.Validation("category", "must not be empty")
	}

	if !params.Price.IsPositive() {
		return nil, apperr.Validation("price", "must be greater than zero")
	}

	if params.Quantity < 1 {
		return nil, apperr.Validation("quantity", "must be at least 1")
	}

	status := StatusActive
	if params.Draft {
		status = StatusDraft
	}

	expiresAt := s.now().Add(defaultTTL)

	if params.ExpiresAt != nil {
		if !params.ExpiresAt.After(s.now()) {
			return nil, apperr.Validation("expires_at", "must be in the future")
		}

		expiresAt = *params.ExpiresAt
	}

	currency := params.Currency
	if currency == "" {
		currency = "NOK"
	}

	condition := params.Condition
	if condition == "" {
		condition = ConditionGood
	}

	l := &Listing{
		SellerID:    sellerID,
		Title:       params.Title,
		Description: params.Description,
		Category:    params.Category,
		Price:       params.Price,
		Currency:    currency,
		Quantity:    params.Quantity,
		Condition:   condition,
		AllowOffers: params.AllowOffers,
		Status:      status,
		ExpiresAt:   expiresAt,
	}
	if err := s.repo.CreateListing(ctx, l); err != nil {
		return nil, err
	}

	slog.Info("listing created", "listing_id", l.ID, "seller_id", sellerID, "status", l.Status)

	return l, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Listing, error) {
	return s.repo.GetListing(ctx, id)
}

// View increments the view counter exactly once and, for a known viewer,
// records the visit in browsing history.
func (s *Service) View(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*Listing, error) {
	l, err := s.repo.IncrementViews(ctx, id)
	if err != nil {
		return nil, err
	}

	if viewerID != nil {
		if err := s.history.Record(ctx, *viewerID, id); err != nil {
			slog.Warn("failed to record browsing history", "listing_id", id, "error", err)
		}
	}

	return l, nil
}

type UpdateParams struct {
	Title       *string
	Description *string
	Category    *string
	Price       *decimal.Decimal
	Quantity    *int
	Condition   *Condition
	AllowOffers *bool
	ExpiresAt   *time.Time
}

// Update applies a seller's partial edit of the mutable fields.
func (s *Service) Update(ctx context.Context, id, sellerID uuid.UUID, params UpdateParams) (*Listing, error) {
	l, err := s.repo.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}

	if l.SellerID != sellerID {
		return nil, apperr.ErrForbidden
	}

	if params.Title != nil {
		if *params.Title == "" {
			return nil, apperr.Validation("title", "must not be empty")
		}

		l.Title = *params.Title
	}

	if params.Description != nil {
		l.Description = *params.Description
	}

	if params.Category != nil {
		if *params.Category == "" {
			return nil, apperr.Validation("category", "must not be empty")
		}

		l.Category = *params.Category
	}

	if params.Price != nil {
		if !params.Price.IsPositive() {
			return nil, apperr.Validation("price", "must be greater than zero")
		}

		l.Price = *params.Price
	}

	if params.Quantity != nil {
		if *params.Quantity < 1 {
			return nil, apperr.Validation("quantity", "must be at least 1")
		}

		l.Quantity = *params.Quantity
	}

	if params.Condition != nil {
		l.Condition = *params.Condition
	}

	if params.AllowOffers != nil {
		l.AllowOffers = *params.AllowOffers
	}

	if params.ExpiresAt != nil {
		l.ExpiresAt = *params.ExpiresAt
	}

	if err := s.repo.UpdateListing(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}

// ChangeStatus moves the listing to newStatus on behalf of its seller.
func (s *Service) ChangeStatus(ctx context.Context, id, actorID uuid.UUID, newStatus Status) (*Listing, error) {
	l, err := s.repo.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}

	if l.SellerID != actorID {
		return nil, apperr.ErrForbidden
	}

	if !l.Status.CanTransitionTo(newStatus) {
		return nil, apperr.ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}

	slog.Info("listing status changed", "listing_id", id, "from", l.Status, "to", newStatus)
	l.Status = newStatus

	return l, nil
}

// Delete is a seller's soft delete, allowed only where the transition table
// permits it.
func (s *Service) Delete(ctx context.Context, id, actorID uuid.UUID) error {
	l, err := s.repo.GetListing(ctx, id)
	if err != nil {
		return err
	}

	if l.SellerID != actorID {
		return apperr.ErrForbidden
	}

	if !l.Status.CanTransitionTo(StatusDeleted) {
		return apperr.ErrInvalidTransition
	}

	return s.repo.SoftDelete(ctx, id)
}

// ForceDelete is the moderator's soft delete; it skips the ownership check
// and is allowed from any status.
func (s *Service) ForceDelete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetListing(ctx, id); err != nil {
		return err
	}

	return s.repo.SoftDelete(ctx, id)
}

type ListFilter struct {
	Category *string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

func (s *Service) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*Listing, error) {
	return s.repo.ListBySeller(ctx, sellerID)
}

func (s *Service) ListActive(ctx context.Context, filter ListFilter) ([]*Listing, error) {
	return s.repo.ListActive(ctx, filter)
}
