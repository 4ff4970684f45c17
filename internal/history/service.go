package history

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Entry is one listing in a user's browsing history.
type Entry struct {
	ListingID uuid.UUID
	ViewCount int
	ViewedAt  time.Time
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=history
type Repository interface {
	Upsert(ctx context.Context, userID, listingID uuid.UUID) error
	Recent(ctx context.Context, userID uuid.UUID, limit int) ([]Entry, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record notes that the user viewed the listing. Satisfies the listing
// manager's Recorder; callers treat failures as best-effort.
func (s *Service) Record(ctx context.Context, userID, listingID uuid.UUID) error {
	return s.repo.Upsert(ctx, userID, listingID)
}

// Recent returns the user's most recently viewed listings.
func (s *Service) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	return s.repo.Recent(ctx, userID, limit)
}
