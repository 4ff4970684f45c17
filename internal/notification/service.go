package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=notification
type Repository interface {
	CreateNotification(ctx context.Context, n *Notification) error
	ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]*Notification, error)
	ListUnread(ctx context.Context, userID uuid.UUID) ([]*Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) (*Notification, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	DeleteRead(ctx context.Context, olderThan time.Time) (int64, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Notify stores a note in the recipient's inbox. Callers treat failures as
// best-effort: log and move on.
func (s *Service) Notify(ctx context.Context, note Note) error {
	n := &Notification{
		UserID:      note.UserID,
		Type:        note.Type,
		ReferenceID: note.ReferenceID,
		Title:       note.Title,
		Body:        note.Body,
	}

	return s.repo.CreateNotification(ctx, n)
}

func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]*Notification, error) {
	if limit <= 0 {
		limit = 50
	}

	return s.repo.ListForUser(ctx, userID, limit)
}

func (s *Service) Unread(ctx context.Context, userID uuid.UUID) ([]*Notification, error) {
	return s.repo.ListUnread(ctx, userID)
}

func (s *Service) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.CountUnread(ctx, userID)
}

// MarkRead marks a single notification as read. The repository scopes the
// update to userID, so marking someone else's notification reports NotFound.
func (s *Service) MarkRead(ctx context.Context, id, userID uuid.UUID) (*Notification, error) {
	return s.repo.MarkRead(ctx, id, userID)
}

func (s *Service) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllRead(ctx, userID)
}

// PurgeRead removes read notifications older than the given cutoff and
// returns how many were deleted.
func (s *Service) PurgeRead(ctx context.Context, olderThan time.Time) (int64, error) {
	return s.repo.DeleteRead(ctx, olderThan)
}
