package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mbakke/torget/internal/apperr"
	"github.com/mbakke/torget/internal/notification"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectNotificationColumns = `
	n.id, n.user_id, n.type, n.reference_id, n.title, n.body, n.read, n.created_at
`

func scanNotification(s scanner) (*notification.Notification, error) {
	var n notification.Notification

	var typeStr string

	if err := s.Scan(
		&n.ID, &n.UserID, &typeStr, &n.ReferenceID, &n.Title, &n.Body, &n.Read, &n.CreatedAt,
	); err != nil {
		return nil, err
	}

	n.Type = notification.Type(typeStr)

	return &n, nil
}

func (s *Store) CreateNotification(ctx context.Context, n *notification.Notification) error {
	query := `
		INSERT INTO notifications (user_id, type, reference_id, title, body, read, created_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		n.UserID,
		n.Type,
		n.ReferenceID,
		n.Title,
		n.Body,
	).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating notification: %w", err)
	}

	return nil
}

func (s *Store) ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]*notification.Notification, error) {
	query := `SELECT ` + selectNotificationColumns + `
		FROM notifications n
		WHERE n.user_id = $1
		ORDER BY n.created_at DESC
		LIMIT $2`

	return s.queryNotifications(ctx, query, userID, limit)
}

func (s *Store) ListUnread(ctx context.Context, userID uuid.UUID) ([]*notification.Notification, error) {
	query := `SELECT ` + selectNotificationColumns + `
		FROM notifications n
		WHERE n.user_id = $1 AND n.read = FALSE
		ORDER BY n.created_at DESC`

	return s.queryNotifications(ctx, query, userID)
}

func (s *Store) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = FALSE`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting unread notifications: %w", err)
	}

	return count, nil
}

func (s *Store) MarkRead(ctx context.Context, id, userID uuid.UUID) (*notification.Notification, error) {
	query := `
		UPDATE notifications n
		SET read = TRUE
		WHERE n.id = $1 AND n.user_id = $2
		RETURNING ` + selectNotificationColumns

	n, err := scanNotification(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.ErrNotFound
		}

		return nil, fmt.Errorf("marking notification read: %w", err)
	}

	return n, nil
}

func (s *Store) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE notifications SET read = TRUE WHERE user_id = $1 AND read = FALSE`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("marking notifications read: %w", err)
	}

	return nil
}

func (s *Store) DeleteRead(ctx context.Context, olderThan time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM notifications WHERE read = TRUE AND created_at < $1`,
		olderThan,
	)
	if err != nil {
		return 0, fmt.Errorf("deleting read notifications: %w", err)
	}

	return res.RowsAffected()
}

func (s *Store) queryNotifications(ctx context.Context, query string, args ...any) ([]*notification.Notification, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer rows.Close()

	var ns []*notification.Notification

	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}

		ns = append(ns, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notification rows: %w", err)
	}

	return ns, nil
}
