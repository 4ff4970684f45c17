package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mbakke/torget/internal/history"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Upsert(ctx context.Context, userID, listingID uuid.UUID) error {
	query := `
		INSERT INTO browsing_history (user_id, listing_id, view_count, viewed_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (user_id, listing_id)
		DO UPDATE SET view_count = browsing_history.view_count + 1, viewed_at = NOW()
	`

	_, err := s.db.ExecContext(ctx, query, userID, listingID)
	if err != nil {
		return fmt.Errorf("recording browsing history: %w", err)
	}

	return nil
}

func (s *Store) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]history.Entry, error) {
	query := `
		SELECT listing_id, view_count, viewed_at
		FROM browsing_history
		WHERE user_id = $1
		ORDER BY viewed_at DESC
		LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing browsing history: %w", err)
	}
	defer rows.Close()

	var entries []history.Entry

	for rows.Next() {
		var e history.Entry
		if err := rows.Scan(&e.ListingID, &e.ViewCount, &e.ViewedAt); err != nil {
			return nil, fmt.Errorf("scanning browsing history: %w", err)
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating browsing history rows: %w", err)
	}

	return entries, nil
}
