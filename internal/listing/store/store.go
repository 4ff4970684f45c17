package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mbakke/torget/internal/apperr"
	"github.com/mbakke/torget/internal/listing"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectListingColumns = `
	l.id, l.seller_id, l.title, l.description, l.category, l.price, l.currency,
	l.quantity, l.condition, l.allow_offers, l.status, l.views, l.expires_at,
	l.created_at, l.updated_at, l.deleted_at
`

// scanListing reads a listing row in selectListingColumns order.
func scanListing(s scanner) (*listing.Listing, error) {
	var l listing.Listing

	var statusStr, conditionStr string

	if err := s.Scan(
		&l.ID, &l.SellerID, &l.Title, &l.Description, &l.Category, &l.Price, &l.Currency,
		&l.Quantity, &conditionStr, &l.AllowOffers, &statusStr, &l.Views, &l.ExpiresAt,
		&l.CreatedAt, &l.UpdatedAt, &l.DeletedAt,
	); err != nil {
		return nil, err
	}

	l.Status = listing.Status(statusStr)
	l.Condition = listing.Condition(conditionStr)

	return &l, nil
}

func (s *Store) CreateListing(ctx context.Context, l *listing.Listing) error {
	query := `
		INSERT INTO listings (seller_id, title, description, category, price, currency,
			quantity, condition, allow_offers, status, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		l.SellerID,
		l.Title,
		l.Description,
		l.Category,
		l.Price,
		l.Currency,
		l.Quantity,
		l.Condition,
		l.AllowOffers,
		l.Status,
		l.ExpiresAt,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating listing: %w", err)
	}

	return nil
}

func (s *Store) GetListing(ctx context.Context, id uuid.UUID) (*listing.Listing, error) {
	query := `SELECT ` + selectListingColumns + `
		FROM listings l
		WHERE l.id = $1 AND l.deleted_at IS NULL`

	l, err := scanListing(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.ErrNotFound
		}

		return nil, fmt.Errorf("getting listing: %w", err)
	}

	return l, nil
}

func (s *Store) UpdateListing(ctx context.Context, l *listing.Listing) error {
	query := `
		UPDATE listings
		SET title = $1, description = $2, category = $3, price = $4, quantity = $5,
			condition = $6, allow_offers = $7, expires_at = $8, updated_at = NOW()
		WHERE id = $9 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query,
		l.Title,
		l.Description,
		l.Category,
		l.Price,
		l.Quantity,
		l.Condition,
		l.AllowOffers,
		l.ExpiresAt,
		l.ID,
	)
	if err != nil {
		return fmt.Errorf("updating listing: %w", err)
	}

	return nil
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status listing.Status) error {
	query := `
		UPDATE listings
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating listing status: %w", err)
	}

	return nil
}

func (s *Store) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE listings
		SET status = $1, deleted_at = NOW(), updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query, listing.StatusDeleted, id)
	if err != nil {
		return fmt.Errorf("deleting listing: %w", err)
	}

	return nil
}

// IncrementViews bumps the view counter and returns the updated listing.
func (s *Store) IncrementViews(ctx context.Context, id uuid.UUID) (*listing.Listing, error) {
	query := `
		UPDATE listings l
		SET views = views + 1
		WHERE l.id = $1 AND l.deleted_at IS NULL
		RETURNING ` + selectListingColumns

	l, err := scanListing(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.ErrNotFound
		}

		return nil, fmt.Errorf("incrementing views: %w", err)
	}

	return l, nil
}

func (s *Store) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*listing.Listing, error) {
	query := `SELECT ` + selectListingColumns + `
		FROM listings l
		WHERE l.seller_id = $1 AND l.deleted_at IS NULL
		ORDER BY l.created_at DESC`

	return s.queryListings(ctx, query, sellerID)
}

func (s *Store) ListActive(ctx context.Context, filter listing.ListFilter) ([]*listing.Listing, error) {
	query := `SELECT ` + selectListingColumns + `
		FROM listings l
		WHERE l.status = 'active' AND l.deleted_at IS NULL`

	var args []any

	argIdx := 1

	if filter.Category != nil {
		query += fmt.Sprintf(" AND l.category = $%d", argIdx)

		args = append(args, *filter.Category)
		argIdx++
	}

	if filter.MinPrice != nil {
		query += fmt.Sprintf(" AND l.price >= $%d", argIdx)

		args = append(args, *filter.MinPrice)
		argIdx++
	}

	if filter.MaxPrice != nil {
		query += fmt.Sprintf(" AND l.price <= $%d", argIdx)

		args = append(args, *filter.MaxPrice)
		argIdx++
	}

	query += " ORDER BY l.created_at DESC"

	return s.queryListings(ctx, query, args...)
}

func (s *Store) queryListings(ctx context.Context, query string, args ...any) ([]*listing.Listing, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing listings: %w", err)
	}
	defer rows.Close()

	var ls []*listing.Listing

	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning listing: %w", err)
		}

		ls = append(ls, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating listing rows: %w", err)
	}

	return ls, nil
}
