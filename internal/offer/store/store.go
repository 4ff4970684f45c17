package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mbakke/torget/internal/apperr"
	"github.com/mbakke/torget/internal/listing"
	"github.com/mbakke/torget/internal/offer"
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

const selectOfferColumns = `
	o.id, o.listing_id, o.buyer_id, o.amount, o.message, o.status,
	o.expires_at, o.created_at, o.updated_at
`

func scanOffer(s scanner) (*offer.Offer, error) {
	var o offer.Offer

	var statusStr string

	if err := s.Scan(
		&o.ID, &o.ListingID, &o.BuyerID, &o.Amount, &o.Message, &statusStr,
		&o.ExpiresAt, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}

	o.Status = offer.Status(statusStr)

	return &o, nil
}

const selectListingColumns = `
	l.id, l.seller_id, l.title, l.description, l.category, l.price, l.currency,
	l.quantity, l.condition, l.allow_offers, l.status, l.views, l.expires_at,
	l.created_at, l.updated_at, l.deleted_at
`

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

func (s *Store) CreateOffer(ctx context.Context, o *offer.Offer) error {
	query := `
		INSERT INTO offers (listing_id, buyer_id, amount, message, status, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		o.ListingID,
		o.BuyerID,
		o.Amount,
		o.Message,
		o.Status,
		o.ExpiresAt,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating offer: %w", err)
	}

	return nil
}

func (s *Store) GetOffer(ctx context.Context, id uuid.UUID) (*offer.Offer, error) {
	query := `SELECT ` + selectOfferColumns + `
		FROM offers o
		WHERE o.id = $1`

	o, err := scanOffer(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.ErrNotFound
		}

		return nil, fmt.Errorf("getting offer: %w", err)
	}

	return o, nil
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status offer.Status) error {
	query := `
		UPDATE offers
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	_, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating offer status: %w", err)
	}

	return nil
}

func (s *Store) ListByListing(ctx context.Context, listingID uuid.UUID) ([]*offer.Offer, error) {
	query := `SELECT ` + selectOfferColumns + `
		FROM offers o
		WHERE o.listing_id = $1
		ORDER BY o.created_at DESC`

	return s.queryOffers(ctx, query, listingID)
}

func (s *Store) ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*offer.Offer, error) {
	query := `SELECT ` + selectOfferColumns + `
		FROM offers o
		WHERE o.buyer_id = $1
		ORDER BY o.created_at DESC`

	return s.queryOffers(ctx, query, buyerID)
}

func (s *Store) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*offer.Offer, error) {
	query := `SELECT ` + selectOfferColumns + `
		FROM offers o
		JOIN listings l ON o.listing_id = l.id
		WHERE l.seller_id = $1
		ORDER BY o.created_at DESC`

	return s.queryOffers(ctx, query, sellerID)
}

func (s *Store) CountPendingBySeller(ctx context.Context, sellerID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM offers o
		JOIN listings l ON o.listing_id = l.id
		WHERE l.seller_id = $1 AND o.status = 'pending'
	`

	var count int
	if err := s.db.QueryRowContext(ctx, query, sellerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting pending offers: %w", err)
	}

	return count, nil
}

// ExpirePending flips every pending offer past its expiry in one statement,
// so it cannot race an accept: a row flipped by either side is no longer
// pending for the other.
func (s *Store) ExpirePending(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE offers
		SET status = 'expired', updated_at = NOW()
		WHERE status = 'pending' AND expires_at < $1
	`

	res, err := s.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("expiring offers: %w", err)
	}

	return res.RowsAffected()
}

func (s *Store) queryOffers(ctx context.Context, query string, args ...any) ([]*offer.Offer, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing offers: %w", err)
	}
	defer rows.Close()

	var os []*offer.Offer

	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning offer: %w", err)
		}

		os = append(os, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating offer rows: %w", err)
	}

	return os, nil
}

type acceptTx struct {
	tx      *sql.Tx
	offer   *offer.Offer
	listing *listing.Listing
}

// BeginAccept opens the scoped transaction for an acceptance. The listing
// row is locked before the offer row; every payment-side transaction uses
// the same order, so two actors racing on one listing serialize here.
func (s *Store) BeginAccept(ctx context.Context, offerID uuid.UUID) (offer.AcceptTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning accept tx: %w", err)
	}

	// Unlocked read to learn the listing id.
	o, err := scanOffer(dbTx.QueryRowContext(ctx,
		`SELECT `+selectOfferColumns+` FROM offers o WHERE o.id = $1`, offerID))
	if err != nil {
		dbTx.Rollback()

		if err == sql.ErrNoRows {
			return nil, apperr.ErrNotFound
		}

		return nil, fmt.Errorf("reading offer: %w", err)
	}

	l, err := scanListing(dbTx.QueryRowContext(ctx,
		`SELECT `+selectListingColumns+` FROM listings l WHERE l.id = $1 AND l.deleted_at IS NULL FOR UPDATE`,
		o.ListingID))
	if err != nil {
		dbTx.Rollback()

		if err == sql.ErrNoRows {
			return nil, apperr.ErrNotFound
		}

		return nil, fmt.Errorf("locking listing: %w", err)
	}

	// Re-read the offer under its lock: it may have been flipped while we
	// waited for the listing row.
	o, err = scanOffer(dbTx.QueryRowContext(ctx,
		`SELECT `+selectOfferColumns+` FROM offers o WHERE o.id = $1 FOR UPDATE`, offerID))
	if err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("locking offer: %w", err)
	}

	return &acceptTx{tx: dbTx, offer: o, listing: l}, nil
}

func (atx *acceptTx) Offer() *offer.Offer       { return atx.offer }
func (atx *acceptTx) Listing() *listing.Listing { return atx.listing }
func (atx *acceptTx) Commit() error             { return atx.tx.Commit() }
func (atx *acceptTx) Rollback() error           { return atx.tx.Rollback() }

func (atx *acceptTx) AcceptOffer(ctx context.Context) error {
	_, err := atx.tx.ExecContext(ctx,
		`UPDATE offers SET status = 'accepted', updated_at = NOW() WHERE id = $1`,
		atx.offer.ID,
	)

	return err
}

func (atx *acceptTx) ReserveListing(ctx context.Context) error {
	_, err := atx.tx.ExecContext(ctx,
		`UPDATE listings SET status = $1, updated_at = NOW() WHERE id = $2`,
		listing.StatusReserved, atx.listing.ID,
	)

	return err
}

func (atx *acceptTx) RejectOtherPending(ctx context.Context) ([]*offer.Offer, error) {
	query := `
		UPDATE offers o
		SET status = 'rejected', updated_at = NOW()
		WHERE o.listing_id = $1 AND o.status = 'pending' AND o.id <> $2
		RETURNING ` + selectOfferColumns

	rows, err := atx.tx.QueryContext(ctx, query, atx.listing.ID, atx.offer.ID)
	if err != nil {
		return nil, fmt.Errorf("rejecting competing offers: %w", err)
	}
	defer rows.Close()

	var rejected []*offer.Offer

	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning rejected offer: %w", err)
		}

		rejected = append(rejected, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rejected offers: %w", err)
	}

	return rejected, nil
}
