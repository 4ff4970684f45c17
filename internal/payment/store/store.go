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
	"github.com/mbakke/torget/internal/payment"
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

const selectTransactionColumns = `
	t.id, t.listing_id, t.buyer_id, t.seller_id, t.offer_id, t.amount, t.currency,
	t.payment_method, t.payment_reference, t.status, t.created_at, t.completed_at, t.cancelled_at
`

func scanTransaction(s scanner) (*payment.Transaction, error) {
	var t payment.Transaction

	var methodStr, statusStr string

	if err := s.Scan(
		&t.ID, &t.ListingID, &t.BuyerID, &t.SellerID, &t.OfferID, &t.Amount, &t.Currency,
		&methodStr, &t.Reference, &statusStr, &t.CreatedAt, &t.CompletedAt, &t.CancelledAt,
	); err != nil {
		return nil, err
	}

	t.Method = payment.Method(methodStr)
	t.Status = payment.Status(statusStr)

	return &t, nil
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

func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*payment.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		WHERE t.id = $1`

	t, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return t, nil
}

func (s *Store) ListByBuyer(ctx context.Context, buyerID uuid.UUID, status *payment.Status) ([]*payment.Transaction, error) {
	return s.listByParty(ctx, "buyer_id", buyerID, status)
}

func (s *Store) ListBySeller(ctx context.Context, sellerID uuid.UUID, status *payment.Status) ([]*payment.Transaction, error) {
	return s.listByParty(ctx, "seller_id", sellerID, status)
}

func (s *Store) listByParty(ctx context.Context, column string, partyID uuid.UUID, status *payment.Status) ([]*payment.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		WHERE t.` + column + ` = $1`

	args := []any{partyID}

	if status != nil {
		query += " AND t.status = $2"

		args = append(args, *status)
	}

	query += " ORDER BY t.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var ts []*payment.Transaction

	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		ts = append(ts, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return ts, nil
}

func (s *Store) SellerStats(ctx context.Context, sellerID uuid.UUID, since time.Time) (*payment.SellerStats, error) {
	query := `
		SELECT COUNT(*),
			COALESCE(SUM(amount), 0),
			COUNT(*) FILTER (WHERE completed_at >= $2)
		FROM transactions
		WHERE seller_id = $1 AND status = 'completed'
	`

	var stats payment.SellerStats
	if err := s.db.QueryRowContext(ctx, query, sellerID, since).Scan(
		&stats.CompletedSales, &stats.TotalRevenue, &stats.RecentSales,
	); err != nil {
		return nil, fmt.Errorf("computing seller stats: %w", err)
	}

	return &stats, nil
}

type checkoutTx struct {
	tx      *sql.Tx
	listing *listing.Listing
	offer   *offer.Offer
}

// BeginCheckout opens the scoped transaction for a direct purchase, locking
// the listing row.
func (s *Store) BeginCheckout(ctx context.Context, listingID uuid.UUID) (payment.CheckoutTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning checkout tx: %w", err)
	}

	l, err := lockListing(ctx, dbTx, listingID)
	if err != nil {
		dbTx.Rollback()
		return nil, err
	}

	return &checkoutTx{tx: dbTx, listing: l}, nil
}

// BeginCheckoutForOffer opens the scoped transaction for an offer-based
// purchase. The listing row is locked before the offer row, the same order
// the offer engine uses.
func (s *Store) BeginCheckoutForOffer(ctx context.Context, offerID uuid.UUID) (payment.CheckoutTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning checkout tx: %w", err)
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

	l, err := lockListing(ctx, dbTx, o.ListingID)
	if err != nil {
		dbTx.Rollback()
		return nil, err
	}

	o, err = scanOffer(dbTx.QueryRowContext(ctx,
		`SELECT `+selectOfferColumns+` FROM offers o WHERE o.id = $1 FOR UPDATE`, offerID))
	if err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("locking offer: %w", err)
	}

	return &checkoutTx{tx: dbTx, listing: l, offer: o}, nil
}

func lockListing(ctx context.Context, dbTx *sql.Tx, listingID uuid.UUID) (*listing.Listing, error) {
	l, err := scanListing(dbTx.QueryRowContext(ctx,
		`SELECT `+selectListingColumns+` FROM listings l WHERE l.id = $1 AND l.deleted_at IS NULL FOR UPDATE`,
		listingID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.ErrNotFound
		}

		return nil, fmt.Errorf("locking listing: %w", err)
	}

	return l, nil
}

func (ckt *checkoutTx) Listing() *listing.Listing { return ckt.listing }
func (ckt *checkoutTx) Offer() *offer.Offer       { return ckt.offer }
func (ckt *checkoutTx) Commit() error             { return ckt.tx.Commit() }
func (ckt *checkoutTx) Rollback() error           { return ckt.tx.Rollback() }

func (ckt *checkoutTx) HasPendingTransaction(ctx context.Context) (bool, error) {
	var exists bool

	err := ckt.tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM transactions WHERE listing_id = $1 AND status = 'pending')`,
		ckt.listing.ID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking pending transactions: %w", err)
	}

	return exists, nil
}

func (ckt *checkoutTx) CreateTransaction(ctx context.Context, t *payment.Transaction) error {
	query := `
		INSERT INTO transactions (listing_id, buyer_id, seller_id, offer_id, amount, currency,
			payment_method, payment_reference, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created_at
	`

	err := ckt.tx.QueryRowContext(ctx, query,
		t.ListingID,
		t.BuyerID,
		t.SellerID,
		t.OfferID,
		t.Amount,
		t.Currency,
		t.Method,
		t.Reference,
		t.Status,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (ckt *checkoutTx) ReserveListing(ctx context.Context) error {
	_, err := ckt.tx.ExecContext(ctx,
		`UPDATE listings SET status = $1, updated_at = NOW() WHERE id = $2`,
		listing.StatusReserved, ckt.listing.ID,
	)

	return err
}

type settlementTx struct {
	tx      *sql.Tx
	txn     *payment.Transaction
	listing *listing.Listing
}

// BeginSettlement opens the scoped transaction for resolving a payment.
// Lock order: listing first, then the transaction row, then the linked
// offer if any.
func (s *Store) BeginSettlement(ctx context.Context, transactionID uuid.UUID) (payment.SettlementTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning settlement tx: %w", err)
	}

	// Unlocked read to learn the listing id.
	t, err := scanTransaction(dbTx.QueryRowContext(ctx,
		`SELECT `+selectTransactionColumns+` FROM transactions t WHERE t.id = $1`, transactionID))
	if err != nil {
		dbTx.Rollback()

		if err == sql.ErrNoRows {
			return nil, apperr.ErrNotFound
		}

		return nil, fmt.Errorf("reading transaction: %w", err)
	}

	l, err := lockListing(ctx, dbTx, t.ListingID)
	if err != nil {
		dbTx.Rollback()
		return nil, err
	}

	t, err = scanTransaction(dbTx.QueryRowContext(ctx,
		`SELECT `+selectTransactionColumns+` FROM transactions t WHERE t.id = $1 FOR UPDATE`, transactionID))
	if err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("locking transaction: %w", err)
	}

	if t.OfferID != nil {
		if _, err := dbTx.ExecContext(ctx,
			`SELECT 1 FROM offers WHERE id = $1 FOR UPDATE`, *t.OfferID); err != nil {
			dbTx.Rollback()
			return nil, fmt.Errorf("locking offer: %w", err)
		}
	}

	return &settlementTx{tx: dbTx, txn: t, listing: l}, nil
}

func (stx *settlementTx) Transaction() *payment.Transaction { return stx.txn }
func (stx *settlementTx) Listing() *listing.Listing         { return stx.listing }
func (stx *settlementTx) Commit() error                     { return stx.tx.Commit() }
func (stx *settlementTx) Rollback() error                   { return stx.tx.Rollback() }

func (stx *settlementTx) MarkCompleted(ctx context.Context) error {
	err := stx.tx.QueryRowContext(ctx,
		`UPDATE transactions SET status = 'completed', completed_at = NOW() WHERE id = $1
		RETURNING completed_at`,
		stx.txn.ID,
	).Scan(&stx.txn.CompletedAt)
	if err != nil {
		return fmt.Errorf("marking transaction completed: %w", err)
	}

	stx.txn.Status = payment.StatusCompleted

	return nil
}

func (stx *settlementTx) MarkCancelled(ctx context.Context) error {
	return stx.markAborted(ctx, payment.StatusCancelled)
}

func (stx *settlementTx) MarkFailed(ctx context.Context) error {
	return stx.markAborted(ctx, payment.StatusFailed)
}

func (stx *settlementTx) markAborted(ctx context.Context, status payment.Status) error {
	err := stx.tx.QueryRowContext(ctx,
		`UPDATE transactions SET status = $1, cancelled_at = NOW() WHERE id = $2
		RETURNING cancelled_at`,
		status, stx.txn.ID,
	).Scan(&stx.txn.CancelledAt)
	if err != nil {
		return fmt.Errorf("marking transaction %s: %w", status, err)
	}

	stx.txn.Status = status

	return nil
}

func (stx *settlementTx) MarkRefunded(ctx context.Context) error {
	_, err := stx.tx.ExecContext(ctx,
		`UPDATE transactions SET status = 'refunded' WHERE id = $1`,
		stx.txn.ID,
	)
	if err != nil {
		return fmt.Errorf("marking transaction refunded: %w", err)
	}

	stx.txn.Status = payment.StatusRefunded

	return nil
}

func (stx *settlementTx) UpdateListingStatus(ctx context.Context, status listing.Status) error {
	_, err := stx.tx.ExecContext(ctx,
		`UPDATE listings SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, stx.listing.ID,
	)

	return err
}

// ReopenOffer resets the linked offer to pending, re-opening negotiation
// after a cancelled or failed payment.
func (stx *settlementTx) ReopenOffer(ctx context.Context) error {
	if stx.txn.OfferID == nil {
		return nil
	}

	_, err := stx.tx.ExecContext(ctx,
		`UPDATE offers SET status = 'pending', updated_at = NOW() WHERE id = $1`,
		*stx.txn.OfferID,
	)

	return err
}
