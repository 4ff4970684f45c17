package offer

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the lifecycle state of an offer.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusExpired   Status = "expired"
	StatusRetracted Status = "retracted"
)

// Terminal reports whether the status can never change again.
func (s Status) Terminal() bool {
	return s != StatusPending
}

// Offer represents a buyer's bid on a listing.
type Offer struct {
	ID        uuid.UUID
	ListingID uuid.UUID
	BuyerID   uuid.UUID
	Amount    decimal.Decimal
	Message   string
	Status    Status
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt *time.Time
}
