package listing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the lifecycle state of a listing.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusActive   Status = "active"
	StatusReserved Status = "reserved"
	StatusSold     Status = "sold"
	StatusArchived Status = "archived"
	StatusDeleted  Status = "deleted"
)

// transitions lists the statuses reachable from each status. Soft deletion
// from arbitrary states is an admin-only action handled outside this table.
var transitions = map[Status][]Status{
	StatusDraft:    {StatusActive},
	StatusActive:   {StatusReserved, StatusSold, StatusArchived, StatusDeleted},
	StatusReserved: {StatusActive, StatusSold},
	StatusSold:     {StatusActive}, // compensating transition on payment cancellation
}

// CanTransitionTo reports whether next is reachable from s. The offer and
// payment engines consult the same table before flipping listing rows inside
// their scoped transactions.
func (s Status) CanTransitionTo(next Status) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}

	return false
}

// Condition describes the wear of the item being sold.
type Condition string

const (
	ConditionNew     Condition = "new"
	ConditionLikeNew Condition = "like_new"
	ConditionGood    Condition = "good"
	ConditionFair    Condition = "fair"
	ConditionPoor    Condition = "poor"
)

// Listing represents a sellable unit posted by a seller.
type Listing struct {
	ID          uuid.UUID
	SellerID    uuid.UUID
	Title       string
	Description string
	Category    string
	Price       decimal.Decimal
	Currency    string
	Quantity    int
	Condition   Condition
	AllowOffers bool
	Status      Status
	Views       int64
	ExpiresAt   time.Time
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
}
