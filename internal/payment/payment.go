package payment

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the lifecycle state of a payment transaction.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusRefunded  Status = "refunded"
	StatusCancelled Status = "cancelled"
)

// Method is the payment method chosen by the buyer. Settlement itself happens
// outside this system; the coordinator only tracks transaction state.
type Method string

const (
	MethodCard         Method = "card"
	MethodVipps        Method = "vipps"
	MethodBankTransfer Method = "bank_transfer"
)

func (m Method) Valid() bool {
	switch m {
	case MethodCard, MethodVipps, MethodBankTransfer:
		return true
	}

	return false
}

// Transaction represents a payment attempt binding one listing and one buyer,
// optionally through an accepted offer.
type Transaction struct {
	ID          uuid.UUID
	ListingID   uuid.UUID
	BuyerID     uuid.UUID
	SellerID    uuid.UUID
	OfferID     *uuid.UUID
	Amount      decimal.Decimal
	Currency    string
	Method      Method
	Reference   string
	Status      Status
	CreatedAt   time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time
}

// NewReference generates a payment reference. Uniqueness is enforced by the
// store's unique constraint; the uuid source makes collisions practically
// impossible.
func NewReference() string {
	return "PAY-" + strings.ToUpper(uuid.NewString()[:8])
}
