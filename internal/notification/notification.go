package notification

import (
	"time"

	"github.com/google/uuid"
)

// Type classifies a notification for the recipient's inbox.
type Type string

const (
	TypeOffer       Type = "offer"
	TypeTransaction Type = "transaction"
	TypeMessage     Type = "message"
	TypeSystem      Type = "system"
)

// Note is a notification emitted by a lifecycle operation. Operations collect
// notes while they run and hand them to the gateway only after their state
// change has committed, so delivery can never affect the transactional
// outcome.
type Note struct {
	UserID      uuid.UUID
	Type        Type
	ReferenceID uuid.UUID
	Title       string
	Body        string
}

// Notification is a delivered note in a user's inbox.
type Notification struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        Type
	ReferenceID uuid.UUID
	Title       string
	Body        string
	Read        bool
	CreatedAt   time.Time
}
