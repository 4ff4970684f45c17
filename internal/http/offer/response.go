package offer

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mbakke/torget/internal/offer"
)

type offerResponse struct {
	ID        uuid.UUID       `json:"id"`
	ListingID uuid.UUID       `json:"listing_id"`
	BuyerID   uuid.UUID       `json:"buyer_id"`
	Amount    decimal.Decimal `json:"amount"`
	Message   string          `json:"message,omitempty"`
	Status    offer.Status    `json:"status"`
	ExpiresAt time.Time       `json:"expires_at"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt *time.Time      `json:"updated_at,omitempty"`
}

func toResponse(o *offer.Offer) offerResponse {
	return offerResponse{
		ID:        o.ID,
		ListingID: o.ListingID,
		BuyerID:   o.BuyerID,
		Amount:    o.Amount,
		Message:   o.Message,
		Status:    o.Status,
		ExpiresAt: o.ExpiresAt,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func toResponseList(offers []*offer.Offer) []offerResponse {
	resp := make([]offerResponse, len(offers))
	for i, o := range offers {
		resp[i] = toResponse(o)
	}

	return resp
}
