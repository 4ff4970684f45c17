package listing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mbakke/torget/internal/listing"
)

type listingResponse struct {
	ID          uuid.UUID         `json:"id"`
	SellerID    uuid.UUID         `json:"seller_id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Category    string            `json:"category"`
	Price       decimal.Decimal   `json:"price"`
	Currency    string            `json:"currency"`
	Quantity    int               `json:"quantity"`
	Condition   listing.Condition `json:"condition"`
	AllowOffers bool              `json:"allow_offers"`
	Status      listing.Status    `json:"status"`
	Views       int64             `json:"views"`
	ExpiresAt   time.Time         `json:"expires_at"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   *time.Time        `json:"updated_at,omitempty"`
}

func toResponse(l *listing.Listing) listingResponse {
	return listingResponse{
		ID:          l.ID,
		SellerID:    l.SellerID,
		Title:       l.Title,
		Description: l.Description,
		Category:    l.Category,
		Price:       l.Price,
		Currency:    l.Currency,
		Quantity:    l.Quantity,
		Condition:   l.Condition,
		AllowOffers: l.AllowOffers,
		Status:      l.Status,
		Views:       l.Views,
		ExpiresAt:   l.ExpiresAt,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func toResponseList(listings []*listing.Listing) []listingResponse {
	resp := make([]listingResponse, len(listings))
	for i, l := range listings {
		resp[i] = toResponse(l)
	}

	return resp
}
