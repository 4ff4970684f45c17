package payment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mbakke/torget/internal/payment"
)

type transactionResponse struct {
	ID          uuid.UUID       `json:"id"`
	ListingID   uuid.UUID       `json:"listing_id"`
	BuyerID     uuid.UUID       `json:"buyer_id"`
	SellerID    uuid.UUID       `json:"seller_id"`
	OfferID     *uuid.UUID      `json:"offer_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Method      payment.Method  `json:"payment_method"`
	Reference   string          `json:"payment_reference"`
	Status      payment.Status  `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
	CancelledAt *time.Time      `json:"cancelled_at,omitempty"`
}

func toResponse(t *payment.Transaction) transactionResponse {
	return transactionResponse{
		ID:          t.ID,
		ListingID:   t.ListingID,
		BuyerID:     t.BuyerID,
		SellerID:    t.SellerID,
		OfferID:     t.OfferID,
		Amount:      t.Amount,
		Currency:    t.Currency,
		Method:      t.Method,
		Reference:   t.Reference,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
		CompletedAt: t.CompletedAt,
		CancelledAt: t.CancelledAt,
	}
}

func toResponseList(transactions []*payment.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(transactions))
	for i, t := range transactions {
		resp[i] = toResponse(t)
	}

	return resp
}

type statsResponse struct {
	CompletedSales int64           `json:"completed_sales"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	RecentSales    int64           `json:"recent_sales"`
}

func toStatsResponse(s *payment.SellerStats) statsResponse {
	return statsResponse{
		CompletedSales: s.CompletedSales,
		TotalRevenue:   s.TotalRevenue,
		RecentSales:    s.RecentSales,
	}
}
