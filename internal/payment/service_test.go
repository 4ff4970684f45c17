package payment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mbakke/torget/internal/apperr"
	"github.com/mbakke/torget/internal/listing"
	"github.com/mbakke/torget/internal/notification"
	"github.com/mbakke/torget/internal/offer"
	"github.com/mbakke/torget/internal/payment"
)

func TestService_Initiate_DirectPurchase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	listingID := uuid.New()
	sellerID := uuid.New()
	buyerID := uuid.New()
	l := &listing.Listing{
		ID:       listingID,
		SellerID: sellerID,
		Title:    "Vintage bicycle",
		Price:    decimal.NewFromInt(1500),
		Currency: "NOK",
		Status:   listing.StatusActive,
	}

	repo := payment.NewMockRepository(ctrl)
	ckt := payment.NewMockCheckoutTx(ctrl)

	repo.EXPECT().BeginCheckout(gomock.Any(), listingID).Return(ckt, nil)
	ckt.EXPECT().Listing().Return(l)
	ckt.EXPECT().Offer().Return(nil)
	ckt.EXPECT().HasPendingTransaction(gomock.Any()).Return(false, nil)
	ckt.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tr *payment.Transaction) error {
			tr.ID = uuid.New()
			tr.CreatedAt = time.Now()
			return nil
		})
	ckt.EXPECT().ReserveListing(gomock.Any()).Return(nil)
	ckt.EXPECT().Commit().Return(nil)
	ckt.EXPECT().Rollback().Return(nil)

	notifier := payment.NewMockNotifier(ctrl)
	notifier.EXPECT().
		Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, note notification.Note) error {
			assert.Equal(t, sellerID, note.UserID)
			assert.Equal(t, notification.TypeTransaction, note.Type)
			return nil
		})

	svc := payment.NewService(repo, notifier)

	got, err := svc.Initiate(context.Background(), buyerID, payment.InitiateParams{
		ListingID: &listingID,
		Method:    payment.MethodCard,
	})
	require.NoError(t, err)
	assert.Equal(t, payment.StatusPending, got.Status)
	assert.True(t, got.Amount.Equal(l.Price))
	assert.Equal(t, "NOK", got.Currency)
	assert.Nil(t, got.OfferID)
	assert.NotEmpty(t, got.Reference)
}

func TestService_Initiate_FromAcceptedOffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	listingID := uuid.New()
	buyerID := uuid.New()
	l := &listing.Listing{
		ID:       listingID,
		SellerID: uuid.New(),
		Title:    "Vintage bicycle",
		Price:    decimal.NewFromInt(1500),
		Currency: "NOK",
		Status:   listing.StatusReserved,
	}
	o := &offer.Offer{
		ID:        uuid.New(),
		ListingID: listingID,
		BuyerID:   buyerID,
		Amount:    decimal.NewFromInt(1200),
		Status:    offer.StatusAccepted,
	}

	repo := payment.NewMockRepository(ctrl)
	ckt := payment.NewMockCheckoutTx(ctrl)

	repo.EXPECT().BeginCheckoutForOffer(gomock.Any(), o.ID).Return(ckt, nil)
	ckt.EXPECT().Listing().Return(l)
	ckt.EXPECT().Offer().Return(o)
	ckt.EXPECT().HasPendingTransaction(gomock.Any()).Return(false, nil)
	ckt.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
	ckt.EXPECT().Commit().Return(nil)
	ckt.EXPECT().Rollback().Return(nil)

	notifier := payment.NewMockNotifier(ctrl)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

	svc := payment.NewService(repo, notifier)

	got, err := svc.Initiate(context.Background(), buyerID, payment.InitiateParams{
		OfferID: &o.ID,
		Method:  payment.MethodVipps,
	})
	require.NoError(t, err)
	require.NotNil(t, got.OfferID)
	assert.Equal(t, o.ID, *got.OfferID)
	assert.True(t, got.Amount.Equal(o.Amount))
}

func TestService_Initiate_Errors(t *testing.T) {
	listingID := uuid.New()
	sellerID := uuid.New()
	buyerID := uuid.New()
	offerID := uuid.New()

	activeListing := func() *listing.Listing {
		return &listing.Listing{
			ID:       listingID,
			SellerID: sellerID,
			Price:    decimal.NewFromInt(1500),
			Currency: "NOK",
			Status:   listing.StatusActive,
		}
	}

	type testCase struct {
		name           string
		params         payment.InitiateParams
		setupMock      func(repo *payment.MockRepository, ckt *payment.MockCheckoutTx)
		wantErr        error
		wantValidation bool
	}

	tests := []testCase{
		{
			name:           "UnknownMethod",
			params:         payment.InitiateParams{ListingID: &listingID, Method: "cheque"},
			wantValidation: true,
		},
		{
			name:           "BothTargetsGiven",
			params:         payment.InitiateParams{ListingID: &listingID, OfferID: &offerID, Method: payment.MethodCard},
			wantValidation: true,
		},
		{
			name:           "NoTargetGiven",
			params:         payment.InitiateParams{Method: payment.MethodCard},
			wantValidation: true,
		},
		{
			name:   "BuyerIsSeller",
			params: payment.InitiateParams{ListingID: &listingID, Method: payment.MethodCard},
			setupMock: func(repo *payment.MockRepository, ckt *payment.MockCheckoutTx) {
				l := activeListing()
				l.SellerID = buyerID
				repo.EXPECT().BeginCheckout(gomock.Any(), listingID).Return(ckt, nil)
				ckt.EXPECT().Listing().Return(l)
				ckt.EXPECT().Offer().Return(nil)
				ckt.EXPECT().Rollback().Return(nil)
			},
			wantErr: apperr.ErrForbidden,
		},
		{
			name:   "ListingNotActive",
			params: payment.InitiateParams{ListingID: &listingID, Method: payment.MethodCard},
			setupMock: func(repo *payment.MockRepository, ckt *payment.MockCheckoutTx) {
				l := activeListing()
				l.Status = listing.StatusReserved
				repo.EXPECT().BeginCheckout(gomock.Any(), listingID).Return(ckt, nil)
				ckt.EXPECT().Listing().Return(l)
				ckt.EXPECT().Offer().Return(nil)
				ckt.EXPECT().Rollback().Return(nil)
			},
			wantErr: apperr.ErrInvalidState,
		},
		{
			name:   "OfferNotAccepted",
			params: payment.InitiateParams{OfferID: &offerID, Method: payment.MethodCard},
			setupMock: func(repo *payment.MockRepository, ckt *payment.MockCheckoutTx) {
				repo.EXPECT().BeginCheckoutForOffer(gomock.Any(), offerID).Return(ckt, nil)
				ckt.EXPECT().Listing().Return(activeListing())
				ckt.EXPECT().Offer().Return(&offer.Offer{
					ID:        offerID,
					ListingID: listingID,
					BuyerID:   buyerID,
					Status:    offer.StatusPending,
				})
				ckt.EXPECT().Rollback().Return(nil)
			},
			wantErr: apperr.ErrInvalidState,
		},
		{
			name:   "SomeoneElsesOffer",
			params: payment.InitiateParams{OfferID: &offerID, Method: payment.MethodCard},
			setupMock: func(repo *payment.MockRepository, ckt *payment.MockCheckoutTx) {
				repo.EXPECT().BeginCheckoutForOffer(gomock.Any(), offerID).Return(ckt, nil)
				ckt.EXPECT().Listing().Return(activeListing())
				ckt.EXPECT().Offer().Return(&offer.Offer{
					ID:        offerID,
					ListingID: listingID,
					BuyerID:   uuid.New(),
					Status:    offer.StatusAccepted,
				})
				ckt.EXPECT().Rollback().Return(nil)
			},
			wantErr: apperr.ErrForbidden,
		},
		{
			name:   "PendingTransactionExists",
			params: payment.InitiateParams{ListingID: &listingID, Method: payment.MethodCard},
			setupMock: func(repo *payment.MockRepository, ckt *payment.MockCheckoutTx) {
				repo.EXPECT().BeginCheckout(gomock.Any(), listingID).Return(ckt, nil)
				ckt.EXPECT().Listing().Return(activeListing())
				ckt.EXPECT().Offer().Return(nil)
				ckt.EXPECT().HasPendingTransaction(gomock.Any()).Return(true, nil)
				ckt.EXPECT().Rollback().Return(nil)
			},
			wantErr: apperr.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := payment.NewMockRepository(ctrl)
			ckt := payment.NewMockCheckoutTx(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo, ckt)
			}

			svc := payment.NewService(repo, payment.NewMockNotifier(ctrl))

			got, err := svc.Initiate(context.Background(), buyerID, tt.params)
			require.Error(t, err)
			assert.Nil(t, got)

			if tt.wantValidation {
				assert.True(t, apperr.IsValidation(err))
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestService_Complete(t *testing.T) {
	listingID := uuid.New()
	sellerID := uuid.New()
	buyerID := uuid.New()
	transactionID := uuid.New()

	pending := func() *payment.Transaction {
		return &payment.Transaction{
			ID:        transactionID,
			ListingID: listingID,
			BuyerID:   buyerID,
			SellerID:  sellerID,
			Amount:    decimal.NewFromInt(1500),
			Reference: "PAY-AB12CD34",
			Status:    payment.StatusPending,
		}
	}

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := payment.NewMockRepository(ctrl)
		stx := payment.NewMockSettlementTx(ctrl)

		repo.EXPECT().BeginSettlement(gomock.Any(), transactionID).Return(stx, nil)
		stx.EXPECT().Transaction().Return(pending())
		stx.EXPECT().Listing().Return(&listing.Listing{ID: listingID, SellerID: sellerID, Title: "Vintage bicycle", Status: listing.StatusReserved})
		stx.EXPECT().MarkCompleted(gomock.Any()).Return(nil)
		stx.EXPECT().UpdateListingStatus(gomock.Any(), listing.StatusSold).Return(nil)
		stx.EXPECT().Commit().Return(nil)
		stx.EXPECT().Rollback().Return(nil)

		notifier := payment.NewMockNotifier(ctrl)
		notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(2).Return(nil)

		svc := payment.NewService(repo, notifier)

		got, err := svc.Complete(context.Background(), transactionID, "PAY-AB12CD34")
		require.NoError(t, err)
		assert.Equal(t, transactionID, got.ID)
	})

	t.Run("IdempotentWhenAlreadyCompleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		done := pending()
		done.Status = payment.StatusCompleted

		repo := payment.NewMockRepository(ctrl)
		stx := payment.NewMockSettlementTx(ctrl)

		repo.EXPECT().BeginSettlement(gomock.Any(), transactionID).Return(stx, nil)
		stx.EXPECT().Transaction().Return(done)
		stx.EXPECT().Listing().Return(&listing.Listing{ID: listingID, Status: listing.StatusSold})
		stx.EXPECT().Rollback().Return(nil)

		svc := payment.NewService(repo, payment.NewMockNotifier(ctrl))

		got, err := svc.Complete(context.Background(), transactionID, "PAY-AB12CD34")
		require.NoError(t, err)
		assert.Equal(t, payment.StatusCompleted, got.Status)
	})

	t.Run("ReferenceMismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := payment.NewMockRepository(ctrl)
		stx := payment.NewMockSettlementTx(ctrl)

		repo.EXPECT().BeginSettlement(gomock.Any(), transactionID).Return(stx, nil)
		stx.EXPECT().Transaction().Return(pending())
		stx.EXPECT().Listing().Return(&listing.Listing{ID: listingID, Status: listing.StatusReserved})
		stx.EXPECT().Rollback().Return(nil)

		svc := payment.NewService(repo, payment.NewMockNotifier(ctrl))

		got, err := svc.Complete(context.Background(), transactionID, "PAY-WRONG000")
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
		assert.Nil(t, got)
	})

	t.Run("CancelledCannotComplete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cancelled := pending()
		cancelled.Status = payment.StatusCancelled

		repo := payment.NewMockRepository(ctrl)
		stx := payment.NewMockSettlementTx(ctrl)

		repo.EXPECT().BeginSettlement(gomock.Any(), transactionID).Return(stx, nil)
		stx.EXPECT().Transaction().Return(cancelled)
		stx.EXPECT().Listing().Return(&listing.Listing{ID: listingID, Status: listing.StatusActive})
		stx.EXPECT().Rollback().Return(nil)

		svc := payment.NewService(repo, payment.NewMockNotifier(ctrl))

		_, err := svc.Complete(context.Background(), transactionID, "PAY-AB12CD34")
		assert.ErrorIs(t, err, apperr.ErrInvalidState)
	})
}

func TestService_Cancel(t *testing.T) {
	listingID := uuid.New()
	sellerID := uuid.New()
	buyerID := uuid.New()
	transactionID := uuid.New()
	offerID := uuid.New()

	t.Run("OfferBasedPurchaseReopensOffer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tr := &payment.Transaction{
			ID:        transactionID,
			ListingID: listingID,
			BuyerID:   buyerID,
			SellerID:  sellerID,
			OfferID:   &offerID,
			Status:    payment.StatusPending,
		}

		repo := payment.NewMockRepository(ctrl)
		stx := payment.NewMockSettlementTx(ctrl)

		repo.EXPECT().BeginSettlement(gomock.Any(), transactionID).Return(stx, nil)
		stx.EXPECT().Transaction().Return(tr)
		stx.EXPECT().Listing().Return(&listing.Listing{ID: listingID, SellerID: sellerID, Title: "Vintage bicycle", Status: listing.StatusReserved})
		stx.EXPECT().MarkCancelled(gomock.Any()).Return(nil)
		stx.EXPECT().UpdateListingStatus(gomock.Any(), listing.StatusActive).Return(nil)
		stx.EXPECT().ReopenOffer(gomock.Any()).Return(nil)
		stx.EXPECT().Commit().Return(nil)
		stx.EXPECT().Rollback().Return(nil)

		notifier := payment.NewMockNotifier(ctrl)
		notifier.EXPECT().
			Notify(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, note notification.Note) error {
				// Buyer cancelled, so the seller hears about it.
				assert.Equal(t, sellerID, note.UserID)
				return nil
			})

		svc := payment.NewService(repo, notifier)

		got, err := svc.Cancel(context.Background(), transactionID, buyerID, "changed my mind")
		require.NoError(t, err)
		assert.Equal(t, transactionID, got.ID)
	})

	t.Run("DirectPurchaseSkipsOffer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tr := &payment.Transaction{
			ID:        transactionID,
			ListingID: listingID,
			BuyerID:   buyerID,
			SellerID:  sellerID,
			Status:    payment.StatusPending,
		}

		repo := payment.NewMockRepository(ctrl)
		stx := payment.NewMockSettlementTx(ctrl)

		repo.EXPECT().BeginSettlement(gomock.Any(), transactionID).Return(stx, nil)
		stx.EXPECT().Transaction().Return(tr)
		stx.EXPECT().Listing().Return(&listing.Listing{ID: listingID, SellerID: sellerID, Status: listing.StatusReserved})
		stx.EXPECT().MarkCancelled(gomock.Any()).Return(nil)
		stx.EXPECT().UpdateListingStatus(gomock.Any(), listing.StatusActive).Return(nil)
		stx.EXPECT().Commit().Return(nil)
		stx.EXPECT().Rollback().Return(nil)

		notifier := payment.NewMockNotifier(ctrl)
		notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

		svc := payment.NewService(repo, notifier)

		_, err := svc.Cancel(context.Background(), transactionID, sellerID, "")
		require.NoError(t, err)
	})

	t.Run("StrangerCannotCancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tr := &payment.Transaction{
			ID:       transactionID,
			BuyerID:  buyerID,
			SellerID: sellerID,
			Status:   payment.StatusPending,
		}

		repo := payment.NewMockRepository(ctrl)
		stx := payment.NewMockSettlementTx(ctrl)

		repo.EXPECT().BeginSettlement(gomock.Any(), transactionID).Return(stx, nil)
		stx.EXPECT().Transaction().Return(tr)
		stx.EXPECT().Listing().Return(&listing.Listing{ID: listingID, Status: listing.StatusReserved})
		stx.EXPECT().Rollback().Return(nil)

		svc := payment.NewService(repo, payment.NewMockNotifier(ctrl))

		_, err := svc.Cancel(context.Background(), transactionID, uuid.New(), "")
		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})

	t.Run("CompletedCannotBeCancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tr := &payment.Transaction{
			ID:       transactionID,
			BuyerID:  buyerID,
			SellerID: sellerID,
			Status:   payment.StatusCompleted,
		}

		repo := payment.NewMockRepository(ctrl)
		stx := payment.NewMockSettlementTx(ctrl)

		repo.EXPECT().BeginSettlement(gomock.Any(), transactionID).Return(stx, nil)
		stx.EXPECT().Transaction().Return(tr)
		stx.EXPECT().Listing().Return(&listing.Listing{ID: listingID, Status: listing.StatusSold})
		stx.EXPECT().Rollback().Return(nil)

		svc := payment.NewService(repo, payment.NewMockNotifier(ctrl))

		_, err := svc.Cancel(context.Background(), transactionID, buyerID, "")
		assert.ErrorIs(t, err, apperr.ErrInvalidState)
	})
}

func TestService_Fail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	listingID := uuid.New()
	transactionID := uuid.New()
	buyerID := uuid.New()
	sellerID := uuid.New()

	tr := &payment.Transaction{
		ID:        transactionID,
		ListingID: listingID,
		BuyerID:   buyerID,
		SellerID:  sellerID,
		Reference: "PAY-AB12CD34",
		Status:    payment.StatusPending,
	}

	repo := payment.NewMockRepository(ctrl)
	stx := payment.NewMockSettlementTx(ctrl)

	repo.EXPECT().BeginSettlement(gomock.Any(), transactionID).Return(stx, nil)
	stx.EXPECT().Transaction().Return(tr).Times(2)
	stx.EXPECT().Listing().Return(&listing.Listing{ID: listingID, Title: "Vintage bicycle", Status: listing.StatusReserved})
	stx.EXPECT().MarkFailed(gomock.Any()).Return(nil)
	stx.EXPECT().UpdateListingStatus(gomock.Any(), listing.StatusActive).Return(nil)
	stx.EXPECT().Commit().Return(nil)
	stx.EXPECT().Rollback().Return(nil)

	// Both parties hear about a failed settlement.
	notified := make(map[uuid.UUID]bool)
	notifier := payment.NewMockNotifier(ctrl)
	notifier.EXPECT().
		Notify(gomock.Any(), gomock.Any()).
		Times(2).
		DoAndReturn(func(_ context.Context, note notification.Note) error {
			notified[note.UserID] = true
			return nil
		})

	svc := payment.NewService(repo, notifier)

	_, err := svc.Fail(context.Background(), transactionID, "PAY-AB12CD34")
	require.NoError(t, err)
	assert.True(t, notified[buyerID])
	assert.True(t, notified[sellerID])
}

func TestService_Refund(t *testing.T) {
	transactionID := uuid.New()
	buyerID := uuid.New()
	sellerID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tr := &payment.Transaction{
			ID:       transactionID,
			BuyerID:  buyerID,
			SellerID: sellerID,
			Status:   payment.StatusCompleted,
		}

		repo := payment.NewMockRepository(ctrl)
		stx := payment.NewMockSettlementTx(ctrl)

		repo.EXPECT().BeginSettlement(gomock.Any(), transactionID).Return(stx, nil)
		stx.EXPECT().Transaction().Return(tr)
		stx.EXPECT().MarkRefunded(gomock.Any()).Return(nil)
		stx.EXPECT().Commit().Return(nil)
		stx.EXPECT().Rollback().Return(nil)

		notifier := payment.NewMockNotifier(ctrl)
		notifier.EXPECT().
			Notify(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, note notification.Note) error {
				assert.Equal(t, buyerID, note.UserID)
				return nil
			})

		svc := payment.NewService(repo, notifier)

		_, err := svc.Refund(context.Background(), transactionID, sellerID, "item damaged")
		require.NoError(t, err)
	})

	t.Run("PendingCannotBeRefunded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tr := &payment.Transaction{
			ID:       transactionID,
			BuyerID:  buyerID,
			SellerID: sellerID,
			Status:   payment.StatusPending,
		}

		repo := payment.NewMockRepository(ctrl)
		stx := payment.NewMockSettlementTx(ctrl)

		repo.EXPECT().BeginSettlement(gomock.Any(), transactionID).Return(stx, nil)
		stx.EXPECT().Transaction().Return(tr)
		stx.EXPECT().Rollback().Return(nil)

		svc := payment.NewService(repo, payment.NewMockNotifier(ctrl))

		_, err := svc.Refund(context.Background(), transactionID, buyerID, "")
		assert.ErrorIs(t, err, apperr.ErrInvalidState)
	})
}

func TestService_Get(t *testing.T) {
	transactionID := uuid.New()
	buyerID := uuid.New()
	sellerID := uuid.New()

	tr := &payment.Transaction{ID: transactionID, BuyerID: buyerID, SellerID: sellerID}

	type testCase struct {
		name    string
		actor   uuid.UUID
		wantErr error
	}

	tests := []testCase{
		{name: "Buyer", actor: buyerID},
		{name: "Seller", actor: sellerID},
		{name: "Stranger", actor: uuid.New(), wantErr: apperr.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := payment.NewMockRepository(ctrl)
			repo.EXPECT().GetTransaction(gomock.Any(), transactionID).Return(tr, nil)

			svc := payment.NewService(repo, payment.NewMockNotifier(ctrl))

			got, err := svc.Get(context.Background(), transactionID, tt.actor)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, transactionID, got.ID)
		})
	}
}

func TestService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	sellerID := uuid.New()

	repo := payment.NewMockRepository(ctrl)
	repo.EXPECT().
		SellerStats(gomock.Any(), sellerID, now.AddDate(0, 0, -30)).
		Return(&payment.SellerStats{CompletedSales: 12, TotalRevenue: decimal.NewFromInt(18000), RecentSales: 3}, nil)

	svc := payment.NewService(repo, payment.NewMockNotifier(ctrl), payment.WithNow(func() time.Time { return now }))

	got, err := svc.Stats(context.Background(), sellerID)
	require.NoError(t, err)
	assert.Equal(t, int64(12), got.CompletedSales)
	assert.Equal(t, int64(3), got.RecentSales)
}

func TestService_Stats_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := payment.NewMockRepository(ctrl)
	repo.EXPECT().
		SellerStats(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db error"))

	svc := payment.NewService(repo, payment.NewMockNotifier(ctrl))

	_, err := svc.Stats(context.Background(), uuid.New())
	assert.Error(t, err)
}
