package listing_test

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
)

func TestService_Create(t *testing.T) {
	sellerID := uuid.New()
	past := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	type args struct {
		params listing.CreateParams
	}

	type testCase struct {
		name       string
		args       args
		setupMock  func(m *listing.MockRepository)
		wantStatus listing.Status
		wantErr    bool
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{
				params: listing.CreateParams{
					Title:    "Vintage bicycle",
					Category: "sports",
					Price:    decimal.NewFromInt(1500),
					Quantity: 1,
				},
			},
			setupMock: func(m *listing.MockRepository) {
				m.EXPECT().
					CreateListing(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, l *listing.Listing) error {
						l.ID = uuid.New()
						l.CreatedAt = time.Now()
						return nil
					})
			},
			wantStatus: listing.StatusActive,
			wantErr:    false,
		},
		{
			name: "Draft",
			args: args{
				params: listing.CreateParams{
					Title:    "Old lamp",
					Category: "furniture",
					Price:    decimal.NewFromInt(200),
					Quantity: 1,
					Draft:    true,
				},
			},
			setupMock: func(m *listing.MockRepository) {
				m.EXPECT().
					CreateListing(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, l *listing.Listing) error {
						l.ID = uuid.New()
						return nil
					})
			},
			wantStatus: listing.StatusDraft,
			wantErr:    false,
		},
		{
			name: "EmptyTitle",
			args: args{
				params: listing.CreateParams{
					Category: "sports",
					Price:    decimal.NewFromInt(100),
					Quantity: 1,
				},
			},
			wantErr: true,
		},
		{
			name: "ZeroPrice",
			args: args{
				params: listing.CreateParams{
					Title:    "Free stuff",
					Category: "misc",
					Price:    decimal.Zero,
					Quantity: 1,
				},
			},
			wantErr: true,
		},
		{
			name: "NegativePrice",
			args: args{
				params: listing.CreateParams{
					Title:    "Bad price",
					Category: "misc",
					Price:    decimal.NewFromInt(-10),
					Quantity: 1,
				},
			},
			wantErr: true,
		},
		{
			name: "ExpiryInThePast",
			args: args{
				params: listing.CreateParams{
					Title:     "Late entry",
					Category:  "misc",
					Price:     decimal.NewFromInt(50),
					Quantity:  1,
					ExpiresAt: &past,
				},
			},
			wantErr: true,
		},
		{
			name: "RepoError",
			args: args{
				params: listing.CreateParams{
					Title:    "Vintage bicycle",
					Category: "sports",
					Price:    decimal.NewFromInt(1500),
					Quantity: 1,
				},
			},
			setupMock: func(m *listing.MockRepository) {
				m.EXPECT().
					CreateListing(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := listing.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := listing.NewService(repo, listing.NewMockRecorder(ctrl))
			got, err := svc.Create(context.Background(), sellerID, tt.args.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, sellerID, got.SellerID)
			assert.False(t, got.ExpiresAt.IsZero())
		})
	}
}

func TestService_Create_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	repo := listing.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateListing(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, l *listing.Listing) error {
			l.ID = uuid.New()
			return nil
		})

	svc := listing.NewService(repo, listing.NewMockRecorder(ctrl), listing.WithNow(func() time.Time { return now }))

	got, err := svc.Create(context.Background(), uuid.New(), listing.CreateParams{
		Title:    "Ski boots",
		Category: "sports",
		Price:    decimal.NewFromInt(400),
		Quantity: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "NOK", got.Currency)
	assert.Equal(t, listing.ConditionGood, got.Condition)
	assert.Equal(t, now.Add(30*24*time.Hour), got.ExpiresAt)
}

func TestService_View(t *testing.T) {
	listingID := uuid.New()
	viewerID := uuid.New()

	t.Run("AnonymousViewer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := listing.NewMockRepository(ctrl)
		repo.EXPECT().
			IncrementViews(gomock.Any(), listingID).
			Return(&listing.Listing{ID: listingID, Views: 5}, nil)

		svc := listing.NewService(repo, listing.NewMockRecorder(ctrl))

		got, err := svc.View(context.Background(), listingID, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(5), got.Views)
	})

	t.Run("KnownViewerRecordsHistory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := listing.NewMockRepository(ctrl)
		repo.EXPECT().
			IncrementViews(gomock.Any(), listingID).
			Return(&listing.Listing{ID: listingID, Views: 6}, nil)

		history := listing.NewMockRecorder(ctrl)
		history.EXPECT().Record(gomock.Any(), viewerID, listingID).Return(nil)

		svc := listing.NewService(repo, history)

		_, err := svc.View(context.Background(), listingID, &viewerID)
		require.NoError(t, err)
	})

	t.Run("HistoryFailureIsSwallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := listing.NewMockRepository(ctrl)
		repo.EXPECT().
			IncrementViews(gomock.Any(), listingID).
			Return(&listing.Listing{ID: listingID}, nil)

		history := listing.NewMockRecorder(ctrl)
		history.EXPECT().Record(gomock.Any(), viewerID, listingID).Return(errors.New("history down"))

		svc := listing.NewService(repo, history)

		got, err := svc.View(context.Background(), listingID, &viewerID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := listing.NewMockRepository(ctrl)
		repo.EXPECT().
			IncrementViews(gomock.Any(), listingID).
			Return(nil, apperr.ErrNotFound)

		svc := listing.NewService(repo, listing.NewMockRecorder(ctrl))

		_, err := svc.View(context.Background(), listingID, nil)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestService_Update(t *testing.T) {
	listingID := uuid.New()
	sellerID := uuid.New()

	newTitle := "Refurbished bicycle"
	emptyTitle := ""
	badPrice := decimal.NewFromInt(-5)

	type args struct {
		actorID uuid.UUID
		params  listing.UpdateParams
	}

	type testCase struct {
		name           string
		args           args
		setupMock      func(m *listing.MockRepository)
		wantErr        error
		wantValidation bool
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{
				actorID: sellerID,
				params:  listing.UpdateParams{Title: &newTitle},
			},
			setupMock: func(m *listing.MockRepository) {
				m.EXPECT().
					GetListing(gomock.Any(), listingID).
					Return(&listing.Listing{ID: listingID, SellerID: sellerID, Title: "Vintage bicycle"}, nil)
				m.EXPECT().
					UpdateListing(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "NotTheSeller",
			args: args{
				actorID: uuid.New(),
				params:  listing.UpdateParams{Title: &newTitle},
			},
			setupMock: func(m *listing.MockRepository) {
				m.EXPECT().
					GetListing(gomock.Any(), listingID).
					Return(&listing.Listing{ID: listingID, SellerID: sellerID}, nil)
			},
			wantErr: apperr.ErrForbidden,
		},
		{
			name: "EmptyTitle",
			args: args{
				actorID: sellerID,
				params:  listing.UpdateParams{Title: &emptyTitle},
			},
			setupMock: func(m *listing.MockRepository) {
				m.EXPECT().
					GetListing(gomock.Any(), listingID).
					Return(&listing.Listing{ID: listingID, SellerID: sellerID}, nil)
			},
			wantValidation: true,
		},
		{
			name: "NegativePrice",
			args: args{
				actorID: sellerID,
				params:  listing.UpdateParams{Price: &badPrice},
			},
			setupMock: func(m *listing.MockRepository) {
				m.EXPECT().
					GetListing(gomock.Any(), listingID).
					Return(&listing.Listing{ID: listingID, SellerID: sellerID}, nil)
			},
			wantValidation: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := listing.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := listing.NewService(repo, listing.NewMockRecorder(ctrl))
			got, err := svc.Update(context.Background(), listingID, tt.args.actorID, tt.args.params)

			if tt.wantErr != nil || tt.wantValidation {
				require.Error(t, err)
				assert.Nil(t, got)

				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.True(t, apperr.IsValidation(err))
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, newTitle, got.Title)
		})
	}
}

func TestService_ChangeStatus(t *testing.T) {
	listingID := uuid.New()
	sellerID := uuid.New()

	type args struct {
		actorID   uuid.UUID
		newStatus listing.Status
	}

	type testCase struct {
		name      string
		args      args
		current   listing.Status
		wantRepo  bool
		wantErr   error
	}

	tests := []testCase{
		{
			name:     "ActivateDraft",
			args:     args{actorID: sellerID, newStatus: listing.StatusActive},
			current:  listing.StatusDraft,
			wantRepo: true,
		},
		{
			name:     "ArchiveActive",
			args:     args{actorID: sellerID, newStatus: listing.StatusArchived},
			current:  listing.StatusActive,
			wantRepo: true,
		},
		{
			name:    "DraftCannotBeSold",
			args:    args{actorID: sellerID, newStatus: listing.StatusSold},
			current: listing.StatusDraft,
			wantErr: apperr.ErrInvalidTransition,
		},
		{
			name:    "SoldCannotBeArchived",
			args:    args{actorID: sellerID, newStatus: listing.StatusArchived},
			current: listing.StatusSold,
			wantErr: apperr.ErrInvalidTransition,
		},
		{
			name:    "NotTheSeller",
			args:    args{actorID: uuid.New(), newStatus: listing.StatusArchived},
			current: listing.StatusActive,
			wantErr: apperr.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := listing.NewMockRepository(ctrl)
			repo.EXPECT().
				GetListing(gomock.Any(), listingID).
				Return(&listing.Listing{ID: listingID, SellerID: sellerID, Status: tt.current}, nil)

			if tt.wantRepo {
				repo.EXPECT().
					UpdateStatus(gomock.Any(), listingID, tt.args.newStatus).
					Return(nil)
			}

			svc := listing.NewService(repo, listing.NewMockRecorder(ctrl))
			got, err := svc.ChangeStatus(context.Background(), listingID, tt.args.actorID, tt.args.newStatus)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.args.newStatus, got.Status)
		})
	}
}

func TestService_Delete(t *testing.T) {
	listingID := uuid.New()
	sellerID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := listing.NewMockRepository(ctrl)
		repo.EXPECT().
			GetListing(gomock.Any(), listingID).
			Return(&listing.Listing{ID: listingID, SellerID: sellerID, Status: listing.StatusActive}, nil)
		repo.EXPECT().
			SoftDelete(gomock.Any(), listingID).
			Return(nil)

		svc := listing.NewService(repo, listing.NewMockRecorder(ctrl))

		err := svc.Delete(context.Background(), listingID, sellerID)
		assert.NoError(t, err)
	})

	t.Run("ReservedCannotBeDeleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := listing.NewMockRepository(ctrl)
		repo.EXPECT().
			GetListing(gomock.Any(), listingID).
			Return(&listing.Listing{ID: listingID, SellerID: sellerID, Status: listing.StatusReserved}, nil)

		svc := listing.NewService(repo, listing.NewMockRecorder(ctrl))

		err := svc.Delete(context.Background(), listingID, sellerID)
		assert.ErrorIs(t, err, apperr.ErrInvalidTransition)
	})

	t.Run("ForceDeleteSkipsChecks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := listing.NewMockRepository(ctrl)
		repo.EXPECT().
			GetListing(gomock.Any(), listingID).
			Return(&listing.Listing{ID: listingID, SellerID: sellerID, Status: listing.StatusReserved}, nil)
		repo.EXPECT().
			SoftDelete(gomock.Any(), listingID).
			Return(nil)

		svc := listing.NewService(repo, listing.NewMockRecorder(ctrl))

		err := svc.ForceDelete(context.Background(), listingID)
		assert.NoError(t, err)
	})
}

func TestService_ListActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	category := "sports"
	filter := listing.ListFilter{Category: &category}

	repo := listing.NewMockRepository(ctrl)
	repo.EXPECT().
		ListActive(gomock.Any(), filter).
		Return([]*listing.Listing{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	svc := listing.NewService(repo, listing.NewMockRecorder(ctrl))

	got, err := svc.ListActive(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
