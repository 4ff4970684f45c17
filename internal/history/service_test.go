package history_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mbakke/torget/internal/history"
)

func TestService_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	listingID := uuid.New()

	repo := history.NewMockRepository(ctrl)
	repo.EXPECT().Upsert(gomock.Any(), userID, listingID).Return(nil)

	svc := history.NewService(repo)

	err := svc.Record(context.Background(), userID, listingID)
	assert.NoError(t, err)
}

func TestService_Recent(t *testing.T) {
	userID := uuid.New()

	t.Run("DefaultLimit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := history.NewMockRepository(ctrl)
		repo.EXPECT().
			Recent(gomock.Any(), userID, 20).
			Return([]history.Entry{{ListingID: uuid.New(), ViewCount: 2, ViewedAt: time.Now()}}, nil)

		svc := history.NewService(repo)

		got, err := svc.Recent(context.Background(), userID, 0)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("ExplicitLimit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := history.NewMockRepository(ctrl)
		repo.EXPECT().Recent(gomock.Any(), userID, 5).Return(nil, nil)

		svc := history.NewService(repo)

		got, err := svc.Recent(context.Background(), userID, 5)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
