package notification_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mbakke/torget/internal/apperr"
	"github.com/mbakke/torget/internal/notification"
)

func TestService_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	refID := uuid.New()

	repo := notification.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *notification.Notification) error {
			assert.Equal(t, userID, n.UserID)
			assert.Equal(t, notification.TypeOffer, n.Type)
			assert.Equal(t, refID, n.ReferenceID)
			assert.False(t, n.Read)
			n.ID = uuid.New()
			return nil
		})

	svc := notification.NewService(repo)

	err := svc.Notify(context.Background(), notification.Note{
		UserID:      userID,
		Type:        notification.TypeOffer,
		ReferenceID: refID,
		Title:       "New offer on your listing",
		Body:        "You received an offer.",
	})
	assert.NoError(t, err)
}

func TestService_ListForUser_DefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	repo := notification.NewMockRepository(ctrl)
	repo.EXPECT().
		ListForUser(gomock.Any(), userID, 50).
		Return([]*notification.Notification{{ID: uuid.New()}}, nil)

	svc := notification.NewService(repo)

	got, err := svc.ListForUser(context.Background(), userID, 0)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestService_MarkRead(t *testing.T) {
	userID := uuid.New()
	noteID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := notification.NewMockRepository(ctrl)
		repo.EXPECT().
			MarkRead(gomock.Any(), noteID, userID).
			Return(&notification.Notification{ID: noteID, UserID: userID, Read: true}, nil)

		svc := notification.NewService(repo)

		got, err := svc.MarkRead(context.Background(), noteID, userID)
		require.NoError(t, err)
		assert.True(t, got.Read)
	})

	t.Run("SomeoneElsesNotification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := notification.NewMockRepository(ctrl)
		repo.EXPECT().
			MarkRead(gomock.Any(), noteID, userID).
			Return(nil, apperr.ErrNotFound)

		svc := notification.NewService(repo)

		_, err := svc.MarkRead(context.Background(), noteID, userID)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestService_PurgeRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cutoff := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	repo := notification.NewMockRepository(ctrl)
	repo.EXPECT().DeleteRead(gomock.Any(), cutoff).Return(int64(7), nil)

	svc := notification.NewService(repo)

	count, err := svc.PurgeRead(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}
