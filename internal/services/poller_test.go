package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
	"github.com/sbilibin2017/gw-topup-wallet/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestStatusPoller_Wait(t *testing.T) {
	t.Run("stops on first decided status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		lister := services.NewMockTransactionLister(ctrl)
		gomock.InOrder(
			lister.EXPECT().List(gomock.Any()).Return([]models.Transaction{{ID: 7, Status: models.StatusPending}}, nil),
			lister.EXPECT().List(gomock.Any()).Return(nil, assert.AnError),
			lister.EXPECT().List(gomock.Any()).Return([]models.Transaction{
				{ID: 3, Status: models.StatusCompleted},
				{ID: 7, Status: models.StatusFailed},
			}, nil),
		)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		status, err := services.NewStatusPoller(lister, 5*time.Millisecond).Wait(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusFailed, status)
	})

	t.Run("deadline reports timeout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		lister := services.NewMockTransactionLister(ctrl)
		lister.EXPECT().List(gomock.Any()).Return([]models.Transaction{{ID: 7, Status: models.StatusPending}}, nil).AnyTimes()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
		defer cancel()

		_, err := services.NewStatusPoller(lister, 5*time.Millisecond).Wait(ctx, 7)
		assert.ErrorIs(t, err, services.ErrPollTimeout)
	})

	t.Run("cancel stops without timeout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		lister := services.NewMockTransactionLister(ctrl)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := services.NewStatusPoller(lister, time.Hour).Wait(ctx, 7)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
