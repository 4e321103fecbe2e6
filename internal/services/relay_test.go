package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
	"github.com/sbilibin2017/gw-topup-wallet/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRelayDispatcher_Dispatch(t *testing.T) {
	txID := int64(12)
	msg := models.RelayMessage{
		Image:         "data:image/png;base64,AAAA",
		Amount:        1000,
		Currency:      models.CNY,
		TransactionID: &txID,
		Type:          models.RelayPaymentProof,
	}

	tests := []struct {
		name       string
		sendErr    error
		journalErr error
		want       bool
	}{
		{name: "delivered"},
		{name: "failure is journaled", sendErr: assert.AnError},
		{name: "journal failure is ignored", sendErr: assert.AnError, journalErr: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sender := services.NewMockRelaySender(ctrl)
			journal := services.NewMockRelayJournal(ctrl)
			rec := newCountingRecorder()

			sender.EXPECT().Send(gomock.Any(), msg).Return(tt.sendErr)
			if tt.sendErr != nil {
				journal.EXPECT().Save(gomock.Any(), models.RelayFailure{
					Kind:          models.RelayPaymentProof,
					TransactionID: &txID,
					Error:         tt.sendErr.Error(),
				}).Return(tt.journalErr)
			}

			ok := services.NewRelayDispatcher(sender, journal, rec).Dispatch(context.Background(), msg)

			assert.Equal(t, tt.sendErr == nil, ok)
			if tt.sendErr == nil {
				assert.Equal(t, 1, rec.delivered[models.RelayPaymentProof])
			} else {
				assert.Equal(t, 1, rec.failed[models.RelayPaymentProof])
			}
		})
	}
}

func TestRelayDispatcher_RecentFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := services.NewMockRelaySender(ctrl)

	t.Run("no journal", func(t *testing.T) {
		got, err := services.NewRelayDispatcher(sender, nil, nil).RecentFailures(context.Background(), 10)
		assert.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("journal", func(t *testing.T) {
		journal := services.NewMockRelayJournal(ctrl)
		want := []models.RelayFailure{{ID: 1, Kind: models.RelayQRCode, Error: "timeout"}}
		journal.EXPECT().ListRecent(gomock.Any(), 10).Return(want, nil)

		got, err := services.NewRelayDispatcher(sender, journal, nil).RecentFailures(context.Background(), 10)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("journal error", func(t *testing.T) {
		journal := services.NewMockRelayJournal(ctrl)
		journal.EXPECT().ListRecent(gomock.Any(), 5).Return(nil, assert.AnError)

		_, err := services.NewRelayDispatcher(sender, journal, nil).RecentFailures(context.Background(), 5)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
