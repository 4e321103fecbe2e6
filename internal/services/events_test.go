package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
	"github.com/sbilibin2017/gw-topup-wallet/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestTopupEventPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	evt := models.TopupEvent{
		Event:         models.EventTransactionCreated,
		SessionID:     "s-1",
		TransactionID: 42,
		Amount:        1000,
		Currency:      models.CNY,
		AmountCNY:     1000,
		Status:        models.StatusPending,
		Timestamp:     1700000000,
	}

	t.Run("writes keyed message", func(t *testing.T) {
		writer := services.NewMockKafkaWriter(ctrl)
		writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msgs ...kafka.Message) error {
				assert.Len(t, msgs, 1)
				assert.Equal(t, "42", string(msgs[0].Key))

				var got models.TopupEvent
				assert.NoError(t, json.Unmarshal(msgs[0].Value, &got))
				assert.Equal(t, evt, got)
				return nil
			})

		services.NewTopupEventPublisher(writer).Publish(context.Background(), evt)
	})

	t.Run("write error is swallowed", func(t *testing.T) {
		writer := services.NewMockKafkaWriter(ctrl)
		writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(assert.AnError)

		services.NewTopupEventPublisher(writer).Publish(context.Background(), evt)
	})

	t.Run("nil writer skips", func(t *testing.T) {
		services.NewTopupEventPublisher(nil).Publish(context.Background(), evt)
	})
}
