package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-topup-wallet/internal/metrics"
	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
	"github.com/sbilibin2017/gw-topup-wallet/internal/services"
	"github.com/stretchr/testify/assert"
)

type flowFixture struct {
	ctrl    *services.Controller
	txs     *services.MockTransactionStore
	details *services.MockPaymentDetailStore
	relay   *services.MockRelaySender
	events  *services.MockEventPublisher
	rec     *countingRecorder

	mu        sync.Mutex
	snapshots []models.Session
}

func (f *flowFixture) lastSnapshot() models.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshots[len(f.snapshots)-1]
}

func newFlow(t *testing.T, cfg services.FlowConfig, now func() time.Time) *flowFixture {
	mc := gomock.NewController(t)
	t.Cleanup(mc.Finish)

	f := &flowFixture{
		txs:     services.NewMockTransactionStore(mc),
		details: services.NewMockPaymentDetailStore(mc),
		relay:   services.NewMockRelaySender(mc),
		events:  services.NewMockEventPublisher(mc),
		rec:     newCountingRecorder(),
	}
	f.events.EXPECT().Publish(gomock.Any(), gomock.Any()).AnyTimes()

	deps := &services.FlowDeps{
		Transactions: f.txs,
		Admin:        services.NewAdminPanel(f.details, f.txs),
		Relay:        services.NewRelayDispatcher(f.relay, nil, f.rec),
		Events:       f.events,
		Metrics:      f.rec,
		Config:       cfg,
		Now:          now,
	}
	f.ctrl = services.NewController(models.NewSession(uuid.New(), false, time.Now()), deps, func(s models.Session) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.snapshots = append(f.snapshots, s)
	})
	t.Cleanup(f.ctrl.Close)
	return f
}

func pendingTx() *models.Transaction {
	return &models.Transaction{ID: 1, Amount: 1000, Currency: models.CNY, AmountCNY: 1000, Status: models.StatusPending}
}

// toProofStep walks a fresh controller to the payment proof step.
func toProofStep(t *testing.T, f *flowFixture) {
	ctx := context.Background()
	f.txs.EXPECT().Create(gomock.Any(), 1000.0, models.CNY).Return(pendingTx(), nil)
	f.relay.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

	assert.NoError(t, f.ctrl.Navigate(ctx, models.ScreenTopup))
	assert.NoError(t, f.ctrl.SubmitAmount(ctx, "1000", models.CNY))
	assert.NoError(t, f.ctrl.UploadQR(ctx, pngImage))
	assert.NoError(t, f.ctrl.ConfirmPaid(ctx))
	f.ctrl.View()
}

func TestController_EndToEnd(t *testing.T) {
	ctx := context.Background()
	f := newFlow(t, services.DefaultFlowConfig(), nil)

	assert.NoError(t, f.ctrl.Navigate(ctx, models.ScreenTopup))
	v := f.ctrl.View()
	assert.Equal(t, models.StepAmount, v.Step)
	assert.Equal(t, models.CNY, v.Currency)

	assert.NoError(t, f.ctrl.SubmitAmount(ctx, "1000", models.CNY))
	v = f.ctrl.View()
	assert.Equal(t, models.StepQR, v.Step)
	assert.Empty(t, v.Notifications)

	f.txs.EXPECT().Create(gomock.Any(), 1000.0, models.CNY).Return(&models.Transaction{ID: 1, Amount: 1000, Currency: models.CNY, Status: models.StatusPending}, nil)
	f.relay.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg models.RelayMessage) error {
		assert.Equal(t, models.RelayQRCode, msg.Type)
		assert.Equal(t, int64(1), *msg.TransactionID)
		assert.Equal(t, 1000.0, msg.Amount)
		assert.Contains(t, msg.Image, "data:image/png;base64,")
		return nil
	})

	assert.NoError(t, f.ctrl.UploadQR(ctx, pngImage))
	v = f.ctrl.View()
	assert.Equal(t, models.StepDetails, v.Step)
	assert.Equal(t, "¥ 1000", v.DisplayAmount)
	assert.Equal(t, models.StatusPending, v.Transaction.Status)
	assert.Equal(t, models.CNY, v.Transaction.Currency)
	assert.Equal(t, 1000.0, v.Transaction.AmountCNY)
	assert.Len(t, v.Notifications, 1)
	assert.Equal(t, models.NotificationSuccess, v.Notifications[0].Level)
	assert.Equal(t, 1, f.rec.created)

	assert.NoError(t, f.ctrl.ConfirmPaid(ctx))
	assert.Equal(t, models.StepPaymentProof, f.ctrl.View().Step)
	assert.Equal(t, models.StepPaymentProof, f.lastSnapshot().Step.Kind())
}

func TestController_SubmitAmount_Invalid(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		raw      string
		currency models.Currency
	}{
		{name: "not a number", raw: "abc", currency: models.CNY},
		{name: "zero", raw: "0", currency: models.CNY},
		{name: "negative", raw: "-5", currency: models.RUB},
		{name: "RUB below minimum", raw: "499", currency: models.RUB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFlow(t, services.DefaultFlowConfig(), nil)
			assert.NoError(t, f.ctrl.Navigate(ctx, models.ScreenTopup))

			assert.NoError(t, f.ctrl.SubmitAmount(ctx, tt.raw, tt.currency))

			v := f.ctrl.View()
			assert.Equal(t, models.StepAmount, v.Step)
			assert.Equal(t, tt.raw, v.Amount)
			assert.Equal(t, tt.currency, v.Currency)
			assert.Len(t, v.Notifications, 1)
			assert.Equal(t, models.NotificationError, v.Notifications[0].Level)
		})
	}
}

func TestController_AmountPreview(t *testing.T) {
	ctx := context.Background()
	f := newFlow(t, services.DefaultFlowConfig(), nil)
	assert.NoError(t, f.ctrl.Navigate(ctx, models.ScreenTopup))
	assert.NoError(t, f.ctrl.SubmitAmount(ctx, "100", models.RUB))

	v := f.ctrl.View()
	assert.Equal(t, models.StepAmount, v.Step)
	assert.Equal(t, "≈ ¥ 8.77", v.AmountPreview)
}

func TestController_UploadQR_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("not an image", func(t *testing.T) {
		f := newFlow(t, services.DefaultFlowConfig(), nil)
		assert.NoError(t, f.ctrl.Navigate(ctx, models.ScreenTopup))
		assert.NoError(t, f.ctrl.SubmitAmount(ctx, "1000", models.CNY))

		assert.NoError(t, f.ctrl.UploadQR(ctx, []byte("plain text")))

		v := f.ctrl.View()
		assert.Equal(t, models.StepQR, v.Step)
		assert.Equal(t, models.NotificationError, v.Notifications[0].Level)
	})

	t.Run("create fails", func(t *testing.T) {
		f := newFlow(t, services.DefaultFlowConfig(), nil)
		assert.NoError(t, f.ctrl.Navigate(ctx, models.ScreenTopup))
		assert.NoError(t, f.ctrl.SubmitAmount(ctx, "1000", models.CNY))
		f.txs.EXPECT().Create(gomock.Any(), 1000.0, models.CNY).Return(nil, assert.AnError)

		assert.NoError(t, f.ctrl.UploadQR(ctx, pngImage))

		v := f.ctrl.View()
		assert.Equal(t, models.StepQR, v.Step)
		assert.Equal(t, models.NotificationError, v.Notifications[0].Level)
	})

	t.Run("relay failure does not block", func(t *testing.T) {
		f := newFlow(t, services.DefaultFlowConfig(), nil)
		assert.NoError(t, f.ctrl.Navigate(ctx, models.ScreenTopup))
		assert.NoError(t, f.ctrl.SubmitAmount(ctx, "11400", models.RUB))
		f.txs.EXPECT().Create(gomock.Any(), 11400.0, models.RUB).Return(&models.Transaction{ID: 2}, nil)
		f.relay.EXPECT().Send(gomock.Any(), gomock.Any()).Return(assert.AnError)

		assert.NoError(t, f.ctrl.UploadQR(ctx, pngImage))

		v := f.ctrl.View()
		assert.Equal(t, models.StepDetails, v.Step)
		assert.Equal(t, "₽ 11400 (¥ 1000.00)", v.DisplayAmount)
		assert.Equal(t, models.StatusPending, v.Transaction.Status)
		assert.Equal(t, 1000.0, v.Transaction.AmountCNY)
		assert.Equal(t, 1, f.rec.failed[models.RelayQRCode])
	})
}

func TestController_InvalidTransitions(t *testing.T) {
	ctx := context.Background()
	f := newFlow(t, services.DefaultFlowConfig(), nil)

	assert.ErrorIs(t, f.ctrl.SubmitAmount(ctx, "1", models.CNY), services.ErrInvalidTransition)
	assert.ErrorIs(t, f.ctrl.UploadQR(ctx, pngImage), services.ErrInvalidTransition)
	assert.ErrorIs(t, f.ctrl.ConfirmPaid(ctx), services.ErrInvalidTransition)
	assert.ErrorIs(t, f.ctrl.UploadProof(ctx, pngImage), services.ErrInvalidTransition)
	assert.ErrorIs(t, f.ctrl.AdminSave(ctx), services.ErrInvalidTransition)
	assert.ErrorIs(t, f.ctrl.Navigate(ctx, "settings"), services.ErrInvalidTransition)

	assert.NoError(t, f.ctrl.Navigate(ctx, models.ScreenHelp))
	assert.ErrorIs(t, f.ctrl.Navigate(ctx, models.ScreenTopup), services.ErrInvalidTransition)
	assert.NoError(t, f.ctrl.Navigate(ctx, models.ScreenMain))
	assert.Equal(t, models.ScreenMain, f.ctrl.View().Screen)
}

func TestController_OptimisticConfirmation(t *testing.T) {
	ctx := context.Background()
	cfg := services.DefaultFlowConfig()
	cfg.Strategy = services.ConfirmOptimistic
	f := newFlow(t, cfg, nil)
	toProofStep(t, f)

	f.relay.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg models.RelayMessage) error {
		assert.Equal(t, models.RelayPaymentProof, msg.Type)
		return nil
	})
	f.txs.EXPECT().UpdateStatus(gomock.Any(), int64(1), models.StatusCompleted).Return(nil)

	assert.NoError(t, f.ctrl.UploadProof(ctx, pngImage))

	v := f.ctrl.View()
	assert.Equal(t, models.ScreenMain, v.Screen)
	assert.Len(t, v.Notifications, 1)
	assert.Equal(t, models.NotificationSuccess, v.Notifications[0].Level)
}

func TestController_PollingResolvesOnce(t *testing.T) {
	ctx := context.Background()
	cfg := services.FlowConfig{Strategy: services.ConfirmPolling, PollInterval: 5 * time.Millisecond, PollTimeout: time.Minute}
	f := newFlow(t, cfg, nil)
	toProofStep(t, f)

	f.relay.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
	gomock.InOrder(
		f.txs.EXPECT().List(gomock.Any()).Return([]models.Transaction{*pendingTx()}, nil),
		f.txs.EXPECT().List(gomock.Any()).Return([]models.Transaction{{ID: 1, Status: models.StatusCompleted}}, nil),
	)

	assert.NoError(t, f.ctrl.UploadProof(ctx, pngImage))
	v := f.ctrl.View()
	assert.Equal(t, models.StepWaiting, v.Step)
	assert.NotNil(t, v.WaitingDeadline)

	assert.Eventually(t, func() bool {
		return f.ctrl.Snapshot().Screen == models.ScreenMain
	}, time.Second, 5*time.Millisecond)

	v = f.ctrl.View()
	assert.Len(t, v.Notifications, 1)
	assert.Equal(t, "Payment received", v.Notifications[0].Title)
	assert.Equal(t, []metrics.PollOutcome{metrics.PollCompleted}, f.rec.pollOutcomes())
}

func TestController_PollingTimeout(t *testing.T) {
	ctx := context.Background()
	cfg := services.FlowConfig{Strategy: services.ConfirmPolling, PollInterval: 5 * time.Millisecond, PollTimeout: 40 * time.Millisecond}
	f := newFlow(t, cfg, nil)
	toProofStep(t, f)

	f.relay.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
	f.txs.EXPECT().List(gomock.Any()).Return([]models.Transaction{*pendingTx()}, nil).AnyTimes()

	assert.NoError(t, f.ctrl.UploadProof(ctx, pngImage))
	f.ctrl.View()

	assert.Eventually(t, func() bool {
		return f.ctrl.Snapshot().Screen == models.ScreenMain
	}, time.Second, 5*time.Millisecond)

	v := f.ctrl.View()
	assert.Len(t, v.Notifications, 1)
	assert.Equal(t, models.NotificationError, v.Notifications[0].Level)
	assert.Equal(t, []metrics.PollOutcome{metrics.PollTimeout}, f.rec.pollOutcomes())
}

func TestController_LeavingCancelsPoll(t *testing.T) {
	ctx := context.Background()
	cfg := services.FlowConfig{Strategy: services.ConfirmPolling, PollInterval: time.Hour, PollTimeout: time.Minute}
	f := newFlow(t, cfg, nil)
	toProofStep(t, f)

	f.relay.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
	assert.NoError(t, f.ctrl.UploadProof(ctx, pngImage))
	f.ctrl.View()

	assert.NoError(t, f.ctrl.Navigate(ctx, models.ScreenMain))
	time.Sleep(20 * time.Millisecond)

	v := f.ctrl.View()
	assert.Equal(t, models.ScreenMain, v.Screen)
	assert.Empty(t, v.Notifications)
	assert.Equal(t, []metrics.PollOutcome{metrics.PollCancelled}, f.rec.pollOutcomes())
	assert.True(t, f.ctrl.Idle(time.Now().Add(time.Second)))
}

func TestController_WaitingElapsed(t *testing.T) {
	ctx := context.Background()
	base := time.Now()
	var (
		mu     sync.Mutex
		offset time.Duration
	)
	now := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return base.Add(offset)
	}

	cfg := services.FlowConfig{Strategy: services.ConfirmPolling, PollInterval: time.Hour, PollTimeout: 5 * time.Minute}
	f := newFlow(t, cfg, now)
	toProofStep(t, f)

	f.relay.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
	assert.NoError(t, f.ctrl.UploadProof(ctx, pngImage))

	mu.Lock()
	offset = 42 * time.Second
	mu.Unlock()

	v := f.ctrl.View()
	assert.Equal(t, int64(42), v.WaitingElapsedSeconds)
	assert.Equal(t, base.Add(5*time.Minute), *v.WaitingDeadline)
}

func TestController_History(t *testing.T) {
	ctx := context.Background()

	t.Run("entries", func(t *testing.T) {
		f := newFlow(t, services.DefaultFlowConfig(), nil)
		assert.NoError(t, f.ctrl.Navigate(ctx, models.ScreenHistory))
		f.txs.EXPECT().List(gomock.Any()).Return([]models.Transaction{
			{ID: 1, Amount: 1000, Currency: models.CNY, AmountCNY: 1000, Status: models.StatusCompleted},
			{ID: 2, Amount: 11400, Currency: models.RUB, AmountCNY: 1000, Status: models.StatusPending},
		}, nil)

		entries, err := f.ctrl.History(ctx)
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, "¥ 1000", entries[0].DisplayAmount)
		assert.Equal(t, "₽ 11400 (¥ 1000)", entries[1].DisplayAmount)
	})

	t.Run("failure yields empty list", func(t *testing.T) {
		f := newFlow(t, services.DefaultFlowConfig(), nil)
		assert.NoError(t, f.ctrl.Navigate(ctx, models.ScreenHistory))
		f.txs.EXPECT().List(gomock.Any()).Return(nil, assert.AnError)

		entries, err := f.ctrl.History(ctx)
		assert.NoError(t, err)
		assert.Empty(t, entries)
		assert.Len(t, f.ctrl.Notifications(), 1)
	})

	t.Run("wrong screen", func(t *testing.T) {
		f := newFlow(t, services.DefaultFlowConfig(), nil)
		_, err := f.ctrl.History(ctx)
		assert.ErrorIs(t, err, services.ErrInvalidTransition)
	})
}

func TestController_Admin(t *testing.T) {
	ctx := context.Background()
	f := newFlow(t, services.DefaultFlowConfig(), nil)
	listed := []models.PaymentDetail{{ID: 1, RecipientName: "Zhang Wei", AccountNumber: "1", Currency: models.CNY, IsActive: true}}

	f.details.EXPECT().List(gomock.Any()).Return(listed, nil)
	assert.NoError(t, f.ctrl.Navigate(ctx, models.ScreenAdmin))

	v := f.ctrl.View()
	assert.Equal(t, models.ScreenAdmin, v.Screen)
	assert.Equal(t, listed, v.Admin.PaymentDetails)

	assert.NoError(t, f.ctrl.AdminSetForm(ctx, models.PaymentDetailForm{Currency: models.CNY}))
	assert.NoError(t, f.ctrl.AdminSave(ctx))
	v = f.ctrl.View()
	assert.Len(t, v.Notifications, 1)
	assert.Equal(t, models.NotificationError, v.Notifications[0].Level)

	assert.NoError(t, f.ctrl.AdminDelete(ctx, 1, false))
	assert.Equal(t, listed, f.ctrl.View().Admin.PaymentDetails)

	assert.NoError(t, f.ctrl.Navigate(ctx, models.ScreenMain))
	assert.Nil(t, f.ctrl.View().Admin)
}

func TestController_PublishesAfterUnlock(t *testing.T) {
	ctx := context.Background()
	mc := gomock.NewController(t)
	t.Cleanup(mc.Finish)

	txs := services.NewMockTransactionStore(mc)
	relay := services.NewMockRelaySender(mc)
	events := services.NewMockEventPublisher(mc)
	rec := newCountingRecorder()

	txs.EXPECT().Create(gomock.Any(), 1000.0, models.CNY).Return(pendingTx(), nil)
	relay.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

	entered := make(chan struct{})
	release := make(chan struct{})
	events.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, evt models.TopupEvent) {
		assert.Equal(t, models.EventTransactionCreated, evt.Event)
		close(entered)
		<-release
	})

	ctrl := services.NewController(models.NewSession(uuid.New(), false, time.Now()), &services.FlowDeps{
		Transactions: txs,
		Relay:        services.NewRelayDispatcher(relay, nil, rec),
		Events:       events,
		Metrics:      rec,
		Config:       services.DefaultFlowConfig(),
	}, func(models.Session) {})
	t.Cleanup(ctrl.Close)

	assert.NoError(t, ctrl.Navigate(ctx, models.ScreenTopup))
	assert.NoError(t, ctrl.SubmitAmount(ctx, "1000", models.CNY))

	done := make(chan error, 1)
	go func() { done <- ctrl.UploadQR(ctx, pngImage) }()
	<-entered

	viewed := make(chan models.SessionView, 1)
	go func() { viewed <- ctrl.View() }()
	select {
	case v := <-viewed:
		assert.Equal(t, models.StepDetails, v.Step)
	case <-time.After(time.Second):
		t.Fatal("view blocked by event publishing")
	}

	close(release)
	assert.NoError(t, <-done)
}
