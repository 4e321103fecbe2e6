package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-topup-wallet/internal/logger"
	"github.com/sbilibin2017/gw-topup-wallet/internal/metrics"
	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
	"github.com/sbilibin2017/gw-topup-wallet/internal/rates"
)

// FlowConfig tunes how a submitted proof gets confirmed.
type FlowConfig struct {
	Strategy     ConfirmationStrategy
	PollInterval time.Duration
	PollTimeout  time.Duration
}

// DefaultFlowConfig polls every 3 seconds for up to 5 minutes.
func DefaultFlowConfig() FlowConfig {
	return FlowConfig{
		Strategy:     ConfirmPolling,
		PollInterval: 3 * time.Second,
		PollTimeout:  5 * time.Minute,
	}
}

// FlowDeps are the collaborators shared by every controller.
type FlowDeps struct {
	Transactions TransactionStore
	Admin        *AdminPanel
	Relay        *RelayDispatcher
	Events       EventPublisher
	Metrics      metrics.Recorder
	Config       FlowConfig
	Now          func() time.Time
}

func (d *FlowDeps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// Controller drives one session through the top-up flow.
// Operations are serialized by mu; the waiting poll runs in its own goroutine.
type Controller struct {
	mu       sync.Mutex
	deps     *FlowDeps
	poller   *StatusPoller
	metrics  metrics.Recorder
	session  models.Session
	notes    NotificationQueue
	onChange func(models.Session)

	cancelWait context.CancelFunc
	waitSeq    uint64
	lastActive time.Time
	outbox     []models.TopupEvent // published once mu is released
}

// NewController creates a controller for s. onChange receives a snapshot after every transition.
func NewController(s models.Session, deps *FlowDeps, onChange func(models.Session)) *Controller {
	rec := deps.Metrics
	if rec == nil {
		rec = metrics.NoOp{}
	}
	if onChange == nil {
		onChange = func(models.Session) {}
	}
	return &Controller{
		deps:       deps,
		poller:     NewStatusPoller(deps.Transactions, deps.Config.PollInterval),
		metrics:    rec,
		session:    s,
		onChange:   onChange,
		lastActive: deps.now(),
	}
}

// Open loads whatever the starting screen needs.
func (c *Controller) Open(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session.Screen == models.ScreenAdmin && c.session.Admin != nil {
		c.deps.Admin.Refresh(ctx, c.session.Admin, &c.notes)
	}
	c.changedLocked()
}

// Resume continues a restored waiting step, or resolves it as timed out when its deadline has passed.
func (c *Controller) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()

	step, ok := c.session.Step.(models.WaitingStep)
	if !ok || c.session.Screen != models.ScreenTopup {
		return
	}
	if !c.deps.now().Before(step.Deadline) {
		c.timeoutLocked()
		return
	}
	c.startWaitingLocked(step)
}

// Close stops the background poll.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopWaitingLocked(false)
}

// Idle reports whether the controller saw no operation since before and has no poll running.
func (c *Controller) Idle(before time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancelWait == nil && c.lastActive.Before(before)
}

// Snapshot returns a copy of the session state.
func (c *Controller) Snapshot() models.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// View renders the session and drains pending notifications.
func (c *Controller) View() models.SessionView {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := models.SessionView{
		ID:            c.session.ID,
		Screen:        c.session.Screen,
		Admin:         c.session.Admin.Clone(),
		Notifications: c.notes.Drain(),
	}

	switch step := c.session.Step.(type) {
	case models.AmountStep:
		v.Step = step.Kind()
		v.Amount = step.Amount
		v.Currency = step.Currency
		v.AmountPreview = rates.Preview(step.Amount, step.Currency)
	case models.QRStep:
		v.Step = step.Kind()
		v.Amount = step.RawAmount
		v.Currency = step.Currency
		v.DisplayAmount = rates.DisplayAmount(step.Amount, step.Currency)
	case models.DetailsStep:
		fillTransactionView(&v, step.Kind(), step.Transaction)
	case models.PaymentProofStep:
		fillTransactionView(&v, step.Kind(), step.Transaction)
	case models.WaitingStep:
		fillTransactionView(&v, step.Kind(), step.Transaction)
		v.WaitingElapsedSeconds = int64(c.deps.now().Sub(step.Since) / time.Second)
		deadline := step.Deadline
		v.WaitingDeadline = &deadline
	}

	return v
}

func fillTransactionView(v *models.SessionView, kind models.StepKind, tx models.Transaction) {
	v.Step = kind
	v.Currency = tx.Currency
	v.DisplayAmount = rates.DisplayAmount(tx.Amount, tx.Currency)
	v.Transaction = &tx
}

// Navigate switches screens. Main is reachable from everywhere; other screens only from main.
func (c *Controller) Navigate(ctx context.Context, target models.Screen) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !target.IsValid() {
		return fmt.Errorf("%w: unknown screen %q", ErrInvalidTransition, target)
	}

	if target == models.ScreenMain {
		c.stopWaitingLocked(true)
		c.toMainLocked()
		c.changedLocked()
		return nil
	}

	if c.session.Screen != models.ScreenMain {
		return fmt.Errorf("%w: cannot open %s from %s", ErrInvalidTransition, target, c.session.Screen)
	}

	c.session.Screen = target
	switch target {
	case models.ScreenTopup:
		c.session.Step = models.AmountStep{Currency: models.DefaultCurrency}
	case models.ScreenAdmin:
		c.session.Admin = models.NewAdminState()
		c.deps.Admin.Refresh(ctx, c.session.Admin, &c.notes)
	}
	c.changedLocked()
	return nil
}

// SubmitAmount validates the typed amount and advances to the QR step.
// Invalid input is reported as a notification and keeps the typed values.
func (c *Controller) SubmitAmount(ctx context.Context, raw string, currency models.Currency) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	step, ok := c.session.Step.(models.AmountStep)
	if !ok || c.session.Screen != models.ScreenTopup {
		return fmt.Errorf("%w: not on the amount step", ErrInvalidTransition)
	}

	if currency == "" {
		currency = step.Currency
	}
	if !currency.IsValid() {
		notifyError(&c.notes, "Error", "Unsupported currency")
		return nil
	}

	c.session.Step = models.AmountStep{Amount: raw, Currency: currency}
	defer c.changedLocked()

	amount, err := ParseAmount(raw, currency)
	if err != nil {
		switch {
		case errors.Is(err, ErrAmountBelowMinimum):
			notifyError(&c.notes, "Error", fmt.Sprintf("Minimum amount is %.0f %s", MinAmounts[currency], currency))
		default:
			notifyError(&c.notes, "Error", "Enter a valid amount")
		}
		return nil
	}

	c.session.Step = models.QRStep{Amount: amount, RawAmount: raw, Currency: currency}
	return nil
}

// UploadQR creates the transaction for the QR image and relays the image to operators.
func (c *Controller) UploadQR(ctx context.Context, image []byte) error {
	c.mu.Lock()
	defer c.unlockAndPublish(ctx)

	step, ok := c.session.Step.(models.QRStep)
	if !ok || c.session.Screen != models.ScreenTopup {
		return fmt.Errorf("%w: not on the QR step", ErrInvalidTransition)
	}

	data, err := EncodeImage(image)
	if err != nil {
		notifyError(&c.notes, "Error", "Upload an image file")
		return nil
	}

	tx, err := c.deps.Transactions.Create(ctx, step.Amount, step.Currency)
	if err != nil {
		logger.Log.Errorw("failed to create transaction", "session_id", c.session.ID, "amount", step.Amount, "currency", step.Currency, "error", err)
		notifyError(&c.notes, "Error", "Could not create the payment request, try again")
		return nil
	}
	normalizeTransaction(tx, step.Amount, step.Currency)
	c.metrics.TransactionCreated(tx.Currency)

	txID := tx.ID
	c.deps.Relay.Dispatch(ctx, models.RelayMessage{
		Image:         data,
		Amount:        step.Amount,
		Currency:      step.Currency,
		TransactionID: &txID,
		Type:          models.RelayQRCode,
	})
	c.publishLocked(models.EventTransactionCreated, *tx)

	c.session.Step = models.DetailsStep{Transaction: *tx}
	notifySuccess(&c.notes, "QR code accepted", "Pay using the details below")
	c.changedLocked()
	return nil
}

// normalizeTransaction fills fields the server may omit.
func normalizeTransaction(tx *models.Transaction, amount float64, currency models.Currency) {
	if tx.Amount == 0 {
		tx.Amount = amount
	}
	if tx.Currency == "" {
		tx.Currency = currency
	}
	if tx.AmountCNY == 0 {
		tx.AmountCNY = rates.ToCNY(tx.Amount, tx.Currency)
	}
	if tx.Status == "" {
		tx.Status = models.StatusPending
	}
}

// ConfirmPaid moves from the details step to the proof upload.
func (c *Controller) ConfirmPaid(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	step, ok := c.session.Step.(models.DetailsStep)
	if !ok || c.session.Screen != models.ScreenTopup {
		return fmt.Errorf("%w: not on the details step", ErrInvalidTransition)
	}

	c.session.Step = models.PaymentProofStep{Transaction: step.Transaction}
	c.changedLocked()
	return nil
}

// UploadProof relays the payment proof and applies the confirmation strategy.
func (c *Controller) UploadProof(ctx context.Context, image []byte) error {
	c.mu.Lock()
	defer c.unlockAndPublish(ctx)

	step, ok := c.session.Step.(models.PaymentProofStep)
	if !ok || c.session.Screen != models.ScreenTopup {
		return fmt.Errorf("%w: not on the payment proof step", ErrInvalidTransition)
	}

	data, err := EncodeImage(image)
	if err != nil {
		notifyError(&c.notes, "Error", "Upload an image file")
		return nil
	}

	tx := step.Transaction
	txID := tx.ID
	c.deps.Relay.Dispatch(ctx, models.RelayMessage{
		Image:         data,
		Amount:        tx.Amount,
		Currency:      tx.Currency,
		TransactionID: &txID,
		Type:          models.RelayPaymentProof,
	})
	c.publishLocked(models.EventProofSubmitted, tx)

	if c.deps.Config.Strategy == ConfirmOptimistic {
		if err := c.deps.Transactions.UpdateStatus(ctx, tx.ID, models.StatusCompleted); err != nil {
			logger.Log.Errorw("failed to confirm transaction", "transaction_id", tx.ID, "error", err)
			notifyError(&c.notes, "Error", "Could not confirm the payment, try again")
			return nil
		}
		tx.Status = models.StatusCompleted
		c.publishLocked(models.EventTransactionResolved, tx)
		notifySuccess(&c.notes, "Payment confirmed", "Funds will be credited within 5-10 minutes")
		c.toMainLocked()
		c.changedLocked()
		return nil
	}

	now := c.deps.now()
	waiting := models.WaitingStep{Transaction: tx, Since: now, Deadline: now.Add(c.deps.Config.PollTimeout)}
	c.session.Step = waiting
	c.startWaitingLocked(waiting)
	notifySuccess(&c.notes, "Proof received", "Waiting for the payment to be confirmed")
	c.changedLocked()
	return nil
}

// History returns the transaction list. A failed fetch yields an empty list and a notification.
func (c *Controller) History(ctx context.Context) ([]models.HistoryEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session.Screen != models.ScreenHistory {
		return nil, fmt.Errorf("%w: not on the history screen", ErrInvalidTransition)
	}
	c.lastActive = c.deps.now()

	txs, err := c.deps.Transactions.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load history", "session_id", c.session.ID, "error", err)
		notifyError(&c.notes, "Error", "Could not load the history")
		return []models.HistoryEntry{}, nil
	}

	entries := make([]models.HistoryEntry, 0, len(txs))
	for _, tx := range txs {
		entries = append(entries, models.HistoryEntry{Transaction: tx, DisplayAmount: rates.HistoryLine(tx)})
	}
	return entries, nil
}

// Notifications drains the pending notifications.
func (c *Controller) Notifications() []models.Notification {
	return c.notes.Drain()
}

// AdminSelectView switches the admin sub-view.
func (c *Controller) AdminSelectView(ctx context.Context, view models.AdminView) error {
	return c.withAdmin(func(st *models.AdminState) error {
		return c.deps.Admin.SelectView(ctx, st, view, &c.notes)
	})
}

// AdminEdit starts editing payment detail id.
func (c *Controller) AdminEdit(ctx context.Context, id int64) error {
	return c.withAdmin(func(st *models.AdminState) error {
		c.deps.Admin.Edit(ctx, st, id, &c.notes)
		return nil
	})
}

// AdminCancel leaves the edit session.
func (c *Controller) AdminCancel(ctx context.Context) error {
	return c.withAdmin(func(st *models.AdminState) error {
		c.deps.Admin.Cancel(st)
		return nil
	})
}

// AdminSetForm stores the typed form values.
func (c *Controller) AdminSetForm(ctx context.Context, form models.PaymentDetailForm) error {
	return c.withAdmin(func(st *models.AdminState) error {
		c.deps.Admin.SetForm(st, form)
		return nil
	})
}

// AdminSave submits the form.
func (c *Controller) AdminSave(ctx context.Context) error {
	return c.withAdmin(func(st *models.AdminState) error {
		c.deps.Admin.Save(ctx, st, &c.notes)
		return nil
	})
}

// AdminDelete deletes payment detail id when confirmed is set.
func (c *Controller) AdminDelete(ctx context.Context, id int64, confirmed bool) error {
	return c.withAdmin(func(st *models.AdminState) error {
		c.deps.Admin.Delete(ctx, st, id, confirmed, &c.notes)
		return nil
	})
}

func (c *Controller) withAdmin(fn func(st *models.AdminState) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session.Screen != models.ScreenAdmin || c.session.Admin == nil {
		return fmt.Errorf("%w: not on the admin screen", ErrInvalidTransition)
	}
	if err := fn(c.session.Admin); err != nil {
		return err
	}
	c.changedLocked()
	return nil
}

func (c *Controller) startWaitingLocked(step models.WaitingStep) {
	c.stopWaitingLocked(false)

	ctx, cancel := context.WithDeadline(context.Background(), step.Deadline)
	c.cancelWait = cancel
	c.waitSeq++
	seq := c.waitSeq

	go func() {
		defer cancel()
		status, err := c.poller.Wait(ctx, step.Transaction.ID)
		c.resolveWaiting(seq, status, err)
	}()
}

// stopWaitingLocked cancels a running poll. It does not notify.
func (c *Controller) stopWaitingLocked(record bool) {
	if c.cancelWait == nil {
		return
	}
	c.cancelWait()
	c.cancelWait = nil
	c.waitSeq++
	if record {
		c.metrics.PollResolved(metrics.PollCancelled)
	}
}

func (c *Controller) resolveWaiting(seq uint64, status models.TransactionStatus, err error) {
	c.mu.Lock()
	defer c.unlockAndPublish(context.Background())

	if seq != c.waitSeq {
		return
	}
	step, ok := c.session.Step.(models.WaitingStep)
	if !ok || c.session.Screen != models.ScreenTopup {
		return
	}
	c.cancelWait = nil

	switch {
	case err == nil:
		tx := step.Transaction
		tx.Status = status
		if status == models.StatusCompleted {
			c.metrics.PollResolved(metrics.PollCompleted)
			notifySuccess(&c.notes, "Payment received", "Funds will be credited within 5-10 minutes")
		} else {
			c.metrics.PollResolved(metrics.PollFailed)
			notifyError(&c.notes, "Payment rejected", "The payment was not confirmed, contact support")
		}
		c.publishLocked(models.EventTransactionResolved, tx)
	case errors.Is(err, ErrPollTimeout):
		c.timeoutLocked()
		return
	default:
		return
	}

	c.toMainLocked()
	c.changedLocked()
}

func (c *Controller) timeoutLocked() {
	c.metrics.PollResolved(metrics.PollTimeout)
	notifyError(&c.notes, "No confirmation yet", "The payment is still being checked, see the history for its status")
	c.toMainLocked()
	c.changedLocked()
}

func (c *Controller) toMainLocked() {
	c.session.Screen = models.ScreenMain
	c.session.Step = nil
	c.session.Admin = nil
}

// publishLocked queues an event for unlockAndPublish.
func (c *Controller) publishLocked(event string, tx models.Transaction) {
	if c.deps.Events == nil {
		return
	}
	c.outbox = append(c.outbox, models.TopupEvent{
		Event:         event,
		SessionID:     c.session.ID.String(),
		TransactionID: tx.ID,
		Amount:        tx.Amount,
		Currency:      tx.Currency,
		AmountCNY:     tx.AmountCNY,
		Status:        tx.Status,
		Timestamp:     c.deps.now().Unix(),
	})
}

// unlockAndPublish releases mu, then hands the queued events to the publisher.
func (c *Controller) unlockAndPublish(ctx context.Context) {
	events := c.outbox
	c.outbox = nil
	c.mu.Unlock()

	for _, evt := range events {
		c.deps.Events.Publish(ctx, evt)
	}
}

func (c *Controller) changedLocked() {
	now := c.deps.now()
	c.lastActive = now
	c.session.UpdatedAt = now
	c.onChange(c.session)
}
