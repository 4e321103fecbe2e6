package services

import (
	"context"

	"github.com/sbilibin2017/gw-topup-wallet/internal/logger"
	"github.com/sbilibin2017/gw-topup-wallet/internal/metrics"
	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
)

// RelayDispatcher delivers images to the operator channel on a best-effort basis.
// A failed delivery never fails the caller's flow.
type RelayDispatcher struct {
	sender  RelaySender
	journal RelayJournal
	metrics metrics.Recorder
}

// NewRelayDispatcher creates a dispatcher. journal may be nil when no database is configured.
func NewRelayDispatcher(sender RelaySender, journal RelayJournal, rec metrics.Recorder) *RelayDispatcher {
	if rec == nil {
		rec = metrics.NoOp{}
	}
	return &RelayDispatcher{sender: sender, journal: journal, metrics: rec}
}

// Dispatch sends msg and reports whether it was delivered.
func (d *RelayDispatcher) Dispatch(ctx context.Context, msg models.RelayMessage) bool {
	err := d.sender.Send(ctx, msg)
	if err == nil {
		d.metrics.RelayDelivered(msg.Type)
		return true
	}

	logger.Log.Errorw("relay delivery failed", "kind", msg.Type, "transaction_id", msg.TransactionID, "error", err)
	d.metrics.RelayFailed(msg.Type)

	if d.journal != nil {
		f := models.RelayFailure{Kind: msg.Type, TransactionID: msg.TransactionID, Error: err.Error()}
		if jerr := d.journal.Save(context.WithoutCancel(ctx), f); jerr != nil {
			logger.Log.Errorw("failed to journal relay failure", "kind", msg.Type, "error", jerr)
		}
	}
	return false
}

// RecentFailures lists the latest journaled failures, newest first.
func (d *RelayDispatcher) RecentFailures(ctx context.Context, limit int) ([]models.RelayFailure, error) {
	if d.journal == nil {
		return []models.RelayFailure{}, nil
	}
	failures, err := d.journal.ListRecent(ctx, limit)
	if err != nil {
		logger.Log.Errorw("failed to list relay failures", "error", err)
		return nil, err
	}
	return failures, nil
}
