package services

import (
	"context"
	"errors"
	"time"

	"github.com/sbilibin2017/gw-topup-wallet/internal/logger"
	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
)

// StatusPoller watches the transaction list until a transaction leaves pending.
type StatusPoller struct {
	lister   TransactionLister
	interval time.Duration
}

// NewStatusPoller creates a poller that lists transactions every interval.
func NewStatusPoller(lister TransactionLister, interval time.Duration) *StatusPoller {
	return &StatusPoller{lister: lister, interval: interval}
}

// Wait blocks until transaction id reports a terminal status or ctx ends.
// An expired ctx deadline is reported as ErrPollTimeout; a cancelled ctx returns ctx.Err().
func (p *StatusPoller) Wait(ctx context.Context, id int64) (models.TransactionStatus, error) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return "", ErrPollTimeout
			}
			return "", ctx.Err()
		case <-ticker.C:
			txs, err := p.lister.List(ctx)
			if err != nil {
				if ctx.Err() == nil {
					logger.Log.Warnw("status poll failed", "transaction_id", id, "error", err)
				}
				continue
			}
			for _, tx := range txs {
				if tx.ID == id && tx.Status.IsTerminal() {
					return tx.Status, nil
				}
			}
		}
	}
}
