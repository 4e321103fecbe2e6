package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/gw-topup-wallet/internal/logger"
	"github.com/sbilibin2017/gw-topup-wallet/internal/models"
)

// AdminPanel implements the payment-detail CRUD and the read-only transaction list.
// It mutates the AdminState it is given; callers serialize access.
type AdminPanel struct {
	details  PaymentDetailStore
	txs      TransactionLister
	validate *validator.Validate
}

// NewAdminPanel creates an AdminPanel.
func NewAdminPanel(details PaymentDetailStore, txs TransactionLister) *AdminPanel {
	return &AdminPanel{
		details:  details,
		txs:      txs,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Refresh reloads the list of the current sub-view. On failure the previous list is kept.
func (p *AdminPanel) Refresh(ctx context.Context, st *models.AdminState, n Notifier) {
	switch st.View {
	case models.AdminTransactions:
		txs, err := p.txs.List(ctx)
		if err != nil {
			logger.Log.Errorw("failed to load transactions", "error", err)
			notifyError(n, "Error", "Could not load transactions")
			return
		}
		st.Transactions = txs
	default:
		p.refreshDetails(ctx, st, n)
	}
}

func (p *AdminPanel) refreshDetails(ctx context.Context, st *models.AdminState, n Notifier) {
	details, err := p.details.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load payment details", "error", err)
		notifyError(n, "Error", "Could not load payment details")
		return
	}
	st.PaymentDetails = details
}

// SelectView switches the sub-view and refreshes it.
func (p *AdminPanel) SelectView(ctx context.Context, st *models.AdminState, view models.AdminView, n Notifier) error {
	if !view.IsValid() {
		return fmt.Errorf("%w: unknown admin view %q", ErrInvalidTransition, view)
	}
	st.View = view
	p.Refresh(ctx, st, n)
	return nil
}

// Edit starts an edit session on record id, re-reading it from the store.
// The listed copy is used when the read fails.
func (p *AdminPanel) Edit(ctx context.Context, st *models.AdminState, id int64, n Notifier) {
	var record *models.PaymentDetail

	d, err := p.details.Get(ctx, id)
	if err != nil {
		logger.Log.Warnw("failed to read payment detail, using listed copy", "id", id, "error", err)
		for i := range st.PaymentDetails {
			if st.PaymentDetails[i].ID == id {
				record = &st.PaymentDetails[i]
				break
			}
		}
	} else {
		record = d
	}

	if record == nil {
		notifyError(n, "Error", "Payment detail not found")
		return
	}

	editing := id
	st.EditingID = &editing
	st.Form = models.FormFromPaymentDetail(*record)
}

// Cancel leaves the edit session.
func (p *AdminPanel) Cancel(st *models.AdminState) {
	st.ResetForm()
}

// SetForm stores the form values being typed.
func (p *AdminPanel) SetForm(st *models.AdminState, form models.PaymentDetailForm) {
	st.Form = form
}

// Save creates a record, or updates the one being edited. Invalid forms never reach the store.
func (p *AdminPanel) Save(ctx context.Context, st *models.AdminState, n Notifier) {
	if err := p.validate.Struct(st.Form); err != nil {
		notifyError(n, "Error", "Fill in all fields")
		return
	}

	if st.EditingID != nil {
		if _, err := p.details.Update(ctx, *st.EditingID, st.Form); err != nil {
			logger.Log.Errorw("failed to update payment detail", "id", *st.EditingID, "error", err)
			notifyError(n, "Error", "Could not save payment detail")
			return
		}
		notifySuccess(n, "Saved", "Payment detail updated")
	} else {
		if _, err := p.details.Create(ctx, st.Form); err != nil {
			logger.Log.Errorw("failed to create payment detail", "error", err)
			notifyError(n, "Error", "Could not save payment detail")
			return
		}
		notifySuccess(n, "Saved", "Payment detail added")
	}

	st.ResetForm()
	p.refreshDetails(ctx, st, n)
}

// Delete removes record id once confirmed. Without confirmation nothing happens.
func (p *AdminPanel) Delete(ctx context.Context, st *models.AdminState, id int64, confirmed bool, n Notifier) {
	if !confirmed {
		return
	}

	if err := p.details.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete payment detail", "id", id, "error", err)
		notifyError(n, "Error", "Could not delete payment detail")
		return
	}
	notifySuccess(n, "Deleted", "Payment detail deleted")

	if st.EditingID != nil && *st.EditingID == id {
		st.ResetForm()
	}
	p.refreshDetails(ctx, st, n)
}
