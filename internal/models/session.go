package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Screen is the top-level screen of a session.
type Screen string

const (
	ScreenMain    Screen = "main"
	ScreenTopup   Screen = "topup"
	ScreenHistory Screen = "history"
	ScreenHelp    Screen = "help"
	ScreenAdmin   Screen = "admin"
)

// IsValid reports whether s names a known screen.
func (s Screen) IsValid() bool {
	switch s {
	case ScreenMain, ScreenTopup, ScreenHistory, ScreenHelp, ScreenAdmin:
		return true
	}
	return false
}

// StepKind names a top-up wizard step.
type StepKind string

const (
	StepAmount       StepKind = "amount"
	StepQR           StepKind = "qr"
	StepDetails      StepKind = "details"
	StepPaymentProof StepKind = "payment_proof"
	StepWaiting      StepKind = "waiting"
)

// TopupStep is one wizard step together with the data that step owns.
// The set of implementations is closed.
type TopupStep interface {
	Kind() StepKind
	isTopupStep()
}

// AmountStep collects the amount and currency.
type AmountStep struct {
	Amount   string   `json:"amount"`
	Currency Currency `json:"currency"`
}

// QRStep waits for the payer's QR-code image.
type QRStep struct {
	Amount    float64  `json:"amount"`
	RawAmount string   `json:"raw_amount"`
	Currency  Currency `json:"currency"`
}

// DetailsStep shows the requisites of a created transaction.
type DetailsStep struct {
	Transaction Transaction `json:"transaction"`
}

// PaymentProofStep waits for the proof-of-payment image.
type PaymentProofStep struct {
	Transaction Transaction `json:"transaction"`
}

// WaitingStep polls for the server's decision until Deadline.
type WaitingStep struct {
	Transaction Transaction `json:"transaction"`
	Since       time.Time   `json:"since"`
	Deadline    time.Time   `json:"deadline"`
}

func (AmountStep) Kind() StepKind       { return StepAmount }
func (QRStep) Kind() StepKind           { return StepQR }
func (DetailsStep) Kind() StepKind      { return StepDetails }
func (PaymentProofStep) Kind() StepKind { return StepPaymentProof }
func (WaitingStep) Kind() StepKind      { return StepWaiting }

func (AmountStep) isTopupStep()       {}
func (QRStep) isTopupStep()           {}
func (DetailsStep) isTopupStep()      {}
func (PaymentProofStep) isTopupStep() {}
func (WaitingStep) isTopupStep()      {}

// Session is the persisted state of one flow.
// Step is set only on ScreenTopup and Admin only on ScreenAdmin.
type Session struct {
	ID        uuid.UUID
	Screen    Screen
	Step      TopupStep
	Admin     *AdminState
	UpdatedAt time.Time
}

// NewSession returns a session on the main screen, or on the admin screen when admin is set.
func NewSession(id uuid.UUID, admin bool, now time.Time) Session {
	s := Session{ID: id, Screen: ScreenMain, UpdatedAt: now}
	if admin {
		s.Screen = ScreenAdmin
		s.Admin = NewAdminState()
	}
	return s
}

type sessionJSON struct {
	ID        uuid.UUID       `json:"id"`
	Screen    Screen          `json:"screen"`
	StepKind  StepKind        `json:"step_kind,omitempty"`
	Step      json.RawMessage `json:"step,omitempty"`
	Admin     *AdminState     `json:"admin,omitempty"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// MarshalJSON encodes the step as a kind tag plus its payload.
func (s Session) MarshalJSON() ([]byte, error) {
	out := sessionJSON{ID: s.ID, Screen: s.Screen, Admin: s.Admin, UpdatedAt: s.UpdatedAt}
	if s.Step != nil {
		raw, err := json.Marshal(s.Step)
		if err != nil {
			return nil, err
		}
		out.StepKind = s.Step.Kind()
		out.Step = raw
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the kind-tagged step.
func (s *Session) UnmarshalJSON(data []byte) error {
	var in sessionJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	var step TopupStep
	switch in.StepKind {
	case "":
	case StepAmount:
		step = decodeStep[AmountStep](in.Step)
	case StepQR:
		step = decodeStep[QRStep](in.Step)
	case StepDetails:
		step = decodeStep[DetailsStep](in.Step)
	case StepPaymentProof:
		step = decodeStep[PaymentProofStep](in.Step)
	case StepWaiting:
		step = decodeStep[WaitingStep](in.Step)
	default:
		return fmt.Errorf("unknown step kind %q", in.StepKind)
	}
	if in.StepKind != "" && step == nil {
		return fmt.Errorf("malformed %s step", in.StepKind)
	}

	*s = Session{ID: in.ID, Screen: in.Screen, Step: step, Admin: in.Admin, UpdatedAt: in.UpdatedAt}
	return nil
}

func decodeStep[T TopupStep](raw json.RawMessage) TopupStep {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}

// SessionView is what the client renders after every operation.
// swagger:model SessionView
type SessionView struct {
	ID                    uuid.UUID      `json:"id"`
	Screen                Screen         `json:"screen"`
	Step                  StepKind       `json:"step,omitempty"`
	Amount                string         `json:"amount,omitempty"`
	Currency              Currency       `json:"currency,omitempty"`
	AmountPreview         string         `json:"amount_preview,omitempty"` // CNY hint while typing a RUB amount
	DisplayAmount         string         `json:"display_amount,omitempty"`
	Transaction           *Transaction   `json:"transaction,omitempty"`
	WaitingElapsedSeconds int64          `json:"waiting_elapsed_seconds,omitempty"`
	WaitingDeadline       *time.Time     `json:"waiting_deadline,omitempty"`
	Admin                 *AdminState    `json:"admin,omitempty"`
	Notifications         []Notification `json:"notifications"`
}
