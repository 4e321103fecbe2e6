package services

import (
	"fmt"
	"strings"
)

// ConfirmationStrategy decides how a submitted payment proof gets resolved.
type ConfirmationStrategy string

const (
	// ConfirmOptimistic marks the transaction completed right after the proof upload.
	ConfirmOptimistic ConfirmationStrategy = "optimistic"
	// ConfirmPolling waits for the backend to decide.
	ConfirmPolling ConfirmationStrategy = "polling"
)

// ParseConfirmationStrategy validates a configured strategy name.
func ParseConfirmationStrategy(s string) (ConfirmationStrategy, error) {
	switch v := ConfirmationStrategy(strings.ToLower(strings.TrimSpace(s))); v {
	case ConfirmOptimistic, ConfirmPolling:
		return v, nil
	}
	return "", fmt.Errorf("unknown confirmation strategy %q", s)
}
