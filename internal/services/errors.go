package services

import "errors"

var (
	// ErrSessionNotFound is returned for unknown or expired sessions.
	ErrSessionNotFound = errors.New("session not found")
	// ErrInvalidTransition is returned when an operation is not allowed on the current screen or step.
	ErrInvalidTransition = errors.New("operation not allowed in the current state")
	// ErrInvalidAmount is returned for input that is not a positive number.
	ErrInvalidAmount = errors.New("amount must be a positive number")
	// ErrAmountBelowMinimum is returned when the amount is under the currency minimum.
	ErrAmountBelowMinimum = errors.New("amount is below the minimum")
	// ErrEmptyImage is returned for an empty upload.
	ErrEmptyImage = errors.New("image is empty")
	// ErrNotAnImage is returned when the upload is not an image.
	ErrNotAnImage = errors.New("file is not an image")
	// ErrPollTimeout is returned when no decision arrived before the waiting deadline.
	ErrPollTimeout = errors.New("payment confirmation timed out")
)
