package entity

import (
	"errors"
	"fmt"
)

var (
	ErrDataNotFound     = errors.New("data not found")
	ErrConflictingData  = errors.New("data conflicts with existing data in unique column")
	ErrInvalidData      = errors.New("invalid data")
	ErrTransport        = errors.New("backend unavailable")
	ErrUnauthorized     = errors.New("backend rejected credentials")
	ErrPricingLocked    = errors.New("pricing is locked by the applied rate card")
	ErrRateCardPending  = errors.New("rate card not resolved")
	ErrShipmentNotFound = errors.New("shipment not found")
	ErrInvalidConfig    = errors.New("invalid configuration")
)

// RemoteError carries the detail message the backend attached to a rejected request.
type RemoteError struct {
	Status int
	Detail string
	Kind   error
}

func (e *RemoteError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend status %d: %v", e.Status, e.Kind)
	}
	return fmt.Sprintf("backend status %d: %s", e.Status, e.Detail)
}

func (e *RemoteError) Unwrap() error {
	return e.Kind
}

// ValidationError names the field that failed client-side validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidData
}

// UserMessage returns the message an operator should see for err, preferring
// server-supplied detail over the generic fallback.
func UserMessage(err error, fallback string) string {
	var remote *RemoteError
	if errors.As(err, &remote) && remote.Detail != "" {
		return remote.Detail
	}
	var invalid *ValidationError
	if errors.As(err, &invalid) {
		return invalid.Message
	}
	return fallback
}
