package service

import (
	"errors"
	"fmt"
)

var (
	ErrBusy       = errors.New("another staking action is in progress")
	ErrSuperseded = errors.New("refresh superseded by a newer state change")
)

// ValidationError rejects an action before anything is sent to the network.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
