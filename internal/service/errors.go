package service

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("user not authorized for this trip")
	ErrInvalidID          = errors.New("invalid id format")
	ErrItemNotFound       = errors.New("saved item not found")
)

// ValidationError carries one or more messages meant for the caller.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func newValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// validation collects messages and yields nil when there are none.
type validation []string

func (v *validation) check(ok bool, message string) {
	if !ok {
		*v = append(*v, message)
	}
}

func (v validation) err() error {
	if len(v) == 0 {
		return nil
	}
	return newValidationError(v...)
}
