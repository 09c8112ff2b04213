package model

import (
	"errors"
	"strings"
)

// ErrInvalidTask is the kind shared by every ValidationError.
var ErrInvalidTask = errors.New("invalid task")

// ValidationError reports one or more failed field checks, in check order.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Reasons) == 0 {
		return ErrInvalidTask.Error()
	}
	return strings.Join(e.Reasons, " | ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidTask }

func invalid(reasons ...string) error {
	return &ValidationError{Reasons: reasons}
}
