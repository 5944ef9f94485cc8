package service

import (
	"errors"  // Sentinel errors
	"strings" // String manipulation
)

var (
	ErrWalletNotFound     = errors.New("wallet not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrItemNotFound       = errors.New("wallet item not found")
	ErrWalletReassignment = errors.New("wallet reassignment not permitted")
	ErrLinkExists         = errors.New("user is already linked to this wallet")
	ErrPermissionDenied   = errors.New("you do not have access to this wallet")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError collects every rule a request broke.
type ValidationError struct {
	Errs []error
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages(), "; ")
}

// Unwrap lets errors.Is match any collected error
func (e *ValidationError) Unwrap() []error {
	return e.Errs
}

// Messages returns one human readable line per collected error
func (e *ValidationError) Messages() []string {
	out := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		out[i] = err.Error()
	}
	return out
}

// validation returns nil when errs is empty so callers can return it directly
func validation(errs ...error) error {
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Errs: errs}
}
