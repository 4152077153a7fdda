package service

import (
	"errors"
	"fmt"

	"github.com/aussiebroadwan/pitwall/internal/auth/store"
)

// Error kinds returned by every service. Handlers map them to HTTP status
// codes with errors.Is; wrapped detail is for logs only.
var (
	ErrValidation              = errors.New("validation_error")
	ErrInvalidCredentials      = errors.New("invalid_credentials")
	ErrNotApproved             = errors.New("not_approved")
	ErrForbidden               = errors.New("forbidden")
	ErrNotFound                = errors.New("not_found")
	ErrConflict                = errors.New("conflict")
	ErrInvalidTwoFactorCode    = errors.New("invalid_two_factor_code")
	ErrTwoFactorNotInitialized = errors.New("two_factor_not_initialized")
	ErrTwoFactorCodeRequired   = errors.New("two_factor_code_required")
	ErrStorage                 = errors.New("storage_failure")
)

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}

// updateErr classifies an UpdateUser failure. A user removed between read
// and write is reported as ErrNotFound rather than a storage failure.
func updateErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return storageErr("update user", err)
}

func validationErr(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
