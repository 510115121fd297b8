package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInvalidRewardType    = errors.New("invalid reward type")
	ErrInvalidEntryType     = errors.New("invalid ledger entry type")
	ErrInsufficientPoints   = errors.New("insufficient points")
	ErrInvalidPagination    = errors.New("invalid pagination parameters")
	ErrIdempotencyKeyReused = errors.New("idempotency key already used for a different request")
	ErrNotFound             = errors.New("not found")
	ErrStorageUnavailable   = errors.New("storage unavailable")
	ErrAlreadyExists        = errors.New("already exists")
)

// IsClientError reports whether err is one of the user-correctable errors.
func IsClientError(err error) bool {
	for _, target := range []error{
		ErrInvalidAmount,
		ErrInvalidRewardType,
		ErrInvalidEntryType,
		ErrInsufficientPoints,
		ErrInvalidPagination,
		ErrIdempotencyKeyReused,
		ErrNotFound,
		ErrAlreadyExists,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// StorageError classifies err as an infrastructure failure unless it already
// carries a known class.
func StorageError(err error) error {
	if err == nil || errors.Is(err, ErrStorageUnavailable) || IsClientError(err) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
}
