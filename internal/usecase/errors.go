package usecase

import (
	"errors"

	"roomhub/internal/domain/booking"
	"roomhub/internal/domain/listing"
	"roomhub/internal/infra/docstore"
	"roomhub/internal/pkg/errs"
)

var (
	ErrListingNotFound      = errs.New("listing not found")
	ErrBookingNotFound      = errs.New("booking not found")
	ErrCatalogEntryNotFound = errs.New("catalog entry not found")
	ErrInvalidTransition    = errs.New("invalid status transition")
	ErrPermissionDenied     = errs.New("permission denied")
	ErrValidation           = errs.New("validation failed")
	ErrStoreFailed          = errs.New("document store operation failed")
)

// translateErr maps domain and store errors onto the use case sentinels
// that handlers switch on. Sentinels already in the chain pass through.
func translateErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, listing.ErrInvalidTransition), errors.Is(err, booking.ErrInvalidTransition):
		return errs.Mark(err, ErrInvalidTransition)
	case errors.Is(err, listing.ErrNotOwner):
		return errs.Mark(err, ErrPermissionDenied)
	}
	if _, ok := MissingField(err); ok {
		return errs.Mark(err, ErrValidation)
	}
	if docstore.IsStoreError(err) {
		return errs.Mark(err, ErrStoreFailed)
	}
	return err
}

// MissingField reports the offending field when err is a validation
// failure over a required field, regardless of which entity raised it.
func MissingField(err error) (string, bool) {
	var lm *listing.MissingFieldError
	if errors.As(err, &lm) {
		return lm.Field, true
	}
	var bm *booking.MissingFieldError
	if errors.As(err, &bm) {
		return bm.Field, true
	}
	return "", false
}
