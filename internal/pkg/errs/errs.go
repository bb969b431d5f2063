package errs

import (
	"fmt"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark makes err match markErr under errors.Is — the standard library's
// as well as cockroachdb's — while keeping the original cause available
// for errors.As. The mark alone is not enough: cockroachdb marks are
// invisible to stdlib errors.Is, so the sentinel is also woven into the
// wrap chain.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(fmt.Errorf("%w: %w", markErr, err), markErr)
}
