package docstore

import (
	"errors"

	"roomhub/internal/pkg/errs"
)

type ErrorKind string

// A missing collection file is not an error at all: the store initializes
// the default document instead. Kinds below cover the cases that must
// abort the operation.
const (
	// KindCorrupt: the file exists but does not decode. Initializing a
	// default here would silently drop data, so callers must abort.
	KindCorrupt ErrorKind = "CORRUPT"
	// KindIO: read or write failed at the filesystem level.
	KindIO ErrorKind = "IO"
)

type StoreError struct {
	Kind ErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e StoreError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e StoreError) Unwrap() error {
	return e.err
}

func wrapStoreErr(kind ErrorKind, msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return StoreError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind ErrorKind) bool {
	var e StoreError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func IsStoreError(err error) bool {
	var e StoreError
	return errors.As(err, &e)
}
