package domain

import "errors"

var (
	ErrStoreUnavailable = errors.New("table not found")
	ErrNotFound         = errors.New("not found")
	ErrUnexpected       = errors.New("unexpected error")
	ErrInvalidInput     = errors.New("invalid input")
)

type ErrorKind string

const (
	KindStoreUnavailable ErrorKind = "StoreUnavailable"
	KindNotFound         ErrorKind = "NotFound"
	KindUnexpected       ErrorKind = "Unexpected"
)

// KindOf classifies err for the failure envelope. Invalid input and
// anything unrecognised report as Unexpected.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrStoreUnavailable):
		return KindStoreUnavailable
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	default:
		return KindUnexpected
	}
}
