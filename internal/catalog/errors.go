package catalog

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a failed catalog call.
type ErrorKind string

const (
	KindNetwork ErrorKind = "network"
	KindStatus  ErrorKind = "status"
	KindDecode  ErrorKind = "decode"
)

// ErrNotFound matches any Error produced by a 404 response.
var ErrNotFound = errors.New("catalog resource not found")

// Error is the only failure type returned by the catalog client.
type Error struct {
	Op         string // "search" or "episodes"
	URL        string
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("catalog %s: unexpected status %d %s", e.Op, e.StatusCode, http.StatusText(e.StatusCode))
	case KindDecode:
		return fmt.Sprintf("catalog %s: malformed response: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("catalog %s: %v", e.Op, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e.Kind == KindStatus && e.StatusCode == http.StatusNotFound
}

func networkError(op, url string, err error) *Error {
	return &Error{Op: op, URL: url, Kind: KindNetwork, Err: err}
}

func statusError(op, url string, code int) *Error {
	return &Error{Op: op, URL: url, Kind: KindStatus, StatusCode: code}
}

func decodeError(op, url string, err error) *Error {
	return &Error{Op: op, URL: url, Kind: KindDecode, Err: err}
}
