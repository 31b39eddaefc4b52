package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
)

// RequestError is the uniform failure raised by every resource client call.
// Op names the operation in user terms ("fetch cities", "delete banner").
// For non-2xx responses StatusCode is set and Message carries the server's
// envelope message when one was decodable. For transport failures Err wraps
// the underlying cause and StatusCode is zero.
type RequestError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("failed to %s (status %d)", e.Op, e.StatusCode)
}

func (e *RequestError) Unwrap() error { return e.Err }

// Is maps well-known status codes onto the package's sentinel errors, so
// callers can use errors.Is without inspecting status codes themselves.
func (e *RequestError) Is(target error) bool {
	switch target {
	case ErrUnavailable:
		return e.StatusCode == 0 && e.Err != nil
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrConflict:
		return e.StatusCode == http.StatusConflict
	}
	return false
}
