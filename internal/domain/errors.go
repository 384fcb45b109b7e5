package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking. Every failure surfaced by the
// task client wraps exactly one of these.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNetwork         = errors.New("network error")
	ErrServer          = errors.New("server error")
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("not found")
	ErrDecode          = errors.New("decode error")
)

// MsgRequired is the field message used when a required value is blank.
const MsgRequired = "is required"

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		keys = append(keys, field)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ServerError records a non-2xx response that does not map to a more
// specific kind. Status is the HTTP status code; Detail is the best-effort
// message decoded from the response body and may be empty.
type ServerError struct {
	Status int
	Detail string
}

func (e *ServerError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s (%d)", ErrServer.Error(), e.Status)
	}
	return fmt.Sprintf("%s (%d): %s", ErrServer.Error(), e.Status, e.Detail)
}

func (e *ServerError) Unwrap() error {
	return ErrServer
}

// Kind classifies an error into the task client's taxonomy.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnauthenticated
	KindNetwork
	KindServer
	KindValidation
	KindNotFound
	KindDecode
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindNetwork:
		return "network"
	case KindServer:
		return "server"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// KindOf returns the taxonomy kind of err. Unauthenticated wins over every
// other kind so callers can end the session even on wrapped failures.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrUnauthenticated):
		return KindUnauthenticated
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrDecode):
		return KindDecode
	case errors.Is(err, ErrServer):
		return KindServer
	case errors.Is(err, ErrNetwork):
		return KindNetwork
	default:
		return KindUnknown
	}
}
