package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// Upstream failure kinds. A FetchError matches exactly one of these with errors.Is.
	ErrUnreachable        = errors.New("upstream unreachable")
	ErrBadStatus          = errors.New("upstream returned non-success status")
	ErrMalformedBody      = errors.New("upstream body is malformed")
	ErrStructuralMismatch = errors.New("upstream payload is missing mandatory fields")

	// ErrCategoryNotFound is returned when a stat category cannot be located by
	// name and the positional fallback is not safe to use.
	ErrCategoryNotFound = fmt.Errorf("%w: stat category not found", ErrStructuralMismatch)
)

// FetchErrorKind classifies an upstream failure.
type FetchErrorKind string

const (
	FetchUnreachable   FetchErrorKind = "unreachable"
	FetchBadStatus     FetchErrorKind = "bad_status"
	FetchMalformedBody FetchErrorKind = "malformed_body"
)

func (k FetchErrorKind) sentinel() error {
	switch k {
	case FetchUnreachable:
		return ErrUnreachable
	case FetchBadStatus:
		return ErrBadStatus
	case FetchMalformedBody:
		return ErrMalformedBody
	default:
		return nil
	}
}

// FetchError describes one failed upstream request.
type FetchError struct {
	Kind       FetchErrorKind
	Feed       string
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("fetch %s (%s): %s", e.Feed, e.URL, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" status=%d", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrBadStatus) and friends classify a FetchError.
func (e *FetchError) Is(target error) bool {
	sentinel := e.Kind.sentinel()
	return sentinel != nil && target == sentinel
}

// IsUpstreamError reports whether err came from the upstream data source.
func IsUpstreamError(err error) bool {
	return errors.Is(err, ErrUnreachable) ||
		errors.Is(err, ErrBadStatus) ||
		errors.Is(err, ErrMalformedBody) ||
		errors.Is(err, ErrStructuralMismatch)
}
