package errs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var (
	ErrLocationPermissionDenied = errors.New("location permission denied")
	ErrUnauthenticated          = errors.New("unauthenticated")
	ErrTransport                = errors.New("backend unreachable")
	ErrNotFound                 = errors.New("not found")
	ErrCanceled                 = errors.New("request canceled")
)

func Wrap(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}

// APIError is a non-2xx answer from the marketplace API
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Body)
}

// Is lets errors.Is(err, ErrNotFound) match a 404 answer
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// ValidationError lists the offending form fields and their messages
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Add records a field message, keeping the first one reported
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = message
	}
}

// Empty reports whether no field failed
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

// SubmissionError is returned when the marketplace rejected or never received
// an appointment. The draft is left untouched.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return "failed to submit appointment: " + e.Err.Error()
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// FromContext maps context errors onto ErrCanceled, keeping the cause
func FromContext(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrCanceled, err)
	}
	return nil
}

// IsValidation reports whether err carries field errors
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
