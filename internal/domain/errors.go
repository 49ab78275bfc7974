package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrSermonNotFound       = errors.New("sermon not found")
	ErrEventNotFound        = errors.New("event not found")
	ErrRegistrationNotFound = errors.New("registration not found")
)

var (
	ErrDuplicateRegistration = errors.New("a registration with this participant name and email already exists for this camp year")
	ErrWaiverNotAccepted     = errors.New("the liability waiver must be accepted to complete registration")
	ErrInvalidStatus         = errors.New("invalid registration status")
)

// ValidationError aggregates every violated rule of one submission, keyed by
// field name, so the client can render all problems at once.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
