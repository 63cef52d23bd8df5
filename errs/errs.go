package errs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotImplemented         = errors.New("E0000: not implemented")
	ErrEmailRequired          = errors.New("E0001: email is required")
	ErrPasswordRequired       = errors.New("E0002: password is required")
	ErrInvalidEmailOrPassword = errors.New("E0003: invalid email or password")
	ErrDatabase               = errors.New("E0004: database error")
	ErrCryptographic          = errors.New("E0005: cryptographic failure")
	ErrJWT                    = errors.New("E0006: JWT failure")
	ErrNameRequired           = errors.New("E0007: name is required")
	ErrEmailAddressFormat     = errors.New("E0008: email address format incorrect")
	ErrAlreadyExists          = errors.New("E0009: user already registered")
	ErrTokenExpired           = errors.New("E0010: token expired")
	ErrUnauthorized           = errors.New("E0011: unauthorized")
	ErrInvalidID              = errors.New("E0012: invalid ID")
	ErrStudioNotFound         = errors.New("E0013: studio not found")
	ErrProjectNotFound        = errors.New("E0014: project not found")
	ErrTeamNotFound           = errors.New("E0015: team not found")
	ErrAccessDenied           = errors.New("E0016: access denied")
	ErrQueue                  = errors.New("E0017: queue error")
	ErrUserNotFound           = errors.New("E0019: user not found")
)

// ValidationError carries field-level messages for writes rejected by
// reference or required-field validation.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = message
}

func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}

	return "E0018: validation failed: " + strings.Join(parts, ", ")
}

func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}

	return nil, false
}
