package service

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("not found")
	ErrForbidden      = errors.New("forbidden")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInternalError  = errors.New("internal error")

	ErrAlreadyFollowing = errors.New("Вы уже подписывались на этого автора")
	ErrSelfFollow       = errors.New("Подписка на cамого себя невозможна")
	ErrUsernameTaken    = errors.New("A user with that username already exists.")
)

// NonFieldErrors is the key for errors that are not bound to a single field.
const NonFieldErrors = "non_field_errors"

const (
	MsgRequired = "This field is required."
	MsgBlank    = "This field may not be blank."
	MsgNotImage = "Upload a valid image. The file you uploaded was either not an image or a corrupted image."
	MsgNotFile  = "The submitted data was not a file. Check the encoding type on the form."
)

// ValidationError maps field names to human-readable messages. It unwraps to
// ErrInvalidRequest and, when set, to the sentinel that caused it.
type ValidationError struct {
	Fields map[string][]string
	cause  error
}

func NewValidationError(field, msg string) *ValidationError {
	e := &ValidationError{Fields: make(map[string][]string)}
	e.Add(field, msg)
	return e
}

func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

func (e *ValidationError) WithCause(err error) *ValidationError {
	e.cause = err
	return e
}

func (e *ValidationError) Empty() bool {
	return e == nil || len(e.Fields) == 0
}

// OrNil returns nil for an empty error so callers can return it directly.
func (e *ValidationError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() []error {
	if e.cause != nil {
		return []error{ErrInvalidRequest, e.cause}
	}
	return []error{ErrInvalidRequest}
}
