package usecase

import (
	"errors"
	"fmt"
)

// ErrNotFound covers both "no such row" and "row owned by someone else";
// callers cannot tell the two apart.
var ErrNotFound = errors.New("not found")

// ErrUnauthorized is returned when no caller identity could be resolved.
var ErrUnauthorized = errors.New("unauthorized")

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors wraps a non-empty list of field errors so services can
// return a single error value.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return e[0].Error()
}

func IsValidationError(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}
