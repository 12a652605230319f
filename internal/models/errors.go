package models

import (
	"errors"
	"strings"
)

// ErrValidation is matched by every error returned from an input Validate method.
var ErrValidation = errors.New("validation failed")

// ValidationError reports a request body that is missing required data.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// required returns a ValidationError naming the first blank field, or nil.
func required(fields ...[2]string) error {
	for _, f := range fields {
		if strings.TrimSpace(f[1]) == "" {
			return &ValidationError{Message: f[0] + " is required"}
		}
	}
	return nil
}
