package filter

import (
	"errors"
	"fmt"
)

// ErrValidation is matched (errors.Is) by all the errors returned by Build
var ErrValidation = errors.New("invalid search terms")

// ValidationError is returned when a search term cannot be translated into a filter
type ValidationError struct {
	Key string
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Is implements errors.Is
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(key, format string, args ...interface{}) error {
	return &ValidationError{Key: key, Msg: fmt.Sprintf(format, args...)}
}

// DeprecatedParameterError is returned when a search term from the former OpenSearch API is used
type DeprecatedParameterError struct {
	Key         string
	Replacement string
	Msg         string
}

func (e *DeprecatedParameterError) Error() string { return e.Msg }

// Is implements errors.Is
func (e *DeprecatedParameterError) Is(target error) bool { return target == ErrValidation }
