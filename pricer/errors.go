package pricer

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrNonFinite        = errors.New("non-finite values in simulation result")
)

// InvalidParameterError identifies the input field that failed validation.
type InvalidParameterError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

func invalid(field string, value interface{}, reason string) error {
	return &InvalidParameterError{Field: field, Value: value, Reason: reason}
}
