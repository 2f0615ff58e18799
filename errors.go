package csscolor

import (
	"errors"
	"fmt"
	"strconv"
)

// Errors
var (
	ErrFormat = errors.New("csscolor: invalid colour format")
	ErrRange  = errors.New("csscolor: component out of range")
	ErrEmpty  = errors.New("csscolor: cannot parse an empty colour string")
)

// FormatError is returned when the input matches no colour grammar, or when a
// grammar matched but one of its components is not a number.
type FormatError struct {
	// Input is the text that failed to parse, either the whole colour or a component.
	Input string

	// Err is the underlying cause, if any.
	Err error
}

func (e *FormatError) Error() string {
	if e.Err != nil && e.Err != ErrFormat {
		return "csscolor: invalid colour " + strconv.Quote(e.Input) + ": " + e.Err.Error()
	}
	return "csscolor: invalid colour " + strconv.Quote(e.Input)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is makes every FormatError match [ErrFormat].
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// RangeError is returned by a strict [Parser] for a numeric component outside
// of its permitted range. Lenient parsers clamp instead.
type RangeError struct {
	Input string
	Value float64
	Min   float64
	Max   float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("csscolor: component %q out of range: %g not in [%g, %g]", e.Input, e.Value, e.Min, e.Max)
}

// Is makes every RangeError match [ErrRange].
func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

func formatError(input string, err error) error {
	return &FormatError{Input: input, Err: err}
}
