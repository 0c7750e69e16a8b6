package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotNumber is returned when input cannot be parsed as an integer.
var ErrNotNumber = errors.New("please enter a valid number")

// ErrInterrupted is returned by blocking reads when the user aborts
// (Ctrl+C) or input ends.
var ErrInterrupted = errors.New("input interrupted")

// RangeError is returned when a number parses but falls outside [Min, Max].
type RangeError struct {
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("please enter a number between %d and %d", e.Min, e.Max)
}

// ParseChoice parses raw as an integer in the inclusive range [min, max].
// Surrounding whitespace is ignored.
func ParseChoice(raw string, min, max int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrNotNumber
	}
	if n < min || n > max {
		return 0, &RangeError{Value: n, Min: min, Max: max}
	}
	return n, nil
}

// Recoverable reports whether err is an input error that should be answered
// with a re-prompt rather than propagated.
func Recoverable(err error) bool {
	var rangeErr *RangeError
	return errors.Is(err, ErrNotNumber) || errors.As(err, &rangeErr)
}

// Interrupted reports whether err ends input: ErrInterrupted or a
// cancelled context.
func Interrupted(err error) bool {
	return errors.Is(err, ErrInterrupted) || errors.Is(err, context.Canceled)
}

// Message returns the user-facing text for a recoverable input error.
func Message(err error) string {
	var rangeErr *RangeError
	switch {
	case errors.As(err, &rangeErr):
		return fmt.Sprintf("Please enter a number between %d and %d", rangeErr.Min, rangeErr.Max)
	case errors.Is(err, ErrNotNumber):
		return "Please enter a valid number"
	default:
		return err.Error()
	}
}
