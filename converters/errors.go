package converters

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when no converter is registered for a pair.
	ErrNotFound = errors.New("converter not found")
	// ErrNotImplemented is returned by conversions that are declared but not supported yet.
	ErrNotImplemented = errors.New("conversion not implemented")
)

// NotFoundError reports a Lookup miss.
type NotFoundError struct {
	Pair Pair
	// Suggestions are registered pairs with similar names, best first.
	Suggestions []Pair
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("%v: %s", ErrNotFound, e.Pair)
	if len(e.Suggestions) > 0 {
		names := make([]string, len(e.Suggestions))
		for i, p := range e.Suggestions {
			names[i] = p.String()
		}

		msg += " (did you mean " + strings.Join(names, ", ") + "?)"
	}

	return msg
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NotImplemented returns an error wrapping ErrNotImplemented for the given pair.
func NotImplemented(source, target string) error {
	return fmt.Errorf("%s: %w", Pair{Source: source, Target: target}, ErrNotImplemented)
}
