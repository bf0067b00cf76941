package tagmap

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownToken is returned by strict translations when a token is not in the table.
	ErrUnknownToken = errors.New("unknown token")
	// ErrCollision is returned by strict inversion when two keys share a value.
	ErrCollision = errors.New("duplicate value")
	// ErrDuplicateKey is returned when a table is built with a repeated key.
	ErrDuplicateKey = errors.New("duplicate key")
)

// UnknownTokenError reports a token missing from a table that is expected to cover it.
type UnknownTokenError struct {
	Table string
	Token string
	// Suggestions are table keys close to Token, best first.
	Suggestions []string
}

func (e *UnknownTokenError) Error() string {
	msg := fmt.Sprintf("%s: %v %q", e.Table, ErrUnknownToken, e.Token)
	if len(e.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(e.Suggestions, ", ") + "?)"
	}

	return msg
}

func (e *UnknownTokenError) Unwrap() error { return ErrUnknownToken }

// CollisionError reports a value shared by several keys of a table being inverted.
type CollisionError struct {
	Table string
	Value string
	Keys  []string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("%s: %v %q for keys %s", e.Table, ErrCollision, e.Value, strings.Join(e.Keys, ", "))
}

func (e *CollisionError) Unwrap() error { return ErrCollision }
