package calendar

import (
	"errors"
	"fmt"
)

// Errors reported by the store. All of them leave the store unchanged.
var (
	ErrOutOfRange       = errors.New("date out of range")
	ErrEmptyTitle       = errors.New("empty event title")
	ErrCapacityExceeded = errors.New("event capacity exceeded")
	ErrInvalidKey       = errors.New("invalid date key")
)

// KeyError is returned when a string is not a valid YYYY-MM-DD day.
type KeyError struct {
	Key string
}

// Error implements the error interface.
func (e *KeyError) Error() string {
	return fmt.Sprintf("invalid date key %q", e.Key)
}

// Unwrap lets errors.Is match ErrInvalidKey.
func (e *KeyError) Unwrap() error {
	return ErrInvalidKey
}

// Notice returns the text shown to the user for err.
// An empty title has no notice and yields "".
func Notice(err error) string {
	var keyErr *KeyError
	switch {
	case err == nil, errors.Is(err, ErrEmptyTitle):
		return ""
	case errors.Is(err, ErrOutOfRange):
		return "Calendar supports dates from 1970 to 2200"
	case errors.Is(err, ErrCapacityExceeded):
		return fmt.Sprintf("You can only add up to %d events per date", MaxEventsPerDay)
	case errors.As(err, &keyErr):
		return fmt.Sprintf("Invalid date %q (expected YYYY-MM-DD)", keyErr.Key)
	default:
		return err.Error()
	}
}
