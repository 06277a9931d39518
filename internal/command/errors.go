package command

import "errors"

var (
	// ErrUnknownParameter is returned for a key the handler does not know.
	ErrUnknownParameter = errors.New("unknown parameter")
	// ErrMissingValue is returned for a key given without "=value".
	ErrMissingValue = errors.New("missing value")
	// ErrInvalidBoolString is returned when a switch is not on or off.
	ErrInvalidBoolString = errors.New("invalid boolean")
	// ErrInvalidAlterationEntry is returned for an alteration entry that is
	// not "<number>:<text>".
	ErrInvalidAlterationEntry = errors.New("invalid alteration entry")
	// ErrUnknownEnum is returned when listing values of an unknown enumeration.
	ErrUnknownEnum = errors.New("unknown enumeration")
)
