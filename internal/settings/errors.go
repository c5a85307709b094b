package settings

import "errors"

var (
	// ErrInvalidIdentifier indicates a malformed device, stylus or pad
	// control identifier. Detected before any store access.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrInvalidArguments indicates an action/keybinding combination that
	// violates the co-requirement: the keybinding action needs a keybinding
	// argument, every other action forbids one.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrUnknownKey indicates a key absent from the bound schema. Writes
	// degrade to a warning instead of surfacing this; reads return it so
	// callers can skip the key.
	ErrUnknownKey = errors.New("key does not exist in the schema")
)
