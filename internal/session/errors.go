package session

import "errors"

var (
	// ErrSkip is returned by ParseCommand for blank and comment lines.
	ErrSkip = errors.New("session: nothing to apply")

	// ErrUnknownCommand is returned for an unrecognised command word or shape.
	ErrUnknownCommand = errors.New("session: unknown command")

	// ErrBadIndex is returned when the index argument is not an integer.
	ErrBadIndex = errors.New("session: bad index")

	// ErrIndexOutOfRange is returned when a command addresses an item the
	// cart does not have.
	ErrIndexOutOfRange = errors.New("session: index out of range")
)
