package tsplib

import "errors"

var (
	// ErrUnreadable indicates the source could not be opened or read at all.
	ErrUnreadable = errors.New("tsplib: source unreadable")
	// ErrMalformed indicates the source was read but does not describe a
	// valid city collection (missing coord section, bad record, bad ids).
	ErrMalformed = errors.New("tsplib: source malformed")
)
