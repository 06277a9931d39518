package session

import "errors"

var (
	// ErrNoteOutOfRange is returned for absolute notes above 127.
	ErrNoteOutOfRange = errors.New("note out of MIDI range")
	// ErrEmptyChord is returned when a previous chord has no notes.
	ErrEmptyChord = errors.New("chord has no notes")
)
