package aggregator

import (
	"errors"
	"fmt"

	"github.com/leandrodaf/lilymidi/internal/enum"
)

var ErrInvalidModeString = errors.New("invalid input mode")

// InputMode decides whether a gesture is printed as a chord.
type InputMode int

const (
	// Single prints one note per gesture.
	Single InputMode = iota
	// Chord aggregates every key of a gesture into one chord.
	Chord
	// PedalChord behaves like Chord while a pedal is held, like Single otherwise.
	PedalChord
	// PedalSingle behaves like Single while a pedal is held, like Chord otherwise.
	PedalSingle
)

var inputModes = enum.New(
	enum.E(Single, "single", "s", "Single"),
	enum.E(Chord, "chord", "c", "Chord"),
	enum.E(PedalChord, "pedal-chord", "pedal", "p", "PedalChord"),
	enum.E(PedalSingle, "pedal-single", "ps", "PedalSingle"),
)

func ParseInputMode(s string) (InputMode, error) {
	if m, ok := inputModes.Parse(s); ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidModeString, s)
}

func (m InputMode) String() string { return inputModes.Name(m) }

func InputModes() []enum.Entry[InputMode] { return inputModes.Entries() }

// UseChords reports whether a flush in this mode builds chords.
func (m InputMode) UseChords(pedalDown bool) bool {
	switch m {
	case Chord:
		return true
	case PedalChord:
		return pedalDown
	case PedalSingle:
		return !pedalDown
	}
	return false
}
