package aggregator

import "github.com/leandrodaf/lilymidi/internal/notation"

// EventKind classifies a raw MIDI event.
type EventKind int

const (
	Unknown EventKind = iota
	NoteOn
	NoteOff
	PedalOn
	PedalOff
)

func (k EventKind) String() string {
	switch k {
	case NoteOn:
		return "note-on"
	case NoteOff:
		return "note-off"
	case PedalOn:
		return "pedal-on"
	case PedalOff:
		return "pedal-off"
	}
	return "unknown"
}

// RawEvent is a decoded MIDI event. Note holds the key for note events and
// the controller number for pedal events; Value is the velocity or the
// controller value.
type RawEvent struct {
	Kind  EventKind
	Note  notation.MidiNote
	Value uint8
}
