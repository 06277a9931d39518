// Package aggregator turns raw note and pedal events into gestures: a single
// note, a chord, or a repetition of the previous chord.
package aggregator

import (
	"github.com/leandrodaf/lilymidi/internal/notation"
	"golang.org/x/exp/maps"
)

// GestureKind tells how a flushed gesture is printed.
type GestureKind int

const (
	GestureNote GestureKind = iota
	GestureChord
	GestureRepeat
)

// Gesture is the outcome of a flush. Notes is ascending; a GestureNote holds
// exactly one note, a GestureRepeat the notes of the repeated chord.
type Gesture struct {
	Kind  GestureKind
	Notes Notes
}

type set map[notation.MidiNote]struct{}

// Aggregator is the gesture state machine. It is not safe for concurrent use;
// the session serializes access to it.
type Aggregator struct {
	pressed   set
	pending   set
	pedals    set
	lastChord Notes
}

func New() *Aggregator {
	return &Aggregator{pressed: set{}, pending: set{}, pedals: set{}}
}

// Handle applies one event. A gesture is returned only after a note event
// leaves no key pressed while notes are pending; pedal events never flush.
func (a *Aggregator) Handle(ev RawEvent, mode InputMode) (Gesture, bool) {
	switch ev.Kind {
	case NoteOn:
		a.pressed[ev.Note] = struct{}{}
		a.pending[ev.Note] = struct{}{}
	case NoteOff:
		delete(a.pressed, ev.Note)
	case PedalOn:
		a.pedals[ev.Note] = struct{}{}
		return Gesture{}, false
	case PedalOff:
		delete(a.pedals, ev.Note)
		return Gesture{}, false
	default:
		return Gesture{}, false
	}

	if len(a.pressed) > 0 || len(a.pending) == 0 {
		return Gesture{}, false
	}
	return a.flush(mode.UseChords(len(a.pedals) > 0)), true
}

func (a *Aggregator) flush(useChords bool) Gesture {
	notes := NewNotes(maps.Keys(a.pending)...)

	if !useChords {
		// Only the lowest note is consumed; the rest wait for the next flush.
		delete(a.pending, notes.Lowest())
		return Gesture{Kind: GestureNote, Notes: notes[:1]}
	}

	a.pending = set{}
	if len(notes) == 1 {
		return Gesture{Kind: GestureNote, Notes: notes}
	}
	if notes.Equal(a.lastChord) {
		return Gesture{Kind: GestureRepeat, Notes: notes}
	}
	a.lastChord = notes
	return Gesture{Kind: GestureChord, Notes: notes}
}

// LastChord is the chord a repeat is compared against, nil when none.
func (a *Aggregator) LastChord() Notes { return a.lastChord }

func (a *Aggregator) SetLastChord(notes Notes) { a.lastChord = NewNotes(notes...) }

func (a *Aggregator) ClearLastChord() { a.lastChord = nil }

// Pending lists the notes waiting for a flush.
func (a *Aggregator) Pending() Notes { return NewNotes(maps.Keys(a.pending)...) }

// PedalDown reports whether any pedal controller is held.
func (a *Aggregator) PedalDown() bool { return len(a.pedals) > 0 }
