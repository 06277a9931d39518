package aggregator

import (
	"github.com/leandrodaf/lilymidi/internal/notation"
	"golang.org/x/exp/slices"
)

// Notes is an ascending, duplicate-free set of notes.
type Notes []notation.MidiNote

// NewNotes sorts and deduplicates notes into a new set.
func NewNotes(notes ...notation.MidiNote) Notes {
	out := slices.Clone(notes)
	slices.Sort(out)
	return slices.Compact(out)
}

func (n Notes) Equal(other Notes) bool { return slices.Equal(n, other) }

// Lowest is the first note of the set; the set must not be empty.
func (n Notes) Lowest() notation.MidiNote { return n[0] }
