package notation

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// MidiNote is an absolute pitch, 0..127; 60 is middle C (c').
type MidiNote uint8

// PitchClass is the note modulo 12.
func (n MidiNote) PitchClass() uint8 { return uint8(n) % 12 }

// Alterations overrides the spelling of a pitch class in every octave.
// Keys are always within 0..11.
type Alterations struct {
	entries map[uint8]string
}

// Set overrides pitch class pc. A pc outside 0..11 fails with
// ErrOutsideOctave and leaves the map unchanged.
func (a *Alterations) Set(pc uint8, text string) error {
	if pc > 11 {
		return fmt.Errorf("%w: %d", ErrOutsideOctave, pc)
	}
	if a.entries == nil {
		a.entries = make(map[uint8]string)
	}
	a.entries[pc] = text
	return nil
}

func (a *Alterations) Get(pc uint8) (string, bool) {
	text, ok := a.entries[pc]
	return text, ok
}

func (a *Alterations) Clear() { a.entries = nil }

func (a *Alterations) Len() int { return len(a.entries) }

// Entries returns a copy of the overrides.
func (a *Alterations) Entries() map[uint8]string { return maps.Clone(a.entries) }

// Keys lists the overridden pitch classes in ascending order.
func (a *Alterations) Keys() []uint8 { return sortedKeys(a.entries) }

// GlobalAlterations overrides the text of one absolute note. Overridden notes
// carry no octave marks besides their own ottavation suffix.
type GlobalAlterations struct {
	entries map[MidiNote]string
}

func (g *GlobalAlterations) Set(note MidiNote, text string) {
	if g.entries == nil {
		g.entries = make(map[MidiNote]string)
	}
	g.entries[note] = text
}

func (g *GlobalAlterations) Get(note MidiNote) (string, bool) {
	text, ok := g.entries[note]
	return text, ok
}

func (g *GlobalAlterations) Clear() { g.entries = nil }

func (g *GlobalAlterations) Len() int { return len(g.entries) }

func (g *GlobalAlterations) Entries() map[MidiNote]string { return maps.Clone(g.entries) }

func (g *GlobalAlterations) Keys() []MidiNote { return sortedKeys(g.entries) }

func sortedKeys[K uint8 | MidiNote](m map[K]string) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// SplitOttavation strips a trailing run of '+' or '-' from an override text.
// Each '+' raises the note one octave, each '-' lowers it one octave.
func SplitOttavation(text string) (string, int) {
	switch {
	case strings.HasSuffix(text, "+"):
		trimmed := strings.TrimRight(text, "+")
		return trimmed, len(text) - len(trimmed)
	case strings.HasSuffix(text, "-"):
		trimmed := strings.TrimRight(text, "-")
		return trimmed, len(trimmed) - len(text)
	}
	return text, 0
}
