package notation

import (
	"fmt"

	"github.com/leandrodaf/lilymidi/internal/enum"
)

// OctaveEntry selects how octave marks are computed.
type OctaveEntry int

const (
	// Absolute always writes the literal octave.
	Absolute OctaveEntry = iota
	// Relative writes the octave distance from the previous reference note.
	Relative
)

var octaveEntries = enum.New(
	enum.E(Absolute, "absolute", "a", "Absolute"),
	enum.E(Relative, "relative", "r", "Relative"),
)

func ParseOctaveEntry(s string) (OctaveEntry, error) {
	if o, ok := octaveEntries.Parse(s); ok {
		return o, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidOctaveEntryString, s)
}

func (o OctaveEntry) String() string { return octaveEntries.Name(o) }

func OctaveEntries() []enum.Entry[OctaveEntry] { return octaveEntries.Entries() }
