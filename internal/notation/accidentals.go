package notation

import (
	"fmt"

	"github.com/leandrodaf/lilymidi/internal/enum"
)

// Accidental is the tiebreaker used for pitches outside the key signature.
type Accidental int

const (
	Sharps Accidental = iota
	Flats
)

var accidentals = enum.New(
	enum.E(Sharps, "sharps", "s", "Sharps"),
	enum.E(Flats, "flats", "f", "Flats"),
)

func ParseAccidental(s string) (Accidental, error) {
	if a, ok := accidentals.Parse(s); ok {
		return a, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidAccidentalString, s)
}

func (a Accidental) String() string { return accidentals.Name(a) }

func Accidentals() []enum.Entry[Accidental] { return accidentals.Entries() }
