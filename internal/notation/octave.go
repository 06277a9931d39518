package notation

// Reference is the note the next relative octave is measured from.
type Reference struct {
	Note  MidiNote
	Shift int
}

// Index is the reference position with its accidental removed, so that bis
// (60, shift +1) measures like b (59).
func (r Reference) Index() int { return int(r.Note) - r.Shift }

// AbsoluteOctave is the literal octave of note: 0 for c (48..59), 1 for c'.
func AbsoluteOctave(note MidiNote) int { return int(note)/12 - 4 }

// RelativeOctave counts the octave marks cur needs after prev in relative
// entry. Intervals up to a tritone need none. Moving up from a B to an F
// counts the diminished fifth as leaving the octave; the opposite direction
// keeps the plain tritone threshold.
func RelativeOctave(prev, cur Reference) int {
	from, to := prev.Index(), cur.Index()
	interval := to - from

	threshold := 6
	if mod12(from) == 11 && mod12(to) == 5 && from < to {
		threshold = 5
	}

	switch {
	case interval > threshold:
		return (interval - threshold + 11) / 12
	case interval < -threshold:
		return -((-(interval + threshold) + 11) / 12)
	}
	return 0
}

func mod12(n int) int { return ((n % 12) + 12) % 12 }
