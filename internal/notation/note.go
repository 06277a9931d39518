package notation

import (
	"fmt"
	"strings"
)

const (
	octaveUp   = '\''
	octaveDown = ','
)

// Note is a resolved note ready to print: a name, its octave marks and an
// optional octave check.
type Note struct {
	Letter string
	Octave int
	Check  *int
}

func (n Note) String() string { return Render(n.Letter, n.Octave, n.Check) }

// Render appends one apostrophe per octave up or one comma per octave down,
// then "=<marks>" when check is set.
func Render(letter string, delta int, check *int) string {
	var sb strings.Builder
	sb.WriteString(letter)
	writeMarks(&sb, delta)
	if check != nil {
		sb.WriteByte('=')
		writeMarks(&sb, *check)
	}
	return sb.String()
}

func writeMarks(sb *strings.Builder, n int) {
	switch {
	case n > 0:
		sb.WriteString(strings.Repeat(string(octaveUp), n))
	case n < 0:
		sb.WriteString(strings.Repeat(string(octaveDown), -n))
	}
}

// Parse reads a canonical note name followed by octave marks (e.g. "cis'")
// back into an absolute note. Alterations are not consulted.
func Parse(text string, lang Language) (MidiNote, error) {
	note, _, err := ParseNote(text, lang)
	return note, err
}

// ParseNote is Parse that also returns the recognised note name.
func ParseNote(text string, lang Language) (MidiNote, NoteName, error) {
	text = strings.TrimSpace(text)
	split := strings.IndexAny(text, string([]rune{octaveUp, octaveDown}))
	letter, marks := text, ""
	if split >= 0 {
		letter, marks = text[:split], text[split:]
	}

	name, ok := lang.readNote(letter)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidNotationString, text)
	}

	octave := 0
	switch {
	case marks == "":
	case strings.Trim(marks, string(octaveUp)) == "":
		octave = len(marks)
	case strings.Trim(marks, string(octaveDown)) == "":
		octave = -len(marks)
	default:
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidNotationString, text)
	}

	value := (octave+4)*12 + name.PitchClass()
	if value < 0 || value > 127 {
		return 0, 0, fmt.Errorf("%w: %q out of range", ErrInvalidNotationString, text)
	}
	return MidiNote(value), name, nil
}
