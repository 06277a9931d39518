package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbsoluteOctave(t *testing.T) {
	assert.Equal(t, 0, AbsoluteOctave(60-12))
	assert.Equal(t, 1, AbsoluteOctave(60))
	assert.Equal(t, 2, AbsoluteOctave(72))
	assert.Equal(t, -4, AbsoluteOctave(0))
}

func TestRelativeOctave(t *testing.T) {
	ref := func(n MidiNote, shift int) Reference { return Reference{Note: n, Shift: shift} }

	cases := []struct {
		name      string
		prev, cur Reference
		want      int
	}{
		{"unison", ref(60, 0), ref(60, 0), 0},
		{"fourth up stays", ref(60, 0), ref(65, 0), 0},
		{"fourth down stays", ref(65, 0), ref(60, 0), 0},
		{"fifth up leaves the octave", ref(60, 0), ref(67, 0), 1},
		{"fifth down leaves the octave", ref(67, 0), ref(60, 0), -1},
		{"tritone up stays", ref(60, 0), ref(66, 1), 0},
		{"sixth up", ref(60, 0), ref(69, 0), 1},
		{"sixth down", ref(69, 0), ref(60, 0), -1},
		{"octave up", ref(60, 0), ref(72, 0), 1},
		{"octave and fifth up", ref(60, 0), ref(79, 0), 2},
		{"two octaves down", ref(84, 0), ref(60, 0), -2},
		{"b to f up is a fifth", ref(59, 0), ref(65, 0), 1},
		{"b to fis up uses the natural", ref(59, 0), ref(66, 1), 1},
		{"f to b up is a fourth", ref(65, 0), ref(71, 0), 0},
		{"b to f down stays", ref(71, 0), ref(65, 0), 0},
		{"f to b down keeps threshold six", ref(65, 0), ref(59, 0), 0},
		{"bis measures as b", ref(60, 1), ref(66, 1), 1},
		{"ces measures as c", ref(60, 0), ref(59, -1), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RelativeOctave(tc.prev, tc.cur))
		})
	}
}
