package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlterationsRejectPitchOutsideOctave(t *testing.T) {
	var alts Alterations
	require.NoError(t, alts.Set(3, "dis"))

	err := alts.Set(12, "foo")
	assert.ErrorIs(t, err, ErrOutsideOctave)
	assert.Equal(t, map[uint8]string{3: "dis"}, alts.Entries())
}

func TestAlterationsKeysAreSorted(t *testing.T) {
	var alts Alterations
	for _, pc := range []uint8{9, 1, 5} {
		require.NoError(t, alts.Set(pc, "x"))
	}
	assert.Equal(t, []uint8{1, 5, 9}, alts.Keys())

	alts.Clear()
	assert.Zero(t, alts.Len())

	var global GlobalAlterations
	global.Set(72, "a")
	global.Set(60, "b")
	assert.Equal(t, []MidiNote{60, 72}, global.Keys())
}

func TestSplitOttavation(t *testing.T) {
	cases := []struct {
		in     string
		text   string
		octave int
	}{
		{"foo", "foo", 0},
		{"foo+", "foo", 1},
		{"foo++", "foo", 2},
		{"foo--", "foo", -2},
		{"a+b", "a+b", 0},
		{"", "", 0},
	}
	for _, tc := range cases {
		text, octave := SplitOttavation(tc.in)
		assert.Equal(t, tc.text, text, tc.in)
		assert.Equal(t, tc.octave, octave, tc.in)
	}
}
