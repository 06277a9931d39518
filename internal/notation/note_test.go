package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	two, zero, down := 2, 0, -1
	cases := []struct {
		letter string
		delta  int
		check  *int
		want   string
	}{
		{"c", 0, nil, "c"},
		{"cis", 2, nil, "cis''"},
		{"bes", -3, nil, "bes,,,"},
		{"e", 0, &two, "e=''"},
		{"g", 1, &zero, "g'="},
		{"a", -1, &down, "a,=,"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Render(tc.letter, tc.delta, tc.check))
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		text string
		lang Language
		want MidiNote
	}{
		{"c", Nederlands, 48},
		{"c'", Nederlands, 60},
		{"cis''", Nederlands, 73},
		{"bes,", Nederlands, 46},
		{"bis'", Nederlands, 60},
		{"ces", Nederlands, 59},
		{"fisis'", Nederlands, 67},
		{"sol'", Catalan, 67},
		{"h", Deutsch, 59},
		{"ef'", English, 63},
		{" d' ", Nederlands, 62},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			got, err := Parse(tc.text, tc.lang)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, text := range []string{"", "x'", "c',", "cis'x", "c''''''''", "c,,,,,", "do"} {
		_, err := Parse(text, Nederlands)
		assert.ErrorIs(t, err, ErrInvalidNotationString, "input %q", text)
	}
}

func TestParseRoundTripsEverySpelling(t *testing.T) {
	for _, lang := range Languages() {
		for _, key := range KeySignatures() {
			for _, acc := range Accidentals() {
				for note := MidiNote(12); note < 120; note++ {
					sp, err := Spell(note.PitchClass(), key.Value, acc.Value)
					require.NoError(t, err)

					text := Render(lang.Value.NoteString(sp.Name), AbsoluteOctave(note), nil)
					got, err := Parse(text, lang.Value)
					require.NoError(t, err, text)
					require.Equal(t, note, got, "%s in %s/%s/%s", text, key.Name, acc.Name, lang.Name)
				}
			}
		}
	}
}
