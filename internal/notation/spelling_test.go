package notation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Expected spellings in nederlands, pitch classes 0..11.
var goldenSharps = map[KeySignature]string{
	CFlatMajor:  "c des d ees fes f ges g aes a bes ces",
	GFlatMajor:  "c des d ees e f ges g aes a bes ces",
	DFlatMajor:  "c des d ees e f ges g aes a bes b",
	AFlatMajor:  "c des d ees e f fis g aes a bes b",
	EFlatMajor:  "c cis d ees e f fis g aes a bes b",
	BFlatMajor:  "c cis d ees e f fis g gis a bes b",
	FMajor:      "c cis d dis e f fis g gis a bes b",
	CMajor:      "c cis d dis e f fis g gis a ais b",
	GMajor:      "c cis d dis e f fis g gis a ais b",
	DMajor:      "c cis d dis e f fis g gis a ais b",
	AMajor:      "c cis d dis e f fis g gis a ais b",
	EMajor:      "c cis d dis e f fis g gis a ais b",
	BMajor:      "c cis d dis e f fis g gis a ais b",
	FSharpMajor: "c cis d dis e eis fis g gis a ais b",
	CSharpMajor: "bis cis d dis e eis fis g gis a ais b",
	AFlatMinor:  "c des d ees fes f ges g aes a bes ces",
	EFlatMinor:  "c des d ees e f ges g aes a bes ces",
	BFlatMinor:  "c des d ees e f ges g aes a bes b",
	FMinor:      "c des d ees e f fis g aes a bes b",
	CMinor:      "c cis d ees e f fis g aes a bes b",
	GMinor:      "c cis d ees e f fis g gis a bes b",
	DMinor:      "c cis d dis e f fis g gis a bes b",
	AMinor:      "c cis d dis e f fis g gis a ais b",
	EMinor:      "c cis d dis e f fis g gis a ais b",
	BMinor:      "c cis d dis e f fis g gis a ais b",
	FSharpMinor: "c cis d dis e eis fis g gis a ais b",
	CSharpMinor: "bis cis d dis e f fis g gis a ais b",
	GSharpMinor: "c cis d dis e f fis fisis gis a ais b",
	DSharpMinor: "c cis cisis dis e eis fis g gis a ais b",
	ASharpMinor: "bis cis d dis e eis fis g gis gisis ais b",
}

var goldenFlats = map[KeySignature]string{
	CFlatMajor:  "c des d ees fes f ges g aes a bes ces",
	GFlatMajor:  "c des d ees e f ges g aes a bes ces",
	DFlatMajor:  "c des d ees e f ges g aes a bes b",
	AFlatMajor:  "c des d ees e f ges g aes a bes b",
	EFlatMajor:  "c des d ees e f ges g aes a bes b",
	BFlatMajor:  "c des d ees e f ges g aes a bes b",
	FMajor:      "c des d ees e f ges g aes a bes b",
	CMajor:      "c des d ees e f ges g aes a bes b",
	GMajor:      "c des d ees e f fis g aes a bes b",
	DMajor:      "c cis d ees e f fis g aes a bes b",
	AMajor:      "c cis d ees e f fis g gis a bes b",
	EMajor:      "c cis d dis e f fis g gis a bes b",
	BMajor:      "c cis d dis e f fis g gis a ais b",
	FSharpMajor: "c cis d dis e eis fis g gis a ais b",
	CSharpMajor: "bis cis d dis e eis fis g gis a ais b",
	AFlatMinor:  "c des d ees fes f ges g aes a bes ces",
	EFlatMinor:  "c des d ees e f ges g aes a bes ces",
	BFlatMinor:  "c des d ees e f ges g aes a bes b",
	FMinor:      "c des d ees e f ges g aes a bes b",
	CMinor:      "c des d ees e f ges g aes a bes b",
	GMinor:      "c des d ees e f fis g aes a bes b",
	DMinor:      "c cis d ees e f ges g aes a bes b",
	AMinor:      "c des d ees e f ges g gis a bes b",
	EMinor:      "c des d dis e f fis g aes a bes b",
	BMinor:      "c cis d ees e f fis g aes a ais b",
	FSharpMinor: "c cis d ees e eis fis g gis a bes b",
	CSharpMinor: "bis cis d dis e f fis g gis a bes b",
	GSharpMinor: "c cis d dis e f fis fisis gis a ais b",
	DSharpMinor: "c cis cisis dis e eis fis g gis a ais b",
	ASharpMinor: "bis cis d dis e eis fis g gis gisis ais b",
}

func TestSpellGoldenTable(t *testing.T) {
	require.Len(t, KeySignatures(), 30)

	for _, golden := range []struct {
		acc  Accidental
		want map[KeySignature]string
	}{{Sharps, goldenSharps}, {Flats, goldenFlats}} {
		for _, entry := range KeySignatures() {
			key := entry.Value
			t.Run(golden.acc.String()+"/"+key.String(), func(t *testing.T) {
				want := strings.Fields(golden.want[key])
				require.Len(t, want, 12)
				for pc := uint8(0); pc < 12; pc++ {
					sp, err := Spell(pc, key, golden.acc)
					require.NoError(t, err)
					assert.Equal(t, want[pc], Nederlands.NoteString(sp.Name), "pitch class %d", pc)
					assert.Equal(t, int(pc), sp.Name.PitchClass(), "spelling must sound the same pitch")
				}
			})
		}
	}
}

func TestSpellShift(t *testing.T) {
	cases := []struct {
		pc    uint8
		key   KeySignature
		shift int
	}{
		{0, CSharpMajor, 1},  // bis
		{11, GFlatMajor, -1}, // ces
		{2, DSharpMinor, 2},  // cisis
		{4, CFlatMajor, -1},  // fes
		{7, CMajor, 0},
	}
	for _, tc := range cases {
		sp, err := Spell(tc.pc, tc.key, Sharps)
		require.NoError(t, err)
		assert.Equal(t, tc.shift, sp.Shift, "%d in %s", tc.pc, tc.key)
	}
}

func TestSpellRejectsPitchOutsideOctave(t *testing.T) {
	_, err := Spell(12, CMajor, Sharps)
	assert.ErrorIs(t, err, ErrOutsideOctave)
}

func TestLanguagesSpellEveryName(t *testing.T) {
	for _, entry := range Languages() {
		seen := map[string]bool{}
		for n := NoteName(0); n < numNoteNames; n++ {
			s := entry.Value.NoteString(n)
			assert.NotEmpty(t, s, "%s has no name for %d", entry.Name, n)
			assert.False(t, seen[s], "%s spells %q twice", entry.Name, s)
			seen[s] = true
		}
	}
	assert.Equal(t, "dod", Catalan.NoteString(CSharp))
	assert.Equal(t, "h", Deutsch.NoteString(B))
	assert.Equal(t, "bf", English.NoteString(BFlat))
}

func TestParseEnums(t *testing.T) {
	key, err := ParseKeySignature("fism")
	require.NoError(t, err)
	assert.Equal(t, FSharpMinor, key)

	key, err = ParseKeySignature("CSharpMajor")
	require.NoError(t, err)
	assert.Equal(t, CSharpMajor, key)

	_, err = ParseKeySignature("hM")
	assert.ErrorIs(t, err, ErrInvalidKeyString)

	acc, err := ParseAccidental("f")
	require.NoError(t, err)
	assert.Equal(t, Flats, acc)
	_, err = ParseAccidental("naturals")
	assert.ErrorIs(t, err, ErrInvalidAccidentalString)

	lang, err := ParseLanguage("català")
	require.NoError(t, err)
	assert.Equal(t, Catalan, lang)
	_, err = ParseLanguage("klingon")
	assert.ErrorIs(t, err, ErrInvalidLanguageString)

	entry, err := ParseOctaveEntry("r")
	require.NoError(t, err)
	assert.Equal(t, Relative, entry)
	_, err = ParseOctaveEntry("sideways")
	assert.ErrorIs(t, err, ErrInvalidOctaveEntryString)
}
