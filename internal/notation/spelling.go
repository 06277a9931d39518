package notation

import "fmt"

// Spelling is the canonical name chosen for a pitch class. Shift is the
// semitone distance between the sounding pitch and the written natural
// letter (+1 for bis, -1 for ces), used to de-accidental notes before
// measuring intervals.
type Spelling struct {
	Name  NoteName
	Shift int
}

// choice is one table cell: cells inside the key hold the same name twice,
// cells outside it depend on the accidental preference.
type choice struct{ sharp, flat NoteName }

func fixed(n NoteName) choice { return choice{n, n} }

var (
	c, d, e, f, g, a, b = fixed(C), fixed(D), fixed(E), fixed(F), fixed(G), fixed(A), fixed(B)

	cs, ds, es, fs, gs, as, bs = fixed(CSharp), fixed(DSharp), fixed(ESharp), fixed(FSharp), fixed(GSharp), fixed(ASharp), fixed(BSharp)
	df, ef, ff, gf, af, bf, cf = fixed(DFlat), fixed(EFlat), fixed(FFlat), fixed(GFlat), fixed(AFlat), fixed(BFlat), fixed(CFlat)
	css, fss, gss              = fixed(CSharpSharp), fixed(FSharpSharp), fixed(GSharpSharp)

	p1  = choice{CSharp, DFlat}
	p3  = choice{DSharp, EFlat}
	p6  = choice{FSharp, GFlat}
	p8  = choice{GSharp, AFlat}
	p10 = choice{ASharp, BFlat}
)

// spellings is indexed by key signature, then pitch class.
var spellings = [numKeySignatures][12]choice{
	//           0   1   2    3   4   5   6   7    8   9    10   11
	CFlatMajor:  {c, df, d, ef, ff, f, gf, g, af, a, bf, cf},
	GFlatMajor:  {c, df, d, ef, e, f, gf, g, af, a, bf, cf},
	DFlatMajor:  {c, df, d, ef, e, f, gf, g, af, a, bf, b},
	AFlatMajor:  {c, df, d, ef, e, f, p6, g, af, a, bf, b},
	EFlatMajor:  {c, p1, d, ef, e, f, p6, g, af, a, bf, b},
	BFlatMajor:  {c, p1, d, ef, e, f, p6, g, p8, a, bf, b},
	FMajor:      {c, p1, d, p3, e, f, p6, g, p8, a, bf, b},
	CMajor:      {c, p1, d, p3, e, f, p6, g, p8, a, p10, b},
	GMajor:      {c, p1, d, p3, e, f, fs, g, p8, a, p10, b},
	DMajor:      {c, cs, d, p3, e, f, fs, g, p8, a, p10, b},
	AMajor:      {c, cs, d, p3, e, f, fs, g, gs, a, p10, b},
	EMajor:      {c, cs, d, ds, e, f, fs, g, gs, a, p10, b},
	BMajor:      {c, cs, d, ds, e, f, fs, g, gs, a, as, b},
	FSharpMajor: {c, cs, d, ds, e, es, fs, g, gs, a, as, b},
	CSharpMajor: {bs, cs, d, ds, e, es, fs, g, gs, a, as, b},
	AFlatMinor:  {c, df, d, ef, ff, f, gf, g, af, a, bf, cf},
	EFlatMinor:  {c, df, d, ef, e, f, gf, g, af, a, bf, cf},
	BFlatMinor:  {c, df, d, ef, e, f, gf, g, af, a, bf, b},
	FMinor:      {c, df, d, ef, e, f, p6, g, af, a, bf, b},
	CMinor:      {c, p1, d, ef, e, f, p6, g, af, a, bf, b},
	GMinor:      {c, p1, d, ef, e, f, fs, g, p8, a, bf, b},
	DMinor:      {c, cs, d, p3, e, f, p6, g, p8, a, bf, b},
	AMinor:      {c, p1, d, p3, e, f, p6, g, gs, a, p10, b},
	EMinor:      {c, p1, d, ds, e, f, fs, g, p8, a, p10, b},
	BMinor:      {c, cs, d, p3, e, f, fs, g, p8, a, as, b},
	FSharpMinor: {c, cs, d, p3, e, es, fs, g, gs, a, p10, b},
	CSharpMinor: {bs, cs, d, ds, e, f, fs, g, gs, a, p10, b},
	GSharpMinor: {c, cs, d, ds, e, f, fs, fss, gs, a, as, b},
	DSharpMinor: {c, cs, css, ds, e, es, fs, g, gs, a, as, b},
	ASharpMinor: {bs, cs, d, ds, e, es, fs, g, gs, gss, as, b},
}

// Spell returns the canonical spelling of pitch class pc in key, falling back
// to acc for pitch classes the key leaves ambiguous.
func Spell(pc uint8, key KeySignature, acc Accidental) (Spelling, error) {
	if pc > 11 {
		return Spelling{}, fmt.Errorf("%w: %d", ErrOutsideOctave, pc)
	}
	cell := spellings[key][pc]
	name := cell.sharp
	if acc == Flats {
		name = cell.flat
	}
	return Spelling{Name: name, Shift: name.Alteration()}, nil
}
