package notation

import (
	"fmt"

	"github.com/leandrodaf/lilymidi/internal/enum"
)

// KeySignature is one of the 15 major keys or their relative minors.
type KeySignature int

const (
	CFlatMajor  KeySignature = iota // 7 flats
	GFlatMajor                      // 6 flats
	DFlatMajor                      // 5 flats
	AFlatMajor                      // 4 flats
	EFlatMajor                      // 3 flats
	BFlatMajor                      // 2 flats
	FMajor                          // 1 flat
	CMajor                          // no accidentals
	GMajor                          // 1 sharp
	DMajor                          // 2 sharps
	AMajor                          // 3 sharps
	EMajor                          // 4 sharps
	BMajor                          // 5 sharps
	FSharpMajor                     // 6 sharps
	CSharpMajor                     // 7 sharps
	AFlatMinor                      // 7 flats
	EFlatMinor                      // 6 flats
	BFlatMinor                      // 5 flats
	FMinor                          // 4 flats
	CMinor                          // 3 flats
	GMinor                          // 2 flats
	DMinor                          // 1 flat
	AMinor                          // no accidentals
	EMinor                          // 1 sharp
	BMinor                          // 2 sharps
	FSharpMinor                     // 3 sharps
	CSharpMinor                     // 4 sharps
	GSharpMinor                     // 5 sharps
	DSharpMinor                     // 6 sharps
	ASharpMinor                     // 7 sharps

	numKeySignatures = iota
)

var keySignatures = enum.New(
	enum.E(CFlatMajor, "cesM", "CFlatMajor"),
	enum.E(GFlatMajor, "gesM", "GFlatMajor"),
	enum.E(DFlatMajor, "desM", "DFlatMajor"),
	enum.E(AFlatMajor, "aesM", "AFlatMajor"),
	enum.E(EFlatMajor, "eesM", "EFlatMajor"),
	enum.E(BFlatMajor, "besM", "BFlatMajor"),
	enum.E(FMajor, "fM", "FMajor"),
	enum.E(CMajor, "cM", "CMajor"),
	enum.E(GMajor, "gM", "GMajor"),
	enum.E(DMajor, "dM", "DMajor"),
	enum.E(AMajor, "aM", "AMajor"),
	enum.E(EMajor, "eM", "EMajor"),
	enum.E(BMajor, "bM", "BMajor"),
	enum.E(FSharpMajor, "fisM", "FSharpMajor"),
	enum.E(CSharpMajor, "cisM", "CSharpMajor"),
	enum.E(AFlatMinor, "aesm", "AFlatMinor"),
	enum.E(EFlatMinor, "eesm", "EFlatMinor"),
	enum.E(BFlatMinor, "besm", "BFlatMinor"),
	enum.E(FMinor, "fm", "FMinor"),
	enum.E(CMinor, "cm", "CMinor"),
	enum.E(GMinor, "gm", "GMinor"),
	enum.E(DMinor, "dm", "DMinor"),
	enum.E(AMinor, "am", "AMinor"),
	enum.E(EMinor, "em", "EMinor"),
	enum.E(BMinor, "bm", "BMinor"),
	enum.E(FSharpMinor, "fism", "FSharpMinor"),
	enum.E(CSharpMinor, "cism", "CSharpMinor"),
	enum.E(GSharpMinor, "gism", "GSharpMinor"),
	enum.E(DSharpMinor, "dism", "DSharpMinor"),
	enum.E(ASharpMinor, "aism", "ASharpMinor"),
)

// ParseKeySignature accepts a LilyPond-style key name ("cM", "fism") or the
// Go variant name ("FSharpMinor").
func ParseKeySignature(s string) (KeySignature, error) {
	if k, ok := keySignatures.Parse(s); ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidKeyString, s)
}

func (k KeySignature) String() string { return keySignatures.Name(k) }

// KeySignatures lists every registered key signature.
func KeySignatures() []enum.Entry[KeySignature] { return keySignatures.Entries() }
