package notation

import (
	"fmt"

	"github.com/leandrodaf/lilymidi/internal/enum"
)

// NoteName is a natural pitch with an alteration, independent of language.
type NoteName int

const (
	C NoteName = iota
	CFlat
	CSharp
	CSharpSharp
	D
	DFlat
	DSharp
	E
	EFlat
	ESharp
	F
	FFlat
	FSharp
	FSharpSharp
	G
	GFlat
	GSharp
	GSharpSharp
	A
	AFlat
	ASharp
	B
	BFlat
	BSharp

	numNoteNames = iota
)

// naturals holds the pitch class of each staff letter C..B.
var naturals = [7]int{0, 2, 4, 5, 7, 9, 11}

var noteNameParts = [numNoteNames]struct{ letter, alteration int }{
	C: {0, 0}, CFlat: {0, -1}, CSharp: {0, 1}, CSharpSharp: {0, 2},
	D: {1, 0}, DFlat: {1, -1}, DSharp: {1, 1},
	E: {2, 0}, EFlat: {2, -1}, ESharp: {2, 1},
	F: {3, 0}, FFlat: {3, -1}, FSharp: {3, 1}, FSharpSharp: {3, 2},
	G: {4, 0}, GFlat: {4, -1}, GSharp: {4, 1}, GSharpSharp: {4, 2},
	A: {5, 0}, AFlat: {5, -1}, ASharp: {5, 1},
	B: {6, 0}, BFlat: {6, -1}, BSharp: {6, 1},
}

// Alteration is the semitone offset of n from its natural letter.
func (n NoteName) Alteration() int { return noteNameParts[n].alteration }

// PitchClass is the sounding pitch class of n, 0..11.
func (n NoteName) PitchClass() int {
	p := noteNameParts[n]
	return (naturals[p.letter] + p.alteration + 12) % 12
}

// Language selects the vocabulary used to print note names.
type Language int

const (
	Nederlands Language = iota
	Catalan
	English
	Deutsch
)

var languages = enum.New(
	enum.E(Nederlands, "nederlands", "nl", "Nederlands"),
	enum.E(Catalan, "catalan", "català", "ca", "Catalan"),
	enum.E(English, "english", "en", "English"),
	enum.E(Deutsch, "deutsch", "de", "Deutsch"),
)

// See https://lilypond.org/doc/v2.25/Documentation/notation/writing-pitches#note-names-in-other-languages
var vocabularies = map[Language][numNoteNames]string{
	Nederlands: {
		C: "c", CFlat: "ces", CSharp: "cis", CSharpSharp: "cisis",
		D: "d", DFlat: "des", DSharp: "dis",
		E: "e", EFlat: "ees", ESharp: "eis",
		F: "f", FFlat: "fes", FSharp: "fis", FSharpSharp: "fisis",
		G: "g", GFlat: "ges", GSharp: "gis", GSharpSharp: "gisis",
		A: "a", AFlat: "aes", ASharp: "ais",
		B: "b", BFlat: "bes", BSharp: "bis",
	},
	Catalan: {
		C: "do", CFlat: "dob", CSharp: "dod", CSharpSharp: "dodd",
		D: "re", DFlat: "reb", DSharp: "red",
		E: "mi", EFlat: "mib", ESharp: "mid",
		F: "fa", FFlat: "fab", FSharp: "fad", FSharpSharp: "fadd",
		G: "sol", GFlat: "solb", GSharp: "sold", GSharpSharp: "soldd",
		A: "la", AFlat: "lab", ASharp: "lad",
		B: "si", BFlat: "sib", BSharp: "sid",
	},
	English: {
		C: "c", CFlat: "cf", CSharp: "cs", CSharpSharp: "css",
		D: "d", DFlat: "df", DSharp: "ds",
		E: "e", EFlat: "ef", ESharp: "es",
		F: "f", FFlat: "ff", FSharp: "fs", FSharpSharp: "fss",
		G: "g", GFlat: "gf", GSharp: "gs", GSharpSharp: "gss",
		A: "a", AFlat: "af", ASharp: "as",
		B: "b", BFlat: "bf", BSharp: "bs",
	},
	Deutsch: {
		C: "c", CFlat: "ces", CSharp: "cis", CSharpSharp: "cisis",
		D: "d", DFlat: "des", DSharp: "dis",
		E: "e", EFlat: "es", ESharp: "eis",
		F: "f", FFlat: "fes", FSharp: "fis", FSharpSharp: "fisis",
		G: "g", GFlat: "ges", GSharp: "gis", GSharpSharp: "gisis",
		A: "a", AFlat: "as", ASharp: "ais",
		B: "h", BFlat: "b", BSharp: "his",
	},
}

// readings is the reverse of vocabularies, used by the note parser.
var readings = func() map[Language]map[string]NoteName {
	out := make(map[Language]map[string]NoteName, len(vocabularies))
	for lang, vocab := range vocabularies {
		m := make(map[string]NoteName, numNoteNames)
		for n, s := range vocab {
			m[s] = NoteName(n)
		}
		out[lang] = m
	}
	return out
}()

func ParseLanguage(s string) (Language, error) {
	if l, ok := languages.Parse(s); ok {
		return l, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLanguageString, s)
}

func (l Language) String() string { return languages.Name(l) }

func Languages() []enum.Entry[Language] { return languages.Entries() }

// NoteString renders n in this language.
func (l Language) NoteString(n NoteName) string {
	return vocabularies[l][n]
}

// readNote maps a language-specific note name back to a NoteName.
func (l Language) readNote(s string) (NoteName, bool) {
	n, ok := readings[l][s]
	return n, ok
}
