package notation

import "errors"

// Errors returned by the notation setters and codecs. Callers match them with
// errors.Is; the returned values wrap them with the offending input.
var (
	ErrOutsideOctave            = errors.New("pitch class outside octave (0-11)")
	ErrInvalidKeyString         = errors.New("invalid key signature")
	ErrInvalidAccidentalString  = errors.New("invalid accidentals")
	ErrInvalidLanguageString    = errors.New("invalid language")
	ErrInvalidOctaveEntryString = errors.New("invalid octave entry")
	ErrInvalidNotationString    = errors.New("invalid note string")
)
