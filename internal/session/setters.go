package session

import (
	"fmt"

	"github.com/leandrodaf/lilymidi/internal/aggregator"
	"github.com/leandrodaf/lilymidi/internal/notation"
)

// Every setter validates its input before touching the session, so a
// rejected value leaves the previous one in place.

func (s *Session) SetKey(name string) error {
	key, err := notation.ParseKeySignature(name)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params.Key = key
	return nil
}

func (s *Session) SetAccidentals(name string) error {
	acc, err := notation.ParseAccidental(name)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params.Accidentals = acc
	return nil
}

func (s *Session) SetInputMode(name string) error {
	mode, err := aggregator.ParseInputMode(name)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params.mode = mode
	return nil
}

func (s *Session) SetLanguage(name string) error {
	lang, err := notation.ParseLanguage(name)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params.Language = lang
	return nil
}

func (s *Session) SetOctaveEntry(name string) error {
	entry, err := notation.ParseOctaveEntry(name)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params.OctaveEntry = entry
	return nil
}

// SetCheckEveryNote adds an octave check to every printed note.
func (s *Session) SetCheckEveryNote(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params.checkEveryNote = on
}

// SetCheckNextNote adds an octave check to the next printed note only.
func (s *Session) SetCheckNextNote(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params.checkNextNote = on
}

// SetAlteration overrides the spelling of pitch class pc (0..11).
func (s *Session) SetAlteration(pc uint8, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params.Alterations.Set(pc, text)
}

func (s *Session) ClearAlterations() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params.Alterations.Clear()
}

// SetGlobalAlteration overrides the spelling of one absolute note.
func (s *Session) SetGlobalAlteration(note uint8, text string) error {
	if note > 127 {
		return fmt.Errorf("%w: %d", ErrNoteOutOfRange, note)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params.GlobalAlterations.Set(notation.MidiNote(note), text)
	return nil
}

func (s *Session) ClearGlobalAlterations() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params.GlobalAlterations.Clear()
}

// SetPreviousChord replaces the chord a repeat is detected against. Tokens
// are read in the current language, e.g. ["c'", "e'", "g'"].
func (s *Session) SetPreviousChord(tokens []string) error {
	if len(tokens) == 0 {
		return ErrEmptyChord
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	notes := make([]notation.MidiNote, len(tokens))
	for i, token := range tokens {
		note, err := notation.Parse(token, s.params.Language)
		if err != nil {
			return err
		}
		notes[i] = note
	}
	s.agg.SetLastChord(notes)
	return nil
}

func (s *Session) ClearPreviousChord() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agg.ClearLastChord()
}

// SetPreviousReference sets the note the next relative octave is measured
// from, read in the current language.
func (s *Session) SetPreviousReference(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	note, name, err := notation.ParseNote(token, s.params.Language)
	if err != nil {
		return err
	}
	s.params.previous = &notation.Reference{Note: note, Shift: name.Alteration()}
	return nil
}

// ClearPreviousReference drops the reference; the next relative note gets an
// octave check.
func (s *Session) ClearPreviousReference() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params.previous = nil
}
