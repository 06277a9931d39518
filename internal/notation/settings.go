package notation

// Settings is the musical context notes are spelled against.
type Settings struct {
	Key               KeySignature
	Accidentals       Accidental
	Language          Language
	OctaveEntry       OctaveEntry
	Alterations       Alterations
	GlobalAlterations GlobalAlterations
}

// letter picks the text for note: global override, then pitch-class override,
// then the spelling table. Overrides never carry an accidental shift.
func (s *Settings) letter(note MidiNote) (text string, shift, ottavation int, global bool, err error) {
	if override, ok := s.GlobalAlterations.Get(note); ok {
		text, ottavation = SplitOttavation(override)
		return text, 0, ottavation, true, nil
	}
	if override, ok := s.Alterations.Get(note.PitchClass()); ok {
		text, ottavation = SplitOttavation(override)
		return text, 0, ottavation, false, nil
	}
	sp, err := Spell(note.PitchClass(), s.Key, s.Accidentals)
	if err != nil {
		return "", 0, 0, false, err
	}
	return s.Language.NoteString(sp.Name), sp.Shift, 0, false, nil
}

// Resolve spells note and computes its octave marks. prev is the running
// reference for relative entry (nil when none exists); check forces an
// explicit octave check. The returned reference is what the next note should
// be measured from, nil after a globally overridden note.
func (s *Settings) Resolve(note MidiNote, prev *Reference, check bool) (Note, *Reference, error) {
	text, shift, ottavation, global, err := s.letter(note)
	if err != nil {
		return Note{}, nil, err
	}
	if global {
		return Note{Letter: text, Octave: ottavation}, nil, nil
	}

	cur := Reference{Note: note, Shift: shift}
	absolute := AbsoluteOctave(note) + ottavation
	out := Note{Letter: text}

	switch {
	case s.OctaveEntry == Absolute:
		out.Octave = absolute
	case prev == nil:
		out.Octave = ottavation
		check = true
	default:
		out.Octave = RelativeOctave(*prev, cur) + ottavation
	}
	if check {
		out.Check = &absolute
	}
	return out, &cur, nil
}

// Reference returns the reference note would leave behind without printing
// it, nil when note is globally overridden.
func (s *Settings) Reference(note MidiNote) (*Reference, error) {
	_, shift, _, global, err := s.letter(note)
	if err != nil || global {
		return nil, err
	}
	return &Reference{Note: note, Shift: shift}, nil
}

// AbsoluteName prints note from the spelling table with absolute octave
// marks, ignoring overrides, so that Parse reads it back unchanged.
func (s *Settings) AbsoluteName(note MidiNote) string {
	sp, err := Spell(note.PitchClass(), s.Key, s.Accidentals)
	if err != nil {
		return ""
	}
	return Render(s.Language.NoteString(sp.Name), AbsoluteOctave(note), nil)
}
