package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolve(t *testing.T, s *Settings, note MidiNote, prev *Reference, check bool) (string, *Reference) {
	t.Helper()
	n, next, err := s.Resolve(note, prev, check)
	require.NoError(t, err)
	return n.String(), next
}

func TestResolveAbsolute(t *testing.T) {
	s := &Settings{Key: CMajor, OctaveEntry: Absolute}

	got, _ := resolve(t, s, 60, nil, false)
	assert.Equal(t, "c'", got)
	got, _ = resolve(t, s, 72, nil, false)
	assert.Equal(t, "c''", got)
	got, _ = resolve(t, s, 47, nil, false)
	assert.Equal(t, "b,", got)

	got, _ = resolve(t, s, 61, nil, true)
	assert.Equal(t, "cis'='", got, "forced check in absolute mode")
}

func TestResolveRelative(t *testing.T) {
	s := &Settings{Key: CMajor, OctaveEntry: Relative}

	got, ref := resolve(t, s, 60, nil, false)
	assert.Equal(t, "c='", got, "first note carries an explicit check")
	require.NotNil(t, ref)

	got, ref = resolve(t, s, 65, ref, false)
	assert.Equal(t, "f", got)

	got, ref = resolve(t, s, 76, ref, false)
	assert.Equal(t, "e'", got)

	got, ref = resolve(t, s, 52, ref, true)
	assert.Equal(t, "e,,=", got)

	got, _ = resolve(t, s, 57, ref, false)
	assert.Equal(t, "a", got)
}

func TestResolveAlterationPriority(t *testing.T) {
	s := &Settings{Key: CMajor, OctaveEntry: Absolute}
	require.NoError(t, s.Alterations.Set(0, "his"))

	got, ref := resolve(t, s, 60, nil, false)
	assert.Equal(t, "his'", got, "local alteration masks the spelling table")
	assert.Equal(t, &Reference{Note: 60}, ref)

	s.GlobalAlterations.Set(60, "\\xNote c")
	got, ref = resolve(t, s, 60, nil, true)
	assert.Equal(t, "\\xNote c", got, "global alteration masks the local one and has no octave")
	assert.Nil(t, ref)

	got, _ = resolve(t, s, 72, nil, false)
	assert.Equal(t, "his''", got, "global alteration is bound to one note")
}

func TestResolveOttavation(t *testing.T) {
	s := &Settings{Key: CMajor, OctaveEntry: Absolute}
	require.NoError(t, s.Alterations.Set(0, "foo+"))
	s.GlobalAlterations.Set(50, "bar--")

	got, _ := resolve(t, s, 60, nil, false)
	assert.Equal(t, "foo''", got)

	got, _ = resolve(t, s, 50, nil, false)
	assert.Equal(t, "bar,,", got)

	s.OctaveEntry = Relative
	got, ref := resolve(t, s, 60, &Reference{Note: 60}, false)
	assert.Equal(t, "foo'", got)
	assert.Equal(t, MidiNote(60), ref.Note)
}

func TestReferenceAndAbsoluteName(t *testing.T) {
	s := &Settings{Key: CSharpMajor, Accidentals: Sharps}

	ref, err := s.Reference(60)
	require.NoError(t, err)
	assert.Equal(t, &Reference{Note: 60, Shift: 1}, ref)
	assert.Equal(t, "bis'", s.AbsoluteName(60))

	s.GlobalAlterations.Set(60, "x")
	ref, err = s.Reference(60)
	require.NoError(t, err)
	assert.Nil(t, ref)
}
