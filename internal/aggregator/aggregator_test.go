package aggregator

import (
	"testing"

	"github.com/leandrodaf/lilymidi/internal/notation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func on(n notation.MidiNote) RawEvent  { return RawEvent{Kind: NoteOn, Note: n, Value: 100} }
func off(n notation.MidiNote) RawEvent { return RawEvent{Kind: NoteOff, Note: n} }
func pedalOn() RawEvent                { return RawEvent{Kind: PedalOn, Note: 64, Value: 127} }
func pedalOff() RawEvent               { return RawEvent{Kind: PedalOff, Note: 64} }

// feed runs events through a and collects every gesture.
func feed(a *Aggregator, mode InputMode, events ...RawEvent) []Gesture {
	var out []Gesture
	for _, ev := range events {
		if g, ok := a.Handle(ev, mode); ok {
			out = append(out, g)
		}
	}
	return out
}

func TestChordThenRepeat(t *testing.T) {
	a := New()
	triad := []RawEvent{on(60), on(64), on(67), off(60), off(64), off(67)}

	got := feed(a, Chord, triad...)
	require.Len(t, got, 1)
	assert.Equal(t, Gesture{Kind: GestureChord, Notes: Notes{60, 64, 67}}, got[0])

	got = feed(a, Chord, triad...)
	require.Len(t, got, 1)
	assert.Equal(t, GestureRepeat, got[0].Kind)
	assert.Equal(t, Notes{60, 64, 67}, got[0].Notes)
}

func TestChordOrderIgnoresPressOrder(t *testing.T) {
	a := New()
	got := feed(a, Chord, on(67), on(60), off(67), on(64), off(60), off(64))
	require.Len(t, got, 1)
	assert.Equal(t, Notes{60, 64, 67}, got[0].Notes)
}

func TestSingleNoteInChordMode(t *testing.T) {
	a := New()
	got := feed(a, Chord, on(62), off(62))
	require.Len(t, got, 1)
	assert.Equal(t, Gesture{Kind: GestureNote, Notes: Notes{62}}, got[0])
	assert.Nil(t, a.LastChord(), "a single note is not remembered as a chord")
}

func TestSingleModeConsumesOneNotePerFlush(t *testing.T) {
	a := New()
	got := feed(a, Single, on(64), on(60), off(64), off(60))
	require.Len(t, got, 1)
	assert.Equal(t, Notes{60}, got[0].Notes)
	assert.Equal(t, Notes{64}, a.Pending(), "surplus note waits for the next flush")

	got = feed(a, Single, on(72), off(72))
	require.Len(t, got, 1)
	assert.Equal(t, Notes{64}, got[0].Notes)
	assert.Equal(t, Notes{72}, a.Pending())
}

func TestPedalModes(t *testing.T) {
	a := New()

	got := feed(a, PedalChord, on(60), on(64), off(60), off(64))
	require.Len(t, got, 1)
	assert.Equal(t, GestureNote, got[0].Kind, "no pedal: single behaviour")
	a = New()

	got = feed(a, PedalChord, pedalOn(), on(60), on(64), off(60), off(64), pedalOff())
	require.Len(t, got, 1)
	assert.Equal(t, GestureChord, got[0].Kind)
	assert.False(t, a.PedalDown())

	a = New()
	got = feed(a, PedalSingle, on(60), on(64), off(60), off(64))
	require.Len(t, got, 1)
	assert.Equal(t, GestureChord, got[0].Kind, "no pedal: chord behaviour")

	a = New()
	got = feed(a, PedalSingle, pedalOn(), on(60), on(64), off(60), off(64))
	require.Len(t, got, 1)
	assert.Equal(t, Gesture{Kind: GestureNote, Notes: Notes{60}}, got[0])
}

func TestPedalEventsNeverFlush(t *testing.T) {
	a := New()
	got := feed(a, Chord, on(60), pedalOn(), pedalOff())
	assert.Empty(t, got)
	assert.Equal(t, Notes{60}, a.Pending())

	got = feed(a, Chord, RawEvent{Kind: Unknown}, off(60))
	require.Len(t, got, 1)
	assert.Equal(t, Notes{60}, got[0].Notes)
}

func TestStrayNoteOffDoesNotEmit(t *testing.T) {
	a := New()
	assert.Empty(t, feed(a, Chord, off(60), off(61)))
}

func TestLastChordMemory(t *testing.T) {
	a := New()
	a.SetLastChord(Notes{67, 60, 64, 60})
	assert.Equal(t, Notes{60, 64, 67}, a.LastChord())

	got := feed(a, Chord, on(60), on(64), on(67), off(60), off(64), off(67))
	require.Len(t, got, 1)
	assert.Equal(t, GestureRepeat, got[0].Kind)

	a.ClearLastChord()
	got = feed(a, Chord, on(60), on(64), on(67), off(60), off(64), off(67))
	require.Len(t, got, 1)
	assert.Equal(t, GestureChord, got[0].Kind)
}

func TestParseInputMode(t *testing.T) {
	for in, want := range map[string]InputMode{"s": Single, "chord": Chord, "pedal": PedalChord, "ps": PedalSingle} {
		got, err := ParseInputMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseInputMode("arpeggio")
	assert.ErrorIs(t, err, ErrInvalidModeString)
}
