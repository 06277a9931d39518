// Package midi holds the pieces shared by the platform MIDI clients: raw
// message decoding, command filtering and the drain gate.
package midi

import (
	"github.com/leandrodaf/lilymidi/internal/aggregator"
	"github.com/leandrodaf/lilymidi/internal/notation"
	"github.com/leandrodaf/lilymidi/sdk/contracts"
	gomidi "gitlab.com/gomidi/midi/v2"
)

// Decode maps a captured message onto the aggregator's event kinds. A note-on
// with velocity 0 is a note-off; any control change is treated as a pedal,
// released when its value drops to 0. Everything else is Unknown.
func Decode(event contracts.MIDI) aggregator.RawEvent {
	msg := gomidi.Message{event.Command, event.Note, event.Velocity}

	var channel, key, velocity, controller, value uint8
	switch {
	case msg.GetNoteStart(&channel, &key, &velocity):
		return aggregator.RawEvent{Kind: aggregator.NoteOn, Note: notation.MidiNote(key), Value: velocity}
	case msg.GetNoteEnd(&channel, &key):
		return aggregator.RawEvent{Kind: aggregator.NoteOff, Note: notation.MidiNote(key)}
	case msg.GetControlChange(&channel, &controller, &value):
		if value == 0 {
			return aggregator.RawEvent{Kind: aggregator.PedalOff, Note: notation.MidiNote(controller)}
		}
		return aggregator.RawEvent{Kind: aggregator.PedalOn, Note: notation.MidiNote(controller), Value: value}
	}
	return aggregator.RawEvent{Kind: aggregator.Unknown}
}

// Allowed reports whether a status byte passes filter. A nil filter allows
// everything; commands are compared without their channel nibble.
func Allowed(filter *contracts.MIDIEventFilter, status byte) bool {
	if filter == nil {
		return true
	}
	for _, command := range filter.Commands {
		if status&0xF0 == byte(command) {
			return true
		}
	}
	return false
}
