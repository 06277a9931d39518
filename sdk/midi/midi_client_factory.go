package midi

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/leandrodaf/lilymidi/internal/midi/mididarwin"
	"github.com/leandrodaf/lilymidi/internal/midi/midilinux"
	"github.com/leandrodaf/lilymidi/internal/midi/midiwindows"
	"github.com/leandrodaf/lilymidi/sdk/contracts"
)

// ErrUnsupportedOS is returned when the operating system is not supported by the MIDI client.
var ErrUnsupportedOS = errors.New("unsupported operating system")

// clientInitializers maps OS names to corresponding MIDI client initializers.
var clientInitializers = map[string]func(*contracts.ClientOptions) (contracts.ClientMIDI, error){
	"darwin":  mididarwin.NewMIDIClient,  // CoreMIDI
	"windows": midiwindows.NewMIDIClient, // winmm
	"linux":   midilinux.NewMIDIClient,   // ALSA through rtmidi
}

// NewClient initializes a MIDI client based on the current operating system,
// returning ErrUnsupportedOS when there is none.
func NewClient(opts *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	return newClientFor(runtime.GOOS, opts)
}

func newClientFor(goos string, opts *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	if initializer, exists := clientInitializers[goos]; exists {
		return initializer(opts)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, goos)
}
