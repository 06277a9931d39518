//go:build !linux || !cgo

package midilinux

import (
	"errors"
	"time"

	"github.com/leandrodaf/lilymidi/sdk/contracts"
)

// ErrUnavailable is returned by every device operation without ALSA.
var ErrUnavailable = errors.New("rtmidi is not available on this platform")

type dummyMIDIClient struct {
	logger contracts.Logger
}

// NewMIDIClient initializes a dummy MIDI client.
func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	options.Logger.Info("Using dummy MIDI client; rtmidi needs linux with cgo")
	return &dummyMIDIClient{logger: options.Logger}, nil
}

func (m *dummyMIDIClient) ListDevices() ([]contracts.DeviceInfo, error) {
	return nil, ErrUnavailable
}

func (m *dummyMIDIClient) SelectDevice(string) error {
	return ErrUnavailable
}

func (m *dummyMIDIClient) Drain(time.Duration) {}

func (m *dummyMIDIClient) StartCapture(chan contracts.MIDI) {
	m.logger.Warn("StartCapture called on dummy MIDI client")
}

func (m *dummyMIDIClient) Stop() error {
	return nil
}
