//go:build linux && cgo

package midilinux

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/leandrodaf/lilymidi/internal/midi"
	"github.com/leandrodaf/lilymidi/sdk/contracts"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

// ErrNoMIDIDevices is returned when ALSA reports no inputs.
var ErrNoMIDIDevices = errors.New("no MIDI devices found")

// ClientMid reads an ALSA input through rtmidi.
type ClientMid struct {
	logger  contracts.Logger
	capture *midi.Capture
	drv     *rtmididrv.Driver
	inPort  drivers.In
	stopFn  func()
	mu      sync.Mutex
}

// NewMIDIClient initialises the rtmidi driver.
func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	drv, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("rtmididrv: %w", err)
	}
	options.Logger.Info("MIDI client created for Linux")

	return &ClientMid{
		logger:  options.Logger,
		capture: midi.NewCapture(options.Logger, options.MIDIEventFilter),
		drv:     drv,
	}, nil
}

// ListDevices lists the available MIDI inputs.
func (m *ClientMid) ListDevices() ([]contracts.DeviceInfo, error) {
	ins, err := m.drv.Ins()
	if err != nil {
		return nil, fmt.Errorf("error listing MIDI inputs: %w", err)
	}
	if len(ins) == 0 {
		m.logger.Warn(ErrNoMIDIDevices.Error())
		return nil, ErrNoMIDIDevices
	}

	devices := make([]contracts.DeviceInfo, len(ins))
	for i, in := range ins {
		devices[i] = contracts.DeviceInfo{Name: in.String(), EntityName: in.String()}
	}
	return devices, nil
}

// SelectDevice opens the input called name and starts listening on it,
// closing any previous input.
func (m *ClientMid) SelectDevice(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ins, err := m.drv.Ins()
	if err != nil {
		return fmt.Errorf("error listing MIDI inputs: %w", err)
	}
	devices := make([]contracts.DeviceInfo, len(ins))
	for i, in := range ins {
		devices[i].Name = in.String()
	}
	index, err := midi.FindDevice(devices, name)
	if err != nil {
		m.logger.Error("MIDI device not found", m.logger.Field().String("deviceName", name))
		return fmt.Errorf("%w: %q", err, name)
	}

	m.closeConn()

	found := ins[index]
	if err := found.Open(); err != nil {
		return fmt.Errorf("open %q: %w", name, err)
	}
	stop, err := gomidi.ListenTo(found, func(msg gomidi.Message, _ int32) {
		midi.Split(msg, m.capture.Deliver)
	}, gomidi.HandleError(func(listenErr error) {
		m.logger.Warn("MIDI listener error", m.logger.Field().String("deviceName", name), m.logger.Field().Error("error", listenErr))
	}))
	if err != nil {
		_ = found.Close()
		return fmt.Errorf("listen %q: %w", name, err)
	}

	m.inPort = found
	m.stopFn = stop
	m.logger.Info("MIDI device connected", m.logger.Field().String("deviceName", name))
	return nil
}

// Drain discards pending input until the port has been quiet for quiet.
func (m *ClientMid) Drain(quiet time.Duration) {
	m.capture.Drain(quiet)
}

// StartCapture registers the channel that receives captured messages.
func (m *ClientMid) StartCapture(eventChannel chan contracts.MIDI) {
	if eventChannel == nil {
		m.logger.Error("StartCapture called with nil eventChannel")
		return
	}
	m.logger.Info("Starting MIDI event capture")
	m.capture.Start(eventChannel)
}

// Stop closes the input and the driver.
func (m *ClientMid) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.capture.Stop()
	m.closeConn()
	if m.drv != nil {
		err := m.drv.Close()
		m.drv = nil
		if err != nil {
			return fmt.Errorf("closing rtmidi driver: %w", err)
		}
	}
	m.logger.Info("MIDI capture stopped", m.logger.Field().Uint64("dropped", m.capture.Dropped()))
	return nil
}

func (m *ClientMid) closeConn() {
	if m.stopFn != nil {
		m.stopFn()
		m.stopFn = nil
	}
	if m.inPort != nil {
		_ = m.inPort.Close()
		m.inPort = nil
	}
}
