//go:build darwin
// +build darwin

package mididarwin

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/leandrodaf/lilymidi/internal/midi"
	"github.com/leandrodaf/lilymidi/sdk/contracts"
	"github.com/youpy/go-coremidi"
)

// Error definitions for MIDI connection and handling issues.
var (
	ErrNoMIDIDevices       = errors.New("no MIDI devices found")
	ErrMIDIConnectionError = errors.New("error connecting to MIDI device")
	ErrCreateInputPort     = errors.New("error creating input port")
)

// internalPortConnection is an interface for handling disconnection from a MIDI port.
type internalPortConnection interface {
	Disconnect()
}

// ClientMid reads a CoreMIDI source on macOS and forwards its messages to
// the capture channel.
type ClientMid struct {
	logger    contracts.Logger
	capture   *midi.Capture
	client    coremidi.Client
	inputPort coremidi.InputPort
	portConn  internalPortConnection
	mu        sync.Mutex
	wg        sync.WaitGroup
	stopOnce  sync.Once
}

// NewMIDIClient creates the CoreMIDI client named by options.CoreMIDIConfig.
func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	client, err := coremidi.NewClient(options.CoreMIDIConfig.ClientName)
	if err != nil {
		return nil, err
	}
	options.Logger.Info("MIDI client successfully created")

	return &ClientMid{
		logger:  options.Logger,
		client:  client,
		capture: midi.NewCapture(options.Logger, options.MIDIEventFilter),
	}, nil
}

// ListDevices returns the available CoreMIDI sources.
func (m *ClientMid) ListDevices() ([]contracts.DeviceInfo, error) {
	sources, err := coremidi.AllSources()
	if err != nil {
		return nil, fmt.Errorf("error listing MIDI sources: %w", err)
	}
	if len(sources) == 0 {
		m.logger.Warn(ErrNoMIDIDevices.Error())
		return nil, ErrNoMIDIDevices
	}

	devices := make([]contracts.DeviceInfo, len(sources))
	for i, source := range sources {
		sourceEntity := source.Entity()
		devices[i] = contracts.DeviceInfo{
			Name:         source.Name(),
			EntityName:   sourceEntity.Name(),
			Manufacturer: sourceEntity.Manufacturer(),
		}
	}
	return devices, nil
}

// SelectDevice connects to the source called name, replacing any previous
// connection.
func (m *ClientMid) SelectDevice(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sources, err := coremidi.AllSources()
	if err != nil {
		return fmt.Errorf("error retrieving MIDI sources: %w", err)
	}
	devices := make([]contracts.DeviceInfo, len(sources))
	for i, source := range sources {
		devices[i].Name = source.Name()
	}
	index, err := midi.FindDevice(devices, name)
	if err != nil {
		m.logger.Error("MIDI device not found", m.logger.Field().String("deviceName", name))
		return fmt.Errorf("%w: %q", err, name)
	}

	if m.portConn != nil {
		m.portConn.Disconnect()
		m.portConn = nil
	}

	source := sources[index]
	m.logger.Info("MIDI device selected", m.logger.Field().String("deviceName", source.Name()))

	m.inputPort, err = coremidi.NewInputPort(m.client, "Input Port", m.handleMIDIMessage)
	if err != nil {
		m.logger.Error(ErrCreateInputPort.Error(), m.logger.Field().Error("error", err))
		return fmt.Errorf("%w: %v", ErrCreateInputPort, err)
	}

	m.portConn, err = m.inputPort.Connect(source)
	if err != nil {
		m.logger.Error(ErrMIDIConnectionError.Error(), m.logger.Field().Error("error", err))
		return fmt.Errorf("%w: %v", ErrMIDIConnectionError, err)
	}

	m.logger.Info("MIDI device successfully connected")
	return nil
}

func (m *ClientMid) handleMIDIMessage(_ coremidi.Source, packet coremidi.Packet) {
	m.wg.Add(1)
	defer m.wg.Done()

	midi.Split(packet.Data, m.capture.Deliver)
}

// Drain discards pending input until the source has been quiet for quiet.
func (m *ClientMid) Drain(quiet time.Duration) {
	m.capture.Drain(quiet)
}

// StartCapture registers the channel that receives captured messages.
func (m *ClientMid) StartCapture(eventChannel chan contracts.MIDI) {
	if eventChannel == nil {
		m.logger.Error("StartCapture called with nil eventChannel")
		return
	}
	if m.capture.Active() {
		m.logger.Warn("Capture already started; replacing the event channel")
	}

	m.logger.Info("Starting MIDI event capture")
	m.capture.Start(eventChannel)
}

// Stop disconnects from the source and waits for in-flight callbacks. It is
// safe to call more than once.
func (m *ClientMid) Stop() error {
	m.stopOnce.Do(func() {
		m.logger.Info("Stopping MIDI capture")
		m.mu.Lock()
		defer m.mu.Unlock()

		m.capture.Stop()
		if m.portConn != nil {
			m.portConn.Disconnect()
			m.portConn = nil
		}
		m.wg.Wait()
		m.logger.Info("MIDI capture stopped",
			m.logger.Field().Uint64("dropped", m.capture.Dropped()))
	})
	return nil
}
