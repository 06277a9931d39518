//go:build windows
// +build windows

package midiwindows

import (
	"errors"
	"fmt"
	"sync"
	"time"
	"unsafe"

	"github.com/leandrodaf/lilymidi/internal/midi"
	"github.com/leandrodaf/lilymidi/sdk/contracts"
	"golang.org/x/sys/windows"
)

// Type definitions for MIDI handles
type HMIDIIN windows.Handle

// Constants for callback flags
const (
	CALLBACK_FUNCTION = 0x00030000 // Indicates that the callback is a function
	MIDI_IO_STATUS    = 0x00000020 // MIDI input/output status
)

// Constants for MIDI message types
const (
	MIM_OPEN      = 0x3C1 // MIDI device opened
	MIM_CLOSE     = 0x3C2 // MIDI device closed
	MIM_DATA      = 0x3C3 // MIDI data received
	MIM_ERROR     = 0x3C5 // MIDI error
	MIM_LONGERROR = 0x3C6 // Long MIDI error
	MIM_MOREDATA  = 0x3CC // More MIDI data available
)

var ErrNoMIDIDevices = errors.New("no MIDI devices found")

// Struct representing MIDI device capabilities
type midiInCaps struct {
	wMid           uint16
	wPid           uint16
	vDriverVersion uint32
	szPname        [32]uint16
	dwSupport      uint32
}

// ClientMid reads a winmm MIDI input on Windows.
type ClientMid struct {
	logger   contracts.Logger
	capture  *midi.Capture
	handle   HMIDIIN
	portConn bool
	started  bool
	mu       sync.Mutex
	callback uintptr
}

// Load the winmm.dll library and required functions
var (
	winmm                = windows.NewLazySystemDLL("winmm.dll")
	procMidiInGetNumDevs = winmm.NewProc("midiInGetNumDevs")
	procMidiInGetDevCaps = winmm.NewProc("midiInGetDevCapsW")
	procMidiInOpen       = winmm.NewProc("midiInOpen")
	procMidiInStart      = winmm.NewProc("midiInStart")
	procMidiInStop       = winmm.NewProc("midiInStop")
	procMidiInClose      = winmm.NewProc("midiInClose")
)

// callback slots are a limited resource, so one is shared by all clients
var inCallback = windows.NewCallback(midiInCallback)

// NewMIDIClient creates a MIDI client for Windows
func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	options.Logger.Info("MIDI client created for Windows")

	return &ClientMid{
		logger:   options.Logger,
		capture:  midi.NewCapture(options.Logger, options.MIDIEventFilter),
		callback: inCallback,
	}, nil
}

// ListDevices lists the available MIDI input devices.
func (m *ClientMid) ListDevices() ([]contracts.DeviceInfo, error) {
	r0, _, _ := procMidiInGetNumDevs.Call()
	numDevices := uint32(r0)
	if numDevices == 0 {
		m.logger.Warn(ErrNoMIDIDevices.Error())
		return nil, ErrNoMIDIDevices
	}

	devices := make([]contracts.DeviceInfo, numDevices)
	for i := uint32(0); i < numDevices; i++ {
		var caps midiInCaps
		r1, _, _ := procMidiInGetDevCaps.Call(
			uintptr(i),
			uintptr(unsafe.Pointer(&caps)),
			unsafe.Sizeof(caps),
		)
		if r1 != 0 {
			m.logger.Warn("Failed to get information for MIDI device", m.logger.Field().Int("deviceID", int(i)))
			continue
		}
		deviceName := windows.UTF16ToString(caps.szPname[:])
		devices[i] = contracts.DeviceInfo{
			Name:         deviceName,
			EntityName:   deviceName,
			Manufacturer: fmt.Sprintf("MID: %d PID: %d", caps.wMid, caps.wPid),
		}
	}
	return devices, nil
}

// SelectDevice opens the input called name, closing any previous one.
func (m *ClientMid) SelectDevice(name string) error {
	devices, err := m.ListDevices()
	if err != nil {
		return err
	}
	deviceID, err := midi.FindDevice(devices, name)
	if err != nil {
		m.logger.Error("MIDI device not found", m.logger.Field().String("deviceName", name))
		return fmt.Errorf("%w: %q", err, name)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.portConn {
		if err := m.closeDevice(); err != nil {
			return fmt.Errorf("failed to stop previous MIDI capture: %w", err)
		}
	}

	fdwOpen := CALLBACK_FUNCTION | MIDI_IO_STATUS
	r1, _, err := procMidiInOpen.Call(
		uintptr(unsafe.Pointer(&m.handle)),
		uintptr(deviceID),
		m.callback,
		uintptr(unsafe.Pointer(m)),
		uintptr(fdwOpen),
	)
	if r1 != 0 {
		m.logger.Error("Failed to open MIDI device", m.logger.Field().String("deviceName", name), m.logger.Field().Error("error", err))
		return fmt.Errorf("failed to open MIDI device %q: %v", name, err)
	}

	m.portConn = true
	m.logger.Info("MIDI device connected", m.logger.Field().String("deviceName", name))
	if m.capture.Active() {
		return m.start()
	}
	return nil
}

// Drain discards pending input until the device has been quiet for quiet.
func (m *ClientMid) Drain(quiet time.Duration) {
	m.capture.Drain(quiet)
}

// StartCapture registers eventChannel and starts the device if one is open.
func (m *ClientMid) StartCapture(eventChannel chan contracts.MIDI) {
	if eventChannel == nil {
		m.logger.Error("StartCapture called with nil eventChannel")
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.capture.Start(eventChannel)
	if !m.portConn {
		m.logger.Warn("No MIDI device selected; capture starts on selection")
		return
	}
	if err := m.start(); err != nil {
		m.logger.Error("Failed to start MIDI capture", m.logger.Field().Error("error", err))
	}
}

func (m *ClientMid) start() error {
	if m.started {
		return nil
	}
	if m.handle == 0 {
		return errors.New("invalid MIDI device handle")
	}
	r1, _, err := procMidiInStart.Call(uintptr(m.handle))
	if r1 != 0 {
		return fmt.Errorf("midiInStart: %v", err)
	}
	m.started = true
	m.logger.Info("MIDI capture started")
	return nil
}

// midiInCallback processes incoming MIDI messages
func midiInCallback(hMidiIn uintptr, wMsg uint32, dwInstance uintptr, dwParam1 uintptr, dwParam2 uintptr) uintptr {
	m := (*ClientMid)(unsafe.Pointer(dwInstance))

	switch wMsg {
	case MIM_OPEN:
		m.logger.Debug("MIDI device opened")
	case MIM_CLOSE:
		m.logger.Debug("MIDI device closed")
	case MIM_DATA:
		status := byte(dwParam1 & 0xFF)
		data1 := byte((dwParam1 >> 8) & 0xFF)
		data2 := byte((dwParam1 >> 16) & 0xFF)
		m.capture.Deliver(status, data1, data2)
	case MIM_ERROR, MIM_LONGERROR:
		m.logger.Error("MIDI error", m.logger.Field().Uint64("msg", uint64(wMsg)))
	case MIM_MOREDATA:
		m.logger.Debug("Received MIM_MOREDATA message; ignored")
	default:
		m.logger.Warn("Unknown MIDI message", m.logger.Field().Uint64("msg", uint64(wMsg)))
	}

	return 0
}

// Stop terminates MIDI event capture and closes the device.
func (m *ClientMid) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.capture.Stop()
	if !m.portConn {
		return nil
	}
	if err := m.closeDevice(); err != nil {
		return fmt.Errorf("failed to stop MIDI capture: %w", err)
	}
	m.logger.Info("MIDI capture stopped and device closed",
		m.logger.Field().Uint64("dropped", m.capture.Dropped()))
	return nil
}

func (m *ClientMid) closeDevice() error {
	if m.handle == 0 {
		return errors.New("invalid MIDI device handle")
	}

	if m.started {
		if r1, _, err := procMidiInStop.Call(uintptr(m.handle)); r1 != 0 {
			return fmt.Errorf("midiInStop: %v", err)
		}
		m.started = false
	}
	if r1, _, err := procMidiInClose.Call(uintptr(m.handle)); r1 != 0 {
		return fmt.Errorf("midiInClose: %v", err)
	}

	m.portConn = false
	m.handle = 0
	return nil
}
