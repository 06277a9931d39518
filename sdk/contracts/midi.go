package contracts

import (
	"errors"
	"time"
)

// ErrDeviceNotFound is returned when no input device matches a requested name.
var ErrDeviceNotFound = errors.New("MIDI device not found")

// MIDI represents a captured MIDI message with a timestamp.
type MIDI struct {
	Timestamp uint64 // Timestamp indicates the time the event occurred (UnixNano).
	Command   byte   // Command is the full status byte, channel nibble included.
	Note      byte   // Note is the first data byte: key or controller number.
	Velocity  byte   // Velocity is the second data byte: velocity or controller value.
}

// ClientMIDI is the event source feeding a notation session.
type ClientMIDI interface {
	ListDevices() ([]DeviceInfo, error) // Lists available MIDI input devices.
	SelectDevice(name string) error     // Connects to the input whose trimmed name matches exactly.
	Drain(quiet time.Duration)          // Discards pending messages until the port has been quiet for the given interval.
	StartCapture(eventChannel chan MIDI)
	Stop() error // Stops capturing and releases the device.
}
