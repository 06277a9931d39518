package contracts

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// LogLevel represents the severity level for logging. The zero value means
// "not set" so option defaults can be applied.
type LogLevel int

const (
	// DebugLevel indicates debug messages, including every MIDI event handled.
	DebugLevel LogLevel = iota + 1
	// InfoLevel indicates informational messages such as device and session lifecycle.
	InfoLevel
	// WarnLevel indicates rejected commands and dropped events.
	WarnLevel
	// ErrorLevel indicates failures that stop a component.
	ErrorLevel
	// FatalLevel indicates errors after which the process exits.
	FatalLevel
)

// ErrInvalidLogLevel is returned by ParseLogLevel.
var ErrInvalidLogLevel = errors.New("invalid log level")

var logLevelNames = map[LogLevel]string{
	DebugLevel: "debug",
	InfoLevel:  "info",
	WarnLevel:  "warn",
	ErrorLevel: "error",
	FatalLevel: "fatal",
}

func (l LogLevel) String() string {
	if name, ok := logLevelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LogLevel(%d)", int(l))
}

// ParseLogLevel reads a level name such as "debug" or "WARN".
func ParseLogLevel(s string) (LogLevel, error) {
	for level, name := range logLevelNames {
		if strings.EqualFold(s, name) {
			return level, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s)
}

// LogDestination specifies where the log messages should be directed.
type LogDestination string

const (
	// ConsoleLog directs log messages to standard error.
	ConsoleLog LogDestination = "console"
	// FileLog directs log messages to a file.
	FileLog LogDestination = "file"
)

// Field is a typed key/value pair attached to a log entry.
type Field interface {
	Bool(key string, val bool) Field
	Int(key string, val int) Field
	Float64(key string, val float64) Field
	String(key string, val string) Field
	Strings(key string, val []string) Field
	Time(key string, val time.Time) Field
	Int64(key string, val int64) Field
	Error(key string, val error) Field
	Uint64(key string, val uint64) Field
	Uint8(key string, val uint8) Field
}

// Logger provides leveled, structured logging.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Debug(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)

	Field() Field

	// With returns a logger that attaches fields to every entry.
	With(fields ...Field) Logger

	SetLevel(level LogLevel)
	SetDestination(dest LogDestination, filePath ...string) error
}
