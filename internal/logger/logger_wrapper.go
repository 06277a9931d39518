// Package logger implements contracts.Logger on top of zap.
package logger

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/leandrodaf/lilymidi/sdk/contracts"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is a contracts.Logger backed by a zap logger. The level is shared
// with every logger derived through With.
type ZapLogger struct {
	mu      sync.RWMutex
	logger  *zap.Logger
	level   zap.AtomicLevel
	fields  []zap.Field
	closeFn func()
}

// NewZapLogger creates a console logger writing to standard error at info level.
func NewZapLogger() contracts.Logger {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	return &ZapLogger{
		logger: zap.New(newCore(zapcore.Lock(os.Stderr), level, false), zap.AddCaller(), zap.AddCallerSkip(1)),
		level:  level,
	}
}

// NewWithCore wraps an existing zap core. The core's own level enabler still
// applies in addition to SetLevel.
func NewWithCore(core zapcore.Core) contracts.Logger {
	level := zap.NewAtomicLevelAt(zapcore.DebugLevel)
	return &ZapLogger{
		logger: zap.New(&leveledCore{Core: core, level: level}),
		level:  level,
	}
}

// NewNop returns a logger that discards everything.
func NewNop() contracts.Logger {
	return &ZapLogger{logger: zap.NewNop(), level: zap.NewAtomicLevel()}
}

func newCore(out zapcore.WriteSyncer, level zap.AtomicLevel, json bool) zapcore.Core {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if json {
		enc = zapcore.NewJSONEncoder(cfg)
	} else {
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
	}
	return zapcore.NewCore(enc, out, level)
}

// leveledCore gates an injected core with the logger's atomic level.
type leveledCore struct {
	zapcore.Core
	level zap.AtomicLevel
}

func (c *leveledCore) Enabled(l zapcore.Level) bool {
	return c.level.Enabled(l) && c.Core.Enabled(l)
}

func (c *leveledCore) With(fields []zapcore.Field) zapcore.Core {
	return &leveledCore{Core: c.Core.With(fields), level: c.level}
}

func (c *leveledCore) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(e.Level) {
		return ce.AddCore(e, c)
	}
	return ce
}

// Info logs a message at the INFO level
func (z *ZapLogger) Info(msg string, fields ...contracts.Field) {
	z.current().Info(msg, toZap(fields)...)
}

// Error logs a message at the ERROR level
func (z *ZapLogger) Error(msg string, fields ...contracts.Field) {
	z.current().Error(msg, toZap(fields)...)
}

// Debug logs a message at the DEBUG level
func (z *ZapLogger) Debug(msg string, fields ...contracts.Field) {
	z.current().Debug(msg, toZap(fields)...)
}

// Warn logs a message at the WARN level
func (z *ZapLogger) Warn(msg string, fields ...contracts.Field) {
	z.current().Warn(msg, toZap(fields)...)
}

// Fatal logs a message at the FATAL level and terminates the process.
func (z *ZapLogger) Fatal(msg string, fields ...contracts.Field) {
	z.current().Fatal(msg, toZap(fields)...)
}

// Field returns a field builder.
func (z *ZapLogger) Field() contracts.Field {
	return &zapField{}
}

// With returns a child logger carrying fields on every entry.
func (z *ZapLogger) With(fields ...contracts.Field) contracts.Logger {
	zf := toZap(fields)
	z.mu.RLock()
	defer z.mu.RUnlock()
	return &ZapLogger{
		logger: z.logger.With(zf...),
		level:  z.level,
		fields: append(append([]zap.Field(nil), z.fields...), zf...),
	}
}

// SetLevel sets the minimum level that gets written.
func (z *ZapLogger) SetLevel(level contracts.LogLevel) {
	z.level.SetLevel(zapLevel(level))
}

// SetDestination switches output between standard error (console format) and
// a file (JSON lines, appended).
func (z *ZapLogger) SetDestination(dest contracts.LogDestination, filePath ...string) error {
	var (
		out     zapcore.WriteSyncer
		closeFn func()
		json    bool
	)
	switch dest {
	case contracts.ConsoleLog:
		out = zapcore.Lock(os.Stderr)
	case contracts.FileLog:
		if len(filePath) == 0 || filePath[0] == "" {
			return fmt.Errorf("file destination requires a path")
		}
		ws, closer, err := zap.Open(filePath[0])
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		out, closeFn, json = ws, closer, true
	default:
		return fmt.Errorf("unknown log destination %q", dest)
	}

	z.mu.Lock()
	defer z.mu.Unlock()
	_ = z.logger.Sync()
	if z.closeFn != nil {
		z.closeFn()
	}
	z.logger = zap.New(newCore(out, z.level, json), zap.AddCaller(), zap.AddCallerSkip(1)).With(z.fields...)
	z.closeFn = closeFn
	return nil
}

func (z *ZapLogger) current() *zap.Logger {
	z.mu.RLock()
	defer z.mu.RUnlock()
	return z.logger
}

func zapLevel(level contracts.LogLevel) zapcore.Level {
	switch level {
	case contracts.DebugLevel:
		return zapcore.DebugLevel
	case contracts.WarnLevel:
		return zapcore.WarnLevel
	case contracts.ErrorLevel:
		return zapcore.ErrorLevel
	case contracts.FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func toZap(fields []contracts.Field) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		if f, ok := field.(*zapField); ok && f.key != "" {
			out = append(out, f.field)
		}
	}
	return out
}

// zapField implements contracts.Field around a zap.Field.
type zapField struct {
	field zap.Field
	key   string
}

func wrap(f zap.Field) contracts.Field {
	return &zapField{field: f, key: f.Key}
}

func (f *zapField) Bool(key string, val bool) contracts.Field { return wrap(zap.Bool(key, val)) }

func (f *zapField) Int(key string, val int) contracts.Field { return wrap(zap.Int(key, val)) }

func (f *zapField) Float64(key string, val float64) contracts.Field {
	return wrap(zap.Float64(key, val))
}

func (f *zapField) String(key string, val string) contracts.Field { return wrap(zap.String(key, val)) }

func (f *zapField) Strings(key string, val []string) contracts.Field {
	return wrap(zap.Strings(key, val))
}

func (f *zapField) Time(key string, val time.Time) contracts.Field { return wrap(zap.Time(key, val)) }

func (f *zapField) Int64(key string, val int64) contracts.Field { return wrap(zap.Int64(key, val)) }

func (f *zapField) Error(key string, val error) contracts.Field {
	return wrap(zap.NamedError(key, val))
}

func (f *zapField) Uint64(key string, val uint64) contracts.Field { return wrap(zap.Uint64(key, val)) }

func (f *zapField) Uint8(key string, val uint8) contracts.Field { return wrap(zap.Uint8(key, val)) }
