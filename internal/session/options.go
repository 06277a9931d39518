package session

import (
	"io"
	"os"

	"github.com/leandrodaf/lilymidi/internal/logger"
	"github.com/leandrodaf/lilymidi/sdk/contracts"
)

// Defaults for a new session.
const (
	DefaultKey         = "cM"
	DefaultAccidentals = "sharps"
	DefaultMode        = "pedal-chord"
	DefaultLanguage    = "nederlands"
	DefaultOctaveEntry = "relative"
)

// Options is the initial configuration of a session. Enumerations are given
// by name and validated by the same setters used at runtime.
type Options struct {
	Key               string
	Accidentals       string
	Mode              string
	Language          string
	OctaveEntry       string
	CheckEveryNote    bool
	Alterations       map[uint8]string // pitch class to text
	GlobalAlterations map[uint8]string // absolute note to text
	Output            io.Writer        // receives one token per line
	Logger            contracts.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

func WithKey(key string) Option { return func(o *Options) { o.Key = key } }

func WithAccidentals(acc string) Option { return func(o *Options) { o.Accidentals = acc } }

func WithInputMode(mode string) Option { return func(o *Options) { o.Mode = mode } }

func WithLanguage(lang string) Option { return func(o *Options) { o.Language = lang } }

func WithOctaveEntry(entry string) Option { return func(o *Options) { o.OctaveEntry = entry } }

// WithCheckEveryNote adds an octave check to every printed note.
func WithCheckEveryNote(on bool) Option { return func(o *Options) { o.CheckEveryNote = on } }

// WithAlterations overrides the spelling of whole pitch classes.
func WithAlterations(alterations map[uint8]string) Option {
	return func(o *Options) { o.Alterations = alterations }
}

// WithGlobalAlterations overrides the spelling of single absolute notes.
func WithGlobalAlterations(alterations map[uint8]string) Option {
	return func(o *Options) { o.GlobalAlterations = alterations }
}

// WithOutput sets the token sink. Defaults to standard output.
func WithOutput(w io.Writer) Option { return func(o *Options) { o.Output = w } }

func WithLogger(l contracts.Logger) Option { return func(o *Options) { o.Logger = l } }

func applyDefaultOptions(opts ...Option) Options {
	options := Options{
		Key:         DefaultKey,
		Accidentals: DefaultAccidentals,
		Mode:        DefaultMode,
		Language:    DefaultLanguage,
		OctaveEntry: DefaultOctaveEntry,
	}
	for _, opt := range opts {
		opt(&options)
	}

	if options.Output == nil {
		options.Output = os.Stdout
	}
	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
	}
	return options
}
