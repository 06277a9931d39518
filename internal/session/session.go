// Package session owns the notation context and the gesture aggregator of a
// live input session. A single mutex serializes MIDI events and parameter
// updates, so an update never lands in the middle of a gesture.
package session

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/leandrodaf/lilymidi/internal/aggregator"
	"github.com/leandrodaf/lilymidi/internal/midi"
	"github.com/leandrodaf/lilymidi/internal/notation"
	"github.com/leandrodaf/lilymidi/sdk/contracts"
	"go.uber.org/multierr"
)

// Token is one unit of notation output: a note, a chord or a chord repeat.
type Token string

// RepeatToken repeats the previous chord.
const RepeatToken Token = "q"

// Session turns MIDI events into notation tokens.
type Session struct {
	mu     sync.Mutex
	id     uuid.UUID
	logger contracts.Logger
	out    io.Writer
	params parameters
	agg    *aggregator.Aggregator
}

// New creates a session. Every invalid option is reported; the session is
// only returned when all of them are valid.
func New(opts ...Option) (*Session, error) {
	options := applyDefaultOptions(opts...)

	id := uuid.New()
	s := &Session{
		id:     id,
		logger: options.Logger.With(options.Logger.Field().String("session", id.String())),
		out:    options.Output,
		agg:    aggregator.New(),
	}

	err := multierr.Combine(
		s.SetKey(options.Key),
		s.SetAccidentals(options.Accidentals),
		s.SetInputMode(options.Mode),
		s.SetLanguage(options.Language),
		s.SetOctaveEntry(options.OctaveEntry),
	)
	for pc, text := range options.Alterations {
		err = multierr.Append(err, s.SetAlteration(pc, text))
	}
	for note, text := range options.GlobalAlterations {
		err = multierr.Append(err, s.SetGlobalAlteration(note, text))
	}
	if err != nil {
		return nil, err
	}
	s.SetCheckEveryNote(options.CheckEveryNote)

	s.logger.Info("Session created",
		s.logger.Field().String("key", s.params.Key.String()),
		s.logger.Field().String("mode", s.params.mode.String()),
		s.logger.Field().String("octaveEntry", s.params.OctaveEntry.String()))
	return s, nil
}

// ID identifies the session in logs.
func (s *Session) ID() string { return s.id.String() }

// Run consumes events until ctx is cancelled or events is closed. It is the
// only consumer, so events are handled in arrival order.
func (s *Session) Run(ctx context.Context, events <-chan contracts.MIDI) error {
	s.logger.Info("Listening for MIDI events")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				s.logger.Info("MIDI event channel closed")
				return nil
			}
			s.HandleEvent(midi.Decode(ev))
		}
	}
}

// HandleEvent feeds one event to the aggregator and prints the token of the
// gesture it completes, if any.
func (s *Session) HandleEvent(ev aggregator.RawEvent) (Token, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Debug("MIDI event",
		s.logger.Field().String("kind", ev.Kind.String()),
		s.logger.Field().Uint8("note", uint8(ev.Note)),
		s.logger.Field().Uint8("value", ev.Value))

	gesture, ok := s.agg.Handle(ev, s.params.mode)
	if !ok {
		return "", false
	}

	token, err := s.render(gesture)
	if err != nil {
		s.logger.Error("Failed to render gesture", s.logger.Field().Error("error", err))
		return "", false
	}

	if _, err := fmt.Fprintln(s.out, token); err != nil {
		s.logger.Warn("Failed to write token", s.logger.Field().Error("error", err))
	}
	s.logger.Debug("Token", s.logger.Field().String("token", string(token)))
	return token, true
}

func (s *Session) render(g aggregator.Gesture) (Token, error) {
	p := &s.params

	if g.Kind == aggregator.GestureRepeat {
		ref, err := p.Reference(g.Notes.Lowest())
		if err != nil {
			return "", err
		}
		p.previous = ref
		return RepeatToken, nil
	}

	var (
		parts  = make([]string, len(g.Notes))
		prev   = p.previous
		lowest *notation.Reference
	)
	for i, n := range g.Notes {
		note, ref, err := p.Resolve(n, prev, p.checkEveryNote || (i == 0 && p.checkNextNote))
		if err != nil {
			return "", err
		}
		if i == 0 {
			lowest = ref
		}
		parts[i] = note.String()
		prev = ref
	}
	p.checkNextNote = false

	if g.Kind == aggregator.GestureNote {
		p.previous = prev
		return Token(parts[0]), nil
	}
	p.previous = lowest
	return Token("<" + strings.Join(parts, " ") + ">"), nil
}

// Snapshot returns a copy of the current parameters.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.params.snapshot(s.agg)
	snap.Session = s.id.String()
	return snap
}
