// Package command applies "key=value" parameter updates to a session. It is
// the text side of the parameter channel: lines come from standard input or
// from the HTTP API.
package command

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bep/debounce"
	"github.com/leandrodaf/lilymidi/internal/session"
	"github.com/leandrodaf/lilymidi/sdk/contracts"
	"go.uber.org/multierr"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Reply prefixes.
const (
	infoPrefix  = ":: "
	errorPrefix = "!! "
)

// SettleDelay is how long the parameters must stay untouched before the
// settled configuration is logged.
const SettleDelay = 500 * time.Millisecond

// clearValue resets an alteration map, the previous chord or the reference.
const clearValue = "clear"

// Handler parses command lines and applies them to a session.
type Handler struct {
	session *session.Session
	logger  contracts.Logger
	reply   io.Writer
	settled func(func())
}

// NewHandler creates a handler writing replies to reply.
func NewHandler(s *session.Session, logger contracts.Logger, reply io.Writer) *Handler {
	return &Handler{
		session: s,
		logger:  logger,
		reply:   reply,
		settled: debounce.New(SettleDelay),
	}
}

// Apply runs one line, writing replies to the handler's reply writer.
func (h *Handler) Apply(line string) error {
	return h.ApplyTo(h.reply, line)
}

// ApplyTo runs one line of space separated "key=value" fields. Every field is
// attempted; the errors of rejected fields are combined and also written to w.
func (h *Handler) ApplyTo(w io.Writer, line string) error {
	var (
		errs    error
		updated bool
	)
	for _, field := range strings.Fields(line) {
		key, value, hasValue := strings.Cut(field, "=")

		if key == "list" {
			if err := h.list(w, value, hasValue); err != nil {
				errs = multierr.Append(errs, err)
			}
			continue
		}
		if !hasValue {
			errs = multierr.Append(errs, fmt.Errorf("%w: %q", ErrMissingValue, key))
			continue
		}

		err := h.set(key, value)
		if err == nil {
			updated = true
			h.logger.Debug("Parameter updated",
				h.logger.Field().String("key", key),
				h.logger.Field().String("value", value))
		}
		errs = multierr.Append(errs, err)
	}

	for _, err := range multierr.Errors(errs) {
		h.logger.Warn("Command rejected", h.logger.Field().Error("error", err))
		fmt.Fprintf(w, "%s%v\n", errorPrefix, err)
	}
	if updated {
		h.settled(h.logSettled)
	}
	return errs
}

func (h *Handler) set(key, value string) error {
	s := h.session
	switch key {
	case "key":
		return s.SetKey(value)
	case "accidentals":
		return s.SetAccidentals(value)
	case "mode":
		return s.SetInputMode(value)
	case "language":
		return s.SetLanguage(value)
	case "octave-entry":
		return s.SetOctaveEntry(value)
	case "octave-check-notes":
		on, err := parseBool(value)
		if err != nil {
			return err
		}
		s.SetCheckEveryNote(on)
		return nil
	case "octave-check-on-next-note":
		on, err := parseBool(value)
		if err != nil {
			return err
		}
		s.SetCheckNextNote(on)
		return nil
	case "alterations", "alt":
		if value == clearValue {
			s.ClearAlterations()
			return nil
		}
		return eachAlteration(value, s.SetAlteration)
	case "global-alterations", "galt":
		if value == clearValue {
			s.ClearGlobalAlterations()
			return nil
		}
		return eachAlteration(value, s.SetGlobalAlteration)
	case "previous-chord", "pc":
		if value == clearValue {
			s.ClearPreviousChord()
			return nil
		}
		return s.SetPreviousChord(strings.Split(value, ":"))
	case "previous-absolute-note-reference", "panr":
		if value == clearValue {
			s.ClearPreviousReference()
			return nil
		}
		return s.SetPreviousReference(value)
	}
	return fmt.Errorf("%w: %q", ErrUnknownParameter, key)
}

// ParseAlterations reads a "n:text,n:text" list. Malformed entries are
// reported in the error and left out of the map.
func ParseAlterations(value string) (map[uint8]string, error) {
	var errs error
	entries := make(map[uint8]string)
	for _, entry := range strings.Split(value, ",") {
		number, text, ok := strings.Cut(entry, ":")
		if !ok || text == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: %q", ErrInvalidAlterationEntry, entry))
			continue
		}
		n, err := strconv.ParseUint(number, 10, 8)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%w: %q", ErrInvalidAlterationEntry, entry))
			continue
		}
		entries[uint8(n)] = text
	}
	return entries, errs
}

// eachAlteration applies every well-formed entry of value, in ascending order.
func eachAlteration(value string, set func(uint8, string) error) error {
	entries, errs := ParseAlterations(value)
	keys := maps.Keys(entries)
	slices.Sort(keys)
	for _, k := range keys {
		errs = multierr.Append(errs, set(k, entries[k]))
	}
	return errs
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrInvalidBoolString, s)
	}
	return b, nil
}

func (h *Handler) list(w io.Writer, name string, hasValue bool) error {
	if !hasValue {
		writeSnapshot(w, h.session.Snapshot())
		return nil
	}
	values, err := Values(name)
	if err != nil {
		return err
	}
	for _, v := range values {
		if len(v.Aliases) == 0 {
			fmt.Fprintf(w, "%s%s\n", infoPrefix, v.Name)
			continue
		}
		fmt.Fprintf(w, "%s%s (%s)\n", infoPrefix, v.Name, strings.Join(v.Aliases, ", "))
	}
	return nil
}

func writeSnapshot(w io.Writer, s session.Snapshot) {
	line := func(key string, value any) {
		fmt.Fprintf(w, "%s%s = %v\n", infoPrefix, key, value)
	}
	line("key", s.Key)
	line("accidentals", s.Accidentals)
	line("mode", s.Mode)
	line("language", s.Language)
	line("octave-entry", s.OctaveEntry)
	line("octave-check-notes", s.CheckEveryNote)
	line("octave-check-on-next-note", s.CheckNextNote)
	line("alterations", formatAlterations(s.Alterations))
	line("global-alterations", formatAlterations(s.GlobalAlterations))
	line("previous-chord", strings.Join(s.PreviousChord, ":"))
	line("previous-absolute-note-reference", s.PreviousReference)
}

// formatAlterations prints a map in the same "n:text,..." form it is set with.
func formatAlterations(m map[uint8]string) string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%d:%s", k, m[k])
	}
	return strings.Join(parts, ",")
}

func (h *Handler) logSettled() {
	s := h.session.Snapshot()
	h.logger.Info("Parameters settled",
		h.logger.Field().String("key", s.Key),
		h.logger.Field().String("accidentals", s.Accidentals),
		h.logger.Field().String("mode", s.Mode),
		h.logger.Field().String("language", s.Language),
		h.logger.Field().String("octaveEntry", s.OctaveEntry),
		h.logger.Field().String("alterations", formatAlterations(s.Alterations)),
		h.logger.Field().String("globalAlterations", formatAlterations(s.GlobalAlterations)),
	)
}

// Serve applies lines from r until EOF or until ctx is cancelled. Rejected
// commands are reported and never stop the loop. A read blocked on r is
// abandoned, not interrupted, on cancellation.
func (h *Handler) Serve(ctx context.Context, r io.Reader) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return ctx.Err()
				}
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			_ = h.Apply(line)
		}
	}
}
