package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/leandrodaf/lilymidi/internal/command"
	"github.com/leandrodaf/lilymidi/internal/httpapi"
	"github.com/leandrodaf/lilymidi/internal/session"
	"github.com/leandrodaf/lilymidi/sdk/contracts"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// drainQuiet is how long the port must stay silent before capture starts.
const drainQuiet = 200 * time.Millisecond

type listenFlags struct {
	device            string
	key               string
	accidentals       string
	mode              string
	language          string
	octaveEntry       string
	checkEveryNote    bool
	alterations       string
	globalAlterations string
	httpAddr          string
	bufferSize        int
}

var listen listenFlags

func init() {
	f := listenCmd.Flags()
	f.StringVarP(&listen.device, "device", "d", "", "name of the MIDI input, see 'lilymidi devices'")
	f.StringVarP(&listen.key, "key", "k", session.DefaultKey, "key signature, e.g. gM or fism")
	f.StringVarP(&listen.accidentals, "accidentals", "a", session.DefaultAccidentals, "sharps or flats outside the key")
	f.StringVarP(&listen.mode, "mode", "m", session.DefaultMode, "single, chord, pedal-chord or pedal-single")
	f.StringVarP(&listen.language, "language", "l", session.DefaultLanguage, "note name language")
	f.StringVarP(&listen.octaveEntry, "octave-entry", "o", session.DefaultOctaveEntry, "absolute or relative")
	f.BoolVar(&listen.checkEveryNote, "octave-check-notes", false, "add an octave check to every note")
	f.StringVar(&listen.alterations, "alterations", "", "pitch class overrides, e.g. 1:des,6:fis")
	f.StringVar(&listen.globalAlterations, "global-alterations", "", "absolute note overrides, e.g. 60:bis-")
	f.StringVar(&listen.httpAddr, "http", "", "also accept commands over HTTP on this address, e.g. :8080")
	f.IntVar(&listen.bufferSize, "buffer-size", 1024, "number of MIDI events buffered between the device and the session")
	_ = listenCmd.MarkFlagRequired("device")

	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Print notation for what is played",
	Long: `Prints one LilyPond token per line on stdout for every note, chord or repeated
chord played on the device. Lines of key=value settings read from stdin change
the notation while playing; type "list" to see the current settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runListen(cmd.Context(), listen)
	},
}

func (f listenFlags) sessionOptions() ([]session.Option, error) {
	opts := []session.Option{
		session.WithKey(f.key),
		session.WithAccidentals(f.accidentals),
		session.WithInputMode(f.mode),
		session.WithLanguage(f.language),
		session.WithOctaveEntry(f.octaveEntry),
		session.WithCheckEveryNote(f.checkEveryNote),
	}

	var errs error
	if f.alterations != "" {
		entries, err := command.ParseAlterations(f.alterations)
		errs = multierr.Append(errs, err)
		opts = append(opts, session.WithAlterations(entries))
	}
	if f.globalAlterations != "" {
		entries, err := command.ParseAlterations(f.globalAlterations)
		errs = multierr.Append(errs, err)
		opts = append(opts, session.WithGlobalAlterations(entries))
	}
	if f.bufferSize < 1 {
		errs = multierr.Append(errs, fmt.Errorf("buffer size must be positive, got %d", f.bufferSize))
	}
	return opts, errs
}

func runListen(ctx context.Context, f listenFlags) error {
	opts, err := f.sessionOptions()
	if err != nil {
		return err
	}

	log, client, err := newClient()
	if err != nil {
		return err
	}
	defer client.Stop()

	sess, err := session.New(append(opts, session.WithLogger(log), session.WithOutput(os.Stdout))...)
	if err != nil {
		return err
	}

	if err := client.SelectDevice(f.device); err != nil {
		if errors.Is(err, contracts.ErrDeviceNotFound) {
			return fmt.Errorf("%w (run 'lilymidi devices' to list inputs)", err)
		}
		return err
	}
	client.Drain(drainQuiet)

	events := make(chan contracts.MIDI, f.bufferSize)
	client.StartCapture(events)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler := command.NewHandler(sess, log, os.Stderr)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return sess.Run(ctx, events) })
	g.Go(func() error { return handler.Serve(ctx, os.Stdin) })
	if f.httpAddr != "" {
		g.Go(func() error {
			return httpapi.Serve(ctx, f.httpAddr, httpapi.NewRouter(sess, handler, log), log)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("Session finished", log.Field().String("session", sess.ID()))
	return nil
}
