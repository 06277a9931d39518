package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/leandrodaf/lilymidi/internal/logger"
	"github.com/leandrodaf/lilymidi/internal/session"
	"github.com/leandrodaf/lilymidi/sdk/contracts"
	"github.com/leandrodaf/lilymidi/sdk/midi"
)

// Prints LilyPond notes for whatever is played on the first MIDI input.
func main() {
	log := logger.NewZapLogger()

	client, err := midi.NewMIDIClient(
		contracts.WithLogger(log),
		contracts.WithLogLevel(contracts.InfoLevel),
	)
	if err != nil {
		log.Error("Failed to initialize MIDI client", log.Field().Error("error", err))
		return
	}
	defer client.Stop()

	devices, err := client.ListDevices()
	if err != nil || len(devices) == 0 {
		log.Error("No MIDI devices found or error listing devices", log.Field().Error("error", err))
		return
	}
	fmt.Fprintln(os.Stderr, "Available MIDI devices:", devices)

	if err = client.SelectDevice(devices[0].Name); err != nil {
		log.Error("Failed to select MIDI device", log.Field().Error("error", err))
		return
	}

	sess, err := session.New(
		session.WithLogger(log),
		session.WithKey("gM"),
		session.WithInputMode("chord"),
	)
	if err != nil {
		log.Error("Failed to create session", log.Field().Error("error", err))
		return
	}

	eventChannel := make(chan contracts.MIDI, 100)
	client.StartCapture(eventChannel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Fprintln(os.Stderr, "Play something... Press Ctrl+C to exit.")
	_ = sess.Run(ctx, eventChannel)
}
