package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(devicesCmd)
}

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List MIDI input devices",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := newClient()
		if err != nil {
			return err
		}
		defer client.Stop()

		devices, err := client.ListDevices()
		if err != nil {
			return err
		}
		for _, d := range devices {
			if d.Manufacturer != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", d.Name, d.Manufacturer)
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.Name)
		}
		return nil
	},
}
