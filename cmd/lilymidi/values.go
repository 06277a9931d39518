package main

import (
	"fmt"
	"strings"

	"github.com/leandrodaf/lilymidi/internal/command"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(valuesCmd)
}

var valuesCmd = &cobra.Command{
	Use:       "values [enumeration]",
	Short:     "Print the accepted values of the notation settings",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: command.Enumerations(),
	RunE: func(cmd *cobra.Command, args []string) error {
		names := command.Enumerations()
		if len(args) == 1 {
			names = args
		}
		for _, name := range names {
			values, err := command.Values(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", name)
			for _, v := range values {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-14s %s\n", v.Name, strings.Join(v.Aliases, " "))
			}
		}
		return nil
	},
}
