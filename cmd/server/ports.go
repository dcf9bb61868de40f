package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/quentinrf/plant-monitor/services/moisture-service/internal/adapters/serial"
)

func newPortsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List serial ports usable as console or sensor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := serial.Ports()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(names) == 0 {
				color.New(color.FgYellow).Fprintln(out, "no serial ports found")
				return nil
			}
			for _, name := range names {
				color.New(color.FgGreen).Fprint(out, "  ● ")
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}
