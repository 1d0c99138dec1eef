package main

import (
	"fmt"

	"github.com/performancecopilot/bytestream"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the bsdump version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "bsdump version %s\n", bytestream.Version)
			return err
		},
	}
}
