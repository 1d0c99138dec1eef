package main

import (
	"github.com/performancecopilot/bytestream/layout"
	"github.com/spf13/cobra"
)

func newDecodeCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode a record and print its fields",
		Long: `Decode reads a record from file, or stdin when file is - or missing, and
prints every field of the layout with its offset and value.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := layout.Load(o.layout)
			if err != nil {
				return err
			}

			c, err := o.streamConfig()
			if err != nil {
				return err
			}

			file := "-"
			if len(args) == 1 {
				file = args[0]
			}

			data, err := readInput(file, cmd.InOrStdin(), o.hex)
			if err != nil {
				return err
			}

			d, err := l.Decode(data, c)
			if err != nil {
				return err
			}

			return layout.Write(cmd.OutOrStdout(), d)
		},
	}

	cmd.Flags().StringVarP(&o.layout, "layout", "l", "", "YAML layout of the record")
	cmd.Flags().BoolVar(&o.hex, "hex", false, "input is hex text")
	_ = cmd.MarkFlagRequired("layout")
	return cmd
}
