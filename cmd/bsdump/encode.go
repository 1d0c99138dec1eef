package main

import (
	"github.com/performancecopilot/bytestream/layout"
	"github.com/spf13/cobra"
)

func newEncodeCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode field values into a record",
		Long: `Encode writes the values of a YAML mapping, keyed by field name, in the order
of the layout. The record is printed as hex unless --out names a file to write
the raw bytes to.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := layout.Load(o.layout)
			if err != nil {
				return err
			}

			values, err := layout.LoadValues(o.values)
			if err != nil {
				return err
			}

			c, err := o.streamConfig()
			if err != nil {
				return err
			}

			data, err := l.Encode(values, c)
			if err != nil {
				return err
			}

			if o.zstd {
				if data, err = compress(data); err != nil {
					return err
				}
			}

			return writeOutput(o.out, cmd.OutOrStdout(), data)
		},
	}

	cmd.Flags().StringVarP(&o.layout, "layout", "l", "", "YAML layout of the record")
	cmd.Flags().StringVar(&o.values, "values", "", "YAML mapping of field names to values")
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "write the raw record to this file instead of printing hex")
	cmd.Flags().BoolVar(&o.zstd, "zstd", false, "compress the record with zstd")
	_ = cmd.MarkFlagRequired("layout")
	_ = cmd.MarkFlagRequired("values")
	return cmd
}
