package main

import (
	"github.com/performancecopilot/bytestream"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type options struct {
	layout     string
	values     string
	config     string
	out        string
	hex        bool
	zstd       bool
	verbose    bool
	guardLimit int
}

// streamConfig builds the stream configuration from the package defaults, an
// optional config file and the --guard-limit flag
func (o *options) streamConfig() (bytestream.Config, error) {
	c := bytestream.DefaultConfig()

	if o.config != "" {
		var err error
		if c, err = bytestream.LoadConfig(o.config); err != nil {
			return c, err
		}
	}

	if o.guardLimit < 0 {
		return c, errors.Errorf("invalid --guard-limit %d", o.guardLimit)
	}
	if o.guardLimit > 0 {
		c.GuardLimit = o.guardLimit
	}

	return c, nil
}

func newRootCmd() *cobra.Command {
	o := new(options)

	root := &cobra.Command{
		Use:   "bsdump",
		Short: "Encode and decode binary records described by a YAML layout",
		Long: `bsdump reads and writes binary records whose fields are laid out as
described by a YAML layout file, using the bytestream codec for fixed width
numbers, varints, strings, buffers and UUIDs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if o.verbose {
				bytestream.SetLogWriters(cmd.ErrOrStderr())
				bytestream.EnableLogging(true)
			}
		},
	}

	root.PersistentFlags().StringVar(&o.config, "config", "", "KEY=VALUE file with stream settings")
	root.PersistentFlags().IntVar(&o.guardLimit, "guard-limit", 0, "maximum size of the stream in bytes (default 2MiB)")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "log stream growth to stderr")

	root.AddCommand(newDecodeCmd(o), newEncodeCmd(o), newVersionCmd())
	return root
}
