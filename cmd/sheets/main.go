/*
Command sheets applies sheets to HTML documents and prints what happens.

	sheets apply --html page.html --sheets layout.yaml --root '#main' --width 1024 --resize 600,1280
	sheets print layout.yaml layout.css

Every field used by a sheet is bound to an action echoing the element, the
field and the payload, thus the output shows the passes an application of
sheets would perform on a host.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// tracer traces with key 'sheets.cli'.
func tracer() tracing.Trace {
	return tracing.Select("sheets.cli")
}

var traceKeys = []string{"sheets.cli", "sheets.engine", "sheets.field", "sheets.media", "sheets.sheet", "sheets.dom"}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Expand  bool // expand CSS shorthand properties
}

// NewRootCommand creates the root command for the sheets CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "Apply responsive sheets to HTML documents",
		Long: `Sheets binds declarative, responsive sheets to elements of an HTML
document and echoes every field dispatched to the elements.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := tracing.LevelError
			if opts.Verbose {
				level = tracing.LevelDebug
			}
			for _, key := range traceKeys {
				tracing.Select(key).SetTraceLevel(level)
			}
			return nil
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "trace at debug level")
	cmd.PersistentFlags().BoolVar(&opts.Expand, "expand", false, "expand CSS shorthand properties")
	cmd.AddCommand(NewApplyCommand(opts))
	cmd.AddCommand(NewPrintCommand(opts))
	return cmd
}

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
