package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewPrintCommand creates the print command.
func NewPrintCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "print <sheet-file>...",
		Short:         "Print sheets as trees",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrint(rootOpts, args, cmd.OutOrStdout())
		},
	}
	return cmd
}

func runPrint(rootOpts *RootOptions, paths []string, out io.Writer) error {
	named, err := loadSheets(paths, rootOpts)
	if err != nil {
		return err
	}
	for _, n := range named {
		fmt.Fprintf(out, "sheet %q\n%s", n.Name, n.Spec)
	}
	return nil
}
