package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/sheets/dom"
	"github.com/npillmayer/sheets/dom/domdbg"
	"github.com/npillmayer/sheets/dom/htmldom"
	"github.com/npillmayer/sheets/engine"
	"github.com/npillmayer/sheets/field"
	"github.com/npillmayer/sheets/sheet"
	"github.com/spf13/cobra"
)

// ApplyOptions holds the flags of the apply command.
type ApplyOptions struct {
	HTML        string
	Sheets      []string
	Root        string
	Width       int
	Resize      []int
	Breakpoints string
	Dot         string
}

// NewApplyCommand creates the apply command.
func NewApplyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ApplyOptions{}
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply sheets to an element of an HTML document",
		Long: `Apply binds every sheet to the root element, in order, and echoes
the fields dispatched. Sheets are read from YAML or CSS files, or, if no
sheet file is given, from <style type="text/x-sheet"> elements of the
document. Each --resize width triggers another pass over all sheets.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(rootOpts, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringVar(&opts.HTML, "html", "", "HTML document (required)")
	cmd.Flags().StringSliceVar(&opts.Sheets, "sheets", nil, "sheet files (.yaml, .css)")
	cmd.Flags().StringVar(&opts.Root, "root", "body", "selector of the element to bind")
	cmd.Flags().IntVar(&opts.Width, "width", 1024, "initial viewport width in px")
	cmd.Flags().IntSliceVar(&opts.Resize, "resize", nil, "viewport widths to resize to, in order")
	cmd.Flags().StringVar(&opts.Breakpoints, "breakpoints", "", "TOML file of breakpoints")
	cmd.Flags().StringVar(&opts.Dot, "dot", "", "write a GraphViz diagram of the document to this file")
	_ = cmd.MarkFlagRequired("html")
	return cmd
}

func runApply(rootOpts *RootOptions, opts *ApplyOptions, out, errout io.Writer) error {
	doc, err := loadHTML(opts.HTML)
	if err != nil {
		return err
	}
	var named []sheet.Named
	if len(opts.Sheets) > 0 {
		named, err = loadSheets(opts.Sheets, rootOpts)
	} else {
		named, err = embeddedSheets(doc, rootOpts)
	}
	if err != nil {
		return err
	}
	if len(named) == 0 {
		return fmt.Errorf("no sheets to apply")
	}
	bps, err := loadBreakpoints(opts.Breakpoints)
	if err != nil {
		return err
	}
	root, err := doc.QuerySelector(opts.Root)
	if err != nil {
		return err
	}
	if root == nil {
		return fmt.Errorf("no element matches %q", opts.Root)
	}
	//
	var failed error
	win := htmldom.NewWindow(opts.Width)
	e := engine.New(doc,
		engine.WithBreakpoints(win, bps...),
		engine.WithResizeSignal(win),
		engine.WithWarningHandler(func(err error) {
			fmt.Fprintf(errout, "warning: %v\n", err)
		}),
		engine.WithErrorHandler(func(err error) {
			if failed == nil {
				failed = err
			}
		}),
	)
	defer e.Close()
	fields := make(map[string]bool)
	for _, n := range named {
		e.DefineSheet(n.Name, n.Spec)
		for _, f := range n.Spec.Fields() {
			if !fields[f] {
				fields[f] = true
				e.RegisterFieldAction(f, echo(out, f))
			}
		}
	}
	for _, n := range named {
		fmt.Fprintf(out, "apply %q to %s\n", n.Name, domdbg.Label(root))
		if err := e.ApplySheet(root, n.Name); err != nil {
			return err
		}
		printConditions(out, e)
	}
	for _, px := range opts.Resize {
		fmt.Fprintf(out, "resize to %dpx\n", px)
		win.Resize(px)
		if failed != nil {
			return failed
		}
		printConditions(out, e)
	}
	if opts.Dot != "" {
		return writeDot(opts.Dot, doc, e)
	}
	return nil
}

// echo creates a field action printing the dispatch.
func echo(out io.Writer, fieldName string) field.Action {
	return func(target dom.Element, payload interface{}) {
		label := fmt.Sprintf("%v", target)
		if n, ok := target.(*htmldom.Node); ok {
			label = domdbg.Label(n)
		}
		fmt.Fprintf(out, "  %s: %s = %v\n", label, fieldName, payload)
	}
}

func printConditions(out io.Writer, e *engine.Engine) {
	conds, err := e.Conditions()
	if err != nil {
		fmt.Fprintln(out, "  conditions: none")
		return
	}
	names := make([]string, len(conds))
	for i, c := range conds {
		names[i] = c.Name
	}
	fmt.Fprintf(out, "  conditions: %s\n", strings.Join(names, " "))
}

func writeDot(path string, doc *htmldom.Document, e *engine.Engine) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := domdbg.ToGraphViz(doc.Root(), f, e.Applied); err != nil {
		f.Close()
		return err
	}
	tracer().Infof("wrote DOM diagram to %s", path)
	return f.Close()
}
