package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/sheets/dom/htmldom"
	"github.com/npillmayer/sheets/media"
	"github.com/npillmayer/sheets/sheet"
	"github.com/npillmayer/sheets/sheet/douceuradapter"
)

// loadSheets reads sheets from YAML or CSS files. A YAML file may define
// any number of named sheets, a CSS file defines a single sheet named after
// the file.
func loadSheets(paths []string, opts *RootOptions) ([]sheet.Named, error) {
	var all []sheet.Named
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		ext := filepath.Ext(path)
		switch strings.ToLower(ext) {
		case ".yaml", ".yml":
			named, err := sheet.ParseYAMLSheets(data)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			all = append(all, named...)
		case ".css":
			spec, err := douceuradapter.Parse(string(data), cssOptions(opts)...)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			name := strings.TrimSuffix(filepath.Base(path), ext)
			all = append(all, sheet.Named{Name: name, Spec: spec})
		default:
			return nil, fmt.Errorf("%s: unknown sheet format %q", path, ext)
		}
		tracer().Debugf("loaded sheets from %s", path)
	}
	return all, nil
}

// embeddedSheets extracts the sheets embedded into an HTML document.
func embeddedSheets(doc *htmldom.Document, opts *RootOptions) ([]sheet.Named, error) {
	return douceuradapter.ExtractSheets(doc.Root().HTMLNode(), cssOptions(opts)...)
}

func cssOptions(opts *RootOptions) []douceuradapter.Option {
	if opts.Expand {
		return []douceuradapter.Option{douceuradapter.ExpandShorthands()}
	}
	return nil
}

// loadBreakpoints reads breakpoints from a TOML file, or returns the
// default breakpoints for an empty path.
func loadBreakpoints(path string) ([]media.Breakpoint, error) {
	if path == "" {
		return media.DefaultBreakpoints(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	bps, err := media.ParseBreakpoints(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bps, nil
}

func loadHTML(path string) (*htmldom.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return htmldom.Parse(f)
}
