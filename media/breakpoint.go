package media

import (
	"fmt"

	"github.com/npillmayer/sheets/css"
	"github.com/npillmayer/sheets/dom"
	"github.com/pelletier/go-toml/v2"
)

// Breakpoint is a condition on the width of a viewport: it holds if the
// viewport is at least MinWidth wide.
type Breakpoint struct {
	Name     string
	MinWidth css.DimenT // css.Auto() for "always"
	Priority int
}

// DefaultBreakpoints returns the standard set of breakpoints
// xs (always), sm (≥768px), md (≥992px) and lg (≥1200px),
// in ascending priority.
func DefaultBreakpoints() []Breakpoint {
	return []Breakpoint{
		{Name: "xs", MinWidth: css.Auto(), Priority: 0},
		{Name: "sm", MinWidth: css.Px(768), Priority: 1},
		{Name: "md", MinWidth: css.Px(992), Priority: 2},
		{Name: "lg", MinWidth: css.Px(1200), Priority: 3},
	}
}

// Predicate returns a predicate testing the breakpoint against a viewport.
func (bp Breakpoint) Predicate(vp dom.Viewport) Predicate {
	threshold := bp.MinWidth
	return func() bool {
		return css.AtLeast(vp.Width(), threshold)
	}
}

// RegisterBreakpoints registers breakpoints as conditions on a viewport.
func RegisterBreakpoints(r *Registry, vp dom.Viewport, bps ...Breakpoint) {
	for _, bp := range bps {
		r.Register(bp.Name, bp.Predicate(vp), bp.Priority)
	}
}

// --- Configuration ---------------------------------------------------------

// BreakpointConfig is the serialized form of a breakpoint.
// A minimum width of 0 means "always".
type BreakpointConfig struct {
	Name     string `toml:"name"`
	MinWidth int    `toml:"min-width"` // CSS pixels
	Priority int    `toml:"priority"`
}

type breakpointFile struct {
	Breakpoints []BreakpointConfig `toml:"breakpoint"`
}

// ParseBreakpoints reads breakpoints from a TOML document of the form
//
//     [[breakpoint]]
//     name = "xs"
//     min-width = 0
//     priority = 0
//
func ParseBreakpoints(data []byte) ([]Breakpoint, error) {
	var f breakpointFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("cannot read breakpoints: %w", err)
	}
	bps := make([]Breakpoint, 0, len(f.Breakpoints))
	seen := make(map[string]bool)
	for i, c := range f.Breakpoints {
		if c.Name == "" {
			return nil, fmt.Errorf("breakpoint #%d has no name", i+1)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("breakpoint %q defined more than once", c.Name)
		}
		if c.MinWidth < 0 {
			return nil, fmt.Errorf("breakpoint %q has negative min-width", c.Name)
		}
		seen[c.Name] = true
		bp := Breakpoint{Name: c.Name, MinWidth: css.Auto(), Priority: c.Priority}
		if c.MinWidth > 0 {
			bp.MinWidth = css.Px(c.MinWidth)
		}
		bps = append(bps, bp)
	}
	tracer().Debugf("read %d breakpoint(s) from configuration", len(bps))
	return bps, nil
}
