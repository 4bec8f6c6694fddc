/*
Package douceuradapter reads sheets written in CSS syntax.

A flat sheet is a plain list of CSS rules, where every declaration names a
field and its payload:

    .box   { color: red; width: 3 }
    p      { color: blue }

A partitioned sheet wraps the rules into @media blocks, the prelude of which
names one or more responsive conditions:

    @media xs     { .box { color: red } }
    @media sm, md { .box { color: green } }

Payloads are of type style.Property. Parsing is done by
github.com/aymerick/douceur.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sheets"
	"github.com/npillmayer/sheets/dom/style"
	"github.com/npillmayer/sheets/sheet"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'sheets.sheet'.
func tracer() tracing.Trace {
	return tracing.Select("sheets.sheet")
}

// MediaType is the type attribute of <style> elements holding sheets.
const MediaType = "text/x-sheet"

// Option configures the conversion of CSS into sheets.
type Option func(*options)

type options struct {
	expand bool
}

// ExpandShorthands splits shortcut properties like "padding" into their
// individual fields ("padding-top", …).
func ExpandShorthands() Option {
	return func(o *options) {
		o.expand = true
	}
}

// CSSSheet is an adapter for a douceur stylesheet.
type CSSSheet struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into a CSSSheet.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSSheet {
	return &CSSSheet{*css}
}

// Parse reads a sheet in CSS syntax.
func Parse(text string, opts ...Option) (*sheet.Spec, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}
	return Wrap(c).Spec(opts...)
}

// Empty checks if this stylesheet contains any rules.
func (s *CSSSheet) Empty() bool {
	return len(s.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
func (s *CSSSheet) AppendRules(other *CSSSheet) {
	s.css.Rules = append(s.css.Rules, other.css.Rules...)
}

// Spec converts the stylesheet into a sheet. Top-level rules make up a flat
// sheet, @media blocks a partitioned one; mixing both is an error.
func (s *CSSSheet) Spec(opts ...Option) (*sheet.Spec, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if s.Empty() {
		return nil, sheets.Malformed(0, "empty stylesheet")
	}
	depth := ruleDepth(s.css.Rules[0])
	switch depth {
	case 2:
		layout, err := layout(s.css.Rules, o)
		if err != nil {
			return nil, err
		}
		return sheet.NewFlat(layout)
	case 3:
		var parts []sheet.Partition
		index := make(map[string]int)
		for _, r := range s.css.Rules {
			if d := ruleDepth(r); d != 3 {
				return nil, sheets.Malformed(3, "rule %q outside of @media block", r.Prelude)
			}
			l, err := layout(r.Rules, o)
			if err != nil {
				return nil, err
			}
			for _, cond := range conditions(r.Prelude) {
				if i, ok := index[cond]; ok { // repeated @media blocks accumulate
					parts[i].Layout = append(parts[i].Layout, l...)
					continue
				}
				index[cond] = len(parts)
				parts = append(parts, sheet.Partition{Condition: cond, Layout: append(sheet.Layout(nil), l...)})
			}
		}
		return sheet.NewPartitioned(parts...)
	}
	return nil, sheets.Malformed(depth, "")
}

// ruleDepth measures a rule like the depth of a sheet: qualified rules have
// depth 2, @media blocks 1 + the depth of their first embedded rule.
// Other at-rules have depth 1.
func ruleDepth(r *css.Rule) int {
	if r.Kind == css.QualifiedRule {
		return 2
	}
	if r.Name != "@media" || len(r.Rules) == 0 {
		return 1
	}
	return 1 + ruleDepth(r.Rules[0])
}

func conditions(prelude string) []string {
	var conds []string
	for _, c := range strings.Split(prelude, ",") {
		if c = strings.TrimSpace(c); c != "" {
			conds = append(conds, c)
		}
	}
	return conds
}

func layout(rules []*css.Rule, o *options) (sheet.Layout, error) {
	l := make(sheet.Layout, 0, len(rules))
	for _, r := range rules {
		if r.Kind != css.QualifiedRule {
			return nil, sheets.Malformed(ruleDepth(r)+1, "unexpected at-rule %s %s", r.Name, r.Prelude)
		}
		fields, err := Rule(*r).Fields(o.expand)
		if err != nil {
			return nil, err
		}
		l = append(l, sheet.Rule{Selector: Rule(*r).Selector(), Fields: fields})
	}
	return l, nil
}

// Rule is an adapter for a douceur CSS rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return strings.TrimSpace(r.Prelude)
}

// Fields converts the declarations of the rule to sheet fields, in
// declaration order.
func (r Rule) Fields(expand bool) ([]sheet.Field, error) {
	fields := make([]sheet.Field, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		value := style.Property(strings.TrimSpace(d.Value))
		if expand && style.IsCompound(d.Property) {
			kv, err := style.SplitCompoundProperty(d.Property, value)
			if err != nil {
				return nil, fmt.Errorf("rule %q: %w", r.Selector(), err)
			}
			for _, x := range kv {
				fields = append(fields, sheet.F(x.Key, x.Value))
			}
			continue
		}
		fields = append(fields, sheet.F(d.Property, value))
	}
	return fields, nil
}

// ExtractSheets visits an HTML parse tree and searches for embedded
// sheets, i.e. <style> elements of type "text/x-sheet". The name of a sheet
// is taken from attribute data-sheet. Elements sharing a name are merged into
// a single sheet, in document order. Sheets are returned in order of their
// first appearance.
func ExtractSheets(htmldoc *html.Node, opts ...Option) ([]sheet.Named, error) {
	var names []string
	collected := make(map[string]*CSSSheet)
	var err error
	walk(htmldoc, func(h *html.Node) bool {
		if h.Type != html.ElementNode || h.DataAtom != atom.Style || attr(h, "type") != MediaType {
			return true
		}
		name := attr(h, "data-sheet")
		if name == "" {
			err = fmt.Errorf("embedded sheet without data-sheet attribute")
			return false
		}
		var text strings.Builder
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type == html.TextNode {
				text.WriteString(ch.Data)
			}
		}
		var c *css.Stylesheet
		if c, err = parser.Parse(text.String()); err != nil {
			err = fmt.Errorf("sheet %q: %w", name, err)
			return false
		}
		if s, ok := collected[name]; ok {
			tracer().Debugf("appending rules to embedded sheet %q", name)
			s.AppendRules(Wrap(c))
			return true
		}
		names = append(names, name)
		collected[name] = Wrap(c)
		return true
	})
	if err != nil {
		return nil, err
	}
	named := make([]sheet.Named, 0, len(names))
	for _, name := range names {
		spec, err := collected[name].Spec(opts...)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		tracer().Debugf("extracted embedded sheet %q", name)
		named = append(named, sheet.Named{Name: name, Spec: spec})
	}
	return named, nil
}

func walk(h *html.Node, f func(*html.Node) bool) bool {
	if h == nil {
		return true
	}
	if !f(h) {
		return false
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if !walk(ch, f) {
			return false
		}
	}
	return true
}

func attr(h *html.Node, key string) string {
	for _, a := range h.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
