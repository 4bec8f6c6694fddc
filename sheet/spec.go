package sheet

import (
	"fmt"

	"github.com/npillmayer/sheets"
	"github.com/xlab/treeprint"
)

// Field is a field name together with its payload.
type Field struct {
	Name    string
	Payload interface{}
}

// F is a shortcut to create a Field.
func F(name string, payload interface{}) Field {
	return Field{Name: name, Payload: payload}
}

// Rule maps a selector to fields.
type Rule struct {
	Selector string
	Fields   []Field
}

// R is a shortcut to create a Rule.
func R(selector string, fields ...Field) Rule {
	return Rule{Selector: selector, Fields: fields}
}

// Layout is an ordered list of rules, i.e. the mapping
// selector -> field -> payload.
type Layout []Rule

// Partition is the layout for a responsive condition.
type Partition struct {
	Condition string
	Layout    Layout
}

// P is a shortcut to create a Partition.
func P(condition string, rules ...Rule) Partition {
	return Partition{Condition: condition, Layout: rules}
}

// Kind is the shape of a sheet.
type Kind uint8

// The two shapes of a sheet.
const (
	KindFlat        Kind = iota + 1 // selector -> field -> payload
	KindPartitioned                 // condition -> selector -> field -> payload
)

func (k Kind) String() string {
	switch k {
	case KindFlat:
		return "flat"
	case KindPartitioned:
		return "partitioned"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Spec is a sheet specification. Specs are immutable.
type Spec struct {
	kind  Kind
	flat  Layout
	parts []Partition
	index map[string]int // condition name -> position in parts
}

// NewFlat creates a flat sheet.
func NewFlat(layout Layout) (*Spec, error) {
	if err := checkLayout(layout, 2, ""); err != nil {
		return nil, err
	}
	return &Spec{kind: KindFlat, flat: copyLayout(layout)}, nil
}

// NewPartitioned creates a sheet partitioned by responsive conditions.
// Condition names must be unique. A partition may have an empty layout.
func NewPartitioned(parts ...Partition) (*Spec, error) {
	s := &Spec{kind: KindPartitioned, index: make(map[string]int, len(parts))}
	for _, p := range parts {
		if p.Condition == "" {
			return nil, sheets.Malformed(3, "partition without condition name")
		}
		if _, dup := s.index[p.Condition]; dup {
			return nil, sheets.Malformed(3, "condition %q partitioned more than once", p.Condition)
		}
		if err := checkLayout(p.Layout, 3, p.Condition); err != nil {
			return nil, err
		}
		s.index[p.Condition] = len(s.parts)
		s.parts = append(s.parts, Partition{Condition: p.Condition, Layout: copyLayout(p.Layout)})
	}
	return s, nil
}

// MustFlat is like NewFlat, but panics on error. It simplifies the
// definition of static sheets.
func MustFlat(rules ...Rule) *Spec {
	s, err := NewFlat(rules)
	if err != nil {
		panic(err)
	}
	return s
}

// MustPartitioned is like NewPartitioned, but panics on error.
func MustPartitioned(parts ...Partition) *Spec {
	s, err := NewPartitioned(parts...)
	if err != nil {
		panic(err)
	}
	return s
}

func checkLayout(layout Layout, depth int, condition string) error {
	for _, r := range layout {
		if r.Selector == "" {
			if condition != "" {
				return sheets.Malformed(depth, "empty selector in partition %q", condition)
			}
			return sheets.Malformed(depth, "empty selector")
		}
		for _, f := range r.Fields {
			if f.Name == "" {
				return sheets.Malformed(depth, "empty field name for selector %q", r.Selector)
			}
		}
	}
	return nil
}

func copyLayout(layout Layout) Layout {
	if layout == nil {
		return nil
	}
	l := make(Layout, len(layout))
	for i, r := range layout {
		l[i] = Rule{Selector: r.Selector, Fields: append([]Field(nil), r.Fields...)}
	}
	return l
}

// Kind returns the shape of the sheet.
func (s *Spec) Kind() Kind {
	return s.kind
}

// Depth returns the schema depth of the sheet: 2 for flat sheets and 3 for
// partitioned sheets.
func (s *Spec) Depth() int {
	if s.kind == KindPartitioned {
		return 3
	}
	return 2
}

// Layout returns the layout of a flat sheet, or nil for partitioned sheets.
// Clients must not modify the result.
func (s *Spec) Layout() Layout {
	return s.flat
}

// Partitions returns the partitions of a partitioned sheet in declaration
// order. Clients must not modify the result.
func (s *Spec) Partitions() []Partition {
	return s.parts
}

// Partition returns the layout for a condition.
func (s *Spec) Partition(condition string) (Layout, bool) {
	i, ok := s.index[condition]
	if !ok {
		return nil, false
	}
	return s.parts[i].Layout, true
}

// Fields returns the names of all fields used in the sheet, without
// duplicates, in order of first occurence.
func (s *Spec) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	collect := func(l Layout) {
		for _, r := range l {
			for _, f := range r.Fields {
				if !seen[f.Name] {
					seen[f.Name] = true
					fields = append(fields, f.Name)
				}
			}
		}
	}
	collect(s.flat)
	for _, p := range s.parts {
		collect(p.Layout)
	}
	return fields
}

// String prints the sheet as a tree.
func (s *Spec) String() string {
	printer := treeprint.New()
	switch s.kind {
	case KindFlat:
		printLayout(printer, s.flat)
	case KindPartitioned:
		for _, p := range s.parts {
			branch := printer.AddBranch("@" + p.Condition)
			printLayout(branch, p.Layout)
		}
	}
	return fmt.Sprintf("%s sheet\n%s", s.kind, printer.String())
}

func printLayout(printer treeprint.Tree, l Layout) {
	for _, r := range l {
		branch := printer.AddBranch(r.Selector)
		for _, f := range r.Fields {
			branch.AddNode(fmt.Sprintf("%s: %v", f.Name, f.Payload))
		}
	}
}
