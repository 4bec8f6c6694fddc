package engine

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sheets/dom"
	"github.com/npillmayer/sheets/sheet"
)

type elem string

func (e elem) QuerySelectorAll(string) ([]dom.Element, error) { return nil, nil }

func TestBindingTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheets.engine")
	defer teardown()
	//
	tab := newBindingTable()
	a, created := tab.bind(elem("a"))
	if !created || a.id != 1 {
		t.Fatalf("expected new binding #1, have #%d (created=%v)", a.id, created)
	}
	b, _ := tab.bind(elem("b"))
	if again, created := tab.bind(elem("a")); created || again != a {
		t.Errorf("expected binding of a to be re-used")
	}
	spec := sheet.MustFlat(sheet.R("p", sheet.F("color", "red")))
	a.sheets = []applied{{"x", spec}, {"y", spec}}
	if n := a.names(); len(n) != 2 || n[0] != "x" || n[1] != "y" {
		t.Errorf("expected sheets [x y], have %v", n)
	}
	if removed := tab.remove(elem("a")); removed != a {
		t.Errorf("expected binding of a to be removed")
	}
	a.disconnect()
	if n := a.names(); len(n) != 0 {
		t.Errorf("expected unbound binding to drop its sheets, have %v", n)
	}
	if tab.lookup(elem("a")) != nil || tab.isBound(a) {
		t.Errorf("a is still bound")
	}
	c, _ := tab.bind(elem("a"))
	if c.id != 3 {
		t.Errorf("expected ids to be monotonic, have #%d", c.id)
	}
	if s := tab.snapshot(); len(s) != 2 || s[0] != b || s[1] != c {
		t.Errorf("expected bindings in order of binding, have %v", s)
	}
	if x := tab.remove(elem("z")); x != nil {
		t.Errorf("removing an unbound element must be a no-op")
	}
}
