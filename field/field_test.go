package field

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sheets"
	"github.com/npillmayer/sheets/dom"
)

type elem string

func (e elem) QuerySelectorAll(string) ([]dom.Element, error) { return nil, nil }

func TestDispatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheets.field")
	defer teardown()
	//
	r := NewRegistry()
	var got []interface{}
	r.Register("color", func(target dom.Element, payload interface{}) {
		got = append(got, target, payload)
	})
	if err := r.Dispatch("color", elem("a"), "red"); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != elem("a") || got[1] != "red" {
		t.Errorf("expected action to receive target and payload, got %v", got)
	}
}

func TestDispatchUnknownField(t *testing.T) {
	r := NewRegistry()
	err := r.Dispatch("colour", elem("a"), "red")
	if !errors.Is(err, sheets.ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
	if !errors.Is(err, sheets.ErrConfiguration) {
		t.Errorf("expected unknown field to be a configuration error")
	}
}

func TestRegisterOverwrites(t *testing.T) {
	r := NewRegistry()
	calls := ""
	r.Register("f", func(dom.Element, interface{}) { calls += "1" })
	r.Register("f", func(dom.Element, interface{}) { calls += "2" })
	_ = r.Dispatch("f", elem("x"), nil)
	if calls != "2" {
		t.Errorf("expected later registration to win, calls = %q", calls)
	}
	if fs := r.Fields(); len(fs) != 1 || fs[0] != "f" || !r.Has("f") {
		t.Errorf("expected exactly field f, have %v", fs)
	}
}
