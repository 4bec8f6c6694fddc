package sheet

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sheets"
)

func TestFlatSpec(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheets.sheet")
	defer teardown()
	//
	s := MustFlat(
		R(".box", F("color", "red"), F("width", 3)),
		R("p", F("color", "blue")),
	)
	if s.Kind() != KindFlat || s.Depth() != 2 {
		t.Errorf("expected flat sheet of depth 2, is %v/%d", s.Kind(), s.Depth())
	}
	if len(s.Layout()) != 2 || s.Layout()[0].Selector != ".box" {
		t.Errorf("expected layout to keep declaration order, is %v", s.Layout())
	}
	if f := s.Fields(); len(f) != 2 || f[0] != "color" || f[1] != "width" {
		t.Errorf("expected fields [color width], are %v", f)
	}
	if _, ok := s.Partition("xs"); ok {
		t.Error("flat sheet must not have partitions")
	}
}

func TestPartitionedSpec(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheets.sheet")
	defer teardown()
	//
	s := MustPartitioned(
		P("xs", R(".box", F("color", "red"))),
		P("sm", R(".box", F("color", "green"))),
	)
	if s.Kind() != KindPartitioned || s.Depth() != 3 {
		t.Errorf("expected partitioned sheet of depth 3, is %v/%d", s.Kind(), s.Depth())
	}
	l, ok := s.Partition("sm")
	if !ok || l[0].Fields[0].Payload != "green" {
		t.Errorf("expected partition sm to be green, is %v", l)
	}
	if s.Layout() != nil {
		t.Error("partitioned sheet must not have a flat layout")
	}
}

func TestPartitionedRejectsDuplicates(t *testing.T) {
	_, err := NewPartitioned(P("xs"), P("xs"))
	var merr *sheets.MalformedSheetError
	if !errors.As(err, &merr) || merr.Depth != 3 {
		t.Errorf("expected malformed sheet error of depth 3, got %v", err)
	}
}

func TestSpecIsImmutable(t *testing.T) {
	layout := Layout{R(".a", F("x", 1))}
	s, err := NewFlat(layout)
	if err != nil {
		t.Fatal(err)
	}
	layout[0].Selector = ".b"
	layout[0].Fields[0].Payload = 2
	if s.Layout()[0].Selector != ".a" || s.Layout()[0].Fields[0].Payload != 1 {
		t.Errorf("expected spec to be unaffected by changes to its input, is %v", s.Layout())
	}
}

func TestEmptySelectorIsMalformed(t *testing.T) {
	_, err := NewFlat(Layout{R("", F("x", 1))})
	if !errors.Is(err, sheets.ErrMalformedSheet) {
		t.Errorf("expected ErrMalformedSheet, got %v", err)
	}
}

func TestSpecString(t *testing.T) {
	s := MustPartitioned(P("md", R(".box", F("color", "red"))))
	out := s.String()
	t.Logf("\n%s", out)
	for _, expected := range []string{"partitioned sheet", "@md", ".box", "color: red"} {
		if !strings.Contains(out, expected) {
			t.Errorf("expected output to contain %q", expected)
		}
	}
}

func TestStore(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheets.sheet")
	defer teardown()
	//
	st := NewStore()
	first := MustFlat(R(".a", F("x", 1)))
	second := MustFlat(R(".a", F("x", 2)))
	if st.Define("s", first) {
		t.Error("expected first definition not to be a redefinition")
	}
	if !st.Define("s", second) {
		t.Error("expected second definition to be reported as redefinition")
	}
	got, err := st.Get("s")
	if err != nil || got != second {
		t.Errorf("expected latest definition to win, got %v, %v", got, err)
	}
	if _, err := st.Get("t"); !errors.Is(err, sheets.ErrUndefinedSheet) {
		t.Errorf("expected ErrUndefinedSheet, got %v", err)
	}
	st.Define("s", nil)
	if _, err := st.Get("s"); !errors.Is(err, sheets.ErrUndefinedSheet) {
		t.Errorf("expected nil definition to remove sheet, got %v", err)
	}
	if len(st.Names()) != 0 {
		t.Errorf("expected empty store, have %v", st.Names())
	}
}
