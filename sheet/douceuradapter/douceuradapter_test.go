package douceuradapter

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sheets"
	"github.com/npillmayer/sheets/dom/style"
	"github.com/npillmayer/sheets/sheet"
	"golang.org/x/net/html"
)

func TestFlatSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheets.sheet")
	defer teardown()
	//
	s, err := Parse(`
.box { color: red; width: 3 }
p    { color: blue }
`)
	if err != nil {
		t.Fatal(err)
	}
	if s.Kind() != sheet.KindFlat {
		t.Fatalf("expected flat sheet, is %v", s.Kind())
	}
	l := s.Layout()
	if len(l) != 2 || l[0].Selector != ".box" || l[1].Selector != "p" {
		t.Fatalf("unexpected layout %v", l)
	}
	if len(l[0].Fields) != 2 || l[0].Fields[1].Name != "width" {
		t.Fatalf("expected fields [color width], are %v", l[0].Fields)
	}
	if l[0].Fields[0].Payload != style.Property("red") {
		t.Errorf("expected payload to be property 'red', is %#v", l[0].Fields[0].Payload)
	}
}

func TestPartitionedSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheets.sheet")
	defer teardown()
	//
	s, err := Parse(`
@media xs { .box { color: red } }
@media sm, md { .box { color: green } }
@media xs { p { color: blue } }
`)
	if err != nil {
		t.Fatal(err)
	}
	if s.Kind() != sheet.KindPartitioned {
		t.Fatalf("expected partitioned sheet, is %v", s.Kind())
	}
	if len(s.Partitions()) != 3 {
		t.Fatalf("expected partitions xs, sm, md; have %v", s.Partitions())
	}
	xs, _ := s.Partition("xs")
	if len(xs) != 2 || xs[1].Selector != "p" {
		t.Errorf("expected repeated @media xs to accumulate, is %v", xs)
	}
	md, ok := s.Partition("md")
	if !ok || md[0].Fields[0].Payload != style.Property("green") {
		t.Errorf("expected md to share rules with sm, is %v", md)
	}
}

func TestMixedSheetIsMalformed(t *testing.T) {
	_, err := Parse(`
@media xs { .box { color: red } }
.box { color: blue }
`)
	if !errors.Is(err, sheets.ErrMalformedSheet) {
		t.Errorf("expected mixing rules and @media blocks to be malformed, got %v", err)
	}
	_, err = Parse(`@media xs { @media sm { .box { color: red } } }`)
	var merr *sheets.MalformedSheetError
	if !errors.As(err, &merr) || merr.Depth != 4 {
		t.Errorf("expected nested @media to be malformed with depth 4, got %v", err)
	}
	_, err = Parse(``)
	if !errors.As(err, &merr) || merr.Depth != 0 {
		t.Errorf("expected empty stylesheet to be malformed with depth 0, got %v", err)
	}
}

func TestExpandShorthands(t *testing.T) {
	s, err := Parse(`.box { padding: 1px 2px; color: red }`, ExpandShorthands())
	if err != nil {
		t.Fatal(err)
	}
	fields := s.Layout()[0].Fields
	if len(fields) != 5 || fields[0].Name != "padding-top" || fields[4].Name != "color" {
		t.Errorf("expected padding to be expanded into 4 fields, have %v", fields)
	}
}

func TestRuleAdapter(t *testing.T) {
	c, err := Parse(`.a { x: 1; y: 2; x: 3 }`)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(c.Layout()[0].Fields); n != 3 {
		t.Errorf("expected all declarations to become fields, have %d", n)
	}
}

func TestExtractSheets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheets.sheet")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(`<html><head>
<style>body { margin: 0 }</style>
<style type="text/x-sheet" data-sheet="cards">.card { color: red }</style>
</head><body>
<style type="text/x-sheet" data-sheet="nav">@media md { nav { display: inline } }</style>
<style type="text/x-sheet" data-sheet="cards">.card h1 { color: blue }</style>
</body></html>`))
	if err != nil {
		t.Fatal(err)
	}
	named, err := ExtractSheets(doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(named) != 2 || named[0].Name != "cards" || named[1].Name != "nav" {
		t.Fatalf("expected embedded sheets [cards nav], have %v", named)
	}
	if named[1].Spec.Kind() != sheet.KindPartitioned {
		t.Errorf("expected nav to be partitioned")
	}
	cards := named[0].Spec.Layout()
	if len(cards) != 2 || cards[0].Selector != ".card" || cards[1].Selector != ".card h1" {
		t.Errorf("expected style elements named cards to be merged in document order, have %v", cards)
	}
	_, err = ExtractSheets(mustParseHTML(t, `<style type="text/x-sheet" data-sheet="x">.a { b: c }</style>
<style type="text/x-sheet" data-sheet="x">@media md { .a { b: d } }</style>`))
	if !errors.Is(err, sheets.ErrMalformedSheet) {
		t.Errorf("expected merging flat and partitioned parts to be malformed, have %v", err)
	}
}

func mustParseHTML(t *testing.T, text string) *html.Node {
	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}
