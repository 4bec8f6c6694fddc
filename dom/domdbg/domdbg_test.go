package domdbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sheets/dom"
	"github.com/npillmayer/sheets/dom/htmldom"
)

func TestToGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sheets.dom")
	defer teardown()
	//
	doc, err := htmldom.ParseString(`<html><body><div id="main" class="box wide"><p>Hello</p></div></body></html>`)
	if err != nil {
		t.Fatal(err)
	}
	main, _ := doc.QuerySelector("#main")
	annotate := func(el dom.Element) []string {
		if el == dom.Element(main) {
			return []string{"layout", "colors"}
		}
		return nil
	}
	var out bytes.Buffer
	if err := ToGraphViz(doc.Root(), &out, annotate); err != nil {
		t.Fatal(err)
	}
	dot := out.String()
	if !strings.HasPrefix(dot, "digraph g {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("expected a digraph, have %q", dot)
	}
	for _, s := range []string{`"#document"`, `"div#main.box.wide"`, `"p"`, "fillcolor=gold",
		"<td>layout</td>", "<td>colors</td>", `style="dashed"`} {
		if !strings.Contains(dot, s) {
			t.Errorf("expected output to contain %s", s)
		}
	}
	if n := strings.Count(dot, "fillcolor=gold"); n != 1 {
		t.Errorf("expected exactly one bound element, have %d", n)
	}
}
