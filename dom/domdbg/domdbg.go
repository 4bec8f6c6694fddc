/*
Package domdbg implements helpers to debug a DOM tree with sheets attached.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/sheets/dom"
	"github.com/npillmayer/sheets/dom/htmldom"
)

// Annotator returns the names of the sheets applied to an element, if any.
// (*engine.Engine).Applied is an Annotator.
type Annotator func(el dom.Element) []string

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname   string
	NodeTmpl   *template.Template
	EdgeTmpl   *template.Template
	SheetsTmpl *template.Template
	SheetEdge  *template.Template
}

// ToGraphViz outputs a diagram for a DOM tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of
// the DOM, a Writer, and an optional annotator. Elements the annotator
// reports sheets for are highlighted and linked to a list of their sheets.
//
// Only element nodes are drawn.
func ToGraphViz(root *htmldom.Node, w io.Writer, sheets Annotator) error {
	tmpl := template.Must(template.New("dom").Parse(graphHeadTmpl))
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.SheetsTmpl = template.Must(template.New("sheets").Parse(sheetsTmpl))
	gparams.SheetEdge = template.Must(template.New("sheetedge").Parse(sheetEdgeTmpl))
	if err := tmpl.Execute(w, gparams); err != nil {
		return err
	}
	g := &graph{w: w, params: &gparams, sheets: sheets, dict: make(map[*htmldom.Node]string)}
	if err := g.nodes(root); err != nil {
		return err
	}
	_, err := w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a DOM node and a testing.T, it will
// create a Graphiviz image of the DOM tree under `root` and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(root *htmldom.Node, sheets Annotator, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(root, tmpfile, sheets); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing DOM tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type graph struct {
	w      io.Writer
	params *graphParamsType
	sheets Annotator
	dict   map[*htmldom.Node]string
}

type node struct {
	Name  string
	Label string
	Bound bool
}

type edge struct {
	From, To string
}

type sheetList struct {
	Name   string
	Sheets []string
}

func (g *graph) name(n *htmldom.Node) string {
	name := g.dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(g.dict)+1)
		g.dict[n] = name
	}
	return name
}

func (g *graph) nodes(n *htmldom.Node) error {
	if err := g.domNode(n); err != nil {
		return err
	}
	for _, ch := range n.Children() {
		if err := g.nodes(ch); err != nil {
			return err
		}
		if err := g.params.EdgeTmpl.Execute(g.w, edge{g.name(n), g.name(ch)}); err != nil {
			return err
		}
	}
	return nil
}

func (g *graph) domNode(n *htmldom.Node) error {
	var applied []string
	if g.sheets != nil {
		applied = g.sheets(n)
	}
	name := g.name(n)
	if err := g.params.NodeTmpl.Execute(g.w, node{name, Label(n), len(applied) > 0}); err != nil {
		return err
	}
	if len(applied) == 0 {
		return nil
	}
	list := sheetList{Name: "sheets_" + name, Sheets: applied}
	if err := g.params.SheetsTmpl.Execute(g.w, list); err != nil {
		return err
	}
	return g.params.SheetEdge.Execute(g.w, edge{name, list.Name})
}

// Label is a short CSS-like description of an element, e.g., "div#main.box".
func Label(n *htmldom.Node) string {
	var b strings.Builder
	b.WriteString(n.TagName())
	if b.Len() == 0 {
		b.WriteString("#document")
	}
	if id, ok := n.Attribute("id"); ok && id != "" {
		b.WriteString("#" + id)
	}
	if class, ok := n.Attribute("class"); ok {
		for _, c := range strings.Fields(class) {
			b.WriteString("." + c)
		}
	}
	return b.String()
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if .Bound }}{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=gold penwidth=2 ] ;
{{ else }}{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}`

const sheetsTmpl = `{{ .Name }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center"><font color="white">sheets</font></td></tr>
      {{ range .Sheets }}<tr><td>{{ . }}</td></tr>
      {{ end }}</table>> ] ;
`

const domEdgeTmpl = `{{ .From }} -> {{ .To }} [weight=1] ;
`

const sheetEdgeTmpl = `{{ .From }} -> {{ .To }} [dir=none weight=1 style="dashed"] ;
`
