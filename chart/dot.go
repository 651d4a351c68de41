package chart

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/iand/kintree/model"
)

type DotBuffer struct {
	buf    bytes.Buffer
	indent int
	err    error
}

func (d *DotBuffer) Println(s string) {
	if d.err != nil {
		return
	}
	if _, err := d.buf.WriteString(strings.Repeat("\t", d.indent)); err != nil {
		d.err = err
		return
	}
	if _, err := d.buf.WriteString(s); err != nil {
		d.err = err
		return
	}
	if _, err := d.buf.WriteString("\n"); err != nil {
		d.err = err
		return
	}
}

func (d *DotBuffer) Printf(f string, args ...interface{}) {
	if d.err != nil {
		return
	}
	d.Println(fmt.Sprintf(f, args...))
}

func (d *DotBuffer) Indent() {
	if d.err != nil {
		return
	}
	d.indent++
}

func (d *DotBuffer) Unindent() {
	if d.err != nil {
		return
	}
	d.indent--
}

type DotEdge struct {
	From  string
	To    string
	Attrs []DotAttrFunc
}

type DotNode struct {
	ID      string
	Comment string
	Attrs   []DotAttrFunc
}

type DotAttrFunc func(b *DotBuffer)

func DotKV(k, v string) DotAttrFunc {
	return func(b *DotBuffer) {
		b.Printf(`%s=%s`, k, v)
	}
}

// DotChart renders the descendants of one person as a Graphviz digraph.
// Individuals become labelled nodes; each partnered family unit gets an
// invisible junction node its children hang from.
type DotChart struct {
	nodes       []*DotNode
	edges       []*DotEdge
	generations map[int][]string
}

func NewDotChart() *DotChart {
	return &DotChart{
		generations: make(map[int][]string),
	}
}

func (d *DotChart) Draw(pop model.Population, root *model.Person) ([]byte, error) {
	d.descend(pop, root, 0, make(map[int]bool))

	b := &DotBuffer{}

	b.Printf(`digraph {`)
	b.Indent()
	b.Println(`// top to bottom layout`)
	b.Println(`rankdir="TB"`)
	b.Println(`// Use straight edges`)
	b.Println(`splines=ortho`)

	b.Println(``)
	b.Println(`graph [`)
	b.Indent()
	b.Println(`center=true`)
	b.Println(`margin=0.2`)
	b.Println(`nodesep=0.1`)
	b.Println(`ranksep=0.3`)
	b.Unindent()
	b.Println(`]`)

	b.Println(``)
	b.Println(`node [`)
	b.Indent()
	b.Println(`shape=box`)
	b.Println(`fontname="Helvetica"`)
	b.Unindent()
	b.Println(`]`)

	b.Println(``)
	b.Println(`edge [`)
	b.Indent()
	b.Println(`arrowhead=none`)
	b.Println(`penwidth=2`)
	b.Println(`color="#999999"`)
	b.Unindent()
	b.Println(`]`)

	for _, n := range d.nodes {
		b.Println(``)
		if n.Comment != "" {
			b.Printf(`// %s`, n.Comment)
		}
		b.Printf(`%s [`, n.ID)
		b.Indent()
		for _, afn := range n.Attrs {
			afn(b)
		}
		b.Unindent()
		b.Println(`]`)
	}

	for _, e := range d.edges {
		b.Println(``)
		b.Printf(`%s -> %s [`, e.From, e.To)
		b.Indent()
		for _, afn := range e.Attrs {
			afn(b)
		}
		b.Unindent()
		b.Println(`]`)
	}

	for gen, ids := range d.generations {
		b.Println(``)
		b.Printf(`subgraph gen%d {`, gen)
		b.Indent()
		b.Println(`rank="same"`)
		for _, id := range ids {
			b.Println(id)
		}
		b.Unindent()
		b.Println(`}`)
	}

	b.Unindent()
	b.Println(`}`)

	if b.err != nil {
		return nil, b.err
	}
	return b.buf.Bytes(), nil
}

func (d *DotChart) descend(pop model.Population, p *model.Person, generation int, done map[int]bool) {
	if done[p.ID] {
		return
	}
	done[p.ID] = true
	d.addIndividualNode(p)
	d.generations[generation] = append(d.generations[generation], nodeID(p))

	if !p.HasPartner() && len(p.ChildIDs) == 0 {
		return
	}

	famNode := &DotNode{
		ID:      fmt.Sprintf("fam_%d", p.ID),
		Comment: p.FullName(),
		Attrs: []DotAttrFunc{
			DotKV("shape", "point"),
			DotKV("style", "invis"),
		},
	}
	d.nodes = append(d.nodes, famNode)
	d.generations[generation] = append(d.generations[generation], famNode.ID)

	d.edges = append(d.edges, &DotEdge{
		From: nodeID(p) + ":e",
		To:   famNode.ID + ":w",
		Attrs: []DotAttrFunc{
			DotKV("color", `"black:invis:black"`),
		},
	})

	if partner, ok := pop.Get(p.PartnerID); ok {
		if !done[partner.ID] {
			done[partner.ID] = true
			d.addIndividualNode(partner)
			d.generations[generation] = append(d.generations[generation], nodeID(partner))
		}
		d.edges = append(d.edges, &DotEdge{
			From: famNode.ID + ":e",
			To:   nodeID(partner) + ":w",
			Attrs: []DotAttrFunc{
				DotKV("color", `"black:invis:black"`),
			},
		})
	}

	for _, cid := range p.ChildIDs {
		c, ok := pop.Get(cid)
		if !ok {
			continue
		}
		d.descend(pop, c, generation+1, done)
		d.edges = append(d.edges, &DotEdge{
			From: famNode.ID + ":s",
			To:   nodeID(c) + ":n",
			Attrs: []DotAttrFunc{
				DotKV("tailclip", "false"),
			},
		})
	}
}

func nodeID(p *model.Person) string {
	return fmt.Sprintf("in_%d", p.ID)
}

func (d *DotChart) addIndividualNode(p *model.Person) *DotNode {
	n := &DotNode{
		ID:      nodeID(p),
		Comment: p.FullName(),
		Attrs: []DotAttrFunc{
			DotKV("shape", "none"),
			func(b *DotBuffer) {
				b.Println(`label=<`)
				b.Indent()
				b.Println(`<TABLE CELLBORDER="0" BORDER="1">`)
				b.Indent()
				b.Printf(`<TR><TD ALIGN="LEFT" VALIGN="TOP" PORT="name"><FONT POINT-SIZE="14"><B>%s</B></FONT></TD></TR>`, p.FullName())
				b.Printf(`<TR><TD ALIGN="LEFT" VALIGN="TOP"><FONT POINT-SIZE="12">%s</FONT></TD></TR>`, p.VitalYears())
				b.Unindent()
				b.Println(`</TABLE>`)
				b.Unindent()
				b.Println(`>`)
			},
		},
	}

	d.nodes = append(d.nodes, n)
	return n
}
