package inspect

import (
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML renders a snapshot as an HTML table: a caption with the title, one
// row of slot indices and one row of elements. Cells carry class "live" or
// "vacant".
func HTML(w io.Writer, snap Snapshot) error {
	return html.Render(w, TableNode(snap))
}

// TableNode builds the HTML table for a snapshot as a node tree, for clients
// which want to embed it into a larger document.
func TableNode(snap Snapshot) *html.Node {
	table := element(atom.Table, "class", "staticvec")
	caption := element(atom.Caption)
	caption.AppendChild(text(snap.Title()))
	table.AppendChild(caption)
	indices := element(atom.Tr)
	values := element(atom.Tr)
	for _, s := range snap.Slots {
		th := element(atom.Th)
		th.AppendChild(text(strconv.Itoa(s.Index)))
		indices.AppendChild(th)
		class := "vacant"
		if s.Live {
			class = "live"
		}
		td := element(atom.Td, "class", class)
		if s.Live {
			td.AppendChild(text(s.Text))
		}
		values.AppendChild(td)
	}
	table.AppendChild(indices)
	table.AppendChild(values)
	return table
}

func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
