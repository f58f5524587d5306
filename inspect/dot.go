package inspect

import (
	"fmt"
	"io"
	"strings"
)

// Dot outputs the storage block of a snapshot in Graphviz DOT format, as a
// record node with one field per slot.
func Dot(w io.Writer, snap Snapshot) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	fmt.Fprintf(&b, "\t\"vector\" [label=\"%s\",shape=box,style=filled,fillcolor=\"%s\"];\n",
		escapeDot(snap.Title()), headerColor)
	fields := make([]string, len(snap.Slots))
	for i, s := range snap.Slots {
		if s.Live {
			fields[i] = fmt.Sprintf("<s%d> %s", s.Index, escapeRecord(s.Text))
		} else {
			fields[i] = fmt.Sprintf("<s%d> ", s.Index)
		}
	}
	fmt.Fprintf(&b, "\t\"slots\" [label=\"%s\",shape=record];\n", strings.Join(fields, "|"))
	b.WriteString("\t\"vector\" -> \"slots\";\n")
	if snap.Length > 0 {
		b.WriteString("\t\"back\" [label=\"back\",shape=plaintext];\n")
		fmt.Fprintf(&b, "\t\"back\" -> \"slots\":s%d;\n", snap.Length-1)
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	if err != nil {
		tracer().Errorf("vector DOT: %s", err.Error())
	}
	return err
}

const headerColor = "#a3d7e4"

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

func escapeDot(s string) string {
	return dotEscaper.Replace(s)
}

var recordEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`,
	"{", `\{`, "}", `\}`, "|", `\|`, "<", `\<`, ">", `\>`)

func escapeRecord(s string) string {
	return recordEscaper.Replace(s)
}
