package format

import (
	"strings"

	"github.com/eutampieri/gleam/doc"
)

// stringLiteral renders a string literal's already-escaped content with its
// surrounding quotes. Value is stored by the caller's parser exactly as
// written between the quotes (escapes untouched), so this never
// re-escapes. A literal embedding a newline forces its enclosing group to
// break, since the newline it contains already decides where the line
// ends regardless of what Render's fits-check would otherwise measure.
func (f *formatter) stringLiteral(value string) doc.Doc {
	d := doc.Text("\"" + value + "\"")
	if strings.Contains(value, "\n") {
		return doc.ForceBreak(doc.Group(d))
	}
	return d
}

// binOpStringLiteral renders value as a binary operator's operand,
// splitting it at embedded newlines and rejoining the pieces with
// LineZero so each embedded line lands at column zero instead of
// picking up the operator expression's indentation.
func (f *formatter) binOpStringLiteral(value string) doc.Doc {
	lines := strings.Split(value, "\n")
	if len(lines) == 1 {
		return f.stringLiteral(value)
	}

	parts := make([]doc.Doc, 0, len(lines)*2+1)
	parts = append(parts, doc.Text("\""+lines[0]))
	for _, line := range lines[1 : len(lines)-1] {
		parts = append(parts, doc.LineZero(), doc.Text(line))
	}
	parts = append(parts, doc.LineZero(), doc.Text(lines[len(lines)-1]+"\""))
	return doc.ForceBreak(doc.Group(doc.Concat(parts...)))
}
