package format

import (
	"github.com/eutampieri/gleam/doc"
	"github.com/eutampieri/gleam/extras"
)

// packing is the layout decision shared by every comma-separated container:
// lists, tuples, bit arrays, call arguments, and record-update arguments.
// See decidePacking.
type packing int

const (
	packFitOnePerLine packing = iota
	packFitMultiplePerLine
	packBreakOnePerLine
)

// SeqItem is one element of a comma-separated container. Value must
// already have had its own leading comments popped and attached (callers
// build it with f.commentsBefore(Start, true) prepended) before it is
// handed to sequence.
type SeqItem struct {
	Start, End int
	Value      doc.Doc
	// Packable marks "packable primitive" items: bare int/float/string
	// literals, plain variables, and discards.
	Packable bool
}

// decidePacking runs the packing decision tree using only non-consuming
// cursor peeks, so it can be computed once before any item is rendered
// (rendering pops the cursor and would otherwise disturb these probes).
func decidePacking(c *extras.Cursor, items []SeqItem, hasTail bool, containerStart, containerEnd int) packing {
	for i := 0; i+1 < len(items); i++ {
		if c.HasEmptyLines(items[i+1].Start) {
			return packBreakOnePerLine
		}
	}

	lastEnd := containerStart
	if len(items) > 0 {
		lastEnd = items[len(items)-1].End
	}
	if !c.HasTrailingComma(lastEnd, containerEnd) {
		return packFitOnePerLine
	}
	if hasTail {
		return packBreakOnePerLine
	}

	allPackable := len(items) > 0
	for _, it := range items {
		if !it.Packable {
			allPackable = false
			break
		}
	}

	multiPerSourceLine := false
	for i := 0; i+1 < len(items); i++ {
		if !c.SpansMultipleLines(items[i].Start, items[i+1].Start) {
			multiPerSourceLine = true
			break
		}
	}

	if allPackable && multiPerSourceLine && c.SpansMultipleLines(containerStart, containerEnd) {
		return packFitMultiplePerLine
	}
	return packBreakOnePerLine
}

// sequence lays out open, a comma-separated items list (with an optional
// tail such as a list's `..rest`), and close, applying the packing policy
// decided once up front. Comments remaining just before containerEnd are
// absorbed immediately before close and force the container multi-line.
func (f *formatter) sequence(open, close string, items []SeqItem, tail doc.Doc, containerStart, containerEnd int) doc.Doc {
	hasTail := tail != nil

	if len(items) == 0 && !hasTail {
		trailing := f.trailingComments(containerEnd)
		if trailing == nil {
			return doc.Text(open + close)
		}
		return doc.ForceBreak(doc.Group(doc.Concat(
			doc.Text(open),
			doc.Nest(Indent, doc.Concat(doc.Line(), trailing)),
			doc.Line(),
			doc.Text(close),
		)))
	}

	mode := decidePacking(f.cursor, items, hasTail, containerStart, containerEnd)

	parts := make([]doc.Doc, 0, len(items)*3+2)
	for i, it := range items {
		if i > 0 {
			if mode == packFitMultiplePerLine {
				parts = append(parts, doc.FlexBreak(",", ", "))
			} else {
				parts = append(parts, doc.Text(","))
				if mode == packBreakOnePerLine && f.cursor.PopEmptyLines(it.Start) {
					parts = append(parts, doc.Line())
				}
				parts = append(parts, doc.SoftBreak("", " "))
			}
		}
		parts = append(parts, it.Value)
	}
	if hasTail {
		parts = append(parts, doc.Text(","), doc.SoftBreak("", " "), doc.Text(".."), tail)
	}

	trailing := f.trailingComments(containerEnd)
	if trailing != nil {
		parts = append(parts, doc.Text(","), doc.Line(), trailing)
	}

	g := doc.Group(doc.Concat(
		doc.Text(open),
		doc.Nest(Indent, doc.Concat(doc.SoftBreak("", ""), doc.Concat(parts...))),
		doc.SoftBreak(",", ""),
		doc.Text(close),
	))
	if mode == packBreakOnePerLine || trailing != nil {
		g = doc.ForceBreak(g)
	}
	return g
}

// callArgs is sequence, plus the "inlinable last argument" rule:
// when lastIsBreakable is set (the last item is an anonymous fn, block,
// case, list, tuple, bit array, call, or record update, per
// isBreakableForm; a call or record update counts whether or not it is the
// only argument) and no comment sits
// before it, that item may break internally without forcing the rest of
// the argument list to break.
func (f *formatter) callArgs(open, close string, items []SeqItem, containerStart, containerEnd int, lastIsBreakable bool) doc.Doc {
	if lastIsBreakable && len(items) > 0 && !f.cursor.HasComments(items[len(items)-1].Start) {
		items = append([]SeqItem(nil), items...)
		last := len(items) - 1
		items[last].Value = doc.NextBreakFits(doc.NextBreakFitsEnabled, items[last].Value)
	} else {
		lastIsBreakable = false
	}

	d := f.sequence(open, close, items, nil, containerStart, containerEnd)
	if lastIsBreakable {
		d = doc.NextBreakFits(doc.NextBreakFitsDisabled, d)
	}
	return d
}
