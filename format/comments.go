package format

import (
	"github.com/eutampieri/gleam/doc"
)

// commentsBefore pops every comment and (if keepEmptyLines) blank line
// starting at or before limit and renders them as a forced-break prefix: each
// comment on its own line, blank-line runs collapsed to one blank line,
// all separated from whatever follows by one more forced line break.
// Returns nil when nothing was popped, so callers can Concat it in
// unconditionally.
func (f *formatter) commentsBefore(limit int, keepEmptyLines bool) doc.Doc {
	popped := f.cursor.PopCommentsWithPosition(limit, keepEmptyLines)
	if len(popped) == 0 {
		return nil
	}
	parts := make([]doc.Doc, 0, len(popped)*2)
	for _, p := range popped {
		if p.Content == nil {
			parts = append(parts, doc.Line())
			continue
		}
		parts = append(parts, doc.Text(*p.Content), doc.Line())
	}
	return doc.Concat(parts...)
}

// docCommentsBefore pops every `///` doc comment (and any blank lines in
// between, discarded) starting at or before limit and renders them stacked
// directly above whatever follows, with no intervening blank line.
func (f *formatter) docCommentsBefore(limit int) doc.Doc {
	lines := f.cursor.PopDocComments(limit)
	if len(lines) == 0 {
		return nil
	}
	parts := make([]doc.Doc, 0, len(lines)*2)
	for _, l := range lines {
		parts = append(parts, doc.Text(l), doc.Line())
	}
	return doc.Concat(parts...)
}

// precedingBlankLine pops every blank line at or before limit (and nothing
// else) and reports whether there was at least one. Used between
// sequence/statement siblings that have no comments of their own to decide
// whether to separate them by one blank line.
func (f *formatter) precedingBlankLine(limit int) bool {
	return f.cursor.PopEmptyLines(limit)
}

// trailingComments renders every remaining comment that starts at or
// before containerEnd, one per line, each followed by a forced break — used to
// absorb comments that sit just before a container's closing delimiter.
// Returns nil (and pops nothing) when none remain.
func (f *formatter) trailingComments(containerEnd int) doc.Doc {
	return f.commentsBefore(containerEnd, false)
}
