package extras

import "sort"

// Cursor advances monotonically through an Extras snapshot as format walks
// the AST in source order. Every Pop* method consumes a prefix of its
// underlying slice(s); nothing already popped is ever returned again.
type Cursor struct {
	comments       []Comment
	docComments    []Comment
	moduleComments []Comment
	emptyLines     []int
	newLines       []int
	trailingCommas []int
}

// NewCursor returns a Cursor over e. e is never mutated; the cursor holds
// its own advancing slice headers.
func NewCursor(e *Extras) *Cursor {
	return &Cursor{
		comments:       e.Comments,
		docComments:    e.DocComments,
		moduleComments: e.ModuleComments,
		emptyLines:     e.EmptyLines,
		newLines:       e.NewLines,
		trailingCommas: e.TrailingCommas,
	}
}

// ModuleComments returns the `////` comments. These never advance: they are
// always read in full, once, at the very start of module formatting.
func (c *Cursor) ModuleComments() []Comment { return c.moduleComments }

// HasComments reports whether an unpopped `//` comment starts strictly
// before limit, without consuming it.
func (c *Cursor) HasComments(limit int) bool {
	return len(c.comments) > 0 && c.comments[0].Start < limit
}

// HasEmptyLines reports whether an unpopped blank line lies strictly before
// limit, without consuming it.
func (c *Cursor) HasEmptyLines(limit int) bool {
	return len(c.emptyLines) > 0 && c.emptyLines[0] < limit
}

// Popped is one entry returned by PopCommentsWithPosition: either a comment
// (Content non-nil) or a preserved blank line (Content nil), in source
// order.
type Popped struct {
	Offset  int
	Content *string
}

// PopCommentsWithPosition pops every `//` comment and, when retainEmptyLines
// is true, every blank line starting at or before limit, interleaved by
// position. Consecutive blank lines collapse to a single Popped entry with
// Content == nil (blank-line preservation wants at most one
// separator, not a count). A leading run of blank-line entries (nothing
// popped before them) is trimmed, since a blank line with no preceding
// comment in this window has nothing to attach to.
func (c *Cursor) PopCommentsWithPosition(limit int, retainEmptyLines bool) []Popped {
	endComments := sort.Search(len(c.comments), func(i int) bool { return c.comments[i].Start > limit })
	popped := make([]Popped, 0, endComments)
	for _, cm := range c.comments[:endComments] {
		content := cm.Content
		popped = append(popped, Popped{Offset: cm.Start, Content: &content})
	}
	c.comments = c.comments[endComments:]

	var lineEntries []Popped
	if retainEmptyLines {
		endLines := sort.Search(len(c.emptyLines), func(i int) bool { return c.emptyLines[i] > limit })
		lineEntries = coalesceEmptyLines(c.emptyLines[:endLines])
		c.emptyLines = c.emptyLines[endLines:]
	}

	merged := mergeByOffset(popped, lineEntries)

	// Trim a leading run of blank-line-only entries: a blank line needs a
	// preceding popped comment (or, by convention, a preceding AST node) to
	// attach below; with nothing popped before it in this window it is
	// dropped here. It has already been removed from the cursor, so no later
	// pop or probe reports it again.
	start := 0
	for start < len(merged) && merged[start].Content == nil {
		start++
	}
	return merged[start:]
}

// coalesceEmptyLines merges consecutive blank-line offsets into single
// Popped{Content: nil} markers, keyed by the first offset in each run.
func coalesceEmptyLines(lines []int) []Popped {
	if len(lines) == 0 {
		return nil
	}
	out := make([]Popped, 0, len(lines))
	runStart := lines[0]
	prev := lines[0]
	for _, l := range lines[1:] {
		if l == prev+1 {
			prev = l
			continue
		}
		out = append(out, Popped{Offset: runStart})
		runStart = l
		prev = l
	}
	out = append(out, Popped{Offset: runStart})
	return out
}

// mergeByOffset stably merges two Offset-ascending slices; on equal
// offsets the entry from b (the blank-line markers) comes first (matching
// the original merge_by(a < b) behaviour).
func mergeByOffset(a, b []Popped) []Popped {
	out := make([]Popped, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].Offset < b[j].Offset {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// PopComments is PopCommentsWithPosition with retainEmptyLines == true,
// discarding position information. This is the common case used before
// most AST nodes.
func (c *Cursor) PopComments(limit int) []*string {
	popped := c.PopCommentsWithPosition(limit, true)
	out := make([]*string, len(popped))
	for i, p := range popped {
		out[i] = p.Content
	}
	return out
}

// PopDocComments pops every `///` comment starting at or before limit,
// discarding any blank lines in between: doc comments always attach
// directly to the following definition with no preserved vertical space.
func (c *Cursor) PopDocComments(limit int) []string {
	endComments := sort.Search(len(c.docComments), func(i int) bool { return c.docComments[i].Start > limit })
	out := make([]string, endComments)
	for i, cm := range c.docComments[:endComments] {
		out[i] = cm.Content
	}
	c.docComments = c.docComments[endComments:]

	endLines := sort.Search(len(c.emptyLines), func(i int) bool { return c.emptyLines[i] > limit })
	c.emptyLines = c.emptyLines[endLines:]

	return out
}

// PopEmptyLines removes every unpopped blank line at or before limit and
// reports whether any were removed. Used where the formatter needs a
// yes/no blank-line signal without the interleaved-comment machinery of
// PopCommentsWithPosition (e.g. deciding whether a blank line separates two
// sequence items that have no comments between them).
func (c *Cursor) PopEmptyLines(limit int) bool {
	end := sort.Search(len(c.emptyLines), func(i int) bool { return c.emptyLines[i] > limit })
	if end == 0 {
		return false
	}
	c.emptyLines = c.emptyLines[end:]
	return true
}

// RemainingDocComments returns every `///` comment not yet popped, in
// order. Used once, at the end of module formatting, to float stray doc
// comments to the bottom of the file.
func (c *Cursor) RemainingDocComments() []Comment {
	return c.docComments
}

// SpansMultipleLines reports whether any newline offset falls within
// [start, end).
func (c *Cursor) SpansMultipleLines(start, end int) bool {
	i := sort.Search(len(c.newLines), func(i int) bool { return c.newLines[i] >= start })
	return i < len(c.newLines) && c.newLines[i] < end
}

// HasTrailingComma reports whether an author-written trailing comma lies in
// [itemEnd, containerEnd]. Both bounds are inclusive: a trailing-comma
// offset exactly at itemEnd belongs to the last item (open question (b) in
// the design ledger), and one that lands exactly on containerEnd is still
// counted.
func (c *Cursor) HasTrailingComma(itemEnd, containerEnd int) bool {
	i := sort.Search(len(c.trailingCommas), func(i int) bool { return c.trailingCommas[i] >= itemEnd })
	return i < len(c.trailingCommas) && c.trailingCommas[i] <= containerEnd
}
