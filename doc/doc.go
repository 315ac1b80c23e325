// Package doc implements the document-combinator layer package format is
// built on: a small Wadler/Prettier-style algebra of text, line breaks,
// groups, and indentation, rendered against a target column width.
//
// format never writes a newline or counts columns itself; it only builds a
// Doc tree and asks Render to lay it out. This keeps every line-breaking
// decision ("does this call fit on one line?") in one place, reusable
// across every construct the formatter knows how to print.
package doc

// Doc is an immutable document tree. Build one with the constructors below
// and render it with Render.
type Doc interface {
	doc()
}

// NextBreakFitsMode toggles how a group interacts with a trailing child
// wrapped in NextBreakFits.
type NextBreakFitsMode int

const (
	// NextBreakFitsEnabled lets the wrapped child break internally without
	// forcing its enclosing group to break, so long as the child's own
	// first line still fits in the remaining width.
	NextBreakFitsEnabled NextBreakFitsMode = iota
	// NextBreakFitsDisabled is the default: a child that needs to break
	// forces its enclosing group to break too.
	NextBreakFitsDisabled
)

type textDoc struct{ s string }

func (textDoc) doc() {}

// Text is literal output with no break points of its own.
func Text(s string) Doc { return textDoc{s: s} }

type lineDoc struct{}

func (lineDoc) doc() {}

// Line always renders as a newline followed by the current indentation,
// regardless of whether its enclosing group is flat or broken.
func Line() Doc { return lineDoc{} }

type lineZeroDoc struct{}

func (lineZeroDoc) doc() {}

// LineZero always renders as a bare newline with no indentation at all,
// ignoring the ambient Nest depth — used to rejoin a multi-line string
// literal's embedded lines without reindenting them.
func LineZero() Doc { return lineZeroDoc{} }

type softBreakDoc struct{ broken, unbroken string }

func (softBreakDoc) doc() {}

// SoftBreak renders as unbroken (inline) when its enclosing group fits
// flat, or as broken followed by a newline and the current indentation
// when the group breaks.
func SoftBreak(broken, unbroken string) Doc { return softBreakDoc{broken: broken, unbroken: unbroken} }

type flexBreakDoc struct{ broken, unbroken string }

func (flexBreakDoc) doc() {}

// FlexBreak is like SoftBreak, but the break decision is made
// independently at this exact position based on remaining line width,
// rather than once for the whole enclosing group. This is what lets a
// packed sequence (FitMultiplePerLine mode) place several items
// per rendered line instead of committing the whole container to one mode.
func FlexBreak(broken, unbroken string) Doc { return flexBreakDoc{broken: broken, unbroken: unbroken} }

type concatDoc struct{ docs []Doc }

func (concatDoc) doc() {}

// Concat sequences documents with no break between them.
func Concat(docs ...Doc) Doc {
	flat := make([]Doc, 0, len(docs))
	for _, d := range docs {
		if d == nil {
			continue
		}
		flat = append(flat, d)
	}
	return concatDoc{docs: flat}
}

type nestDoc struct {
	indent int
	doc    Doc
}

func (nestDoc) doc() {}

// Nest increases the indentation used by any Line/broken SoftBreak/broken
// FlexBreak inside d by indent columns.
func Nest(indent int, d Doc) Doc { return nestDoc{indent: indent, doc: d} }

type nestIfBrokenDoc struct {
	indent int
	doc    Doc
}

func (nestIfBrokenDoc) doc() {}

// NestIfBroken is Nest, but only takes effect when the nearest enclosing
// group is rendered broken; inside a flat group it behaves like d alone.
func NestIfBroken(indent int, d Doc) Doc { return nestIfBrokenDoc{indent: indent, doc: d} }

type groupDoc struct {
	doc           Doc
	forceBreak    bool
	nextBreakFits *NextBreakFitsMode
}

func (groupDoc) doc() {}

// Group measures d: if it (and everything nested inside it that isn't
// itself a Group) fits flat within the remaining width, it renders flat;
// otherwise every Line/SoftBreak/FlexBreak directly inside it (not inside a
// nested Group) renders broken.
func Group(d Doc) Doc { return groupDoc{doc: d} }

// ForceBreak wraps d so its nearest enclosing group always renders broken,
// regardless of whether it would otherwise fit.
func ForceBreak(d Doc) Doc {
	g, ok := d.(groupDoc)
	if !ok {
		g = groupDoc{doc: d}
	}
	g.forceBreak = true
	return g
}

// NextBreakFits marks d (which must contain, or be, a Group) with the given
// mode for the fits-check performed by its enclosing Group. See
// NextBreakFitsMode.
func NextBreakFits(mode NextBreakFitsMode, d Doc) Doc {
	g, ok := d.(groupDoc)
	if !ok {
		g = groupDoc{doc: d}
	}
	m := mode
	g.nextBreakFits = &m
	return g
}
