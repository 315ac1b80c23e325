package doc

import "strings"

type renderMode uint8

const (
	modeFlat renderMode = iota
	modeBreak
)

// cmd is one pending unit of work in Render's and fits's explicit stacks: a
// Doc paired with the indentation and break-mode its enclosing context has
// already resolved.
type cmd struct {
	indent int
	mode   renderMode
	d      Doc
}

// Render lays d out against width columns, returning the final text. Lines
// are separated by '\n' only; indentation is written as literal spaces at
// whatever width each Nest/NestIfBroken call requested (callers are
// expected to pass multiples of the language's indent unit).
func Render(d Doc, width int) string {
	var sb strings.Builder
	col := 0
	stack := []cmd{{indent: 0, mode: modeBreak, d: d}}

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch n := c.d.(type) {
		case textDoc:
			sb.WriteString(n.s)
			col += len(n.s)

		case concatDoc:
			for i := len(n.docs) - 1; i >= 0; i-- {
				stack = append(stack, cmd{c.indent, c.mode, n.docs[i]})
			}

		case lineDoc:
			sb.WriteByte('\n')
			writeIndent(&sb, c.indent)
			col = c.indent

		case lineZeroDoc:
			sb.WriteByte('\n')
			col = 0

		case nestDoc:
			stack = append(stack, cmd{c.indent + n.indent, c.mode, n.doc})

		case nestIfBrokenDoc:
			indent := c.indent
			if c.mode == modeBreak {
				indent += n.indent
			}
			stack = append(stack, cmd{indent, c.mode, n.doc})

		case softBreakDoc:
			if c.mode == modeFlat {
				sb.WriteString(n.unbroken)
				col += len(n.unbroken)
			} else {
				sb.WriteString(n.broken)
				sb.WriteByte('\n')
				writeIndent(&sb, c.indent)
				col = c.indent
			}

		case flexBreakDoc:
			if c.mode == modeFlat || fits(width-col, withHead(stack, cmd{c.indent, modeFlat, textDoc{s: n.unbroken}})) {
				sb.WriteString(n.unbroken)
				col += len(n.unbroken)
			} else {
				sb.WriteString(n.broken)
				sb.WriteByte('\n')
				writeIndent(&sb, c.indent)
				col = c.indent
			}

		case groupDoc:
			mode := modeFlat
			if n.forceBreak {
				mode = modeBreak
			} else if !fits(width-col, withHead(stack, cmd{c.indent, modeFlat, n.doc})) {
				mode = modeBreak
			}
			stack = append(stack, cmd{c.indent, mode, n.doc})
		}
	}

	return sb.String()
}

// withHead returns a new stack with head pushed on top of rest, i.e. head
// is processed first. rest is not mutated.
func withHead(rest []cmd, head cmd) []cmd {
	combined := make([]cmd, len(rest)+1)
	copy(combined, rest)
	combined[len(rest)] = head
	return combined
}

// fits reports whether the content described by stack (processed top-down,
// i.e. stack[len(stack)-1] first) can be printed without exceeding width
// before the current line ends — whichever comes first among running out
// of width (false) or reaching an actual line break (true). A plain Line
// or a broken SoftBreak/FlexBreak counts as "the line ends here"; a child
// whose NextBreakFitsEnabled marker lets it break internally is measured
// up to its own first break.
func fits(width int, stack []cmd) bool {
	for len(stack) > 0 {
		if width < 0 {
			return false
		}
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch n := c.d.(type) {
		case textDoc:
			width -= len(n.s)

		case concatDoc:
			for i := len(n.docs) - 1; i >= 0; i-- {
				stack = append(stack, cmd{c.indent, c.mode, n.docs[i]})
			}

		case lineDoc:
			return true

		case lineZeroDoc:
			return true

		case nestDoc:
			stack = append(stack, cmd{c.indent + n.indent, c.mode, n.doc})

		case nestIfBrokenDoc:
			indent := c.indent
			if c.mode == modeBreak {
				indent += n.indent
			}
			stack = append(stack, cmd{indent, c.mode, n.doc})

		case softBreakDoc:
			if c.mode == modeFlat {
				width -= len(n.unbroken)
			} else {
				return true
			}

		case flexBreakDoc:
			if c.mode == modeFlat {
				width -= len(n.unbroken)
			} else {
				// Under an already-broken ancestor this exact occurrence
				// may or may not break on its own; assuming it breaks
				// never overstates how much fits on the current line.
				return true
			}

		case groupDoc:
			if n.nextBreakFits != nil && *n.nextBreakFits == NextBreakFitsEnabled {
				if ok, used := fitsFlat(width, n.doc); ok {
					width -= used
					continue
				}
				// This child is allowed to break internally without
				// failing the enclosing group's fits-check, so long as
				// what it prints up to its own first break still fits:
				// measure it in break mode, where that break ends the scan.
				stack = append(stack, cmd{c.indent, modeBreak, n.doc})
				continue
			}

			// Default (NextBreakFitsDisabled or unmarked): a nested group
			// that cannot render flat — either because it is itself
			// force-broken or because its content cannot fit — forces
			// this fits-check to fail too, which in turn forces the
			// enclosing group to break.
			ok, used := fitsFlat(width, n)
			if !ok {
				return false
			}
			width -= used
		}
	}
	return width >= 0
}

// fitsFlat measures d as if it were rendered entirely flat, with no line
// breaks at all. It reports false (and an unusable width) as soon as
// either the available width is exceeded or d contains something that
// cannot be flattened (a bare Line, or a force-broken Group).
func fitsFlat(width int, d Doc) (ok bool, used int) {
	switch n := d.(type) {
	case textDoc:
		if len(n.s) > width {
			return false, 0
		}
		return true, len(n.s)

	case concatDoc:
		total := 0
		for _, child := range n.docs {
			childOK, childUsed := fitsFlat(width-total, child)
			if !childOK {
				return false, 0
			}
			total += childUsed
		}
		return true, total

	case lineDoc:
		return false, 0

	case lineZeroDoc:
		return false, 0

	case nestDoc:
		return fitsFlat(width, n.doc)

	case nestIfBrokenDoc:
		// Flat mode is never "broken", so no extra indent applies; the
		// indent argument is irrelevant to a pure-flat width count.
		return fitsFlat(width, n.doc)

	case softBreakDoc:
		if len(n.unbroken) > width {
			return false, 0
		}
		return true, len(n.unbroken)

	case flexBreakDoc:
		if len(n.unbroken) > width {
			return false, 0
		}
		return true, len(n.unbroken)

	case groupDoc:
		if n.forceBreak {
			return false, 0
		}
		return fitsFlat(width, n.doc)
	}
	return true, 0
}

func writeIndent(sb *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		sb.WriteByte(' ')
	}
}
