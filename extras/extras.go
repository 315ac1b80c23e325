// Package extras holds the lexical side-channel a parser records
// positionally rather than structurally: comments, blank lines, newline
// offsets, and trailing-comma offsets. Package format consumes it through a
// Cursor, which advances monotonically as the AST is walked in source
// order.
package extras

// Comment is one `//`, `///`, or `////` comment, keyed by its starting byte
// offset in the original source.
type Comment struct {
	Start   int
	Content string
}

// Extras is an immutable snapshot of everything a parser recorded outside
// the AST proper. Every slice must already be sorted ascending by offset —
// that invariant is the parser's responsibility, not this package's.
type Extras struct {
	// Comments holds `//` comments.
	Comments []Comment
	// DocComments holds `///` comments.
	DocComments []Comment
	// ModuleComments holds `////` comments.
	ModuleComments []Comment
	// EmptyLines holds the byte offset of every blank line.
	EmptyLines []int
	// NewLines holds the byte offset of every newline in the source, used
	// only to test whether a span crosses a line break.
	NewLines []int
	// TrailingCommas holds the byte offset of every author-written comma
	// that followed the last item of some comma-separated sequence.
	TrailingCommas []int
}
