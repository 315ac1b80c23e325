package ast

// Statement is implemented by ExpressionStatement, Assignment, Use,
// Assert, and PlaceholderStatement (the external-function-body marker).
type Statement interface {
	statement()
	Span() Span
}

// ExpressionStatement is a bare expression used as a statement.
type ExpressionStatement struct {
	Span_ Span
	Expr  Expr
}

func (ExpressionStatement) statement()  {}
func (e ExpressionStatement) Span() Span { return e.Span_ }

// AssignmentKind distinguishes `let` from `let assert`.
type AssignmentKind int

const (
	AssignmentLet AssignmentKind = iota
	AssignmentLetAssert
)

// Assignment is `let pattern [: T] = value` or
// `let assert pattern [: T] = value [as message]`.
type Assignment struct {
	Span_      Span
	Kind       AssignmentKind
	Pattern    Pattern
	Annotation TypeAst // nil if absent
	Value      Expr
	Message    Expr // nil if absent; only meaningful for AssignmentLetAssert
}

func (Assignment) statement()  {}
func (a Assignment) Span() Span { return a.Span_ }

// Use is `use patterns <- call`. A Use as the final statement of a block
// with no following statement gets a `todo` appended by the formatter
// never by the parser — so there is no "has trailing body"
// field here; format decides that from position in the statement list.
type Use struct {
	Span_    Span
	Patterns []Pattern
	Call     Expr
}

func (Use) statement()  {}
func (u Use) Span() Span { return u.Span_ }

// Assert is a standalone `assert <expr> [as <msg>]` statement.
type Assert struct {
	Span_   Span
	Value   Expr
	Message Expr // nil if absent
}

func (Assert) statement()  {}
func (a Assert) Span() Span { return a.Span_ }

// PlaceholderStatement marks a declaration-only ("external") function's
// body: Function.Body == []Statement{PlaceholderStatement{}}.
type PlaceholderStatement struct {
	Span_ Span
}

func (PlaceholderStatement) statement()  {}
func (p PlaceholderStatement) Span() Span { return p.Span_ }
