package ast

// TypeAst is implemented by every type-annotation node.
type TypeAst interface {
	typeAst()
	Span() Span
}

// TypeName is `[module.]Name[(args)]`.
type TypeName struct {
	Span_  Span
	Module *string
	Name   string
	Args   []TypeAst
}

func (TypeName) typeAst()    {}
func (t TypeName) Span() Span { return t.Span_ }

// TypeVar is a lowercase type variable.
type TypeVar struct {
	Span_ Span
	Name  string
}

func (TypeVar) typeAst()    {}
func (t TypeVar) Span() Span { return t.Span_ }

// TypeFn is `fn(args) -> return`.
type TypeFn struct {
	Span_  Span
	Args   []TypeAst
	Return TypeAst
}

func (TypeFn) typeAst()    {}
func (t TypeFn) Span() Span { return t.Span_ }

// TypeTuple is `#(elements)` as a type.
type TypeTuple struct {
	Span_    Span
	Elements []TypeAst
}

func (TypeTuple) typeAst()    {}
func (t TypeTuple) Span() Span { return t.Span_ }

// TypeHole is `_` standing in for an unannotated type.
type TypeHole struct {
	Span_ Span
	Name  string
}

func (TypeHole) typeAst()    {}
func (t TypeHole) Span() Span { return t.Span_ }
