package ast

// Pattern is implemented by every pattern node.
type Pattern interface {
	pattern()
	Span() Span
}

// PatternInt, PatternFloat, PatternString mirror the literal expression
// forms but live in pattern position.
type PatternInt struct {
	Span_ Span
	Value string
}

func (PatternInt) pattern()   {}
func (p PatternInt) Span() Span { return p.Span_ }

type PatternFloat struct {
	Span_ Span
	Value string
}

func (PatternFloat) pattern()   {}
func (p PatternFloat) Span() Span { return p.Span_ }

type PatternString struct {
	Span_ Span
	Value string
}

func (PatternString) pattern()   {}
func (p PatternString) Span() Span { return p.Span_ }

// PatternVar binds a name.
type PatternVar struct {
	Span_ Span
	Name  string
}

func (PatternVar) pattern()   {}
func (p PatternVar) Span() Span { return p.Span_ }

// PatternDiscard is `_` or `_name`.
type PatternDiscard struct {
	Span_ Span
	Name  string
}

func (PatternDiscard) pattern()   {}
func (p PatternDiscard) Span() Span { return p.Span_ }

// PatternVarUsage references a previously bound constant pattern (rare;
// used for reusing an existing binding as a pattern literal).
type PatternVarUsage struct {
	Span_ Span
	Name  string
}

func (PatternVarUsage) pattern()   {}
func (p PatternVarUsage) Span() Span { return p.Span_ }

// PatternAs is `pattern as name`. Formatting collapses this to a bare
// PatternVar when Inner is a PatternDiscard — that
// simplification happens in format, not here; this type always carries
// both fields as written.
type PatternAs struct {
	Span_ Span
	Inner Pattern
	Name  string
}

func (PatternAs) pattern()   {}
func (p PatternAs) Span() Span { return p.Span_ }

// PatternList is `[elements, ..tail]` in pattern position.
type PatternList struct {
	Span_    Span
	Elements []Pattern
	Tail     Pattern // nil if absent
}

func (PatternList) pattern()   {}
func (p PatternList) Span() Span { return p.Span_ }

// PatternTuple is `#(elements)` in pattern position.
type PatternTuple struct {
	Span_    Span
	Elements []Pattern
}

func (PatternTuple) pattern()   {}
func (p PatternTuple) Span() Span { return p.Span_ }

// PatternArg is one argument of a PatternConstructor, optionally labelled.
type PatternArg struct {
	Span  Span
	Label *string
	Value Pattern
}

// PatternConstructor matches a custom-type constructor, e.g. `Ok(value)` or
// `module.Ctor(label: pat, ..)`.
type PatternConstructor struct {
	Span_  Span
	Module *string
	Name   string
	Args   []PatternArg
	Spread bool
}

func (PatternConstructor) pattern()   {}
func (p PatternConstructor) Span() Span { return p.Span_ }

// PatternBitArray is `<<segments>>` in pattern position.
type PatternBitArray struct {
	Span_    Span
	Segments []BitArraySegment[Pattern]
}

func (PatternBitArray) pattern()   {}
func (p PatternBitArray) Span() Span { return p.Span_ }

// PatternStringPrefix is `"lit" <> rest` or `"lit" as name <> rest`.
type PatternStringPrefix struct {
	Span_     Span
	Left      string
	RightName *string // the `as name` binding for the literal prefix, if any
	Right     Pattern
}

func (PatternStringPrefix) pattern()   {}
func (p PatternStringPrefix) Span() Span { return p.Span_ }
