package format

import (
	"github.com/eutampieri/gleam/ast"
	"github.com/eutampieri/gleam/doc"
)

func (f *formatter) pattern(p ast.Pattern) doc.Doc {
	switch n := p.(type) {
	case ast.PatternInt:
		return doc.Text(formatInt(n.Value))

	case ast.PatternFloat:
		return doc.Text(formatFloat(n.Value))

	case ast.PatternString:
		return f.stringLiteral(n.Value)

	case ast.PatternVar:
		return doc.Text(n.Name)

	case ast.PatternDiscard:
		return doc.Text(n.Name)

	case ast.PatternVarUsage:
		return doc.Text(n.Name)

	case ast.PatternAs:
		// A discard inner pattern carries no useful name of its own, so
		// `_ as name` collapses to the bare binding.
		if _, ok := n.Inner.(ast.PatternDiscard); ok {
			return doc.Text(n.Name)
		}
		return doc.Concat(f.pattern(n.Inner), doc.Text(" as "+n.Name))

	case ast.PatternList:
		return f.patternList(n)

	case ast.PatternTuple:
		return f.patternTuple(n)

	case ast.PatternConstructor:
		return f.patternConstructor(n)

	case ast.PatternBitArray:
		return bitArray(f, n.Segments, n.Span_.Start, n.Span_.End, f.pattern, patternNeverPackable, patternNeverBinOp)

	case ast.PatternStringPrefix:
		return f.patternStringPrefix(n)

	default:
		invariant("unrecognised pattern type %T", p)
		return nil
	}
}

// patternNeverPackable reports every pattern value as non-packable, so
// decidePacking can never select FitMultiplePerLine for a bit-array
// pattern; a trailing comma after the last segment still selects
// BreakOnePerLine.
func patternNeverPackable(ast.Pattern) bool { return false }

// patternNeverBinOp reports that a pattern value is never a binary operator
// (ast.Pattern has no BinOp variant), so bit-array pattern segments never
// need the `{ … }` wrapping expression segments do.
func patternNeverBinOp(ast.Pattern) bool { return false }

func (f *formatter) patternList(n ast.PatternList) doc.Doc {
	items := make([]SeqItem, len(n.Elements))
	for i, el := range n.Elements {
		items[i] = SeqItem{
			Start:    el.Span().Start,
			End:      el.Span().End,
			Value:    doc.Concat(f.commentsBefore(el.Span().Start, true), f.pattern(el)),
			Packable: isPackablePattern(el),
		}
	}
	var tail doc.Doc
	if n.Tail != nil {
		tail = f.pattern(n.Tail)
	}
	return f.sequence("[", "]", items, tail, n.Span_.Start, n.Span_.End)
}

func (f *formatter) patternTuple(n ast.PatternTuple) doc.Doc {
	items := make([]SeqItem, len(n.Elements))
	for i, el := range n.Elements {
		items[i] = SeqItem{
			Start:    el.Span().Start,
			End:      el.Span().End,
			Value:    doc.Concat(f.commentsBefore(el.Span().Start, true), f.pattern(el)),
			Packable: isPackablePattern(el),
		}
	}
	return f.sequence("#(", ")", items, nil, n.Span_.Start, n.Span_.End)
}

func (f *formatter) patternConstructor(n ast.PatternConstructor) doc.Doc {
	name := n.Name
	if n.Module != nil {
		name = *n.Module + "." + name
	}
	if len(n.Args) == 0 && !n.Spread && !f.cursor.HasComments(n.Span_.End) {
		return doc.Text(name)
	}

	items := make([]SeqItem, len(n.Args))
	for i, a := range n.Args {
		valueStart := a.Value.Span().Start
		var label doc.Doc
		if a.Label != nil {
			label = doc.Text(*a.Label + ": ")
		}
		items[i] = SeqItem{
			Start:    a.Span.Start,
			End:      a.Span.End,
			Value:    doc.Concat(f.commentsBefore(a.Span.Start, true), label, doc.Concat(f.commentsBefore(valueStart, true), f.pattern(a.Value))),
			Packable: false,
		}
	}
	var tail doc.Doc
	if n.Spread {
		tail = doc.Text("")
	}
	return doc.Concat(doc.Text(name), f.sequence("(", ")", items, tail, n.Span_.Start, n.Span_.End))
}

func (f *formatter) patternStringPrefix(n ast.PatternStringPrefix) doc.Doc {
	left := f.stringLiteral(n.Left)
	if n.RightName != nil {
		left = doc.Concat(left, doc.Text(" as "+*n.RightName))
	}
	return doc.Concat(left, doc.Text(" <> "), f.pattern(n.Right))
}

func isPackablePattern(p ast.Pattern) bool {
	switch p.(type) {
	case ast.PatternInt, ast.PatternFloat, ast.PatternString, ast.PatternVar, ast.PatternDiscard:
		return true
	default:
		return false
	}
}
