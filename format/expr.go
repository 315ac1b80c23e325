package format

import (
	"strconv"

	"github.com/eutampieri/gleam/ast"
	"github.com/eutampieri/gleam/doc"
)

// expr renders e as a Doc. It does not pop comments before e's own span —
// callers (sequence items, statements, clause values) are responsible for
// that, since the right prefix point differs by context (e.g. a sequence
// item's comments are popped relative to the item's start, a statement's
// relative to the statement's start).
func (f *formatter) expr(e ast.Expr) doc.Doc {
	switch n := e.(type) {
	case ast.Int:
		return doc.Text(formatInt(n.Value))

	case ast.Float:
		return doc.Text(formatFloat(n.Value))

	case ast.String:
		return f.stringLiteral(n.Value)

	case ast.Var:
		return doc.Text(n.Name)

	case ast.Discard:
		return doc.Text(n.Name)

	case ast.Fn:
		if n.Kind == ast.FnKindCapture {
			return f.simplifyCapture(n, false)
		}
		return f.fn(n)

	case ast.Call:
		return f.call(n)

	case ast.BinOp:
		return f.binOp(n, 0)

	case ast.Pipeline:
		return f.pipeline(n)

	case ast.Block:
		return f.block(n)

	case ast.Case:
		return f.caseExpr(n)

	case ast.List:
		return f.list(n)

	case ast.Tuple:
		return f.tuple(n)

	case ast.BitArray:
		return bitArray(f, n.Segments, n.Span_.Start, n.Span_.End, f.expr, isPackablePrimitive, isExprBinOp)

	case ast.RecordUpdate:
		return f.recordUpdate(n)

	case ast.FieldAccess:
		return doc.Concat(f.expr(n.Container), doc.Text("."+n.Label))

	case ast.TupleIndex:
		return doc.Concat(f.expr(n.Tuple), doc.Text("."), doc.Text(strconv.Itoa(n.Index)))

	case ast.Negate:
		sign := "-"
		if n.Kind == ast.NegateBool {
			sign = "!"
		}
		return doc.Concat(doc.Text(sign), f.operand(n.Value, 8))

	case ast.Todo:
		return f.keywordWithMessage("todo", n.Message)

	case ast.Panic:
		return f.keywordWithMessage("panic", n.Message)

	case ast.Echo:
		return f.echo(n)

	case ast.Placeholder:
		invariant("placeholder expression reached format")
		return nil

	default:
		invariant("unrecognised expression type %T", e)
		return nil
	}
}

// operand renders child as the operand of a binary operator with
// precedence parentPrec, wrapping it in `{ … }` when child's own
// precedence is strictly lower.
func (f *formatter) operand(child ast.Expr, parentPrec int) doc.Doc {
	return f.operandGuarded(child, parentPrec, false, false)
}

func (f *formatter) binOp(n ast.BinOp, parentPrec int) doc.Doc {
	return f.binOpGuarded(n, parentPrec, false, false)
}

// guardExpr renders a clause guard. Every binary operator in the guard
// wraps a right operand of the same or lower precedence rather than only a
// strictly lower one (the usual rule), forcing parentheses around a
// right-associative chain's ambiguous reading instead of leaving it to the
// language's own associativity. A guard never nests by indentation,
// regardless of how many siblings it has.
func (f *formatter) guardExpr(e ast.Expr) doc.Doc {
	if b, ok := e.(ast.BinOp); ok {
		return f.binOpGuarded(b, 0, true, false)
	}
	return f.expr(e)
}

func (f *formatter) operandGuarded(child ast.Expr, parentPrec int, guard, nestSteps bool) doc.Doc {
	if b, ok := child.(ast.BinOp); ok {
		childPrec := operatorPrecedence(b.Name)
		d := f.binOpGuarded(b, childPrec, guard, nestSteps)
		if parenthesizeOperand(childPrec, parentPrec) {
			return doc.Concat(doc.Text("{ "), d, doc.Text(" }"))
		}
		return d
	}
	if s, ok := child.(ast.String); ok {
		return f.binOpStringLiteral(s.Value)
	}
	return f.expr(child)
}

// binOpGuarded renders a binary operator expression. nestSteps nests the
// break before the right-hand side by Indent; it is only set when this
// operator is itself one of several comma-separated siblings (a list,
// tuple, or call-argument item), so a bare binary operator never nests.
func (f *formatter) binOpGuarded(n ast.BinOp, parentPrec int, guard, nestSteps bool) doc.Doc {
	prec := operatorPrecedence(n.Name)
	left := f.operandGuarded(n.Left, prec, guard, nestSteps)
	rightPrec := prec
	if guard {
		rightPrec = guardRightPrecedence(prec)
	}
	right := f.operandGuarded(n.Right, rightPrec, guard, nestSteps)
	rightSide := doc.Concat(doc.SoftBreak("", " "), right)
	if nestSteps {
		rightSide = doc.Nest(Indent, rightSide)
	}
	return doc.Group(doc.Concat(left, doc.Text(" "+n.Name), rightSide))
}

// keywordWithMessage renders a bare keyword form (todo, panic, valueless
// echo) with its optional `as <msg>`. Unlike the expression-preceded forms
// (assert, let assert, echo <expr>), `as` here is a literal that never
// breaks onto its own line — only the message itself may wrap.
func (f *formatter) keywordWithMessage(kw string, message ast.Expr) doc.Doc {
	if message == nil {
		return doc.Text(kw)
	}
	return doc.Group(doc.Concat(
		doc.Text(kw+" as "),
		doc.Nest(Indent, doc.Group(f.expr(message))),
	))
}

func (f *formatter) echo(n ast.Echo) doc.Doc {
	if n.Value == nil {
		return f.keywordWithMessage("echo", n.Message)
	}
	value := f.expr(n.Value)
	if isBinOpOrPipeline(n.Value) {
		value = doc.Nest(Indent, value)
	}
	head := doc.Concat(doc.Text("echo "), value)
	return f.appendExpressionMessage(head, n.Message)
}

// appendExpressionMessage appends an optional `as <msg>` whose preceding
// content is itself an expression (assert, let assert, echo <expr>) rather
// than a bare keyword: `as` sits on a soft break nested by Indent, and the
// message on another, so it can move to its own line independently of
// head.
func (f *formatter) appendExpressionMessage(head doc.Doc, message ast.Expr) doc.Doc {
	if message == nil {
		return head
	}
	return doc.Group(doc.Concat(
		head,
		doc.Nest(Indent, doc.Concat(
			doc.SoftBreak("", " "),
			doc.Text("as"),
			doc.SoftBreak("", " "),
			f.expr(message),
		)),
	))
}

func isBinOpOrPipeline(e ast.Expr) bool {
	switch e.(type) {
	case ast.BinOp, ast.Pipeline:
		return true
	default:
		return false
	}
}

func (f *formatter) block(n ast.Block) doc.Doc {
	return doc.ForceBreak(doc.Group(doc.Concat(
		doc.Text("{"),
		doc.Nest(Indent, doc.Concat(doc.Line(), f.statements(n.Statements, n.Span_.End))),
		doc.Line(),
		doc.Text("}"),
	)))
}

func (f *formatter) list(n ast.List) doc.Doc {
	items := make([]SeqItem, len(n.Elements))
	siblings := len(n.Elements)
	for i, el := range n.Elements {
		items[i] = SeqItem{
			Start:    el.Span().Start,
			End:      el.Span().End,
			Value:    doc.Concat(f.commentsBefore(el.Span().Start, true), f.commaSeparatedItem(el, siblings)),
			Packable: isPackablePrimitive(el),
		}
	}
	var tail doc.Doc
	if n.Tail != nil {
		tail = f.expr(n.Tail)
	}
	return f.sequence("[", "]", items, tail, n.Span_.Start, n.Span_.End)
}

func (f *formatter) tuple(n ast.Tuple) doc.Doc {
	items := make([]SeqItem, len(n.Elements))
	siblings := len(n.Elements)
	lastBreakable := siblings > 0 && isBreakableForm(n.Elements[siblings-1])
	for i, el := range n.Elements {
		items[i] = SeqItem{
			Start:    el.Span().Start,
			End:      el.Span().End,
			Value:    doc.Concat(f.commentsBefore(el.Span().Start, true), f.commaSeparatedItem(el, siblings)),
			Packable: isPackablePrimitive(el),
		}
	}
	return f.callArgs("#(", ")", items, n.Span_.Start, n.Span_.End, lastBreakable)
}

func (f *formatter) call(n ast.Call) doc.Doc {
	fnDoc := f.expr(n.Fn)
	items := make([]SeqItem, len(n.Args))
	siblings := len(n.Args)
	lastBreakable := siblings > 0 && isBreakableForm(n.Args[siblings-1].Value)
	for i, a := range n.Args {
		valueStart := a.Value.Span().Start
		var label doc.Doc
		if a.Label != nil {
			label = doc.Text(*a.Label + ": ")
		}
		items[i] = SeqItem{
			Start:    a.Span.Start,
			End:      a.Span.End,
			Value:    doc.Concat(f.commentsBefore(a.Span.Start, true), label, doc.Concat(f.commentsBefore(valueStart, true), f.commaSeparatedItem(a.Value, siblings))),
			Packable: a.Label == nil && isPackablePrimitive(a.Value),
		}
	}
	return doc.Concat(fnDoc, f.callArgs("(", ")", items, n.Span_.Start, n.Span_.End, lastBreakable))
}

// commaSeparatedItem renders e as one element of a comma-separated list,
// tuple, or call-argument sequence. A pipeline or binary operator nests
// itself by Indent only when there is more than one sibling in the
// sequence, so a reader can tell where one item ends and the next begins;
// with zero or one sibling it renders exactly like a bare expression.
func (f *formatter) commaSeparatedItem(e ast.Expr, siblings int) doc.Doc {
	if siblings > 1 {
		if b, ok := e.(ast.BinOp); ok {
			return doc.Group(f.binOpGuarded(b, 0, false, true))
		}
		if p, ok := e.(ast.Pipeline); ok {
			return doc.Group(f.pipelineNested(p))
		}
	}
	return doc.Group(f.expr(e))
}

// recordUpdate renders `Constructor(..Record, label: value, ...)`. The `..`
// spread is always the first item in the argument list — unlike a list's
// tail, which trails — so it is built as an ordinary, non-packable SeqItem
// rather than passed through sequence's tail parameter.
func (f *formatter) recordUpdate(n ast.RecordUpdate) doc.Doc {
	constructorDoc := f.expr(n.Constructor)

	items := make([]SeqItem, len(n.Args)+1)
	recordStart := n.Record.Span().Start
	items[0] = SeqItem{
		Start:    recordStart,
		End:      n.Record.Span().End,
		Value:    doc.Concat(f.commentsBefore(recordStart, true), doc.Text(".."), f.expr(n.Record)),
		Packable: false,
	}
	lastBreakable := len(n.Args) > 0 && isBreakableForm(n.Args[len(n.Args)-1].Value)
	for i, a := range n.Args {
		valueStart := a.Value.Span().Start
		items[i+1] = SeqItem{
			Start: a.Span.Start,
			End:   a.Span.End,
			Value: doc.Concat(
				f.commentsBefore(a.Span.Start, true),
				doc.Text(a.Label+": "),
				doc.Concat(f.commentsBefore(valueStart, true), f.expr(a.Value)),
			),
			Packable: false,
		}
	}
	body := f.callArgs("(", ")", items, n.Span_.Start, n.Span_.End, lastBreakable)
	return doc.Concat(constructorDoc, body)
}

func (f *formatter) fn(n ast.Fn) doc.Doc {
	params := make([]doc.Doc, len(n.Parameters))
	for i, p := range n.Parameters {
		params[i] = f.functionParameter(p)
	}
	head := doc.Concat(doc.Text("fn("), joinComma(params), doc.Text(")"))
	if n.Return != nil {
		head = doc.Concat(head, doc.Text(" -> "), f.typeAst(n.Return))
	}
	return doc.ForceBreak(doc.Group(doc.Concat(
		head,
		doc.Text(" {"),
		doc.Nest(Indent, doc.Concat(doc.Line(), f.statements(n.Body, n.Span_.End))),
		doc.Line(),
		doc.Text("}"),
	)))
}

func joinComma(items []doc.Doc) doc.Doc {
	parts := make([]doc.Doc, 0, len(items)*2)
	for i, it := range items {
		if i > 0 {
			parts = append(parts, doc.Text(", "))
		}
		parts = append(parts, it)
	}
	return doc.Concat(parts...)
}

// isBreakableForm reports when a call/tuple/record update's last argument
// may be marked next-break-fits.
func isBreakableForm(e ast.Expr) bool {
	switch e.(type) {
	case ast.Fn, ast.Block, ast.Case, ast.List, ast.Tuple, ast.BitArray, ast.Call, ast.RecordUpdate:
		return true
	default:
		return false
	}
}

// isExprBinOp reports whether e is a binary operator, used by bit-array
// segment rendering to decide whether a value needs `{ … }` wrapping.
func isExprBinOp(e ast.Expr) bool {
	_, ok := e.(ast.BinOp)
	return ok
}

// isPackablePrimitive is the "packable primitive" atom test.
func isPackablePrimitive(e ast.Expr) bool {
	switch e.(type) {
	case ast.Int, ast.Float, ast.String, ast.Var, ast.Discard:
		return true
	default:
		return false
	}
}

