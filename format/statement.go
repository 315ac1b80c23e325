package format

import (
	"github.com/eutampieri/gleam/ast"
	"github.com/eutampieri/gleam/doc"
)

// statements renders a block's statement list, popping each statement's
// leading comments and preserved blank lines, separated one per line, and
// appending a synthetic `todo` when the block ends in a bare `use` with no
// following statement. blockEnd is the span end of the
// enclosing block/body, used to absorb any trailing comments before the
// closing brace.
func (f *formatter) statements(stmts []ast.Statement, blockEnd int) doc.Doc {
	parts := make([]doc.Doc, 0, len(stmts)*2+1)
	for i, s := range stmts {
		if i > 0 && f.precedingBlankLine(s.Span().Start) {
			parts = append(parts, doc.Line())
		}
		parts = append(parts, f.commentsBefore(s.Span().Start, true))
		parts = append(parts, f.statement(s))
		if i < len(stmts)-1 {
			parts = append(parts, doc.Line())
		}
	}

	if n := len(stmts); n > 0 {
		if _, ok := stmts[n-1].(ast.Use); ok {
			parts = append(parts, doc.Line(), doc.Text("todo"))
		}
	}

	trailing := f.trailingComments(blockEnd)
	if trailing != nil {
		if len(stmts) > 0 {
			parts = append(parts, doc.Line())
		}
		parts = append(parts, trailing)
	}

	return doc.Concat(parts...)
}

func (f *formatter) statement(s ast.Statement) doc.Doc {
	switch n := s.(type) {
	case ast.ExpressionStatement:
		return f.expr(n.Expr)

	case ast.Assignment:
		return f.assignment(n)

	case ast.Use:
		return f.use(n)

	case ast.Assert:
		return f.assert(n)

	case ast.PlaceholderStatement:
		invariant("placeholder statement reached format outside an external function body")
		return nil

	default:
		invariant("unrecognised statement type %T", s)
		return nil
	}
}

func (f *formatter) assignment(n ast.Assignment) doc.Doc {
	kw := "let "
	if n.Kind == ast.AssignmentLetAssert {
		kw = "let assert "
	}

	head := doc.Concat(doc.Text(kw), f.pattern(n.Pattern))
	if n.Annotation != nil {
		head = doc.Concat(head, doc.Text(": "), f.typeAst(n.Annotation))
	}

	d := doc.Group(doc.Concat(
		head,
		doc.Text(" ="),
		doc.Nest(Indent, doc.Concat(doc.SoftBreak("", " "), f.expr(n.Value))),
	))

	return f.appendExpressionMessage(d, n.Message)
}

// assert renders a standalone `assert <expr> [as <msg>]` statement. Like
// echo, the value nests by Indent when it is itself a binary operator or
// pipeline, and any `as <msg>` follows the expression-preceded layout.
func (f *formatter) assert(n ast.Assert) doc.Doc {
	value := f.expr(n.Value)
	if isBinOpOrPipeline(n.Value) {
		value = doc.Nest(Indent, value)
	}
	head := doc.Concat(doc.Text("assert "), value)
	return f.appendExpressionMessage(head, n.Message)
}

func (f *formatter) use(n ast.Use) doc.Doc {
	pats := make([]doc.Doc, len(n.Patterns))
	for i, p := range n.Patterns {
		pats[i] = f.pattern(p)
	}
	var patsDoc doc.Doc
	if len(pats) > 0 {
		patsDoc = doc.Concat(joinComma(pats), doc.Text(" "))
	}
	return doc.Concat(doc.Text("use "), patsDoc, doc.Text("<- "), f.expr(n.Call))
}
