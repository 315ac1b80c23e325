package format

import (
	"github.com/eutampieri/gleam/ast"
	"github.com/eutampieri/gleam/doc"
)

func (f *formatter) caseExpr(n ast.Case) doc.Doc {
	subjects := make([]doc.Doc, len(n.Subjects))
	for i, s := range n.Subjects {
		subjects[i] = f.expr(s)
	}

	clauses := make([]doc.Doc, 0, len(n.Clauses))
	for i, cl := range n.Clauses {
		if i > 0 && f.precedingBlankLine(cl.Span.Start) {
			clauses = append(clauses, doc.Line())
		}
		clauses = append(clauses, f.commentsBefore(cl.Span.Start, false), f.clause(cl, len(n.Subjects)), doc.Line())
	}

	return doc.ForceBreak(doc.Group(doc.Concat(
		doc.Text("case "),
		joinComma(subjects),
		doc.Text(" {"),
		doc.Nest(Indent, doc.Concat(doc.Line(), doc.Concat(clauses...), f.trailingComments(n.Span_.End))),
		doc.Line(),
		doc.Text("}"),
	)))
}

func (f *formatter) clause(cl ast.Clause, subjectCount int) doc.Doc {
	altIndent := 0
	if cl.Guard != nil && subjectCount == 1 {
		altIndent = Indent
	}

	alts := make([]doc.Doc, len(cl.Patterns))
	for i, group := range cl.Patterns {
		pats := make([]doc.Doc, len(group))
		for j, p := range group {
			pats[j] = f.pattern(p)
		}
		alts[i] = joinComma(pats)
	}
	altsDoc := joinWithSeparator(alts, doc.Concat(doc.Line(), doc.Nest(altIndent, doc.Text("| "))))

	var guard doc.Doc
	if cl.Guard != nil {
		guard = doc.Concat(doc.Text(" if "), f.guardExpr(cl.Guard))
	}

	needsOwnLineArrow := cl.Guard != nil || subjectCount > 1

	value := f.clauseValue(cl.Value)

	if needsOwnLineArrow {
		return doc.Group(doc.Concat(
			altsDoc, guard,
			doc.Nest(Indent, doc.Concat(doc.Line(), doc.Text("->"), value)),
		))
	}
	return doc.Group(doc.Concat(altsDoc, guard, doc.Text(" ->"), value))
}

// clauseValue lays out a clause's result expression per its per-kind
// attachment rules.
func (f *formatter) clauseValue(e ast.Expr) doc.Doc {
	switch e.(type) {
	case ast.Fn, ast.List, ast.Tuple, ast.BitArray:
		return doc.Concat(doc.Text(" "), f.expr(e))
	case ast.Case:
		return doc.Nest(Indent, doc.Concat(doc.Line(), f.expr(e)))
	case ast.Block:
		return doc.Concat(doc.Text(" "), f.expr(e))
	default:
		return doc.Nest(Indent, doc.Concat(doc.SoftBreak("", " "), f.expr(e)))
	}
}

func joinWithSeparator(items []doc.Doc, sep doc.Doc) doc.Doc {
	parts := make([]doc.Doc, 0, len(items)*2)
	for i, it := range items {
		if i > 0 {
			parts = append(parts, sep)
		}
		parts = append(parts, it)
	}
	return doc.Concat(parts...)
}
