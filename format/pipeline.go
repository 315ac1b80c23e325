package format

import (
	"github.com/eutampieri/gleam/ast"
	"github.com/eutampieri/gleam/doc"
)

// pipeline renders a bare pipeline expression: no stage nests by Indent,
// regardless of whether it is itself a binary operator.
func (f *formatter) pipeline(n ast.Pipeline) doc.Doc {
	return f.pipelineWithNest(n, false)
}

// pipelineNested is pipeline, but nests a binary-operator stage by Indent.
// It is only used when the pipeline itself is a comma-separated item among
// more than one sibling (see commaSeparatedItem), matching the
// multi-sibling nesting rule binary operators get in the same context.
func (f *formatter) pipelineNested(n ast.Pipeline) doc.Doc {
	return f.pipelineWithNest(n, true)
}

func (f *formatter) pipelineWithNest(n ast.Pipeline, nestPipe bool) doc.Doc {
	stages := make([]ast.Expr, 0, len(n.Steps)+1)
	stages = append(stages, n.First)
	stages = append(stages, n.Steps...)

	flat := !f.cursor.SpansMultipleLines(n.Span_.Start, n.Span_.End)

	parts := make([]doc.Doc, 0, len(stages)*2)
	for i, s := range stages {
		afterPipe := i > 0
		if afterPipe {
			if flat {
				parts = append(parts, doc.Text(" |> "))
			} else {
				parts = append(parts, doc.Line(), doc.Text("|> "))
			}
		}
		parts = append(parts, f.pipelineStage(s, afterPipe, nestPipe))
	}

	d := doc.Concat(parts...)
	if flat {
		return doc.Group(d)
	}
	return doc.ForceBreak(doc.Group(d))
}

// pipelineStage renders one stage of a pipeline. A capture stage to the
// right of a `|>` is desugared (see simplifyCapture); a binary-operator
// stage to the right of a `|>` nests by Indent only when nestPipe is set,
// so readers can tell the stage apart from an ordinary operator operand.
func (f *formatter) pipelineStage(e ast.Expr, afterPipe, nestPipe bool) doc.Doc {
	if afterPipe {
		if fn, ok := e.(ast.Fn); ok && fn.Kind == ast.FnKindCapture {
			return f.simplifyCapture(fn, true)
		}
	}
	d := f.expr(e)
	if _, ok := e.(ast.BinOp); ok && afterPipe && nestPipe {
		return doc.Nest(Indent, d)
	}
	return d
}

// extractCaptureCall returns the Call a capture's desugared Fn wraps. A
// capture's body is contractually a single ExpressionStatement around a
// Call (see ast.Fn's doc comment); anything else means the AST handed to
// format was not actually produced by a parser honouring that contract.
func extractCaptureCall(fn ast.Fn) ast.Call {
	if len(fn.Body) != 1 {
		invariant("capture body must be exactly one statement, got %d", len(fn.Body))
	}
	stmt, ok := fn.Body[0].(ast.ExpressionStatement)
	if !ok {
		invariant("capture body must wrap a call expression, got %T", fn.Body[0])
	}
	call, ok := stmt.Expr.(ast.Call)
	if !ok {
		invariant("capture body must wrap a call expression, got %T", stmt.Expr)
	}
	return call
}

func isDiscardExpr(e ast.Expr) bool {
	_, ok := e.(ast.Discard)
	return ok
}

// simplifyCapture renders a function-capture expression. A capture whose
// only argument is an unlabelled hole always simplifies to the bare
// function reference (`f(_)` → `f`). When elideFirstHoleWithArgs is set
// (the capture is a non-leading pipeline stage), a hole in first position
// alongside other arguments also elides, since the pipe already supplies
// that position (`f(_, y)` → `f(y)`); outside that context the hole is
// printed literally as `_` like any other argument.
func (f *formatter) simplifyCapture(fn ast.Fn, elideFirstHoleWithArgs bool) doc.Doc {
	call := extractCaptureCall(fn)
	if len(call.Args) > 0 && call.Args[0].Label == nil && isDiscardExpr(call.Args[0].Value) {
		remaining := call.Args[1:]
		if len(remaining) == 0 {
			return f.expr(call.Fn)
		}
		if elideFirstHoleWithArgs {
			reduced := ast.Call{Span_: call.Span_, Fn: call.Fn, Args: remaining}
			return f.call(reduced)
		}
	}
	return f.call(call)
}
