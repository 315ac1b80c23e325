package moduleio

import (
	"encoding/json"
	"fmt"

	"github.com/eutampieri/gleam/ast"
)

func decodeStatements(items []json.RawMessage) ([]ast.Statement, error) {
	out := make([]ast.Statement, len(items))
	for i, raw := range items {
		s, err := decodeStatement(raw)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func decodeStatement(raw json.RawMessage) (ast.Statement, error) {
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "expression_statement":
		var v struct {
			Span spanJSON        `json:"span"`
			Expr json.RawMessage `json:"expr"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		e, err := decodeExpr(v.Expr)
		if err != nil {
			return nil, err
		}
		return ast.ExpressionStatement{Span_: span(v.Span), Expr: e}, nil

	case "assignment":
		var v struct {
			Span       spanJSON        `json:"span"`
			AssignKind string          `json:"assignment_kind"`
			Pattern    json.RawMessage `json:"pattern"`
			Annotation json.RawMessage `json:"annotation"`
			Value      json.RawMessage `json:"value"`
			Message    json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		pat, err := decodePattern(v.Pattern)
		if err != nil {
			return nil, err
		}
		ann, err := decodeOptionalTypeAst(v.Annotation)
		if err != nil {
			return nil, err
		}
		val, err := decodeExpr(v.Value)
		if err != nil {
			return nil, err
		}
		msg, err := decodeOptionalExpr(v.Message)
		if err != nil {
			return nil, err
		}
		assignKind := ast.AssignmentLet
		if v.AssignKind == "let_assert" {
			assignKind = ast.AssignmentLetAssert
		}
		return ast.Assignment{
			Span_:      span(v.Span),
			Kind:       assignKind,
			Pattern:    pat,
			Annotation: ann,
			Value:      val,
			Message:    msg,
		}, nil

	case "use":
		var v struct {
			Span     spanJSON          `json:"span"`
			Patterns []json.RawMessage `json:"patterns"`
			Call     json.RawMessage   `json:"call"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		pats, err := decodePatternList(v.Patterns)
		if err != nil {
			return nil, err
		}
		call, err := decodeExpr(v.Call)
		if err != nil {
			return nil, err
		}
		return ast.Use{Span_: span(v.Span), Patterns: pats, Call: call}, nil

	case "assert":
		var v struct {
			Span    spanJSON        `json:"span"`
			Value   json.RawMessage `json:"value"`
			Message json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		val, err := decodeExpr(v.Value)
		if err != nil {
			return nil, err
		}
		msg, err := decodeOptionalExpr(v.Message)
		if err != nil {
			return nil, err
		}
		return ast.Assert{Span_: span(v.Span), Value: val, Message: msg}, nil

	case "placeholder_statement":
		var v struct {
			Span spanJSON `json:"span"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return ast.PlaceholderStatement{Span_: span(v.Span)}, nil

	default:
		return nil, fmt.Errorf("unknown statement kind %q", kind)
	}
}

func decodeOptionalExpr(raw json.RawMessage) (ast.Expr, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	return decodeExpr(raw)
}

func decodeExprList(items []json.RawMessage) ([]ast.Expr, error) {
	out := make([]ast.Expr, len(items))
	for i, raw := range items {
		e, err := decodeExpr(raw)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func decodeExpr(raw json.RawMessage) (ast.Expr, error) {
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "int":
		var v struct {
			Span  spanJSON `json:"span"`
			Value string   `json:"value"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return ast.Int{Span_: span(v.Span), Value: v.Value}, nil

	case "float":
		var v struct {
			Span  spanJSON `json:"span"`
			Value string   `json:"value"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return ast.Float{Span_: span(v.Span), Value: v.Value}, nil

	case "string":
		var v struct {
			Span  spanJSON `json:"span"`
			Value string   `json:"value"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return ast.String{Span_: span(v.Span), Value: v.Value}, nil

	case "var":
		var v struct {
			Span spanJSON `json:"span"`
			Name string   `json:"name"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return ast.Var{Span_: span(v.Span), Name: v.Name}, nil

	case "discard":
		var v struct {
			Span spanJSON `json:"span"`
			Name string   `json:"name"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return ast.Discard{Span_: span(v.Span), Name: v.Name}, nil

	case "fn":
		var v struct {
			Span       spanJSON            `json:"span"`
			Capture    bool                `json:"capture"`
			Parameters []functionParamJSON `json:"parameters"`
			Return     json.RawMessage     `json:"return"`
			Body       []json.RawMessage   `json:"body"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		params, err := decodeFunctionParameters(v.Parameters)
		if err != nil {
			return nil, err
		}
		ret, err := decodeOptionalTypeAst(v.Return)
		if err != nil {
			return nil, err
		}
		body, err := decodeStatements(v.Body)
		if err != nil {
			return nil, err
		}
		kindVal := ast.FnKindOrdinary
		if v.Capture {
			kindVal = ast.FnKindCapture
		}
		return ast.Fn{Span_: span(v.Span), Kind: kindVal, Parameters: params, Return: ret, Body: body}, nil

	case "call":
		var v struct {
			Span spanJSON          `json:"span"`
			Fn   json.RawMessage   `json:"fn"`
			Args []callArgJSON     `json:"args"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		fn, err := decodeExpr(v.Fn)
		if err != nil {
			return nil, err
		}
		args, err := decodeCallArgs(v.Args)
		if err != nil {
			return nil, err
		}
		return ast.Call{Span_: span(v.Span), Fn: fn, Args: args}, nil

	case "bin_op":
		var v struct {
			Span  spanJSON        `json:"span"`
			Name  string          `json:"name"`
			Left  json.RawMessage `json:"left"`
			Right json.RawMessage `json:"right"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		left, err := decodeExpr(v.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(v.Right)
		if err != nil {
			return nil, err
		}
		return ast.BinOp{Span_: span(v.Span), Name: v.Name, Left: left, Right: right}, nil

	case "pipeline":
		var v struct {
			Span  spanJSON          `json:"span"`
			First json.RawMessage   `json:"first"`
			Steps []json.RawMessage `json:"steps"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		first, err := decodeExpr(v.First)
		if err != nil {
			return nil, err
		}
		steps, err := decodeExprList(v.Steps)
		if err != nil {
			return nil, err
		}
		return ast.Pipeline{Span_: span(v.Span), First: first, Steps: steps}, nil

	case "block":
		var v struct {
			Span       spanJSON          `json:"span"`
			Statements []json.RawMessage `json:"statements"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		stmts, err := decodeStatements(v.Statements)
		if err != nil {
			return nil, err
		}
		return ast.Block{Span_: span(v.Span), Statements: stmts}, nil

	case "case":
		var v struct {
			Span     spanJSON          `json:"span"`
			Subjects []json.RawMessage `json:"subjects"`
			Clauses  []clauseJSON      `json:"clauses"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		subjects, err := decodeExprList(v.Subjects)
		if err != nil {
			return nil, err
		}
		clauses := make([]ast.Clause, len(v.Clauses))
		for i, c := range v.Clauses {
			cl, err := decodeClause(c)
			if err != nil {
				return nil, err
			}
			clauses[i] = cl
		}
		return ast.Case{Span_: span(v.Span), Subjects: subjects, Clauses: clauses}, nil

	case "list":
		var v struct {
			Span     spanJSON          `json:"span"`
			Elements []json.RawMessage `json:"elements"`
			Tail     json.RawMessage   `json:"tail"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		els, err := decodeExprList(v.Elements)
		if err != nil {
			return nil, err
		}
		tail, err := decodeOptionalExpr(v.Tail)
		if err != nil {
			return nil, err
		}
		return ast.List{Span_: span(v.Span), Elements: els, Tail: tail}, nil

	case "tuple":
		var v struct {
			Span     spanJSON          `json:"span"`
			Elements []json.RawMessage `json:"elements"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		els, err := decodeExprList(v.Elements)
		if err != nil {
			return nil, err
		}
		return ast.Tuple{Span_: span(v.Span), Elements: els}, nil

	case "bit_array":
		var v struct {
			Span     spanJSON               `json:"span"`
			Segments []bitArraySegmentJSON `json:"segments"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		segs, err := decodeExprBitArraySegments(v.Segments)
		if err != nil {
			return nil, err
		}
		return ast.BitArray{Span_: span(v.Span), Segments: segs}, nil

	case "record_update":
		var v struct {
			Span        spanJSON               `json:"span"`
			Constructor json.RawMessage        `json:"constructor"`
			Record      json.RawMessage        `json:"record"`
			Args        []recordUpdateArgJSON `json:"args"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		ctor, err := decodeExpr(v.Constructor)
		if err != nil {
			return nil, err
		}
		record, err := decodeExpr(v.Record)
		if err != nil {
			return nil, err
		}
		args := make([]ast.RecordUpdateArg, len(v.Args))
		for i, a := range v.Args {
			val, err := decodeExpr(a.Value)
			if err != nil {
				return nil, err
			}
			args[i] = ast.RecordUpdateArg{Span: span(a.Span), Label: a.Label, Value: val}
		}
		return ast.RecordUpdate{Span_: span(v.Span), Constructor: ctor, Record: record, Args: args}, nil

	case "field_access":
		var v struct {
			Span      spanJSON        `json:"span"`
			Container json.RawMessage `json:"container"`
			Label     string          `json:"label"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		container, err := decodeExpr(v.Container)
		if err != nil {
			return nil, err
		}
		return ast.FieldAccess{Span_: span(v.Span), Container: container, Label: v.Label}, nil

	case "tuple_index":
		var v struct {
			Span  spanJSON        `json:"span"`
			Tuple json.RawMessage `json:"tuple"`
			Index int             `json:"index"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		tuple, err := decodeExpr(v.Tuple)
		if err != nil {
			return nil, err
		}
		return ast.TupleIndex{Span_: span(v.Span), Tuple: tuple, Index: v.Index}, nil

	case "negate":
		var v struct {
			Span  spanJSON        `json:"span"`
			Bool  bool            `json:"bool"`
			Value json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		val, err := decodeExpr(v.Value)
		if err != nil {
			return nil, err
		}
		nk := ast.NegateInt
		if v.Bool {
			nk = ast.NegateBool
		}
		return ast.Negate{Span_: span(v.Span), Kind: nk, Value: val}, nil

	case "todo":
		var v struct {
			Span    spanJSON        `json:"span"`
			Message json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		msg, err := decodeOptionalExpr(v.Message)
		if err != nil {
			return nil, err
		}
		return ast.Todo{Span_: span(v.Span), Message: msg}, nil

	case "panic":
		var v struct {
			Span    spanJSON        `json:"span"`
			Message json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		msg, err := decodeOptionalExpr(v.Message)
		if err != nil {
			return nil, err
		}
		return ast.Panic{Span_: span(v.Span), Message: msg}, nil

	case "echo":
		var v struct {
			Span    spanJSON        `json:"span"`
			Value   json.RawMessage `json:"value"`
			Message json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		val, err := decodeOptionalExpr(v.Value)
		if err != nil {
			return nil, err
		}
		msg, err := decodeOptionalExpr(v.Message)
		if err != nil {
			return nil, err
		}
		return ast.Echo{Span_: span(v.Span), Value: val, Message: msg}, nil

	default:
		return nil, fmt.Errorf("unknown expression kind %q", kind)
	}
}

type callArgJSON struct {
	Span  spanJSON        `json:"span"`
	Label *string         `json:"label"`
	Value json.RawMessage `json:"value"`
}

func decodeCallArgs(items []callArgJSON) ([]ast.CallArg, error) {
	out := make([]ast.CallArg, len(items))
	for i, it := range items {
		val, err := decodeExpr(it.Value)
		if err != nil {
			return nil, err
		}
		out[i] = ast.CallArg{Span: span(it.Span), Label: it.Label, Value: val}
	}
	return out, nil
}

type recordUpdateArgJSON struct {
	Span  spanJSON        `json:"span"`
	Label string          `json:"label"`
	Value json.RawMessage `json:"value"`
}

type clauseJSON struct {
	Span     spanJSON            `json:"span"`
	Patterns [][]json.RawMessage `json:"patterns"`
	Guard    json.RawMessage     `json:"guard"`
	Value    json.RawMessage     `json:"value"`
}

func decodeClause(c clauseJSON) (ast.Clause, error) {
	patterns := make([][]ast.Pattern, len(c.Patterns))
	for i, group := range c.Patterns {
		pats, err := decodePatternList(group)
		if err != nil {
			return ast.Clause{}, err
		}
		patterns[i] = pats
	}
	guard, err := decodeOptionalExpr(c.Guard)
	if err != nil {
		return ast.Clause{}, err
	}
	value, err := decodeExpr(c.Value)
	if err != nil {
		return ast.Clause{}, err
	}
	return ast.Clause{Span: span(c.Span), Patterns: patterns, Guard: guard, Value: value}, nil
}
