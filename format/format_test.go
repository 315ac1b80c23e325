package format_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eutampieri/gleam/ast"
	"github.com/eutampieri/gleam/extras"
	"github.com/eutampieri/gleam/format"
)

func render(t *testing.T, m *ast.Module, ex *extras.Extras) string {
	t.Helper()
	if ex == nil {
		ex = &extras.Extras{}
	}
	var sb strings.Builder
	require.NoError(t, format.Pretty(&sb, m, ex, "test.gleam"))
	return sb.String()
}

func span(start, end int) ast.Span { return ast.Span{Start: start, End: end} }

func TestImportSortingAndRedundantAliasRemoval(t *testing.T) {
	strAlias := "string"
	m := &ast.Module{
		Definitions: []ast.TargetedDefinition{
			{Definition: ast.Import{Span_: span(0, 10), Module: "gleam/string"}},
			{Definition: ast.Import{Span_: span(11, 30), Module: "gleam/int", Alias: &strAlias}},
		},
	}
	// redundant alias: "gleam/int as int" collapses because "int" is the
	// default module-access name for "gleam/int".
	intAlias := "int"
	m.Definitions[1].Definition = ast.Import{Span_: span(11, 30), Module: "gleam/int", Alias: &intAlias}

	got := render(t, m, nil)
	require.Equal(t, "import gleam/int\nimport gleam/string\n", got)
}

func TestImportGroupingPreservesAuthorBoundary(t *testing.T) {
	m := &ast.Module{
		Definitions: []ast.TargetedDefinition{
			{Definition: ast.Import{Span_: span(0, 8), Module: "a"}},
			{Definition: ast.Import{Span_: span(9, 17), Module: "b"}},
			{Definition: ast.Import{Span_: span(35, 43), Module: "d"}},
			{Definition: ast.Import{Span_: span(44, 52), Module: "c"}},
		},
	}
	ex := &extras.Extras{
		Comments: []extras.Comment{{Start: 20, Content: "// other group"}},
	}
	got := render(t, m, ex)
	require.Equal(t, "import a\nimport b\n\n// other group\nimport c\nimport d\n", got)
}

func TestModuleConstantNumericNormalisation(t *testing.T) {
	m := &ast.Module{
		Definitions: []ast.TargetedDefinition{
			{Definition: ast.ModuleConstant{
				Span_: span(0, 20),
				Public: true,
				Name:   "x",
				Value:  ast.Int{Span_: span(16, 23), Value: "1000000"},
			}},
		},
	}
	got := render(t, m, nil)
	require.Equal(t, "pub const x = 1_000_000\n", got)
}

func TestPipelineCaptureSimplification(t *testing.T) {
	// list.map(_, fn) used mid-pipeline simplifies to list.map(fn) since
	// the first hole is elided when the pipe supplies it.
	captureCall := ast.Call{
		Span_: span(0, 20),
		Fn:    ast.Var{Span_: span(0, 8), Name: "list.map"},
		Args: []ast.CallArg{
			{Span: span(9, 10), Value: ast.Discard{Span_: span(9, 10), Name: "_"}},
			{Span: span(12, 19), Value: ast.Var{Span_: span(12, 19), Name: "double"}},
		},
	}
	capture := ast.Fn{
		Span_: span(0, 20),
		Kind:  ast.FnKindCapture,
		Body:  []ast.Statement{ast.ExpressionStatement{Span_: span(0, 20), Expr: captureCall}},
	}
	pipeline := ast.Pipeline{
		Span_: span(0, 40),
		First: ast.Var{Span_: span(0, 5), Name: "items"},
		Steps: []ast.Expr{capture},
	}
	m := &ast.Module{
		Definitions: []ast.TargetedDefinition{
			{Definition: ast.Function{
				Span_:   span(0, 60),
				Name:    "run",
				Body:    []ast.Statement{ast.ExpressionStatement{Span_: span(0, 40), Expr: pipeline}},
				EndSpan: span(59, 60),
			}},
		},
	}
	got := render(t, m, nil)
	require.Equal(t, "fn run() {\n  items |> list.map(double)\n}\n", got)
}

func TestBareCaptureSimplifiesOutsidePipeline(t *testing.T) {
	captureCall := ast.Call{
		Span_: span(0, 10),
		Fn:    ast.Var{Span_: span(0, 6), Name: "negate"},
		Args: []ast.CallArg{
			{Span: span(7, 8), Value: ast.Discard{Span_: span(7, 8), Name: "_"}},
		},
	}
	capture := ast.Fn{
		Span_: span(0, 10),
		Kind:  ast.FnKindCapture,
		Body:  []ast.Statement{ast.ExpressionStatement{Span_: span(0, 10), Expr: captureCall}},
	}
	m := &ast.Module{
		Definitions: []ast.TargetedDefinition{
			{Definition: ast.Function{
				Span_:   span(0, 30),
				Name:    "run",
				Body:    []ast.Statement{ast.ExpressionStatement{Span_: span(0, 10), Expr: capture}},
				EndSpan: span(29, 30),
			}},
		},
	}
	got := render(t, m, nil)
	require.Equal(t, "fn run() {\n  negate\n}\n", got)
}

func TestUseWithoutTrailingBodyGetsSyntheticTodo(t *testing.T) {
	use := ast.Use{
		Span_:    span(0, 20),
		Patterns: []ast.Pattern{ast.PatternVar{Span_: span(4, 5), Name: "x"}},
		Call:     ast.Var{Span_: span(10, 20), Name: "get_value"},
	}
	m := &ast.Module{
		Definitions: []ast.TargetedDefinition{
			{Definition: ast.Function{
				Span_:   span(0, 40),
				Name:    "run",
				Body:    []ast.Statement{use},
				EndSpan: span(39, 40),
			}},
		},
	}
	got := render(t, m, nil)
	require.Equal(t, "fn run() {\n  use x <- get_value\n  todo\n}\n", got)
}

func TestRecordUpdateRendersConstructorAndSpread(t *testing.T) {
	ru := ast.RecordUpdate{
		Span_:       span(0, 30),
		Constructor: ast.Var{Span_: span(0, 6), Name: "Person"},
		Record:      ast.Var{Span_: span(9, 10), Name: "p"},
		Args: []ast.RecordUpdateArg{
			{Span: span(12, 25), Label: "name", Value: ast.String{Span_: span(18, 25), Value: "Joe"}},
		},
	}
	m := &ast.Module{
		Definitions: []ast.TargetedDefinition{
			{Definition: ast.Function{
				Span_:   span(0, 50),
				Name:    "run",
				Body:    []ast.Statement{ast.ExpressionStatement{Span_: span(0, 30), Expr: ru}},
				EndSpan: span(49, 50),
			}},
		},
	}
	got := render(t, m, nil)
	require.Equal(t, "fn run() {\n  Person(..p, name: \"Joe\")\n}\n", got)
}

func TestAssertStatementRendersBare(t *testing.T) {
	assertStmt := ast.Assert{
		Span_: span(0, 15),
		Value: ast.Var{Span_: span(7, 15), Name: "ok"},
	}
	m := &ast.Module{
		Definitions: []ast.TargetedDefinition{
			{Definition: ast.Function{
				Span_:   span(0, 30),
				Name:    "run",
				Body:    []ast.Statement{assertStmt},
				EndSpan: span(29, 30),
			}},
		},
	}
	got := render(t, m, nil)
	require.Equal(t, "fn run() {\n  assert ok\n}\n", got)
}

func TestAssertStatementWithMessageAndBinOpValue(t *testing.T) {
	value := ast.BinOp{
		Span_: span(7, 15),
		Name:  "==",
		Left:  ast.Var{Span_: span(7, 8), Name: "x"},
		Right: ast.Var{Span_: span(12, 13), Name: "y"},
	}
	assertStmt := ast.Assert{
		Span_:   span(0, 30),
		Value:   value,
		Message: ast.String{Span_: span(20, 30), Value: "mismatch"},
	}
	m := &ast.Module{
		Definitions: []ast.TargetedDefinition{
			{Definition: ast.Function{
				Span_:   span(0, 50),
				Name:    "run",
				Body:    []ast.Statement{assertStmt},
				EndSpan: span(49, 50),
			}},
		},
	}
	got := render(t, m, nil)
	require.Equal(t, "fn run() {\n  assert x == y as \"mismatch\"\n}\n", got)
}

func TestBinOpItemNestsOnlyAmongMultipleListSiblings(t *testing.T) {
	binOp := func(s, e int) ast.Expr {
		return ast.BinOp{
			Span_: span(s, e),
			Name:  "+",
			Left:  ast.Var{Span_: span(s, s+1), Name: "a"},
			Right: ast.Var{Span_: span(s+4, s+5), Name: "b"},
		}
	}

	t.Run("single element never nests", func(t *testing.T) {
		list := ast.List{Span_: span(0, 10), Elements: []ast.Expr{binOp(1, 6)}}
		m := &ast.Module{Definitions: []ast.TargetedDefinition{
			{Definition: ast.Function{Span_: span(0, 30), Name: "run", Body: []ast.Statement{ast.ExpressionStatement{Span_: span(0, 10), Expr: list}}, EndSpan: span(29, 30)}},
		}}
		got := render(t, m, nil)
		require.Equal(t, "fn run() {\n  [a + b]\n}\n", got)
	})

	t.Run("multiple elements still print the same when flat", func(t *testing.T) {
		list := ast.List{Span_: span(0, 20), Elements: []ast.Expr{binOp(1, 6), binOp(10, 15)}}
		m := &ast.Module{Definitions: []ast.TargetedDefinition{
			{Definition: ast.Function{Span_: span(0, 40), Name: "run", Body: []ast.Statement{ast.ExpressionStatement{Span_: span(0, 20), Expr: list}}, EndSpan: span(39, 40)}},
		}}
		got := render(t, m, nil)
		require.Equal(t, "fn run() {\n  [a + b, a + b]\n}\n", got)
	})
}

func TestMultiLineStringLiteralForcesEnclosingGroupToBreak(t *testing.T) {
	s := ast.String{Span_: span(0, 10), Value: "line one\nline two"}
	m := &ast.Module{
		Definitions: []ast.TargetedDefinition{
			{Definition: ast.Function{
				Span_:   span(0, 30),
				Name:    "run",
				Body:    []ast.Statement{ast.ExpressionStatement{Span_: span(0, 10), Expr: s}},
				EndSpan: span(29, 30),
			}},
		},
	}
	got := render(t, m, nil)
	require.Equal(t, "fn run() {\n  \"line one\nline two\"\n}\n", got)
}

func TestBinOpStringOperandSplitsAndRejoinsAtColumnZero(t *testing.T) {
	left := ast.String{Span_: span(7, 20), Value: "a\nb"}
	right := ast.Var{Span_: span(24, 25), Name: "x"}
	binOp := ast.BinOp{Span_: span(7, 25), Name: "<>", Left: left, Right: right}
	m := &ast.Module{
		Definitions: []ast.TargetedDefinition{
			{Definition: ast.Function{
				Span_:   span(0, 40),
				Name:    "run",
				Body:    []ast.Statement{ast.ExpressionStatement{Span_: span(7, 25), Expr: binOp}},
				EndSpan: span(39, 40),
			}},
		},
	}
	got := render(t, m, nil)
	require.Equal(t, "fn run() {\n  \"a\nb\" <>\n  x\n}\n", got)
}

func TestExternalFunctionHasNoBody(t *testing.T) {
	erlangModule := "math"
	m := &ast.Module{
		Definitions: []ast.TargetedDefinition{
			{Definition: ast.Function{
				Span_: span(0, 30),
				Attributes: ast.Attributes{
					ExternalErlang: &ast.ExternalImplementation{Module: erlangModule, Function: "sqrt"},
				},
				Public:     true,
				Name:       "sqrt",
				Parameters: []ast.FunctionParameter{{Span: span(10, 20), Pattern: ast.PatternVar{Span_: span(10, 20), Name: "x"}}},
				Body:       []ast.Statement{ast.PlaceholderStatement{Span_: span(28, 29)}},
				EndSpan:    span(29, 30),
			}},
		},
	}
	got := render(t, m, nil)
	require.Equal(t, "@external(erlang, \"math\", \"sqrt\")\npub fn sqrt(x)\n", got)
}
