package moduleio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eutampieri/gleam/ast"
	"github.com/eutampieri/gleam/internal/moduleio"
)

func TestDecodeModuleConstant(t *testing.T) {
	doc := `{
		"module": {
			"definitions": [
				{
					"target": "none",
					"definition": {
						"kind": "module_constant",
						"span": {"start": 0, "end": 20},
						"public": true,
						"name": "max_retries",
						"value": {"kind": "int", "span": {"start": 16, "end": 18}, "value": "10"}
					}
				}
			]
		},
		"extras": {}
	}`

	m, ex, err := moduleio.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.NotNil(t, ex)
	require.Len(t, m.Definitions, 1)

	mc, ok := m.Definitions[0].Definition.(ast.ModuleConstant)
	require.True(t, ok)
	require.Equal(t, "max_retries", mc.Name)
	require.True(t, mc.Public)

	val, ok := mc.Value.(ast.Int)
	require.True(t, ok)
	require.Equal(t, "10", val.Value)
}

func TestDecodeImportAndFunction(t *testing.T) {
	doc := `{
		"module": {
			"definitions": [
				{"target": "none", "definition": {
					"kind": "import", "span": {"start": 0, "end": 10}, "module": "gleam/int"
				}},
				{"target": "erlang", "definition": {
					"kind": "function",
					"span": {"start": 11, "end": 40},
					"public": true,
					"name": "double",
					"parameters": [
						{"span": {"start": 0, "end": 1}, "pattern": {"kind": "pattern_var", "span": {"start": 0, "end": 1}, "name": "x"}}
					],
					"body": [
						{"kind": "expression_statement", "span": {"start": 0, "end": 5}, "expr":
							{"kind": "bin_op", "span": {"start": 0, "end": 5}, "name": "*",
							 "left": {"kind": "var", "span": {"start": 0, "end": 1}, "name": "x"},
							 "right": {"kind": "int", "span": {"start": 4, "end": 5}, "value": "2"}}}
					],
					"end_span": {"start": 39, "end": 40}
				}}
			]
		},
		"extras": {}
	}`

	m, _, err := moduleio.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, m.Definitions, 2)

	imp, ok := m.Definitions[0].Definition.(ast.Import)
	require.True(t, ok)
	require.Equal(t, "gleam/int", imp.Module)

	require.Equal(t, ast.TargetErlang, m.Definitions[1].Target)
	fn, ok := m.Definitions[1].Definition.(ast.Function)
	require.True(t, ok)
	require.Equal(t, "double", fn.Name)
	require.Len(t, fn.Body, 1)
}
