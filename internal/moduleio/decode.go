// Package moduleio decodes a JSON-encoded module into *ast.Module and
// *extras.Extras, the boundary cmd/fnfmt uses in place of a real language
// front end. Every interface type in package ast (Expr, Pattern, Statement,
// TypeAst, Definition, BitArraySizeExpr) is represented in JSON as an object
// carrying a "kind" discriminator alongside its fields; Decode dispatches on
// that tag the way an encoding/json custom unmarshaler would, since the
// stdlib cannot do this dispatch on its own for a Go interface field.
package moduleio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/eutampieri/gleam/ast"
	"github.com/eutampieri/gleam/extras"
)

// Decode reads a JSON-encoded module document from r and returns the
// *ast.Module and *extras.Extras it describes.
func Decode(r io.Reader) (*ast.Module, *extras.Extras, error) {
	var doc struct {
		Module json.RawMessage `json:"module"`
		Extras extras.Extras   `json:"extras"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("decode document: %w", err)
	}

	var rawModule struct {
		Definitions []json.RawMessage `json:"definitions"`
	}
	if err := json.Unmarshal(doc.Module, &rawModule); err != nil {
		return nil, nil, fmt.Errorf("decode module: %w", err)
	}

	m := &ast.Module{Definitions: make([]ast.TargetedDefinition, len(rawModule.Definitions))}
	for i, raw := range rawModule.Definitions {
		td, err := decodeTargetedDefinition(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("definition %d: %w", i, err)
		}
		m.Definitions[i] = td
	}

	return m, &doc.Extras, nil
}

func span(s spanJSON) ast.Span { return ast.Span{Start: s.Start, End: s.End} }

type spanJSON struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func kindOf(raw json.RawMessage) (string, error) {
	var k struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(raw, &k); err != nil {
		return "", err
	}
	if k.Kind == "" {
		return "", fmt.Errorf("missing \"kind\" discriminator in %s", raw)
	}
	return k.Kind, nil
}

func targetOf(s string) ast.Target {
	switch s {
	case "erlang":
		return ast.TargetErlang
	case "javascript":
		return ast.TargetJavaScript
	default:
		return ast.TargetNone
	}
}

func decodeAttributes(a attributesJSON) ast.Attributes {
	attrs := ast.Attributes{Deprecated: a.Deprecated, Internal: a.Internal}
	if a.ExternalErlang != nil {
		attrs.ExternalErlang = &ast.ExternalImplementation{Module: a.ExternalErlang.Module, Function: a.ExternalErlang.Function}
	}
	if a.ExternalJavaScript != nil {
		attrs.ExternalJavaScript = &ast.ExternalImplementation{Module: a.ExternalJavaScript.Module, Function: a.ExternalJavaScript.Function}
	}
	return attrs
}

type attributesJSON struct {
	Deprecated         *string                `json:"deprecated"`
	ExternalErlang     *externalImplJSON      `json:"external_erlang"`
	ExternalJavaScript *externalImplJSON      `json:"external_javascript"`
	Internal           bool                   `json:"internal"`
}

type externalImplJSON struct {
	Module   string `json:"module"`
	Function string `json:"function"`
}

func decodeTargetedDefinition(raw json.RawMessage) (ast.TargetedDefinition, error) {
	var td struct {
		Target     string          `json:"target"`
		Definition json.RawMessage `json:"definition"`
	}
	if err := json.Unmarshal(raw, &td); err != nil {
		return ast.TargetedDefinition{}, err
	}
	def, err := decodeDefinition(td.Definition)
	if err != nil {
		return ast.TargetedDefinition{}, err
	}
	return ast.TargetedDefinition{Target: targetOf(td.Target), Definition: def}, nil
}

func decodeDefinition(raw json.RawMessage) (ast.Definition, error) {
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "import":
		var v struct {
			Span              spanJSON            `json:"span"`
			Module            string              `json:"module"`
			UnqualifiedTypes  []unqualifiedImport `json:"unqualified_types"`
			UnqualifiedValues []unqualifiedImport `json:"unqualified_values"`
			Alias             *string             `json:"alias"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return ast.Import{
			Span_:             span(v.Span),
			Module:            v.Module,
			UnqualifiedTypes:  toUnqualified(v.UnqualifiedTypes, true),
			UnqualifiedValues: toUnqualified(v.UnqualifiedValues, false),
			Alias:             v.Alias,
		}, nil

	case "function":
		var v struct {
			Span       spanJSON            `json:"span"`
			Doc        *string             `json:"doc"`
			Attributes attributesJSON      `json:"attributes"`
			Public     bool                `json:"public"`
			Name       string              `json:"name"`
			Parameters []functionParamJSON `json:"parameters"`
			Return     json.RawMessage     `json:"return"`
			Body       []json.RawMessage   `json:"body"`
			EndSpan    spanJSON            `json:"end_span"`
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
		return ast.Function{
			Span_:      span(v.Span),
			Doc:        v.Doc,
			Attributes: decodeAttributes(v.Attributes),
			Public:     v.Public,
			Name:       v.Name,
			Parameters: params,
			Return:     ret,
			Body:       body,
			EndSpan:    span(v.EndSpan),
		}, nil

	case "custom_type":
		var v struct {
			Span         spanJSON             `json:"span"`
			Doc          *string              `json:"doc"`
			Attributes   attributesJSON       `json:"attributes"`
			Public       bool                 `json:"public"`
			Opaque       bool                 `json:"opaque"`
			Name         string               `json:"name"`
			Parameters   []string             `json:"parameters"`
			Constructors []recordCtorJSON     `json:"constructors"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		ctors := make([]ast.RecordConstructor, len(v.Constructors))
		for i, c := range v.Constructors {
			rc, err := decodeRecordConstructor(c)
			if err != nil {
				return nil, err
			}
			ctors[i] = rc
		}
		return ast.CustomType{
			Span_:        span(v.Span),
			Doc:          v.Doc,
			Attributes:   decodeAttributes(v.Attributes),
			Public:       v.Public,
			Opaque:       v.Opaque,
			Name:         v.Name,
			Parameters:   v.Parameters,
			Constructors: ctors,
		}, nil

	case "type_alias":
		var v struct {
			Span       spanJSON        `json:"span"`
			Doc        *string         `json:"doc"`
			Attributes attributesJSON  `json:"attributes"`
			Public     bool            `json:"public"`
			Name       string          `json:"name"`
			Parameters []string        `json:"parameters"`
			Type       json.RawMessage `json:"type"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		t, err := decodeTypeAst(v.Type)
		if err != nil {
			return nil, err
		}
		return ast.TypeAlias{
			Span_:      span(v.Span),
			Doc:        v.Doc,
			Attributes: decodeAttributes(v.Attributes),
			Public:     v.Public,
			Name:       v.Name,
			Parameters: v.Parameters,
			Type:       t,
		}, nil

	case "module_constant":
		var v struct {
			Span       spanJSON        `json:"span"`
			Doc        *string         `json:"doc"`
			Attributes attributesJSON  `json:"attributes"`
			Public     bool            `json:"public"`
			Name       string          `json:"name"`
			Annotation json.RawMessage `json:"annotation"`
			Value      json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
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
		return ast.ModuleConstant{
			Span_:      span(v.Span),
			Doc:        v.Doc,
			Attributes: decodeAttributes(v.Attributes),
			Public:     v.Public,
			Name:       v.Name,
			Annotation: ann,
			Value:      val,
		}, nil

	default:
		return nil, fmt.Errorf("unknown definition kind %q", kind)
	}
}

type unqualifiedImport struct {
	Span  spanJSON `json:"span"`
	Name  string   `json:"name"`
	Alias *string  `json:"alias"`
}

func toUnqualified(items []unqualifiedImport, isType bool) []ast.UnqualifiedImport {
	out := make([]ast.UnqualifiedImport, len(items))
	for i, it := range items {
		out[i] = ast.UnqualifiedImport{Span: span(it.Span), Name: it.Name, Alias: it.Alias, IsType: isType}
	}
	return out
}

type functionParamJSON struct {
	Span       spanJSON        `json:"span"`
	Label      *string         `json:"label"`
	Pattern    json.RawMessage `json:"pattern"`
	Annotation json.RawMessage `json:"annotation"`
}

func decodeFunctionParameters(items []functionParamJSON) ([]ast.FunctionParameter, error) {
	out := make([]ast.FunctionParameter, len(items))
	for i, it := range items {
		pat, err := decodePattern(it.Pattern)
		if err != nil {
			return nil, err
		}
		ann, err := decodeOptionalTypeAst(it.Annotation)
		if err != nil {
			return nil, err
		}
		out[i] = ast.FunctionParameter{Span: span(it.Span), Label: it.Label, Pattern: pat, Annotation: ann}
	}
	return out, nil
}

type recordCtorFieldJSON struct {
	Span  spanJSON        `json:"span"`
	Label *string         `json:"label"`
	Type  json.RawMessage `json:"type"`
}

type recordCtorJSON struct {
	Span       spanJSON              `json:"span"`
	Doc        *string               `json:"doc"`
	Attributes attributesJSON        `json:"attributes"`
	Name       string                `json:"name"`
	Fields     []recordCtorFieldJSON `json:"fields"`
}

func decodeRecordConstructor(v recordCtorJSON) (ast.RecordConstructor, error) {
	fields := make([]ast.RecordConstructorField, len(v.Fields))
	for i, f := range v.Fields {
		t, err := decodeTypeAst(f.Type)
		if err != nil {
			return ast.RecordConstructor{}, err
		}
		fields[i] = ast.RecordConstructorField{Span: span(f.Span), Label: f.Label, Type: t}
	}
	return ast.RecordConstructor{
		Span:       span(v.Span),
		Doc:        v.Doc,
		Attributes: decodeAttributes(v.Attributes),
		Name:       v.Name,
		Fields:     fields,
	}, nil
}

func decodeOptionalTypeAst(raw json.RawMessage) (ast.TypeAst, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	return decodeTypeAst(raw)
}

func decodeTypeAst(raw json.RawMessage) (ast.TypeAst, error) {
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "type_name":
		var v struct {
			Span   spanJSON          `json:"span"`
			Module *string           `json:"module"`
			Name   string            `json:"name"`
			Args   []json.RawMessage `json:"args"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		args, err := decodeTypeAstList(v.Args)
		if err != nil {
			return nil, err
		}
		return ast.TypeName{Span_: span(v.Span), Module: v.Module, Name: v.Name, Args: args}, nil

	case "type_var":
		var v struct {
			Span spanJSON `json:"span"`
			Name string   `json:"name"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return ast.TypeVar{Span_: span(v.Span), Name: v.Name}, nil

	case "type_fn":
		var v struct {
			Span   spanJSON          `json:"span"`
			Args   []json.RawMessage `json:"args"`
			Return json.RawMessage   `json:"return"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		args, err := decodeTypeAstList(v.Args)
		if err != nil {
			return nil, err
		}
		ret, err := decodeTypeAst(v.Return)
		if err != nil {
			return nil, err
		}
		return ast.TypeFn{Span_: span(v.Span), Args: args, Return: ret}, nil

	case "type_tuple":
		var v struct {
			Span     spanJSON          `json:"span"`
			Elements []json.RawMessage `json:"elements"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		els, err := decodeTypeAstList(v.Elements)
		if err != nil {
			return nil, err
		}
		return ast.TypeTuple{Span_: span(v.Span), Elements: els}, nil

	case "type_hole":
		var v struct {
			Span spanJSON `json:"span"`
			Name string   `json:"name"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return ast.TypeHole{Span_: span(v.Span), Name: v.Name}, nil

	default:
		return nil, fmt.Errorf("unknown type kind %q", kind)
	}
}

func decodeTypeAstList(items []json.RawMessage) ([]ast.TypeAst, error) {
	out := make([]ast.TypeAst, len(items))
	for i, raw := range items {
		t, err := decodeTypeAst(raw)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}
