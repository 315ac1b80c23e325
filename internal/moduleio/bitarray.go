package moduleio

import (
	"encoding/json"
	"fmt"

	"github.com/eutampieri/gleam/ast"
)

type bitArrayOptionJSON struct {
	Span     spanJSON        `json:"span"`
	Kind     string          `json:"kind"`
	SizeExpr json.RawMessage `json:"size_expr"`
	N        int             `json:"n"`
}

var bitArrayOptionKinds = map[string]ast.BitArrayOptionKind{
	"bytes":           ast.BitArrayBytes,
	"bits":            ast.BitArrayBits,
	"int":             ast.BitArrayInt,
	"float":           ast.BitArrayFloat,
	"utf8":            ast.BitArrayUTF8,
	"utf16":           ast.BitArrayUTF16,
	"utf32":           ast.BitArrayUTF32,
	"utf8_codepoint":  ast.BitArrayUTF8Codepoint,
	"utf16_codepoint": ast.BitArrayUTF16Codepoint,
	"utf32_codepoint": ast.BitArrayUTF32Codepoint,
	"signed":          ast.BitArraySigned,
	"unsigned":        ast.BitArrayUnsigned,
	"big":             ast.BitArrayBig,
	"little":          ast.BitArrayLittle,
	"native":          ast.BitArrayNative,
	"size":            ast.BitArraySize,
	"size_short":      ast.BitArraySizeShort,
	"unit":            ast.BitArrayUnit,
}

func decodeBitArrayOptions(items []bitArrayOptionJSON) ([]ast.BitArrayOption, error) {
	out := make([]ast.BitArrayOption, len(items))
	for i, it := range items {
		k, ok := bitArrayOptionKinds[it.Kind]
		if !ok {
			return nil, fmt.Errorf("unknown bit array option kind %q", it.Kind)
		}
		opt := ast.BitArrayOption{Span: span(it.Span), Kind: k, N: it.N}
		if k == ast.BitArraySize && len(it.SizeExpr) > 0 && string(it.SizeExpr) != "null" {
			sizeExpr, err := decodeBitArraySizeExpr(it.SizeExpr)
			if err != nil {
				return nil, err
			}
			opt.SizeExpr = sizeExpr
		}
		out[i] = opt
	}
	return out, nil
}

func decodeBitArraySizeExpr(raw json.RawMessage) (ast.BitArraySizeExpr, error) {
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "bit_array_size_int":
		var v struct {
			Span  spanJSON `json:"span"`
			Value string   `json:"value"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return ast.BitArraySizeInt{Span_: span(v.Span), Value: v.Value}, nil

	case "bit_array_size_var":
		var v struct {
			Span spanJSON `json:"span"`
			Name string   `json:"name"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return ast.BitArraySizeVar{Span_: span(v.Span), Name: v.Name}, nil

	case "bit_array_size_bin_op":
		var v struct {
			Span  spanJSON        `json:"span"`
			Op    string          `json:"op"`
			Left  json.RawMessage `json:"left"`
			Right json.RawMessage `json:"right"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		left, err := decodeBitArraySizeExpr(v.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeBitArraySizeExpr(v.Right)
		if err != nil {
			return nil, err
		}
		return ast.BitArraySizeBinOp{Span_: span(v.Span), Op: v.Op, Left: left, Right: right}, nil

	case "bit_array_size_block":
		var v struct {
			Span  spanJSON        `json:"span"`
			Inner json.RawMessage `json:"inner"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		inner, err := decodeBitArraySizeExpr(v.Inner)
		if err != nil {
			return nil, err
		}
		return ast.BitArraySizeBlock{Span_: span(v.Span), Inner: inner}, nil

	default:
		return nil, fmt.Errorf("unknown bit array size expression kind %q", kind)
	}
}

type bitArraySegmentJSON struct {
	Span    spanJSON             `json:"span"`
	Value   json.RawMessage      `json:"value"`
	Options []bitArrayOptionJSON `json:"options"`
}

func decodeExprBitArraySegments(items []bitArraySegmentJSON) ([]ast.BitArraySegment[ast.Expr], error) {
	out := make([]ast.BitArraySegment[ast.Expr], len(items))
	for i, it := range items {
		val, err := decodeExpr(it.Value)
		if err != nil {
			return nil, err
		}
		opts, err := decodeBitArrayOptions(it.Options)
		if err != nil {
			return nil, err
		}
		out[i] = ast.BitArraySegment[ast.Expr]{Span: span(it.Span), Value: val, Options: opts}
	}
	return out, nil
}

func decodePatternBitArraySegments(items []bitArraySegmentJSON) ([]ast.BitArraySegment[ast.Pattern], error) {
	out := make([]ast.BitArraySegment[ast.Pattern], len(items))
	for i, it := range items {
		val, err := decodePattern(it.Value)
		if err != nil {
			return nil, err
		}
		opts, err := decodeBitArrayOptions(it.Options)
		if err != nil {
			return nil, err
		}
		out[i] = ast.BitArraySegment[ast.Pattern]{Span: span(it.Span), Value: val, Options: opts}
	}
	return out, nil
}
