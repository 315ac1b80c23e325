package moduleio

import (
	"encoding/json"
	"fmt"

	"github.com/eutampieri/gleam/ast"
)

func decodePatternList(items []json.RawMessage) ([]ast.Pattern, error) {
	out := make([]ast.Pattern, len(items))
	for i, raw := range items {
		p, err := decodePattern(raw)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

func decodeOptionalPattern(raw json.RawMessage) (ast.Pattern, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	return decodePattern(raw)
}

func decodePattern(raw json.RawMessage) (ast.Pattern, error) {
	kind, err := kindOf(raw)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "pattern_int":
		var v struct {
			Span  spanJSON `json:"span"`
			Value string   `json:"value"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return ast.PatternInt{Span_: span(v.Span), Value: v.Value}, nil

	case "pattern_float":
		var v struct {
			Span  spanJSON `json:"span"`
			Value string   `json:"value"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return ast.PatternFloat{Span_: span(v.Span), Value: v.Value}, nil

	case "pattern_string":
		var v struct {
			Span  spanJSON `json:"span"`
			Value string   `json:"value"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return ast.PatternString{Span_: span(v.Span), Value: v.Value}, nil

	case "pattern_var":
		var v struct {
			Span spanJSON `json:"span"`
			Name string   `json:"name"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return ast.PatternVar{Span_: span(v.Span), Name: v.Name}, nil

	case "pattern_discard":
		var v struct {
			Span spanJSON `json:"span"`
			Name string   `json:"name"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return ast.PatternDiscard{Span_: span(v.Span), Name: v.Name}, nil

	case "pattern_var_usage":
		var v struct {
			Span spanJSON `json:"span"`
			Name string   `json:"name"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return ast.PatternVarUsage{Span_: span(v.Span), Name: v.Name}, nil

	case "pattern_as":
		var v struct {
			Span  spanJSON        `json:"span"`
			Inner json.RawMessage `json:"inner"`
			Name  string          `json:"name"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		inner, err := decodePattern(v.Inner)
		if err != nil {
			return nil, err
		}
		return ast.PatternAs{Span_: span(v.Span), Inner: inner, Name: v.Name}, nil

	case "pattern_list":
		var v struct {
			Span     spanJSON          `json:"span"`
			Elements []json.RawMessage `json:"elements"`
			Tail     json.RawMessage   `json:"tail"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		els, err := decodePatternList(v.Elements)
		if err != nil {
			return nil, err
		}
		tail, err := decodeOptionalPattern(v.Tail)
		if err != nil {
			return nil, err
		}
		return ast.PatternList{Span_: span(v.Span), Elements: els, Tail: tail}, nil

	case "pattern_tuple":
		var v struct {
			Span     spanJSON          `json:"span"`
			Elements []json.RawMessage `json:"elements"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		els, err := decodePatternList(v.Elements)
		if err != nil {
			return nil, err
		}
		return ast.PatternTuple{Span_: span(v.Span), Elements: els}, nil

	case "pattern_constructor":
		var v struct {
			Span   spanJSON            `json:"span"`
			Module *string             `json:"module"`
			Name   string              `json:"name"`
			Args   []patternArgJSON    `json:"args"`
			Spread bool                `json:"spread"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		args := make([]ast.PatternArg, len(v.Args))
		for i, a := range v.Args {
			val, err := decodePattern(a.Value)
			if err != nil {
				return nil, err
			}
			args[i] = ast.PatternArg{Span: span(a.Span), Label: a.Label, Value: val}
		}
		return ast.PatternConstructor{Span_: span(v.Span), Module: v.Module, Name: v.Name, Args: args, Spread: v.Spread}, nil

	case "pattern_bit_array":
		var v struct {
			Span     spanJSON               `json:"span"`
			Segments []bitArraySegmentJSON `json:"segments"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		segs, err := decodePatternBitArraySegments(v.Segments)
		if err != nil {
			return nil, err
		}
		return ast.PatternBitArray{Span_: span(v.Span), Segments: segs}, nil

	case "pattern_string_prefix":
		var v struct {
			Span      spanJSON        `json:"span"`
			Left      string          `json:"left"`
			RightName *string         `json:"right_name"`
			Right     json.RawMessage `json:"right"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		right, err := decodePattern(v.Right)
		if err != nil {
			return nil, err
		}
		return ast.PatternStringPrefix{Span_: span(v.Span), Left: v.Left, RightName: v.RightName, Right: right}, nil

	default:
		return nil, fmt.Errorf("unknown pattern kind %q", kind)
	}
}

type patternArgJSON struct {
	Span  spanJSON        `json:"span"`
	Label *string         `json:"label"`
	Value json.RawMessage `json:"value"`
}
