package format

import (
	"strconv"

	"github.com/eutampieri/gleam/ast"
	"github.com/eutampieri/gleam/doc"
)

// bitArray renders a `<< seg, seg, ... >>` bit array shared by both
// expression and pattern position (ast.BitArraySegment is generic over the
// value type precisely so this one function can serve both). renderValue
// converts one segment's value to a Doc; isBinOp reports whether a value
// is a binary operator, which wrapBitArraySegmentValue then wraps in
// `{ … }`; packable reports whether a value counts as a packable primitive
// for the packing decision. Patterns pass a packable func that always
// returns false, so a pattern bit array never uses FitMultiplePerLine; a
// trailing comma after its last segment still gives it BreakOnePerLine.
func bitArray[V any](f *formatter, segs []ast.BitArraySegment[V], start, end int, renderValue func(V) doc.Doc, packable func(V) bool, isBinOp func(V) bool) doc.Doc {
	items := make([]SeqItem, len(segs))
	for i, seg := range segs {
		valueStart := seg.Span.Start
		value := wrapBitArraySegmentValue(renderValue(seg.Value), isBinOp(seg.Value))
		items[i] = SeqItem{
			Start:    valueStart,
			End:      seg.Span.End,
			Value:    doc.Concat(f.commentsBefore(valueStart, true), f.bitArraySegment(value, seg.Options)),
			Packable: packable(seg.Value),
		}
	}
	return f.sequence("<<", ">>", items, nil, start, end)
}

func (f *formatter) bitArraySegment(value doc.Doc, opts []ast.BitArrayOption) doc.Doc {
	if len(opts) == 0 {
		return value
	}
	parts := make([]doc.Doc, 0, len(opts)*2+1)
	parts = append(parts, value, doc.Text(":"))
	for i, o := range opts {
		if i > 0 {
			parts = append(parts, doc.Text("-"))
		}
		parts = append(parts, f.bitArrayOption(o))
	}
	return doc.Concat(parts...)
}

func (f *formatter) bitArrayOption(o ast.BitArrayOption) doc.Doc {
	switch o.Kind {
	case ast.BitArrayBytes:
		return doc.Text("bytes")
	case ast.BitArrayBits:
		return doc.Text("bits")
	case ast.BitArrayInt:
		return doc.Text("int")
	case ast.BitArrayFloat:
		return doc.Text("float")
	case ast.BitArrayUTF8:
		return doc.Text("utf8")
	case ast.BitArrayUTF16:
		return doc.Text("utf16")
	case ast.BitArrayUTF32:
		return doc.Text("utf32")
	case ast.BitArrayUTF8Codepoint:
		if !f.supportsCodepointOptions() {
			return doc.Text("utf8")
		}
		return doc.Text("utf8_codepoint")
	case ast.BitArrayUTF16Codepoint:
		if !f.supportsCodepointOptions() {
			return doc.Text("utf16")
		}
		return doc.Text("utf16_codepoint")
	case ast.BitArrayUTF32Codepoint:
		if !f.supportsCodepointOptions() {
			return doc.Text("utf32")
		}
		return doc.Text("utf32_codepoint")
	case ast.BitArraySigned:
		return doc.Text("signed")
	case ast.BitArrayUnsigned:
		return doc.Text("unsigned")
	case ast.BitArrayBig:
		return doc.Text("big")
	case ast.BitArrayLittle:
		return doc.Text("little")
	case ast.BitArrayNative:
		return doc.Text("native")
	case ast.BitArraySizeShort:
		return doc.Text(strconv.Itoa(o.N))
	case ast.BitArraySize:
		return doc.Concat(doc.Text("size("), bitArraySizeExpr(o.SizeExpr), doc.Text(")"))
	case ast.BitArrayUnit:
		return doc.Concat(doc.Text("unit("), doc.Text(strconv.Itoa(o.N)), doc.Text(")"))
	default:
		invariant("unrecognised bit array option kind %d", o.Kind)
		return nil
	}
}

// bitArraySizeExpr renders a bit-array size's own small expression
// language: integers, variables, the five arithmetic binary operators, and
// a parenthesised block.
func bitArraySizeExpr(e ast.BitArraySizeExpr) doc.Doc {
	switch n := e.(type) {
	case ast.BitArraySizeInt:
		return doc.Text(n.Value)
	case ast.BitArraySizeVar:
		return doc.Text(n.Name)
	case ast.BitArraySizeBinOp:
		return doc.Concat(bitArraySizeExpr(n.Left), doc.Text(" "+n.Op+" "), bitArraySizeExpr(n.Right))
	case ast.BitArraySizeBlock:
		return doc.Concat(doc.Text("{ "), bitArraySizeExpr(n.Inner), doc.Text(" }"))
	default:
		invariant("unrecognised bit array size expression %T", e)
		return nil
	}
}

// wrapBitArraySegmentValue wraps value in `{ … }` when isBinOp reports
// that the segment's value is a binary operator.
func wrapBitArraySegmentValue(value doc.Doc, isBinOp bool) doc.Doc {
	if !isBinOp {
		return value
	}
	return doc.Concat(doc.Text("{ "), value, doc.Text(" }"))
}
