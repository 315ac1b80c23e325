package doc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eutampieri/gleam/doc"
)

func TestRenderFlatWhenItFits(t *testing.T) {
	d := doc.Group(doc.Concat(
		doc.Text("foo("),
		doc.Text("a"),
		doc.SoftBreak(",", ", "),
		doc.Text("b"),
		doc.Text(")"),
	))
	assert.Equal(t, "foo(a, b)", doc.Render(d, 80))
}

func TestRenderBreaksWhenTooWide(t *testing.T) {
	d := doc.Group(doc.Concat(
		doc.Text("foo("),
		doc.Nest(2, doc.Concat(
			doc.SoftBreak("", ""),
			doc.Text("a"),
			doc.Text(","),
			doc.SoftBreak("", " "),
			doc.Text("b"),
		)),
		doc.SoftBreak("", ""),
		doc.Text(")"),
	))
	assert.Equal(t, "foo(\n  a,\n  b\n)", doc.Render(d, 5))
}

func TestForceBreakAlwaysBreaks(t *testing.T) {
	d := doc.ForceBreak(doc.Group(doc.Concat(
		doc.Text("a"),
		doc.Line(),
		doc.Text("b"),
	)))
	assert.Equal(t, "a\nb", doc.Render(d, 80))
}

func TestNestIfBrokenOnlyAddsIndentWhenBroken(t *testing.T) {
	flat := doc.Group(doc.NestIfBroken(2, doc.Concat(doc.Text("a"))))
	assert.Equal(t, "a", doc.Render(flat, 80))

	broken := doc.ForceBreak(doc.Group(doc.NestIfBroken(2, doc.Concat(
		doc.Text("a"),
		doc.Line(),
		doc.Text("b"),
	))))
	assert.Equal(t, "a\n  b", doc.Render(broken, 80))
}

func TestFlexBreakPacksMultiplePerLine(t *testing.T) {
	items := []string{"aa", "bb", "cc", "dd", "ee"}
	parts := make([]doc.Doc, 0, len(items)*2)
	for i, it := range items {
		if i > 0 {
			parts = append(parts, doc.FlexBreak("", " "))
		}
		parts = append(parts, doc.Text(it))
	}
	d := doc.Group(doc.Concat(parts...))
	got := doc.Render(d, 9)
	assert.Equal(t, "aa bb cc\ndd ee", got)
}

func TestNextBreakFitsLetsTrailingArgumentBreakAlone(t *testing.T) {
	trailing := doc.NextBreakFits(doc.NextBreakFitsEnabled, doc.ForceBreak(doc.Group(doc.Concat(
		doc.Text("fn() {"),
		doc.Nest(2, doc.Concat(doc.Line(), doc.Text("body"))),
		doc.Line(),
		doc.Text("}"),
	))))

	whole := doc.Group(doc.Concat(
		doc.Text("call("),
		trailing,
		doc.Text(")"),
	))

	got := doc.Render(whole, 80)
	assert.Equal(t, "call(fn() {\n  body\n})", got)
}

func TestLineZeroBreaksWithNoIndentation(t *testing.T) {
	d := doc.ForceBreak(doc.Nest(4, doc.Group(doc.Concat(
		doc.Text("a"),
		doc.LineZero(),
		doc.Text("b"),
	))))
	assert.Equal(t, "a\nb", doc.Render(d, 80))
}

func TestForceBreakWithoutAHardLinePropagatesToAnAncestorGroup(t *testing.T) {
	// A group whose only content is plain text still has to force its
	// ancestor to break when marked force-broken, even though there is no
	// doc.Line/doc.LineZero inside it for the ancestor's fits-check to
	// trip over directly.
	forced := doc.ForceBreak(doc.Group(doc.Text("line one\nline two")))

	whole := doc.Group(doc.Concat(
		doc.Text("before"),
		doc.SoftBreak("", " "),
		forced,
	))

	got := doc.Render(whole, 80)
	assert.Equal(t, "before\nline one\nline two", got)
}

func TestWithoutNextBreakFitsAForcedChildBreaksTheWholeGroup(t *testing.T) {
	trailing := doc.ForceBreak(doc.Group(doc.Concat(
		doc.Text("fn() {"),
		doc.Nest(2, doc.Concat(doc.Line(), doc.Text("body"))),
		doc.Line(),
		doc.Text("}"),
	)))

	whole := doc.Group(doc.Concat(
		doc.Text("before"),
		doc.SoftBreak("", " "),
		trailing,
	))

	got := doc.Render(whole, 80)
	assert.Equal(t, "before\nfn() {\n  body\n}", got)
}
