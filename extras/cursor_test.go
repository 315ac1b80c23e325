package extras_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eutampieri/gleam/extras"
)

func strPtr(s string) *string { return &s }

func TestPopCommentsWithPosition(t *testing.T) {
	e := &extras.Extras{
		Comments: []extras.Comment{
			{Start: 5, Content: "// a"},
			{Start: 20, Content: "// b"},
		},
		EmptyLines: []int{10, 11, 25},
	}
	c := extras.NewCursor(e)

	popped := c.PopCommentsWithPosition(30, true)
	require.Len(t, popped, 4)

	assert.Equal(t, 5, popped[0].Offset)
	assert.Equal(t, "// a", *popped[0].Content)

	assert.Equal(t, 10, popped[1].Offset)
	assert.Nil(t, popped[1].Content, "the run [10, 11] coalesces into one blank-line marker")

	assert.Equal(t, 20, popped[2].Offset)
	assert.Equal(t, "// b", *popped[2].Content)

	assert.Equal(t, 25, popped[3].Offset)
	assert.Nil(t, popped[3].Content)

	assert.Empty(t, c.PopComments(100))
}

func TestPopCommentsWithPositionTrimsLeadingBlankLines(t *testing.T) {
	e := &extras.Extras{
		EmptyLines: []int{1, 2, 10},
	}
	c := extras.NewCursor(e)

	popped := c.PopCommentsWithPosition(20, true)
	assert.Empty(t, popped, "a blank-line run with no preceding comment has nothing to attach to")
}

func TestPopDocCommentsDiscardsBlankLines(t *testing.T) {
	e := &extras.Extras{
		DocComments: []extras.Comment{{Start: 5, Content: "/// doc"}},
		EmptyLines:  []int{1, 2},
	}
	c := extras.NewCursor(e)

	docs := c.PopDocComments(10)
	assert.Equal(t, []string{"/// doc"}, docs)
	assert.False(t, c.HasEmptyLines(100), "blank lines before the limit are discarded, not retained")
}

func TestPopEmptyLines(t *testing.T) {
	e := &extras.Extras{EmptyLines: []int{5, 6, 20}}
	c := extras.NewCursor(e)

	assert.True(t, c.PopEmptyLines(10))
	assert.True(t, c.HasEmptyLines(100))
	assert.False(t, c.PopEmptyLines(10), "nothing left before limit 10")
	assert.True(t, c.PopEmptyLines(100))
}

func TestSpansMultipleLines(t *testing.T) {
	e := &extras.Extras{NewLines: []int{10, 20, 30}}
	c := extras.NewCursor(e)

	assert.True(t, c.SpansMultipleLines(5, 15))
	assert.False(t, c.SpansMultipleLines(11, 20))
	assert.True(t, c.SpansMultipleLines(0, 100))
}

func TestHasTrailingComma(t *testing.T) {
	e := &extras.Extras{TrailingCommas: []int{10}}
	c := extras.NewCursor(e)

	assert.True(t, c.HasTrailingComma(8, 12))
	assert.True(t, c.HasTrailingComma(10, 10), "a trailing comma exactly at container end belongs to the last item")
	assert.False(t, c.HasTrailingComma(11, 20))
}
