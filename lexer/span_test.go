package lexer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpan(t *testing.T) {
	s, err := NewSpan(2, 5)
	assert.NoError(t, err)
	assert.Equal(t, Span{Start: 2, End: 5}, s)
	assert.Equal(t, uint32(3), s.Len())
	assert.False(t, s.Empty())
	assert.Equal(t, "2..5", s.String())
	assert.Equal(t, "cde", s.Text("abcdefg"))
	assert.Equal(t, "", s.Text("abc"))

	assert.Equal(t, Span{Start: 1, End: 9}, s.Cover(Span{Start: 1, End: 9}))
	assert.Equal(t, Span{Start: 2, End: 7}, s.Cover(Span{Start: 6, End: 7}))
	assert.True(t, Span{Start: 4, End: 4}.Empty())

	_, err = NewSpan(-1, 2)
	assert.Error(t, err)

	_, err = NewSpan(0, math.MaxUint32+1)
	assert.Error(t, err)
}
