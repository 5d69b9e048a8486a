package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(NewInt(0)))
	assert.True(t, Truthy(NewInt(-1)))
	assert.False(t, Truthy(NewList(nil)))
	assert.True(t, Truthy(NewList([]Value{NewInt(0)})))
	assert.False(t, Truthy(NewError("boom")))
}

func TestAsSequence_NonNegative(t *testing.T) {
	seq := AsSequence(NewInt(3))
	require.Len(t, seq, 3)
	assert.Equal(t, "0", seq[0].String())
	assert.Equal(t, "1", seq[1].String())
	assert.Equal(t, "2", seq[2].String())
}

func TestAsSequence_Negative(t *testing.T) {
	seq := AsSequence(NewInt(-3))
	require.Len(t, seq, 3)
	assert.Equal(t, "2", seq[0].String())
	assert.Equal(t, "1", seq[1].String())
	assert.Equal(t, "0", seq[2].String())
}

func TestAsSequence_List(t *testing.T) {
	l := NewList([]Value{NewInt(9), NewInt(8)})
	seq := AsSequence(l)
	assert.Same(t, &l.Elems[0], &seq[0])
}

func TestCompare_Ordering(t *testing.T) {
	assert.True(t, Compare(NewInt(5), NewList(nil)) < 0)
	assert.True(t, Compare(NewList(nil), NewError("x")) < 0)
	assert.True(t, Compare(NewInt(1), NewInt(2)) < 0)
	assert.Equal(t, 0, Compare(NewError("a"), NewError("b")))
}

func TestCompare_ListsLexicographic(t *testing.T) {
	a := NewList([]Value{NewInt(1), NewInt(2)})
	b := NewList([]Value{NewInt(1), NewInt(3)})
	assert.True(t, Compare(a, b) < 0)

	short := NewList([]Value{NewInt(1)})
	assert.True(t, Compare(short, a) < 0)
}

func TestEqual(t *testing.T) {
	a := NewList([]Value{NewInt(1), NewList([]Value{NewInt(2)})})
	b := NewList([]Value{NewInt(1), NewList([]Value{NewInt(2)})})
	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, NewList([]Value{NewInt(1)})))
}

func TestCanonicalKey_Distinguishes(t *testing.T) {
	a := CanonicalKey(NewInt(1))
	b := CanonicalKey(NewList([]Value{NewInt(1)}))
	assert.NotEqual(t, a, b)

	c := CanonicalKey(NewList([]Value{NewInt(1), NewInt(2)}))
	d := CanonicalKey(NewList([]Value{NewInt(1), NewInt(2)}))
	assert.Equal(t, c, d)
}

func TestParse_RoundTrip(t *testing.T) {
	input := "[1, 2, [-1, 0, 2], 91, -312370917097070709709620963505826096106016061]"
	v, err := Parse(input)
	require.NoError(t, err)
	assert.Equal(t, input, v.String())
}

func TestParse_Empty(t *testing.T) {
	v, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, "[]", v.String())
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse("[1, 2")
	require.Error(t, err)

	_, err = Parse("abc")
	require.Error(t, err)
}

func TestErrorVal_String(t *testing.T) {
	e := NewError("Tail of empty list")
	assert.Equal(t, "Error: Tail of empty list", e.String())
}
