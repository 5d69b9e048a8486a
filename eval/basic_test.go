package eval

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// These mirror specific coverage programs used to pin down primitives the
// table in spec §4.3.1 leaves partly implicit (AllPair's branches, Combine's
// zipwith-longest rule, Product's Cartesian/prime-factor split, Length's
// binary encoding and its inverse).

func TestProduct_PrimeFactors(t *testing.T) {
	require.Equal(t, "[[], [2, 2, 3], [5, 5]]", run(t, "mp", "[0, 12, 25]"))
}

func TestProduct_CartesianOfLists(t *testing.T) {
	require.Equal(t, "[[1, 0], [1, 1], [2, 0], [2, 1]]", run(t, "pbmhm", "2"))
}

func TestCombine_Transpose(t *testing.T) {
	require.Equal(t, "[[0, 0, 0, 0], [1, 1, 1], [2, 2], [3]]", run(t, "cmm", "5"))
}

func TestCombine_TransposeMixed(t *testing.T) {
	require.Equal(t, "[[5, 0], [1], [2], [3], [4]]", run(t, "cxm", "5"))
}

func TestCombine_ErrorPropagatesThroughTailOfEmpty(t *testing.T) {
	require.Equal(t, "Error: Tail of empty list", run(t, "cist", "[]"))
}

func TestAllPair_Integer(t *testing.T) {
	require.Equal(t, "[[4, 0], [4, 1], [4, 2], [4, 3]]", run(t, "a", "4"))
}

func TestAllPair_Self(t *testing.T) {
	require.Equal(t, "[[[0, 1], 0], [[0, 1], 1]]", run(t, "am", "2"))
}

func TestAllPair_LeadingPairedWithTrailingList(t *testing.T) {
	require.Equal(t, "[[5, 1], [5, 2], [5, 3], [5, 4], [5, 5]]", run(t, "abzmh", "5"))
}

func TestAllPair_TrailingPairedWithLeadingList(t *testing.T) {
	require.Equal(t, "[[1, 5], [2, 5], [3, 5], [4, 5], [5, 5]]", run(t, "abmh", "5"))
}

func TestLength_ToBinaryViaTail(t *testing.T) {
	require.Equal(t, "[[1], [0], [1], [1, 0], [1, 1], [1, 0, 0]]", run(t, "mltz", "6"))
}

func TestLength_ZeroIsSingleZeroDigit(t *testing.T) {
	require.Equal(t, "[0]", run(t, "l", "0"))
}

func TestLengthInverse_FromBinary(t *testing.T) {
	require.Equal(t, "2036", run(t, "ilm", "11"))
}

func TestHeadInverse_List(t *testing.T) {
	require.Equal(t, "3", run(t, "ih", "[1, 2, 3]"))
}

func TestTailInverse_Integer_IsUndefined(t *testing.T) {
	require.Equal(t, "Error: tail has no integer inverse", run(t, "it", "5"))
}

func TestProductInverse_DivideByZero(t *testing.T) {
	require.Equal(t, "Error: division by zero", run(t, "ipm", "-2"))
}

func TestProductInverse_DivMod(t *testing.T) {
	require.Equal(t, "[3, 1]", run(t, "ip", "[7, 2]"))
}

func TestPowerSet_NoInverse(t *testing.T) {
	require.Equal(t, "Error: PowerSet has no inverse", run(t, "iy", "3"))
}
