package eval

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRepeat_EmptyStart(t *testing.T) {
	require.Equal(t, "[[]]", run(t, "rtm", "0"))
}

func TestRepeat_SingleElementTimesAndStart(t *testing.T) {
	require.Equal(t, "[4, 5, 6]", run(t, "rhmhhhz", "1"))
}

func TestWhile_BreaksBeforePushingError(t *testing.T) {
	require.Equal(t, "[[0, 1, 2, 3], [1, 2, 3], [2, 3], [3], []]", run(t, "wytm", "4"))
}

func TestDivideByZero_IsError(t *testing.T) {
	require.Equal(t, "Error: division by zero", run(t, "ipm", "-2"))
}

func TestFixedPoint_StopsOnRepeat(t *testing.T) {
	// Map(identity) on as_sequence(5) reaches [0,1,2,3,4], which maps to
	// itself again the next step — the fixed point has two distinct states.
	require.Equal(t, "[5, [0, 1, 2, 3, 4]]", run(t, "xm", "5"))
}
