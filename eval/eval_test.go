package eval

import (
	"testing"

	"github.com/akashmaji946/minipyth/lexer"
	"github.com/akashmaji946/minipyth/parser"
	"github.com/akashmaji946/minipyth/value"
	"github.com/stretchr/testify/require"
)

// run lexes+parses prog, parses input with the grammar, evaluates Forward,
// and returns the result's printed form — the same path cmd/minipyth takes.
func run(t *testing.T, prog, input string) string {
	t.Helper()
	tokens, err := lexer.Tokenize(prog)
	require.NoError(t, err)
	f, err := parser.Parse(tokens)
	require.NoError(t, err)
	v, err := value.Parse(input)
	require.NoError(t, err)
	return Forward(f, v).String()
}

func TestScenario_Make2014(t *testing.T) {
	require.Equal(t, "2014", run(t, "ttsmzyhhyhh", "0"))
}

func TestScenario_InverseMapHead(t *testing.T) {
	require.Equal(t, "[-1, 0, 1, 2, 3, 4, 5, 6, 7, 8]", run(t, "imh", "10"))
}

func TestScenario_CombineTranspose(t *testing.T) {
	require.Equal(t, "[[0, 0, 0, 0], [1, 1, 1], [2, 2], [3]]", run(t, "cmm", "5"))
}

func TestScenario_TailOfEmptyIsError(t *testing.T) {
	tokens, err := lexer.Tokenize("tm")
	require.NoError(t, err)
	f, err := parser.Parse(tokens)
	require.NoError(t, err)
	v, err := value.Parse("0")
	require.NoError(t, err)
	result := Forward(f, v)
	require.True(t, value.IsError(result))
}

func TestScenario_InverseWhile(t *testing.T) {
	require.Equal(t, "[5, 4, 3, 2, 1]", run(t, "iwhh", "5"))
}

func TestScenario_InverseOrder(t *testing.T) {
	require.Equal(t, "[4, 0, 1, 2, 3]", run(t, "ios", "5"))
}

// TestUniversal_MapErrorFree mirrors spec §8's Map error-absorption property:
// when no element of as_sequence(v) produces an Error under body, the result
// is a List of the same length.
func TestUniversal_MapErrorFree(t *testing.T) {
	result := run(t, "mh", "5")
	require.Equal(t, "[1, 2, 3, 4, 5]", result)
}

// TestUniversal_DoubleInverseIdempotence checks forward(Inverse(Inverse(P)),
// v) = forward(P, v) for a primitive with a defined inverse (Head).
func TestUniversal_DoubleInverseIdempotence(t *testing.T) {
	require.Equal(t, run(t, "h", "5"), run(t, "iih", "5"))
}

// TestUniversal_OrderIdempotent checks that applying Order twice with the
// same body yields the same result as once.
func TestUniversal_OrderIdempotent(t *testing.T) {
	once := run(t, "on", "5")
	twice := run(t, "onon", "5")
	require.Equal(t, once, twice)
}

// TestUniversal_LengthRoundTrip checks inverse(Length, forward(Length, n)) = n
// for several non-negative n.
func TestUniversal_LengthRoundTrip(t *testing.T) {
	for _, n := range []string{"0", "1", "5", "255", "1024"} {
		require.Equal(t, n, run(t, "ill", n), "n=%s", n)
	}
}

// TestUniversal_HeadTailRoundTrip checks forward(Head, Tail(n)) = n and
// forward(Tail, Head(n)) = n.
func TestUniversal_HeadTailRoundTrip(t *testing.T) {
	require.Equal(t, "5", run(t, "ht", "5"))
	require.Equal(t, "5", run(t, "th", "5"))
}
