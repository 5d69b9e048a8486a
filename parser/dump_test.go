package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDump_NestsUnderHigherAndDouble(t *testing.T) {
	f := parseProgram(t, "mhbht")
	out := Dump(f)
	require.True(t, strings.Contains(out, "Higher(Map)"))
	require.True(t, strings.Contains(out, "Double(Bifurcate)"))
	// the body/branches must be printed more indented than their parent.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.True(t, len(lines) >= 2)
	indentOf := func(s string) int { return len(s) - len(strings.TrimLeft(s, " ")) }
	require.Greater(t, indentOf(lines[1]), indentOf(lines[0]))
}
