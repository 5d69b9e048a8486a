package eval

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestScenario_PrimalityOn1Through29 mirrors spec §8 scenario 2: running
// "stlfsmqiphzbihlqtnwttmh" over 1..29 yields 1 exactly on primes.
func TestScenario_PrimalityOn1Through29(t *testing.T) {
	primes := map[int]bool{2: true, 3: true, 5: true, 7: true, 11: true,
		13: true, 17: true, 19: true, 23: true, 29: true}
	for n := 1; n <= 29; n++ {
		want := "0"
		if primes[n] {
			want = "1"
		}
		got := run(t, "stlfsmqiphzbihlqtnwttmh", fmt.Sprint(n))
		require.Equal(t, want, got, "n=%d", n)
	}
}

// TestScenario_FibonacciOn1Through9 mirrors spec §8 scenario 3: running
// "ihhhzxbthzqbshihqbzbhhzhm" over 1..9 yields the Fibonacci sequence.
func TestScenario_FibonacciOn1Through9(t *testing.T) {
	want := []string{"1", "1", "2", "3", "5", "8", "13", "21", "34"}
	for i, n := range want {
		got := run(t, "ihhhzxbthzqbshihqbzbhhzhm", fmt.Sprint(i+1))
		require.Equal(t, n, got, "n=%d", i+1)
	}
}

// TestScenario_RepeatBifurcateNesting mirrors spec §8 scenario 4.
func TestScenario_RepeatBifurcateNesting(t *testing.T) {
	require.Equal(t, "[-1, [-1, [-1, [-1, [-1, [-1]]]]]]", run(t, "htnrbhqbht", "[5, -1]"))
}
