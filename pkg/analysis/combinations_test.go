package analysis

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(n, k int) [][]int {
	var out [][]int
	for idx := range Combinations(n, k) {
		out = append(out, slices.Clone(idx))
	}
	return out
}

func TestCombinationsLexicographic(t *testing.T) {
	got := collect(5, 3)

	require.Len(t, got, 10)
	assert.Equal(t, []int{0, 1, 2}, got[0])
	assert.Equal(t, []int{0, 1, 3}, got[1])
	assert.Equal(t, []int{0, 1, 4}, got[2])
	assert.Equal(t, []int{0, 2, 3}, got[3])
	assert.Equal(t, []int{2, 3, 4}, got[9])

	for i := 1; i < len(got); i++ {
		assert.Equal(t, -1, slices.Compare(got[i-1], got[i]), "combinations out of order at %d", i)
	}
}

func TestCombinationsEdgeCases(t *testing.T) {
	assert.Equal(t, [][]int{{0, 1, 2}}, collect(3, 3))
	assert.Empty(t, collect(2, 3))
	assert.Empty(t, collect(3, -1))
	assert.Equal(t, [][]int{{}}, collect(4, 0))
}

func TestCombinationsStopEarly(t *testing.T) {
	seen := 0
	for range Combinations(6, 3) {
		seen++
		if seen == 4 {
			break
		}
	}
	assert.Equal(t, 4, seen)
}

func TestBinomial(t *testing.T) {
	tests := []struct {
		n, k, expected int
	}{
		{5, 3, 10},
		{4, 3, 4},
		{3, 3, 1},
		{10, 3, 120},
		{2, 3, 0},
		{6, 0, 1},
		{6, -1, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Binomial(tt.n, tt.k), "C(%d, %d)", tt.n, tt.k)
		if tt.k >= 0 {
			assert.Len(t, collect(tt.n, tt.k), tt.expected, "combinations of C(%d, %d)", tt.n, tt.k)
		}
	}
}
