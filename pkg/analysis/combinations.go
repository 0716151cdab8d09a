package analysis

import "iter"

// Combinations yields every k-element combination of the indices 0..n-1 in
// lexicographic order. The yielded slice is reused between iterations;
// copy it to keep it.
func Combinations(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if k < 0 || k > n {
			return
		}

		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}

		for {
			if !yield(idx) {
				return
			}

			// Find the rightmost index that can still be advanced.
			i := k - 1
			for i >= 0 && idx[i] == n-k+i {
				i--
			}
			if i < 0 {
				return
			}

			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}

// Binomial returns C(n, k)
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 1; i <= k; i++ {
		result = result * (n - k + i) / i
	}
	return result
}
