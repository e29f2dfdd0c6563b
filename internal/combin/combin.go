package combin

import (
	"iter"
	"slices"
)

// RangeSeq yields every k-subset of [begin, end] (both inclusive) in
// lexicographic order.
func RangeSeq(begin, end, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if k <= 0 || k > end-begin+1 {
			return
		}
		rangeFrom(begin, end, k, make([]int, 0, k), yield)
	}
}

// Range returns every k-subset of [begin, end] (both inclusive) in
// lexicographic order.
func Range(begin, end, k int) [][]int {
	return slices.Collect(RangeSeq(begin, end, k))
}

// rangeFrom fixes each admissible first value and recurses on the rest of
// the range with one fewer element to pick.
func rangeFrom(start, end, k int, prefix []int, yield func([]int) bool) bool {
	for i := start; i <= end+1-k; i++ {
		next := append(prefix, i)
		if k == 1 {
			if !yield(slices.Clone(next)) {
				return false
			}
			continue
		}
		if !rangeFrom(i+1, end, k-1, next, yield) {
			return false
		}
	}
	return true
}

// OfSeq yields every k-element sub-sequence of seq, preserving the relative
// order of elements, in lexicographic order of their indices.
func OfSeq[T any](seq []T, k int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if k <= 0 || k > len(seq) {
			return
		}
		ofFrom(seq, 0, k, make([]T, 0, k), yield)
	}
}

// Of returns every k-element sub-sequence of seq in lexicographic index order.
func Of[T any](seq []T, k int) [][]T {
	return slices.Collect(OfSeq(seq, k))
}

func ofFrom[T any](seq []T, offset, k int, prefix []T, yield func([]T) bool) bool {
	for i := offset; i <= len(seq)-k; i++ {
		next := append(prefix, seq[i])
		if k == 1 {
			if !yield(slices.Clone(next)) {
				return false
			}
			continue
		}
		if !ofFrom(seq, i+1, k-1, next, yield) {
			return false
		}
	}
	return true
}

// Count returns C(n, k), the number of combinations Range or Of would emit
// for an input of length n. It returns 0 when k is out of bounds.
func Count(n, k int) int {
	if k <= 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := 1
	for i := 1; i <= k; i++ {
		c = c * (n - k + i) / i
	}
	return c
}
