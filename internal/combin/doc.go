// Package combin enumerates k-element combinations in lexicographic order.
//
// Two entry points are provided:
//
//   - Range / RangeSeq: k-subsets of the inclusive integer range [begin, end].
//   - Of / OfSeq: k-element sub-sequences of an arbitrary slice, preserving
//     the relative order of its elements.
//
// The Seq forms are lazy, finite and restartable: each range over the
// returned iter.Seq starts a fresh enumeration. Every emitted slice is a new
// allocation owned by the caller.
//
// A size k <= 0 or larger than the input yields no combinations; it is not
// an error.
//
// Complexity: O(C(n,k)·k) time, O(k) working memory for the Seq forms.
package combin
