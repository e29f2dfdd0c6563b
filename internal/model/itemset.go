// Package model defines the core data structures for the apriori miner.
package model

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Item is an opaque, totally ordered item identifier.
type Item interface {
	cmp.Ordered
}

// Itemset is a set of unique items held in canonical (ascending) order.
// The zero value is the empty set.
type Itemset[T Item] struct {
	items []T
}

// NewItemset builds an itemset from items in any order. Duplicates collapse.
func NewItemset[T Item](items ...T) Itemset[T] {
	return Itemset[T]{items: canonical(items)}
}

// canonical returns a sorted, deduplicated copy of items.
func canonical[T Item](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	out := slices.Clone(items)
	slices.Sort(out)
	return slices.Compact(out)
}

// Len returns the number of items.
func (s Itemset[T]) Len() int {
	return len(s.items)
}

// IsEmpty reports whether the itemset has no items.
func (s Itemset[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// At returns the i-th item in canonical order.
func (s Itemset[T]) At(i int) T {
	return s.items[i]
}

// Items returns a copy of the items in canonical order.
func (s Itemset[T]) Items() []T {
	return slices.Clone(s.items)
}

// Contains reports whether item is a member of the set.
func (s Itemset[T]) Contains(item T) bool {
	_, found := slices.BinarySearch(s.items, item)
	return found
}

// IsSubsetOf reports whether every item of s is in other.
func (s Itemset[T]) IsSubsetOf(other Itemset[T]) bool {
	return sortedSubset(s.items, other.items)
}

// Equal reports set equality.
func (s Itemset[T]) Equal(other Itemset[T]) bool {
	return slices.Equal(s.items, other.items)
}

// Compare orders itemsets by size, then lexicographically.
func (s Itemset[T]) Compare(other Itemset[T]) int {
	if c := cmp.Compare(len(s.items), len(other.items)); c != 0 {
		return c
	}
	return slices.Compare(s.items, other.items)
}

// Key returns a canonical string usable as a map key. Two itemsets have the
// same key if and only if they are equal.
func (s Itemset[T]) Key() string {
	var b strings.Builder
	for i, item := range s.items {
		if i > 0 {
			b.WriteByte(',')
		}
		// %#v quotes strings, so a separator inside an item cannot collide.
		fmt.Fprintf(&b, "%#v", item)
	}
	return b.String()
}

// Union returns s ∪ other.
func (s Itemset[T]) Union(other Itemset[T]) Itemset[T] {
	out := make([]T, 0, len(s.items)+len(other.items))
	i, j := 0, 0
	for i < len(s.items) && j < len(other.items) {
		switch c := cmp.Compare(s.items[i], other.items[j]); {
		case c < 0:
			out = append(out, s.items[i])
			i++
		case c > 0:
			out = append(out, other.items[j])
			j++
		default:
			out = append(out, s.items[i])
			i++
			j++
		}
	}
	out = append(out, s.items[i:]...)
	out = append(out, other.items[j:]...)
	return Itemset[T]{items: out}
}

// Minus returns s \ other.
func (s Itemset[T]) Minus(other Itemset[T]) Itemset[T] {
	out := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if !other.Contains(item) {
			out = append(out, item)
		}
	}
	return Itemset[T]{items: out}
}

// SymmetricDifference returns the items that are in exactly one of s and other.
func (s Itemset[T]) SymmetricDifference(other Itemset[T]) Itemset[T] {
	out := make([]T, 0)
	i, j := 0, 0
	for i < len(s.items) && j < len(other.items) {
		switch c := cmp.Compare(s.items[i], other.items[j]); {
		case c < 0:
			out = append(out, s.items[i])
			i++
		case c > 0:
			out = append(out, other.items[j])
			j++
		default:
			i++
			j++
		}
	}
	out = append(out, s.items[i:]...)
	out = append(out, other.items[j:]...)
	return Itemset[T]{items: out}
}

// String renders the set as {a, b, c}.
func (s Itemset[T]) String() string {
	parts := make([]string, len(s.items))
	for i, item := range s.items {
		parts[i] = fmt.Sprint(item)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// sortedSubset reports whether every element of a occurs in b. Both must be
// sorted ascending without duplicates.
func sortedSubset[T Item](a, b []T) bool {
	if len(a) > len(b) {
		return false
	}
	j := 0
	for _, x := range a {
		for j < len(b) && b[j] < x {
			j++
		}
		if j == len(b) || b[j] != x {
			return false
		}
		j++
	}
	return true
}
