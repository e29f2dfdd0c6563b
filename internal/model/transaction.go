package model

import (
	"slices"
)

// Transaction is one input record: a set of unique items.
type Transaction[T Item] struct {
	items []T
}

// NewTransaction builds a transaction from items in any order. Duplicates collapse.
func NewTransaction[T Item](items ...T) Transaction[T] {
	return Transaction[T]{items: canonical(items)}
}

// Len returns the number of distinct items in the transaction.
func (t Transaction[T]) Len() int {
	return len(t.items)
}

// Items returns a copy of the items in ascending order.
func (t Transaction[T]) Items() []T {
	return slices.Clone(t.items)
}

// Contains reports whether the transaction holds item.
func (t Transaction[T]) Contains(item T) bool {
	_, found := slices.BinarySearch(t.items, item)
	return found
}

// ContainsAll reports whether the transaction is a superset of s.
func (t Transaction[T]) ContainsAll(s Itemset[T]) bool {
	return sortedSubset(s.items, t.items)
}

// Dataset is an ordered, read-only sequence of transactions.
type Dataset[T Item] []Transaction[T]

// Len returns the number of transactions.
func (d Dataset[T]) Len() int {
	return len(d)
}

// Items returns every distinct item in the dataset in ascending order.
func (d Dataset[T]) Items() []T {
	seen := make(map[T]struct{})
	for _, txn := range d {
		for _, item := range txn.items {
			seen[item] = struct{}{}
		}
	}
	out := make([]T, 0, len(seen))
	for item := range seen {
		out = append(out, item)
	}
	slices.Sort(out)
	return out
}
