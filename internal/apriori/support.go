package apriori

import (
	"slices"

	"github.com/fpeterek/strojove-uceni/internal/model"
)

// FrequentItemset is an itemset together with its measured support.
type FrequentItemset[T model.Item] struct {
	Itemset model.Itemset[T]
	// Count is the number of transactions containing the itemset.
	Count int
	// Support is Count divided by the number of transactions.
	Support float64
}

// SupportTable maps single items to their support, restricted to items
// that passed the seed threshold.
type SupportTable[T model.Item] struct {
	supports map[T]float64
	counts   map[T]int
}

// BuildSupportTable counts every item in one pass over ds and keeps the
// items whose support passes the policy's seed comparison against minSupport.
func BuildSupportTable[T model.Item](ds model.Dataset[T], minSupport float64, policy ThresholdPolicy) SupportTable[T] {
	table := SupportTable[T]{
		supports: make(map[T]float64),
		counts:   make(map[T]int),
	}
	if ds.Len() == 0 {
		return table
	}

	counts := make(map[T]int)
	for _, txn := range ds {
		for _, item := range txn.Items() {
			counts[item]++
		}
	}

	for item, count := range counts {
		s := support(count, ds.Len())
		if policy.seedPasses(s, minSupport) {
			table.supports[item] = s
			table.counts[item] = count
		}
	}
	return table
}

// Len returns the number of frequent items.
func (t SupportTable[T]) Len() int {
	return len(t.supports)
}

// Support returns the support of item and whether it is frequent.
func (t SupportTable[T]) Support(item T) (float64, bool) {
	s, ok := t.supports[item]
	return s, ok
}

// Items returns the frequent items in ascending order.
func (t SupportTable[T]) Items() []T {
	items := make([]T, 0, len(t.supports))
	for item := range t.supports {
		items = append(items, item)
	}
	slices.Sort(items)
	return items
}

// Frequent returns one singleton itemset per frequent item, in item order.
func (t SupportTable[T]) Frequent() []FrequentItemset[T] {
	items := t.Items()
	out := make([]FrequentItemset[T], len(items))
	for i, item := range items {
		out[i] = FrequentItemset[T]{
			Itemset: model.NewItemset(item),
			Count:   t.counts[item],
			Support: t.supports[item],
		}
	}
	return out
}
