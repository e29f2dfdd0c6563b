package apriori

import (
	"context"

	"github.com/fpeterek/strojove-uceni/internal/model"
)

// Result is the collection of frequent itemsets found by Mine.
type Result[T model.Item] struct {
	counter SupportCounter[T]
	// Levels holds the frequent itemsets by size; Levels[0] are singletons.
	// Every level is sorted canonically and no level is empty.
	Levels [][]FrequentItemset[T]
	// Transactions is the number of transactions mined.
	Transactions int
}

// Len returns the total number of frequent itemsets.
func (r *Result[T]) Len() int {
	n := 0
	for _, level := range r.Levels {
		n += len(level)
	}
	return n
}

// All returns every frequent itemset, level by level.
func (r *Result[T]) All() []FrequentItemset[T] {
	out := make([]FrequentItemset[T], 0, r.Len())
	for _, level := range r.Levels {
		out = append(out, level...)
	}
	return out
}

// Itemsets returns every frequent itemset without its support, level by level.
func (r *Result[T]) Itemsets() []model.Itemset[T] {
	return itemsetsOf(r.All())
}

// Counter returns the support counter used during the search, so rule
// generation can reuse its cache.
func (r *Result[T]) Counter() SupportCounter[T] {
	return r.counter
}

// Mine runs the level-wise search over ds. Level 1 is seeded by
// BuildSupportTable; each further level joins the previous frontier with
// GenerateCandidates and keeps the survivors of FilterBySupport. The search
// stops at the first level without survivors.
//
// An empty dataset, or one where no item is frequent, yields an empty Result.
func Mine[T model.Item](ctx context.Context, ds model.Dataset[T], opts ...Option) (*Result[T], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	counter := NewCounter(ds, o.Index)
	res := &Result[T]{counter: counter, Transactions: ds.Len()}
	if ds.Len() == 0 {
		o.Logger.Debug("empty dataset, nothing to mine")
		return res, nil
	}

	table := BuildSupportTable(ds, o.MinSupport, o.Policy)
	frontier := table.Frequent()
	report(o, LevelStats{Size: 1, Candidates: len(ds.Items()), Frequent: len(frontier)})

	for size := 2; len(frontier) > 0; size++ {
		res.Levels = append(res.Levels, frontier)

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		candidates := GenerateCandidates(itemsetsOf(frontier))
		next, scored, err := filterBySupport(ctx, candidates, counter, o)
		if err != nil {
			return nil, err
		}
		report(o, LevelStats{Size: size, Candidates: scored, Frequent: len(next)})
		frontier = next
	}

	o.Logger.Debug("frequent itemset search finished",
		"transactions", res.Transactions,
		"levels", len(res.Levels),
		"itemsets", res.Len())

	return res, nil
}

func report(o Options, stats LevelStats) {
	o.Logger.Debug("level complete",
		"size", stats.Size,
		"candidates", stats.Candidates,
		"frequent", stats.Frequent)
	if o.OnLevel != nil {
		o.OnLevel(stats)
	}
}
