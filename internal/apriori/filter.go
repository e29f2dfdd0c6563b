package apriori

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/fpeterek/strojove-uceni/internal/model"
)

// Dedup collapses itemsets with the same canonical key, keeping the first
// occurrence of each.
func Dedup[T model.Item](itemsets []model.Itemset[T]) []model.Itemset[T] {
	seen := make(map[string]struct{}, len(itemsets))
	out := make([]model.Itemset[T], 0, len(itemsets))
	for _, s := range itemsets {
		key := s.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

// FilterBySupport deduplicates candidates, counts each distinct candidate
// with counter, and returns those whose support passes the join comparison
// of the configured policy. The result is sorted canonically.
func FilterBySupport[T model.Item](ctx context.Context, candidates []model.Itemset[T], counter SupportCounter[T], opts ...Option) ([]FrequentItemset[T], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	kept, _, err := filterBySupport(ctx, candidates, counter, o)
	return kept, err
}

// filterBySupport also returns the number of distinct candidates scored.
func filterBySupport[T model.Item](ctx context.Context, candidates []model.Itemset[T], counter SupportCounter[T], o Options) ([]FrequentItemset[T], int, error) {
	unique := Dedup(candidates)
	n := counter.Len()
	if len(unique) == 0 || n == 0 {
		return nil, len(unique), nil
	}

	counts := make([]int, len(unique))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, c := range unique {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			counts[i] = counter.Count(c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, len(unique), err
	}

	var kept []FrequentItemset[T]
	for i, c := range unique {
		s := support(counts[i], n)
		if o.Policy.joinPasses(s, o.MinSupport) {
			kept = append(kept, FrequentItemset[T]{Itemset: c, Count: counts[i], Support: s})
		}
	}

	slices.SortFunc(kept, func(a, b FrequentItemset[T]) int {
		return a.Itemset.Compare(b.Itemset)
	})
	return kept, len(unique), nil
}
