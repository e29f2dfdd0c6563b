package apriori

import (
	"context"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/fpeterek/strojove-uceni/internal/combin"
	"github.com/fpeterek/strojove-uceni/internal/model"
)

// GenerateRules derives association rules from itemsets. Every itemset of
// size >= 2 is split into each non-empty proper antecedent and the
// complementary consequent; a rule is kept when its confidence is at least
// the configured minimum. Rules are unique by (antecedent, consequent,
// confidence) and returned sorted by antecedent, then consequent.
func GenerateRules[T model.Item](ctx context.Context, itemsets []model.Itemset[T], counter SupportCounter[T], opts ...Option) ([]model.Rule[T], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if counter.Len() == 0 {
		return nil, nil
	}

	var sources []model.Itemset[T]
	for _, s := range itemsets {
		if s.Len() > 1 {
			sources = append(sources, s)
		}
	}

	perItemset := make([][]model.Rule[T], len(sources))
	var (
		mu   sync.Mutex
		done int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, s := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			perItemset[i] = rulesFor(s, counter, o)

			if o.OnItemset != nil {
				mu.Lock()
				done++
				o.OnItemset(done, len(sources))
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var rules []model.Rule[T]
	for _, batch := range perItemset {
		for _, r := range batch {
			key := r.Key()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			rules = append(rules, r)
		}
	}

	slices.SortFunc(rules, func(a, b model.Rule[T]) int {
		return a.Compare(b)
	})

	o.Logger.Debug("rule generation finished",
		"itemsets", len(sources),
		"rules", len(rules))

	return rules, nil
}

// rulesFor enumerates the antecedents of one itemset by size.
func rulesFor[T model.Item](s model.Itemset[T], counter SupportCounter[T], o Options) []model.Rule[T] {
	n := counter.Len()
	items := s.Items()
	unionSupport := support(counter.Count(s), n)

	var rules []model.Rule[T]
	for size := 1; size < len(items); size++ {
		antecedents := combin.Of(items, size)
		o.Logger.Debug("enumerated antecedents",
			"itemset", s.String(),
			"size", size,
			"antecedents", len(antecedents))

		for _, a := range antecedents {
			antecedent := model.NewItemset(a...)
			count := counter.Count(antecedent)
			if count == 0 {
				continue
			}
			confidence := unionSupport / support(count, n)
			if confidence >= o.MinConfidence {
				rules = append(rules, model.Rule[T]{
					Antecedent: antecedent,
					Consequent: s.Minus(antecedent),
					Confidence: confidence,
				})
			}
		}
	}
	return rules
}
