package apriori

import (
	"context"

	"github.com/fpeterek/strojove-uceni/internal/model"
)

// Patterns is the output of FindPatterns.
type Patterns[T model.Item] struct {
	*Result[T]
	Rules []model.Rule[T]
}

// FindPatterns mines ds and derives rules from every frequent itemset,
// sharing one support counter between both stages.
func FindPatterns[T model.Item](ctx context.Context, ds model.Dataset[T], opts ...Option) (*Patterns[T], error) {
	res, err := Mine(ctx, ds, opts...)
	if err != nil {
		return nil, err
	}

	rules, err := GenerateRules(ctx, res.Itemsets(), res.Counter(), opts...)
	if err != nil {
		return nil, err
	}

	return &Patterns[T]{Result: res, Rules: rules}, nil
}
