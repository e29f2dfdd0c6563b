package apriori_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fpeterek/strojove-uceni/internal/apriori"
	"github.com/fpeterek/strojove-uceni/internal/model"
)

type ruleView struct {
	antecedent []int
	consequent []int
	confidence float64
}

// conf computes a confidence at run time the way the miner does, from
// counts of the union and of the antecedent over n transactions.
func conf(union, antecedent, n int) float64 {
	return (float64(union) / float64(n)) / (float64(antecedent) / float64(n))
}

func viewRules(rules []model.Rule[int]) []ruleView {
	out := make([]ruleView, len(rules))
	for i, r := range rules {
		out[i] = ruleView{r.Antecedent.Items(), r.Consequent.Items(), r.Confidence}
	}
	return out
}

func TestGenerateRules_ConfidenceBoundary(t *testing.T) {
	ds := boundaryDataset()
	itemsets := []model.Itemset[int]{model.NewItemset(1), model.NewItemset(1, 2)}

	tests := []struct {
		name          string
		want          []ruleView
		minConfidence float64
	}{
		{
			name:          "confidence equal to min is kept",
			minConfidence: 0.5,
			want: []ruleView{
				{[]int{1}, []int{2}, 0.5},
				{[]int{2}, []int{1}, conf(2, 3, 5)},
			},
		},
		{
			name:          "confidence below min is dropped",
			minConfidence: 0.51,
			want: []ruleView{
				{[]int{2}, []int{1}, conf(2, 3, 5)},
			},
		},
		{
			name:          "nothing reaches one",
			minConfidence: 1,
			want:          []ruleView{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules, err := apriori.GenerateRules(context.Background(), itemsets,
				apriori.NewScanCounter(ds), apriori.WithMinConfidence(tt.minConfidence))
			require.NoError(t, err)
			assert.Equal(t, tt.want, viewRules(rules))
		})
	}
}

func TestGenerateRules_TripleSplitsEveryWay(t *testing.T) {
	ds := model.Dataset[int]{
		model.NewTransaction(1, 2, 3),
		model.NewTransaction(1, 2, 3),
		model.NewTransaction(1, 2),
		model.NewTransaction(3),
	}

	rules, err := apriori.GenerateRules(context.Background(),
		[]model.Itemset[int]{model.NewItemset(3, 1, 2)},
		apriori.NewBitmapCounter(ds), apriori.WithMinConfidence(0.01))
	require.NoError(t, err)
	require.Len(t, rules, 6)

	for _, r := range rules {
		assert.Zero(t, r.Antecedent.Union(r.Consequent).Compare(model.NewItemset(1, 2, 3)))
		assert.Zero(t, r.Antecedent.SymmetricDifference(r.Consequent).Compare(model.NewItemset(1, 2, 3)))
	}

	// {1,2} => {3}: support({1,2,3}) / support({1,2}) = 0.5 / 0.75
	assert.Equal(t, []int{1, 2}, rules[3].Antecedent.Items())
	assert.Equal(t, conf(2, 3, 4), rules[3].Confidence)
}

func TestGenerateRules_Deduplicates(t *testing.T) {
	ds := boundaryDataset()
	itemsets := []model.Itemset[int]{model.NewItemset(1, 2), model.NewItemset(2, 1)}

	rules, err := apriori.GenerateRules(context.Background(), itemsets,
		apriori.NewScanCounter(ds), apriori.WithMinConfidence(0.1))
	require.NoError(t, err)
	assert.Len(t, rules, 2)
}

func TestGenerateRules_EmptyInputs(t *testing.T) {
	rules, err := apriori.GenerateRules(context.Background(), nil,
		apriori.NewScanCounter(boundaryDataset()))
	require.NoError(t, err)
	assert.Empty(t, rules)

	rules, err = apriori.GenerateRules(context.Background(),
		[]model.Itemset[int]{model.NewItemset(1, 2)},
		apriori.NewScanCounter(model.Dataset[int]{}))
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestGenerateRules_CountersAndWorkersAgree(t *testing.T) {
	ds := randomDataset(17, 90, 8, 0.5)
	res, err := apriori.Mine(context.Background(), ds, apriori.WithMinSupport(0.15))
	require.NoError(t, err)

	scan, err := apriori.GenerateRules(context.Background(), res.Itemsets(),
		apriori.NewScanCounter(ds), apriori.WithMinConfidence(0.3))
	require.NoError(t, err)
	cached, err := apriori.GenerateRules(context.Background(), res.Itemsets(),
		res.Counter(), apriori.WithMinConfidence(0.3), apriori.WithWorkers(6))
	require.NoError(t, err)

	require.NotEmpty(t, scan)
	assert.Equal(t, viewRules(scan), viewRules(cached))
}

func TestGenerateRules_RuleHook(t *testing.T) {
	var calls []int
	_, err := apriori.GenerateRules(context.Background(),
		[]model.Itemset[int]{model.NewItemset(1), model.NewItemset(1, 2), model.NewItemset(1, 3)},
		apriori.NewScanCounter(boundaryDataset()),
		apriori.WithRuleHook(func(done, total int) {
			assert.Equal(t, 2, total)
			calls = append(calls, done)
		}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, calls)
}

func TestFindPatterns(t *testing.T) {
	patterns, err := apriori.FindPatterns(context.Background(), boundaryDataset(),
		apriori.WithMinSupport(0.4),
		apriori.WithMinConfidence(0.6),
		apriori.WithThresholdPolicy(apriori.PolicyInclusive))
	require.NoError(t, err)

	assert.Equal(t, 6, patterns.Len())
	assert.Equal(t, []ruleView{
		{[]int{2}, []int{1}, conf(2, 3, 5)},
		{[]int{2}, []int{3}, conf(2, 3, 5)},
		{[]int{3}, []int{1}, conf(2, 3, 5)},
		{[]int{3}, []int{2}, conf(2, 3, 5)},
	}, viewRules(patterns.Rules))
}

func TestFindPatterns_Idempotent(t *testing.T) {
	ds := randomDataset(23, 60, 6, 0.5)
	opts := []apriori.Option{apriori.WithMinSupport(0.2), apriori.WithMinConfidence(0.4)}

	first, err := apriori.FindPatterns(context.Background(), ds, opts...)
	require.NoError(t, err)
	second, err := apriori.FindPatterns(context.Background(), ds, opts...)
	require.NoError(t, err)

	assert.Equal(t, first.Levels, second.Levels)
	assert.Equal(t, viewRules(first.Rules), viewRules(second.Rules))
}
