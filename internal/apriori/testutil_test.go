package apriori_test

import (
	"math/rand"

	"github.com/fpeterek/strojove-uceni/internal/apriori"
	"github.com/fpeterek/strojove-uceni/internal/combin"
	"github.com/fpeterek/strojove-uceni/internal/model"
)

// boundaryDataset has supports 1:0.8 2:0.6 3:0.6 and 0.4 for every pair.
func boundaryDataset() model.Dataset[int] {
	return model.Dataset[int]{
		model.NewTransaction(1, 2, 3),
		model.NewTransaction(1, 2),
		model.NewTransaction(1, 3),
		model.NewTransaction(2, 3),
		model.NewTransaction(1),
	}
}

// randomDataset draws n transactions over items 1..items, including each
// item with probability p.
func randomDataset(seed int64, n, items int, p float64) model.Dataset[int] {
	rng := rand.New(rand.NewSource(seed))
	ds := make(model.Dataset[int], 0, n)
	for range n {
		var txn []int
		for item := 1; item <= items; item++ {
			if rng.Float64() < p {
				txn = append(txn, item)
			}
		}
		if len(txn) == 0 {
			txn = append(txn, 1+rng.Intn(items))
		}
		ds = append(ds, model.NewTransaction(txn...))
	}
	return ds
}

// passes mirrors the comparison each policy applies at a given itemset size.
func passes(policy apriori.ThresholdPolicy, size int, support, minSupport float64) bool {
	switch {
	case policy == apriori.PolicyInclusive:
		return support >= minSupport
	case policy == apriori.PolicyStrict:
		return support > minSupport
	case size == 1:
		return support >= minSupport
	default:
		return support > minSupport
	}
}

// bruteForce enumerates every itemset over the dataset's items and keeps
// those passing the policy.
func bruteForce(ds model.Dataset[int], minSupport float64, policy apriori.ThresholdPolicy) map[string]float64 {
	counter := apriori.NewScanCounter(ds)
	items := ds.Items()
	out := make(map[string]float64)
	for k := 1; k <= len(items); k++ {
		for combo := range combin.OfSeq(items, k) {
			s := model.NewItemset(combo...)
			sup := float64(counter.Count(s)) / float64(ds.Len())
			if passes(policy, k, sup, minSupport) {
				out[s.Key()] = sup
			}
		}
	}
	return out
}

func keysOf[T model.Item](fis []apriori.FrequentItemset[T]) map[string]float64 {
	out := make(map[string]float64, len(fis))
	for _, f := range fis {
		out[f.Itemset.Key()] = f.Support
	}
	return out
}
