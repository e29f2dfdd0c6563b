package apriori

import (
	"github.com/fpeterek/strojove-uceni/internal/model"
)

// GenerateCandidates joins every unordered pair of frontier itemsets whose
// symmetric difference has exactly two items. Each join yields an itemset
// one item larger than its parents. The same candidate may be produced by
// several pairs; FilterBySupport removes the duplicates.
func GenerateCandidates[T model.Item](frontier []model.Itemset[T]) []model.Itemset[T] {
	var out []model.Itemset[T]
	for i := 0; i < len(frontier)-1; i++ {
		for j := i + 1; j < len(frontier); j++ {
			a, b := frontier[i], frontier[j]
			if a.SymmetricDifference(b).Len() == 2 {
				out = append(out, a.Union(b))
			}
		}
	}
	return out
}

func itemsetsOf[T model.Item](fis []FrequentItemset[T]) []model.Itemset[T] {
	out := make([]model.Itemset[T], len(fis))
	for i, f := range fis {
		out[i] = f.Itemset
	}
	return out
}
