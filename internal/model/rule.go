package model

import (
	"strconv"
)

// Rule is an association rule Antecedent => Consequent. The two sides are
// disjoint and their union is a frequent itemset.
type Rule[T Item] struct {
	Antecedent Itemset[T]
	Consequent Itemset[T]
	// Confidence is support(Antecedent ∪ Consequent) / support(Antecedent).
	Confidence float64
}

// Key identifies the rule by its full (antecedent, consequent, confidence) tuple.
func (r Rule[T]) Key() string {
	return r.Antecedent.Key() + "=>" + r.Consequent.Key() + "@" +
		strconv.FormatFloat(r.Confidence, 'g', -1, 64)
}

// Compare orders rules by antecedent, then consequent, then confidence.
func (r Rule[T]) Compare(other Rule[T]) int {
	if c := r.Antecedent.Compare(other.Antecedent); c != 0 {
		return c
	}
	if c := r.Consequent.Compare(other.Consequent); c != 0 {
		return c
	}
	switch {
	case r.Confidence < other.Confidence:
		return -1
	case r.Confidence > other.Confidence:
		return 1
	}
	return 0
}
