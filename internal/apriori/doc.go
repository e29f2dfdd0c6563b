// Package apriori mines frequent itemsets and association rules from a
// dataset of transactions using the level-wise Apriori search.
//
// What:
//
//   - BuildSupportTable: single-item supports, seeding level 1.
//   - GenerateCandidates: joins two size-k itemsets whose symmetric
//     difference has exactly two items into one size-k+1 candidate.
//   - FilterBySupport: deduplicates candidates and keeps those meeting the
//     minimum support.
//   - Mine: drives the levels until no candidate survives.
//   - GenerateRules: splits every frequent itemset of size >= 2 into
//     antecedent/consequent pairs and keeps rules meeting the minimum
//     confidence.
//   - FindPatterns: Mine followed by GenerateRules over a shared counter.
//
// Thresholds:
//
// Level 1 and the joined levels may compare support differently. The
// ThresholdPolicy names the combination in force; PolicyParity (the
// default) keeps items with support >= min at level 1 and requires
// support > min for every larger itemset.
//
// Counting:
//
// Support is the fraction of transactions that are supersets of an itemset.
// The scan counter walks the dataset for every query; the bitmap counter
// intersects per-item roaring bitmaps of transaction indices. Both give the
// same counts, and confidences are always derived as
// (count(A∪C)/n) / (count(A)/n) so the floating point result does not
// depend on the counter or on caching.
//
// Complexity:
//
//   - BuildSupportTable: O(Σ|t|)
//   - GenerateCandidates: O(F²·k) for a frontier of F itemsets of size k
//   - FilterBySupport:    O(C·cost(count)) for C distinct candidates
//   - GenerateRules:      O(Σ 2^|s|) support queries over frequent itemsets s
//
// Errors:
//
//   - common.ErrInvalidParameter: thresholds outside (0, 1], workers < 1,
//     unknown policy or index. Reported before any computation.
//   - ctx.Err(): the context was cancelled between levels or scans.
package apriori
