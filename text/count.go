package text

import (
	"sort"

	"github.com/poiesic/wordspace/core"
)

// TokenCounts tracks how many times each token occurs in a corpus.
type TokenCounts map[string]int

// CountTokens tallies token occurrences across the documents.
func CountTokens(docs []*core.Document) TokenCounts {
	counts := TokenCounts{}
	counts.Add(docs...)
	return counts
}

// Add folds more documents into the counts.
func (t TokenCounts) Add(docs ...*core.Document) {
	for _, doc := range docs {
		for _, token := range doc.Tokens {
			t[token]++
		}
	}
}

// Distinct returns the number of distinct tokens seen.
func (t TokenCounts) Distinct() int {
	return len(t)
}

// Total returns the total number of token occurrences.
func (t TokenCounts) Total() int {
	var total int
	for _, n := range t {
		total += n
	}
	return total
}

// MostCommon returns the n most frequent tokens, most frequent first.
// Ties break alphabetically so the ordering is deterministic. If fewer
// than n distinct tokens exist, all are returned.
func (t TokenCounts) MostCommon(n int) []string {
	tokens := make([]string, 0, len(t))
	for token := range t {
		tokens = append(tokens, token)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if t[tokens[i]] != t[tokens[j]] {
			return t[tokens[i]] > t[tokens[j]]
		}
		return tokens[i] < tokens[j]
	})
	if len(tokens) > n {
		tokens = tokens[:n]
	}
	return tokens
}

// AboveMinCount returns the tokens occurring at least min times, in
// MostCommon order. This mirrors the vocabulary cut a trained model
// applies to rare tokens.
func (t TokenCounts) AboveMinCount(min int) []string {
	kept := TokenCounts{}
	for token, n := range t {
		if n >= min {
			kept[token] = n
		}
	}
	return kept.MostCommon(len(kept))
}
