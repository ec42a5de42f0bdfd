package keyed

import (
	"context"
	"sort"

	"github.com/poiesic/wordspace/core"
	"github.com/poiesic/wordspace/vocab"
)

// Vectors is an in-memory token-to-vector table satisfying
// vocab.Vocabulary. It is built once, either from a word2vec text-format
// file or programmatically, and is read-only afterwards, so concurrent
// queries are safe.
type Vectors struct {
	dim    int
	tokens []string
	index  map[string]int
	rows   [][]float32
}

var _ vocab.Vocabulary = (*Vectors)(nil)

// New creates an empty vector table with the given dimensionality.
func New(dim int) *Vectors {
	return &Vectors{
		dim:   dim,
		index: map[string]int{},
	}
}

// Add inserts a token vector, replacing any previous entry for the token.
// Returns core.ErrDimensionMismatch if vec does not match the table
// dimensionality. The vector is copied; the caller keeps ownership of vec.
func (v *Vectors) Add(token string, vec []float32) error {
	if len(vec) != v.dim {
		return core.ErrDimensionMismatch
	}
	if i, ok := v.index[token]; ok {
		v.rows[i] = core.CloneVector(vec)
		return nil
	}
	v.index[token] = len(v.tokens)
	v.tokens = append(v.tokens, token)
	v.rows = append(v.rows, core.CloneVector(vec))
	return nil
}

// Dim returns the dimensionality of every vector in the table.
func (v *Vectors) Dim() int {
	return v.dim
}

// Len returns the number of tokens in the table.
func (v *Vectors) Len() int {
	return len(v.tokens)
}

// Contains reports whether token has an entry.
func (v *Vectors) Contains(token string) bool {
	_, ok := v.index[token]
	return ok
}

// Vector returns a copy of the stored vector for token.
// Returns core.ErrTokenNotFound for absent tokens.
func (v *Vectors) Vector(token string) ([]float32, error) {
	i, ok := v.index[token]
	if !ok {
		return nil, core.ErrTokenNotFound
	}
	return core.CloneVector(v.rows[i]), nil
}

// Embed resolves a token sequence to a single vector using the model's
// first-token rule: multi-token sequences reduce to the first token's
// vector and are never averaged.
func (v *Vectors) Embed(_ context.Context, tokens []string) ([]float32, error) {
	if len(tokens) == 0 {
		return nil, core.ErrEmptyPhrase
	}
	return v.Vector(tokens[0])
}

// Nearest returns up to k tokens closest to vec by cosine similarity,
// descending. Ties break alphabetically so results are deterministic.
// If k exceeds the vocabulary size, all tokens are returned.
func (v *Vectors) Nearest(_ context.Context, vec []float32, k int) (core.SynonymResult, error) {
	if k < 1 {
		return nil, core.ErrInvalidLimit
	}
	if len(vec) != v.dim {
		return nil, core.ErrDimensionMismatch
	}

	result := make(core.SynonymResult, 0, len(v.tokens))
	for i, token := range v.tokens {
		score, err := core.CosineSimilarity(vec, v.rows[i])
		if err != nil {
			return nil, err
		}
		result = append(result, core.SynonymMatch{Token: token, Score: score})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		return result[i].Token < result[j].Token
	})

	if len(result) > k {
		result = result[:k]
	}
	return result, nil
}

// Entries snapshots the table as persistable vector entries, in insertion
// order. Vectors are copied.
func (v *Vectors) Entries() []*core.VectorEntry {
	entries := make([]*core.VectorEntry, len(v.tokens))
	for i, token := range v.tokens {
		entries[i] = &core.VectorEntry{
			Token:  token,
			Vector: core.CloneVector(v.rows[i]),
		}
	}
	return entries
}
