package mock

import (
	"context"
	"hash/fnv"
	"math"

	"github.com/poiesic/wordspace/core"
	"github.com/poiesic/wordspace/vocab"
)

// Default dimensionality of generated vectors, matching the default
// training configuration.
const defaultDim = 200

// MockVocabulary is a test double for vocab.Vocabulary.
// It allows custom behavior injection via function fields.
type MockVocabulary struct {
	// EmbedFunc is called by Embed if set.
	// If nil, uses default deterministic behavior.
	EmbedFunc func(ctx context.Context, tokens []string) ([]float32, error)

	// NearestFunc is called by Nearest if set.
	// If nil, returns an empty result.
	NearestFunc func(ctx context.Context, vec []float32, k int) (core.SynonymResult, error)

	// ContainsFunc is called by Contains if set.
	// If nil, every token is considered present.
	ContainsFunc func(token string) bool

	dim       int
	callCount int
}

var _ vocab.Vocabulary = (*MockVocabulary)(nil)

// NewMockVocabulary creates a mock vocabulary with default deterministic
// behavior and the default dimensionality.
func NewMockVocabulary() *MockVocabulary {
	return &MockVocabulary{dim: defaultDim}
}

// NewMockVocabularyDim creates a mock vocabulary generating vectors of
// the given dimensionality.
func NewMockVocabularyDim(dim int) *MockVocabulary {
	return &MockVocabulary{dim: dim}
}

// Dim returns the mock's vector dimensionality.
func (m *MockVocabulary) Dim() int {
	return m.dim
}

// Embed resolves a token sequence using EmbedFunc, or by default returns
// a deterministic vector derived from the first token's hash.
func (m *MockVocabulary) Embed(ctx context.Context, tokens []string) ([]float32, error) {
	m.callCount++

	if m.EmbedFunc != nil {
		return m.EmbedFunc(ctx, tokens)
	}

	if len(tokens) == 0 {
		return nil, core.ErrEmptyPhrase
	}
	return DeterministicVector(tokens[0], m.dim), nil
}

// Nearest returns NearestFunc's result, or an empty result by default.
func (m *MockVocabulary) Nearest(ctx context.Context, vec []float32, k int) (core.SynonymResult, error) {
	m.callCount++

	if m.NearestFunc != nil {
		return m.NearestFunc(ctx, vec, k)
	}
	return core.SynonymResult{}, nil
}

// Contains reports token membership via ContainsFunc, defaulting to true.
func (m *MockVocabulary) Contains(token string) bool {
	if m.ContainsFunc != nil {
		return m.ContainsFunc(token)
	}
	return true
}

// CallCount returns the number of Embed and Nearest calls made.
func (m *MockVocabulary) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockVocabulary) Reset() {
	m.callCount = 0
	m.EmbedFunc = nil
	m.NearestFunc = nil
	m.ContainsFunc = nil
}

// DeterministicVector creates a unit-length embedding vector from a
// token. It uses an FNV hash so the same token always produces the same
// vector.
func DeterministicVector(token string, dim int) []float32 {
	h := fnv.New32a()
	h.Write([]byte(token))
	seed := h.Sum32()

	vector := make([]float32, dim)
	for i := 0; i < dim; i++ {
		// Simple pseudo-random generation based on seed and index
		seed = seed*1664525 + 1013904223 // LCG constants
		vector[i] = float32(seed%1000)/1000.0 - 0.5
	}

	// Normalize to unit length
	var sumSquares float64
	for _, v := range vector {
		sumSquares += float64(v) * float64(v)
	}
	if sumSquares > 0 {
		norm := float32(1.0 / math.Sqrt(sumSquares))
		for i := range vector {
			vector[i] *= norm
		}
	}

	return vector
}
