package vocab

import (
	"context"

	"github.com/poiesic/wordspace/core"
)

// Vocabulary is a trained, immutable token-to-vector model.
// Implementations must be safe for concurrent reads; nothing mutates a
// vocabulary after construction.
type Vocabulary interface {
	// Dim returns the dimensionality of every vector in the model.
	Dim() int

	// Embed resolves a token sequence to a single embedding vector.
	// Multi-token sequences reduce to the FIRST token's vector; they are
	// not averaged. This mirrors the trained model's own transform
	// behavior and is preserved deliberately.
	// Returns core.ErrTokenNotFound if the selected token is not in the
	// vocabulary; a default vector is never substituted.
	Embed(ctx context.Context, tokens []string) ([]float32, error)

	// Nearest returns up to k vocabulary tokens closest to vec under the
	// model's similarity metric, ordered by descending score. If k
	// exceeds the vocabulary size, all tokens are returned.
	Nearest(ctx context.Context, vec []float32, k int) (core.SynonymResult, error)

	// Contains reports whether token has an entry in the vocabulary.
	Contains(token string) bool
}

// Trainer builds a Vocabulary from a prepared document collection.
// Training itself belongs to an external collaborator; this repository
// defines the contract and consumes the result, it does not reimplement
// the algorithm. Implementations must honor cfg.VectorSize and exclude
// tokens occurring fewer than cfg.MinCount times.
type Trainer interface {
	Train(ctx context.Context, docs []*core.Document, cfg *Config) (Vocabulary, error)
}
