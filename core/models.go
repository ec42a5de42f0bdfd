package core

import (
	"encoding/binary"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Document is one normalized sentence from the corpus: an ordered sequence
// of lowercase, punctuation-free tokens. Documents are immutable once
// produced by the normalizer.
type Document struct {
	Id     ID
	Tokens []string
}

// NewDocument creates a Document with a content-based ID derived from the
// joined token sequence.
func NewDocument(tokens []string) *Document {
	return &Document{
		Id:     IDFromContent(strings.Join(tokens, " ")),
		Tokens: tokens,
	}
}

// Empty reports whether the document holds no tokens.
func (d *Document) Empty() bool {
	return len(d.Tokens) == 0
}

// VectorEntry is one trained token vector, as persisted by the vector
// repository and as read from word2vec model files.
type VectorEntry struct {
	Token  string
	Vector []float32
}

// SynonymMatch pairs a vocabulary token with its similarity score to a
// query vector.
type SynonymMatch struct {
	Token string
	Score float32
}

// SynonymResult is an ordered sequence of matches, descending by score.
// Results are produced fresh per query and never persisted.
type SynonymResult []SynonymMatch

// Tokens returns just the token column of the result, in rank order.
func (r SynonymResult) Tokens() []string {
	tokens := make([]string, len(r))
	for i, m := range r {
		tokens[i] = m.Token
	}
	return tokens
}

// AnalogyScore is a raw, non-negative Euclidean distance between the two
// pair-difference vectors of an analogy query. Smaller means the analogy
// holds more strongly. No normalization or thresholding is applied.
type AnalogyScore float64
