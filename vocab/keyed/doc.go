// Package keyed provides an in-memory vocab.Vocabulary backed by a plain
// token-to-vector table, loaded from word2vec text-format model files or
// rebuilt from persisted vector entries.
//
// Nearest-neighbor retrieval is a full cosine-similarity scan. That is
// the right trade-off here: vocabularies trimmed by a minimum-count rule
// are small, and queries are interactive one-offs, not a serving path.
package keyed
