// Package ingestion provides pipeline orchestration for corpus processing.
//
// The Pipeline type manages the corpus ingestion workflow, including:
//   - Reading newline-delimited raw text
//   - Normalizing lines into token documents concurrently
//   - Optionally filtering stopwords
//   - Persisting documents to storage in batches
//
// Normalization is performed concurrently using a worker pool to maximize
// throughput. Empty documents produced by normalization are counted but
// not persisted.
package ingestion
