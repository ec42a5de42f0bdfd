// Package mock provides test doubles for the vocab interfaces.
//
// The doubles use function fields for behavior injection and default to
// deterministic hash-derived vectors, so tests get stable embeddings
// without a trained model.
package mock
