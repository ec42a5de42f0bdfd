package core

import (
	"math"

	"github.com/viterin/vek/vek32"
)

// Subtract returns the elementwise difference a - b as a new vector.
// Returns ErrDimensionMismatch if the operands differ in length.
func Subtract(a, b []float32) ([]float32, error) {
	if len(a) != len(b) {
		return nil, ErrDimensionMismatch
	}
	return vek32.Sub(a, b), nil
}

// EuclideanDistance returns the L2 distance between a and b.
// Returns ErrDimensionMismatch if the operands differ in length.
func EuclideanDistance(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	return float64(vek32.Distance(a, b)), nil
}

// CosineSimilarity returns the cosine of the angle between a and b.
// Zero-magnitude operands yield a similarity of 0.
// Returns ErrDimensionMismatch if the operands differ in length.
func CosineSimilarity(a, b []float32) (float32, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	normA := vek32.Norm(a)
	normB := vek32.Norm(b)
	if normA == 0 || normB == 0 {
		return 0, nil
	}
	sim := vek32.Dot(a, b) / (normA * normB)
	if math.IsNaN(float64(sim)) {
		return 0, nil
	}
	return sim, nil
}

// CloneVector returns a copy of v. Model storage is immutable after
// construction, so arithmetic always operates on copies.
func CloneVector(v []float32) []float32 {
	out := make([]float32, len(v))
	copy(out, v)
	return out
}
