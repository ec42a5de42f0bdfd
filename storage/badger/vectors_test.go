package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/wordspace/core"
	"github.com/poiesic/wordspace/storage"
)

func TestVectorBasics(t *testing.T) {
	docRepo, vecRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { vecRepo.Close(); docRepo.Close(); backend.Close() }()

	ctx := context.Background()

	entry := &core.VectorEntry{Token: "movie", Vector: []float32{0.1, 0.2, 0.3}}
	if err := vecRepo.PutVectors(ctx, entry); err != nil {
		t.Fatalf("Failed to put vector: %v", err)
	}

	retrieved, err := vecRepo.GetVector(ctx, "movie")
	if err != nil {
		t.Fatalf("Failed to get vector: %v", err)
	}
	if retrieved.Token != "movie" {
		t.Fatalf("Expected 'movie', got '%s'", retrieved.Token)
	}
	if len(retrieved.Vector) != 3 {
		t.Fatalf("Expected 3 components, got %d", len(retrieved.Vector))
	}

	dim, err := vecRepo.Dim(ctx)
	if err != nil {
		t.Fatalf("Failed to read dim: %v", err)
	}
	if dim != 3 {
		t.Fatalf("Expected dim 3, got %d", dim)
	}
}

func TestVectorDimUnsetIsZero(t *testing.T) {
	docRepo, vecRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { vecRepo.Close(); docRepo.Close(); backend.Close() }()

	dim, err := vecRepo.Dim(context.Background())
	if err != nil {
		t.Fatalf("Failed to read dim: %v", err)
	}
	if dim != 0 {
		t.Fatalf("Expected dim 0 for empty store, got %d", dim)
	}
}

func TestVectorDimensionConflict(t *testing.T) {
	docRepo, vecRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { vecRepo.Close(); docRepo.Close(); backend.Close() }()

	ctx := context.Background()

	if err := vecRepo.PutVectors(ctx, &core.VectorEntry{Token: "movie", Vector: []float32{1, 2}}); err != nil {
		t.Fatalf("Failed to put vector: %v", err)
	}

	err = vecRepo.PutVectors(ctx, &core.VectorEntry{Token: "film", Vector: []float32{1, 2, 3}})
	if !errors.Is(err, storage.ErrDimensionConflict) {
		t.Fatalf("Expected ErrDimensionConflict, got %v", err)
	}

	// The failed batch must not leave a partial write behind.
	_, err = vecRepo.GetVector(ctx, "film")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for rejected entry, got %v", err)
	}
}

func TestVectorOverwrite(t *testing.T) {
	docRepo, vecRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { vecRepo.Close(); docRepo.Close(); backend.Close() }()

	ctx := context.Background()

	if err := vecRepo.PutVectors(ctx, &core.VectorEntry{Token: "movie", Vector: []float32{1, 0}}); err != nil {
		t.Fatalf("Failed to put vector: %v", err)
	}
	if err := vecRepo.PutVectors(ctx, &core.VectorEntry{Token: "movie", Vector: []float32{0, 1}}); err != nil {
		t.Fatalf("Failed to overwrite vector: %v", err)
	}

	retrieved, err := vecRepo.GetVector(ctx, "movie")
	if err != nil {
		t.Fatalf("Failed to get vector: %v", err)
	}
	if retrieved.Vector[0] != 0 || retrieved.Vector[1] != 1 {
		t.Fatalf("Expected overwritten vector, got %v", retrieved.Vector)
	}

	count, err := vecRepo.CountVectors(ctx)
	if err != nil {
		t.Fatalf("Failed to count vectors: %v", err)
	}
	if count != 1 {
		t.Fatalf("Expected 1 vector, got %d", count)
	}
}

func TestGetVectorNotFound(t *testing.T) {
	docRepo, vecRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { vecRepo.Close(); docRepo.Close(); backend.Close() }()

	_, err = vecRepo.GetVector(context.Background(), "zeppelin")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestAllVectorsTokenOrder(t *testing.T) {
	docRepo, vecRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer func() { vecRepo.Close(); docRepo.Close(); backend.Close() }()

	ctx := context.Background()

	entries := []*core.VectorEntry{
		{Token: "movie", Vector: []float32{1, 0}},
		{Token: "banana", Vector: []float32{0, 1}},
		{Token: "film", Vector: []float32{0.5, 0.5}},
	}
	if err := vecRepo.PutVectors(ctx, entries...); err != nil {
		t.Fatalf("Failed to put vectors: %v", err)
	}

	var tokens []string
	err = vecRepo.AllVectors(ctx, func(entry *core.VectorEntry) error {
		tokens = append(tokens, entry.Token)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to iterate vectors: %v", err)
	}

	want := []string{"banana", "film", "movie"}
	if len(tokens) != len(want) {
		t.Fatalf("Expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, token := range want {
		if tokens[i] != token {
			t.Fatalf("Expected token %q at index %d, got %q", token, i, tokens[i])
		}
	}
}
