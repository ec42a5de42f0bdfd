// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package wordspace

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/poiesic/wordspace/core"
	"github.com/poiesic/wordspace/ingestion"
	"github.com/poiesic/wordspace/query"
	"github.com/poiesic/wordspace/storage"
	"github.com/poiesic/wordspace/storage/badger"
	"github.com/poiesic/wordspace/vocab"
	"github.com/poiesic/wordspace/vocab/keyed"
)

// ErrNoVectors indicates that no word vectors have been imported yet.
var ErrNoVectors = errors.New("no word vectors in store")

// Database bundles a storage backend with the repositories, pipeline and
// query engines of one word-vector workspace.
type Database struct {
	backend *badger.Backend
	docRepo storage.DocumentRepository
	vecRepo storage.VectorRepository
	logger  *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	inMemory bool
}

// WithInMemory opens the backend in memory instead of on disk. The path
// argument to Open is ignored. Intended for tests.
func WithInMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

// Open opens (or creates) a workspace database at filePath.
func Open(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	docRepo, err := badger.NewDocumentRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	vecRepo, err := badger.NewVectorRepository(backend)
	if err != nil {
		docRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Database{
		backend: backend,
		docRepo: docRepo,
		vecRepo: vecRepo,
		logger:  slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	if err := db.vecRepo.Close(); err != nil {
		db.logger.Error("error closing vector repository", "err", err)
		return err
	}
	if err := db.docRepo.Close(); err != nil {
		db.logger.Error("error closing document repository", "err", err)
		return err
	}
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) DocumentRepository() storage.DocumentRepository {
	return db.docRepo
}

func (db *Database) VectorRepository() storage.VectorRepository {
	return db.vecRepo
}

// NewIngestionPipeline creates a pipeline that persists normalized
// corpus documents into this database.
func (db *Database) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(db.docRepo, opts...)
}

// ImportVectors reads a word2vec text-format model from r and persists
// its vectors. Returns the number of imported tokens.
func (db *Database) ImportVectors(ctx context.Context, r io.Reader) (int, error) {
	vectors, err := keyed.Load(r)
	if err != nil {
		return 0, err
	}

	entries := vectors.Entries()
	if len(entries) == 0 {
		return 0, nil
	}
	if err := db.vecRepo.PutVectors(ctx, entries...); err != nil {
		return 0, err
	}

	db.logger.Info("word vectors imported", "tokens", len(entries), "dim", vectors.Dim())
	return len(entries), nil
}

// Vocabulary materializes the persisted word vectors into an in-memory
// vocabulary. Returns ErrNoVectors when nothing has been imported.
func (db *Database) Vocabulary(ctx context.Context) (vocab.Vocabulary, error) {
	dim, err := db.vecRepo.Dim(ctx)
	if err != nil {
		return nil, err
	}
	if dim == 0 {
		return nil, ErrNoVectors
	}

	vectors := keyed.New(dim)
	err = db.vecRepo.AllVectors(ctx, func(entry *core.VectorEntry) error {
		return vectors.Add(entry.Token, entry.Vector)
	})
	if err != nil {
		return nil, err
	}
	return vectors, nil
}

// NewComposer creates a synonym query composer over the persisted
// vocabulary.
func (db *Database) NewComposer(ctx context.Context, opts ...query.Option) (*query.Composer, error) {
	vocabulary, err := db.Vocabulary(ctx)
	if err != nil {
		return nil, err
	}
	return query.NewComposer(vocabulary, opts...)
}

// NewAnalogyEngine creates an analogy engine over the persisted
// vocabulary.
func (db *Database) NewAnalogyEngine(ctx context.Context, opts ...query.Option) (*query.AnalogyEngine, error) {
	vocabulary, err := db.Vocabulary(ctx)
	if err != nil {
		return nil, err
	}
	return query.NewAnalogyEngine(vocabulary, opts...)
}
