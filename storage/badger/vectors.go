package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/wordspace/core"
	"github.com/poiesic/wordspace/storage"
)

// VectorRepository implements storage.VectorRepository for BadgerDB.
type VectorRepository struct {
	backend *Backend
}

var _ storage.VectorRepository = (*VectorRepository)(nil)

// NewVectorRepository creates a new VectorRepository.
func NewVectorRepository(backend *Backend) (*VectorRepository, error) {
	return &VectorRepository{
		backend: backend,
	}, nil
}

// Close releases resources. VectorRepository has no resources to release.
func (r *VectorRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *VectorRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// PutVectors stores one or more token vectors. The first write fixes the
// store's dimensionality; later writes must match it.
func (r *VectorRepository) PutVectors(ctx context.Context, entries ...*core.VectorEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.backend.WithTx(func(tx *badger.Txn) error {
		dim, err := readDim(tx)
		if err != nil {
			return err
		}

		for _, entry := range entries {
			if dim == 0 {
				dim = len(entry.Vector)
				if err := tx.Set(makeVectorDimKey(), storage.MarshalID(core.ID(dim))); err != nil {
					return err
				}
			}
			if len(entry.Vector) != dim {
				return storage.ErrDimensionConflict
			}

			key := makeVectorKey(entry.Token)
			value := storage.MarshalVectorEntry(entry)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetVector retrieves the vector for a token.
func (r *VectorRepository) GetVector(ctx context.Context, token string) (*core.VectorEntry, error) {
	var result *core.VectorEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeVectorKey(token))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			result, err = storage.UnmarshalVectorEntry(val)
			return err
		})
	}, false)
	return result, err
}

// AllVectors streams every stored vector entry to fn in token order.
func (r *VectorRepository) AllVectors(ctx context.Context, fn func(entry *core.VectorEntry) error) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		iter := tx.NewIterator(opts)
		defer iter.Close()

		prefix := []byte(vectorRecordPrefix + ":")
		for iter.Seek(prefix); iter.ValidForPrefix(prefix); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			var entry *core.VectorEntry
			err := iter.Item().Value(func(val []byte) error {
				var err error
				entry, err = storage.UnmarshalVectorEntry(val)
				return err
			})
			if err != nil {
				return err
			}
			if entry == nil {
				continue
			}

			if err := fn(entry); err != nil {
				return err
			}
		}
		return nil
	}, false)
}

// Dim returns the store's recorded vector dimensionality, or 0 when no
// vectors have been stored yet.
func (r *VectorRepository) Dim(ctx context.Context) (int, error) {
	var dim int
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		dim, err = readDim(tx)
		return err
	}, false)
	return dim, err
}

// CountVectors returns the number of stored token vectors.
func (r *VectorRepository) CountVectors(ctx context.Context) (int, error) {
	var count int
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		prefix := []byte(vectorRecordPrefix + ":")
		for iter.Seek(prefix); iter.ValidForPrefix(prefix); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// readDim reads the recorded dimensionality, returning 0 when unset.
func readDim(tx *badger.Txn) (int, error) {
	item, err := tx.Get(makeVectorDimKey())
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return 0, nil
		}
		return 0, err
	}

	var dim int
	err = item.Value(func(val []byte) error {
		id, err := storage.UnmarshalID(val)
		if err != nil {
			return err
		}
		dim = int(id)
		return nil
	})
	return dim, err
}
