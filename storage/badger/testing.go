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


package badger

import "github.com/poiesic/wordspace/storage"

// NewRepositories opens a BadgerDB at path and creates document and
// vector repositories over the shared backend.
// Caller must close both repos and the backend when done.
func NewRepositories(path string) (storage.DocumentRepository, storage.VectorRepository, *Backend, error) {
	return newRepositories(path, false)
}

// NewMemoryRepositories creates in-memory document and vector
// repositories for testing.
// Caller must close both repos and the backend when done.
func NewMemoryRepositories() (storage.DocumentRepository, storage.VectorRepository, *Backend, error) {
	return newRepositories("", true)
}

func newRepositories(path string, inMemory bool) (storage.DocumentRepository, storage.VectorRepository, *Backend, error) {
	backend, err := OpenBackend(path, inMemory)
	if err != nil {
		return nil, nil, nil, err
	}

	docRepo, err := NewDocumentRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, nil, err
	}

	vecRepo, err := NewVectorRepository(backend)
	if err != nil {
		docRepo.Close()
		backend.Close()
		return nil, nil, nil, err
	}

	return docRepo, vecRepo, backend, nil
}
