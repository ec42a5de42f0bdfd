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


package core

import "errors"

// Domain errors
var (
	// ErrTokenNotFound indicates a token has no entry in the vocabulary,
	// either because it never occurred in the corpus or fell below the
	// minimum frequency at training time. Lookups fail rather than
	// substituting a default vector.
	ErrTokenNotFound = errors.New("token not found in vocabulary")

	// ErrDimensionMismatch indicates vector operands of unequal length.
	// It signals a caller bug (mixed model versions) and is fatal to the
	// current call; retrying cannot succeed.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrEmptyPhrase indicates a query phrase with no tokens.
	ErrEmptyPhrase = errors.New("phrase cannot be empty")

	// ErrInvalidLimit indicates a result limit below 1.
	ErrInvalidLimit = errors.New("result limit must be at least 1")

	// ErrEmptyDocument indicates a document with no tokens where content
	// is required.
	ErrEmptyDocument = errors.New("document cannot be empty")
)
