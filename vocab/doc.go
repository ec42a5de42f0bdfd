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


// Package vocab defines the contracts for trained word-vector models.
//
// The Vocabulary interface is the boundary between this toolkit and the
// external system that actually trains embeddings: the query layer only
// ever reads from it. Subpackages provide concrete sources:
//
//   - keyed: in-memory vectors loaded from word2vec text-format files
//   - openai: vectors embedded through an OpenAI-compatible service
//   - mock: deterministic test doubles
package vocab
