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


// Package openai embeds vocabulary tokens through OpenAI-compatible
// embedding APIs using the langchaingo client library.
//
// This is an alternative vocabulary source for setups without a locally
// trained word2vec model file; the primary path is vocab/keyed.Load.
// Works with any OpenAI-compatible service (Ollama, LocalAI, vLLM, etc).
package openai
