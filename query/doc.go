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


// Package query answers synonym and analogy questions against a trained
// vocabulary.
//
// The Composer resolves a free-text phrase to a vector and retrieves its
// nearest vocabulary tokens, excluding the phrase's own words. The
// AnalogyEngine scores how well "x is to y as z is to a" holds by
// comparing the two pair-difference vectors.
//
// Every operation is a synchronous pure function over the read-only
// vocabulary; results never depend on call order.
package query
