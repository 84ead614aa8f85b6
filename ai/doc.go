// Copyright 2025 Poiesic Systems
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


// Package ai provides the embedding service abstraction for paperset.
//
// The pipeline depends on the Embedder interface rather than a concrete
// client, so the embedding service can be swapped or stubbed. Two
// implementation sub-packages exist:
//
//   - ai/openai: production implementation for OpenAI-compatible APIs
//   - ai/mock: deterministic test double with call counting and failure
//     injection
//
// Config carries the service endpoint, model identifier, and the required
// API credential. Validation happens before any service call is attempted;
// a missing credential is a pre-flight error, never a mid-run one.
package ai
