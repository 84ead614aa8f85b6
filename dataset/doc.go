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


// Package dataset builds and persists the final embedded dataset.
//
// Build merges the ordered record sequence with the positionally matching
// vector sequence and refuses a length mismatch rather than truncating or
// padding. WriteFile serializes the dataset with the MUS binary format into
// a single container file:
//
//	magic "PSET" | version byte | 32-byte BLAKE2b payload digest | payload
//
// The digest lets ReadFile reject a truncated or torn file. A crash during
// writing leaves the output invalid, and consumers must treat an unreadable
// container as "no dataset produced". Vectors round-trip at full float32
// precision.
package dataset
