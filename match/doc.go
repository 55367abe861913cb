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


// Package match decides whether annotated tokens satisfy query constraints.
//
// Constraints are checked in a fixed order: part-of-speech, lemma, surface
// string, phonetic transcription. A constraint that is set on the query
// token must be set and equal on the candidate token. Constraints that are
// not set are ignored, so a query token with no constraints at all matches
// every token.
//
// All functions are pure and safe for concurrent use.
package match
