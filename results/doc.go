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


// Package results aggregates matches per document and across documents.
//
// A SearchResult holds the matches one search found in one document.
// A ResultSet maps documents to their matches and keeps documents in the
// order they were added, so flattening is deterministic.
//
// # Same-document policy
//
// A document may appear at most once in a ResultSet. Combining or merging
// results that both contain the same document fails with
// ErrUnsupportedMerge; nothing is overwritten or concatenated.
//
// # Thread Safety
//
// Neither type locks internally. A ResultSet being grown with Add must be
// owned by a single goroutine. Combine and Merge never modify their inputs.
package results
