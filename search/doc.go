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


// Package search finds the positions in a document where a query matches.
//
// A Searcher runs the attribute matcher from package match over every
// eligible position of a document:
//   - A single-token query is tested against every token
//   - A sequence query of length L is tested against every window of L
//     contiguous tokens that fits inside the document
//
// Matches are reported in increasing start order. Overlapping windows are
// all reported.
//
// Every call to Search returns a new SearchResult. A Searcher keeps no state
// between calls and may be shared by several goroutines, provided the
// documents being searched are not modified at the same time.
package search
