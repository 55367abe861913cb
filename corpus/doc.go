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


// Package corpus runs one query over many documents.
//
// A Runner fans the documents out to a bounded worker pool, where each
// document is searched independently by a shared search.Searcher. Once all
// documents are done, the runner alone merges the per-document results into
// a results.ResultSet, in the order the documents were given.
//
// Documents must not be modified while a run is in progress.
package corpus
