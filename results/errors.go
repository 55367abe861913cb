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


package results

import "errors"

var (
	// ErrUnsupportedMerge is returned when two results to be combined
	// contain matches for the same document.
	ErrUnsupportedMerge = errors.New("document already present in result set")

	// ErrLookupMiss is returned when a ResultSet is asked for a document it
	// does not contain.
	ErrLookupMiss = errors.New("document not in result set")

	// ErrResultRequired is returned when a nil result is passed in.
	ErrResultRequired = errors.New("result required")
)
