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


package core

import "fmt"

// ValidateQuery checks that a query has a usable shape.
//
// Validation rules:
//   - The query must hold at least one query token
//   - A single-token query holds exactly one query token
//
// NOT validated:
//   - Query tokens with no constraints (they match everything)
func ValidateQuery(q Query) error {
	if len(q.tokens) == 0 {
		return fmt.Errorf("%w: query has no tokens", ErrInvalidQueryShape)
	}
	if !q.sequence && len(q.tokens) != 1 {
		return fmt.Errorf("%w: single-token query holds %d tokens", ErrInvalidQueryShape, len(q.tokens))
	}
	return nil
}

// ValidateDocument checks that a document can be searched.
// Token contents are not inspected; an empty document is valid and simply
// yields no matches.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}
	return nil
}
