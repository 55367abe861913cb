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


// Package annotated reads already-annotated documents and structured
// queries from YAML.
//
// Nothing here tokenizes or analyses text: every token arrives with its
// annotations. A key that is absent (or null) leaves the attribute unset,
// while an empty string sets it to the empty string.
//
// A corpus file lists documents. A stream may hold several YAML documents
// separated by ---, and their documents are concatenated:
//
//	documents:
//	  - name: voluspa-1
//	    tokens:
//	      - {string: ek, lemma: ek, pos: PRON}
//	      - {string: er, lemma: vera, pos: VERB}
//
// A query file is a single YAML document holding exactly one of token or
// sequence:
//
//	sequence:
//	  - {pos: PRON}
//	  - {lemma: vera}
package annotated
