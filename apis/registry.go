/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

import "reflect"

// Registry records which type families are optional-value wrappers.
// Types are keyed by their generic origin, so registering Option[int]
// registers every instantiation of Option.
type Registry interface {
	// Register marks the origin of t as a wrapper family. t must implement
	// Wrapper. Re-registering the same family is a no-op.
	Register(t reflect.Type) error
	// IsWrapper reports whether t belongs to a registered wrapper family.
	IsWrapper(t reflect.Type) bool
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Entry
	// Count returns the number of registered families.
	Count() int
	// Reset clears all registered families.
	Reset()
}

// Entry is a single registered wrapper family in a Registry snapshot.
type Entry struct {
	// Type is the first instantiation registered for the family.
	Type reflect.Type
	// Origin is the family identity, "import/path.Name".
	Origin string
}
