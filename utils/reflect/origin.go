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

package reflect

import (
	"errors"
	"reflect"
	"strings"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type is unnamed
	// (e.g., pointer, slice, anonymous struct, func).
	ErrReflectTypeNotNamed = errors.New("reflect: type is not named")
)

// Origin returns the generic origin identity of t: "import/path.Name" with
// any type instantiation suffix removed, so Option[int] and Option[string]
// share the origin ".../optional.Option". Predeclared types have no import
// path and yield their bare name.
//
// Unnamed types have no origin; pointers are not unwrapped.
func Origin(t reflect.Type) (string, error) {
	if t == nil {
		return "", ErrReflectNilType
	}
	name := StripTypeParams(t.Name())
	if name == "" {
		return "", ErrReflectTypeNotNamed
	}
	if p := t.PkgPath(); p != "" {
		return p + "." + name, nil
	}
	return name, nil
}

// SameOrigin reports whether a and b are named types of the same origin.
func SameOrigin(a, b reflect.Type) bool {
	oa, err := Origin(a)
	if err != nil {
		return false
	}
	ob, err := Origin(b)
	if err != nil {
		return false
	}
	return oa == ob
}

// StripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func StripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
