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

// Wrapper is implemented by option-like types whose only purpose is to
// represent the optional presence of a single inner value.
type Wrapper interface {
	// Unwrap returns the inner value and whether it is present.
	Unwrap() (any, bool)
	// ElemType returns the declared type of the inner value.
	ElemType() reflect.Type
}

// WrapperFiller is implemented by pointers to Wrapper types that can be
// populated from an inner value of their ElemType.
type WrapperFiller interface {
	// Fill stores v as the present inner value. It returns false if v is
	// not of the wrapper's ElemType.
	Fill(v any) bool
}
