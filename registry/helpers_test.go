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

package registry_test

import "reflect"

// T1 is a plain named type that is not a wrapper.
type T1 struct{}

// Maybe is a wrapper family independent of optional.Option.
type Maybe[T any] struct {
	v  T
	ok bool
}

func (m Maybe[T]) Unwrap() (any, bool)  { return m.v, m.ok }
func (Maybe[T]) ElemType() reflect.Type { return reflect.TypeFor[T]() }

// Distinct named wrapper families for concurrency tests.
type W0 struct{ Maybe[int] }
type W1 struct{ Maybe[int] }
type W2 struct{ Maybe[int] }
type W3 struct{ Maybe[int] }
type W4 struct{ Maybe[int] }
type W5 struct{ Maybe[int] }
type W6 struct{ Maybe[int] }
type W7 struct{ Maybe[int] }
type W8 struct{ Maybe[int] }
type W9 struct{ Maybe[int] }
