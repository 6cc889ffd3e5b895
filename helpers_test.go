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

package bindx

import (
	"reflect"

	"dirpx.dev/bindx/apis"
	"dirpx.dev/bindx/argument"
)

func argumentOf[T any](name string) apis.Argument { return argument.Of[T](name) }

func contextOf[T any](name string) apis.ConversionContext { return argument.ContextOf[T](name) }

// box is a wrapper family outside the optional package.
type box[T any] struct{ v *T }

func (b box[T]) Unwrap() (any, bool) {
	if b.v == nil {
		return nil, false
	}
	return *b.v, true
}
func (box[T]) ElemType() reflect.Type { return reflect.TypeFor[T]() }
