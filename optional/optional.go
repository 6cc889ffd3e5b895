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

// Package optional provides Option, the default wrapper type recognised by
// binders: a value that may or may not be present.
package optional

import (
	"fmt"
	"reflect"

	"dirpx.dev/bindx/apis"
)

var (
	_ apis.Wrapper       = Option[int]{}
	_ apis.WrapperFiller = (*Option[int])(nil)
)

// Option holds a value of type T or nothing. The zero value is empty.
type Option[T any] struct {
	v  T
	ok bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{v: v, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.v, o.ok
}

// IsPresent reports whether o holds a value.
func (o Option[T]) IsPresent() bool {
	return o.ok
}

// OrElse returns the held value, or def when o is empty.
func (o Option[T]) OrElse(def T) T {
	if o.ok {
		return o.v
	}
	return def
}

// Unwrap implements apis.Wrapper.
func (o Option[T]) Unwrap() (any, bool) {
	if !o.ok {
		return nil, false
	}
	return o.v, true
}

// ElemType implements apis.Wrapper.
func (Option[T]) ElemType() reflect.Type {
	return reflect.TypeFor[T]()
}

// Fill implements apis.WrapperFiller. A nil v fills an Option whose T is an
// interface type with the zero T; for other T it is rejected.
func (o *Option[T]) Fill(v any) bool {
	if v == nil {
		if reflect.TypeFor[T]().Kind() != reflect.Interface {
			return false
		}
		var zero T
		o.v, o.ok = zero, true
		return true
	}
	t, ok := v.(T)
	if !ok {
		return false
	}
	o.v, o.ok = t, true
	return true
}

// String formats o as "Some(v)" or "None".
func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.v)
}
