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

import (
	"errors"
	"reflect"
	"testing"

	"dirpx.dev/bindx/config"
	"dirpx.dev/bindx/optional"
	"dirpx.dev/bindx/registry"
)

func TestRegister_IdempotentAndLookup(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	if err := reg.Register(reflect.TypeOf(optional.Option[int]{})); err != nil {
		t.Fatalf("Register(Option[int]): unexpected error: %v", err)
	}
	// idempotent re-register, also through another instantiation
	if err := reg.Register(reflect.TypeOf(optional.Option[int]{})); err != nil {
		t.Fatalf("Register(Option[int]) idempotent: unexpected error: %v", err)
	}
	if err := reg.Register(reflect.TypeOf(optional.Option[string]{})); err != nil {
		t.Fatalf("Register(Option[string]): unexpected error: %v", err)
	}

	// every instantiation belongs to the family
	for _, tt := range []reflect.Type{
		reflect.TypeOf(optional.Option[int]{}),
		reflect.TypeOf(optional.Option[[]string]{}),
		reflect.TypeOf(optional.Option[T1]{}),
	} {
		if !reg.IsWrapper(tt) {
			t.Fatalf("IsWrapper(%v) = false, want true", tt)
		}
	}
	// pointers are not unwrapped
	if reg.IsWrapper(reflect.TypeOf(&optional.Option[int]{})) {
		t.Fatal("IsWrapper(*Option[int]) = true, want false")
	}

	if reg.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", reg.Count())
	}
}

func TestRegister_Errors(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	if err := reg.Register(nil); err != registry.ErrNilType {
		t.Fatalf("nil type: want ErrNilType, got %v", err)
	}
	if err := reg.Register(reflect.TypeOf(T1{})); !errors.Is(err, registry.ErrNotWrapper) {
		t.Fatalf("non-wrapper: want ErrNotWrapper, got %v", err)
	}
	if err := reg.Register(reflect.TypeFor[interface{ Unwrap() (any, bool) }]()); !errors.Is(err, registry.ErrNotWrapper) {
		t.Fatalf("interface: want ErrNotWrapper, got %v", err)
	}
	if reg.Count() != 0 {
		t.Fatalf("Count() = %d after failed registrations, want 0", reg.Count())
	}
}

func TestRegister_CustomWrapper(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	if err := reg.Register(reflect.TypeOf(Maybe[int]{})); err != nil {
		t.Fatalf("Register(Maybe[int]): %v", err)
	}
	if !reg.IsWrapper(reflect.TypeOf(Maybe[bool]{})) {
		t.Fatal("IsWrapper(Maybe[bool]) = false, want true")
	}
	if reg.IsWrapper(reflect.TypeOf(optional.Option[int]{})) {
		t.Fatal("IsWrapper(Option[int]) = true before registration")
	}
}

func TestEntriesAndReset(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	_ = reg.Register(reflect.TypeOf(optional.Option[int]{}))
	_ = reg.Register(reflect.TypeOf(Maybe[int]{}))

	entries := reg.Entries()
	if len(entries) != 2 {
		t.Fatalf("Entries len = %d, want 2", len(entries))
	}
	origins := map[string]bool{}
	for _, e := range entries {
		origins[e.Origin] = true
	}
	if !origins["dirpx.dev/bindx/optional.Option"] {
		t.Fatalf("Entries missing optional.Option: %v", origins)
	}

	reg.Reset()

	if reg.Count() != 0 {
		t.Fatalf("after Reset, Count() = %d, want 0", reg.Count())
	}
	if reg.IsWrapper(reflect.TypeOf(optional.Option[int]{})) {
		t.Fatal("IsWrapper after Reset = true, want false")
	}
}

func TestIsWrapper_NilAndUnnamed(t *testing.T) {
	reg := registry.New(config.DefaultConfig())

	if reg.IsWrapper(nil) {
		t.Fatal("IsWrapper(nil) = true")
	}
	if reg.IsWrapper(reflect.TypeOf([]int{})) {
		t.Fatal("IsWrapper([]int) = true")
	}
}
