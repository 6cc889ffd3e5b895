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

// Package argument provides parameter descriptors and per-attempt
// conversion contexts for binders.
package argument

import (
	"errors"
	"maps"
	"reflect"

	"dirpx.dev/bindx/apis"
)

var (
	// ErrEmptyName is returned when an argument is declared without a name.
	ErrEmptyName = errors.New("bindx(argument): empty name provided")
	// ErrNilType is returned when an argument is declared without a type.
	ErrNilType = errors.New("bindx(argument): nil reflect.Type provided")
)

// Option customizes an argument at construction time.
type Option func(*argument)

// WithMetadata attaches an opaque key/value pair to the argument.
func WithMetadata(key, value string) Option {
	return func(a *argument) {
		if a.meta == nil {
			a.meta = make(map[string]string)
		}
		a.meta[key] = value
	}
}

// New declares an argument named name of type typ.
func New(name string, typ reflect.Type, opts ...Option) (apis.Argument, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if typ == nil {
		return nil, ErrNilType
	}
	a := &argument{name: name, typ: typ}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// MustNew is like New but panics on an invalid declaration.
func MustNew(name string, typ reflect.Type, opts ...Option) apis.Argument {
	a, err := New(name, typ, opts...)
	if err != nil {
		panic(err)
	}
	return a
}

// Of declares an argument named name of type T. It panics on an empty name.
func Of[T any](name string, opts ...Option) apis.Argument {
	return MustNew(name, reflect.TypeFor[T](), opts...)
}

// argument is the immutable apis.Argument implementation.
type argument struct {
	name string
	typ  reflect.Type
	meta map[string]string
}

// Ensure argument implements apis.Argument.
var _ apis.Argument = (*argument)(nil)

func (a *argument) Name() string       { return a.name }
func (a *argument) Type() reflect.Type { return a.typ }

// Metadata returns a copy so callers cannot mutate the declaration.
func (a *argument) Metadata() map[string]string {
	return maps.Clone(a.meta)
}

func (a *argument) String() string {
	return a.name + " " + a.typ.String()
}
