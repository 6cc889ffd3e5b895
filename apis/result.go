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

import (
	"errors"
	"slices"
)

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind enumerates the outcomes of a bind attempt.
type Kind uint8

const (
	_ Kind = iota // zero value is not a valid outcome

	// KindAbsent means no raw value was found under any candidate key.
	KindAbsent
	// KindUnconvertible means a raw value was found but did not convert.
	KindUnconvertible
	// KindBound means a converted value was produced.
	KindBound
)

// Result is the outcome of a bind attempt. It is exactly one of Absent,
// Unconvertible or Bound; switch on the concrete type or on Kind.
type Result interface {
	// Kind reports which outcome this is.
	Kind() Kind
	// Key returns the key under which the raw value was found, or "".
	Key() string

	result()
}

var (
	_ Result = Absent{}
	_ Result = Unconvertible{}
	_ Result = Bound{}
)

// Absent reports that no raw value was reachable.
type Absent struct{}

// NewAbsent returns the Absent result.
func NewAbsent() Absent { return Absent{} }

func (Absent) Kind() Kind  { return KindAbsent }
func (Absent) Key() string { return "" }
func (Absent) result()     {}

// Unconvertible reports that a raw value was found but the converter
// produced nothing for it.
type Unconvertible struct {
	key  string
	raw  any
	errs []error
}

// NewUnconvertible returns an Unconvertible result for raw found under key.
// errs are the reasons recorded during conversion, possibly none.
func NewUnconvertible(key string, raw any, errs []error) Unconvertible {
	return Unconvertible{key: key, raw: raw, errs: slices.Clone(errs)}
}

func (Unconvertible) Kind() Kind    { return KindUnconvertible }
func (u Unconvertible) Key() string { return u.key }
func (Unconvertible) result()       {}

// Raw returns the value that failed to convert.
func (u Unconvertible) Raw() any { return u.raw }

// Errors returns the conversion errors, in the order they were recorded.
func (u Unconvertible) Errors() []error { return slices.Clone(u.errs) }

// Err joins the conversion errors, or returns nil when none were recorded.
func (u Unconvertible) Err() error { return errors.Join(u.errs...) }

// Bound carries the converted value.
type Bound struct {
	key     string
	value   any
	present bool
}

// NewBound returns a Bound result holding v.
func NewBound(key string, v any) Bound {
	return Bound{key: key, value: v, present: true}
}

// NewEmptyBound returns a Bound result for a converted wrapper that holds
// no inner value.
func NewEmptyBound(key string) Bound {
	return Bound{key: key}
}

func (Bound) Kind() Kind    { return KindBound }
func (b Bound) Key() string { return b.key }
func (Bound) result()       {}

// Value returns the bound value, or nil for an empty wrapper.
func (b Bound) Value() any { return b.value }

// Present reports whether Value holds a value.
func (b Bound) Present() bool { return b.present }
