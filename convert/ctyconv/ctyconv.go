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

// Package ctyconv converts through the go-cty type system. It is the
// converter of choice for values decoded from HCL, and applies cty's
// conversion rules (string "true" to bool, number to string, tuple to list)
// to plain Go values as well.
package ctyconv

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/zclconf/go-cty/cty"
	ctyconvert "github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"dirpx.dev/bindx/apis"
)

var (
	// ErrNull is recorded for null or unknown cty values.
	ErrNull = errors.New("bindx(ctyconv): null or unknown value")
	// ErrNoType is recorded when a Go type has no cty equivalent.
	ErrNoType = errors.New("bindx(ctyconv): no cty type")
)

var valueType = reflect.TypeFor[cty.Value]()

// Converter implements apis.Converter on top of go-cty.
type Converter struct {
	next apis.Converter
}

// Option configures a Converter.
type Option func(*Converter)

// WithNext delegates raw values cty cannot type to conv.
func WithNext(conv apis.Converter) Option {
	return func(c *Converter) { c.next = conv }
}

// Ensure Converter implements apis.Converter.
var _ apis.Converter = (*Converter)(nil)

// New returns a Converter.
func New(opts ...Option) *Converter {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert implements apis.Converter.
func (c *Converter) Convert(raw any, ctx apis.ConversionContext) (any, bool) {
	to := ctx.Argument().Type()
	src, err := ToValue(raw)
	if err != nil {
		if c.next != nil {
			return c.next.Convert(raw, ctx)
		}
		ctx.Reject(raw, err)
		return nil, false
	}
	out, err := FromValue(src, to)
	if err != nil {
		ctx.Reject(raw, fmt.Errorf("bindx(ctyconv): %s to %s: %w", src.Type().FriendlyName(), to, err))
		return nil, false
	}
	return out, true
}

// ToValue returns raw as a cty.Value, inferring its cty type.
func ToValue(raw any) (cty.Value, error) {
	if v, ok := raw.(cty.Value); ok {
		return v, nil
	}
	if raw == nil {
		return cty.NilVal, ErrNull
	}
	ty, err := gocty.ImpliedType(raw)
	if err != nil {
		return cty.NilVal, fmt.Errorf("%w: %T: %v", ErrNoType, raw, err)
	}
	return gocty.ToCtyValue(raw, ty)
}

// FromValue converts v to the cty type implied by to and decodes it into
// a new Go value of that type. A cty.Value target, or an interface target
// that cty.Value satisfies, receives v unchanged.
func FromValue(v cty.Value, to reflect.Type) (any, error) {
	if to == valueType {
		return v, nil
	}
	if v.IsNull() || !v.IsWhollyKnown() {
		return nil, ErrNull
	}
	if to.Kind() == reflect.Interface {
		// An interface target has no implied cty type; only a cty.Value fits.
		if valueType.AssignableTo(to) {
			return v, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrNoType, to)
	}
	ptr := reflect.New(to)
	want, err := gocty.ImpliedType(ptr.Elem().Interface())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoType, to)
	}
	cv, err := ctyconvert.Convert(v, want)
	if err != nil {
		return nil, err
	}
	if err := gocty.FromCtyValue(cv, ptr.Interface()); err != nil {
		return nil, err
	}
	return ptr.Elem().Interface(), nil
}
