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

// Package convert provides a reflection-based apis.Converter covering the
// common string, numeric, slice, pointer and wrapper conversions, extensible
// with typed pair functions.
package convert

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/google/uuid"

	"dirpx.dev/bindx/apis"
)

var (
	// ErrNilValue is recorded when the raw value is nil.
	ErrNilValue = errors.New("bindx(convert): nil value")
	// ErrUnsupported is recorded when no rule converts between the two types.
	ErrUnsupported = errors.New("bindx(convert): unsupported conversion")
	// ErrOverflow is recorded when a number does not fit the target type.
	ErrOverflow = errors.New("bindx(convert): value out of range")
	// ErrEmpty is recorded when a multi-valued raw value holds no elements.
	ErrEmpty = errors.New("bindx(convert): no values")
)

// Error describes a rejected conversion. It is what Service records on the
// conversion context.
type Error struct {
	From reflect.Type
	To   reflect.Type
	Err  error
}

func (e *Error) Error() string {
	from := "nil"
	if e.From != nil {
		from = e.From.String()
	}
	return fmt.Sprintf("bindx(convert): cannot convert %s to %s: %v", from, e.To, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

var (
	wrapperType         = reflect.TypeFor[apis.Wrapper]()
	fillerType          = reflect.TypeFor[apis.WrapperFiller]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// pair keys registered functions by exact source and target types.
type pair struct {
	from, to reflect.Type
}

// Func converts a raw value whose type was matched at registration.
type Func func(raw any) (any, error)

// Service is the default apis.Converter. It is safe for concurrent use;
// functions may be registered at any time.
type Service struct {
	funcs sync.Map // map[pair]Func
}

// Ensure Service implements apis.Converter.
var _ apis.Converter = (*Service)(nil)

// New returns a Service with the built-in pair functions registered
// (string -> uuid.UUID).
func New() *Service {
	s := &Service{}
	Register(s, uuid.Parse)
	return s
}

// Register adds a conversion from S to T. It takes precedence over the
// built-in rules and replaces any function registered for the same pair.
func Register[S, T any](s *Service, fn func(S) (T, error)) {
	key := pair{from: reflect.TypeFor[S](), to: reflect.TypeFor[T]()}
	s.funcs.Store(key, Func(func(raw any) (any, error) {
		return fn(raw.(S))
	}))
}

// Convert implements apis.Converter. Failures are recorded on ctx as *Error.
func (s *Service) Convert(raw any, ctx apis.ConversionContext) (any, bool) {
	to := ctx.Argument().Type()
	v, err := s.To(raw, to)
	if err != nil {
		ctx.Reject(raw, &Error{From: reflect.TypeOf(raw), To: to, Err: err})
		return nil, false
	}
	return v, true
}

// To converts raw into a value of type to.
func (s *Service) To(raw any, to reflect.Type) (any, error) {
	if raw == nil {
		return nil, ErrNilValue
	}
	if rv := reflect.ValueOf(raw); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, ErrNilValue
	}
	from := reflect.TypeOf(raw)
	if fn, ok := s.funcs.Load(pair{from: from, to: to}); ok {
		return fn.(Func)(raw)
	}
	if from.AssignableTo(to) {
		return raw, nil
	}
	if isFillableWrapper(to) {
		return s.wrap(raw, to)
	}

	rv := reflect.ValueOf(raw)
	switch {
	case to.Kind() == reflect.Pointer:
		return s.toPointer(raw, to)
	case to.Kind() == reflect.Slice && !(isBytes(to) && from.Kind() == reflect.String):
		return s.toSlice(rv, to)
	case isMulti(from):
		// A scalar target takes the first of several values.
		if rv.Len() == 0 {
			return nil, ErrEmpty
		}
		return s.To(rv.Index(0).Interface(), to)
	case from.Kind() == reflect.String:
		return fromString(rv.String(), to)
	case to.Kind() == reflect.String:
		return toString(rv, to)
	case isNumber(from.Kind()) && isNumber(to.Kind()):
		return convertNumber(rv, to)
	}
	return nil, ErrUnsupported
}

// wrap converts raw to the wrapper's element type and fills a new wrapper.
func (s *Service) wrap(raw any, to reflect.Type) (any, error) {
	ptr := reflect.New(to)
	elem := ptr.Elem().Interface().(apis.Wrapper).ElemType()
	inner, err := s.To(raw, elem)
	if err != nil {
		return nil, err
	}
	if !ptr.Interface().(apis.WrapperFiller).Fill(inner) {
		return nil, fmt.Errorf("%w: %s rejected %T", ErrUnsupported, to, inner)
	}
	return ptr.Elem().Interface(), nil
}

func (s *Service) toPointer(raw any, to reflect.Type) (any, error) {
	v, err := s.To(raw, to.Elem())
	if err != nil {
		return nil, err
	}
	ptr := reflect.New(to.Elem())
	ptr.Elem().Set(reflect.ValueOf(v))
	return ptr.Interface(), nil
}

// toSlice converts element-wise; a single value becomes a one-element slice.
func (s *Service) toSlice(rv reflect.Value, to reflect.Type) (any, error) {
	if !isMulti(rv.Type()) {
		v, err := s.To(rv.Interface(), to.Elem())
		if err != nil {
			return nil, err
		}
		out := reflect.MakeSlice(to, 1, 1)
		out.Index(0).Set(reflect.ValueOf(v))
		return out.Interface(), nil
	}
	n := rv.Len()
	out := reflect.MakeSlice(to, n, n)
	for i := 0; i < n; i++ {
		v, err := s.To(rv.Index(i).Interface(), to.Elem())
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out.Index(i).Set(reflect.ValueOf(v))
	}
	return out.Interface(), nil
}

func isFillableWrapper(t reflect.Type) bool {
	return t.Kind() != reflect.Interface && t.Kind() != reflect.Pointer &&
		t.Implements(wrapperType) && reflect.PointerTo(t).Implements(fillerType)
}

func isBytes(t reflect.Type) bool {
	return t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8
}

// isMulti reports whether t holds several values; byte slices do not.
func isMulti(t reflect.Type) bool {
	return (t.Kind() == reflect.Slice || t.Kind() == reflect.Array) && t.Elem().Kind() != reflect.Uint8
}
