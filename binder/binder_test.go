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

package binder_test

import (
	"bytes"
	"errors"
	"log/slog"
	"reflect"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/bindx/apis"
	"dirpx.dev/bindx/argument"
	"dirpx.dev/bindx/binder"
	"dirpx.dev/bindx/config"
	"dirpx.dev/bindx/convert"
	"dirpx.dev/bindx/naming"
	"dirpx.dev/bindx/optional"
	"dirpx.dev/bindx/registry"
	"dirpx.dev/bindx/resolver"
	"dirpx.dev/bindx/strategy"
)

// ---------------------- Test doubles ----------------------

// countingValues is a map-backed Values source that counts lookups.
type countingValues struct {
	data  map[string]any
	calls atomic.Int32
}

func newValues(data map[string]any) *countingValues {
	return &countingValues{data: data}
}

func (v *countingValues) Get(key string, _ apis.ConversionContext) (any, bool) {
	v.calls.Add(1)
	raw, ok := v.data[key]
	return raw, ok
}

// atoiConverter converts strings to int and rejects anything else.
var atoiConverter = apis.ConverterFunc(func(raw any, ctx apis.ConversionContext) (any, bool) {
	s, ok := raw.(string)
	if !ok {
		ctx.Reject(raw, errors.New("not a string"))
		return nil, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		ctx.Reject(raw, err)
		return nil, false
	}
	return n, true
})

// identityConverter returns whatever it is given.
var identityConverter = apis.ConverterFunc(func(raw any, _ apis.ConversionContext) (any, bool) {
	return raw, true
})

func newBinder(t testing.TB, conv apis.Converter, opts ...config.Option) apis.Binder {
	t.Helper()
	cfg := config.NewConfig(opts...)
	reg := registry.New(cfg)
	require.NoError(t, reg.Register(reflect.TypeOf(optional.Option[any]{})))
	res := resolver.New(
		strategy.NewPrimaryStrategy(),
		strategy.NewFallbackStrategy(naming.New()),
	)
	return binder.New(conv, res, reg, cfg)
}

// ---------------------- Resolution policy ----------------------

func TestBind_ExplicitKeyWinsOverFallback(t *testing.T) {
	b := newBinder(t, atoiConverter)
	values := newValues(map[string]any{"limit": "10", "max-size": "20", "maxSize": "30"})

	res := b.Bind(argument.ContextOf[int]("maxSize"), values, "limit")

	require.IsType(t, apis.Bound{}, res)
	assert.Equal(t, 10, res.(apis.Bound).Value())
	assert.Equal(t, "limit", res.Key())
	assert.EqualValues(t, 1, values.calls.Load())
}

func TestBind_NameIsDefaultKey(t *testing.T) {
	b := newBinder(t, atoiConverter)
	values := newValues(map[string]any{"maxSize": "30", "max-size": "20"})

	res := b.Bind(argument.ContextOf[int]("maxSize"), values, "")

	require.Equal(t, apis.KindBound, res.Kind())
	assert.Equal(t, 30, res.(apis.Bound).Value())
}

func TestBind_FallbackActivation(t *testing.T) {
	b := newBinder(t, atoiConverter)
	values := newValues(map[string]any{"max-size": "20"})

	res := b.Bind(argument.ContextOf[int]("maxSize"), values, "")

	require.Equal(t, apis.KindBound, res.Kind())
	assert.Equal(t, 20, res.(apis.Bound).Value())
	assert.Equal(t, "max-size", res.Key())
	assert.EqualValues(t, 2, values.calls.Load())
}

func TestBind_FallbackAfterExplicitMiss(t *testing.T) {
	b := newBinder(t, atoiConverter)
	values := newValues(map[string]any{"max-size": "20"})

	res := b.Bind(argument.ContextOf[int]("maxSize"), values, "limit")

	require.Equal(t, apis.KindBound, res.Kind())
	assert.Equal(t, "max-size", res.Key())
}

func TestBind_TrueAbsence(t *testing.T) {
	b := newBinder(t, atoiConverter)
	values := newValues(map[string]any{"other": "1"})

	res := b.Bind(argument.ContextOf[int]("maxSize"), values, "")

	assert.Equal(t, apis.NewAbsent(), res)
	assert.EqualValues(t, 2, values.calls.Load())
}

func TestBind_FallbackEqualsPrimary_SingleLookup(t *testing.T) {
	b := newBinder(t, atoiConverter)
	values := newValues(map[string]any{})

	res := b.Bind(argument.ContextOf[int]("size"), values, "")

	assert.Equal(t, apis.KindAbsent, res.Kind())
	assert.EqualValues(t, 1, values.calls.Load())
}

func TestBind_FallbackDisabled(t *testing.T) {
	b := newBinder(t, atoiConverter)
	values := newValues(map[string]any{"max-size": "20"})

	// Same data, but with a resolver that has no fallback strategy.
	cfg := config.NewConfig(config.WithFallback(false))
	noFallback := binder.New(atoiConverter, resolver.New(strategy.NewPrimaryStrategy()), nil, cfg)

	assert.Equal(t, apis.KindBound, b.Bind(argument.ContextOf[int]("maxSize"), values, "").Kind())
	assert.Equal(t, apis.KindAbsent, noFallback.Bind(argument.ContextOf[int]("maxSize"), values, "").Kind())
}

// ---------------------- Conversion ----------------------

func TestBind_UnconvertibleIsNotAbsent(t *testing.T) {
	b := newBinder(t, atoiConverter)
	values := newValues(map[string]any{"age": "forty"})

	res := b.Bind(argument.ContextOf[int]("age"), values, "")

	require.IsType(t, apis.Unconvertible{}, res)
	u := res.(apis.Unconvertible)
	assert.Equal(t, "age", u.Key())
	assert.Equal(t, "forty", u.Raw())
	require.Len(t, u.Errors(), 1)
	var numErr *strconv.NumError
	assert.ErrorAs(t, u.Err(), &numErr)
}

func TestBind_UnconvertibleDoesNotTryFallback(t *testing.T) {
	b := newBinder(t, atoiConverter)
	values := newValues(map[string]any{"maxSize": "bad", "max-size": "20"})

	res := b.Bind(argument.ContextOf[int]("maxSize"), values, "")

	assert.Equal(t, apis.KindUnconvertible, res.Kind())
	assert.EqualValues(t, 1, values.calls.Load())
}

func TestBind_UnconvertibleWithoutReason(t *testing.T) {
	reject := apis.ConverterFunc(func(any, apis.ConversionContext) (any, bool) { return nil, false })
	b := newBinder(t, reject)

	res := b.Bind(argument.ContextOf[int]("age"), newValues(map[string]any{"age": 1}), "")

	require.Equal(t, apis.KindUnconvertible, res.Kind())
	assert.Empty(t, res.(apis.Unconvertible).Errors())
}

func TestBind_ContextPassedThrough(t *testing.T) {
	var seenByValues, seenByConverter apis.ConversionContext
	values := apis.ValuesFunc(func(key string, ctx apis.ConversionContext) (any, bool) {
		seenByValues = ctx
		return "v", true
	})
	conv := apis.ConverterFunc(func(raw any, ctx apis.ConversionContext) (any, bool) {
		seenByConverter = ctx
		assert.Equal(t, "bytes", ctx.Argument().Metadata()["format"])
		return raw, true
	})
	b := newBinder(t, conv)
	ctx := argument.NewContext(argument.Of[string]("size", argument.WithMetadata("format", "bytes")))

	b.Bind(ctx, values, "")

	assert.Same(t, ctx, seenByValues)
	assert.Same(t, ctx, seenByConverter)
}

// ---------------------- Wrapper collapse ----------------------

func TestBind_WrapperCollapse(t *testing.T) {
	b := newBinder(t, convert.New())
	values := newValues(map[string]any{"port": "42"})

	res := b.Bind(argument.ContextOf[optional.Option[int]]("port"), values, "")

	require.IsType(t, apis.Bound{}, res)
	bound := res.(apis.Bound)
	assert.True(t, bound.Present())
	assert.Equal(t, 42, bound.Value(), "payload must be the inner value, not a wrapper")
}

func TestBind_WrapperCollapse_ConverterReturnsWrapper(t *testing.T) {
	same := optional.Some(42)
	conv := apis.ConverterFunc(func(any, apis.ConversionContext) (any, bool) { return same, true })
	b := newBinder(t, conv)

	res := b.Bind(argument.ContextOf[optional.Option[int]]("port"), newValues(map[string]any{"port": "x"}), "")

	assert.Equal(t, apis.NewBound("port", 42), res)
}

func TestBind_WrapperCollapse_EmptyWrapper(t *testing.T) {
	conv := apis.ConverterFunc(func(any, apis.ConversionContext) (any, bool) { return optional.None[int](), true })
	b := newBinder(t, conv)

	res := b.Bind(argument.ContextOf[optional.Option[int]]("port"), newValues(map[string]any{"port": ""}), "")

	require.Equal(t, apis.KindBound, res.Kind())
	assert.False(t, res.(apis.Bound).Present())
	assert.Nil(t, res.(apis.Bound).Value())
}

func TestBind_WrapperDeclared_NonWrapperConverted(t *testing.T) {
	b := newBinder(t, identityConverter)

	res := b.Bind(argument.ContextOf[optional.Option[int]]("port"), newValues(map[string]any{"port": 42}), "")

	// Wrapped once in the result, never unwrapped.
	assert.Equal(t, apis.NewBound("port", 42), res)
}

func TestBind_NonWrapperDeclared_WrapperConverted(t *testing.T) {
	b := newBinder(t, identityConverter)
	w := optional.Some("x")

	res := b.Bind(argument.ContextOf[any]("v"), newValues(map[string]any{"v": w}), "")

	assert.Equal(t, apis.NewBound("v", w), res)
}

func TestBind_DifferentWrapperFamilyNotCollapsed(t *testing.T) {
	b := newBinder(t, identityConverter)
	m := maybe[int]{v: 1, ok: true}

	res := b.Bind(argument.ContextOf[optional.Option[int]]("v"), newValues(map[string]any{"v": m}), "")

	assert.Equal(t, apis.NewBound("v", m), res)
}

func TestBind_NilRegistryDisablesCollapse(t *testing.T) {
	res := resolver.New(strategy.NewPrimaryStrategy())
	b := binder.New(identityConverter, res, nil, config.DefaultConfig())
	w := optional.Some(1)

	got := b.Bind(argument.ContextOf[optional.Option[int]]("v"), newValues(map[string]any{"v": w}), "")

	assert.Equal(t, apis.NewBound("v", w), got)
}

// ---------------------- Construction, faults, logging ----------------------

func TestNew_RequiresCollaborators(t *testing.T) {
	res := resolver.New(strategy.NewPrimaryStrategy())
	assert.PanicsWithValue(t, binder.ErrNilConverter, func() {
		binder.New(nil, res, nil, config.DefaultConfig())
	})
	assert.PanicsWithValue(t, binder.ErrNilResolver, func() {
		binder.New(identityConverter, nil, nil, config.DefaultConfig())
	})
}

func TestBind_CollaboratorPanicPropagates(t *testing.T) {
	boom := apis.ConverterFunc(func(any, apis.ConversionContext) (any, bool) { panic("malformed context") })
	b := newBinder(t, boom)

	assert.PanicsWithValue(t, "malformed context", func() {
		b.Bind(argument.ContextOf[int]("x"), newValues(map[string]any{"x": 1}), "")
	})
}

func TestBind_Logs(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	b := newBinder(t, atoiConverter, config.WithLogger(log))
	values := newValues(map[string]any{"a": "1", "b": "x"})

	b.Bind(argument.ContextOf[int]("a"), values, "")
	b.Bind(argument.ContextOf[int]("b"), values, "")
	b.Bind(argument.ContextOf[int]("c"), values, "")

	out := buf.String()
	assert.Contains(t, out, "argument bound")
	assert.Contains(t, out, "argument unconvertible")
	assert.Contains(t, out, "argument absent")
	assert.Contains(t, out, "argument=b")
	assert.Contains(t, out, "keys=[c]")

	buf.Reset()
	b.Bind(argument.ContextOf[int]("maxSize"), values, "size")
	assert.Contains(t, buf.String(), `keys="[size max-size]"`)
}

// maybe is a second wrapper family used to check family identity.
type maybe[T any] struct {
	v  T
	ok bool
}

func (m maybe[T]) Unwrap() (any, bool)  { return m.v, m.ok }
func (maybe[T]) ElemType() reflect.Type { return reflect.TypeFor[T]() }
