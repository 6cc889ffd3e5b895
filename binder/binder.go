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

// Package binder implements the named-value argument binder.
//
// A bind attempt resolves a raw value for an argument through an ordered
// key policy (explicit key or declared name, then a naming-convention
// fallback), converts it with an injected apis.Converter and reports one of
// three outcomes: apis.Absent, apis.Unconvertible or apis.Bound.
//
// When the declared type belongs to a registered wrapper family and the
// converter already produced an instance of that family, the result carries
// the wrapper's inner value instead of wrapping it again.
package binder

import (
	"errors"
	"log/slog"
	"reflect"

	"dirpx.dev/bindx/apis"
	uref "dirpx.dev/bindx/utils/reflect"
)

var (
	// ErrNilConverter is raised when a binder is built without a converter.
	ErrNilConverter = errors.New("bindx(binder): nil converter")
	// ErrNilResolver is raised when a binder is built without a key resolver.
	ErrNilResolver = errors.New("bindx(binder): nil key resolver")
)

// New constructs an apis.Binder. conv and res are required and New panics
// when either is nil. A nil reg disables wrapper collapsing.
func New(conv apis.Converter, res apis.KeyResolver, reg apis.Registry, cfg apis.Config) apis.Binder {
	if conv == nil {
		panic(ErrNilConverter)
	}
	if res == nil {
		panic(ErrNilResolver)
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &binder{conv: conv, res: res, reg: reg, log: log}
}

// binder holds only references fixed at construction.
type binder struct {
	conv apis.Converter
	res  apis.KeyResolver
	reg  apis.Registry
	log  *slog.Logger
}

// Ensure binder implements apis.Binder.
var _ apis.Binder = (*binder)(nil)

// Bind implements apis.Binder. Panics raised by the converter or the values
// source are not recovered.
func (b *binder) Bind(ctx apis.ConversionContext, values apis.Values, explicitKey string) apis.Result {
	arg := ctx.Argument()

	raw, key, ok := b.res.Resolve(ctx, values, explicitKey)
	if !ok {
		b.log.Debug("argument absent",
			slog.String("argument", arg.Name()),
			slog.Any("keys", b.res.Keys(arg, explicitKey)),
		)
		return apis.NewAbsent()
	}

	converted, ok := b.conv.Convert(raw, ctx)
	if !ok {
		errs := ctx.Errors()
		b.log.Debug("argument unconvertible",
			slog.String("argument", arg.Name()),
			slog.String("key", key),
			slog.String("type", arg.Type().String()),
			slog.Any("error", errors.Join(errs...)),
		)
		return apis.NewUnconvertible(key, raw, errs)
	}

	res := b.bound(arg.Type(), key, converted)
	b.log.Debug("argument bound",
		slog.String("argument", arg.Name()),
		slog.String("key", key),
		slog.String("type", arg.Type().String()),
		slog.Bool("present", res.Present()),
	)
	return res
}

// bound applies the wrapper collapsing rule to a converted value.
func (b *binder) bound(declared reflect.Type, key string, v any) apis.Bound {
	w, ok := b.collapsible(declared, v)
	if !ok {
		return apis.NewBound(key, v)
	}
	if inner, present := w.Unwrap(); present {
		return apis.NewBound(key, inner)
	}
	return apis.NewEmptyBound(key)
}

// collapsible reports whether declared is a registered wrapper type and v is
// already an instance of the same wrapper family.
func (b *binder) collapsible(declared reflect.Type, v any) (apis.Wrapper, bool) {
	if b.reg == nil || !b.reg.IsWrapper(declared) {
		return nil, false
	}
	w, ok := v.(apis.Wrapper)
	if !ok || !uref.SameOrigin(declared, reflect.TypeOf(v)) {
		return nil, false
	}
	return w, true
}
