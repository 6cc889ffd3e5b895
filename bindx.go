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
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/bindx/apis"
	"dirpx.dev/bindx/argument"
	"dirpx.dev/bindx/builder"
	"dirpx.dev/bindx/config"
)

// init publishes the default snapshot.
func init() {
	s := &state{cfg: config.DefaultConfig(), bld: builder.New()}
	s.reg = s.bld.BuildRegistry(s.cfg, nil)
	s.res = s.bld.BuildResolver(s.cfg)
	st.Store(s)
}

var (
	// ErrNilRegistry is raised when a builder returns a nil registry.
	ErrNilRegistry = errors.New("bindx: builder returned nil registry")
	// ErrNilResolver is raised when a builder returns a nil resolver.
	ErrNilResolver = errors.New("bindx: builder returned nil resolver")
	// ErrNilBinder is raised when a builder returns a nil binder.
	ErrNilBinder = errors.New("bindx: builder returned nil binder")
)

// New builds a binder around conv from the current snapshot. The binder
// keeps the registry, resolver and config it was built with; later
// snapshot changes do not affect it.
func New(conv apis.Converter) apis.Binder {
	s := st.Load()
	b := s.bld.BuildBinder(s.cfg, conv, s.reg, s.res)
	if b == nil {
		panic(ErrNilBinder)
	}
	return b
}

// Bind binds the argument name of type T from values with a binder built
// by New. explicitKey may be empty.
func Bind[T any](conv apis.Converter, values apis.Values, name, explicitKey string) apis.Result {
	return New(conv).Bind(argument.ContextOf[T](name), values, explicitKey)
}

// Value extracts a typed value from a Bound result. It reports false for
// Absent, Unconvertible, an empty wrapper, or a value of another type.
func Value[T any](r apis.Result) (T, bool) {
	var zero T
	b, ok := r.(apis.Bound)
	if !ok || !b.Present() {
		return zero, false
	}
	v, ok := b.Value().(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// RegisterWrapper marks the generic family of t as a wrapper in the
// current registry.
func RegisterWrapper(t reflect.Type) error {
	return st.Load().reg.Register(t)
}

// SetAll replaces every snapshot component at once.
//
// A nil cfg or bld leaves that component unchanged. A nil reg or res is
// rebuilt by the builder and unpinned; a non-nil one is installed and
// pinned.
func SetAll(cfg *apis.Config, reg apis.Registry, res apis.KeyResolver, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := &state{cfg: old.cfg, bld: old.bld, reg: reg, res: res, preg: reg != nil, pres: res != nil}
	if cfg != nil {
		next.cfg = config.NewConfig(func(c *apis.Config) { *c = *cfg })
	}
	if bld != nil {
		next.bld = bld
	}
	if next.reg == nil {
		next.reg = next.bld.BuildRegistry(next.cfg, old.reg)
	}
	if next.res == nil {
		next.res = next.bld.BuildResolver(next.cfg)
	}
	publish(next, "set all")
}

// Config returns the snapshot configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig installs cfg and rebuilds the unpinned registry and resolver.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.cfg = config.NewConfig(func(c *apis.Config) { *c = cfg })
	rebuild(&next, old)
	publish(&next, "set config")
}

// Registry returns the snapshot registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry installs and pins reg. A nil reg is ignored.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	next.reg, next.preg = reg, true
	publish(&next, "set registry")
}

// Resolver returns the snapshot key resolver.
func Resolver() apis.KeyResolver {
	return st.Load().res
}

// SetResolver installs and pins res. A nil res is ignored.
func SetResolver(res apis.KeyResolver) {
	if res == nil {
		return
	}
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	next.res, next.pres = res, true
	publish(&next, "set resolver")
}

// Builder returns the snapshot builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder installs b and rebuilds the unpinned registry and resolver
// with it. A nil b is ignored.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	next.bld = b
	rebuild(&next, old)
	publish(&next, "set builder")
}

// IsRegistryPinned reports whether the registry survives rebuilds.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry stops the registry from being rebuilt.
func PinRegistry() { setPins(func(s *state) { s.preg = true }) }

// UnpinRegistry lets the next rebuild replace the registry.
func UnpinRegistry() { setPins(func(s *state) { s.preg = false }) }

// IsResolverPinned reports whether the resolver survives rebuilds.
func IsResolverPinned() bool {
	return st.Load().pres
}

// PinResolver stops the resolver from being rebuilt.
func PinResolver() { setPins(func(s *state) { s.pres = true }) }

// UnpinResolver lets the next rebuild replace the resolver.
func UnpinResolver() { setPins(func(s *state) { s.pres = false }) }

func setPins(set func(*state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	set(&next)
	publish(&next, "pin")
}

// rebuild replaces the unpinned layers of next using next.bld and
// next.cfg. Registry entries migrate from old.
func rebuild(next, old *state) {
	if !next.preg {
		next.reg = next.bld.BuildRegistry(next.cfg, old.reg)
	}
	if !next.pres {
		next.res = next.bld.BuildResolver(next.cfg)
	}
}

// publish validates s and swaps it in. Callers hold buildMu.
func publish(s *state, op string) {
	if s.reg == nil {
		panic(ErrNilRegistry)
	}
	if s.res == nil {
		panic(ErrNilResolver)
	}
	st.Store(s)
	s.cfg.Logger.Debug("snapshot published",
		"op", op,
		"wrappers", s.reg.Count(),
		"registry_pinned", s.preg,
		"resolver_pinned", s.pres,
	)
}

// buildMu serializes writers so we never publish partially-built snapshots.
var buildMu sync.Mutex

// st is the current snapshot.
var st atomic.Pointer[state]

// state is an immutable snapshot published atomically via st.Store; never
// mutate fields of a published state. Writers copy, modify and swap.
type state struct {
	cfg apis.Config
	reg apis.Registry
	res apis.KeyResolver
	bld apis.Builder
	// preg indicates whether reg is pinned.
	preg bool
	// pres indicates whether res is pinned.
	pres bool
}
