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

package builder

import (
	"reflect"

	"dirpx.dev/bindx/apis"
	"dirpx.dev/bindx/binder"
	"dirpx.dev/bindx/naming"
	"dirpx.dev/bindx/optional"
	"dirpx.dev/bindx/registry"
	"dirpx.dev/bindx/resolver"
	"dirpx.dev/bindx/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds a registry with the optional.Option family
// registered. Entries of prev, if any, are copied into it.
func (b *builder) BuildRegistry(cfg apis.Config, prev apis.Registry) apis.Registry {
	nreg := registry.New(cfg)
	_ = nreg.Register(reflect.TypeFor[optional.Option[any]]())
	if prev != nil {
		for _, e := range prev.Entries() {
			_ = nreg.Register(e.Type)
		}
	}
	return nreg
}

// BuildResolver builds the two-key lookup: the explicit key or argument
// name first, then the formatted fallback key when cfg.Fallback is set.
func (b *builder) BuildResolver(cfg apis.Config) apis.KeyResolver {
	if !cfg.Fallback {
		return resolver.New(strategy.NewPrimaryStrategy())
	}
	f := naming.New(
		naming.WithSeparator(cfg.Separator),
		naming.WithLowercase(cfg.Lowercase),
	)
	return resolver.New(
		strategy.NewPrimaryStrategy(),
		strategy.NewFallbackStrategy(f),
	)
}

// BuildBinder builds the default binder.
func (b *builder) BuildBinder(cfg apis.Config, conv apis.Converter, reg apis.Registry, res apis.KeyResolver) apis.Binder {
	return binder.New(conv, res, reg, cfg)
}
