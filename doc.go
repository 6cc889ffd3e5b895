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

// Package bindx binds named values to typed arguments.
//
// Given an argument (a name and a declared type), a keyed data source and an
// optional explicit key, a binder looks the raw value up, converts it to the
// declared type and reports one of three outcomes:
//
//   - apis.Absent: no value under any candidate key.
//   - apis.Unconvertible: a value was found but the converter rejected it.
//     The recorded conversion errors travel with the result.
//   - apis.Bound: the converted value.
//
// # Key lookup
//
// The primary key is the explicit key when one is given, otherwise the
// argument name. When it misses and fallback is enabled, the name is
// reformatted ("maxSize" becomes "max-size") and tried once more. The
// fallback key is always derived from the argument name, never from the
// explicit key, and is skipped when it equals the primary key. Only absence
// triggers the fallback: a value that fails to convert is reported as
// Unconvertible straight away.
//
// # Wrapper types
//
// An argument declared as a registered wrapper type, such as
// optional.Option[int], is bound to the value inside the converted wrapper
// rather than the wrapper itself. A wrapper that holds nothing yields a
// Bound result with Present() == false. Wrapper families are registered by
// generic origin, so registering optional.Option[any] covers every
// instantiation.
//
// # Global snapshot
//
// The package keeps a read-mostly snapshot of Config, Registry, KeyResolver
// and Builder behind an atomic pointer. Readers never lock:
//
//	b := bindx.New(convert.New())
//	r := b.Bind(argument.ContextOf[int]("maxSize"), values.Env("APP_"), "")
//	n, ok := bindx.Value[int](r)
//
// Writers (SetConfig, SetBuilder, SetRegistry, SetResolver, SetAll) take a
// short build mutex, derive a new snapshot and publish it. Binders already
// built keep the components they were built with.
//
// SetRegistry and SetResolver pin the layer they install: later SetConfig
// or SetBuilder calls do not rebuild a pinned layer until it is unpinned.
//
// # Collaborators
//
// Conversion is injected: convert.New() is the reflection-based default and
// ctyconv.New() converts through go-cty, which pairs with values.HCL.
// Data sources live in package values (maps, environment, dotenv, YAML,
// HCL, chains).
package bindx
