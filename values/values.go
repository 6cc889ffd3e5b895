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

// Package values provides apis.Values sources: in-memory maps, the process
// environment, dotenv files, YAML documents and HCL attribute bodies.
//
// A key maps to a value only when the source holds a non-nil value for it;
// an explicit nil is reported as missing.
package values

import (
	"maps"

	"dirpx.dev/bindx/apis"
)

// Map exposes m as a Values source. The map is copied.
func Map(m map[string]any) apis.Values {
	c := maps.Clone(m)
	return apis.ValuesFunc(func(key string, _ apis.ConversionContext) (any, bool) {
		v, ok := c[key]
		return v, ok && v != nil
	})
}

// Strings exposes m as a Values source of string values. The map is copied.
func Strings(m map[string]string) apis.Values {
	c := maps.Clone(m)
	return apis.ValuesFunc(func(key string, _ apis.ConversionContext) (any, bool) {
		v, ok := c[key]
		return v, ok
	})
}

// Multi exposes a multi-valued map, such as url.Values or http.Header, as
// a Values source. A key with no values is missing. Raw values are []string.
func Multi(m map[string][]string) apis.Values {
	c := make(map[string][]string, len(m))
	for k, vs := range m {
		if len(vs) > 0 {
			c[k] = append([]string(nil), vs...)
		}
	}
	return apis.ValuesFunc(func(key string, _ apis.ConversionContext) (any, bool) {
		vs, ok := c[key]
		if !ok {
			return nil, false
		}
		return append([]string(nil), vs...), true
	})
}

// Chain consults sources in order and returns the first hit.
// Nil sources are skipped.
func Chain(sources ...apis.Values) apis.Values {
	var chain []apis.Values
	for _, s := range sources {
		if s != nil {
			chain = append(chain, s)
		}
	}
	return apis.ValuesFunc(func(key string, ctx apis.ConversionContext) (any, bool) {
		for _, s := range chain {
			if v, ok := s.Get(key, ctx); ok {
				return v, true
			}
		}
		return nil, false
	})
}
