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

package resolver

import (
	"slices"

	"dirpx.dev/bindx/apis"
)

// New constructs an apis.KeyResolver that asks the given strategies in order.
// Nil strategies are ignored. The returned resolver is safe for concurrent use
// provided strategies themselves are safe for concurrent CandidateKey calls.
func New(strategies ...apis.KeyStrategy) apis.KeyResolver {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.KeyStrategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return &chain{strats: out}
}

// chain is an immutable, order-preserving resolver over a set of strategies.
type chain struct {
	strats []apis.KeyStrategy
}

// Keys returns the distinct candidate keys in strategy order.
func (r *chain) Keys(arg apis.Argument, explicit string) []string {
	keys := make([]string, 0, len(r.strats))
	for _, s := range r.strats {
		if key, ok := s.CandidateKey(arg, explicit); ok && !slices.Contains(keys, key) {
			keys = append(keys, key)
		}
	}
	return keys
}

// Resolve asks strategies lazily: a later strategy is consulted only after
// every earlier candidate missed. Keys already tried are not looked up again.
func (r *chain) Resolve(ctx apis.ConversionContext, values apis.Values, explicit string) (any, string, bool) {
	arg := ctx.Argument()
	tried := make([]string, 0, len(r.strats))
	for _, s := range r.strats {
		key, ok := s.CandidateKey(arg, explicit)
		if !ok || slices.Contains(tried, key) {
			continue
		}
		tried = append(tried, key)
		if raw, ok := values.Get(key, ctx); ok {
			return raw, key, true
		}
	}
	return nil, "", false
}
