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

package strategy

import (
	"dirpx.dev/bindx/apis"
)

// NewFallbackStrategy creates an apis.KeyStrategy proposing the key derived
// from the argument's declared name by f. A nil f contributes nothing.
func NewFallbackStrategy(f apis.Formatter) apis.KeyStrategy {
	return &fallbackStrategy{f: f}
}

// fallbackStrategy applies a naming convention to the declared name, e.g.
// "maxSize" -> "max-size". The explicit key never takes part.
type fallbackStrategy struct {
	f apis.Formatter
}

// Ensure fallbackStrategy implements apis.KeyStrategy.
var _ apis.KeyStrategy = (*fallbackStrategy)(nil)

// CandidateKey returns f.FallbackKey(arg.Name()).
func (s *fallbackStrategy) CandidateKey(arg apis.Argument, _ string) (string, bool) {
	if arg == nil || s.f == nil {
		return "", false
	}
	key := s.f.FallbackKey(arg.Name())
	return key, key != ""
}
