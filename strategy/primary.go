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

// NewPrimaryStrategy creates an apis.KeyStrategy proposing the explicit key,
// or the argument's declared name when no explicit key is given.
func NewPrimaryStrategy() apis.KeyStrategy {
	return primaryStrategy{}
}

// primaryStrategy is the zero-configuration step: a binding key defaults to
// the parameter's own name.
type primaryStrategy struct{}

// Ensure primaryStrategy implements apis.KeyStrategy.
var _ apis.KeyStrategy = primaryStrategy{}

// CandidateKey returns explicit if non-empty, else arg.Name().
func (primaryStrategy) CandidateKey(arg apis.Argument, explicit string) (string, bool) {
	if explicit != "" {
		return explicit, true
	}
	if arg == nil {
		return "", false
	}
	return arg.Name(), true
}
