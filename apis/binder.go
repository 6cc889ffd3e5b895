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

package apis

// Binder resolves and converts a named value for one argument.
// Implementations are immutable and safe for concurrent use.
type Binder interface {
	// Bind looks up the value for ctx.Argument() in values, using explicitKey
	// when it is non-empty, converts it and reports the outcome.
	// Absence and conversion failure are results, never errors or panics.
	Bind(ctx ConversionContext, values Values, explicitKey string) Result
}
