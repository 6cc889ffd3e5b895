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

// Formatter derives the fallback binding key from a declared parameter name.
// FallbackKey must be pure and deterministic.
type Formatter interface {
	FallbackKey(name string) string
}

// FormatterFunc adapts a plain function to the Formatter interface.
type FormatterFunc func(name string) string

// FallbackKey implements Formatter.
func (f FormatterFunc) FallbackKey(name string) string {
	return f(name)
}
