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

// Values is a keyed source of raw values.
// Keys are case-sensitive. A missing key is reported as (nil, false).
type Values interface {
	Get(key string, ctx ConversionContext) (any, bool)
}

// ValuesFunc adapts a plain function to the Values interface.
type ValuesFunc func(key string, ctx ConversionContext) (any, bool)

// Get implements Values.
func (f ValuesFunc) Get(key string, ctx ConversionContext) (any, bool) {
	return f(key, ctx)
}
