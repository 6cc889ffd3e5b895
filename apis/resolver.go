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

// KeyResolver coordinates key strategies to find a raw value for an argument.
type KeyResolver interface {
	// Keys returns the distinct candidate keys for arg, in lookup order.
	Keys(arg Argument, explicit string) []string

	// Resolve looks up candidate keys in order and returns the first raw
	// value found together with its key. A key equal to one already tried
	// is skipped, so each distinct key is looked up at most once.
	Resolve(ctx ConversionContext, values Values, explicit string) (raw any, key string, ok bool)
}
