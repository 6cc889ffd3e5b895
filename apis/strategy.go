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

// KeyStrategy is one step of the key lookup policy. A KeyResolver asks its
// strategies in order (e.g., Primary -> Fallback) for candidate keys.
type KeyStrategy interface {
	// CandidateKey returns the key to try for arg given the caller's explicit
	// key (possibly empty). It returns ("", false) to contribute nothing.
	CandidateKey(arg Argument, explicit string) (key string, ok bool)
}
