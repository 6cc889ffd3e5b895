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

package values

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"dirpx.dev/bindx/apis"
)

// YAML decodes a YAML mapping document and exposes its top-level keys.
// Nested mappings are returned as map[string]any, sequences as []any.
func YAML(doc []byte) (apis.Values, error) {
	var m map[string]any
	if err := yaml.Unmarshal(doc, &m); err != nil {
		return nil, fmt.Errorf("bindx(values): decode yaml: %w", err)
	}
	return Map(m), nil
}
