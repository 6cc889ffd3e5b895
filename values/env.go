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
	"os"

	"github.com/joho/godotenv"

	"dirpx.dev/bindx/apis"
)

// Env looks keys up in the process environment as prefix+key.
// The environment is read on every Get.
func Env(prefix string) apis.Values {
	return apis.ValuesFunc(func(key string, _ apis.ConversionContext) (any, bool) {
		v, ok := os.LookupEnv(prefix + key)
		if !ok {
			return nil, false
		}
		return v, true
	})
}

// DotEnv reads the named dotenv files (".env" when none are given) into a
// Strings source. Later files override earlier ones.
func DotEnv(files ...string) (apis.Values, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	merged := make(map[string]string)
	for _, f := range files {
		m, err := godotenv.Read(f)
		if err != nil {
			return nil, fmt.Errorf("bindx(values): read %s: %w", f, err)
		}
		for k, v := range m {
			merged[k] = v
		}
	}
	return Strings(merged), nil
}
