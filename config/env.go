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

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"dirpx.dev/bindx/apis"
)

// EnvPrefix prefixes every environment variable read by FromEnv.
const EnvPrefix = "BINDX_"

// envConfig mirrors the environment-settable subset of apis.Config.
type envConfig struct {
	Fallback  bool   `env:"FALLBACK" envDefault:"true"`
	Separator string `env:"SEPARATOR" envDefault:"-"`
	Lowercase bool   `env:"LOWERCASE" envDefault:"true"`
}

// FromEnv builds an apis.Config from BINDX_* process environment variables.
// opts are applied after the environment and win over it.
func FromEnv(opts ...Option) (apis.Config, error) {
	return load(env.Options{Prefix: EnvPrefix}, opts)
}

// FromEnvMap is like FromEnv but reads variables from environ instead of
// the process environment.
func FromEnvMap(environ map[string]string, opts ...Option) (apis.Config, error) {
	return load(env.Options{Prefix: EnvPrefix, Environment: environ}, opts)
}

func load(o env.Options, opts []Option) (apis.Config, error) {
	var ec envConfig
	if err := env.ParseWithOptions(&ec, o); err != nil {
		return apis.Config{}, fmt.Errorf("bindx(config): parse environment: %w", err)
	}
	all := make([]Option, 0, len(opts)+3)
	all = append(all,
		WithFallback(ec.Fallback),
		WithSeparator(ec.Separator),
		WithLowercase(ec.Lowercase),
	)
	all = append(all, opts...)
	return NewConfig(all...), nil
}
