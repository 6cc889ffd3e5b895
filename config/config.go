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
	"log/slog"

	"dirpx.dev/bindx/apis"
)

const (
	// DefaultFallback represents the default for Fallback.
	// When true, the fallback key is tried after a primary key miss.
	DefaultFallback = true
	// DefaultSeparator represents the default for Separator.
	DefaultSeparator = "-"
	// DefaultLowercase represents the default for Lowercase.
	DefaultLowercase = true
)

// discard is shared so that default configs compare equal.
var discard = slog.New(slog.DiscardHandler)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return sanitize(cfg)
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Fallback:  DefaultFallback,
		Separator: DefaultSeparator,
		Lowercase: DefaultLowercase,
		Logger:    discard,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithFallback sets the Fallback option.
func WithFallback(enabled bool) Option {
	return func(c *apis.Config) {
		c.Fallback = enabled
	}
}

// WithSeparator sets the Separator option.
// An empty separator resets to the default.
func WithSeparator(sep string) Option {
	return func(c *apis.Config) {
		if sep == "" {
			c.Separator = DefaultSeparator
			return
		}
		c.Separator = sep
	}
}

// WithLowercase sets the Lowercase option.
func WithLowercase(lower bool) Option {
	return func(c *apis.Config) {
		c.Lowercase = lower
	}
}

// WithLogger sets the Logger option. A nil logger discards records.
func WithLogger(l *slog.Logger) Option {
	return func(c *apis.Config) {
		if l == nil {
			c.Logger = discard
			return
		}
		c.Logger = l
	}
}

// sanitize restores defaults for fields left invalid by direct struct edits.
func sanitize(cfg apis.Config) apis.Config {
	if cfg.Separator == "" {
		cfg.Separator = DefaultSeparator
	}
	if cfg.Logger == nil {
		cfg.Logger = discard
	}
	return cfg
}
