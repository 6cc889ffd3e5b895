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

// Package naming derives fallback binding keys from declared names.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"dirpx.dev/bindx/apis"
)

// Option configures a Formatter.
type Option func(*Formatter)

// WithSeparator sets the word separator. Empty keeps the default "-".
func WithSeparator(sep string) Option {
	return func(f *Formatter) {
		if sep != "" {
			f.sep = sep
		}
	}
}

// WithLowercase controls whether words are lowercased.
func WithLowercase(lower bool) Option {
	return func(f *Formatter) {
		f.lower = lower
	}
}

// WithLanguage sets the language used for lowercasing (default: und).
func WithLanguage(tag language.Tag) Option {
	return func(f *Formatter) {
		f.tag = tag
	}
}

// Formatter splits identifiers into words and joins them with a separator.
// It is immutable and safe for concurrent use.
type Formatter struct {
	sep   string
	lower bool
	tag   language.Tag
}

// Ensure Formatter implements apis.Formatter.
var _ apis.Formatter = (*Formatter)(nil)

// New returns a Formatter producing lowercase, hyphen-separated keys unless
// configured otherwise.
func New(opts ...Option) *Formatter {
	f := &Formatter{sep: "-", lower: true, tag: language.Und}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var hyphenated = New()

// Hyphenate converts a mixed-case or snake_case identifier into its
// lowercase hyphenated form: "maxSize" -> "max-size", "URLPath" ->
// "url-path", "max_size" -> "max-size". Dots delimit segments that are
// converted independently ("server.maxSize" -> "server.max-size").
func Hyphenate(name string) string {
	return hyphenated.FallbackKey(name)
}

// FallbackKey implements apis.Formatter.
func (f *Formatter) FallbackKey(name string) string {
	if name == "" || (f.lower && f.isFormatted(name)) {
		return name
	}
	segments := strings.Split(name, ".")
	for i, seg := range segments {
		segments[i] = f.segment(seg)
	}
	return strings.Join(segments, ".")
}

func (f *Formatter) segment(s string) string {
	ws := words(s)
	if f.lower {
		// A Caser is stateful, so one is created per call.
		c := cases.Lower(f.tag)
		for i, w := range ws {
			ws[i] = c.String(w)
		}
	}
	return strings.Join(ws, f.sep)
}

// isFormatted reports whether name is already lowercase words joined by the
// separator, in which case it is returned unchanged.
func (f *Formatter) isFormatted(name string) bool {
	for _, seg := range strings.Split(name, ".") {
		if seg == "" {
			return false
		}
		for _, w := range strings.Split(seg, f.sep) {
			if w == "" {
				return false
			}
			for _, r := range w {
				if !unicode.IsLower(r) && !unicode.IsDigit(r) {
					return false
				}
			}
		}
	}
	return true
}

// words splits s on '_', '-' and spaces, and on case boundaries:
// a lower-case letter or digit followed by an upper-case letter, and the
// last upper-case letter of an acronym followed by a lower-case letter.
func words(s string) []string {
	rs := []rune(s)
	var out []string
	start := -1
	flush := func(end int) {
		if start >= 0 && end > start {
			out = append(out, string(rs[start:end]))
		}
		start = -1
	}
	for i, r := range rs {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			flush(i)
			continue
		}
		if start >= 0 && unicode.IsUpper(r) {
			prev := rs[i-1]
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush(i)
			}
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(rs))
	return out
}
