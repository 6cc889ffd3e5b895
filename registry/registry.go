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

package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"dirpx.dev/bindx/apis"
	uref "dirpx.dev/bindx/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("bindx(registry): nil reflect.Type provided")
	// ErrNotWrapper is returned when the type does not implement apis.Wrapper.
	ErrNotWrapper = errors.New("bindx(registry): type does not implement apis.Wrapper")
)

var wrapperType = reflect.TypeFor[apis.Wrapper]()

// New constructs a wrapper Registry. Only cfg.Logger is used here.
func New(cfg apis.Config) apis.Registry {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &registry{log: log}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	log *slog.Logger
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps origin string to the first registered reflect.Type.
	m sync.Map // map[string]reflect.Type
	// count tracks the number of registered families.
	count int
}

// Register marks the generic origin of t as a wrapper family.
// It is idempotent for any instantiation of an already registered family.
func (r *registry) Register(t reflect.Type) error {
	// Validate inputs early.
	if t == nil {
		return ErrNilType
	}
	if t.Kind() == reflect.Interface || !t.Implements(wrapperType) {
		return fmt.Errorf("%w: %s", ErrNotWrapper, t)
	}
	origin, err := uref.Origin(t)
	if err != nil {
		return fmt.Errorf("bindx(registry): %s: %w", t, err)
	}

	// Fast read path without locking.
	if _, ok := r.m.Load(origin); ok {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if _, ok := r.m.Load(origin); ok {
		return nil
	}
	r.m.Store(origin, t)
	r.count++
	r.log.Debug("wrapper type registered", "origin", origin, "type", t.String())
	return nil
}

// IsWrapper reports whether t belongs to a registered family.
func (r *registry) IsWrapper(t reflect.Type) bool {
	if t == nil {
		return false
	}
	origin, err := uref.Origin(t)
	if err != nil {
		return false
	}
	_, ok := r.m.Load(origin)
	return ok
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Type:   value.(reflect.Type),
			Origin: key.(string),
		})
		return true
	})
	return entries
}

// Count returns the number of registered families.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered families.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
	r.count = 0
}
