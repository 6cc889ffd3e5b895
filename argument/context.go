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

package argument

import (
	"slices"
	"sync"

	"dirpx.dev/bindx/apis"
)

// NewContext returns a fresh conversion context for one bind attempt on arg.
func NewContext(arg apis.Argument) apis.ConversionContext {
	return &conversionContext{arg: arg}
}

// ContextOf is shorthand for NewContext(Of[T](name, opts...)).
func ContextOf[T any](name string, opts ...Option) apis.ConversionContext {
	return NewContext(Of[T](name, opts...))
}

// conversionContext records rejections; converters may call Reject from
// their own goroutines, hence the mutex.
type conversionContext struct {
	arg  apis.Argument
	mu   sync.Mutex
	errs []error
}

// Ensure conversionContext implements apis.ConversionContext.
var _ apis.ConversionContext = (*conversionContext)(nil)

func (c *conversionContext) Argument() apis.Argument { return c.arg }

// Reject records err. Nil errors are ignored.
func (c *conversionContext) Reject(_ any, err error) {
	if err == nil {
		return
	}
	c.mu.Lock()
	c.errs = append(c.errs, err)
	c.mu.Unlock()
}

func (c *conversionContext) Errors() []error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.errs)
}
