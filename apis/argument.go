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

import "reflect"

// Argument describes a single bindable parameter.
// Implementations are immutable; binders only read them.
type Argument interface {
	// Name returns the declared parameter name. Never empty.
	Name() string
	// Type returns the declared Go type of the parameter.
	Type() reflect.Type
	// Metadata returns opaque type-level metadata, possibly nil.
	// Binders pass it through to collaborators and never interpret it.
	Metadata() map[string]string
}

// ConversionContext carries an Argument through one bind attempt.
// A context is created per attempt and must not be shared between attempts.
type ConversionContext interface {
	// Argument returns the parameter being bound.
	Argument() Argument
	// Reject records why raw could not be converted to the argument type.
	Reject(raw any, err error)
	// Errors returns the errors recorded by Reject, in order.
	Errors() []error
}
