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

// Converter transforms raw values into the type of ctx.Argument().
//
// Convert returns (nil, false) for ordinary unconvertible input and should
// record the reason with ctx.Reject. It must not panic for type mismatches.
type Converter interface {
	Convert(raw any, ctx ConversionContext) (any, bool)
}

// ConverterFunc adapts a plain function to the Converter interface.
type ConverterFunc func(raw any, ctx ConversionContext) (any, bool)

// Convert implements Converter.
func (f ConverterFunc) Convert(raw any, ctx ConversionContext) (any, bool) {
	return f(raw, ctx)
}
