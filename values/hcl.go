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

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"dirpx.dev/bindx/apis"
)

// HCL parses src as an HCL body of plain attributes and exposes each
// attribute's value as a cty.Value. Expressions are evaluated without
// variables or functions, so only literals and constant expressions are
// accepted. Pair it with the ctyconv converter.
func HCL(src []byte, filename string) (apis.Values, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("bindx(values): parse %s: %s", filename, diags.Error())
	}
	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("bindx(values): attributes of %s: %s", filename, diags.Error())
	}
	vals := make(map[string]cty.Value, len(attrs))
	for name, attr := range attrs {
		v, d := attr.Expr.Value(&hcl.EvalContext{})
		if d.HasErrors() {
			return nil, fmt.Errorf("bindx(values): evaluate %s: %s", name, d.Error())
		}
		vals[name] = v
	}
	return ctyMap(vals), nil
}

// Cty exposes the attributes of a cty object or the elements of a cty
// map. Null attributes are missing.
func Cty(v cty.Value) (apis.Values, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, fmt.Errorf("bindx(values): cty value is null or unknown")
	}
	ty := v.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("bindx(values): cty value is %s, want object or map", ty.FriendlyName())
	}
	return ctyMap(v.AsValueMap()), nil
}

func ctyMap(vals map[string]cty.Value) apis.Values {
	return apis.ValuesFunc(func(key string, _ apis.ConversionContext) (any, bool) {
		v, ok := vals[key]
		if !ok || v.IsNull() {
			return nil, false
		}
		return v, true
	})
}
