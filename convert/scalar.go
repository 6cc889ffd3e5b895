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

package convert

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var durationType = reflect.TypeFor[time.Duration]()

func fromString(s string, to reflect.Type) (any, error) {
	if reflect.PointerTo(to).Implements(textUnmarshalerType) {
		ptr := reflect.New(to)
		if err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
			return nil, err
		}
		return ptr.Elem().Interface(), nil
	}
	if to == durationType {
		d, err := time.ParseDuration(strings.TrimSpace(s))
		if err != nil {
			return nil, err
		}
		return d, nil
	}

	out := reflect.New(to).Elem()
	s = strings.TrimSpace(s)
	switch to.Kind() {
	case reflect.String:
		out.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, err
		}
		out.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, to.Bits())
		if err != nil {
			return nil, numError(err)
		}
		out.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(s, 10, to.Bits())
		if err != nil {
			return nil, numError(err)
		}
		out.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, to.Bits())
		if err != nil {
			return nil, numError(err)
		}
		out.SetFloat(f)
	case reflect.Slice:
		if !isBytes(to) {
			return nil, ErrUnsupported
		}
		out.SetBytes([]byte(s))
	default:
		return nil, ErrUnsupported
	}
	return out.Interface(), nil
}

func toString(rv reflect.Value, to reflect.Type) (any, error) {
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, ErrNilValue
	}
	var s string
	switch {
	case rv.Type().Implements(reflect.TypeFor[fmt.Stringer]()):
		s = rv.Interface().(fmt.Stringer).String()
	case isBytes(rv.Type()):
		s = string(rv.Bytes())
	default:
		switch rv.Kind() {
		case reflect.Bool:
			s = strconv.FormatBool(rv.Bool())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			s = strconv.FormatInt(rv.Int(), 10)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			s = strconv.FormatUint(rv.Uint(), 10)
		case reflect.Float32, reflect.Float64:
			s = strconv.FormatFloat(rv.Float(), 'g', -1, rv.Type().Bits())
		default:
			return nil, ErrUnsupported
		}
	}
	return reflect.ValueOf(s).Convert(to).Interface(), nil
}

// convertNumber converts between numeric kinds, refusing lossy results.
func convertNumber(rv reflect.Value, to reflect.Type) (any, error) {
	out := reflect.New(to).Elem()
	switch {
	case isInt(rv.Kind()):
		n := rv.Int()
		switch {
		case isInt(to.Kind()):
			if out.OverflowInt(n) {
				return nil, ErrOverflow
			}
			out.SetInt(n)
		case isUint(to.Kind()):
			if n < 0 || out.OverflowUint(uint64(n)) {
				return nil, ErrOverflow
			}
			out.SetUint(uint64(n))
		default:
			out.SetFloat(float64(n))
		}
	case isUint(rv.Kind()):
		n := rv.Uint()
		switch {
		case isInt(to.Kind()):
			if n > math.MaxInt64 || out.OverflowInt(int64(n)) {
				return nil, ErrOverflow
			}
			out.SetInt(int64(n))
		case isUint(to.Kind()):
			if out.OverflowUint(n) {
				return nil, ErrOverflow
			}
			out.SetUint(n)
		default:
			out.SetFloat(float64(n))
		}
	default:
		f := rv.Float()
		switch {
		case isInt(to.Kind()):
			if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 || out.OverflowInt(int64(f)) {
				return nil, ErrOverflow
			}
			out.SetInt(int64(f))
		case isUint(to.Kind()):
			if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 || out.OverflowUint(uint64(f)) {
				return nil, ErrOverflow
			}
			out.SetUint(uint64(f))
		default:
			if out.OverflowFloat(f) {
				return nil, ErrOverflow
			}
			out.SetFloat(f)
		}
	}
	return out.Interface(), nil
}

func numError(err error) error {
	if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
		return fmt.Errorf("%w: %q", ErrOverflow, ne.Num)
	}
	return err
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isNumber(k reflect.Kind) bool {
	return isInt(k) || isUint(k) || k == reflect.Float32 || k == reflect.Float64
}
