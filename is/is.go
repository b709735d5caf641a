// Copyright 2026 The Rulecraft Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package is provides the raw boolean predicates behind the validation rules,
// usable standalone for one-off checks outside the field-validation flow:
//
//	is.Email("jane@example.com") // true
//	is.Empty([]any{})            // true
//	is.Before("2020-01-01", "2021-01-01")
//
// Format checks (Email, URL, IP, JSON, CreditCard, ...) delegate to
// go-playground/validator's field-level checks. Every predicate is pure and
// safe for concurrent use. Register custom named predicates with [Extend] and
// invoke them by name with [Check].
package is

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// backend performs the single-value format checks. One shared instance:
// go-playground validators are stateless after construction.
var backend = validator.New(validator.WithRequiredStructEnabled())

func tagCheck(v any, tag string) bool {
	s, ok := v.(string)
	if !ok || s == "" {
		return false
	}

	return backend.Var(s, tag) == nil
}

var (
	alphaPattern        = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphaNumericPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// dateLayouts are the layouts ToTime attempts, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Existy reports whether a value is neither nil nor an untyped missing value.
func Existy(v any) bool {
	return v != nil
}

// Empty reports whether a value counts as empty: nil, an empty string, an
// empty slice, or an empty map. Zero numbers and false are not empty.
func Empty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case []string:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	}

	return false
}

// Truthy reports whether a value is neither nil, false, zero, nor an empty
// string.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	}
	if f, ok := ToFloat(v); ok {
		return f != 0
	}

	return true
}

// Alpha reports whether a value is a non-empty string of letters only.
func Alpha(v any) bool {
	s, ok := v.(string)

	return ok && alphaPattern.MatchString(s)
}

// AlphaNumeric reports whether a value is a non-empty string of letters and
// digits only.
func AlphaNumeric(v any) bool {
	s, ok := v.(string)

	return ok && alphaNumericPattern.MatchString(s)
}

// Number reports whether a value is a numeric type or a string representing
// a number.
func Number(v any) bool {
	_, ok := ToFloat(v)

	return ok
}

// Integer reports whether a value is an integer type, an integral float, or a
// string representing an integer.
func Integer(v any) bool {
	switch t := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float32:
		return t == float32(int64(t))
	case float64:
		return t == float64(int64(t))
	case string:
		_, err := strconv.ParseInt(t, 10, 64)
		return err == nil
	}

	return false
}

// Float reports whether a value is a floating-point type or a string
// representing a decimal number. Integer types do not count; integral
// strings ("18") do, since string input carries no narrower type.
func Float(v any) bool {
	switch t := v.(type) {
	case float32, float64:
		return true
	case string:
		_, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return err == nil
	}

	return false
}

// SameType reports whether two values share the same dynamic type.
func SameType(a, b any) bool {
	return reflect.TypeOf(a) == reflect.TypeOf(b)
}

// Boolean reports whether a value is a bool or one of the accepted boolean
// representations: 0, 1, "0", "1", "true", "false".
func Boolean(v any) bool {
	switch t := v.(type) {
	case bool:
		return true
	case string:
		return t == "0" || t == "1" || t == "true" || t == "false"
	}
	if f, ok := ToFloat(v); ok {
		return f == 0 || f == 1
	}

	return false
}

// Email reports whether a value is a well-formed email address.
func Email(v any) bool { return tagCheck(v, "email") }

// URL reports whether a value is a well-formed absolute URL.
func URL(v any) bool { return tagCheck(v, "url") }

// IP reports whether a value is a valid IPv4 or IPv6 address.
func IP(v any) bool { return tagCheck(v, "ip") }

// IPv4 reports whether a value is a valid IPv4 address.
func IPv4(v any) bool { return tagCheck(v, "ipv4") }

// IPv6 reports whether a value is a valid IPv6 address.
func IPv6(v any) bool { return tagCheck(v, "ipv6") }

// JSON reports whether a value is a string of well-formed JSON.
func JSON(v any) bool { return tagCheck(v, "json") }

// CreditCard reports whether a value is a string passing the Luhn check.
func CreditCard(v any) bool { return tagCheck(v, "credit_card") }

// UUID reports whether a value is a string in any RFC 4122 UUID form.
func UUID(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, err := uuid.Parse(s)

	return err == nil
}

// Regex reports whether a value's string form matches the pattern. An invalid
// pattern never matches; use regexp.Compile directly when the distinction
// matters.
func Regex(v any, pattern string) bool {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}

	return re.MatchString(ToString(v))
}

// InArray reports whether needle equals one of the list entries.
func InArray(needle string, list []string) bool {
	for _, el := range list {
		if el == needle {
			return true
		}
	}

	return false
}

// Date reports whether a value is a time.Time or a string parseable by one of
// the supported layouts (RFC 3339, "2006-01-02 15:04:05", "2006-01-02").
func Date(v any) bool {
	_, ok := ToTime(v)

	return ok
}

// DateFormat reports whether a value is a string matching the given Go time
// layout exactly.
func DateFormat(v any, layout string) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	_, err := time.Parse(layout, s)

	return err == nil
}

// Before reports whether a is a date strictly before b.
func Before(a, b any) bool {
	ta, ok := ToTime(a)
	if !ok {
		return false
	}
	tb, ok := ToTime(b)

	return ok && ta.Before(tb)
}

// After reports whether a is a date strictly after b.
func After(a, b any) bool {
	ta, ok := ToTime(a)
	if !ok {
		return false
	}
	tb, ok := ToTime(b)

	return ok && ta.After(tb)
}

// ToFloat converts numeric types and numeric strings to float64.
func ToFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	}

	return 0, false
}

// ToTime converts time.Time values and date strings to time.Time, attempting
// the supported layouts in order.
func ToTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
	}

	return time.Time{}, false
}

// ToString renders a value the way error messages and string-based checks see
// it: nil becomes "", everything else formats with strconv/fmt semantics.
func ToString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	}
	if f, ok := ToFloat(v); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	return stringify(v)
}
