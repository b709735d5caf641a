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

package validation

import (
	"context"
	"regexp"
	"strings"

	"rulecraft.dev/validation/is"
)

// typeRules covers shape and format checks. Each wraps a raw predicate from
// the is package; none of them runs against skippable values, so a field seen
// here is always present (though possibly nil).
func typeRules() map[string]Predicate {
	simple := func(fn func(any) bool) Predicate {
		return func(_ context.Context, in Check) error {
			v, _ := in.Value()
			if !fn(v) {
				return in.Fail()
			}

			return nil
		}
	}

	m := map[string]Predicate{
		"alpha":        simple(is.Alpha),
		"alphaNumeric": simple(is.AlphaNumeric),
		"boolean":      simple(is.Boolean),
		"number":       simple(is.Number),
		"integer":      simple(is.Integer),
		"float":        simple(is.Float),
		"email":        simple(is.Email),
		"url":          simple(is.URL),
		"ip":           simple(is.IP),
		"ipv4":         simple(is.IPv4),
		"ipv6":         simple(is.IPv6),
		"json":         simple(is.JSON),
		"uuid":         simple(is.UUID),
		"creditCard":   simple(is.CreditCard),

		"array": simple(func(v any) bool {
			_, ok := v.([]any)
			return ok
		}),
		"object": simple(func(v any) bool {
			_, ok := v.(map[string]any)
			return ok
		}),
		"string": simple(func(v any) bool {
			_, ok := v.(string)
			return ok
		}),

		"accepted": simple(func(v any) bool {
			switch is.ToString(v) {
			case "true", "1", "yes", "on":
				return true
			}
			return false
		}),

		// The pattern is every argument rejoined: a comma inside a regex
		// supplied as the sole argument must not stay split.
		"regex": func(_ context.Context, in Check) error {
			if len(in.Args) < 1 {
				return &ConfigError{Rule: "regex", Reason: "requires a pattern argument"}
			}
			pattern := strings.Join(in.Args, ",")
			re, err := regexp.Compile(pattern)
			if err != nil {
				return &ConfigError{Rule: "regex", Reason: "has an invalid pattern: " + err.Error()}
			}
			v, _ := in.Value()
			if !re.MatchString(is.ToString(v)) {
				return in.Fail()
			}

			return nil
		},
	}

	return m
}
