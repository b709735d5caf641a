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
	"reflect"
	"strings"

	"rulecraft.dev/validation/is"
)

// compareRules covers membership, equality, and cross-field comparisons.
// The cross-field rules (same, different, confirmed) skip when the
// counterpart field is absent: there is nothing to validate against.
func compareRules() map[string]Predicate {
	return map[string]Predicate{
		"in": func(_ context.Context, in Check) error {
			v, _ := in.Value()
			if !is.InArray(is.ToString(v), in.Args) {
				return in.Fail()
			}

			return nil
		},

		"notIn": func(_ context.Context, in Check) error {
			v, _ := in.Value()
			if is.InArray(is.ToString(v), in.Args) {
				return in.Fail()
			}

			return nil
		},

		"equals": func(_ context.Context, in Check) error {
			if len(in.Args) < 1 {
				return &ConfigError{Rule: "equals", Reason: "requires a comparison value"}
			}
			v, _ := in.Value()
			if is.ToString(v) != in.Args[0] {
				return in.Fail()
			}

			return nil
		},

		"notEquals": func(_ context.Context, in Check) error {
			if len(in.Args) < 1 {
				return &ConfigError{Rule: "notEquals", Reason: "requires a comparison value"}
			}
			v, _ := in.Value()
			if is.ToString(v) == in.Args[0] {
				return in.Fail()
			}

			return nil
		},

		"same": func(_ context.Context, in Check) error {
			if len(in.Args) < 1 {
				return &ConfigError{Rule: "same", Reason: "requires the other field name as an argument"}
			}

			return compareWith(in, in.Args[0], true)
		},

		"different": func(_ context.Context, in Check) error {
			if len(in.Args) < 1 {
				return &ConfigError{Rule: "different", Reason: "requires the other field name as an argument"}
			}

			return compareWith(in, in.Args[0], false)
		},

		"confirmed": func(_ context.Context, in Check) error {
			return compareWith(in, in.Field+"_confirmation", true)
		},

		"startsWith": func(_ context.Context, in Check) error {
			if len(in.Args) < 1 {
				return &ConfigError{Rule: "startsWith", Reason: "requires a prefix argument"}
			}
			v, _ := in.Value()
			if !strings.HasPrefix(is.ToString(v), in.Args[0]) {
				return in.Fail()
			}

			return nil
		},

		"endsWith": func(_ context.Context, in Check) error {
			if len(in.Args) < 1 {
				return &ConfigError{Rule: "endsWith", Reason: "requires a suffix argument"}
			}
			v, _ := in.Value()
			if !strings.HasSuffix(is.ToString(v), in.Args[0]) {
				return in.Fail()
			}

			return nil
		},

		"includes": func(_ context.Context, in Check) error {
			if len(in.Args) < 1 {
				return &ConfigError{Rule: "includes", Reason: "requires a substring argument"}
			}
			v, _ := in.Value()
			if !strings.Contains(is.ToString(v), in.Args[0]) {
				return in.Fail()
			}

			return nil
		},
	}
}

// compareWith resolves the counterpart field and compares. wantEqual selects
// same/confirmed semantics versus different. An absent counterpart passes.
func compareWith(in Check, otherField string, wantEqual bool) error {
	other, ok := lookup(in.Data, otherField)
	if !ok {
		return nil
	}
	v, _ := in.Value()

	equal := reflect.DeepEqual(v, other)
	if equal != wantEqual {
		return in.Fail()
	}

	return nil
}
