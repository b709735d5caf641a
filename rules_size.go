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
	"unicode/utf8"

	"rulecraft.dev/validation/is"
)

// sizeRules covers the numeric and size comparisons. min, max, size, and
// range/between measure the field polymorphically via fieldSize; above and
// under compare the numeric value itself.
func sizeRules() map[string]Predicate {
	return map[string]Predicate{
		// Inclusive lower bound.
		"min": func(_ context.Context, in Check) error {
			bound, err := numericArg(in, "min", 0)
			if err != nil {
				return err
			}
			if fieldSize(in) < bound {
				return in.Fail()
			}

			return nil
		},

		// Inclusive upper bound.
		"max": func(_ context.Context, in Check) error {
			bound, err := numericArg(in, "max", 0)
			if err != nil {
				return err
			}
			if fieldSize(in) > bound {
				return in.Fail()
			}

			return nil
		},

		"size": func(_ context.Context, in Check) error {
			want, err := numericArg(in, "size", 0)
			if err != nil {
				return err
			}
			if fieldSize(in) != want {
				return in.Fail()
			}

			return nil
		},

		"range":   rangeRule,
		"between": rangeRule,

		"above": func(_ context.Context, in Check) error {
			bound, err := numericArg(in, "above", 0)
			if err != nil {
				return err
			}
			v, _ := in.Value()
			f, ok := is.ToFloat(v)
			if !ok || f <= bound {
				return in.Fail()
			}

			return nil
		},

		"under": func(_ context.Context, in Check) error {
			bound, err := numericArg(in, "under", 0)
			if err != nil {
				return err
			}
			v, _ := in.Value()
			f, ok := is.ToFloat(v)
			if !ok || f >= bound {
				return in.Fail()
			}

			return nil
		},
	}
}

// rangeRule backs both "range" and its "between" alias. Both bounds must be
// provided or the rule is a configuration failure regardless of the field's
// value; "0" is a legitimate bound.
func rangeRule(_ context.Context, in Check) error {
	if len(in.Args) < 2 || in.Args[0] == "" || in.Args[1] == "" {
		return &ConfigError{Rule: "range", Reason: "requires both a min and a max bound"}
	}
	lo, err := numericArg(in, "range", 0)
	if err != nil {
		return err
	}
	hi, err := numericArg(in, "range", 1)
	if err != nil {
		return err
	}

	size := fieldSize(in)
	if size < lo || size > hi {
		return in.Fail()
	}

	return nil
}

// fieldSize computes a field's size polymorphically: the numeric value itself
// when a number/integer rule rides alongside, the element count for slices,
// and the rune count of the string form otherwise.
func fieldSize(in Check) float64 {
	v, _ := in.Value()
	if hasRule(in.Rules, "number") || hasRule(in.Rules, "integer") || hasRule(in.Rules, "numeric") {
		if f, ok := is.ToFloat(v); ok {
			return f
		}
	}
	if arr, ok := v.([]any); ok {
		return float64(len(arr))
	}

	return float64(utf8.RuneCountInString(is.ToString(v)))
}

// numericArg parses the rule's i-th argument as a number, failing the run
// with a ConfigError when it is missing or malformed.
func numericArg(in Check, rule string, i int) (float64, error) {
	if i >= len(in.Args) {
		return 0, &ConfigError{Rule: rule, Reason: "requires a numeric argument"}
	}
	f, ok := is.ToFloat(in.Args[i])
	if !ok {
		return 0, &ConfigError{Rule: rule, Reason: "has a non-numeric argument: " + in.Args[i]}
	}

	return f, nil
}
