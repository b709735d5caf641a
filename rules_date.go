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

	"rulecraft.dev/validation/is"
)

// dateRules covers date parsing and chronological comparisons. Reference
// dates arrive as rule arguments; because only the first ":" of a rule
// string separates name from arguments, ISO timestamps keep their colons
// ("before:2026-01-02T15:04:05Z").
func dateRules() map[string]Predicate {
	return map[string]Predicate{
		"date": func(_ context.Context, in Check) error {
			v, _ := in.Value()
			if !is.Date(v) {
				return in.Fail()
			}

			return nil
		},

		// The argument is a Go time layout, e.g. dateFormat:2006-01-02.
		"dateFormat": func(_ context.Context, in Check) error {
			if len(in.Args) < 1 {
				return &ConfigError{Rule: "dateFormat", Reason: "requires a layout argument"}
			}
			v, _ := in.Value()
			if !is.DateFormat(v, in.Args[0]) {
				return in.Fail()
			}

			return nil
		},

		"before": compareDates("before", func(field, ref any) bool {
			return is.Before(field, ref)
		}),

		"after": compareDates("after", func(field, ref any) bool {
			return is.After(field, ref)
		}),

		"beforeOrEqual": compareDates("beforeOrEqual", func(field, ref any) bool {
			return !is.After(field, ref) && is.Date(field)
		}),

		"afterOrEqual": compareDates("afterOrEqual", func(field, ref any) bool {
			return !is.Before(field, ref) && is.Date(field)
		}),
	}
}

func compareDates(rule string, ok func(field, ref any) bool) Predicate {
	return func(_ context.Context, in Check) error {
		if len(in.Args) < 1 {
			return &ConfigError{Rule: rule, Reason: "requires a reference date argument"}
		}
		if _, parses := is.ToTime(in.Args[0]); !parses {
			return &ConfigError{Rule: rule, Reason: "has an unparseable reference date: " + in.Args[0]}
		}
		v, _ := in.Value()
		if !ok(v, in.Args[0]) {
			return in.Fail()
		}

		return nil
	}
}
