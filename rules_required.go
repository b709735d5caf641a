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

// The required family never honors the generic skip policy (all of these are
// seeded into the implicit set). Each conditional variant decides from its
// referenced fields whether to enforce, then applies the same emptiness test:
// absent, empty string, empty slice, and empty map all count as empty.

func requiredRules() map[string]Predicate {
	return map[string]Predicate{
		"required": func(_ context.Context, in Check) error {
			return enforceRequired(in)
		},

		// Required when the referenced field exists.
		"requiredIf": func(_ context.Context, in Check) error {
			if len(in.Args) < 1 {
				return &ConfigError{Rule: "requiredIf", Reason: "requires the other field name as an argument"}
			}
			if !existsAt(in.Data, in.Args[0]) {
				return nil
			}

			return enforceRequired(in)
		},

		// Required when the referenced field has the given value.
		"requiredWhen": func(_ context.Context, in Check) error {
			if len(in.Args) < 2 {
				return &ConfigError{Rule: "requiredWhen", Reason: "requires a field name and a value as arguments"}
			}
			other, ok := lookup(in.Data, in.Args[0])
			if !ok || is.ToString(other) != in.Args[1] {
				return nil
			}

			return enforceRequired(in)
		},

		// Required when at least one of the referenced fields exists.
		"requiredWithAny": func(_ context.Context, in Check) error {
			if len(in.Args) < 1 {
				return &ConfigError{Rule: "requiredWithAny", Reason: "requires at least one field name as an argument"}
			}
			for _, field := range in.Args {
				if existsAt(in.Data, field) {
					return enforceRequired(in)
				}
			}

			return nil
		},

		// Required when every referenced field exists.
		"requiredWithAll": func(_ context.Context, in Check) error {
			if len(in.Args) < 1 {
				return &ConfigError{Rule: "requiredWithAll", Reason: "requires at least one field name as an argument"}
			}
			for _, field := range in.Args {
				if !existsAt(in.Data, field) {
					return nil
				}
			}

			return enforceRequired(in)
		},

		// Required when at least one of the referenced fields is missing.
		"requiredWithoutAny": func(_ context.Context, in Check) error {
			if len(in.Args) < 1 {
				return &ConfigError{Rule: "requiredWithoutAny", Reason: "requires at least one field name as an argument"}
			}
			for _, field := range in.Args {
				if !existsAt(in.Data, field) {
					return enforceRequired(in)
				}
			}

			return nil
		},

		// Required when every referenced field is missing.
		"requiredWithoutAll": func(_ context.Context, in Check) error {
			if len(in.Args) < 1 {
				return &ConfigError{Rule: "requiredWithoutAll", Reason: "requires at least one field name as an argument"}
			}
			for _, field := range in.Args {
				if existsAt(in.Data, field) {
					return nil
				}
			}

			return enforceRequired(in)
		},
	}
}

// enforceRequired applies the shared "is THIS field non-empty" test.
func enforceRequired(in Check) error {
	v, ok := in.Value()
	if !ok || is.Empty(v) {
		return in.Fail()
	}

	return nil
}

// existsAt reports whether another referenced field resolves to a non-nil
// value, the presence condition the conditional required variants share.
func existsAt(data Data, path string) bool {
	v, ok := lookup(data, path)

	return ok && is.Existy(v)
}
