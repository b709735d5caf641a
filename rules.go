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
	"errors"
	"maps"
)

// Check carries everything one predicate invocation needs: the full data
// object, the concrete field path under test, the already-resolved failure
// message, the rule's arguments, and the field's complete rule list (for
// sibling-sensitive behavior such as numeric sizing).
type Check struct {
	Data    Data
	Field   string
	Message string
	Args    []string
	Rules   []Rule
}

// Value resolves the field under test. ok is false when the field is absent.
func (in Check) Value() (any, bool) {
	return lookup(in.Data, in.Field)
}

// Fail returns the check's failure carrying its resolved message.
func (in Check) Fail() error {
	return errors.New(in.Message)
}

// Predicate is the check function backing a named rule. A nil return is a
// pass; returning the error built by [Check.Fail] (or any other error) marks
// the field failed with that message. Returning a [*ConfigError] aborts the
// whole validation run, and a panic propagates to the caller as a fault;
// neither becomes a [FieldError].
type Predicate func(ctx context.Context, in Check) error

// builtinPredicates assembles the seed rule set for a new [Registry].
func builtinPredicates() map[string]Predicate {
	m := make(map[string]Predicate, 64)
	maps.Copy(m, requiredRules())
	maps.Copy(m, typeRules())
	maps.Copy(m, sizeRules())
	maps.Copy(m, compareRules())
	maps.Copy(m, dateRules())

	// Marker rule: always passes. Its presence on a field switches the
	// normal-mode skip policy for nil values.
	m["nullable"] = func(context.Context, Check) error { return nil }

	return m
}

// builtinMessages is the default message table; entries are overridable per
// registry via [Registry.Extend] and per call via [Messages].
func builtinMessages() map[string]any {
	return map[string]any{
		"required":           "{{field}} is required",
		"requiredIf":         "{{field}} is required when {{argument.0}} exists",
		"requiredWhen":       "{{field}} is required when {{argument.0}} is {{argument.1}}",
		"requiredWithAny":    "{{field}} is required",
		"requiredWithAll":    "{{field}} is required",
		"requiredWithoutAny": "{{field}} is required",
		"requiredWithoutAll": "{{field}} is required",

		"alpha":        "{{field}} must contain letters only",
		"alphaNumeric": "{{field}} must contain letters and numbers only",
		"array":        "{{field}} must be an array",
		"object":       "{{field}} must be an object",
		"boolean":      "{{field}} must be a boolean",
		"string":       "{{field}} must be a string",
		"number":       "{{field}} must be a number",
		"integer":      "{{field}} must be an integer",
		"float":        "{{field}} must be a float",
		"email":        "{{field}} must be a valid email address",
		"url":          "{{field}} must be a valid URL",
		"ip":           "{{field}} must be a valid IP address",
		"ipv4":         "{{field}} must be a valid IPv4 address",
		"ipv6":         "{{field}} must be a valid IPv6 address",
		"json":         "{{field}} must be valid JSON",
		"uuid":         "{{field}} must be a valid UUID",
		"creditCard":   "{{field}} must be a valid credit card number",
		"regex":        "{{field}} format is invalid",
		"accepted":     "{{field}} must be accepted",

		"min":     "{{field}} must be at least {{argument.0}}",
		"max":     "{{field}} may not be greater than {{argument.0}}",
		"size":    "{{field}} must be exactly {{argument.0}}",
		"range":   "{{field}} must be between {{argument.0}} and {{argument.1}}",
		"between": "{{field}} must be between {{argument.0}} and {{argument.1}}",
		"above":   "{{field}} must be above {{argument.0}}",
		"under":   "{{field}} must be under {{argument.0}}",

		"in":         "selected {{field}} is invalid",
		"notIn":      "selected {{field}} is invalid",
		"equals":     "{{field}} must equal {{argument.0}}",
		"notEquals":  "{{field}} must not equal {{argument.0}}",
		"same":       "{{field}} and {{argument.0}} must match",
		"different":  "{{field}} and {{argument.0}} must be different",
		"confirmed":  "{{field}} confirmation does not match",
		"startsWith": "{{field}} must start with {{argument.0}}",
		"endsWith":   "{{field}} must end with {{argument.0}}",
		"includes":   "{{field}} must include {{argument.0}}",

		"date":          "{{field}} must be a valid date",
		"dateFormat":    "{{field}} does not match the format {{argument.0}}",
		"before":        "{{field}} must be a date before {{argument.0}}",
		"after":         "{{field}} must be a date after {{argument.0}}",
		"beforeOrEqual": "{{field}} must be a date on or before {{argument.0}}",
		"afterOrEqual":  "{{field}} must be a date on or after {{argument.0}}",
	}
}
