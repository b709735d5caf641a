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
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is a sentinel error for validation failures.
// Use errors.Is(err, ErrValidation) to check whether an error carries
// field-level validation failures.
var ErrValidation = errors.New("validation")

// ErrConfig is a sentinel error for configuration mistakes: an unregistered
// rule name, a nil predicate passed to Extend, or a parameterized rule missing
// its required arguments. Configuration errors abort a validation run
// immediately and are never mixed into an [Errors] list.
var ErrConfig = errors.New("validation: invalid configuration")

// FieldError represents a single failed check: one field against one rule.
// Multiple FieldError values are collected in [Errors].
//
// Example:
//
//	err := FieldError{
//	    Field:      "people.0.email",
//	    Validation: "email",
//	    Message:    "people.0.email must be a valid email address",
//	}
type FieldError struct {
	Field      string `json:"field"`      // Concrete dotted path (e.g., "people.0.email")
	Validation string `json:"validation"` // Canonical rule name (e.g., "required", "alphaNumeric")
	Message    string `json:"message"`    // Resolved human-readable message
}

// Error returns a formatted error message as "field: message" or just "message"
// if the field path is empty.
func (e FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap returns [ErrValidation] for errors.Is/errors.As compatibility.
func (e FieldError) Unwrap() error {
	return ErrValidation
}

// Errors is the ordered collection of validation failures produced by a run.
// [Validator.Validate] returns at most one element; [Validator.ValidateAll]
// returns every failure in field order, then rule-declaration order.
//
// Errors implements error and can be recovered with errors.As:
//
//	var verrs validation.Errors
//	if errors.As(err, &verrs) {
//	    for _, fe := range verrs {
//	        fmt.Printf("%s failed %s: %s\n", fe.Field, fe.Validation, fe.Message)
//	    }
//	}
type Errors []FieldError

// Error returns a formatted error message joining every field failure.
func (v Errors) Error() string {
	if len(v) == 0 {
		return ""
	}
	if len(v) == 1 {
		return v[0].Error()
	}

	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Error())
	}

	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

// Unwrap returns [ErrValidation] for errors.Is/errors.As compatibility.
func (v Errors) Unwrap() error {
	return ErrValidation
}

// Has reports whether a specific field path has a failure.
func (v Errors) Has(field string) bool {
	for _, e := range v {
		if e.Field == field {
			return true
		}
	}

	return false
}

// First returns the message of the first failure recorded for a field,
// or "" if the field has none.
func (v Errors) First(field string) string {
	for _, e := range v {
		if e.Field == field {
			return e.Message
		}
	}

	return ""
}

// Get returns every message recorded for a field, in order.
func (v Errors) Get(field string) []string {
	var msgs []string
	for _, e := range v {
		if e.Field == field {
			msgs = append(msgs, e.Message)
		}
	}

	return msgs
}

// Fields returns the distinct failing field paths, preserving first-seen order.
func (v Errors) Fields() []string {
	seen := make(map[string]bool, len(v))
	var fields []string
	for _, e := range v {
		if !seen[e.Field] {
			seen[e.Field] = true
			fields = append(fields, e.Field)
		}
	}

	return fields
}

// ConfigError signals a programmer or setup mistake rather than bad data:
// referencing a rule that was never registered, extending the registry with a
// nil predicate, or using range/between without both bounds.
//
// A ConfigError aborts the whole run, so callers can always distinguish it
// from ordinary validation output:
//
//	var cerr *validation.ConfigError
//	if errors.As(err, &cerr) {
//	    // fix the rule spec, this is not a data problem
//	}
type ConfigError struct {
	Rule   string // Rule name involved, if any
	Reason string
}

// Error returns a formatted error message.
func (e *ConfigError) Error() string {
	if e.Rule != "" {
		return fmt.Sprintf("validation config: rule %q %s", e.Rule, e.Reason)
	}

	return fmt.Sprintf("validation config: %s", e.Reason)
}

// Unwrap returns [ErrConfig] for errors.Is/errors.As compatibility.
func (e *ConfigError) Unwrap() error {
	return ErrConfig
}
