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

// Package validation is a field-level, rule-string driven validation engine
// for loosely-typed nested data (maps, slices, scalars), the kind of
// structure a JSON body decodes into.
//
// # Getting Started
//
// Describe rules per field path and run them with the package-level
// functions:
//
//	data := validation.Data{
//	    "username": "octocat",
//	    "profile":  map[string]any{"email": "cat@example.com"},
//	}
//	rules := validation.Rules{
//	    "username":      "required|alphaNumeric|min:3",
//	    "profile.email": "required|email",
//	}
//
//	if err := validation.ValidateAll(ctx, data, rules); err != nil {
//	    var verrs validation.Errors
//	    if errors.As(err, &verrs) {
//	        for _, fe := range verrs {
//	            fmt.Printf("%s failed %s: %s\n", fe.Field, fe.Validation, fe.Message)
//	        }
//	    }
//	}
//
// [Validate] is the fail-fast counterpart: it runs the same batch but reports
// only the earliest-declared failure. Both always leave data untouched.
//
// # Rule Strings
//
// A field's rules are written "name[:arg1[,arg2...]]" joined by "|", or as an
// explicit slice of such single-rule strings. Only the first ":" separates a
// rule name from its arguments, so values like ISO timestamps keep their
// colons ("after:2026-01-02T15:04:05Z"). Rule names in hyphen-case,
// snake_case, and camelCase all resolve to the same rule.
//
// # Wildcard Paths
//
// Field paths use "." for nesting and "*" for every element of a collection:
//
//	validation.Rules{"people.*.email": "required|email"}
//
// expands against the actual data into "people.0.email", "people.1.email",
// and so on. Failures carry the concrete indexed path.
//
// # Custom Messages
//
// Messages override defaults per rule or per field+rule, as static strings,
// {{field}}/{{argument.N}} templates, or callbacks. See [Messages].
//
// # Extension
//
// Register new rules with [Extend], mark rules that must run even for absent
// fields with [ExtendImplicit], and use the raw boolean checks directly via
// the is subpackage. [SetMode] switches between normal and strict emptiness
// semantics.
//
// # Thread Safety
//
// [Validator] instances and the package-level functions are safe for
// concurrent use. Each call snapshots its [Registry], so a run never observes
// a half-applied extension; changes become visible to subsequent calls.
package validation
