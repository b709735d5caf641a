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
	"strings"
	"unicode"
)

// Rule is a single named, parameterized check assigned to a field.
// Name is the canonical lookup key (camelCase); Args are the raw string
// arguments extracted from the rule spec's ":"-suffix.
type Rule struct {
	Name string
	Args []string
}

// Rules maps a field path (dot notation, "*" wildcards) to that field's rule
// spec. The spec may be a pipe-delimited string, a []string of single-rule
// strings, a [Rule], a []Rule, or a []any mixing those forms:
//
//	validation.Rules{
//	    "username":       "required|alphaNumeric",
//	    "profile.email":  []string{"required", "email"},
//	    "people.*.age":   "number|above:17",
//	    "slug":           []validation.Rule{{Name: "regex", Args: []string{`^[a-z,-]+$`}}},
//	}
//
// Because Go maps are unordered, fields validate in lexicographic path order.
// Use [OrderedRules] when explicit field ordering matters.
type Rules map[string]any

// FieldRules pairs one field path with its rule spec for use in [OrderedRules].
type FieldRules struct {
	Field string
	Spec  any
}

// OrderedRules is the order-preserving form of [Rules]: fields validate in
// slice order, which fixes the relative order of reported failures.
type OrderedRules []FieldRules

// ParseRules parses a field's rule spec into its ordered rule list.
//
// Accepted forms: a pipe-delimited string ("required|min:4|between:4,10"),
// a []string of single-rule strings, a [Rule] or []Rule (taken as-is after
// name normalization), or a []any mixing strings and Rules. Both string forms
// produce identical output for equivalent content.
//
// ParseRules never fails: a malformed element becomes a Rule with an empty
// name, which surfaces as a "not defined" [ConfigError] at validation time.
func ParseRules(spec any) []Rule {
	switch s := spec.(type) {
	case nil:
		return nil

	case string:
		parts := strings.Split(s, "|")
		rules := make([]Rule, 0, len(parts))
		for _, p := range parts {
			rules = append(rules, parseRule(p))
		}

		return rules

	case []string:
		rules := make([]Rule, 0, len(s))
		for _, p := range s {
			rules = append(rules, parseRule(p))
		}

		return rules

	case Rule:
		return []Rule{normalizeRule(s)}

	case []Rule:
		rules := make([]Rule, 0, len(s))
		for _, r := range s {
			rules = append(rules, normalizeRule(r))
		}

		return rules

	case []any:
		rules := make([]Rule, 0, len(s))
		for _, el := range s {
			switch e := el.(type) {
			case string:
				rules = append(rules, parseRule(e))
			case Rule:
				rules = append(rules, normalizeRule(e))
			default:
				// Unresolvable element: empty name, reported at run time.
				rules = append(rules, Rule{})
			}
		}

		return rules

	default:
		return []Rule{{}}
	}
}

// parseRule parses one "name[:arg1[,arg2...]]" element. Only the first ":"
// separates the name from the args blob, so arguments such as ISO timestamps
// or Go time layouts keep their interior colons. Only top-level commas split
// arguments; rules whose single argument may itself contain commas (regex)
// rejoin them on their side.
func parseRule(raw string) Rule {
	raw = strings.TrimSpace(raw)
	name, blob, found := strings.Cut(raw, ":")

	r := Rule{Name: normalizeName(name)}
	if !found || blob == "" {
		return r
	}

	parts := strings.Split(blob, ",")
	r.Args = make([]string, 0, len(parts))
	for _, a := range parts {
		r.Args = append(r.Args, strings.TrimSpace(a))
	}

	return r
}

// normalizeRule returns a copy of r with its name normalized.
func normalizeRule(r Rule) Rule {
	return Rule{Name: normalizeName(r.Name), Args: r.Args}
}

// ruleAliases maps accepted alternate spellings to their canonical rule name.
var ruleAliases = map[string]string{
	"len": "size",
}

// normalizeName maps hyphen-case, snake_case, and camelCase rule names to one
// canonical camelCase lookup key ("alpha_numeric", "alpha-numeric", and
// "alphaNumeric" all resolve to "alphaNumeric"), then resolves aliases
// ("len" becomes "size").
func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	if strings.ContainsAny(name, "-_") {
		var b strings.Builder
		b.Grow(len(name))
		upper := false
		for _, r := range name {
			if r == '-' || r == '_' {
				upper = true
				continue
			}
			if upper {
				b.WriteRune(unicode.ToUpper(r))
				upper = false
				continue
			}
			b.WriteRune(r)
		}
		name = b.String()
	}

	if canonical, ok := ruleAliases[name]; ok {
		return canonical
	}

	return name
}

// hasRule reports whether a rule list contains the given canonical name.
// Used for sibling-sensitive behavior (nullable skipping, numeric sizing).
func hasRule(rules []Rule, name string) bool {
	for _, r := range rules {
		if r.Name == name {
			return true
		}
	}

	return false
}
