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
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MessageFunc computes an error message at resolution time. It receives the
// concrete field path, the canonical rule name, and the rule's arguments.
type MessageFunc func(field, rule string, args []string) string

// Messages maps message keys to overrides for the built-in default texts.
// Keys are checked most-specific first: "field.rule" (full field path plus
// rule name), then "rule". Values are static strings, template strings with
// {{field}}, {{validation}}, and {{argument.N}} placeholders, or a
// [MessageFunc].
//
// Example:
//
//	validation.Messages{
//	    "age.required": "How old are you?",
//	    "required":     "{{field}} cannot be left blank",
//	    "between":      "{{field}} must be between {{argument.0}} and {{argument.1}}",
//	    "email": validation.MessageFunc(func(field, rule string, args []string) string {
//	        return fmt.Sprintf("%q is not an address we can deliver to", field)
//	    }),
//	}
type Messages map[string]any

var placeholderPattern = regexp.MustCompile(`\{\{\s*(field|validation|argument\.(\d+))\s*\}\}`)

// resolveMessage computes the final error text for a (field, rule, args)
// triple. Precedence, first match wins:
//
//  1. custom["field.rule"]
//  2. custom["rule"]
//  3. the registry's default message table entry for the rule
//  4. a generic "<rule> validation failed on <field>" fallback
//
// resolveMessage never fails; unresolved placeholders stay verbatim.
func resolveMessage(custom Messages, defaults map[string]any, field, rule string, args []string) string {
	if custom != nil {
		if m, ok := custom[field+"."+rule]; ok {
			return renderMessage(m, field, rule, args)
		}
		if m, ok := custom[rule]; ok {
			return renderMessage(m, field, rule, args)
		}
	}
	if m, ok := defaults[rule]; ok {
		return renderMessage(m, field, rule, args)
	}

	return fmt.Sprintf("%s validation failed on %s", rule, field)
}

// renderMessage evaluates one message table entry: callbacks are invoked,
// strings are template-substituted, anything else is stringified.
func renderMessage(entry any, field, rule string, args []string) string {
	switch m := entry.(type) {
	case string:
		return renderTemplate(m, field, rule, args)
	case MessageFunc:
		return m(field, rule, args)
	case func(field, rule string, args []string) string:
		return m(field, rule, args)
	default:
		return fmt.Sprint(entry)
	}
}

// renderTemplate substitutes {{field}}, {{validation}}, and {{argument.N}}
// placeholders. An argument index past the end of args is left verbatim; a
// missing template variable is not a resolver failure.
func renderTemplate(tpl, field, rule string, args []string) string {
	if !strings.Contains(tpl, "{{") {
		return tpl
	}

	return placeholderPattern.ReplaceAllStringFunc(tpl, func(match string) string {
		sub := placeholderPattern.FindStringSubmatch(match)
		switch {
		case sub[1] == "field":
			return field
		case sub[1] == "validation":
			return rule
		default:
			n, err := strconv.Atoi(sub[2])
			if err == nil && n >= 0 && n < len(args) {
				return args[n]
			}

			return match
		}
	})
}

// normalizeMessages returns a copy of m with the rule portion of every key
// normalized, so "age.alpha_numeric" and "alpha-numeric" keys resolve against
// canonical camelCase rule names. Field path segments are left untouched.
func normalizeMessages(m Messages) Messages {
	if m == nil {
		return nil
	}

	out := make(Messages, len(m))
	for k, v := range m {
		out[normalizeMessageKey(k)] = v
	}

	return out
}

// normalizeMessageKey normalizes the trailing rule-name segment of a message
// key. The rule name always follows the last dot; everything before it is the
// field path and may legitimately contain dots and indexes.
func normalizeMessageKey(key string) string {
	idx := strings.LastIndex(key, ".")
	if idx < 0 {
		return normalizeName(key)
	}

	return key[:idx+1] + normalizeName(key[idx+1:])
}
