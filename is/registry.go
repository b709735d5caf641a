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

package is

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"
)

// CheckFunc is a raw named predicate: a pure function over a value and
// optional string arguments.
type CheckFunc func(value any, args ...string) bool

// ErrNilCheck is returned by [Extend] when the handler is not invocable.
var ErrNilCheck = errors.New("is: check function must not be nil")

// ErrUnknownCheck is returned by [Check] for names that were never registered.
var ErrUnknownCheck = errors.New("is: unknown check")

var (
	registryMu sync.RWMutex
	registry   = builtinChecks()
)

// Extend registers a raw predicate under a name (normalized the same way rule
// names are, so "alpha_numeric" and "alphaNumeric" are one key). Registering
// over an existing name replaces it. A nil fn returns [ErrNilCheck], this
// package's counterpart to the validation package's ConfigError for the same
// mistake; it stays a local sentinel because importing the validation package
// here would create a cycle.
func Extend(name string, fn CheckFunc) error {
	if fn == nil {
		return ErrNilCheck
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	registry[normalize(name)] = fn

	return nil
}

// Lookup returns the raw predicate registered under a name.
func Lookup(name string) (CheckFunc, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	fn, ok := registry[normalize(name)]

	return fn, ok
}

// Check invokes a registered predicate by name. It returns [ErrUnknownCheck]
// for names that were never registered.
func Check(name string, value any, args ...string) (bool, error) {
	fn, ok := Lookup(name)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownCheck, name)
	}

	return fn(value, args...), nil
}

// builtinChecks seeds the registry so every typed predicate in this package
// is also reachable by name.
func builtinChecks() map[string]CheckFunc {
	unary := func(fn func(any) bool) CheckFunc {
		return func(v any, _ ...string) bool { return fn(v) }
	}

	return map[string]CheckFunc{
		"existy":       unary(Existy),
		"empty":        unary(Empty),
		"truthy":       unary(Truthy),
		"alpha":        unary(Alpha),
		"alphaNumeric": unary(AlphaNumeric),
		"number":       unary(Number),
		"integer":      unary(Integer),
		"float":        unary(Float),
		"boolean":      unary(Boolean),
		"email":        unary(Email),
		"url":          unary(URL),
		"ip":           unary(IP),
		"ipv4":         unary(IPv4),
		"ipv6":         unary(IPv6),
		"json":         unary(JSON),
		"creditCard":   unary(CreditCard),
		"uuid":         unary(UUID),
		"date":         unary(Date),
		"dateFormat": func(v any, args ...string) bool {
			return len(args) > 0 && DateFormat(v, args[0])
		},
		"regex": func(v any, args ...string) bool {
			return len(args) > 0 && Regex(v, strings.Join(args, ","))
		},
		"before": func(v any, args ...string) bool {
			return len(args) > 0 && Before(v, args[0])
		},
		"after": func(v any, args ...string) bool {
			return len(args) > 0 && After(v, args[0])
		},
		"inArray": func(v any, args ...string) bool {
			return InArray(ToString(v), args)
		},
	}
}

// normalize maps hyphen/snake/camel names to one camelCase key. Kept local to
// avoid a cycle with the validation package, which applies the same rule.
func normalize(name string) string {
	name = strings.TrimSpace(name)
	if !strings.ContainsAny(name, "-_") {
		return name
	}

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

	return b.String()
}

func stringify(v any) string {
	return fmt.Sprint(v)
}
