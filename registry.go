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
	"maps"
	"sync"
)

// Mode selects the emptiness semantics used by the skip policy.
type Mode string

const (
	// ModeNormal treats absent fields, empty strings, and (for fields
	// carrying "nullable") nil values as skippable by non-implicit rules.
	ModeNormal Mode = "normal"

	// ModeStrict treats only truly absent fields as skippable; an empty
	// string still reaches every predicate.
	ModeStrict Mode = "strict"
)

// Registry holds the mutable state shared by validation calls: the named rule
// predicates, their default messages, the implicit-rule set, and the active
// [Mode]. A Registry is safe for concurrent use; writes go through the
// extension API and readers take an immutable snapshot per call, so in-flight
// validations never observe a half-applied change.
//
// The package-level functions operate on [DefaultRegistry]. Construct a
// dedicated Registry with [NewRegistry] and bind it via [WithRegistry] when a
// validator must not share process-wide rule state.
type Registry struct {
	mu         sync.RWMutex
	predicates map[string]Predicate
	messages   map[string]any
	implicit   map[string]bool
	mode       Mode
}

// registrySnapshot is the fixed view of a Registry one validation call runs
// against.
type registrySnapshot struct {
	predicates map[string]Predicate
	messages   map[string]any
	implicit   map[string]bool
	mode       Mode
}

// NewRegistry returns a Registry seeded with the built-in rule set, the
// default message table, and the required-family implicit rules, in
// [ModeNormal].
func NewRegistry() *Registry {
	return &Registry{
		predicates: builtinPredicates(),
		messages:   builtinMessages(),
		implicit:   builtinImplicit(),
		mode:       ModeNormal,
	}
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide Registry used by the package-level
// functions, creating it on first use.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})

	return defaultRegistry
}

// Extend registers a new named rule and, optionally, its default message.
// The name is normalized, so "alpha_dash", "alpha-dash", and "alphaDash" all
// register the same rule. Registering over an existing name replaces it.
//
// Extend returns a [*ConfigError] if fn is nil; registration validates the
// handler at extend time, not at use time.
func (r *Registry) Extend(name string, fn Predicate, defaultMessage any) error {
	canonical := normalizeName(name)
	if fn == nil {
		return &ConfigError{Rule: canonical, Reason: "requires a non-nil predicate"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.predicates[canonical] = fn
	if defaultMessage != nil {
		r.messages[canonical] = defaultMessage
	}

	return nil
}

// ExtendImplicit adds a rule name (normalized) to the implicit set, so the
// rule runs even when the field's value would otherwise be skippable.
func (r *Registry) ExtendImplicit(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.implicit[normalizeName(name)] = true
}

// SetMode switches the emptiness semantics for every subsequent validation
// call against this registry. Values other than [ModeNormal] and [ModeStrict]
// are ignored with a logged warning, leaving the prior mode unchanged.
func (r *Registry) SetMode(mode Mode) {
	if mode != ModeNormal && mode != ModeStrict {
		logger.Warn().Str("mode", string(mode)).Msg("ignoring unknown validation mode")
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.mode = mode
}

// Mode returns the registry's active mode.
func (r *Registry) Mode() Mode {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.mode
}

// snapshot copies the registry state so one validation call sees a consistent
// view even if the registry is extended mid-flight.
func (r *Registry) snapshot() *registrySnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return &registrySnapshot{
		predicates: maps.Clone(r.predicates),
		messages:   maps.Clone(r.messages),
		implicit:   maps.Clone(r.implicit),
		mode:       r.mode,
	}
}

// builtinImplicit seeds the implicit-rule set with the required family: rules
// that decide presence themselves and therefore never honor the skip policy.
func builtinImplicit() map[string]bool {
	return map[string]bool{
		"required":           true,
		"requiredIf":         true,
		"requiredWhen":       true,
		"requiredWithAny":    true,
		"requiredWithAll":    true,
		"requiredWithoutAny": true,
		"requiredWithoutAll": true,
	}
}
