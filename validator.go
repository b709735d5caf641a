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
)

// Validator runs rule specs against data with a fixed configuration.
//
// Use [New] or [MustNew] for a configured Validator, or the package-level
// functions ([Validate], [ValidateAll]) for zero-configuration validation
// against the process-wide [DefaultRegistry].
//
// A Validator is safe for concurrent use by multiple goroutines; each call
// takes a consistent snapshot of its registry, so extensions and mode changes
// never tear a run in flight.
//
// Example:
//
//	v := validation.MustNew(
//	    validation.WithMessages(validation.Messages{"required": "{{field}} cannot be blank"}),
//	    validation.WithConcurrency(8),
//	)
//
//	err := v.ValidateAll(ctx, data, rules)
type Validator struct {
	cfg      *config
	registry *Registry
}

// New creates a [Validator] with the given options.
// New returns an error if the configuration is invalid (negative
// concurrency).
//
// See [Option] for available configuration options.
func New(opts ...Option) (*Validator, error) {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	registry := cfg.registry
	if registry == nil {
		registry = DefaultRegistry()
	}

	return &Validator{cfg: cfg, registry: registry}, nil
}

// MustNew creates a [Validator] with the given options.
// Panics if configuration is invalid.
//
// Use in main() or init() where panic on startup is acceptable.
func MustNew(opts ...Option) *Validator {
	v, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("validation.MustNew: %v", err))
	}

	return v
}

// Registry returns the registry this validator reads rules from.
func (v *Validator) Registry() *Registry {
	return v.registry
}

// Extend registers a new named rule on this validator's registry.
// See [Registry.Extend].
func (v *Validator) Extend(name string, fn Predicate, defaultMessage any) error {
	return v.registry.Extend(name, fn, defaultMessage)
}

// ExtendImplicit marks a rule implicit on this validator's registry.
// See [Registry.ExtendImplicit].
func (v *Validator) ExtendImplicit(name string) {
	v.registry.ExtendImplicit(name)
}

// SetMode switches emptiness semantics on this validator's registry.
// See [Registry.SetMode].
func (v *Validator) SetMode(mode Mode) {
	v.registry.SetMode(mode)
}
