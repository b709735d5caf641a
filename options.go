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

	"dario.cat/mergo"
)

// config holds internal validation configuration used by [Validator].
type config struct {
	registry    *Registry
	messages    Messages
	concurrency int // max checks in flight, 0 = unbounded
}

// validate checks the configuration for errors.
func (c *config) validate() error {
	if c.concurrency < 0 {
		return errors.New("concurrency must be non-negative")
	}

	return nil
}

// clone creates a copy of the config for per-call option merging.
func (c *config) clone() *config {
	clone := *c
	if c.messages != nil {
		clone.messages = make(Messages, len(c.messages))
		if err := mergo.Merge(&clone.messages, c.messages); err != nil {
			clone.messages = c.messages
		}
	}

	return &clone
}

// Option is a functional option for configuring validation.
// Options can be passed to [New], [MustNew], or any of the validate calls.
type Option func(*config)

// WithRegistry binds the validator to a dedicated [Registry] instead of the
// process-wide [DefaultRegistry]. Useful when a component must not observe
// rules or mode changes made elsewhere in the process. Passed to a validate
// call, it overrides the validator's registry for that call only.
//
// Example:
//
//	reg := validation.NewRegistry()
//	reg.SetMode(validation.ModeStrict)
//	v := validation.MustNew(validation.WithRegistry(reg))
func WithRegistry(r *Registry) Option {
	return func(c *config) {
		c.registry = r
	}
}

// WithMessages layers custom messages over the defaults. Later tables win on
// key conflicts, so per-call messages override per-validator ones. Keys are
// "field.rule" or bare rule names; rule-name segments are normalized.
//
// Example:
//
//	err := v.ValidateAll(ctx, data, rules, validation.WithMessages(validation.Messages{
//	    "age.required": "How old are you?",
//	    "email":        "{{field}} is not a valid address",
//	}))
func WithMessages(m Messages) Option {
	return func(c *config) {
		if c.messages == nil {
			c.messages = make(Messages, len(m))
		}
		if err := mergo.Merge(&c.messages, normalizeMessages(m), mergo.WithOverride); err != nil {
			// A flat map merge cannot fail; fall back to direct copy anyway.
			for k, v := range normalizeMessages(m) {
				c.messages[k] = v
			}
		}
	}
}

// WithConcurrency caps the number of checks running at once. Zero, the
// default, lets every check of the batch run concurrently.
func WithConcurrency(n int) Option {
	return func(c *config) {
		c.concurrency = n
	}
}

// newConfig creates a new validation config with defaults.
func newConfig() *config {
	return &config{}
}

// applyOptions applies options to a config, returning a new config.
// Used for per-call options overriding the validator's base config.
func applyOptions(base *config, opts ...Option) *config {
	if len(opts) == 0 {
		return base
	}
	cfg := base.clone()
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
