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
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Package-level validator state for the convenience functions [Validate] and
// [ValidateAll].
var (
	defaultValidator     *Validator
	defaultValidatorOnce sync.Once
)

// getDefaultValidator returns the default [Validator], creating it if
// necessary.
func getDefaultValidator() *Validator {
	defaultValidatorOnce.Do(func() {
		defaultValidator = MustNew()
	})

	return defaultValidator
}

// Validate checks data against rules in fail-fast mode using the default
// [Validator]: the run reports only the earliest-declared failure.
//
// Validate returns nil on success; data is never mutated, so the caller's
// object is the validated object. On failure it returns [Errors] with exactly
// one [FieldError]; configuration mistakes return a [*ConfigError] instead.
//
// Example:
//
//	data := validation.Data{"username": "aman@33$"}
//	rules := validation.Rules{"username": "required|alpha"}
//
//	if err := validation.Validate(ctx, data, rules); err != nil {
//	    var verrs validation.Errors
//	    if errors.As(err, &verrs) {
//	        fmt.Println(verrs[0].Field, verrs[0].Message)
//	    }
//	}
func Validate(ctx context.Context, data Data, rules any, opts ...Option) error {
	return getDefaultValidator().Validate(ctx, data, rules, opts...)
}

// ValidateAll checks data against rules in collect-all mode using the default
// [Validator]: every rule for every field runs, and all failures come back as
// one ordered [Errors] list.
func ValidateAll(ctx context.Context, data Data, rules any, opts ...Option) error {
	return getDefaultValidator().ValidateAll(ctx, data, rules, opts...)
}

// Extend registers a new named rule on the [DefaultRegistry].
// See [Registry.Extend].
func Extend(name string, fn Predicate, defaultMessage any) error {
	return DefaultRegistry().Extend(name, fn, defaultMessage)
}

// ExtendImplicit marks a rule implicit on the [DefaultRegistry].
// See [Registry.ExtendImplicit].
func ExtendImplicit(name string) {
	DefaultRegistry().ExtendImplicit(name)
}

// SetMode switches emptiness semantics on the [DefaultRegistry].
// See [Registry.SetMode].
func SetMode(mode Mode) {
	DefaultRegistry().SetMode(mode)
}

// Validate runs rules in fail-fast mode: on failure the returned [Errors]
// holds exactly one element, the earliest-declared failing check. All checks
// of the batch still execute; attribution follows declaration order, never
// completion order.
func (v *Validator) Validate(ctx context.Context, data Data, rules any, opts ...Option) error {
	return v.run(ctx, data, rules, true, opts...)
}

// ValidateAll runs rules in collect-all mode: every failure across every
// field is returned in field order, then rule-declaration order within a
// field.
func (v *Validator) ValidateAll(ctx context.Context, data Data, rules any, opts ...Option) error {
	return v.run(ctx, data, rules, false, opts...)
}

// plannedCheck is one (field, rule) pair of the batch, with its predicate and
// message resolved up front against the call's registry snapshot. The failed
// slot is written by at most one goroutine, then read after Wait.
type plannedCheck struct {
	field    string
	rule     Rule
	pred     Predicate
	message  string
	siblings []Rule
	failed   *FieldError
}

func (v *Validator) run(ctx context.Context, data Data, spec any, failFast bool, opts ...Option) error {
	cfg := applyOptions(v.cfg, opts...)

	// A per-call WithRegistry overrides the registry fixed at construction.
	registry := v.registry
	if cfg.registry != nil {
		registry = cfg.registry
	}
	snap := registry.snapshot()

	plan, err := buildPlan(data, spec, cfg.messages, snap)
	if err != nil {
		return err
	}
	if len(plan) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if cfg.concurrency > 0 {
		g.SetLimit(cfg.concurrency)
	}

	for i := range plan {
		c := &plan[i]
		g.Go(func() (err error) {
			// A panic inside a predicate is a fault, not a validation
			// failure; surface it and cancel the rest of the batch.
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("validation: rule %q panicked on %q: %v", c.rule.Name, c.field, r)
				}
			}()

			if skipCheck(data, c, snap) {
				return nil
			}

			res := c.pred(gctx, Check{
				Data:    data,
				Field:   c.field,
				Message: c.message,
				Args:    c.rule.Args,
				Rules:   c.siblings,
			})
			if res == nil {
				return nil
			}

			var cerr *ConfigError
			if errors.As(res, &cerr) {
				return cerr
			}

			c.failed = &FieldError{Field: c.field, Validation: c.rule.Name, Message: res.Error()}

			return nil
		})
	}

	// ConfigErrors and faults short-circuit everything in flight.
	if err := g.Wait(); err != nil {
		return err
	}

	var failures Errors
	for i := range plan {
		if plan[i].failed == nil {
			continue
		}
		failures = append(failures, *plan[i].failed)
		if failFast {
			break
		}
	}
	if len(failures) > 0 {
		return failures
	}

	return nil
}

// buildPlan parses the rule spec, expands wildcard paths against the data,
// resolves predicates and messages from the snapshot, and returns the ordered
// check batch. An unresolvable rule name is a configuration error: nothing
// runs.
func buildPlan(data Data, spec any, messages Messages, snap *registrySnapshot) ([]plannedCheck, error) {
	fields, err := fieldList(spec)
	if err != nil {
		return nil, err
	}

	var plan []plannedCheck
	for _, fr := range fields {
		rules := ParseRules(fr.Spec)
		if len(rules) == 0 {
			continue
		}
		for _, path := range expand(data, fr.Field) {
			for _, r := range rules {
				pred, ok := snap.predicates[r.Name]
				if !ok {
					return nil, &ConfigError{Rule: r.Name, Reason: "is not defined as a validation rule"}
				}
				plan = append(plan, plannedCheck{
					field:    path,
					rule:     r,
					pred:     pred,
					message:  resolveMessage(messages, snap.messages, path, r.Name, r.Args),
					siblings: rules,
				})
			}
		}
	}

	return plan, nil
}

// fieldList normalizes the supported rule spec forms into ordered field
// entries. Plain maps validate in lexicographic path order; [OrderedRules]
// preserves its slice order.
func fieldList(spec any) ([]FieldRules, error) {
	switch s := spec.(type) {
	case nil:
		return nil, nil
	case Rules:
		return sortedFields(s), nil
	case map[string]any:
		return sortedFields(s), nil
	case OrderedRules:
		return s, nil
	case []FieldRules:
		return s, nil
	default:
		return nil, &ConfigError{Reason: fmt.Sprintf("unsupported rule spec type %T", spec)}
	}
}

func sortedFields(m map[string]any) []FieldRules {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]FieldRules, 0, len(keys))
	for _, k := range keys {
		out = append(out, FieldRules{Field: k, Spec: m[k]})
	}

	return out
}

// skipCheck applies the skippability policy ahead of the predicate:
// implicit rules never skip; in strict mode only true absence skips; normal
// mode also skips empty strings, and nil values when the field carries
// "nullable". A skipped check contributes no error.
func skipCheck(data Data, c *plannedCheck, snap *registrySnapshot) bool {
	if snap.implicit[c.rule.Name] {
		return false
	}

	v, ok := lookup(data, c.field)
	if !ok {
		return true
	}
	if snap.mode == ModeStrict {
		return false
	}
	if s, isStr := v.(string); isStr && s == "" {
		return true
	}
	if v == nil && hasRule(c.siblings, "nullable") {
		return true
	}

	return false
}
