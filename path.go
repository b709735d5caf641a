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
	"sort"
	"strconv"
	"strings"
)

// Data is the loosely-typed nested structure the engine validates: maps,
// slices, and scalar values addressed by dotted paths. It is read-only with
// respect to the engine; validation never mutates, prunes, or reorders it.
type Data = map[string]any

// maxPathDepth caps path recursion to protect against pathological nesting.
const maxPathDepth = 100

// lookup resolves a concrete dotted path ("profile.email", "items.2.price")
// against data. ok is false when any segment is missing, out of range, or
// descends into a scalar: the "absent" sentinel the skip policy relies on.
// A present-but-nil value returns (nil, true), which is distinct from absence.
func lookup(data Data, path string) (any, bool) {
	var cur any = data
	for part := range strings.SplitSeq(path, ".") {
		switch c := cur.(type) {
		case map[string]any:
			v, ok := c[part]
			if !ok {
				return nil, false
			}
			cur = v

		case []any:
			idx, err := strconv.Atoi(part)
			if err != nil || idx < 0 || idx >= len(c) {
				return nil, false
			}
			cur = c[idx]

		default:
			return nil, false
		}
	}

	return cur, true
}

// expand resolves a field path's "*" wildcard segments against the actual
// shape of data, producing the concrete indexed paths to validate.
//
// Slice elements expand in index order and map keys in sorted order, so
// expansion is stable and error ordering is reproducible. A missing or empty
// collection at a wildcard position yields zero paths: absent list items are
// not themselves a violation. A path with no wildcard expands to itself
// whether or not the value exists, so required-style rules still see it.
func expand(data Data, field string) []string {
	if !strings.Contains(field, "*") {
		return []string{field}
	}

	var out []string
	expandInto(data, strings.Split(field, "."), "", &out, 0)

	return out
}

func expandInto(cur any, parts []string, prefix string, out *[]string, depth int) {
	if depth > maxPathDepth {
		return
	}
	if len(parts) == 0 {
		*out = append(*out, prefix)
		return
	}

	// Once past the last wildcard, the remaining concrete segments are
	// emitted verbatim without checking existence: a missing leaf on an
	// existing element must still reach the required-family rules.
	if !containsWildcard(parts) {
		*out = append(*out, joinPath(prefix, strings.Join(parts, ".")))
		return
	}

	part := parts[0]
	if part == "*" {
		switch c := cur.(type) {
		case []any:
			for i, v := range c {
				expandInto(v, parts[1:], joinPath(prefix, strconv.Itoa(i)), out, depth+1)
			}
		case map[string]any:
			keys := make([]string, 0, len(c))
			for k := range c {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				expandInto(c[k], parts[1:], joinPath(prefix, k), out, depth+1)
			}
		}
		// Anything else cannot be iterated: zero expansions.
		return
	}

	// Concrete segment before a wildcard: descend toward the collection.
	switch c := cur.(type) {
	case map[string]any:
		v, ok := c[part]
		if !ok {
			return
		}
		expandInto(v, parts[1:], joinPath(prefix, part), out, depth+1)

	case []any:
		idx, err := strconv.Atoi(part)
		if err != nil || idx < 0 || idx >= len(c) {
			return
		}
		expandInto(c[idx], parts[1:], joinPath(prefix, part), out, depth+1)
	}
}

func containsWildcard(parts []string) bool {
	for _, p := range parts {
		if p == "*" {
			return true
		}
	}

	return false
}

func joinPath(prefix, part string) string {
	if prefix == "" {
		return part
	}

	return prefix + "." + part
}
