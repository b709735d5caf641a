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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec any
		want []Rule
	}{
		{
			name: "single rule without args",
			spec: "required",
			want: []Rule{{Name: "required"}},
		},
		{
			name: "pipe-delimited with args",
			spec: "required|min:4|between:4,10",
			want: []Rule{
				{Name: "required"},
				{Name: "min", Args: []string{"4"}},
				{Name: "between", Args: []string{"4", "10"}},
			},
		},
		{
			name: "slice form matches string form",
			spec: []string{"required", "min:4", "between:4,10"},
			want: []Rule{
				{Name: "required"},
				{Name: "min", Args: []string{"4"}},
				{Name: "between", Args: []string{"4", "10"}},
			},
		},
		{
			name: "only first colon separates name from args",
			spec: "after:2026-01-02T15:04:05Z",
			want: []Rule{{Name: "after", Args: []string{"2026-01-02T15:04:05Z"}}},
		},
		{
			name: "args are trimmed",
			spec: "in: a , b ,c",
			want: []Rule{{Name: "in", Args: []string{"a", "b", "c"}}},
		},
		{
			name: "snake and hyphen names normalize to camel",
			spec: "alpha_numeric|alpha-numeric|alphaNumeric|required_with_any:a,b",
			want: []Rule{
				{Name: "alphaNumeric"},
				{Name: "alphaNumeric"},
				{Name: "alphaNumeric"},
				{Name: "requiredWithAny", Args: []string{"a", "b"}},
			},
		},
		{
			name: "rule literal passes through with normalization",
			spec: []Rule{{Name: "regex", Args: []string{`^[a-z,]+$`}}, {Name: "alpha_numeric"}},
			want: []Rule{
				{Name: "regex", Args: []string{`^[a-z,]+$`}},
				{Name: "alphaNumeric"},
			},
		},
		{
			name: "mixed any slice",
			spec: []any{"required", Rule{Name: "min", Args: []string{"2"}}},
			want: []Rule{{Name: "required"}, {Name: "min", Args: []string{"2"}}},
		},
		{
			name: "empty element becomes empty-name rule",
			spec: "required||min:4",
			want: []Rule{{Name: "required"}, {Name: ""}, {Name: "min", Args: []string{"4"}}},
		},
		{
			name: "trailing colon keeps args empty",
			spec: "min:",
			want: []Rule{{Name: "min"}},
		},
		{
			name: "unsupported spec type becomes empty-name rule",
			spec: 42,
			want: []Rule{{}},
		},
		{
			name: "nil spec parses to nothing",
			spec: nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseRules(tt.spec))
		})
	}
}

func TestParseRules_EquivalentForms(t *testing.T) {
	t.Parallel()

	asString := ParseRules("required|min:4|email")
	asSlice := ParseRules([]string{"required", "min:4", "email"})
	require.Equal(t, asString, asSlice)
}

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"alpha_numeric", "alphaNumeric"},
		{"alpha-numeric", "alphaNumeric"},
		{"alphaNumeric", "alphaNumeric"},
		{"required_without_all", "requiredWithoutAll"},
		{"  required ", "required"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, normalizeName(tt.in))
		})
	}
}
