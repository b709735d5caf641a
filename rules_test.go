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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkRule runs one field/spec pair and reports the failing rule name, or ""
// when the data passes. Config mistakes fail the test immediately.
func checkRule(t *testing.T, data Data, field, spec string) string {
	t.Helper()

	err := Validate(context.Background(), data, Rules{field: spec})
	if err == nil {
		return ""
	}

	var verrs Errors
	require.ErrorAs(t, err, &verrs, "unexpected non-validation error: %v", err)

	return verrs[0].Validation
}

func TestRequiredFamily(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     Data
		field    string
		spec     string
		wantFail bool
	}{
		{name: "required present", data: Data{"age": 22}, field: "age", spec: "required"},
		{name: "required absent", data: Data{}, field: "age", spec: "required", wantFail: true},
		{name: "required empty string", data: Data{"age": ""}, field: "age", spec: "required", wantFail: true},
		{name: "required empty slice", data: Data{"tags": []any{}}, field: "tags", spec: "required", wantFail: true},
		{name: "required empty map", data: Data{"meta": map[string]any{}}, field: "meta", spec: "required", wantFail: true},
		{name: "required zero is a value", data: Data{"count": 0}, field: "count", spec: "required"},
		{name: "required false is a value", data: Data{"flag": false}, field: "flag", spec: "required"},

		{name: "requiredIf trigger present", data: Data{"card": "visa"}, field: "cvv", spec: "requiredIf:card", wantFail: true},
		{name: "requiredIf trigger absent", data: Data{}, field: "cvv", spec: "requiredIf:card"},
		{name: "requiredIf satisfied", data: Data{"card": "visa", "cvv": "123"}, field: "cvv", spec: "requiredIf:card"},

		{name: "requiredWhen value matches", data: Data{"type": "admin"}, field: "token", spec: "requiredWhen:type,admin", wantFail: true},
		{name: "requiredWhen value differs", data: Data{"type": "guest"}, field: "token", spec: "requiredWhen:type,admin"},

		{name: "requiredWithAny one present", data: Data{"email": "a@b.c"}, field: "password", spec: "requiredWithAny:email,phone", wantFail: true},
		{name: "requiredWithAny none present", data: Data{}, field: "password", spec: "requiredWithAny:email,phone"},

		{name: "requiredWithAll all present", data: Data{"email": "a@b.c", "phone": "1"}, field: "password", spec: "requiredWithAll:email,phone", wantFail: true},
		{name: "requiredWithAll one missing", data: Data{"email": "a@b.c"}, field: "password", spec: "requiredWithAll:email,phone"},

		{name: "requiredWithoutAny one missing", data: Data{"email": "a@b.c"}, field: "password", spec: "requiredWithoutAny:email,phone", wantFail: true},
		{name: "requiredWithoutAny all present", data: Data{"email": "a@b.c", "phone": "1"}, field: "password", spec: "requiredWithoutAny:email,phone"},

		{name: "requiredWithoutAll all missing", data: Data{}, field: "password", spec: "requiredWithoutAll:email,phone", wantFail: true},
		{name: "requiredWithoutAll one present", data: Data{"email": "a@b.c"}, field: "password", spec: "requiredWithoutAll:email,phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			failed := checkRule(t, tt.data, tt.field, tt.spec)
			if tt.wantFail {
				assert.NotEmpty(t, failed)
			} else {
				assert.Empty(t, failed)
			}
		})
	}
}

func TestTypeRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spec     string
		value    any
		wantFail bool
	}{
		{spec: "alpha", value: "hello"},
		{spec: "alpha", value: "hello1", wantFail: true},
		{spec: "alphaNumeric", value: "hello1"},
		{spec: "alphaNumeric", value: "hello 1", wantFail: true},
		{spec: "number", value: "18.5"},
		{spec: "number", value: 18},
		{spec: "number", value: "eighteen", wantFail: true},
		{spec: "float", value: 18.5},
		{spec: "float", value: "18.5"},
		{spec: "float", value: 18, wantFail: true},
		{spec: "float", value: "eighteen", wantFail: true},
		{spec: "integer", value: 18},
		{spec: "integer", value: "18"},
		{spec: "integer", value: "18.5", wantFail: true},
		{spec: "boolean", value: true},
		{spec: "boolean", value: "true"},
		{spec: "boolean", value: "yes", wantFail: true},
		{spec: "email", value: "cat@example.com"},
		{spec: "email", value: "not-an-email", wantFail: true},
		{spec: "url", value: "https://example.com/x"},
		{spec: "url", value: "nope", wantFail: true},
		{spec: "ip", value: "192.168.1.1"},
		{spec: "ipv4", value: "192.168.1.1"},
		{spec: "ipv4", value: "::1", wantFail: true},
		{spec: "ipv6", value: "::1"},
		{spec: "json", value: `{"a":1}`},
		{spec: "json", value: `{"a":`, wantFail: true},
		{spec: "uuid", value: "6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
		{spec: "uuid", value: "not-a-uuid", wantFail: true},
		{spec: "array", value: []any{1, 2}},
		{spec: "array", value: "nope", wantFail: true},
		{spec: "object", value: map[string]any{"a": 1}},
		{spec: "object", value: []any{}, wantFail: true},
		{spec: "string", value: "s"},
		{spec: "string", value: 1, wantFail: true},
		{spec: "accepted", value: true},
		{spec: "accepted", value: "yes"},
		{spec: "accepted", value: "no", wantFail: true},
		{spec: "regex:^ab+$", value: "abbb"},
		{spec: "regex:^ab+$", value: "abc", wantFail: true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			t.Parallel()
			failed := checkRule(t, Data{"v": tt.value}, "v", tt.spec)
			if tt.wantFail {
				assert.NotEmpty(t, failed, "value %v should fail %s", tt.value, tt.spec)
			} else {
				assert.Empty(t, failed, "value %v should pass %s", tt.value, tt.spec)
			}
		})
	}
}

func TestRegexRule_BadPattern(t *testing.T) {
	t.Parallel()

	err := Validate(context.Background(), Data{"v": "x"}, Rules{"v": "regex:(["})
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "regex", cerr.Rule)
}

func TestRegexRule_CommaInPattern(t *testing.T) {
	t.Parallel()

	// Commas split rule arguments, but regex joins them back together.
	assert.Empty(t, checkRule(t, Data{"v": "ab"}, "v", `regex:^a{1,2}b$`))
	assert.NotEmpty(t, checkRule(t, Data{"v": "aaab"}, "v", `regex:^a{1,2}b$`))
}

func TestCompareRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     Data
		field    string
		spec     string
		wantFail bool
	}{
		{name: "in member", data: Data{"color": "red"}, field: "color", spec: "in:red,green,blue"},
		{name: "in non-member", data: Data{"color": "pink"}, field: "color", spec: "in:red,green,blue", wantFail: true},
		{name: "in numeric coercion", data: Data{"n": 2}, field: "n", spec: "in:1,2,3"},
		{name: "notIn member", data: Data{"color": "red"}, field: "color", spec: "notIn:red,green", wantFail: true},
		{name: "notIn non-member", data: Data{"color": "pink"}, field: "color", spec: "notIn:red,green"},

		{name: "equals match", data: Data{"plan": "pro"}, field: "plan", spec: "equals:pro"},
		{name: "equals mismatch", data: Data{"plan": "free"}, field: "plan", spec: "equals:pro", wantFail: true},
		{name: "notEquals mismatch", data: Data{"plan": "free"}, field: "plan", spec: "notEquals:pro"},

		{name: "same match", data: Data{"a": "x", "b": "x"}, field: "a", spec: "same:b"},
		{name: "same mismatch", data: Data{"a": "x", "b": "y"}, field: "a", spec: "same:b", wantFail: true},
		{name: "same counterpart absent", data: Data{"a": "x"}, field: "a", spec: "same:b"},
		{name: "different mismatch", data: Data{"a": "x", "b": "y"}, field: "a", spec: "different:b"},
		{name: "different match", data: Data{"a": "x", "b": "x"}, field: "a", spec: "different:b", wantFail: true},

		{name: "confirmed match", data: Data{"password": "s3cret", "password_confirmation": "s3cret"}, field: "password", spec: "confirmed"},
		{name: "confirmed mismatch", data: Data{"password": "s3cret", "password_confirmation": "typo"}, field: "password", spec: "confirmed", wantFail: true},
		{name: "confirmed counterpart absent", data: Data{"password": "s3cret"}, field: "password", spec: "confirmed"},

		{name: "startsWith", data: Data{"sku": "AB-123"}, field: "sku", spec: "startsWith:AB-"},
		{name: "startsWith mismatch", data: Data{"sku": "CD-123"}, field: "sku", spec: "startsWith:AB-", wantFail: true},
		{name: "endsWith", data: Data{"file": "report.pdf"}, field: "file", spec: "endsWith:.pdf"},
		{name: "includes", data: Data{"url": "https://example.com/a"}, field: "url", spec: "includes:example.com"},
		{name: "includes mismatch", data: Data{"url": "https://other.io/a"}, field: "url", spec: "includes:example.com", wantFail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			failed := checkRule(t, tt.data, tt.field, tt.spec)
			if tt.wantFail {
				assert.NotEmpty(t, failed)
			} else {
				assert.Empty(t, failed)
			}
		})
	}
}

func TestDateRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    any
		spec     string
		wantFail bool
	}{
		{name: "date iso", value: "2026-08-31", spec: "date"},
		{name: "date timestamp keeps colons", value: "2026-08-31T10:00:00Z", spec: "date"},
		{name: "date garbage", value: "yesterday-ish", spec: "date", wantFail: true},

		{name: "dateFormat match", value: "31/08/2026", spec: "dateFormat:02/01/2006"},
		{name: "dateFormat mismatch", value: "2026-08-31", spec: "dateFormat:02/01/2006", wantFail: true},

		{name: "before ok", value: "2025-01-01", spec: "before:2026-01-01"},
		{name: "before same day", value: "2026-01-01", spec: "before:2026-01-01", wantFail: true},
		{name: "after ok", value: "2027-01-01", spec: "after:2026-01-01"},
		{name: "after too early", value: "2025-01-01", spec: "after:2026-01-01", wantFail: true},

		{name: "beforeOrEqual same day", value: "2026-01-01", spec: "beforeOrEqual:2026-01-01"},
		{name: "afterOrEqual same day", value: "2026-01-01", spec: "afterOrEqual:2026-01-01"},
		{name: "afterOrEqual too early", value: "2025-12-31", spec: "afterOrEqual:2026-01-01", wantFail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			failed := checkRule(t, Data{"when": tt.value}, "when", tt.spec)
			if tt.wantFail {
				assert.NotEmpty(t, failed)
			} else {
				assert.Empty(t, failed)
			}
		})
	}
}

func TestDateRules_BadReference(t *testing.T) {
	t.Parallel()

	err := Validate(context.Background(), Data{"when": "2026-01-01"}, Rules{"when": "before:not-a-date"})
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "before", cerr.Rule)
}

func TestSizeRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     Data
		field    string
		spec     string
		wantFail bool
	}{
		{name: "min string length", data: Data{"name": "Ada"}, field: "name", spec: "min:3"},
		{name: "min string too short", data: Data{"name": "Al"}, field: "name", spec: "min:3", wantFail: true},
		{name: "min unicode counts runes", data: Data{"name": "héllo"}, field: "name", spec: "min:5"},
		{name: "max string length", data: Data{"name": "Ada"}, field: "name", spec: "max:3"},
		{name: "max string too long", data: Data{"name": "Adalovelace"}, field: "name", spec: "max:3", wantFail: true},
		{name: "size exact", data: Data{"pin": "1234"}, field: "pin", spec: "size:4"},
		{name: "size off by one", data: Data{"pin": "123"}, field: "pin", spec: "size:4", wantFail: true},
		{name: "min array elements", data: Data{"tags": []any{"a", "b"}}, field: "tags", spec: "min:2"},
		{name: "max array elements", data: Data{"tags": []any{"a", "b", "c"}}, field: "tags", spec: "max:2", wantFail: true},
		{name: "min numeric with sibling", data: Data{"age": 21}, field: "age", spec: "number|min:18"},
		{name: "above strict", data: Data{"age": 18}, field: "age", spec: "number|above:18", wantFail: true},
		{name: "above passing", data: Data{"age": 19}, field: "age", spec: "number|above:18"},
		{name: "under strict", data: Data{"age": 18}, field: "age", spec: "number|under:18", wantFail: true},
		{name: "under passing", data: Data{"age": 17}, field: "age", spec: "number|under:18"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			failed := checkRule(t, tt.data, tt.field, tt.spec)
			if tt.wantFail {
				assert.NotEmpty(t, failed)
			} else {
				assert.Empty(t, failed)
			}
		})
	}
}

func TestSizeRules_LenAlias(t *testing.T) {
	t.Parallel()

	rules := ParseRules("len:4")
	require.Len(t, rules, 1)
	assert.Equal(t, "size", rules[0].Name, "len normalizes to the canonical size rule")

	assert.Empty(t, checkRule(t, Data{"pin": "1234"}, "pin", "len:4"))
	assert.Equal(t, "size", checkRule(t, Data{"pin": "123"}, "pin", "len:4"))
}

func TestSizeRules_BadArgument(t *testing.T) {
	t.Parallel()

	for _, spec := range []string{"min", "min:abc", "size:"} {
		err := Validate(context.Background(), Data{"v": "xx"}, Rules{"v": spec})
		var cerr *ConfigError
		require.ErrorAs(t, err, &cerr, "spec %q", spec)
	}
}
