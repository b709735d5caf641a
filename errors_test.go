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
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldError(t *testing.T) {
	t.Parallel()

	fe := FieldError{Field: "age", Validation: "required", Message: "age is required"}
	assert.Equal(t, "age: age is required", fe.Error())
	assert.ErrorIs(t, fe, ErrValidation)

	assert.Equal(t, "something broke", FieldError{Message: "something broke"}.Error())
}

func TestFieldError_JSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(FieldError{
		Field:      "people.0.email",
		Validation: "email",
		Message:    "people.0.email must be a valid email address",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"field": "people.0.email",
		"validation": "email",
		"message": "people.0.email must be a valid email address"
	}`, string(b))
}

func TestErrors(t *testing.T) {
	t.Parallel()

	verrs := Errors{
		{Field: "age", Validation: "required", Message: "age is required"},
		{Field: "name", Validation: "alpha", Message: "name must contain letters only"},
		{Field: "name", Validation: "min", Message: "name must be at least 3"},
	}

	assert.ErrorIs(t, verrs, ErrValidation)
	assert.Contains(t, verrs.Error(), "age is required")
	assert.Contains(t, verrs.Error(), "name must be at least 3")

	assert.True(t, verrs.Has("age"))
	assert.False(t, verrs.Has("phone"))

	assert.Equal(t, "name must contain letters only", verrs.First("name"))
	assert.Empty(t, verrs.First("phone"))

	assert.Equal(t, []string{"name must contain letters only", "name must be at least 3"}, verrs.Get("name"))
	assert.Empty(t, verrs.Get("phone"))

	assert.Equal(t, []string{"age", "name"}, verrs.Fields())
}

func TestErrors_SingleAndEmpty(t *testing.T) {
	t.Parallel()

	one := Errors{{Field: "age", Message: "age is required"}}
	assert.Equal(t, "age: age is required", one.Error())

	assert.Empty(t, Errors{}.Error())
}

func TestConfigError(t *testing.T) {
	t.Parallel()

	cerr := &ConfigError{Rule: "foo", Reason: "is not defined as a validation rule"}
	assert.Equal(t, `validation config: rule "foo" is not defined as a validation rule`, cerr.Error())
	assert.ErrorIs(t, cerr, ErrConfig)
	assert.False(t, errors.Is(cerr, ErrValidation))

	bare := &ConfigError{Reason: "unsupported rule spec type int"}
	assert.Equal(t, "validation config: unsupported rule spec type int", bare.Error())
}
