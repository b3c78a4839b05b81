// Copyright 2026 The Rivaas Authors
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

package schema

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_MissingRequiredField(t *testing.T) {
	t.Parallel()
	user := Object(
		Field("name", String().Required()),
		Field("age", Number()),
	)

	res := user.Validate(t.Context(), map[string]any{"age": 30})
	require.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, []string{"name"}, res.Errors[0].Path)
	assert.Equal(t, CodeRequired, res.Errors[0].Code)
	assert.Equal(t, "Value is required", res.Errors[0].Message)
}

func TestObject_CollectAll(t *testing.T) {
	t.Parallel()
	// Every field individually invalid yields exactly one error per field,
	// in declaration order, each path starting with its field key.
	s := Object(
		Field("name", String()),
		Field("age", Number()),
		Field("active", Boolean()),
	)

	res := s.Validate(t.Context(), map[string]any{
		"name":   42,
		"age":    "old",
		"active": "yes",
	})
	require.False(t, res.Valid)
	require.Len(t, res.Errors, 3)
	assert.Equal(t, []string{"name"}, res.Errors[0].Path)
	assert.Equal(t, []string{"age"}, res.Errors[1].Path)
	assert.Equal(t, []string{"active"}, res.Errors[2].Path)
	for _, e := range res.Errors {
		assert.Equal(t, CodeType, e.Code)
	}
}

func TestObject_ShapeCheck(t *testing.T) {
	t.Parallel()
	s := Object(Field("name", String()))

	tests := []struct {
		name  string
		value any
	}{
		{name: "nil fails", value: nil},
		{name: "string fails", value: "not an object"},
		{name: "number fails", value: 42},
		{name: "slice fails", value: []any{1, 2}},
		{name: "int-keyed map fails", value: map[int]any{1: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := s.Validate(t.Context(), tt.value)
			require.False(t, res.Valid)
			require.Len(t, res.Errors, 1, "shape failure short-circuits field iteration")
			assert.Equal(t, CodeType, res.Errors[0].Code)
			assert.Equal(t, "Value must be an object", res.Errors[0].Message)
			assert.Empty(t, res.Errors[0].Path)
		})
	}
}

func TestObject_UnknownKeysIgnored(t *testing.T) {
	t.Parallel()
	s := Object(Field("name", String()))

	res := s.Validate(t.Context(), map[string]any{
		"name":  "Ada",
		"extra": "ignored",
	})
	require.True(t, res.Valid)
	out, ok := res.Value.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"name": "Ada"}, out, "unknown keys are not copied")
}

func TestObject_AssemblesFreshResult(t *testing.T) {
	t.Parallel()
	s := Object(
		Field("name", String()),
		Field("joined", Date()),
	)

	input := map[string]any{"name": "Ada", "joined": "2024-01-15"}
	res := s.Validate(t.Context(), input)
	require.True(t, res.Valid)

	out := res.Value.(map[string]any)
	assert.Equal(t, "Ada", out["name"])
	_, isTime := out["joined"].(time.Time)
	assert.True(t, isTime, "transformed values land in the result")
	_, isString := input["joined"].(string)
	assert.True(t, isString, "input map is never mutated")

	// The result is a different map instance.
	out["name"] = "changed"
	assert.Equal(t, "Ada", input["name"])
}

func TestObject_NonRequiredAbsentFieldStillFails(t *testing.T) {
	t.Parallel()
	// A field without a Required wrapper still validates Absent against
	// its leaf, which rejects it as a type mismatch.
	s := Object(Field("nickname", String()))

	res := s.Validate(t.Context(), map[string]any{})
	require.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, []string{"nickname"}, res.Errors[0].Path)
	assert.Equal(t, CodeType, res.Errors[0].Code)
}

func TestObject_NullableFieldAcceptsNil(t *testing.T) {
	t.Parallel()
	s := Object(Field("age", Number().Nullable()))

	res := s.Validate(t.Context(), map[string]any{"age": nil})
	require.True(t, res.Valid)
	out := res.Value.(map[string]any)
	val, present := out["age"]
	assert.True(t, present)
	assert.Nil(t, val)
}

func TestObject_NestedPathPrefixing(t *testing.T) {
	t.Parallel()
	s := Object(
		Field("address", Object(
			Field("city", String().Required()),
			Field("zip", Pattern(regexp.MustCompile(`^\d{5}$`))),
		)),
	)

	res := s.Validate(t.Context(), map[string]any{
		"address": map[string]any{"zip": "abc"},
	})
	require.False(t, res.Valid)
	require.Len(t, res.Errors, 2)
	assert.Equal(t, []string{"address", "city"}, res.Errors[0].Path)
	assert.Equal(t, []string{"address", "zip"}, res.Errors[1].Path)
	assert.Equal(t, "address.city", res.Errors[0].PathString())
}

func TestObject_StringKeyedMapKinds(t *testing.T) {
	t.Parallel()
	s := Object(Field("name", String()))

	// Non-any value types go through the reflective lookup.
	res := s.Validate(t.Context(), map[string]string{"name": "Ada"})
	require.True(t, res.Valid)
	out := res.Value.(map[string]any)
	assert.Equal(t, "Ada", out["name"])
}

func TestObject_DeclarationOrder(t *testing.T) {
	t.Parallel()
	// Errors surface in field declaration order, not input key order.
	s := Object(
		Field("b", Number()),
		Field("a", Number()),
	)

	res := s.Validate(t.Context(), map[string]any{"a": "x", "b": "y"})
	require.False(t, res.Valid)
	require.Len(t, res.Errors, 2)
	assert.Equal(t, []string{"b"}, res.Errors[0].Path)
	assert.Equal(t, []string{"a"}, res.Errors[1].Path)
}

func TestObject_Empty(t *testing.T) {
	t.Parallel()
	res := Object().Validate(t.Context(), map[string]any{"anything": 1})
	require.True(t, res.Valid)
	assert.Equal(t, map[string]any{}, res.Value)
}

func TestObject_ZeroFieldPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		Object(ObjectField{})
	})
}
