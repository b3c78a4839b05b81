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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func userSchema() Schema {
	return Object(
		Field("name", String().Required()),
		Field("age", Number().Nullable()),
	)
}

func TestValidateJSON(t *testing.T) {
	t.Parallel()

	t.Run("valid payload", func(t *testing.T) {
		t.Parallel()
		res := ValidateJSON(t.Context(), userSchema(), []byte(`{"name":"Ada","age":36}`))
		require.True(t, res.Valid)
		out := res.Value.(map[string]any)
		assert.Equal(t, "Ada", out["name"])
		assert.Equal(t, float64(36), out["age"], "JSON numbers decode to float64")
	})

	t.Run("json null is nil", func(t *testing.T) {
		t.Parallel()
		res := ValidateJSON(t.Context(), userSchema(), []byte(`{"name":"Ada","age":null}`))
		require.True(t, res.Valid)
		assert.Nil(t, res.Value.(map[string]any)["age"])
	})

	t.Run("violations keep paths", func(t *testing.T) {
		t.Parallel()
		res := ValidateJSON(t.Context(), userSchema(), []byte(`{"age":true}`))
		require.False(t, res.Valid)
		require.Len(t, res.Errors, 2)
		assert.Equal(t, []string{"name"}, res.Errors[0].Path)
		assert.Equal(t, CodeRequired, res.Errors[0].Code)
		assert.Equal(t, []string{"age"}, res.Errors[1].Path)
	})

	t.Run("malformed payload fails with decode code", func(t *testing.T) {
		t.Parallel()
		res := ValidateJSON(t.Context(), userSchema(), []byte(`{"name":`))
		require.False(t, res.Valid)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, CodeDecode, res.Errors[0].Code)
		assert.NotEmpty(t, res.Errors[0].Message)
	})

	t.Run("decode message override", func(t *testing.T) {
		t.Parallel()
		res := ValidateJSON(t.Context(), userSchema(), []byte(`not json`),
			WithMessage(CodeDecode, "body must be valid JSON"))
		require.False(t, res.Valid)
		assert.Equal(t, "body must be valid JSON", res.Errors[0].Message)
	})

	t.Run("top-level null against nullable schema", func(t *testing.T) {
		t.Parallel()
		res := ValidateJSON(t.Context(), String().Nullable(), []byte(`null`))
		require.True(t, res.Valid)
		assert.Nil(t, res.Value)
	})
}

func TestValidateYAML(t *testing.T) {
	t.Parallel()

	t.Run("valid payload", func(t *testing.T) {
		t.Parallel()
		body := []byte("name: Ada\nage: 36\n")
		res := ValidateYAML(t.Context(), userSchema(), body)
		require.True(t, res.Valid)
		out := res.Value.(map[string]any)
		assert.Equal(t, "Ada", out["name"])
		assert.Equal(t, 36, out["age"], "YAML integers decode to int")
	})

	t.Run("yaml null is nil", func(t *testing.T) {
		t.Parallel()
		body := []byte("name: Ada\nage: null\n")
		res := ValidateYAML(t.Context(), userSchema(), body)
		require.True(t, res.Valid)
		assert.Nil(t, res.Value.(map[string]any)["age"])
	})

	t.Run("malformed payload fails with decode code", func(t *testing.T) {
		t.Parallel()
		res := ValidateYAML(t.Context(), userSchema(), []byte("name: [unclosed\n"))
		require.False(t, res.Valid)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, CodeDecode, res.Errors[0].Code)
	})

	t.Run("agrees with json for the same document", func(t *testing.T) {
		t.Parallel()
		s := userSchema()
		fromJSON := ValidateJSON(t.Context(), s, []byte(`{"name":"Ada","age":36}`))
		fromYAML := ValidateYAML(t.Context(), s, []byte("name: Ada\nage: 36\n"))

		assert.Equal(t, fromJSON.Valid, fromYAML.Valid)

		badJSON := ValidateJSON(t.Context(), s, []byte(`{"age":36}`))
		badYAML := ValidateYAML(t.Context(), s, []byte("age: 36\n"))
		require.False(t, badJSON.Valid)
		require.False(t, badYAML.Valid)
		assert.Equal(t, badJSON.Errors[0].Code, badYAML.Errors[0].Code)
		assert.Equal(t, badJSON.Errors[0].Path, badYAML.Errors[0].Path)
	})
}

func TestValidateTOML(t *testing.T) {
	t.Parallel()

	t.Run("valid payload", func(t *testing.T) {
		t.Parallel()
		s := Object(
			Field("name", String().Required()),
			Field("port", Number()),
			Field("released", Date()),
		)
		body := []byte("name = \"rivaas\"\nport = 8080\nreleased = 2024-01-15T10:30:00Z\n")
		res := ValidateTOML(t.Context(), s, body)
		require.True(t, res.Valid)
		out := res.Value.(map[string]any)
		assert.Equal(t, "rivaas", out["name"])
		assert.Equal(t, int64(8080), out["port"], "TOML integers decode to int64")
		_, isTime := out["released"].(time.Time)
		assert.True(t, isTime, "TOML datetimes decode to time.Time")
	})

	t.Run("malformed payload fails with decode code", func(t *testing.T) {
		t.Parallel()
		res := ValidateTOML(t.Context(), userSchema(), []byte("= broken"))
		require.False(t, res.Valid)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, CodeDecode, res.Errors[0].Code)
	})
}

func TestValidateMsgPack(t *testing.T) {
	t.Parallel()

	t.Run("valid payload", func(t *testing.T) {
		t.Parallel()
		body, err := msgpack.Marshal(map[string]any{"name": "Ada", "age": 36})
		require.NoError(t, err)

		res := ValidateMsgPack(t.Context(), userSchema(), body)
		require.True(t, res.Valid)
		out := res.Value.(map[string]any)
		assert.Equal(t, "Ada", out["name"])
	})

	t.Run("msgpack nil is nil", func(t *testing.T) {
		t.Parallel()
		body, err := msgpack.Marshal(map[string]any{"name": "Ada", "age": nil})
		require.NoError(t, err)

		res := ValidateMsgPack(t.Context(), userSchema(), body)
		require.True(t, res.Valid)
		assert.Nil(t, res.Value.(map[string]any)["age"])
	})

	t.Run("violations keep paths", func(t *testing.T) {
		t.Parallel()
		body, err := msgpack.Marshal(map[string]any{"age": "old"})
		require.NoError(t, err)

		res := ValidateMsgPack(t.Context(), userSchema(), body)
		require.False(t, res.Valid)
		require.Len(t, res.Errors, 2)
		assert.Equal(t, CodeRequired, res.Errors[0].Code)
		assert.Equal(t, []string{"age"}, res.Errors[1].Path)
	})

	t.Run("truncated payload fails with decode code", func(t *testing.T) {
		t.Parallel()
		res := ValidateMsgPack(t.Context(), userSchema(), []byte{0xc1})
		require.False(t, res.Valid)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, CodeDecode, res.Errors[0].Code)
	})
}
