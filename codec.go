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
	"context"
	"encoding/json"

	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// ValidateJSON decodes a JSON payload and validates the decoded value
// against s. An undecodable payload yields an invalid [Result] with a
// single error of code [CodeDecode] carrying the decoder's message; a
// decoded payload is validated exactly as if its value had been passed to
// [Schema.Validate].
//
// JSON null decodes to nil, numbers to float64, objects to
// map[string]any, and arrays to []any, the shapes every composer and
// leaf in this module accepts directly.
//
// Example:
//
//	result := schema.ValidateJSON(ctx, user, []byte(`{"name":"Ada"}`))
func ValidateJSON(ctx context.Context, s Schema, data []byte, opts ...Option) Result {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return decodeFailure(applyOptions(opts...), err)
	}

	return s.Validate(ctx, v, opts...)
}

// ValidateYAML decodes a YAML payload and validates the decoded value
// against s, with the same contract as [ValidateJSON]. YAML null decodes
// to nil, integers to int, floats to float64, and unquoted timestamps to
// [time.Time], which the [Date] leaf accepts as-is.
func ValidateYAML(ctx context.Context, s Schema, data []byte, opts ...Option) Result {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return decodeFailure(applyOptions(opts...), err)
	}

	return s.Validate(ctx, v, opts...)
}

// ValidateTOML decodes a TOML payload and validates the decoded value
// against s, with the same contract as [ValidateJSON]. TOML has no null;
// integers decode to int64, floats to float64, and datetimes to
// [time.Time]. The top level of a TOML document is always a table, so the
// schema is normally an [Object].
func ValidateTOML(ctx context.Context, s Schema, data []byte, opts ...Option) Result {
	var v any
	if _, err := toml.Decode(string(data), &v); err != nil {
		return decodeFailure(applyOptions(opts...), err)
	}

	return s.Validate(ctx, v, opts...)
}

// ValidateMsgPack decodes a MessagePack payload and validates the decoded
// value against s, with the same contract as [ValidateJSON]. MessagePack
// nil decodes to nil, integers to the smallest signed or unsigned kind
// that fits, and maps with string keys to map[string]any; the [Number]
// leaf and its bounds accept every integer kind.
func ValidateMsgPack(ctx context.Context, s Schema, data []byte, opts ...Option) Result {
	var v any
	if err := msgpack.Unmarshal(data, &v); err != nil {
		return decodeFailure(applyOptions(opts...), err)
	}

	return s.Validate(ctx, v, opts...)
}

// decodeFailure reports an undecodable payload. The decoder's own message
// is the fallback so overrides via [WithMessages] still apply.
func decodeFailure(cfg *config, err error) Result {
	return invalid(FieldError{
		Code:    CodeDecode,
		Message: cfg.messageFor(CodeDecode, "", err.Error()),
	})
}
