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
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// JSONSchema exports the structural part of the schema as a JSON Schema
// document compatible with draft 2020-12, for documentation and interop
// with JSON Schema tooling.
//
// The mapping is structural:
//   - string leaves export "type":"string" plus their keyword (format,
//     minLength, maxLength, pattern, enum)
//   - numeric leaves export "type":"number" plus minimum/maximum
//   - dates export "type":"string" with "format":"date-time"
//   - objects export properties, with a required array listing fields
//     whose schema carries a [Schema.Required] wrapper
//   - arrays export items, unions and [Schema.Nullable] export anyOf
//
// Custom predicates are opaque and do not appear in the export, so a
// document accepted by the exported schema may still be rejected by
// [Schema.Validate]. The returned map is freshly built on every call and
// safe for the caller to modify.
//
// Example:
//
//	doc := schema.Object(
//	    schema.Field("email", schema.Email().Required()),
//	).JSONSchema()
//	// {"type":"object","properties":{"email":{"type":"string","format":"email"}},"required":["email"]}
func (s Schema) JSONSchema() map[string]any {
	return s.mustNode().jsonSchema()
}

// CompileJSONSchema compiles the document produced by [Schema.JSONSchema]
// into a validator from github.com/santhosh-tekuri/jsonschema, with format
// assertions enabled. Use it to hand a schema built here to tooling that
// speaks JSON Schema.
//
// Example:
//
//	compiled, err := schema.CompileJSONSchema(user)
//	if err != nil {
//	    return err
//	}
//	err = compiled.Validate(decodedPayload)
func CompileJSONSchema(s Schema) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(s.JSONSchema())
	if err != nil {
		return nil, fmt.Errorf("marshal schema document: %w", err)
	}

	// Round-trip through encoding/json so the document carries the plain
	// decoded forms (float64 numbers, []any arrays) the compiler expects.
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid schema document: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat()  // Enable format validation
	compiler.AssertContent() // Enable content validation

	if err := compiler.AddResource("schema.json", doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return compiled, nil
}

// isRequired reports whether a subtree carries a required wrapper above
// its structural core. Nullable and custom wrappers are transparent to
// the walk; composers and leaves end it.
func isRequired(n node) bool {
	switch t := n.(type) {
	case requiredNode:
		return true
	case nullableNode:
		return isRequired(t.inner)
	case customNode:
		return isRequired(t.inner)
	default:
		return false
	}
}
