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
	"reflect"
)

// Default message for object shape failures.
const msgObject = "Value must be an object"

// ObjectField pairs a field name with its schema. Build with [Field] and
// pass to [Object].
type ObjectField struct {
	name   string
	schema node
}

// Field declares one object field. Fields are validated in the order they
// are passed to [Object].
func Field(name string, s Schema) ObjectField {
	return ObjectField{name: name, schema: s.mustNode()}
}

// Object returns a schema that validates a fixed mapping of field names to
// child schemas. Input must be a map with string keys (map[string]any from
// any of the decoders, or any other string-keyed map kind); anything else
// fails immediately with a single type error.
//
// Every declared field is validated even after earlier fields fail, so one
// call reports every violation. Child errors get the field name prepended
// to their path. Fields missing from the input are validated against
// [Absent]; input keys with no declared schema are silently ignored and do
// not appear in the result.
//
// On success the result value is a freshly assembled map[string]any holding
// each field's validated value; the input map is never mutated.
//
// Example:
//
//	user := schema.Object(
//	    schema.Field("name", schema.String().Required()),
//	    schema.Field("email", schema.Email()),
//	)
//	r := user.Validate(ctx, map[string]any{"email": 7})
//	// invalid: name "Value is required", email "Value must be a string"
func Object(fields ...ObjectField) Schema {
	owned := make([]ObjectField, len(fields))
	copy(owned, fields)
	for _, f := range owned {
		if f.schema == nil {
			panic("schema: Object fields must be built with Field")
		}
	}

	return Schema{node: objectNode{fields: owned}}
}

// objectNode validates declared fields in declaration order with a
// collect-all policy.
type objectNode struct {
	fields []ObjectField
}

func (n objectNode) validate(ctx context.Context, value any, cfg *config) Result {
	lookup, ok := stringKeyedMap(value)
	if !ok {
		return invalid(FieldError{
			Code:    CodeType,
			Message: cfg.messageFor(CodeType, "", msgObject),
		})
	}

	out := make(map[string]any, len(n.fields))
	var errs []FieldError
	for _, f := range n.fields {
		fv, present := lookup(f.name)
		if !present {
			fv = Absent
		}

		res := f.schema.validate(ctx, fv, cfg)
		if !res.Valid {
			errs = append(errs, prefixPath(f.name, res.Errors)...)
			continue
		}
		out[f.name] = res.Value
	}

	if len(errs) > 0 {
		return invalid(errs...)
	}

	return valid(out)
}

func (n objectNode) jsonSchema() map[string]any {
	props := make(map[string]any, len(n.fields))
	var required []any
	for _, f := range n.fields {
		props[f.name] = f.schema.jsonSchema()
		if isRequired(f.schema) {
			required = append(required, f.name)
		}
	}

	doc := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		doc["required"] = required
	}

	return doc
}

// stringKeyedMap returns a key-lookup view over any map with string keys,
// or ok=false when the value is not of record shape. The common decoder
// output map[string]any takes the fast path; other string-keyed map kinds
// go through reflection.
func stringKeyedMap(value any) (func(key string) (any, bool), bool) {
	if m, ok := value.(map[string]any); ok {
		return func(key string) (any, bool) {
			v, present := m[key]

			return v, present
		}, true
	}

	rv := reflect.ValueOf(value)
	if !rv.IsValid() || rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	keyType := rv.Type().Key()

	return func(key string) (any, bool) {
		v := rv.MapIndex(reflect.ValueOf(key).Convert(keyType))
		if !v.IsValid() {
			return nil, false
		}

		return v.Interface(), true
	}, true
}
