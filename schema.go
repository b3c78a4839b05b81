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

import "context"

// node is a single element of a schema tree: a leaf check, a modifier
// wrapper, or a composer. Nodes are immutable after construction and read
// the per-call config without ever mutating it.
type node interface {
	validate(ctx context.Context, value any, cfg *config) Result
	jsonSchema() map[string]any
}

// Schema is an immutable, composable validation capability. Build leaves
// with [String], [Number], [Object], and the other builders, derive
// variants with [Schema.Required], [Schema.Nullable], and [Schema.Custom],
// and apply the result with [Schema.Validate].
//
// Every modifier returns a new Schema wrapping the previous one; deriving
// variants from a shared base never aliases state:
//
//	base := schema.String()
//	a := base.Required() // base unchanged
//	b := base.Nullable() // a unchanged
//
// A Schema is safe for concurrent use by any number of goroutines once
// constructed. The zero value is not usable; always start from a builder.
type Schema struct {
	node node
}

// Validate checks value against the schema and reports the outcome as a
// [Result]. It never panics on any input value and never mutates the
// input. Violations are collected exhaustively: object and array schemas
// evaluate every field and item even after the first failure.
//
// The context is passed through to predicates registered with
// [Schema.CustomCtx]; the engine itself installs no deadline. A nil ctx is
// treated as context.Background().
//
// Example:
//
//	user := schema.Object(
//	    schema.Field("name", schema.String().Required()),
//	    schema.Field("age", schema.Number()),
//	)
//	result := user.Validate(ctx, payload)
//	if !result.Valid {
//	    for _, e := range result.Errors {
//	        log.Printf("%s: %s", e.PathString(), e.Message)
//	    }
//	}
func (s Schema) Validate(ctx context.Context, value any, opts ...Option) Result {
	if s.node == nil {
		panic("schema: Validate called on zero-value Schema; construct with a builder")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	return s.node.validate(ctx, value, applyOptions(opts...))
}

// absent is the type of the [Absent] sentinel.
type absent struct{}

// String implements fmt.Stringer so absent values print legibly.
func (absent) String() string {
	return "<absent>"
}

// Absent marks a value that is missing entirely, as opposed to present but
// nil. The object composer passes Absent to field schemas whose key is not
// in the input map; [Schema.Required] fails exactly on Absent. Callers
// validating standalone values may pass Absent explicitly to exercise
// required semantics:
//
//	schema.String().Required().Validate(ctx, schema.Absent) // fails with code "required"
//
// Leaves that receive Absent without a Required wrapper reject it as a
// type mismatch, the same as any other non-conforming value.
var Absent = absent{}

// firstMessage extracts the optional construction-time message from a
// builder's variadic parameter.
func firstMessage(message []string) string {
	if len(message) > 0 {
		return message[0]
	}

	return ""
}
