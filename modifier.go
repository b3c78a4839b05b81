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

// Default messages for modifier failures.
const (
	msgRequired = "Value is required"
	msgCustom   = "Value is invalid"
)

// Required returns a schema that fails with code [CodeRequired] when the
// value is [Absent], and delegates to the wrapped schema otherwise. The
// optional message overrides the default "Value is required".
//
// Required decides absence only; nil is not absence. A nil value passed to
// a required schema is judged by the wrapped schema (a [Schema.Nullable]
// wrapper accepts it, a bare leaf rejects it with code [CodeNullable]).
//
// Example:
//
//	s := schema.String().Required("name is mandatory")
//	s.Validate(ctx, schema.Absent) // fails with "name is mandatory"
func (s Schema) Required(message ...string) Schema {
	return Schema{node: requiredNode{inner: s.mustNode(), message: firstMessage(message)}}
}

// Nullable returns a schema that succeeds with a nil value when the input
// is nil, and delegates to the wrapped schema otherwise. Nil means the
// untyped nil interface, the representation every decoder in this module
// produces for a null in the payload.
//
// Nullable dominates: nil accepted here bypasses type and custom checks
// regardless of any [Schema.Required] wrapper, since nil is present, not
// absent.
//
// Example:
//
//	s := schema.String().Nullable()
//	s.Validate(ctx, nil) // succeeds with value nil
func (s Schema) Nullable() Schema {
	return Schema{node: nullableNode{inner: s.mustNode()}}
}

// Custom returns a schema that runs fn after the wrapped schema succeeds.
// The predicate receives the value produced by the wrapped schema, after
// any transformation, so a predicate on a [Date] schema sees a [time.Time]
// even when the input was a string. A non-nil predicate error fails the
// schema with code [CodeCustom].
//
// Message resolution for custom failures adds one step to the usual order:
// per-call override, then the construction message given here, then the
// predicate's own error text, then the default "Value is invalid".
//
// If the wrapped schema fails, its errors are returned unchanged and the
// predicate does not run. A nil value accepted by a [Schema.Nullable]
// wrapper also bypasses the predicate.
//
// Example:
//
//	adult := schema.Number().Custom(func(v any) error {
//	    if v.(float64) < 18 {
//	        return errors.New("must be 18 or older")
//	    }
//	    return nil
//	})
func (s Schema) Custom(fn func(value any) error, message ...string) Schema {
	if fn == nil {
		panic("schema: Custom/CustomCtx requires a non-nil predicate")
	}

	return s.CustomCtx(func(_ context.Context, value any) error {
		return fn(value)
	}, message...)
}

// CustomCtx is [Schema.Custom] for predicates that block on I/O: fn
// receives the context given to [Schema.Validate] and should honor its
// cancellation. Because every node in a schema tree evaluates
// synchronously, a blocking predicate nested anywhere inside an object,
// array, or union is waited on before the composite aggregates; there is
// no way for a pending check to be misread as a success.
//
// Example:
//
//	unique := schema.Email().CustomCtx(func(ctx context.Context, v any) error {
//	    return store.CheckEmailFree(ctx, v.(string))
//	}, "email is already taken")
func (s Schema) CustomCtx(fn func(ctx context.Context, value any) error, message ...string) Schema {
	if fn == nil {
		panic("schema: Custom/CustomCtx requires a non-nil predicate")
	}

	return Schema{node: customNode{inner: s.mustNode(), fn: fn, message: firstMessage(message)}}
}

// mustNode guards builders and modifiers against zero-value schemas so
// misuse surfaces at construction time with a clear message instead of a
// nil dereference during validation.
func (s Schema) mustNode() node {
	if s.node == nil {
		panic("schema: use of zero-value Schema; construct with a builder")
	}

	return s.node
}

// isAbsent reports whether value is the [Absent] sentinel.
func isAbsent(value any) bool {
	_, ok := value.(absent)

	return ok
}

// requiredNode fails on [Absent] and delegates otherwise.
type requiredNode struct {
	inner   node
	message string
}

func (n requiredNode) validate(ctx context.Context, value any, cfg *config) Result {
	if isAbsent(value) {
		return invalid(FieldError{
			Code:    CodeRequired,
			Message: cfg.messageFor(CodeRequired, n.message, msgRequired),
		})
	}

	return n.inner.validate(ctx, value, cfg)
}

func (n requiredNode) jsonSchema() map[string]any {
	return n.inner.jsonSchema()
}

// nullableNode accepts nil and delegates otherwise.
type nullableNode struct {
	inner node
}

func (n nullableNode) validate(ctx context.Context, value any, cfg *config) Result {
	if value == nil {
		return valid(nil)
	}

	return n.inner.validate(ctx, value, cfg)
}

func (n nullableNode) jsonSchema() map[string]any {
	return map[string]any{
		"anyOf": []any{
			n.inner.jsonSchema(),
			map[string]any{"type": "null"},
		},
	}
}

// customNode runs a user predicate against the inner schema's validated
// value.
type customNode struct {
	inner   node
	fn      func(ctx context.Context, value any) error
	message string
}

func (n customNode) validate(ctx context.Context, value any, cfg *config) Result {
	res := n.inner.validate(ctx, value, cfg)
	if !res.Valid {
		return res
	}
	// Nullable dominance: a nil the inner schema accepted bypasses the
	// predicate.
	if value == nil {
		return res
	}

	if err := n.fn(ctx, res.Value); err != nil {
		fallback := msgCustom
		if text := err.Error(); text != "" {
			fallback = text
		}

		return invalid(FieldError{
			Code:    CodeCustom,
			Message: cfg.messageFor(CodeCustom, n.message, fallback),
		})
	}

	return res
}

func (n customNode) jsonSchema() map[string]any {
	// Predicates are opaque; export the structural part only.
	return n.inner.jsonSchema()
}
