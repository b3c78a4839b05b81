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

// Package schema provides composable, declarative validation of untyped
// values, the data shapes that decoding an external payload produces.
//
// # Getting Started
//
// Build a schema from leaves and composers, then apply it with
// [Schema.Validate]:
//
//	user := schema.Object(
//		schema.Field("name", schema.String().Required()),
//		schema.Field("email", schema.Email().Required()),
//		schema.Field("age", schema.Number().Nullable()),
//	)
//
//	result := user.Validate(ctx, payload)
//	if !result.Valid {
//		for _, e := range result.Errors {
//			fmt.Printf("%s: %s\n", e.PathString(), e.Message)
//		}
//	}
//
// Validation never panics on any input and reports every violation it
// finds in one pass: object fields and array items are all evaluated even
// after the first failure, and each error carries a root-to-leaf path
// into the nested input.
//
// # Leaves, Modifiers, Composers
//
// Leaves check one condition on one value: [String], [Number], [Boolean],
// [Date], [Email], [URL], [UUID], [MinLength], [MaxLength], [Min], [Max],
// [OneOf], and [Pattern]. Values pass through unchanged, with one
// exception: [Date] parses date strings into [time.Time].
//
// Modifiers derive new schemas from existing ones. [Schema.Required]
// rejects absent values, [Schema.Nullable] accepts nil, and
// [Schema.Custom] or [Schema.CustomCtx] attach arbitrary predicates.
// Every modifier returns a new immutable [Schema]; deriving variants from
// a shared base never aliases state.
//
// Composers build structure: [Object] validates a fixed field shape,
// [Array] applies one schema to every item, and [Union] accepts the first
// matching branch among alternatives.
//
// # Absence and Null
//
// The module distinguishes a value that is missing entirely from one that
// is present but null. Nil is null: [Schema.Nullable] accepts it and
// every bare leaf rejects it with code "nullable". The [Absent] sentinel
// is missing: the object composer passes it to field schemas whose key is
// not in the input, and only [Schema.Required] turns it into a "required"
// failure.
//
// # Error Model
//
// A failed [Result] carries one [FieldError] per violation, each with a
// stable code (for example [CodeRequired] or [CodeMinLength]), a
// human-readable message, and a segmented path. [Result.Err] bridges to
// the error idiom: it returns an [*Error] aggregate that unwraps to the
// [ErrValidation] sentinel and reports HTTP status 422.
//
// Messages resolve per failure site in priority order: a per-call
// [WithMessages] override, then the message fixed at schema construction,
// then the built-in default.
//
// # Validating Encoded Payloads
//
// [ValidateJSON], [ValidateYAML], [ValidateTOML], and [ValidateMsgPack]
// decode a raw payload and validate the result in one call:
//
//	result := schema.ValidateJSON(ctx, user, body)
//
// A payload that cannot be decoded fails with the single code
// [CodeDecode]; everything after decoding behaves exactly like
// [Schema.Validate].
//
// # JSON Schema Export
//
// [Schema.JSONSchema] exports the structural part of a schema as a JSON
// Schema document, and [CompileJSONSchema] compiles that document for
// interop with JSON Schema tooling. Custom predicates are opaque to the
// export.
//
// # Thread Safety
//
// A [Schema] is immutable and safe for concurrent use by any number of
// goroutines once built. Per-call options never leak between calls.
//
// # Standalone Usage
//
// This package can be used independently without the full Rivaas
// framework:
//
//	import "rivaas.dev/schema"
//
//	s := schema.String().Required()
//	result := s.Validate(ctx, value)
package schema
