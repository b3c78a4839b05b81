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

// Result is the outcome of validating a value against a [Schema].
// Validation never panics and never returns a bare error; every outcome,
// including malformed input of any shape, is reported as a Result.
//
// Exactly one of the two states holds:
//   - Valid is true, Errors is empty, and Value holds the validated value.
//     Value may legitimately be nil (a nullable schema applied to nil).
//   - Valid is false, Value is nil, and Errors holds every violation found.
//
// Composites assemble fresh values: an object schema returns a new
// map[string]any and an array schema a new []any, so the input is never
// mutated. Leaves return the input unchanged except for the date leaf,
// which converts date strings to [time.Time].
type Result struct {
	Valid  bool         `json:"valid"`            // True if validation succeeded
	Value  any          `json:"value,omitempty"`  // Validated (possibly transformed) value
	Errors []FieldError `json:"errors,omitempty"` // All violations, root-to-leaf paths
}

// Err bridges Result to the Go error idiom: it returns nil when the result
// is valid and an [*Error] aggregating all field errors otherwise.
//
// Example:
//
//	if err := s.Validate(ctx, payload).Err(); err != nil {
//	    return fmt.Errorf("reject payload: %w", err)
//	}
func (r Result) Err() error {
	if r.Valid {
		return nil
	}

	return &Error{Fields: r.Errors}
}

// valid returns a successful Result carrying the validated value.
func valid(value any) Result {
	return Result{Valid: true, Value: value}
}

// invalid returns a failed Result carrying the given errors.
func invalid(errs ...FieldError) Result {
	return Result{Valid: false, Errors: errs}
}
