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
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrValidation is a sentinel error for validation failures.
// Use errors.Is(err, ErrValidation) to check if an error is a validation error.
var ErrValidation = errors.New("validation")

// Stable error codes reported in [FieldError.Code] and recognized as keys
// by [WithMessages] overrides.
const (
	// CodeRequired is reported when a required value is absent.
	CodeRequired = "required"

	// CodeNullable is reported when a non-nullable value is nil.
	CodeNullable = "nullable"

	// CodeType is reported when a value has the wrong primitive type or shape.
	CodeType = "type"

	// CodeDate is reported when a date string cannot be parsed.
	CodeDate = "date"

	// CodeEmail is reported when a string is not a valid email address.
	CodeEmail = "email"

	// CodeURL is reported when a string is not a valid URL.
	CodeURL = "url"

	// CodeUUID is reported when a string is not a valid UUID.
	CodeUUID = "uuid"

	// CodeMinLength is reported when a string is shorter than the configured bound.
	CodeMinLength = "minLength"

	// CodeMaxLength is reported when a string is longer than the configured bound.
	CodeMaxLength = "maxLength"

	// CodeMin is reported when a number is below the configured bound.
	CodeMin = "min"

	// CodeMax is reported when a number is above the configured bound.
	CodeMax = "max"

	// CodeOneOf is reported when a string is not in the allowed set.
	CodeOneOf = "oneOf"

	// CodePattern is reported when a string does not match the configured pattern.
	CodePattern = "pattern"

	// CodeCustom is reported when a custom predicate rejects a value.
	CodeCustom = "custom"

	// CodeUnion is reported when no union branch matches a value.
	CodeUnion = "union"

	// CodeDecode is reported by the decode helpers when a payload cannot be decoded.
	CodeDecode = "decode"
)

// FieldError represents a single validation error for a specific location
// in the input. Multiple FieldError values are collected in an [Error].
//
// Path is empty at the point of origin and gains segments as the error
// propagates outward through object and array composers, so the final
// path reads root-to-leaf.
//
// Example:
//
//	err := FieldError{
//	    Path:    []string{"items", "2", "price"},
//	    Code:    "type",
//	    Message: "Value must be a number",
//	}
type FieldError struct {
	Path    []string       `json:"path"`           // Path segments (e.g., ["items", "2", "price"])
	Code    string         `json:"code"`           // Stable code (e.g., "required", "minLength")
	Message string         `json:"message"`        // Human-readable message
	Meta    map[string]any `json:"meta,omitempty"` // Additional metadata (rule parameters, etc.)
}

// PathString returns the path joined with dots (e.g., "items.2.price"),
// or the empty string for a root-level error.
func (e FieldError) PathString() string {
	return strings.Join(e.Path, ".")
}

// Error returns a formatted error message as "path: message" or just "message"
// if the path is empty.
func (e FieldError) Error() string {
	if len(e.Path) == 0 {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.PathString(), e.Message)
}

// Unwrap returns [ErrValidation] for errors.Is/errors.As compatibility.
func (e FieldError) Unwrap() error {
	return ErrValidation
}

// HTTPStatus implements rivaas.dev/errors.ErrorType.
func (e FieldError) HTTPStatus() int {
	return 422 // Unprocessable Entity
}

// prefixPath returns a copy of errs with segment prepended to every error's
// path. Each returned error gets a fresh path slice so callers never alias
// a child result's backing array.
func prefixPath(segment string, errs []FieldError) []FieldError {
	out := make([]FieldError, len(errs))
	for i, e := range errs {
		path := make([]string, 0, len(e.Path)+1)
		path = append(path, segment)
		path = append(path, e.Path...)
		e.Path = path
		out[i] = e
	}

	return out
}

// Error represents validation errors for one or more locations in the input.
// Error implements error and can be used with errors.Is/errors.As.
// It contains a slice of [FieldError] values, one for each violation found.
//
// Example:
//
//	var verr *Error
//	if errors.As(result.Err(), &verr) {
//	    for _, fieldErr := range verr.Fields {
//	        fmt.Printf("%s: %s\n", fieldErr.PathString(), fieldErr.Message)
//	    }
//	}
//
//nolint:recvcheck // Error must use value receiver for error interface compatibility, mutating methods use pointer
type Error struct {
	Fields []FieldError `json:"errors"` // List of field errors
}

// Error returns a formatted error message.
func (v Error) Error() string {
	if len(v.Fields) == 0 {
		return ""
	}
	if len(v.Fields) == 1 {
		return v.Fields[0].Error()
	}

	var msgs []string
	for _, err := range v.Fields {
		msgs = append(msgs, err.Error())
	}

	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

// Unwrap returns [ErrValidation] for errors.Is/errors.As compatibility.
func (v Error) Unwrap() error {
	return ErrValidation
}

// HTTPStatus implements rivaas.dev/errors.ErrorType.
func (v Error) HTTPStatus() int {
	return 422 // Unprocessable Entity
}

// Details implements rivaas.dev/errors.ErrorDetails.
func (v Error) Details() any {
	return v.Fields
}

// Code implements rivaas.dev/errors.ErrorCode.
func (v Error) Code() string {
	return "validation_error"
}

// Add adds a new [FieldError] to the collection.
//
// Example:
//
//	var verr Error
//	verr.Add([]string{"email"}, CodeRequired, "Value is required", nil)
func (v *Error) Add(path []string, code, message string, meta map[string]any) {
	v.Fields = append(v.Fields, FieldError{
		Path:    path,
		Code:    code,
		Message: message,
		Meta:    meta,
	})
}

// AddError adds an error to the collection, handling different error types.
// AddError accepts [FieldError], [Error], or generic errors and converts
// them appropriately.
func (v *Error) AddError(err error) {
	if err == nil {
		return
	}

	if fe, ok := err.(FieldError); ok {
		v.Fields = append(v.Fields, fe)
		return
	}

	if ve, ok := err.(Error); ok {
		v.Fields = append(v.Fields, ve.Fields...)
		return
	}

	if ve, ok := err.(*Error); ok {
		v.Fields = append(v.Fields, ve.Fields...)
		return
	}

	v.Fields = append(v.Fields, FieldError{
		Code:    "validation_error",
		Message: err.Error(),
	})
}

// HasErrors returns true if there are any errors.
func (v Error) HasErrors() bool {
	return len(v.Fields) > 0
}

// HasCode returns true if any error has the given code.
//
// Example:
//
//	if verr.HasCode(CodeRequired) {
//	    // Handle required field errors
//	}
func (v Error) HasCode(code string) bool {
	for _, e := range v.Fields {
		if e.Code == code {
			return true
		}
	}

	return false
}

// Has checks if a specific dotted field path has an error.
//
// Example:
//
//	if verr.Has("address.city") {
//	    // Handle city field errors
//	}
func (v Error) Has(path string) bool {
	for _, f := range v.Fields {
		if f.PathString() == path {
			return true
		}
	}

	return false
}

// GetField returns the first [FieldError] for a given dotted path, or nil
// if not found.
//
// Example:
//
//	fieldErr := verr.GetField("email")
//	if fieldErr != nil {
//	    fmt.Println(fieldErr.Message)
//	}
func (v Error) GetField(path string) *FieldError {
	for _, f := range v.Fields {
		if f.PathString() == path {
			return &f
		}
	}

	return nil
}

// Sort sorts errors by path, then by code.
// Sort modifies the error in place and is useful for consistent error presentation.
func (v *Error) Sort() {
	sort.Slice(v.Fields, func(i, j int) bool {
		pi, pj := v.Fields[i].PathString(), v.Fields[j].PathString()
		if pi != pj {
			return pi < pj
		}

		return v.Fields[i].Code < v.Fields[j].Code
	})
}
