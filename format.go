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
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Default messages for format failures.
const (
	msgEmail = "Value must be a valid email address"
	msgURL   = "Value must be a valid URL"
	msgUUID  = "Value must be a valid UUID"
)

// formatChecker backs the email and url leaves. A single validator
// instance is safe for concurrent Var checks and is meant to be shared.
var formatChecker = validator.New(validator.WithRequiredStructEnabled())

// Email returns a string schema that requires a valid email address.
// Non-string input fails with the standard type message; the optional
// message overrides only the format failure.
//
// Example:
//
//	schema.Email().Validate(ctx, "dev@rivaas.dev") // succeeds
//	schema.Email().Validate(ctx, "not-an-email")   // fails with code "email"
func Email(message ...string) Schema {
	msg := firstMessage(message)

	return leaf(
		func(value any, cfg *config) (any, *FieldError) {
			s, ok := value.(string)
			if !ok {
				return nil, &FieldError{Code: CodeType, Message: cfg.messageFor(CodeType, "", msgString)}
			}
			if err := formatChecker.Var(s, "email"); err != nil {
				return nil, &FieldError{Code: CodeEmail, Message: cfg.messageFor(CodeEmail, msg, msgEmail)}
			}

			return value, nil
		},
		func() map[string]any {
			return map[string]any{"type": "string", "format": "email"}
		},
	)
}

// URL returns a string schema that requires a valid URL with a scheme.
func URL(message ...string) Schema {
	msg := firstMessage(message)

	return leaf(
		func(value any, cfg *config) (any, *FieldError) {
			s, ok := value.(string)
			if !ok {
				return nil, &FieldError{Code: CodeType, Message: cfg.messageFor(CodeType, "", msgString)}
			}
			if err := formatChecker.Var(s, "url"); err != nil {
				return nil, &FieldError{Code: CodeURL, Message: cfg.messageFor(CodeURL, msg, msgURL)}
			}

			return value, nil
		},
		func() map[string]any {
			return map[string]any{"type": "string", "format": "uri"}
		},
	)
}

// UUID returns a string schema that requires a canonical textual UUID
// (8-4-4-4-12 hex digits).
func UUID(message ...string) Schema {
	msg := firstMessage(message)

	return leaf(
		func(value any, cfg *config) (any, *FieldError) {
			s, ok := value.(string)
			if !ok {
				return nil, &FieldError{Code: CodeType, Message: cfg.messageFor(CodeType, "", msgString)}
			}
			if !validUUID(s) {
				return nil, &FieldError{Code: CodeUUID, Message: cfg.messageFor(CodeUUID, msg, msgUUID)}
			}

			return value, nil
		},
		func() map[string]any {
			return map[string]any{"type": "string", "format": "uuid"}
		},
	)
}

// validUUID checks canonical UUID format with cheap length and hyphen
// checks before parsing.
func validUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}
	_, err := uuid.Parse(s)

	return err == nil
}
