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
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Default messages for leaf failures.
const (
	msgNullable  = "Value cannot be null"
	msgString    = "Value must be a string"
	msgNumber    = "Value must be a number"
	msgBoolean   = "Value must be a boolean"
	msgDateType  = "Value must be a date"
	msgDateParse = "Value must be a valid date"
	msgMinLength = "Value must have at least {min} characters"
	msgMaxLength = "Value must have at most {max} characters"
	msgMin       = "Value must be at least {min}"
	msgMax       = "Value must be at most {max}"
	msgOneOf     = "Value must be one of: {values}"
	msgPattern   = "Value does not match the required pattern"
)

// checkFunc is the whole contract a primitive check fulfills: inspect a
// non-nil value and return either the (possibly transformed) value or a
// single failure. Null rejection is handled by [leafNode] before the check
// runs, so checks never see nil.
type checkFunc func(value any, cfg *config) (any, *FieldError)

// leafNode wraps one primitive check into a schema node.
type leafNode struct {
	check  checkFunc
	export func() map[string]any
}

func (n leafNode) validate(_ context.Context, value any, cfg *config) Result {
	if value == nil {
		return invalid(FieldError{
			Code:    CodeNullable,
			Message: cfg.messageFor(CodeNullable, "", msgNullable),
		})
	}

	out, ferr := n.check(value, cfg)
	if ferr != nil {
		return invalid(*ferr)
	}

	return valid(out)
}

func (n leafNode) jsonSchema() map[string]any {
	return n.export()
}

// leaf wraps a check and its JSON Schema exporter into a [Schema].
func leaf(check checkFunc, export func() map[string]any) Schema {
	return Schema{node: leafNode{check: check, export: export}}
}

// String returns a schema that accepts exactly Go string values and
// returns them unchanged. The optional message overrides the default
// type-mismatch message.
//
// Example:
//
//	schema.String().Validate(ctx, "hello") // succeeds with "hello"
//	schema.String().Validate(ctx, 42)      // fails with code "type"
func String(message ...string) Schema {
	msg := firstMessage(message)

	return leaf(
		func(value any, cfg *config) (any, *FieldError) {
			if _, ok := value.(string); !ok {
				return nil, &FieldError{Code: CodeType, Message: cfg.messageFor(CodeType, msg, msgString)}
			}

			return value, nil
		},
		func() map[string]any {
			return map[string]any{"type": "string"}
		},
	)
}

// Number returns a schema that accepts any Go numeric value (every int,
// uint, and float kind) and returns it unchanged, without coercion. This
// covers what the decoders produce: float64 from JSON, int or float64
// from YAML, int64 from TOML and MessagePack integers.
func Number(message ...string) Schema {
	msg := firstMessage(message)

	return leaf(
		func(value any, cfg *config) (any, *FieldError) {
			if !isNumber(value) {
				return nil, &FieldError{Code: CodeType, Message: cfg.messageFor(CodeType, msg, msgNumber)}
			}

			return value, nil
		},
		func() map[string]any {
			return map[string]any{"type": "number"}
		},
	)
}

// Boolean returns a schema that accepts exactly Go bool values and returns
// them unchanged.
func Boolean(message ...string) Schema {
	msg := firstMessage(message)

	return leaf(
		func(value any, cfg *config) (any, *FieldError) {
			if _, ok := value.(bool); !ok {
				return nil, &FieldError{Code: CodeType, Message: cfg.messageFor(CodeType, msg, msgBoolean)}
			}

			return value, nil
		},
		func() map[string]any {
			return map[string]any{"type": "boolean"}
		},
	)
}

// dateLayouts are tried in order when parsing date strings.
var dateLayouts = []string{
	time.RFC3339,          // 2024-01-15T10:30:00Z (ISO 8601)
	time.RFC3339Nano,      // with nanoseconds
	"2006-01-02",          // Date only: 2024-01-15
	"2006-01-02 15:04:05", // DateTime: 2024-01-15 10:30:00
	time.RFC1123,          // Mon, 02 Jan 2006 15:04:05 MST
	time.RFC1123Z,         // Mon, 02 Jan 2006 15:04:05 -0700
	time.RFC822,           // 02 Jan 06 15:04 MST
	time.RFC822Z,          // 02 Jan 06 15:04 -0700
	time.RFC850,           // Monday, 02-Jan-06 15:04:05 MST
	"2006-01-02T15:04:05", // DateTime without timezone
}

// Date returns a schema that accepts [time.Time] values as-is and date
// strings, which it parses by trying common layouts in order (RFC 3339
// first). Success always yields a time.Time; this is the only coercion
// in the module. An unparsable string fails with code [CodeDate]; any
// other type fails with code [CodeType]. The optional message overrides
// both failures.
//
// Example:
//
//	r := schema.Date().Validate(ctx, "2024-01-15")
//	// r.Valid == true, r.Value.(time.Time)
func Date(message ...string) Schema {
	msg := firstMessage(message)

	return leaf(
		func(value any, cfg *config) (any, *FieldError) {
			switch v := value.(type) {
			case time.Time:
				return v, nil
			case string:
				for _, layout := range dateLayouts {
					if t, err := time.Parse(layout, v); err == nil {
						return t, nil
					}
				}

				return nil, &FieldError{Code: CodeDate, Message: cfg.messageFor(CodeDate, msg, msgDateParse)}
			default:
				return nil, &FieldError{Code: CodeType, Message: cfg.messageFor(CodeType, msg, msgDateType)}
			}
		},
		func() map[string]any {
			return map[string]any{"type": "string", "format": "date-time"}
		},
	)
}

// MinLength returns a string schema that requires at least minChars
// characters, counted in runes, not bytes. Non-string input fails with the
// standard type message; the optional message overrides only the length
// failure and may use the {min} placeholder.
//
// Example:
//
//	schema.MinLength(3).Validate(ctx, "ab")
//	// fails: "Value must have at least 3 characters"
func MinLength(minChars int, message ...string) Schema {
	msg := firstMessage(message)

	return leaf(
		func(value any, cfg *config) (any, *FieldError) {
			s, ok := value.(string)
			if !ok {
				return nil, &FieldError{Code: CodeType, Message: cfg.messageFor(CodeType, "", msgString)}
			}
			if utf8.RuneCountInString(s) < minChars {
				return nil, &FieldError{
					Code:    CodeMinLength,
					Message: expandMessage(cfg.messageFor(CodeMinLength, msg, msgMinLength), map[string]string{"min": strconv.Itoa(minChars)}),
					Meta:    map[string]any{"min": minChars},
				}
			}

			return value, nil
		},
		func() map[string]any {
			return map[string]any{"type": "string", "minLength": minChars}
		},
	)
}

// MaxLength returns a string schema that allows at most maxChars
// characters, counted in runes. The optional message overrides only the
// length failure and may use the {max} placeholder.
func MaxLength(maxChars int, message ...string) Schema {
	msg := firstMessage(message)

	return leaf(
		func(value any, cfg *config) (any, *FieldError) {
			s, ok := value.(string)
			if !ok {
				return nil, &FieldError{Code: CodeType, Message: cfg.messageFor(CodeType, "", msgString)}
			}
			if utf8.RuneCountInString(s) > maxChars {
				return nil, &FieldError{
					Code:    CodeMaxLength,
					Message: expandMessage(cfg.messageFor(CodeMaxLength, msg, msgMaxLength), map[string]string{"max": strconv.Itoa(maxChars)}),
					Meta:    map[string]any{"max": maxChars},
				}
			}

			return value, nil
		},
		func() map[string]any {
			return map[string]any{"type": "string", "maxLength": maxChars}
		},
	)
}

// Min returns a numeric schema that requires values of at least bound.
// Any numeric kind is accepted and compared as float64. The optional
// message may use the {min} placeholder.
func Min(bound float64, message ...string) Schema {
	msg := firstMessage(message)

	return leaf(
		func(value any, cfg *config) (any, *FieldError) {
			f, ok := toFloat(value)
			if !ok {
				return nil, &FieldError{Code: CodeType, Message: cfg.messageFor(CodeType, "", msgNumber)}
			}
			if f < bound {
				return nil, &FieldError{
					Code:    CodeMin,
					Message: expandMessage(cfg.messageFor(CodeMin, msg, msgMin), map[string]string{"min": formatBound(bound)}),
					Meta:    map[string]any{"min": bound},
				}
			}

			return value, nil
		},
		func() map[string]any {
			return map[string]any{"type": "number", "minimum": bound}
		},
	)
}

// Max returns a numeric schema that requires values of at most bound.
// The optional message may use the {max} placeholder.
func Max(bound float64, message ...string) Schema {
	msg := firstMessage(message)

	return leaf(
		func(value any, cfg *config) (any, *FieldError) {
			f, ok := toFloat(value)
			if !ok {
				return nil, &FieldError{Code: CodeType, Message: cfg.messageFor(CodeType, "", msgNumber)}
			}
			if f > bound {
				return nil, &FieldError{
					Code:    CodeMax,
					Message: expandMessage(cfg.messageFor(CodeMax, msg, msgMax), map[string]string{"max": formatBound(bound)}),
					Meta:    map[string]any{"max": bound},
				}
			}

			return value, nil
		},
		func() map[string]any {
			return map[string]any{"type": "number", "maximum": bound}
		},
	)
}

// OneOf returns a string schema that accepts only values from the allowed
// set. The optional message may use the {values} placeholder, substituted
// with the comma-joined set.
//
// Example:
//
//	role := schema.OneOf([]string{"admin", "editor", "viewer"})
//	role.Validate(ctx, "owner")
//	// fails: "Value must be one of: admin, editor, viewer"
func OneOf(values []string, message ...string) Schema {
	msg := firstMessage(message)
	allowed := make([]string, len(values))
	copy(allowed, values)

	return leaf(
		func(value any, cfg *config) (any, *FieldError) {
			s, ok := value.(string)
			if !ok {
				return nil, &FieldError{Code: CodeType, Message: cfg.messageFor(CodeType, "", msgString)}
			}
			for _, v := range allowed {
				if s == v {
					return value, nil
				}
			}

			return nil, &FieldError{
				Code:    CodeOneOf,
				Message: expandMessage(cfg.messageFor(CodeOneOf, msg, msgOneOf), map[string]string{"values": strings.Join(allowed, ", ")}),
				Meta:    map[string]any{"values": allowed},
			}
		},
		func() map[string]any {
			enum := make([]any, len(allowed))
			for i, v := range allowed {
				enum[i] = v
			}

			return map[string]any{"type": "string", "enum": enum}
		},
	)
}

// Pattern returns a string schema that requires the value to match re.
// A nil pattern panics at construction time.
func Pattern(re *regexp.Regexp, message ...string) Schema {
	if re == nil {
		panic("schema: Pattern requires a non-nil regular expression")
	}
	msg := firstMessage(message)

	return leaf(
		func(value any, cfg *config) (any, *FieldError) {
			s, ok := value.(string)
			if !ok {
				return nil, &FieldError{Code: CodeType, Message: cfg.messageFor(CodeType, "", msgString)}
			}
			if !re.MatchString(s) {
				return nil, &FieldError{
					Code:    CodePattern,
					Message: cfg.messageFor(CodePattern, msg, msgPattern),
					Meta:    map[string]any{"pattern": re.String()},
				}
			}

			return value, nil
		},
		func() map[string]any {
			return map[string]any{"type": "string", "pattern": re.String()}
		},
	)
}

// isNumber reports whether value has a Go numeric kind.
func isNumber(value any) bool {
	switch value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	default:
		return false
	}
}

// toFloat converts any numeric kind to float64 for bound comparison.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

// formatBound renders a numeric bound without trailing zeros.
func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
