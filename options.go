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
	"maps"
	"strings"
)

// config holds per-call validation configuration. It is assembled once at
// the top of [Schema.Validate] and threaded unchanged through every node
// of the schema tree; no node ever mutates it.
type config struct {
	messages map[string]string // code -> message override
}

// zeroConfig is shared by calls that pass no options. Nodes only read
// configs, so sharing is safe.
var zeroConfig = &config{}

// Option is a functional option for configuring a single validation call.
// Options can be passed to [Schema.Validate] and the decode helpers.
type Option func(*config)

// WithMessages sets static error messages keyed by error code.
// Messages override both schema-construction messages and the default
// English messages for the specified codes. Unspecified codes continue
// to use their defaults. Placeholders such as {min}, {max}, and {values}
// are substituted in overrides the same way as in defaults.
//
// Example:
//
//	result := s.Validate(ctx, payload, schema.WithMessages(map[string]string{
//	    schema.CodeRequired:  "cannot be empty",
//	    schema.CodeMinLength: "too short (min {min} chars)",
//	}))
func WithMessages(messages map[string]string) Option {
	return func(c *config) {
		if c.messages == nil {
			c.messages = make(map[string]string)
		}
		maps.Copy(c.messages, messages)
	}
}

// WithMessage sets a static error message for a single error code.
// It is shorthand for [WithMessages] with a one-entry map.
//
// Example:
//
//	result := s.Validate(ctx, payload, schema.WithMessage(schema.CodeEmail, "invalid email format"))
func WithMessage(code, message string) Option {
	return func(c *config) {
		if c.messages == nil {
			c.messages = make(map[string]string)
		}
		c.messages[code] = message
	}
}

// clone creates a copy of the config.
func (c *config) clone() *config {
	clone := *c
	if c.messages != nil {
		clone.messages = make(map[string]string, len(c.messages))
		maps.Copy(clone.messages, c.messages)
	}

	return &clone
}

// applyOptions builds the per-call config. Calls without options share a
// single read-only config.
func applyOptions(opts ...Option) *config {
	if len(opts) == 0 {
		return zeroConfig
	}

	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// messageFor resolves the message for an error code in priority order:
// per-call override, then the message fixed at schema construction, then
// the built-in default.
func (c *config) messageFor(code, construction, fallback string) string {
	if m, ok := c.messages[code]; ok {
		return m
	}
	if construction != "" {
		return construction
	}

	return fallback
}

// expandMessage substitutes {placeholder} tokens in msg. Substitution runs
// after message resolution so per-call overrides may use the same
// placeholders as the defaults.
func expandMessage(msg string, repl map[string]string) string {
	for k, v := range repl {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}

	return msg
}
