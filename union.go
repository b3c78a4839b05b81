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

// Default message for union failures.
const msgUnion = "Value does not match any of the expected types"

// Union returns a schema that tries each branch in declaration order
// against the same value and returns the first success: first match
// wins, not best match, and later branches are never evaluated.
//
// When every branch fails, the result carries the union's own error (code
// [CodeUnion], empty path) followed by every branch's errors concatenated
// in branch order, paths unmodified: a union adds no structural level, so
// nothing is prefixed.
//
// Example:
//
//	id := schema.Union(schema.UUID(), schema.Number())
//	id.Validate(ctx, "not-either")
//	// invalid: union error, then the UUID branch's error, then the
//	// number branch's error
func Union(branches ...Schema) Schema {
	if len(branches) == 0 {
		panic("schema: Union requires at least one branch")
	}
	owned := make([]node, len(branches))
	for i, b := range branches {
		owned[i] = b.mustNode()
	}

	return Schema{node: unionNode{branches: owned}}
}

// unionNode short-circuits on the first matching branch and aggregates
// every branch's errors on total failure.
type unionNode struct {
	branches []node
}

func (n unionNode) validate(ctx context.Context, value any, cfg *config) Result {
	all := []FieldError{{
		Code:    CodeUnion,
		Message: cfg.messageFor(CodeUnion, "", msgUnion),
	}}
	for _, b := range n.branches {
		res := b.validate(ctx, value, cfg)
		if res.Valid {
			return res
		}
		all = append(all, res.Errors...)
	}

	return invalid(all...)
}

func (n unionNode) jsonSchema() map[string]any {
	anyOf := make([]any, len(n.branches))
	for i, b := range n.branches {
		anyOf[i] = b.jsonSchema()
	}

	return map[string]any{"anyOf": anyOf}
}
