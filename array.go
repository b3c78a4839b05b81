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
	"strconv"
)

// Default message for array shape failures.
const msgArray = "Value must be an array"

// Array returns a schema that validates every item of a sequence against
// the item schema. Input must be a slice or array (including []any from
// any of the decoders); anything else, nil included, fails immediately
// with a single type error.
//
// Items are validated in index order with a collect-all policy; each item
// error gets the stringified index prepended to its path. An empty input
// succeeds with an empty result.
//
// On success the result value is a freshly assembled []any holding each
// item's validated value; the input is never mutated.
//
// Example:
//
//	r := schema.Array(schema.Number()).Validate(ctx, []any{1, "x", 3})
//	// invalid: one error at path ["1"]
func Array(item Schema) Schema {
	return Schema{node: arrayNode{item: item.mustNode()}}
}

// arrayNode validates items in index order with a collect-all policy.
type arrayNode struct {
	item node
}

func (n arrayNode) validate(ctx context.Context, value any, cfg *config) Result {
	length, at, ok := sequenceOf(value)
	if !ok {
		return invalid(FieldError{
			Code:    CodeType,
			Message: cfg.messageFor(CodeType, "", msgArray),
		})
	}

	out := make([]any, 0, length)
	var errs []FieldError
	for i := range length {
		res := n.item.validate(ctx, at(i), cfg)
		if !res.Valid {
			errs = append(errs, prefixPath(strconv.Itoa(i), res.Errors)...)
			continue
		}
		out = append(out, res.Value)
	}

	if len(errs) > 0 {
		return invalid(errs...)
	}

	return valid(out)
}

func (n arrayNode) jsonSchema() map[string]any {
	return map[string]any{
		"type":  "array",
		"items": n.item.jsonSchema(),
	}
}

// sequenceOf returns the length and an index accessor for any slice or
// array value, or ok=false for non-sequences. The common decoder output
// []any takes the fast path; other slice and array kinds go through
// reflection.
func sequenceOf(value any) (int, func(int) any, bool) {
	if items, ok := value.([]any); ok {
		return len(items), func(i int) any { return items[i] }, true
	}

	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		return 0, nil, false
	}
	if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
		return 0, nil, false
	}

	return rv.Len(), func(i int) any { return rv.Index(i).Interface() }, true
}
