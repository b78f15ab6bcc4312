// Package fields resolves a comma-separated field selection against a fixed
// column schema.
package fields

import (
	"fmt"
	"sort"
	"strings"
)

// Timestamp is always part of a projection.
const Timestamp = "ts"

// InvalidFieldError lists the requested names that are not part of the schema.
type InvalidFieldError struct {
	Fields []string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid fields: %s", strings.Join(e.Fields, ", "))
}

// Projection is an ordered set of column names, in schema order.
type Projection []string

// Parse splits raw on commas and trims each token. Empty tokens are dropped.
func Parse(raw string) []string {
	var out []string
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// Project resolves raw against the valid schema. An empty selection yields
// every valid field. Any unknown name fails the whole projection with an
// *InvalidFieldError naming only the unknown names. The timestamp field is
// added to every successful projection.
func Project(raw string, valid []string) (Projection, error) {
	requested := Parse(raw)
	if len(requested) == 0 {
		return append(Projection(nil), valid...), nil
	}

	known := make(map[string]struct{}, len(valid))
	for _, f := range valid {
		known[f] = struct{}{}
	}

	selected := map[string]struct{}{Timestamp: {}}
	var invalid []string
	seenInvalid := make(map[string]struct{})
	for _, f := range requested {
		if _, ok := known[f]; !ok {
			if _, dup := seenInvalid[f]; !dup {
				seenInvalid[f] = struct{}{}
				invalid = append(invalid, f)
			}
			continue
		}
		selected[f] = struct{}{}
	}
	if len(invalid) > 0 {
		sort.Strings(invalid)
		return nil, &InvalidFieldError{Fields: invalid}
	}

	out := make(Projection, 0, len(selected))
	for _, f := range valid {
		if _, ok := selected[f]; ok {
			out = append(out, f)
		}
	}
	return out, nil
}
