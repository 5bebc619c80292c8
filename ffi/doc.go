// Package ffi exposes the two pure functions the foreign-function
// bindings wrap: a matching rule to its wire JSON string,
// and back. Allocation, memory ownership, and the cgo boundary itself
// are the wrapper's job, not the core's; this package never touches cgo.
package ffi

import (
	"fmt"

	"github.com/pact-foundation/pact-go-matching/matchrule"
)

// RuleToJSON renders r as its wire JSON string. The caller
// (the FFI wrapper) owns the returned string's lifetime on its side of
// the boundary; this function allocates nothing the core needs to track.
func RuleToJSON(r matchrule.MatchingRule) (string, error) {
	b, err := matchrule.ToJSON(r)
	if err != nil {
		return "", fmt.Errorf("ffi: %w", err)
	}
	return string(b), nil
}

// RuleFromJSON parses a wire JSON string into a matching rule. A nil
// rule and non-nil error mirror the FFI contract's "null on error"
// behaviour one layer up, without this package itself returning a C
// null pointer.
func RuleFromJSON(s string) (matchrule.MatchingRule, error) {
	r, err := matchrule.FromJSON([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("ffi: %w", err)
	}
	return r, nil
}
