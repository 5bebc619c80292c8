// Package interaction defines the expected/actual HTTP interaction types
// the matching engine consumes and produces, plus the small
// capability set a non-HTTP interaction kind would need to satisfy
// to be evaluated by the same executor.
package interaction

import "github.com/pact-foundation/pact-go-matching/matchrule"

// GeneratorSpec is a placeholder for a generator configuration attached
// to a document path; the core threads these through without evaluating
// them.
type GeneratorSpec struct {
	Type   string
	Config map[string]interface{}
}

// Generators maps document path strings to the generator that would
// produce a value there, scoped to one rule category.
type Generators map[string]GeneratorSpec

// Interaction is the capability set the plan builder and executor need
// from any request/response-shaped message: access to its
// matching rules and generators per axis, its content type, and its body.
// HTTP requests and responses both implement it directly; a hypothetical
// asynchronous or synchronous message type would implement it the same
// way without requiring a deeper type hierarchy.
type Interaction interface {
	MatchingRulesFor(category matchrule.CategoryName) *matchrule.Category
	GeneratorsFor(category matchrule.CategoryName) Generators
	ContentType() string
	Body() OptionalBody
}
