package planbuild

import (
	"strings"

	"github.com/pact-foundation/pact-go-matching/docpath"
	"github.com/pact-foundation/pact-go-matching/header"
	"github.com/pact-foundation/pact-go-matching/matchctx"
	"github.com/pact-foundation/pact-go-matching/plan"
	"github.com/pact-foundation/pact-go-matching/planexec"
)

// buildMethod emits ":method ( %match:equality ( %upper-case ( $.method ), "<EXPECTED_METHOD>" ) )",
// substituting the rule-selected action when the "method" category
// defines one.
func buildMethod(ctx matchctx.Context, expected string) *plan.Node {
	mctx := ctx.ForMethod()
	path := docpath.NewRoot().Field("method")
	rl := mctx.SelectBestMatcher(path)

	resolved := plan.NewAction(planexec.ActionUpperCase, plan.NewResolve(path))
	literal := plan.StringValue(strings.ToUpper(expected))
	return plan.NewContainer("method", bestLeafAction(rl, resolved, literal))
}

// buildPath emits ":path ( %match:equality($.path, "<expected>") )" or the
// rule-selected equivalent.
func buildPath(ctx matchctx.Context, expected string) *plan.Node {
	pctx := ctx.ForPath()
	path := docpath.NewRoot().Field("path")
	rl := pctx.SelectBestMatcher(path)
	return plan.NewContainer("path", bestLeafAction(rl, plan.NewResolve(path), plan.StringValue(expected)))
}

// buildQuery emits the query-parameters subtree: %expect:empty when no
// query parameters are expected, otherwise one comparison per expected
// key. With no expected keys the %expect:empty leaf is emitted whatever
// ctx.Config.AllowUnexpectedEntries says, so any actual query key is a
// mismatch (resolving the bare "$.query" path yields the actual key list).
// With expected keys, unknown actual keys are a mismatch only when
// AllowUnexpectedEntries is unset, via buildNoExtraKeysGuard.
func buildQuery(ctx matchctx.Context, query map[string][]string) *plan.Node {
	base := docpath.NewRoot().Field("query")
	if len(query) == 0 {
		return plan.NewContainer("query parameters", plan.NewAction(planexec.ActionExpectEmpty, plan.NewResolve(base)))
	}

	qctx := ctx.ForQuery()
	keys := sortedStringKeys(query)
	children := make([]*plan.Node, 0, len(keys)+1)
	for _, k := range keys {
		p := base.Field(k)
		rl := qctx.SelectBestMatcher(p)
		leaf := bestLeafAction(rl, plan.NewResolve(p), stringArrayValue(query[k]))
		children = append(children, plan.NewContainer(k, leaf))
	}
	if !ctx.Config.AllowUnexpectedEntries {
		children = append(children, buildNoExtraKeysGuard(base, keys))
	}
	return plan.NewContainer("query parameters", children...)
}

// buildHeaders emits the headers subtree, keyed by lower-cased header
// name and split per header.ParseValues. Returns an
// Empty node when there are no expected headers; the caller omits empty
// axes from the request/response container entirely. hctx must already
// be narrowed to the "header" category (ctx.ForHeaders() for a request,
// ctx.ForRespHeaders() for a response) since both halves share this axis
// shape but read from different underlying interactions.
func buildHeaders(hctx matchctx.Context, headers map[string][]string) *plan.Node {
	if len(headers) == 0 {
		return plan.NewEmpty()
	}

	base := docpath.NewRoot().Field("headers")
	keys := sortedStringKeys(headers)
	seen := make(map[string]bool, len(keys))
	lowerKeys := make([]string, 0, len(keys))
	children := make([]*plan.Node, 0, len(keys)+1)
	for _, k := range keys {
		lk := strings.ToLower(k)
		if seen[lk] {
			continue
		}
		seen[lk] = true
		lowerKeys = append(lowerKeys, lk)

		var flat []string
		for _, line := range headers[k] {
			flat = append(flat, header.ParseValues(lk, line)...)
		}

		p := base.Field(lk)
		rl := hctx.SelectBestMatcher(p)
		leaf := bestLeafAction(rl, plan.NewResolve(p), stringArrayValue(flat))
		children = append(children, plan.NewContainer(lk, leaf))
	}
	if !hctx.Config.AllowUnexpectedEntries {
		children = append(children, buildNoExtraKeysGuard(base, lowerKeys))
	}
	return plan.NewContainer("headers", children...)
}

// buildNoExtraKeysGuard emits an %expect:no-unexpected-keys leaf comparing
// the actual keys resolved at base against knownKeys, the keys the plan
// was built to expect.
func buildNoExtraKeysGuard(base docpath.DocPath, knownKeys []string) *plan.Node {
	expected := make([]plan.NodeValue, len(knownKeys))
	for i, k := range knownKeys {
		expected[i] = plan.StringValue(k)
	}
	return plan.NewAction(planexec.ActionExpectNoExtraKeys, plan.NewResolve(base), plan.NewValue(plan.ArrayValue(expected...)))
}

// buildStatus emits ":status ( %match:equality($.status, <expected>) )"
// or the rule-selected equivalent, for response plans.
func buildStatus(ctx matchctx.Context, expected uint16) *plan.Node {
	sctx := ctx.ForStatus()
	path := docpath.NewRoot().Field("status")
	rl := sctx.SelectBestMatcher(path)
	return plan.NewContainer("status", bestLeafAction(rl, plan.NewResolve(path), plan.NumberValue(float64(expected))))
}
