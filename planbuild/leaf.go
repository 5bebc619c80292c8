package planbuild

import (
	"sort"

	"github.com/pact-foundation/pact-go-matching/matchrule"
	"github.com/pact-foundation/pact-go-matching/plan"
	"github.com/pact-foundation/pact-go-matching/planexec"
)

// bestLeafAction builds the leaf action node comparing resolveNode (the
// value under test) against literal, substituting the matcher the rule
// list selects for %match:equality when one is defined:
// Regex -> match:regex, the Type family -> match:type, Include ->
// match:include. Any other rule kind, or no rule at all, falls back to
// plain equality; richer rule kinds (Number, EachKey, ArrayContains, ...)
// are accepted by matchrule's JSON round-trip but have no dedicated
// action in the closed registry planexec exposes, so they narrow to equality rather than abort.
func bestLeafAction(rl matchrule.List, resolveNode *plan.Node, literal plan.NodeValue) *plan.Node {
	if len(rl.Rules) == 0 {
		return plan.NewAction(planexec.ActionMatchEquality, resolveNode, plan.NewValue(literal))
	}

	switch rl.Rules[0].Kind() {
	case matchrule.KindRegex:
		r := rl.Rules[0].(matchrule.Regex)
		return plan.NewAction(planexec.ActionMatchRegex, resolveNode, plan.NewValue(plan.StringValue(r.Pattern)))
	case matchrule.KindType, matchrule.KindMinType, matchrule.KindMaxType, matchrule.KindMinMaxType:
		return plan.NewAction(planexec.ActionMatchType, resolveNode, plan.NewValue(literal))
	case matchrule.KindInclude:
		r := rl.Rules[0].(matchrule.Include)
		return plan.NewAction(planexec.ActionMatchInclude, resolveNode, plan.NewValue(plan.StringValue(r.Value)))
	default:
		return plan.NewAction(planexec.ActionMatchEquality, resolveNode, plan.NewValue(literal))
	}
}

func sortedStringKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedJSONKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func stringArrayValue(values []string) plan.NodeValue {
	items := make([]plan.NodeValue, len(values))
	for i, s := range values {
		items[i] = plan.StringValue(s)
	}
	return plan.ArrayValue(items...)
}
