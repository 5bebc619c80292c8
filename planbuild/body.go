package planbuild

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pact-foundation/pact-go-matching/docpath"
	"github.com/pact-foundation/pact-go-matching/interaction"
	"github.com/pact-foundation/pact-go-matching/matchctx"
	"github.com/pact-foundation/pact-go-matching/matchrule"
	"github.com/pact-foundation/pact-go-matching/plan"
	"github.com/pact-foundation/pact-go-matching/planexec"
)

// buildBody emits the body subtree: a short-circuiting
// %if whose guard checks the actual content type against the expected
// one, wrapping a structural walk of the expected body. Absent bodies
// contribute nothing to the request/response container. bctx must
// already be narrowed to the "body" category (ctx.ForBody() for a
// request, ctx.ForRespBody() for a response).
func buildBody(bctx matchctx.Context, body interaction.OptionalBody) *plan.Node {
	if !body.IsPresent() {
		return plan.NewEmpty()
	}

	bodyPath := docpath.NewRoot().Field("body")

	guard := plan.NewAction(planexec.ActionMatchEquality,
		plan.NewAction(planexec.ActionContentType),
		plan.NewValue(plan.StringValue(body.ContentType)),
	)

	var consequent *plan.Node
	if isJSONContentType(body.ContentType) {
		var doc interface{}
		if err := json.Unmarshal(body.Bytes, &doc); err == nil {
			consequent = buildJSONNode(bctx, bodyPath, doc)
		} else {
			consequent = bestLeafAction(bctx.SelectBestMatcher(bodyPath), plan.NewResolve(bodyPath), plan.StringValue(string(body.Bytes)))
		}
	} else {
		consequent = bestLeafAction(bctx.SelectBestMatcher(bodyPath), plan.NewResolve(bodyPath), plan.BytesValue(body.Bytes))
	}

	ifNode := plan.NewAction(planexec.ActionIf, guard, consequent)
	return plan.NewContainer("body", ifNode)
}

func isJSONContentType(ct string) bool {
	return strings.Contains(strings.ToLower(ct), "json")
}

// buildJSONNode recursively walks a decoded JSON value, emitting a tree
// shaped per container kind: an object becomes a
// container keyed by the path, one %if(%expect:present, <comparison>)
// per member; an array becomes per-element containers, collapsing to a
// single rule-driven comparison per element when a Type-family rule
// applies at the array's own path; a scalar becomes one comparison leaf.
func buildJSONNode(ctx matchctx.Context, path docpath.DocPath, doc interface{}) *plan.Node {
	switch v := doc.(type) {
	case map[string]interface{}:
		keys := sortedJSONKeys(v)
		children := make([]*plan.Node, 0, len(keys))
		for _, k := range keys {
			p := path.Field(k)
			present := plan.NewAction(planexec.ActionExpectPresent, plan.NewResolve(p))
			comparison := buildJSONComparison(ctx, p, v[k])
			children = append(children, plan.NewAction(planexec.ActionIf, present, comparison))
		}
		return plan.NewContainer(":body:"+path.String(), children...)

	case []interface{}:
		rl := ctx.SelectBestMatcher(path)
		if rl.HasKind(matchrule.KindType, matchrule.KindMinType, matchrule.KindMaxType, matchrule.KindMinMaxType) {
			children := make([]*plan.Node, 0, len(v))
			for i, elem := range v {
				p := path.Index(i)
				leaf := bestLeafAction(rl, plan.NewResolve(p), jsonElementLiteral(elem))
				children = append(children, plan.NewContainer(fmt.Sprintf("[%d]", i), leaf))
			}
			return plan.NewContainer(":body:"+path.String(), children...)
		}

		children := make([]*plan.Node, 0, len(v))
		for i, elem := range v {
			p := path.Index(i)
			children = append(children, plan.NewContainer(fmt.Sprintf("[%d]", i), buildJSONComparison(ctx, p, elem)))
		}
		return plan.NewContainer(":body:"+path.String(), children...)

	default:
		rl := ctx.SelectBestMatcher(path)
		return bestLeafAction(rl, plan.NewResolve(path), planexec.JSONToNodeValue(v))
	}
}

// buildJSONComparison emits the comparison for one object member or array
// element: a nested object or array recurses through buildJSONNode (and so
// gets its own container), a scalar becomes a single comparison leaf.
func buildJSONComparison(ctx matchctx.Context, path docpath.DocPath, v interface{}) *plan.Node {
	switch v.(type) {
	case map[string]interface{}, []interface{}:
		return buildJSONNode(ctx, path, v)
	default:
		rl := ctx.SelectBestMatcher(path)
		return bestLeafAction(rl, plan.NewResolve(path), planexec.JSONToNodeValue(v))
	}
}

func jsonElementLiteral(v interface{}) plan.NodeValue {
	return planexec.JSONToNodeValue(v)
}
