package planbuild

import (
	"time"

	"github.com/pact-foundation/pact-go-matching/interaction"
	"github.com/pact-foundation/pact-go-matching/matchctx"
	"github.com/pact-foundation/pact-go-matching/pactmetrics"
	"github.com/pact-foundation/pact-go-matching/plan"
)

// BuildRequestPlan compiles an expected request into a plan rooted at
// Container("request"). ctx should be a root context (one
// not already narrowed to a category); each axis narrows its own view.
// m may be nil; when given, the build wall time is recorded against its
// "request" axis.
func BuildRequestPlan(ctx matchctx.Context, expected *interaction.HTTPRequest, m *pactmetrics.Metrics) *plan.Node {
	start := time.Now()
	children := []*plan.Node{
		buildMethod(ctx, expected.Method),
		buildPath(ctx, expected.Path),
		buildQuery(ctx, expected.Query),
	}
	if headers := buildHeaders(ctx.ForHeaders(), expected.Headers); headers.Type != plan.Empty {
		children = append(children, headers)
	}
	if body := buildBody(ctx.ForBody(), expected.RawBody); body.Type != plan.Empty {
		children = append(children, body)
	}

	root := plan.NewContainer("request", children...)
	plan.AssignIDs(root)
	if m != nil {
		m.ObserveBuild("request", time.Since(start))
	}
	return root
}

// BuildResponsePlan compiles an expected response into a plan rooted at
// Container("response"). m may be nil; when given, the build wall time is
// recorded against its "response" axis.
func BuildResponsePlan(ctx matchctx.Context, expected *interaction.HTTPResponse, m *pactmetrics.Metrics) *plan.Node {
	start := time.Now()
	children := []*plan.Node{
		buildStatus(ctx, expected.Status),
	}
	if headers := buildHeaders(ctx.ForRespHeaders(), expected.Headers); headers.Type != plan.Empty {
		children = append(children, headers)
	}
	if body := buildBody(ctx.ForRespBody(), expected.RawBody); body.Type != plan.Empty {
		children = append(children, body)
	}

	root := plan.NewContainer("response", children...)
	plan.AssignIDs(root)
	if m != nil {
		m.ObserveBuild("response", time.Since(start))
	}
	return root
}
