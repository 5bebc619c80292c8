package planexec

import (
	"strings"
	"time"

	"github.com/pact-foundation/pact-go-matching/interaction"
	"github.com/pact-foundation/pact-go-matching/matchctx"
	"github.com/pact-foundation/pact-go-matching/pactlog"
	"github.com/pact-foundation/pact-go-matching/pactmetrics"
	"github.com/pact-foundation/pact-go-matching/plan"
)

type evalContext struct {
	actual actual
	config matchctx.Config
}

// ExecuteRequest evaluates root (as built by planbuild.BuildRequestPlan)
// against the actual request, populating every node's Result in place and
// returning root for convenience. m may be nil; when given, the
// execution wall time is recorded against its "request" axis. The
// executed plan and its pass/fail tally are logged through pactlog,
// gated by cfg.LogExecutedPlan/cfg.LogPlanSummary.
func ExecuteRequest(root *plan.Node, cfg matchctx.Config, actualReq *interaction.HTTPRequest, m *pactmetrics.Metrics) *plan.Node {
	start := time.Now()
	ec := &evalContext{actual: requestActual{req: actualReq}, config: cfg}
	ec.eval(root)
	plan.AssignIDs(root)
	if m != nil {
		m.ObserveExecute("request", time.Since(start))
	}
	pactlog.LogExecutedPlan(root, cfg)
	pactlog.LogPlanSummary(root, cfg)
	return root
}

// ExecuteResponse is ExecuteRequest's response-side counterpart.
func ExecuteResponse(root *plan.Node, cfg matchctx.Config, actualResp *interaction.HTTPResponse, m *pactmetrics.Metrics) *plan.Node {
	start := time.Now()
	ec := &evalContext{actual: responseActual{resp: actualResp}, config: cfg}
	ec.eval(root)
	plan.AssignIDs(root)
	if m != nil {
		m.ObserveExecute("response", time.Since(start))
	}
	pactlog.LogExecutedPlan(root, cfg)
	pactlog.LogPlanSummary(root, cfg)
	return root
}

func (ec *evalContext) eval(n *plan.Node) {
	if n == nil || n.Type == plan.Empty {
		return
	}

	switch n.Type {
	case plan.ValueNode:
		n.Result = &plan.Result{Kind: plan.ResultValue, Value: n.Value}

	case plan.Resolve:
		v, ok := ec.actual.resolve(n.Path)
		if !ok {
			v = plan.NullValue()
		}
		n.Result = &plan.Result{Kind: plan.ResultValue, Value: v}

	case plan.Container:
		ec.evalChildren(n.Children)
		res := containerResult(n.Children)
		n.Result = &res

	case plan.Action:
		if n.Action == ActionIf {
			ec.evalIf(n)
			return
		}
		ec.evalChildren(n.Children)
		fn, ok := registry[n.Action]
		if !ok {
			n.Result = &plan.Result{Kind: plan.ResultError, Err: "unknown action \"" + n.Action + "\""}
			return
		}
		res, err := fn(ec, n.Children)
		if err != nil {
			n.Result = &plan.Result{Kind: plan.ResultError, Err: err.Error()}
			return
		}
		n.Result = &res
	}
}

func (ec *evalContext) evalChildren(children []*plan.Node) {
	for _, c := range children {
		ec.eval(c)
	}
}

// evalIf implements the short-circuiting %if container:
// children[0] is the guard, the rest is the body. A falsy guard marks the
// whole body Value(Null) without executing it.
func (ec *evalContext) evalIf(n *plan.Node) {
	if len(n.Children) < 1 {
		n.Result = &plan.Result{Kind: plan.ResultError, Err: "if: missing guard"}
		return
	}

	guard := n.Children[0]
	ec.eval(guard)
	body := n.Children[1:]

	if guard.Result != nil && guard.Result.Kind == plan.ResultError {
		for _, c := range body {
			markSkippedDeep(c)
		}
		n.Result = &plan.Result{Kind: plan.ResultError, Err: "if guard failed: " + guard.Result.Err}
		return
	}

	if !guardTruthy(guard.Result) {
		for _, c := range body {
			markSkippedDeep(c)
		}
		n.Result = &plan.Result{Kind: plan.ResultOk}
		return
	}

	ec.evalChildren(body)
	res := containerResult(body)
	n.Result = &res
}

func guardTruthy(r *plan.Result) bool {
	if r == nil {
		return false
	}
	switch r.Kind {
	case plan.ResultOk:
		return true
	case plan.ResultError:
		return false
	default:
		return valueTruthy(r.Value)
	}
}

func valueTruthy(v plan.NodeValue) bool {
	switch v.Kind {
	case plan.KindNull:
		return false
	case plan.KindBool:
		return v.Bool
	case plan.KindString:
		return v.Str != ""
	default:
		return true
	}
}

// markSkippedDeep marks n and every descendant Value(Null), satisfying
// the executor-completeness property for the untaken branch
// of an %if.
func markSkippedDeep(n *plan.Node) {
	if n == nil || n.Type == plan.Empty {
		return
	}
	n.Result = &plan.Result{Kind: plan.ResultValue, Value: plan.NullValue()}
	for _, c := range n.Children {
		markSkippedDeep(c)
	}
}

// containerResult is Ok iff every evaluated child is Ok (non-Error); an
// Error child contributes its message to a concatenated Error result.
func containerResult(children []*plan.Node) plan.Result {
	var msgs []string
	for _, c := range children {
		if c == nil || c.Type == plan.Empty || c.Result == nil {
			continue
		}
		if c.Result.Kind == plan.ResultError {
			msgs = append(msgs, c.Result.Err)
		}
	}
	if len(msgs) == 0 {
		return plan.Ok()
	}
	return plan.ErrorResult(strings.Join(msgs, "; "))
}
