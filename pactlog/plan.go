package pactlog

import (
	"fmt"

	"github.com/pact-foundation/pact-go-matching/matchctx"
	"github.com/pact-foundation/pact-go-matching/plan"
)

// LogExecutedPlan logs the full executed pretty form of root when
// cfg.LogExecutedPlan is set.
func LogExecutedPlan(root *plan.Node, cfg matchctx.Config) {
	if !cfg.LogExecutedPlan || root == nil {
		return
	}
	applyColour(cfg.ColouredOutput)
	std.WithField("component", "plan").Info("\n" + root.PrettyExecuted())
}

// LogPlanSummary logs a one-line pass/fail tally when cfg.LogPlanSummary
// is set.
func LogPlanSummary(root *plan.Node, cfg matchctx.Config) {
	if !cfg.LogPlanSummary || root == nil {
		return
	}
	applyColour(cfg.ColouredOutput)
	ok, failed, skipped := tally(root)
	std.WithField("component", "plan").Info(fmt.Sprintf("ok=%d failed=%d skipped=%d", ok, failed, skipped))
}

func tally(n *plan.Node) (ok, failed, skipped int) {
	if n == nil || n.Type == plan.Empty {
		return
	}
	if n.Result != nil {
		switch {
		case n.Result.IsError():
			failed++
		case n.Result.IsSkipped():
			skipped++
		default:
			ok++
		}
	}
	for _, c := range n.Children {
		co, cf, cs := tally(c)
		ok += co
		failed += cf
		skipped += cs
	}
	return
}
