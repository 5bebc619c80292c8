package pactlog

import (
	"strings"
	"testing"

	"github.com/pact-foundation/pact-go-matching/matchctx"
	"github.com/pact-foundation/pact-go-matching/plan"
	"github.com/sirupsen/logrus"
)

func TestCustomOutputForApplicationLog(t *testing.T) {
	buf := &Buffer{}
	Init(Options{Output: buf})
	std.Info("hello, world")

	if !strings.Contains(buf.String(), "hello, world") {
		t.Error("failed to use custom output")
	}
}

func TestCustomPrefixForApplicationLog(t *testing.T) {
	buf := &Buffer{}
	Init(Options{Output: buf, Prefix: "[TEST_PREFIX]"})
	std.Info("hello, world")

	got := buf.String()
	if !strings.HasPrefix(got, "[TEST_PREFIX]") {
		t.Errorf("expected prefix, got %q", got)
	}
}

func TestApplicationLogJSONEnabled(t *testing.T) {
	buf := &Buffer{}
	Init(Options{Output: buf, JSONEnabled: true})
	std.Info("hello, json")

	if !strings.Contains(buf.String(), `"msg":"hello, json"`) {
		t.Errorf("expected JSON-formatted log line, got %q", buf.String())
	}
}

func TestBufferDrainResets(t *testing.T) {
	buf := &Buffer{}
	Init(Options{Output: buf})
	std.Info("one")

	drained := buf.Drain()
	if !strings.Contains(drained, "one") {
		t.Errorf("expected drained content to contain %q, got %q", "one", drained)
	}
	if buf.String() != "" {
		t.Error("expected buffer to be empty after Drain")
	}
}

func TestLogExecutedPlanGatedByConfig(t *testing.T) {
	buf := &Buffer{}
	Init(Options{Output: buf})

	leaf := plan.NewValue(plan.StringValue("GET"))
	leaf.Result = &plan.Result{Kind: plan.ResultOk}
	root := plan.NewContainer("request", leaf)

	LogExecutedPlan(root, matchctx.Config{LogExecutedPlan: false})
	if buf.String() != "" {
		t.Error("expected no log output when LogExecutedPlan is false")
	}

	LogExecutedPlan(root, matchctx.Config{LogExecutedPlan: true})
	if !strings.Contains(buf.String(), ":request(") {
		t.Errorf("expected plan text in log output, got %q", buf.String())
	}
}

func TestLogPlanSummaryTally(t *testing.T) {
	buf := &Buffer{}
	Init(Options{Output: buf})

	ok := plan.NewValue(plan.StringValue("a"))
	ok.Result = &plan.Result{Kind: plan.ResultOk}
	failed := plan.NewValue(plan.StringValue("b"))
	failed.Result = &plan.Result{Kind: plan.ResultError, Err: "boom"}
	root := plan.NewContainer("request", ok, failed)

	LogPlanSummary(root, matchctx.Config{LogPlanSummary: true})
	if !strings.Contains(buf.String(), "failed=1") {
		t.Errorf("expected tally in log output, got %q", buf.String())
	}
}

var _ logrus.Formatter = (*prefixFormatter)(nil)
