package planexec

import (
	"strings"
	"testing"

	"github.com/pact-foundation/pact-go-matching/docpath"
	"github.com/pact-foundation/pact-go-matching/interaction"
	"github.com/pact-foundation/pact-go-matching/matchctx"
	"github.com/pact-foundation/pact-go-matching/plan"
)

func methodPlan() *plan.Node {
	return plan.NewContainer("request",
		plan.NewContainer("method",
			plan.NewAction(ActionMatchEquality,
				plan.NewAction(ActionUpperCase, plan.NewResolve(docpath.NewRoot().Field("method"))),
				plan.NewValue(plan.StringValue("POST")),
			),
		),
	)
}

func TestMatchEqualitySucceeds(t *testing.T) {
	root := methodPlan()
	req := &interaction.HTTPRequest{Method: "post"}
	ExecuteRequest(root, matchctx.Config{}, req, nil)

	action := root.Children[0].Children[0]
	if !action.Result.IsOk() {
		t.Fatalf("expected Ok, got %v", action.Result)
	}
	if !root.Children[0].Result.IsOk() {
		t.Error(":method container should be Ok when its only child is Ok")
	}
}

func TestMatchEqualityFailureMessage(t *testing.T) {
	root := methodPlan()
	req := &interaction.HTTPRequest{Method: "get"}
	ExecuteRequest(root, matchctx.Config{}, req, nil)

	action := root.Children[0].Children[0]
	if !action.Result.IsError() {
		t.Fatalf("expected Error, got %v", action.Result)
	}
	if !strings.Contains(action.Result.Err, `"GET"`) || !strings.Contains(action.Result.Err, `"POST"`) {
		t.Errorf("message missing actual/expected literals: %s", action.Result.Err)
	}
}

func TestIfShortCircuitsFalsyGuard(t *testing.T) {
	// The request carries no body, so the guard resolves to Null (falsy).
	guard := plan.NewResolve(docpath.NewRoot().Field("body"))
	consequent := plan.NewAction(ActionMatchEquality,
		plan.NewResolve(docpath.NewRoot().Field("body")),
		plan.NewValue(plan.StringValue("x")),
	)
	ifNode := plan.NewAction(ActionIf, guard, consequent)
	root := plan.NewContainer("request", ifNode)

	req := &interaction.HTTPRequest{Headers: map[string][]string{"content-type": {"text/plain"}}}
	ExecuteRequest(root, matchctx.Config{}, req, nil)

	if !ifNode.Result.IsOk() {
		t.Fatalf("expected %%if with falsy guard to be Ok, got %v", ifNode.Result)
	}
	if !consequent.Result.IsSkipped() {
		t.Errorf("expected body to be skipped (Value(Null)), got %v", consequent.Result)
	}
}

func TestIfExecutesBodyWhenGuardTrue(t *testing.T) {
	guard := plan.NewAction(ActionMatchEquality,
		plan.NewAction(ActionContentType),
		plan.NewValue(plan.StringValue("application/json")),
	)
	consequent := plan.NewAction(ActionExpectPresent, plan.NewResolve(docpath.NewRoot().Field("body").Field("a")))
	ifNode := plan.NewAction(ActionIf, guard, consequent)
	root := plan.NewContainer("request", ifNode)

	req := &interaction.HTTPRequest{
		Headers: map[string][]string{"content-type": {"application/json"}},
		RawBody: interaction.NewPresentBody([]byte(`{"a":1}`), "application/json"),
	}
	ExecuteRequest(root, matchctx.Config{}, req, nil)

	if !ifNode.Result.IsOk() {
		t.Fatalf("expected Ok, got %v", ifNode.Result)
	}
	if !consequent.Result.IsOk() {
		t.Errorf("expected body to execute and succeed, got %v", consequent.Result)
	}
}

func TestExpectPresentReportsMissing(t *testing.T) {
	root := plan.NewAction(ActionExpectPresent, plan.NewResolve(docpath.NewRoot().Field("body").Field("a")))
	req := &interaction.HTTPRequest{RawBody: interaction.NewPresentBody([]byte(`{"b":"22"}`), "application/json")}
	ExecuteRequest(root, matchctx.Config{}, req, nil)

	if !root.Result.IsError() {
		t.Fatalf("expected Error, got %v", root.Result)
	}
	want := `Expected attribute "$.body.a" but it was missing`
	if root.Result.Err != want {
		t.Errorf("Err = %q, want %q", root.Result.Err, want)
	}
}

func TestMatchEqualityBodyMismatchScenario(t *testing.T) {
	root := plan.NewAction(ActionMatchEquality,
		plan.NewResolve(docpath.NewRoot().Field("body").Field("b")),
		plan.NewValue(plan.NumberValue(200.1)),
	)
	req := &interaction.HTTPRequest{RawBody: interaction.NewPresentBody([]byte(`{"b":"22"}`), "application/json")}
	ExecuteRequest(root, matchctx.Config{ShowTypesInErrors: true}, req, nil)

	want := `Expected attribute "$.body.b" to equal "22" (String) but it was 200.1 (Double)`
	if root.Result.Err != want {
		t.Errorf("Err = %q, want %q", root.Result.Err, want)
	}
}

func TestMatchEqualityOmitsKindWhenShowTypesInErrorsUnset(t *testing.T) {
	root := plan.NewAction(ActionMatchEquality,
		plan.NewResolve(docpath.NewRoot().Field("body").Field("b")),
		plan.NewValue(plan.NumberValue(200.1)),
	)
	req := &interaction.HTTPRequest{RawBody: interaction.NewPresentBody([]byte(`{"b":"22"}`), "application/json")}
	ExecuteRequest(root, matchctx.Config{}, req, nil)

	want := `Expected attribute "$.body.b" to equal "22" but it was 200.1`
	if root.Result.Err != want {
		t.Errorf("Err = %q, want %q", root.Result.Err, want)
	}
}

func TestUnknownActionIsFatal(t *testing.T) {
	root := plan.NewAction("no-such-action", plan.NewValue(plan.StringValue("x")))
	req := &interaction.HTTPRequest{}
	ExecuteRequest(root, matchctx.Config{}, req, nil)

	if !root.Result.IsError() {
		t.Fatalf("expected fatal Error, got %v", root.Result)
	}
}

func TestArityMismatchIsFatal(t *testing.T) {
	root := plan.NewAction(ActionMatchEquality, plan.NewValue(plan.StringValue("only one arg")))
	req := &interaction.HTTPRequest{}
	ExecuteRequest(root, matchctx.Config{}, req, nil)

	if !root.Result.IsError() || !strings.Contains(root.Result.Err, "expected 2 argument") {
		t.Fatalf("expected arity-mismatch fatal error, got %v", root.Result)
	}
}

func TestExecutorCompletenessEveryNodeHasResult(t *testing.T) {
	guard := plan.NewAction(ActionMatchEquality,
		plan.NewResolve(docpath.NewRoot().Field("headers").Field("content-type")),
		plan.NewValue(plan.StringValue("application/json")),
	)
	consequent := plan.NewContainer(":body",
		plan.NewAction(ActionExpectPresent, plan.NewResolve(docpath.NewRoot().Field("body").Field("a"))),
	)
	ifNode := plan.NewAction(ActionIf, guard, consequent)
	root := plan.NewContainer("request", ifNode, plan.NewEmpty())

	req := &interaction.HTTPRequest{Headers: map[string][]string{"content-type": {"text/plain"}}}
	ExecuteRequest(root, matchctx.Config{}, req, nil)

	var walk func(n *plan.Node)
	walk = func(n *plan.Node) {
		if n.Type == plan.Empty {
			return
		}
		if n.Result == nil {
			t.Errorf("node %v has nil Result", n)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
}

func TestContentTypeActionResolvesActualHeader(t *testing.T) {
	root := plan.NewAction(ActionContentType)
	req := &interaction.HTTPRequest{Headers: map[string][]string{"Content-Type": {"application/json; charset=utf-8"}}}
	ExecuteRequest(root, matchctx.Config{}, req, nil)

	if root.Result.Kind != plan.ResultValue {
		t.Fatalf("unexpected result %v", root.Result)
	}
	if got := root.Result.Value.Str; got != "application/json" {
		t.Errorf("content-type = %q, want %q", got, "application/json")
	}
}

func TestQueryResolveFlattensSequence(t *testing.T) {
	root := plan.NewAction(ActionMatchEquality,
		plan.NewResolve(docpath.NewRoot().Field("query").Field("tag")),
		plan.NewValue(plan.ArrayValue(plan.StringValue("a"), plan.StringValue("b"))),
	)
	req := &interaction.HTTPRequest{Query: map[string][]string{"tag": {"a", "b"}}}
	ExecuteRequest(root, matchctx.Config{}, req, nil)

	if !root.Result.IsOk() {
		t.Fatalf("expected Ok, got %v", root.Result)
	}
}

func TestExpectNoExtraKeysFailsOnUnknownQueryKey(t *testing.T) {
	root := plan.NewAction(ActionExpectNoExtraKeys,
		plan.NewResolve(docpath.NewRoot().Field("query")),
		plan.NewValue(plan.ArrayValue(plan.StringValue("page"))),
	)
	req := &interaction.HTTPRequest{Query: map[string][]string{"page": {"1"}, "debug": {"true"}}}
	ExecuteRequest(root, matchctx.Config{}, req, nil)

	if !root.Result.IsError() {
		t.Fatalf("expected Error for unexpected query key, got %v", root.Result)
	}
	if !strings.Contains(root.Result.Err, "debug") {
		t.Errorf("expected message to name the unexpected key, got %q", root.Result.Err)
	}
}

func TestExpectNoExtraKeysOkWhenActualKeysAreSubset(t *testing.T) {
	root := plan.NewAction(ActionExpectNoExtraKeys,
		plan.NewResolve(docpath.NewRoot().Field("headers")),
		plan.NewValue(plan.ArrayValue(plan.StringValue("accept"), plan.StringValue("content-type"))),
	)
	req := &interaction.HTTPRequest{Headers: map[string][]string{"Accept": {"application/json"}}}
	ExecuteRequest(root, matchctx.Config{}, req, nil)

	if !root.Result.IsOk() {
		t.Fatalf("expected Ok, got %v", root.Result)
	}
}

func TestResponseStatusResolves(t *testing.T) {
	root := plan.NewAction(ActionMatchEquality,
		plan.NewResolve(docpath.NewRoot().Field("status")),
		plan.NewValue(plan.NumberValue(200)),
	)
	resp := &interaction.HTTPResponse{Status: 200}
	ExecuteResponse(root, matchctx.Config{}, resp, nil)

	if !root.Result.IsOk() {
		t.Fatalf("expected Ok, got %v", root.Result)
	}
}
