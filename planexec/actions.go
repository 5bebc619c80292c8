package planexec

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pact-foundation/pact-go-matching/plan"
)

// Action names are the fixed identifiers the builder emits and the
// evaluator dispatches on. The set is closed: a name
// outside this registry is a plan fault, not a mismatch.
const (
	ActionMatchEquality     = "match:equality"
	ActionMatchRegex        = "match:regex"
	ActionMatchType         = "match:type"
	ActionMatchInclude      = "match:include"
	ActionExpectPresent     = "expect:present"
	ActionExpectEmpty       = "expect:empty"
	ActionExpectNoExtraKeys = "expect:no-unexpected-keys"
	ActionUpperCase         = "upper-case"
	ActionContentType       = "content-type"
	ActionIf                = "if"
)

// actionFunc implements one action's semantics. children are the action
// node's already-evaluated arguments, given as nodes (not bare values) so
// an action can recover the document path of a Resolve argument for its
// error message. A non-nil error is a fatal plan fault (arity or type
// mismatch); a returned Result of Ok or Error is an ordinary match
// verdict.
type actionFunc func(ec *evalContext, children []*plan.Node) (plan.Result, error)

var registry = map[string]actionFunc{
	ActionMatchEquality:     actionMatchEquality,
	ActionMatchRegex:        actionMatchRegex,
	ActionMatchType:         actionMatchType,
	ActionMatchInclude:      actionMatchInclude,
	ActionExpectPresent:     actionExpectPresent,
	ActionExpectEmpty:       actionExpectEmpty,
	ActionExpectNoExtraKeys: actionExpectNoExtraKeys,
	ActionUpperCase:         actionUpperCase,
	ActionContentType:       actionContentType,
}

func argValue(n *plan.Node) plan.NodeValue {
	if n == nil || n.Result == nil || n.Result.Kind != plan.ResultValue {
		return plan.NullValue()
	}
	return n.Result.Value
}

func argPath(n *plan.Node) string {
	if n != nil && n.Type == plan.Resolve {
		return n.Path.String()
	}
	return "<value>"
}

// kindName names a NodeValue's kind the way mismatch messages cite it:
// "Integer" and "Double" distinguish whole from fractional numbers.
func kindName(v plan.NodeValue) string {
	switch v.Kind {
	case plan.KindNull:
		return "Null"
	case plan.KindString:
		return "String"
	case plan.KindBool:
		return "Boolean"
	case plan.KindNumber:
		if v.Num == float64(int64(v.Num)) {
			return "Integer"
		}
		return "Double"
	case plan.KindArray:
		return "Array"
	case plan.KindObject:
		return "Object"
	case plan.KindBytes:
		return "Bytes"
	default:
		return "Unknown"
	}
}

func valuesEqual(a, b plan.NodeValue) bool {
	return a.StrForm() == b.StrForm()
}

func checkArity(name string, children []*plan.Node, want int) error {
	if len(children) != want {
		return fmt.Errorf("%s: expected %d argument(s), got %d", name, want, len(children))
	}
	return nil
}

func actionMatchEquality(ec *evalContext, children []*plan.Node) (plan.Result, error) {
	if err := checkArity(ActionMatchEquality, children, 2); err != nil {
		return plan.Result{}, err
	}
	actualVal, expectedVal := argValue(children[0]), argValue(children[1])
	if valuesEqual(actualVal, expectedVal) {
		return plan.Ok(), nil
	}
	var msg string
	if ec.config.ShowTypesInErrors {
		msg = fmt.Sprintf("Expected attribute %q to equal %s (%s) but it was %s (%s)",
			argPath(children[0]), actualVal.StrForm(), kindName(actualVal), expectedVal.StrForm(), kindName(expectedVal))
	} else {
		msg = fmt.Sprintf("Expected attribute %q to equal %s but it was %s",
			argPath(children[0]), actualVal.StrForm(), expectedVal.StrForm())
	}
	return plan.ErrorResult(msg), nil
}

func actionMatchRegex(_ *evalContext, children []*plan.Node) (plan.Result, error) {
	if err := checkArity(ActionMatchRegex, children, 2); err != nil {
		return plan.Result{}, err
	}
	actualVal, patternVal := argValue(children[0]), argValue(children[1])
	if actualVal.Kind != plan.KindString {
		return plan.Result{}, fmt.Errorf("%s: argument 0 must be a string, got %s", ActionMatchRegex, kindName(actualVal))
	}
	if patternVal.Kind != plan.KindString {
		return plan.Result{}, fmt.Errorf("%s: argument 1 must be a string pattern", ActionMatchRegex)
	}
	re, err := regexp.Compile("^(?:" + patternVal.Str + ")$")
	if err != nil {
		return plan.Result{}, fmt.Errorf("%s: invalid pattern %q: %w", ActionMatchRegex, patternVal.Str, err)
	}
	if re.MatchString(actualVal.Str) {
		return plan.Ok(), nil
	}
	msg := fmt.Sprintf("Expected attribute %q (%s) to match pattern %q", argPath(children[0]), actualVal.StrForm(), patternVal.Str)
	return plan.ErrorResult(msg), nil
}

func actionMatchType(_ *evalContext, children []*plan.Node) (plan.Result, error) {
	if err := checkArity(ActionMatchType, children, 2); err != nil {
		return plan.Result{}, err
	}
	actualVal, expectedVal := argValue(children[0]), argValue(children[1])
	if actualVal.Kind == expectedVal.Kind {
		return plan.Ok(), nil
	}
	msg := fmt.Sprintf("Expected attribute %q to be of type %s but it was %s", argPath(children[0]), kindName(expectedVal), kindName(actualVal))
	return plan.ErrorResult(msg), nil
}

func actionMatchInclude(_ *evalContext, children []*plan.Node) (plan.Result, error) {
	if err := checkArity(ActionMatchInclude, children, 2); err != nil {
		return plan.Result{}, err
	}
	actualVal, subVal := argValue(children[0]), argValue(children[1])
	if actualVal.Kind != plan.KindString || subVal.Kind != plan.KindString {
		return plan.Result{}, fmt.Errorf("%s: both arguments must be strings", ActionMatchInclude)
	}
	if strings.Contains(actualVal.Str, subVal.Str) {
		return plan.Ok(), nil
	}
	msg := fmt.Sprintf("Expected attribute %q (%s) to include %q", argPath(children[0]), actualVal.StrForm(), subVal.Str)
	return plan.ErrorResult(msg), nil
}

func actionExpectPresent(_ *evalContext, children []*plan.Node) (plan.Result, error) {
	if err := checkArity(ActionExpectPresent, children, 1); err != nil {
		return plan.Result{}, err
	}
	v := argValue(children[0])
	if !v.IsNull() {
		return plan.Ok(), nil
	}
	return plan.ErrorResult(fmt.Sprintf("Expected attribute %q but it was missing", argPath(children[0]))), nil
}

func actionExpectEmpty(_ *evalContext, children []*plan.Node) (plan.Result, error) {
	if err := checkArity(ActionExpectEmpty, children, 1); err != nil {
		return plan.Result{}, err
	}
	v := argValue(children[0])
	empty := v.IsNull() ||
		(v.Kind == plan.KindArray && len(v.Array) == 0) ||
		(v.Kind == plan.KindObject && len(v.Object) == 0) ||
		(v.Kind == plan.KindString && v.Str == "")
	if empty {
		return plan.Ok(), nil
	}
	return plan.ErrorResult(fmt.Sprintf("Expected attribute %q to be empty but it was %s", argPath(children[0]), v.StrForm())), nil
}

// actionExpectNoExtraKeys backs the allow_unexpected_entries guard: children[0]
// resolves to the actual keys present at a query/header base path,
// children[1] is the literal set of keys the plan was built with. Only
// emitted by the builder when allow_unexpected_entries is false.
func actionExpectNoExtraKeys(_ *evalContext, children []*plan.Node) (plan.Result, error) {
	if err := checkArity(ActionExpectNoExtraKeys, children, 2); err != nil {
		return plan.Result{}, err
	}
	actualVal, knownVal := argValue(children[0]), argValue(children[1])
	if actualVal.Kind != plan.KindArray || knownVal.Kind != plan.KindArray {
		return plan.Result{}, fmt.Errorf("%s: both arguments must be arrays of keys", ActionExpectNoExtraKeys)
	}
	known := make(map[string]bool, len(knownVal.Array))
	for _, k := range knownVal.Array {
		known[k.Str] = true
	}
	var extra []string
	for _, k := range actualVal.Array {
		if !known[k.Str] {
			extra = append(extra, k.Str)
		}
	}
	if len(extra) == 0 {
		return plan.Ok(), nil
	}
	msg := fmt.Sprintf("Expected attribute %q to contain no unexpected keys but found %q", argPath(children[0]), extra)
	return plan.ErrorResult(msg), nil
}

func actionUpperCase(_ *evalContext, children []*plan.Node) (plan.Result, error) {
	if err := checkArity(ActionUpperCase, children, 1); err != nil {
		return plan.Result{}, err
	}
	v := argValue(children[0])
	if v.Kind != plan.KindString {
		return plan.Result{}, fmt.Errorf("%s: argument 0 must be a string, got %s", ActionUpperCase, kindName(v))
	}
	return plan.ValueResult(plan.StringValue(strings.ToUpper(v.Str))), nil
}

func actionContentType(ec *evalContext, children []*plan.Node) (plan.Result, error) {
	if err := checkArity(ActionContentType, children, 0); err != nil {
		return plan.Result{}, err
	}
	return plan.ValueResult(plan.StringValue(ec.actual.contentType())), nil
}
