package planexec

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/pact-foundation/pact-go-matching/docpath"
	"github.com/pact-foundation/pact-go-matching/header"
	"github.com/pact-foundation/pact-go-matching/interaction"
	"github.com/pact-foundation/pact-go-matching/plan"
)

// actual is the small surface the evaluator needs from whichever actual
// interaction half (request or response) a plan was built against.
// Resolve and content-type() both dispatch through it, keeping the
// evaluator itself agnostic to which half it is walking.
type actual interface {
	resolve(path docpath.DocPath) (plan.NodeValue, bool)
	contentType() string
}

type requestActual struct {
	req *interaction.HTTPRequest
}

func (a requestActual) contentType() string {
	if a.req == nil {
		return ""
	}
	return a.req.ContentType()
}

func (a requestActual) resolve(path docpath.DocPath) (plan.NodeValue, bool) {
	tokens := path.Tokens()
	if len(tokens) < 2 || a.req == nil {
		return plan.NullValue(), false
	}

	switch tokens[1].Field {
	case "method":
		return plan.StringValue(a.req.Method), true
	case "path":
		return plan.StringValue(a.req.Path), true
	case "query":
		if len(tokens) == 2 {
			return resolveMapKeys(a.req.Query, false), true
		}
		return resolveMapField(a.req.Query, tokens[2:], false)
	case "headers":
		if len(tokens) == 2 {
			return resolveMapKeys(a.req.Headers, true), true
		}
		return resolveMapField(a.req.Headers, tokens[2:], true)
	case "body":
		return resolveBody(a.req.RawBody.Bytes, tokens[2:])
	default:
		return plan.NullValue(), false
	}
}

type responseActual struct {
	resp *interaction.HTTPResponse
}

func (a responseActual) contentType() string {
	if a.resp == nil {
		return ""
	}
	return a.resp.ContentType()
}

func (a responseActual) resolve(path docpath.DocPath) (plan.NodeValue, bool) {
	tokens := path.Tokens()
	if len(tokens) < 2 || a.resp == nil {
		return plan.NullValue(), false
	}

	switch tokens[1].Field {
	case "status":
		return plan.NumberValue(float64(a.resp.Status)), true
	case "headers":
		if len(tokens) == 2 {
			return resolveMapKeys(a.resp.Headers, true), true
		}
		return resolveMapField(a.resp.Headers, tokens[2:], true)
	case "body":
		return resolveBody(a.resp.RawBody.Bytes, tokens[2:])
	default:
		return plan.NullValue(), false
	}
}

// resolveMapField resolves "$.query.<key>" / "$.headers.<key>" style
// paths against a raw multi-valued map, applying header-value splitting
// only when splitHeader is true.
func resolveMapField(values map[string][]string, rest []docpath.Token, splitHeader bool) (plan.NodeValue, bool) {
	if len(rest) == 0 {
		return plan.NullValue(), false
	}
	key := rest[0].Field

	lines, ok := lookupCaseInsensitive(values, key)
	if !ok {
		return plan.NullValue(), false
	}

	var flat []string
	if splitHeader {
		for _, line := range lines {
			flat = append(flat, header.ParseValues(key, line)...)
		}
	} else {
		flat = lines
	}

	items := make([]plan.NodeValue, len(flat))
	for i, s := range flat {
		items[i] = plan.StringValue(s)
	}
	return plan.ArrayValue(items...), true
}

// resolveMapKeys lists the distinct keys actually present in values, used
// to resolve "$.query"/"$.headers" themselves (no trailing field) so an
// %expect:no-unexpected-keys guard can compare them against the keys the
// plan was built with. Header keys are lower-cased to match the
// canonicalisation buildHeaders already applies to expected keys.
func resolveMapKeys(values map[string][]string, lowerCase bool) plan.NodeValue {
	seen := make(map[string]bool, len(values))
	items := make([]plan.NodeValue, 0, len(values))
	for k := range values {
		key := k
		if lowerCase {
			key = strings.ToLower(k)
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		items = append(items, plan.StringValue(key))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Str < items[j].Str })
	return plan.ArrayValue(items...)
}

func lookupCaseInsensitive(values map[string][]string, key string) ([]string, bool) {
	if v, ok := values[key]; ok {
		return v, true
	}
	for k, v := range values {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}

func resolveBody(raw []byte, rest []docpath.Token) (plan.NodeValue, bool) {
	if len(raw) == 0 {
		return plan.NullValue(), false
	}
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return plan.NullValue(), false
	}
	return resolveJSONTokens(doc, rest)
}

func resolveJSONTokens(doc interface{}, tokens []docpath.Token) (plan.NodeValue, bool) {
	cur := doc
	for _, t := range tokens {
		switch t.Kind {
		case docpath.Field:
			m, ok := cur.(map[string]interface{})
			if !ok {
				return plan.NullValue(), false
			}
			v, ok := m[t.Field]
			if !ok {
				return plan.NullValue(), false
			}
			cur = v
		case docpath.Index:
			arr, ok := cur.([]interface{})
			if !ok || t.Index < 0 || t.Index >= len(arr) {
				return plan.NullValue(), false
			}
			cur = arr[t.Index]
		default:
			return plan.NullValue(), false
		}
	}
	return jsonToNodeValue(cur), true
}

// JSONToNodeValue converts a decoded encoding/json value (nil, string,
// float64, bool, []interface{} or map[string]interface{}) into the
// NodeValue shape plan leaves carry. planbuild reuses it to build literal
// expected values from the same JSON documents the evaluator resolves
// actual values from, so both sides agree on number and kind rendering.
func JSONToNodeValue(v interface{}) plan.NodeValue {
	return jsonToNodeValue(v)
}

func jsonToNodeValue(v interface{}) plan.NodeValue {
	switch x := v.(type) {
	case nil:
		return plan.NullValue()
	case string:
		return plan.StringValue(x)
	case float64:
		return plan.NumberValue(x)
	case bool:
		return plan.BoolValue(x)
	case []interface{}:
		items := make([]plan.NodeValue, len(x))
		for i, e := range x {
			items[i] = jsonToNodeValue(e)
		}
		return plan.ArrayValue(items...)
	case map[string]interface{}:
		obj := make(map[string]plan.NodeValue, len(x))
		for k, e := range x {
			obj[k] = jsonToNodeValue(e)
		}
		return plan.ObjectValue(obj)
	default:
		return plan.NullValue()
	}
}
