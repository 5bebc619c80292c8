package matchrule

import (
	"encoding/json"
	"testing"
)

func TestRuleJSONRoundTrip(t *testing.T) {
	cases := []MatchingRule{
		Equality{},
		Regex{Pattern: `\d+`},
		Type{},
		MinType{Min: 1},
		MaxType{Max: 5},
		MinMaxType{Min: 1, Max: 5},
		Include{Value: "sub"},
		Number{},
		Integer{},
		Decimal{},
		Null{},
		Date{Format: "yyyy-MM-dd"},
		Time{},
		Timestamp{},
		ContentType{Value: "application/json"},
		Values{},
		Boolean{},
		StatusCode{StatusKind: StatusSuccess},
		StatusCode{StatusKind: StatusExplicit, Codes: []int{200, 201}},
		NotEmpty{},
		Semver{},
		EachKey{Rules: NewList(And, Regex{Pattern: "^[a-z]+$"})},
		EachValue{Rules: NewList(And, Type{})},
		ArrayContains{Variants: []ArrayContainsVariant{{Index: 0, Rules: NewList(And, Equality{})}}},
	}

	for _, rule := range cases {
		b, err := ToJSON(rule)
		if err != nil {
			t.Fatalf("ToJSON(%#v): %v", rule, err)
		}

		got, err := FromJSON(b)
		if err != nil {
			t.Fatalf("FromJSON(%s): %v", b, err)
		}

		if !Equal(rule, got) {
			t.Errorf("round trip mismatch for %#v: got %#v (json %s)", rule, got, b)
		}
	}
}

func TestRegexJSONShape(t *testing.T) {
	b, err := ToJSON(Regex{Pattern: `\d+`})
	if err != nil {
		t.Fatal(err)
	}

	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	if m["match"] != "regex" || m["regex"] != `\d+` {
		t.Errorf("unexpected wire shape: %s", b)
	}
}

func TestFromJSONRejectsUnknownKind(t *testing.T) {
	_, err := FromJSON([]byte(`{"match":"bogus"}`))
	if err == nil {
		t.Fatal("expected error for unknown match kind")
	}
}

func TestArrayContainsWireShape(t *testing.T) {
	raw := []byte(`{"match":"arrayContains","variants":[{"index":0,"rules":{"combine":"AND","matchers":[{"match":"equality"}]}}]}`)
	r, err := FromJSON(raw)
	if err != nil {
		t.Fatal(err)
	}
	ac, ok := r.(ArrayContains)
	if !ok {
		t.Fatalf("expected ArrayContains, got %T", r)
	}
	if len(ac.Variants) != 1 || ac.Variants[0].Index != 0 {
		t.Fatalf("unexpected variants: %+v", ac.Variants)
	}
}
