package header

import (
	"reflect"
	"testing"
)

func TestParseMultiValueHeader(t *testing.T) {
	got := ParseValues("Accept", "a, b ,c")
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseValues(Accept) = %v, want %v", got, want)
	}
}

func TestParseSingleValueHeaderPreservesCommas(t *testing.T) {
	for _, name := range []string{"Date", "User-Agent", "Set-Cookie", "x-custom"} {
		value := "Mon, 02 Jan 2006 15:04:05 GMT"
		got := ParseValues(name, value)
		want := []string{value}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("ParseValues(%s) = %v, want %v", name, got, want)
		}
	}
}

func TestParseOpaqueJSONHeader(t *testing.T) {
	value := `{"foo":"bar,baz","arr":[1,2,3]}`
	got := ParseValues("x-custom-json", value)
	want := []string{value}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseValues(x-custom-json) = %v, want %v", got, want)
	}
}

func TestParseTrimsSingleValue(t *testing.T) {
	got := ParseValues("X-Trace-Id", "  abc123  ")
	if len(got) != 1 || got[0] != "abc123" {
		t.Errorf("expected trimmed single value, got %v", got)
	}
}

func TestParseCanonicalName(t *testing.T) {
	p := Parse("Content-Type", "application/json")
	if p.Name != "Content-Type" || p.CanonicalName != "content-type" {
		t.Errorf("unexpected Parsed: %+v", p)
	}
}
