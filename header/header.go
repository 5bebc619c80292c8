// Package header implements RFC-aware splitting of HTTP header values
// into their single- or multi-value form.
package header

import "strings"

// multiValue is the fixed set of header names (lower-cased) that are
// comma-separated lists per RFC 7230/7231/fetch, and therefore safe to
// split on commas. Every other header, including ones with opaque or
// structured single values (Date, User-Agent, Set-Cookie, custom
// x-* headers carrying JSON), is treated as a single value.
var multiValue = map[string]bool{
	"accept":                           true,
	"accept-encoding":                  true,
	"accept-language":                  true,
	"access-control-allow-headers":     true,
	"access-control-allow-methods":     true,
	"access-control-expose-headers":    true,
	"access-control-request-headers":   true,
	"allow":                            true,
	"cache-control":                    true,
	"if-match":                         true,
	"if-none-match":                    true,
	"vary":                             true,
}

// Parsed is a header value split according to its canonicalisation rule,
// keeping both the originally-received name and its lower-cased lookup
// key.
type Parsed struct {
	Name          string
	CanonicalName string
	Values        []string
}

// Parse splits value into its element form for header name. Only header
// names in the fixed multi-value set are split on commas; every other
// header returns a single trimmed element, preserving commas that occur
// inside opaque or structured values.
func Parse(name, value string) Parsed {
	canonical := strings.ToLower(name)

	if !multiValue[canonical] {
		return Parsed{Name: name, CanonicalName: canonical, Values: []string{strings.TrimSpace(value)}}
	}

	parts := strings.Split(value, ",")
	values := make([]string, len(parts))
	for i, p := range parts {
		values[i] = strings.TrimSpace(p)
	}
	return Parsed{Name: name, CanonicalName: canonical, Values: values}
}

// ParseValues is a convenience wrapper returning only the split values.
func ParseValues(name, value string) []string {
	return Parse(name, value).Values
}
