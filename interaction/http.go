package interaction

import (
	"mime"
	"strings"

	"github.com/pact-foundation/pact-go-matching/matchrule"
)

// HTTPRequest is the expected or actual request half of an HTTP
// interaction.
type HTTPRequest struct {
	Method  string
	Path    string
	Query   map[string][]string
	Headers map[string][]string
	RawBody OptionalBody

	MatchingRules *matchrule.Categories
	GeneratorSets map[matchrule.CategoryName]Generators
}

// HTTPResponse is the expected or actual response half of an HTTP
// interaction.
type HTTPResponse struct {
	Status  uint16
	Headers map[string][]string
	RawBody OptionalBody

	MatchingRules *matchrule.Categories
	GeneratorSets map[matchrule.CategoryName]Generators
}

func (r *HTTPRequest) MatchingRulesFor(category matchrule.CategoryName) *matchrule.Category {
	if r == nil || r.MatchingRules == nil {
		return matchrule.NewCategory(category)
	}
	return r.MatchingRules.Get(category)
}

func (r *HTTPRequest) GeneratorsFor(category matchrule.CategoryName) Generators {
	if r == nil || r.GeneratorSets == nil {
		return nil
	}
	return r.GeneratorSets[category]
}

func (r *HTTPRequest) ContentType() string {
	return resolveContentType(r.Headers)
}

func (r *HTTPRequest) Body() OptionalBody {
	if r == nil {
		return NewMissingBody()
	}
	return r.RawBody
}

func (r *HTTPResponse) MatchingRulesFor(category matchrule.CategoryName) *matchrule.Category {
	if r == nil || r.MatchingRules == nil {
		return matchrule.NewCategory(category)
	}
	return r.MatchingRules.Get(category)
}

func (r *HTTPResponse) GeneratorsFor(category matchrule.CategoryName) Generators {
	if r == nil || r.GeneratorSets == nil {
		return nil
	}
	return r.GeneratorSets[category]
}

func (r *HTTPResponse) ContentType() string {
	return resolveContentType(r.Headers)
}

func (r *HTTPResponse) Body() OptionalBody {
	if r == nil {
		return NewMissingBody()
	}
	return r.RawBody
}

func resolveContentType(headers map[string][]string) string {
	for name, values := range headers {
		if strings.EqualFold(name, "content-type") && len(values) > 0 {
			ct, _, err := mime.ParseMediaType(values[0])
			if err != nil {
				return strings.TrimSpace(values[0])
			}
			return ct
		}
	}
	return ""
}

var (
	_ Interaction = (*HTTPRequest)(nil)
	_ Interaction = (*HTTPResponse)(nil)
)
