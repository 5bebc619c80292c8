package matchctx

import (
	"github.com/pact-foundation/pact-go-matching/docpath"
	"github.com/pact-foundation/pact-go-matching/interaction"
	"github.com/pact-foundation/pact-go-matching/matchrule"
)

// Document is the minimal identifying metadata of the contract a context
// was built from. Loading a full contract document from disk or a broker
// is an external collaborator's job; the core only needs
// enough of the document to label diagnostics.
type Document struct {
	Consumer string
	Provider string
}

// Context carries the contract document, the interaction under test, the
// active rule category, and the matching configuration. It is a value
// type: copying it is cheap, and every narrowing method below returns a
// new value rather than mutating the receiver.
type Context struct {
	Document Document
	Request  *interaction.HTTPRequest
	Response *interaction.HTTPResponse

	Category       matchrule.CategoryName
	activeCategory *matchrule.Category

	Config Config
}

// New builds a root context for matching req against an expected request,
// with no narrowed category selected yet.
func New(doc Document, req *interaction.HTTPRequest, resp *interaction.HTTPResponse, cfg Config) Context {
	return Context{Document: doc, Request: req, Response: resp, Config: cfg}
}

// ActiveCategory returns the rule category the context is currently
// narrowed to, or an empty category if narrow has not been called.
func (c Context) ActiveCategory() *matchrule.Category {
	if c.activeCategory == nil {
		return matchrule.NewCategory(c.Category)
	}
	return c.activeCategory
}

// SelectBestMatcher resolves the best matching rule list for path within
// the currently active category.
func (c Context) SelectBestMatcher(path docpath.DocPath) matchrule.List {
	return c.ActiveCategory().SelectBestMatcher(path)
}

func (c Context) narrow(name matchrule.CategoryName, cat *matchrule.Category, forBody bool) Context {
	next := c
	next.Category = name
	next.activeCategory = cat
	if forBody {
		next.Config.ShowTypesInErrors = true
	}
	return next
}

// ForMethod narrows the context to the "method" rule category of the
// request under test.
func (c Context) ForMethod() Context {
	return c.narrow(matchrule.CategoryMethod, c.Request.MatchingRulesFor(matchrule.CategoryMethod), false)
}

// ForPath narrows the context to the "path" rule category.
func (c Context) ForPath() Context {
	return c.narrow(matchrule.CategoryPath, c.Request.MatchingRulesFor(matchrule.CategoryPath), false)
}

// ForQuery narrows the context to the "query" rule category.
func (c Context) ForQuery() Context {
	return c.narrow(matchrule.CategoryQuery, c.Request.MatchingRulesFor(matchrule.CategoryQuery), false)
}

// ForHeaders narrows the context to the request's "header" rule category.
func (c Context) ForHeaders() Context {
	return c.narrow(matchrule.CategoryHeader, c.Request.MatchingRulesFor(matchrule.CategoryHeader), false)
}

// ForBody narrows the context to the request's "body" rule category,
// forcing ShowTypesInErrors on since body mismatches always report types.
func (c Context) ForBody() Context {
	return c.narrow(matchrule.CategoryBody, c.Request.MatchingRulesFor(matchrule.CategoryBody), true)
}

// ForStatus narrows the context to the response's "status" rule category.
func (c Context) ForStatus() Context {
	return c.narrow(matchrule.CategoryStatus, c.Response.MatchingRulesFor(matchrule.CategoryStatus), false)
}

// ForRespHeaders narrows the context to the response's "header" rule
// category.
func (c Context) ForRespHeaders() Context {
	return c.narrow(matchrule.CategoryHeader, c.Response.MatchingRulesFor(matchrule.CategoryHeader), false)
}

// ForRespBody narrows the context to the response's "body" rule category,
// forcing ShowTypesInErrors on.
func (c Context) ForRespBody() Context {
	return c.narrow(matchrule.CategoryBody, c.Response.MatchingRulesFor(matchrule.CategoryBody), true)
}
