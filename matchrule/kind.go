package matchrule

// Kind identifies the variant of a MatchingRule.
type Kind string

const (
	KindEquality      Kind = "equality"
	KindRegex         Kind = "regex"
	KindType          Kind = "type"
	KindMinType       Kind = "min-type"
	KindMaxType       Kind = "max-type"
	KindMinMaxType    Kind = "min-max-type"
	KindInclude       Kind = "include"
	KindNumber        Kind = "number"
	KindInteger       Kind = "integer"
	KindDecimal       Kind = "decimal"
	KindNull          Kind = "null"
	KindDate          Kind = "date"
	KindTime          Kind = "time"
	KindTimestamp     Kind = "timestamp"
	KindContentType   Kind = "content-type"
	KindValues        Kind = "values"
	KindBoolean       Kind = "boolean"
	KindStatusCode    Kind = "status-code"
	KindNotEmpty      Kind = "not-empty"
	KindSemver        Kind = "semver"
	KindEachKey       Kind = "each-key"
	KindEachValue     Kind = "each-value"
	KindArrayContains Kind = "array-contains"
)

// StatusCodeKind names the status code range a StatusCode rule accepts.
type StatusCodeKind string

const (
	StatusInfo        StatusCodeKind = "info"
	StatusSuccess     StatusCodeKind = "success"
	StatusRedirect    StatusCodeKind = "redirect"
	StatusClientError StatusCodeKind = "clientError"
	StatusServerError StatusCodeKind = "serverError"
	StatusNonError    StatusCodeKind = "nonError"
	StatusError       StatusCodeKind = "error"
	StatusExplicit    StatusCodeKind = "explicit"
)
