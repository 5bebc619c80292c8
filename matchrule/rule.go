package matchrule

// MatchingRule is a single matching policy attached to a document path.
// Concrete types implement one variant each; together they form a
// tagged union of the supported matcher kinds.
type MatchingRule interface {
	Kind() Kind
	equalRule(other MatchingRule) bool
}

// Equal reports whether two rules are the same kind with the same
// kind-specific configuration.
func Equal(a, b MatchingRule) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		return false
	}
	return a.equalRule(b)
}

// Equality matches when the actual value equals the expected literal.
type Equality struct{}

func (Equality) Kind() Kind                    { return KindEquality }
func (Equality) equalRule(other MatchingRule) bool { _, ok := other.(Equality); return ok }

// Regex matches when the actual string fully matches Pattern.
type Regex struct {
	Pattern string
}

func (Regex) Kind() Kind { return KindRegex }
func (r Regex) equalRule(other MatchingRule) bool {
	o, ok := other.(Regex)
	return ok && o.Pattern == r.Pattern
}

// Type matches any value of the same kind (string/number/bool/null/array/
// object) as the expected literal, with no bound on collection size.
type Type struct{}

func (Type) Kind() Kind                    { return KindType }
func (Type) equalRule(other MatchingRule) bool { _, ok := other.(Type); return ok }

// MinType is Type plus a minimum collection size bound.
type MinType struct {
	Min int
}

func (MinType) Kind() Kind { return KindMinType }
func (r MinType) equalRule(other MatchingRule) bool {
	o, ok := other.(MinType)
	return ok && o.Min == r.Min
}

// MaxType is Type plus a maximum collection size bound.
type MaxType struct {
	Max int
}

func (MaxType) Kind() Kind { return KindMaxType }
func (r MaxType) equalRule(other MatchingRule) bool {
	o, ok := other.(MaxType)
	return ok && o.Max == r.Max
}

// MinMaxType is Type bounded on both ends.
type MinMaxType struct {
	Min int
	Max int
}

func (MinMaxType) Kind() Kind { return KindMinMaxType }
func (r MinMaxType) equalRule(other MatchingRule) bool {
	o, ok := other.(MinMaxType)
	return ok && o.Min == r.Min && o.Max == r.Max
}

// Include matches when the actual string contains Value as a substring.
type Include struct {
	Value string
}

func (Include) Kind() Kind { return KindInclude }
func (r Include) equalRule(other MatchingRule) bool {
	o, ok := other.(Include)
	return ok && o.Value == r.Value
}

// Number matches any numeric value.
type Number struct{}

func (Number) Kind() Kind                    { return KindNumber }
func (Number) equalRule(other MatchingRule) bool { _, ok := other.(Number); return ok }

// Integer matches any integral numeric value.
type Integer struct{}

func (Integer) Kind() Kind                    { return KindInteger }
func (Integer) equalRule(other MatchingRule) bool { _, ok := other.(Integer); return ok }

// Decimal matches any non-integral numeric value.
type Decimal struct{}

func (Decimal) Kind() Kind                    { return KindDecimal }
func (Decimal) equalRule(other MatchingRule) bool { _, ok := other.(Decimal); return ok }

// Null matches only a JSON null / Go nil value.
type Null struct{}

func (Null) Kind() Kind                    { return KindNull }
func (Null) equalRule(other MatchingRule) bool { _, ok := other.(Null); return ok }

// Date matches a string containing a date in Format (ISO-8601 if empty).
type Date struct {
	Format string
}

func (Date) Kind() Kind { return KindDate }
func (r Date) equalRule(other MatchingRule) bool {
	o, ok := other.(Date)
	return ok && o.Format == r.Format
}

// Time matches a string containing a time in Format (ISO-8601 if empty).
type Time struct {
	Format string
}

func (Time) Kind() Kind { return KindTime }
func (r Time) equalRule(other MatchingRule) bool {
	o, ok := other.(Time)
	return ok && o.Format == r.Format
}

// Timestamp matches a string containing a timestamp in Format
// (ISO-8601 if empty).
type Timestamp struct {
	Format string
}

func (Timestamp) Kind() Kind { return KindTimestamp }
func (r Timestamp) equalRule(other MatchingRule) bool {
	o, ok := other.(Timestamp)
	return ok && o.Format == r.Format
}

// ContentType matches when the resolved content type equals Value,
// ignoring parameters.
type ContentType struct {
	Value string
}

func (ContentType) Kind() Kind { return KindContentType }
func (r ContentType) equalRule(other MatchingRule) bool {
	o, ok := other.(ContentType)
	return ok && o.Value == r.Value
}

// Values matches the values of a map/object structurally, ignoring keys
// not present in the expected template.
type Values struct{}

func (Values) Kind() Kind                    { return KindValues }
func (Values) equalRule(other MatchingRule) bool { _, ok := other.(Values); return ok }

// Boolean matches any boolean value.
type Boolean struct{}

func (Boolean) Kind() Kind                    { return KindBoolean }
func (Boolean) equalRule(other MatchingRule) bool { _, ok := other.(Boolean); return ok }

// StatusCode matches an HTTP status code against a named range, or an
// explicit set of codes when StatusKind is StatusExplicit.
type StatusCode struct {
	StatusKind StatusCodeKind
	Codes      []int
}

func (StatusCode) Kind() Kind { return KindStatusCode }
func (r StatusCode) equalRule(other MatchingRule) bool {
	o, ok := other.(StatusCode)
	if !ok || o.StatusKind != r.StatusKind || len(o.Codes) != len(r.Codes) {
		return false
	}
	for i := range r.Codes {
		if r.Codes[i] != o.Codes[i] {
			return false
		}
	}
	return true
}

// NotEmpty matches any non-empty string, array or object.
type NotEmpty struct{}

func (NotEmpty) Kind() Kind                    { return KindNotEmpty }
func (NotEmpty) equalRule(other MatchingRule) bool { _, ok := other.(NotEmpty); return ok }

// Semver matches a string containing a valid semantic version.
type Semver struct{}

func (Semver) Kind() Kind                    { return KindSemver }
func (Semver) equalRule(other MatchingRule) bool { _, ok := other.(Semver); return ok }

// EachKey applies Rules to every key of the actual object.
type EachKey struct {
	Rules List
}

func (EachKey) Kind() Kind { return KindEachKey }
func (r EachKey) equalRule(other MatchingRule) bool {
	o, ok := other.(EachKey)
	return ok && r.Rules.Equal(o.Rules)
}

// EachValue applies Rules to every value of the actual object or array.
type EachValue struct {
	Rules List
}

func (EachValue) Kind() Kind { return KindEachValue }
func (r EachValue) equalRule(other MatchingRule) bool {
	o, ok := other.(EachValue)
	return ok && r.Rules.Equal(o.Rules)
}

// ArrayContainsVariant pins a set of rules to a specific array index for
// ArrayContains.
type ArrayContainsVariant struct {
	Index int
	Rules List
}

// ArrayContains matches when the actual array contains, at each named
// Index, an element conforming to the rules of that Variant.
type ArrayContains struct {
	Variants []ArrayContainsVariant
}

func (ArrayContains) Kind() Kind { return KindArrayContains }
func (r ArrayContains) equalRule(other MatchingRule) bool {
	o, ok := other.(ArrayContains)
	if !ok || len(o.Variants) != len(r.Variants) {
		return false
	}
	for i := range r.Variants {
		if r.Variants[i].Index != o.Variants[i].Index || !r.Variants[i].Rules.Equal(o.Variants[i].Rules) {
			return false
		}
	}
	return true
}
