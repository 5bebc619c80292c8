package docpath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TokenKind identifies the shape of a single DocPath segment.
type TokenKind int

const (
	// Root is always the first token of a well-formed DocPath.
	Root TokenKind = iota
	// Field addresses a named object member, e.g. ".body".
	Field
	// Index addresses a numbered array element, e.g. "[0]".
	Index
	// Wildcard addresses "any member" or "any element", e.g. ".*" or "[*]".
	Wildcard
)

// Token is a single segment of a DocPath.
type Token struct {
	Kind  TokenKind
	Field string
	Index int
	// Bracket records that a Wildcard was written "[*]" rather than ".*";
	// it only affects String.
	Bracket bool
}

func (t Token) String() string {
	switch t.Kind {
	case Root:
		return "$"
	case Field:
		return "." + t.Field
	case Index:
		return fmt.Sprintf("[%d]", t.Index)
	case Wildcard:
		if t.Bracket {
			return "[*]"
		}
		return ".*"
	default:
		return "?"
	}
}

// DocPath is an ordered, immutable sequence of path tokens rooted at "$".
// DocPath values are cheap to copy and are never mutated in place; every
// mutating-looking method returns a new value, mirroring the value-like
// contract laid out for rule categories, plans and contexts.
type DocPath struct {
	tokens []Token
}

// NewRoot returns the DocPath consisting only of the root token "$".
func NewRoot() DocPath {
	return DocPath{tokens: []Token{{Kind: Root}}}
}

// Field returns a new DocPath with a field segment appended.
func (p DocPath) Field(name string) DocPath {
	return p.appended(Token{Kind: Field, Field: name})
}

// Index returns a new DocPath with an array index segment appended.
func (p DocPath) Index(i int) DocPath {
	return p.appended(Token{Kind: Index, Index: i})
}

// WildcardField returns a new DocPath with a "match any member" segment
// appended.
func (p DocPath) WildcardField() DocPath {
	return p.appended(Token{Kind: Wildcard})
}

func (p DocPath) appended(t Token) DocPath {
	next := make([]Token, len(p.tokens)+1)
	copy(next, p.tokens)
	next[len(p.tokens)] = t
	return DocPath{tokens: next}
}

// Tokens returns a defensive copy of the underlying token slice.
func (p DocPath) Tokens() []Token {
	out := make([]Token, len(p.tokens))
	copy(out, p.tokens)
	return out
}

// Len returns the number of tokens after the root, i.e. the "length" used
// in the path-weighting formula.
func (p DocPath) Len() int {
	if len(p.tokens) == 0 {
		return 0
	}
	return len(p.tokens) - 1
}

// Strings renders the path as an ordered string vector, one entry per
// token, root included.
func (p DocPath) Strings() []string {
	out := make([]string, len(p.tokens))
	for i, t := range p.tokens {
		out[i] = t.String()
	}
	return out
}

// Equal reports whether two paths have identical token sequences. It
// gives github.com/google/go-cmp a cheap, correct comparison for DocPath
// despite its unexported token slice.
func (p DocPath) Equal(other DocPath) bool {
	return p.String() == other.String()
}

// String renders the path in JSONPath-like form, e.g. "$.body.items[0].*".
func (p DocPath) String() string {
	var b strings.Builder
	for _, t := range p.tokens {
		b.WriteString(t.String())
	}
	return b.String()
}

var (
	fieldRx    = regexp.MustCompile(`^\.([A-Za-z_][A-Za-z0-9_-]*|"[^"]*")`)
	indexRx    = regexp.MustCompile(`^\[(\d+)\]`)
	wildcardRx = regexp.MustCompile(`^(\.\*|\[\*\])`)
)

// Parse tokenises a JSONPath-like expression such as "$.body.items[0].*"
// into a DocPath. The grammar is deliberately small: a leading "$", then
// any sequence of ".field", "[index]" or wildcard (".*"/"[*]") segments.
func Parse(expr string) (DocPath, error) {
	if !strings.HasPrefix(expr, "$") {
		return DocPath{}, fmt.Errorf("docpath: path %q must start with \"$\"", expr)
	}

	p := NewRoot()
	rest := expr[1:]
	for rest != "" {
		switch {
		case wildcardRx.MatchString(rest):
			m := wildcardRx.FindString(rest)
			p = p.appended(Token{Kind: Wildcard, Bracket: m == "[*]"})
			rest = rest[len(m):]
		case indexRx.MatchString(rest):
			m := indexRx.FindStringSubmatch(rest)
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return DocPath{}, fmt.Errorf("docpath: invalid index in %q: %w", expr, err)
			}
			p = p.appended(Token{Kind: Index, Index: n})
			rest = rest[len(m[0]):]
		case fieldRx.MatchString(rest):
			m := fieldRx.FindStringSubmatch(rest)
			name := strings.Trim(m[1], `"`)
			p = p.appended(Token{Kind: Field, Field: name})
			rest = rest[len(m[0]):]
		default:
			return DocPath{}, fmt.Errorf("docpath: cannot parse %q at %q", expr, rest)
		}
	}

	return p, nil
}

// MustParse is like Parse but panics on error; intended for constructing
// fixed paths from literal strings in builder code and tests.
func MustParse(expr string) DocPath {
	p, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// PathWeight scores how specifically this path (typically a rule path)
// matches candidate (typically the path of the value under test).
// It returns (weight, length) where weight is 0 if this
// path does not match candidate at all, and otherwise a positive integer
// that grows with the specificity of the match: a literal segment scores
// higher than a wildcard. length is the number of tokens after the root
// in this path (the receiver, see Len), used by callers to compute weight*length and to decide
// the "cascaded" flag.
func (p DocPath) PathWeight(candidate DocPath) (weight int, length int) {
	length = p.Len()

	if len(p.tokens) > len(candidate.tokens) {
		return 0, length
	}

	weight = 1
	for i, rt := range p.tokens {
		ct := candidate.tokens[i]

		switch rt.Kind {
		case Root:
			if ct.Kind != Root {
				return 0, length
			}
		case Wildcard:
			if ct.Kind != Field && ct.Kind != Index {
				return 0, length
			}
			weight *= 1
		case Field:
			if ct.Kind != Field || ct.Field != rt.Field {
				return 0, length
			}
			weight *= 2
		case Index:
			if ct.Kind != Index || ct.Index != rt.Index {
				return 0, length
			}
			weight *= 2
		default:
			return 0, length
		}
	}

	return weight, length
}
