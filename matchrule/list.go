package matchrule

// Logic combines the rules in a List.
type Logic string

const (
	And Logic = "AND"
	Or  Logic = "OR"
)

// List is an ordered sequence of matching rules plus the logic used to
// combine their verdicts, and a flag recording whether the list was
// selected from an ancestor path rather than defined at the queried path.
type List struct {
	Rules    []MatchingRule
	Logic    Logic
	Cascaded bool
}

// NewList builds a List with the given logic (defaulting to And when
// logic is the empty string).
func NewList(logic Logic, rules ...MatchingRule) List {
	if logic == "" {
		logic = And
	}
	return List{Rules: rules, Logic: logic}
}

// Empty reports whether the list carries no rules.
func (l List) Empty() bool {
	return len(l.Rules) == 0
}

// Equal compares two lists ignoring the Cascaded flag, which reflects
// how a list was selected rather than what it contains.
func (l List) Equal(other List) bool {
	if l.Logic != other.Logic || len(l.Rules) != len(other.Rules) {
		return false
	}
	for i := range l.Rules {
		if !Equal(l.Rules[i], other.Rules[i]) {
			return false
		}
	}
	return true
}

// HasKind reports whether any rule in the list is one of the given kinds.
func (l List) HasKind(kinds ...Kind) bool {
	for _, r := range l.Rules {
		for _, k := range kinds {
			if r.Kind() == k {
				return true
			}
		}
	}
	return false
}
