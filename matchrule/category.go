package matchrule

import "github.com/pact-foundation/pact-go-matching/docpath"

// CategoryName names a rule category axis.
type CategoryName string

const (
	CategoryMethod CategoryName = "method"
	CategoryPath   CategoryName = "path"
	CategoryQuery  CategoryName = "query"
	CategoryHeader CategoryName = "header"
	CategoryBody   CategoryName = "body"
	CategoryStatus CategoryName = "status"
)

type categoryEntry struct {
	path  docpath.DocPath
	rules List
}

// Category maps document paths to rule lists for a single axis. Entries
// preserve insertion order, which is the tie-breaker used by
// SelectBestMatcher when two paths score equally.
type Category struct {
	Name    CategoryName
	entries []categoryEntry
}

// NewCategory returns an empty category for the given axis.
func NewCategory(name CategoryName) *Category {
	return &Category{Name: name}
}

// Set registers (or replaces) the rule list for path, preserving the
// original insertion position on replace so tie-breaking stays stable.
func (c *Category) Set(path docpath.DocPath, rules List) {
	for i := range c.entries {
		if c.entries[i].path.String() == path.String() {
			c.entries[i].rules = rules
			return
		}
	}
	c.entries = append(c.entries, categoryEntry{path: path, rules: rules})
}

// Len reports how many distinct paths are registered.
func (c *Category) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// SelectBestMatcher picks, among registered paths that match candidate
// with weight > 0, the one maximising weight*length, breaking ties by
// insertion order, and marks the result cascaded if it was defined at a
// shorter (ancestor) path than candidate.
func (c *Category) SelectBestMatcher(candidate docpath.DocPath) List {
	if c == nil {
		return List{Logic: And}
	}

	bestIdx := -1
	bestScore := -1
	for i, e := range c.entries {
		w, t := e.path.PathWeight(candidate)
		if w <= 0 {
			continue
		}
		score := w * t
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestIdx == -1 {
		return List{Logic: And}
	}

	best := c.entries[bestIdx]
	result := best.rules
	result.Cascaded = best.path.Len() != candidate.Len()
	return result
}

// SelectBestMatcherFrom unions the weighted candidates considered against
// p1 and p2, picking the overall best, but reports Cascaded relative to
// p1 only. This supports header matching where both a
// canonically-cased and a lower-cased document path may be registered.
func (c *Category) SelectBestMatcherFrom(p1, p2 docpath.DocPath) List {
	if c == nil {
		return List{Logic: And}
	}

	bestIdx := -1
	bestScore := -1
	consider := func(candidate docpath.DocPath) {
		for i, e := range c.entries {
			w, t := e.path.PathWeight(candidate)
			if w <= 0 {
				continue
			}
			score := w * t
			if score > bestScore {
				bestScore = score
				bestIdx = i
			}
		}
	}
	consider(p1)
	consider(p2)

	if bestIdx == -1 {
		return List{Logic: And}
	}

	best := c.entries[bestIdx]
	result := best.rules
	result.Cascaded = best.path.Len() != p1.Len()
	return result
}

// MatcherIsDefined reports whether any registered path has positive
// weight against candidate.
func (c *Category) MatcherIsDefined(candidate docpath.DocPath) bool {
	if c == nil {
		return false
	}
	for _, e := range c.entries {
		if w, _ := e.path.PathWeight(candidate); w > 0 {
			return true
		}
	}
	return false
}

// TypeMatcherDefined reports whether the matcher resolved for candidate
// is one of the Type-family kinds.
func (c *Category) TypeMatcherDefined(candidate docpath.DocPath) bool {
	rl := c.SelectBestMatcher(candidate)
	return rl.HasKind(KindType, KindMinType, KindMaxType, KindMinMaxType)
}

// Categories groups rule categories by axis name. A category absent from
// the map behaves like an empty Category. Categories do not
// cross-contaminate: looking up one name never exposes another's rules.
type Categories struct {
	byName map[CategoryName]*Category
}

// NewCategories returns an empty set of rule categories.
func NewCategories() *Categories {
	return &Categories{byName: make(map[CategoryName]*Category)}
}

// Category returns the category for name, creating an empty one if
// necessary. Used while building up rule categories from a contract
// document.
func (cs *Categories) Category(name CategoryName) *Category {
	if cs.byName == nil {
		cs.byName = make(map[CategoryName]*Category)
	}
	c, ok := cs.byName[name]
	if !ok {
		c = NewCategory(name)
		cs.byName[name] = c
	}
	return c
}

// Get returns the category for name without creating it; callers get a
// non-nil empty Category if it was never populated, so method calls on
// the result are always safe.
func (cs *Categories) Get(name CategoryName) *Category {
	if cs == nil || cs.byName == nil {
		return NewCategory(name)
	}
	if c, ok := cs.byName[name]; ok {
		return c
	}
	return NewCategory(name)
}
