package matchrule

import (
	"encoding/json"
	"fmt"
)

// wireKind maps the internal Kind to the "match" discriminator used on
// the wire; Type/MinType/MaxType/MinMaxType share the wire
// kind "type", disambiguated by the presence of "min"/"max" fields.
func wireKind(k Kind) string {
	switch k {
	case KindEquality:
		return "equality"
	case KindRegex:
		return "regex"
	case KindType, KindMinType, KindMaxType, KindMinMaxType:
		return "type"
	case KindInclude:
		return "include"
	case KindNumber:
		return "number"
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	case KindNull:
		return "null"
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	case KindTimestamp:
		return "timestamp"
	case KindContentType:
		return "contentType"
	case KindValues:
		return "values"
	case KindBoolean:
		return "boolean"
	case KindStatusCode:
		return "statusCode"
	case KindNotEmpty:
		return "notEmpty"
	case KindSemver:
		return "semver"
	case KindEachKey:
		return "eachKey"
	case KindEachValue:
		return "eachValue"
	case KindArrayContains:
		return "arrayContains"
	default:
		return string(k)
	}
}

// wireRule is the envelope shape every MatchingRule round-trips through.
type wireRule struct {
	Match    string            `json:"match"`
	Regex    string            `json:"regex,omitempty"`
	Min      *int              `json:"min,omitempty"`
	Max      *int              `json:"max,omitempty"`
	Value    interface{}       `json:"value,omitempty"`
	Format   string            `json:"format,omitempty"`
	Status   string            `json:"status,omitempty"`
	Statuses []int             `json:"values,omitempty"`
	Rules    *List             `json:"rules,omitempty"`
	Variants []wireArrayVariant `json:"variants,omitempty"`
}

type wireArrayVariant struct {
	Index int  `json:"index"`
	Rules List `json:"rules"`
}

// ToJSON serialises a rule to its wire JSON representation.
func ToJSON(r MatchingRule) ([]byte, error) {
	w := wireRule{Match: wireKind(r.Kind())}

	switch v := r.(type) {
	case Equality, Number, Integer, Decimal, Null, Values, Boolean, NotEmpty, Semver, Type:
		// no extra fields
		_ = v
	case Regex:
		w.Regex = v.Pattern
	case MinType:
		m := v.Min
		w.Min = &m
	case MaxType:
		m := v.Max
		w.Max = &m
	case MinMaxType:
		mn, mx := v.Min, v.Max
		w.Min, w.Max = &mn, &mx
	case Include:
		w.Value = v.Value
	case Date:
		w.Format = v.Format
	case Time:
		w.Format = v.Format
	case Timestamp:
		w.Format = v.Format
	case ContentType:
		w.Value = v.Value
	case StatusCode:
		if v.StatusKind == StatusExplicit {
			w.Statuses = v.Codes
		} else {
			w.Status = string(v.StatusKind)
		}
	case EachKey:
		rl := v.Rules
		w.Rules = &rl
	case EachValue:
		rl := v.Rules
		w.Rules = &rl
	case ArrayContains:
		for _, variant := range v.Variants {
			w.Variants = append(w.Variants, wireArrayVariant{Index: variant.Index, Rules: variant.Rules})
		}
	default:
		return nil, fmt.Errorf("matchrule: unknown rule kind %T", r)
	}

	return json.Marshal(w)
}

// FromJSON parses a rule from its wire JSON representation. Unrecognised
// "match" kinds are a construction failure, and the
// offending JSON is included in the error message.
func FromJSON(b []byte) (MatchingRule, error) {
	var w wireRule
	if err := json.Unmarshal(b, &w); err != nil {
		return nil, fmt.Errorf("matchrule: invalid rule JSON %s: %w", string(b), err)
	}

	switch w.Match {
	case "equality":
		return Equality{}, nil
	case "regex":
		return Regex{Pattern: w.Regex}, nil
	case "type":
		switch {
		case w.Min != nil && w.Max != nil:
			return MinMaxType{Min: *w.Min, Max: *w.Max}, nil
		case w.Min != nil:
			return MinType{Min: *w.Min}, nil
		case w.Max != nil:
			return MaxType{Max: *w.Max}, nil
		default:
			return Type{}, nil
		}
	case "include":
		s, _ := w.Value.(string)
		return Include{Value: s}, nil
	case "number":
		return Number{}, nil
	case "integer":
		return Integer{}, nil
	case "decimal":
		return Decimal{}, nil
	case "null":
		return Null{}, nil
	case "date":
		return Date{Format: w.Format}, nil
	case "time":
		return Time{Format: w.Format}, nil
	case "timestamp":
		return Timestamp{Format: w.Format}, nil
	case "contentType":
		s, _ := w.Value.(string)
		return ContentType{Value: s}, nil
	case "values":
		return Values{}, nil
	case "boolean":
		return Boolean{}, nil
	case "statusCode":
		if len(w.Statuses) > 0 {
			return StatusCode{StatusKind: StatusExplicit, Codes: w.Statuses}, nil
		}
		return StatusCode{StatusKind: StatusCodeKind(w.Status)}, nil
	case "notEmpty":
		return NotEmpty{}, nil
	case "semver":
		return Semver{}, nil
	case "eachKey":
		if w.Rules == nil {
			return EachKey{}, nil
		}
		return EachKey{Rules: *w.Rules}, nil
	case "eachValue":
		if w.Rules == nil {
			return EachValue{}, nil
		}
		return EachValue{Rules: *w.Rules}, nil
	case "arrayContains":
		ac := ArrayContains{}
		for _, variant := range w.Variants {
			ac.Variants = append(ac.Variants, ArrayContainsVariant{Index: variant.Index, Rules: variant.Rules})
		}
		return ac, nil
	default:
		return nil, fmt.Errorf("matchrule: unrecognised match kind %q in %s", w.Match, string(b))
	}
}

// MarshalJSON implements the tagged-variant wire format for List, shaped
// as {"combine":"AND","matchers":[...]}.
func (l List) MarshalJSON() ([]byte, error) {
	type wireList struct {
		Combine  string            `json:"combine"`
		Matchers []json.RawMessage `json:"matchers"`
	}

	w := wireList{Combine: string(l.Logic)}
	if w.Combine == "" {
		w.Combine = string(And)
	}

	for _, r := range l.Rules {
		raw, err := ToJSON(r)
		if err != nil {
			return nil, err
		}
		w.Matchers = append(w.Matchers, raw)
	}
	if w.Matchers == nil {
		w.Matchers = []json.RawMessage{}
	}

	return json.Marshal(w)
}

// UnmarshalJSON implements the reverse of MarshalJSON.
func (l *List) UnmarshalJSON(b []byte) error {
	var w struct {
		Combine  string            `json:"combine"`
		Matchers []json.RawMessage `json:"matchers"`
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return fmt.Errorf("matchrule: invalid rule list JSON %s: %w", string(b), err)
	}

	l.Logic = Logic(w.Combine)
	if l.Logic == "" {
		l.Logic = And
	}
	l.Rules = nil
	for _, raw := range w.Matchers {
		r, err := FromJSON(raw)
		if err != nil {
			return err
		}
		l.Rules = append(l.Rules, r)
	}
	return nil
}
