package plan

import (
	"strings"
)

// Compact renders the plan in its single-line form:
// Container -> ":label(...)", Action -> "%name(...)", Value -> its
// literal str-form, Resolve -> its path's string form, and the whole
// tree wrapped in one extra pair of parentheses. Executed leaves get no
// result suffix; use CompactExecuted for that.
func (n *Node) Compact() string {
	return "(" + n.compactInner(false) + ")"
}

// CompactExecuted is Compact but appends " ~ <result>" to every leaf
// that has been executed.
func (n *Node) CompactExecuted() string {
	return "(" + n.compactInner(true) + ")"
}

func (n *Node) compactInner(withResult bool) string {
	if n == nil || n.Type == Empty {
		return ""
	}

	switch n.Type {
	case Container:
		return ":" + n.Label + "(" + n.childrenCompact(withResult) + ")"
	case Action:
		return "%" + n.Action + "(" + n.childrenCompact(withResult) + ")"
	case ValueNode:
		return n.Value.StrForm() + n.resultSuffix(withResult)
	case Resolve:
		return n.Path.String() + n.resultSuffix(withResult)
	default:
		return ""
	}
}

func (n *Node) childrenCompact(withResult bool) string {
	parts := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		s := c.compactInner(withResult)
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ",")
}

func (n *Node) resultSuffix(withResult bool) string {
	if !withResult || n.Result == nil {
		return ""
	}
	return " ~ " + n.Result.String()
}

// Pretty renders the plan in its multi-line, indented form: two-space indent per level, one child per line, commas between
// siblings, the opening paren at the end of the parent's line and the
// closing paren aligned to the parent's indent.
func (n *Node) Pretty() string {
	var b strings.Builder
	n.prettyInner(&b, 0, false)
	return b.String()
}

// PrettyExecuted is Pretty but appends " ~ <result>" to every executed
// leaf.
func (n *Node) PrettyExecuted() string {
	var b strings.Builder
	n.prettyInner(&b, 0, true)
	return b.String()
}

func (n *Node) prettyInner(b *strings.Builder, indent int, withResult bool) {
	if n == nil || n.Type == Empty {
		return
	}

	pad := strings.Repeat("  ", indent)
	switch n.Type {
	case Container:
		b.WriteString(pad + ":" + n.Label + "(\n")
		writeChildrenPretty(b, n.Children, indent+1, withResult)
		b.WriteString(pad + ")")
	case Action:
		b.WriteString(pad + "%" + n.Action + "(\n")
		writeChildrenPretty(b, n.Children, indent+1, withResult)
		b.WriteString(pad + ")")
	case ValueNode:
		b.WriteString(pad + n.Value.StrForm() + n.resultSuffix(withResult))
	case Resolve:
		b.WriteString(pad + n.Path.String() + n.resultSuffix(withResult))
	}
}

func writeChildrenPretty(b *strings.Builder, children []*Node, indent int, withResult bool) {
	visible := make([]*Node, 0, len(children))
	for _, c := range children {
		if c != nil && c.Type != Empty {
			visible = append(visible, c)
		}
	}
	for i, c := range visible {
		c.prettyInner(b, indent, withResult)
		if i < len(visible)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
}
