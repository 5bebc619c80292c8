package plan

import "github.com/pact-foundation/pact-go-matching/docpath"

// NodeType discriminates the five shapes a plan Node can take. Only Container and Action nodes may carry children; Value and
// Resolve are always leaves, and Empty carries neither children nor a
// printable form of its own.
type NodeType int

const (
	Empty NodeType = iota
	Container
	Action
	ValueNode
	Resolve
)

// Node is one vertex of an execution plan tree. Label is populated for
// Container nodes, Action for Action nodes, Value for ValueNode nodes and
// Path for Resolve nodes; the other fields are zero for a given NodeType.
// ID is a breadth-first sequence number assigned by AssignIDs, used only
// for diagnostics and otherwise ignored by execution and printing.
type Node struct {
	ID       int
	Type     NodeType
	Label    string
	Action   string
	Value    NodeValue
	Path     docpath.DocPath
	Children []*Node
	Result   *Result
}

// NewEmpty returns a placeholder node that contributes nothing to either
// string form and is skipped by execution.
func NewEmpty() *Node {
	return &Node{Type: Empty}
}

// NewContainer returns a Container node labelled label with the given
// children, e.g. the "request", "method", "headers" groupings built by
// planbuild.
func NewContainer(label string, children ...*Node) *Node {
	return &Node{Type: Container, Label: label, Children: children}
}

// NewAction returns an Action node invoking name with the given children
// as its arguments, e.g. "%match:equality(...)".
func NewAction(name string, children ...*Node) *Node {
	return &Node{Type: Action, Action: name, Children: children}
}

// NewValue returns a Value leaf wrapping v.
func NewValue(v NodeValue) *Node {
	return &Node{Type: ValueNode, Value: v}
}

// NewResolve returns a Resolve leaf that, at execution time, looks up
// path in the value under test.
func NewResolve(path docpath.DocPath) *Node {
	return &Node{Type: Resolve, Path: path}
}

// IsLeaf reports whether n can never have children, per the Value/Resolve
// contract above.
func (n *Node) IsLeaf() bool {
	return n.Type == ValueNode || n.Type == Resolve
}

// AssignIDs numbers root and every descendant breadth-first, starting at
// 0. It is idempotent and safe to call again after mutating a tree.
func AssignIDs(root *Node) {
	if root == nil {
		return
	}
	queue := []*Node{root}
	next := 0
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		n.ID = next
		next++
		queue = append(queue, n.Children...)
	}
}

// Equal reports whether two plan trees are structurally identical,
// ignoring Result (which is only populated after execution). It backs
// the plan-determinism property: building the same
// contract twice must yield equal trees.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Type != other.Type || n.Label != other.Label || n.Action != other.Action {
		return false
	}
	if n.Type == ValueNode && !valueEqual(n.Value, other.Value) {
		return false
	}
	if n.Type == Resolve && n.Path.String() != other.Path.String() {
		return false
	}
	if len(n.Children) != len(other.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

func valueEqual(a, b NodeValue) bool {
	return a.StrForm() == b.StrForm()
}
