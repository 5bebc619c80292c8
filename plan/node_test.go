package plan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pact-foundation/pact-go-matching/docpath"
)

func sampleTree() *Node {
	return NewContainer("request",
		NewContainer("method",
			NewAction("match:equality",
				NewResolve(docpath.NewRoot().Field("method")),
				NewValue(StringValue("GET")),
			),
		),
	)
}

func TestAssignIDsBreadthFirst(t *testing.T) {
	root := sampleTree()
	AssignIDs(root)

	if root.ID != 0 {
		t.Fatalf("root ID = %d, want 0", root.ID)
	}
	method := root.Children[0]
	if method.ID != 1 {
		t.Fatalf("method ID = %d, want 1", method.ID)
	}
	action := method.Children[0]
	if action.ID != 2 {
		t.Fatalf("action ID = %d, want 2", action.ID)
	}
}

func TestLeafInvariant(t *testing.T) {
	v := NewValue(StringValue("x"))
	r := NewResolve(docpath.NewRoot())
	c := NewContainer("c")
	a := NewAction("a")

	if !v.IsLeaf() || !r.IsLeaf() {
		t.Error("Value and Resolve nodes must be leaves")
	}
	if c.IsLeaf() || a.IsLeaf() {
		t.Error("Container and Action nodes must not be leaves")
	}
}

func TestEqualIgnoresResult(t *testing.T) {
	a := sampleTree()
	b := sampleTree()
	a.Children[0].Children[0].Result = &Result{Kind: ResultOk}

	if !a.Equal(b) {
		t.Error("Equal should ignore Result when comparing tree shape")
	}
}

func TestEqualDetectsDifference(t *testing.T) {
	a := sampleTree()
	b := sampleTree()
	b.Children[0].Children[0].Action = "match:regex"

	if a.Equal(b) {
		t.Error("Equal should detect a differing action name")
	}
}

func TestPlanDeterminismViaGoCmp(t *testing.T) {
	a := sampleTree()
	b := sampleTree()

	opt := cmp.Comparer(func(x, y *Node) bool { return x.Equal(y) })
	if diff := cmp.Diff(a, b, opt); diff != "" {
		t.Errorf("two independently built plans differ:\n%s", diff)
	}
}
