package id3

// Node is a decision tree node. Internal nodes test Feature and have one
// child per feature value that occurred in their training subset; leaves have
// Feature == -1 and carry the predicted Label.
type Node struct {
	// Feature is the index of the feature tested here, or -1 for a leaf.
	Feature int

	// Value is the feature value on the edge from the parent (0 at the root).
	Value int

	// Label is the predicted class. Only meaningful for leaves.
	Label Label

	// Children are ordered by ascending Value.
	Children []*Node

	// Samples is the number of training samples that reached this node.
	Samples int

	// Entropy is the label entropy of those samples, in bits.
	Entropy float64

	// Gain is the information gain of the split chosen here (internal nodes).
	Gain float64
}

// IsLeaf reports whether n is a leaf.
func (n *Node) IsLeaf() bool { return n.Feature == -1 }

// child returns the child reached by value, or nil.
func (n *Node) child(value int) *Node {
	for _, c := range n.Children {
		if c.Value == value {
			return c
		}
		if c.Value > value {
			break
		}
	}
	return nil
}

// Classify walks the tree with the given feature vector and returns the
// label of the leaf it reaches. It returns LabelNone when the vector has the
// wrong length, holds a value < 1, or holds a value the tree never saw at
// that node.
func (t *Tree) Classify(features []int) Label {
	if t == nil || t.Root == nil || len(features) != t.FeatureCount {
		return LabelNone
	}
	node := t.Root
	for !node.IsLeaf() {
		v := features[node.Feature]
		if v < 1 {
			return LabelNone
		}
		next := node.child(v)
		if next == nil {
			return LabelNone
		}
		node = next
	}
	return node.Label
}

// ClassifyAll classifies every sample and returns the labels in order.
// The samples' own labels are ignored.
func (t *Tree) ClassifyAll(samples []Sample) []Label {
	out := make([]Label, len(samples))
	for i, s := range samples {
		out[i] = t.Classify(s.Features)
	}
	return out
}

// Depth returns the number of edges on the longest root-to-leaf path.
func (t *Tree) Depth() int {
	if t == nil || t.Root == nil {
		return 0
	}
	return nodeDepth(t.Root)
}

func nodeDepth(n *Node) int {
	d := 0
	for _, c := range n.Children {
		d = max(d, nodeDepth(c)+1)
	}
	return d
}

// Walk visits every node in pre-order (parent before children, children in
// ascending value order) and calls fn with the node's depth.
func (t *Tree) Walk(fn func(n *Node, depth int)) {
	if t == nil || t.Root == nil {
		return
	}
	walk(t.Root, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int)) {
	fn(n, depth)
	for _, c := range n.Children {
		walk(c, depth+1, fn)
	}
}
