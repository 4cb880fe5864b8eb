package id3

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// nodeLabel is the text shown for n in Print and WriteDOT.
func nodeLabel(n *Node, schema *Schema) string {
	if n.IsLeaf() {
		return "Leaf: " + n.Label.String()
	}
	return schema.featureName(n.Feature)
}

// String renders the tree as indented text, one node per line.
func (t *Tree) String() string {
	if t == nil || t.Root == nil {
		return ""
	}
	root := treeprint.NewWithRoot(nodeLabel(t.Root, t.Schema))
	addChildren(root, t.Root, t.Schema)
	return root.String()
}

func addChildren(branch treeprint.Tree, n *Node, schema *Schema) {
	for _, c := range n.Children {
		text := fmt.Sprintf("= %d: %s", c.Value, nodeLabel(c, schema))
		if c.IsLeaf() {
			branch.AddNode(text)
			continue
		}
		addChildren(branch.AddBranch(text), c, schema)
	}
}

// Print writes the String rendering of the tree to w.
func (t *Tree) Print(w io.Writer) error {
	_, err := io.WriteString(w, t.String())
	return err
}
