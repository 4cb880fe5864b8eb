package id3

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

// dotGraphName is the name of the exported digraph.
const dotGraphName = "DecisionTree"

// dotNode is a tree node as seen by the DOT encoder. IDs are assigned in
// pre-order, so the root is node0.
type dotNode struct {
	id    int64
	label string
	leaf  bool
}

func (n dotNode) ID() int64     { return n.id }
func (n dotNode) DOTID() string { return fmt.Sprintf("node%d", n.id) }
func (n dotNode) Attributes() []encoding.Attribute {
	attrs := []encoding.Attribute{{Key: "label", Value: n.label}}
	if n.leaf {
		attrs = append(attrs, encoding.Attribute{Key: "shape", Value: "box"})
	}
	return attrs
}

// dotEdge connects a node to one of its children and is labelled with the
// feature value that selects the child.
type dotEdge struct {
	from, to dotNode
	value    int
}

func (e dotEdge) From() graph.Node         { return e.from }
func (e dotEdge) To() graph.Node           { return e.to }
func (e dotEdge) ReversedEdge() graph.Edge { return dotEdge{from: e.to, to: e.from, value: e.value} }
func (e dotEdge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: fmt.Sprintf("=%d", e.value)}}
}

// Graph returns the tree as a directed graph whose nodes are numbered in
// pre-order and whose edges carry the branching feature value.
func (t *Tree) Graph() *simple.DirectedGraph {
	g := simple.NewDirectedGraph()
	if t == nil || t.Root == nil {
		return g
	}
	var next int64
	var add func(n *Node) dotNode
	add = func(n *Node) dotNode {
		// Feature indices rather than schema names, so exports stay
		// comparable across datasets.
		dn := dotNode{id: next, label: nodeLabel(n, nil), leaf: n.IsLeaf()}
		next++
		g.AddNode(dn)
		for _, c := range n.Children {
			child := add(c)
			g.SetEdge(dotEdge{from: dn, to: child, value: c.Value})
		}
		return dn
	}
	add(t.Root)
	return g
}

// WriteDOT writes the tree to w in Graphviz DOT format.
func (t *Tree) WriteDOT(w io.Writer) error {
	b, err := dot.Marshal(t.Graph(), dotGraphName, "", "  ")
	if err != nil {
		return errors.Wrap(err, "id3: encode dot")
	}
	b = append(bytes.TrimRight(b, "\n"), '\n')
	if _, err := w.Write(b); err != nil {
		return errors.Wrap(err, "id3: write dot")
	}
	return nil
}

// WriteDOTFile writes the tree in Graphviz DOT format to path, creating or
// truncating the file.
func (t *Tree) WriteDOTFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "id3: create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "id3: close %s", path)
		}
	}()
	return t.WriteDOT(f)
}
