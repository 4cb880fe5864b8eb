// Package id3 builds and applies ID3 decision trees over categorical
// integer features.
//
// ID3 grows a tree top-down: at every node it measures the Shannon entropy
// of the class labels, picks the feature whose split yields the largest
// information gain, and recurses into one child per observed feature value
// until each subset is pure or no untested feature remains.
//
// Basic usage:
//
//	ds, err := id3.NewDataset(samples)
//	tree, err := id3.Build(ds, id3.DefaultConfig())
//	label := tree.Classify([]int{1, 3, 2, 2})
//	// label is LabelYes, LabelNo, or LabelNone when the tree has no
//	// branch for one of the sample's feature values
//
// Feature values are positive integers (1..cardinality). Training data can
// be loaded from whitespace-delimited text files:
//
//	train, err := id3.ReadFile("train.txt", true)  // last column is the label
//	test, err := id3.ReadFile("test.txt", false)   // features only
//
// # Output
//
// [Tree.Print] renders an indented text view of the tree and
// [Tree.WriteDOT] exports it as a Graphviz digraph:
//
//	tree.WriteDOTFile("tree.dot")
//	// dot -Tpng tree.dot -o tree.png
package id3
