package id3

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Config controls tree construction.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Schema optionally names the features and fixes their cardinalities.
	// When Schema.Cardinality is set it must have one entry per feature and
	// every sample value must fall inside it. Default: nil (ranges are
	// derived from the data at each node).
	Schema *Schema
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{}
}

// validateConfig checks cfg against the dataset it will be used with.
func validateConfig(cfg *Config, ds *Dataset) error {
	if cfg.Schema == nil {
		return nil
	}
	if n := len(cfg.Schema.Names); n != 0 && n != ds.FeatureCount {
		return fmt.Errorf("id3: Schema.Names has %d entries, dataset has %d features", n, ds.FeatureCount)
	}
	card := cfg.Schema.Cardinality
	if card == nil {
		return nil
	}
	if len(card) != ds.FeatureCount {
		return fmt.Errorf("id3: Schema.Cardinality has %d entries, dataset has %d features", len(card), ds.FeatureCount)
	}
	for i, c := range card {
		if c < 1 {
			return fmt.Errorf("id3: Schema.Cardinality[%d] must be >= 1, got %d", i, c)
		}
	}
	for i, s := range ds.Samples {
		for j, v := range s.Features {
			if v > card[j] {
				return fmt.Errorf("id3: sample %d feature %d has value %d, cardinality is %d", i, j, v, card[j])
			}
		}
	}
	return nil
}

// Tree is a trained ID3 decision tree.
type Tree struct {
	Root         *Node
	FeatureCount int
	Schema       *Schema
}

// Build grows an ID3 decision tree from ds.
//
// At each node the samples are checked for purity; a pure node becomes a
// leaf. Otherwise every feature not yet tested on the path from the root is
// scored by information gain and the highest-scoring one (lowest index on
// ties) splits the node into one child per feature value that has samples.
// When every feature has been used and the node is still impure, it becomes
// a leaf labelled with the class of its first sample.
func Build(ds *Dataset, cfg Config) (*Tree, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	if err := validateConfig(&cfg, ds); err != nil {
		return nil, err
	}

	b := &builder{
		schema: cfg.Schema,
		used:   bitset.New(uint(ds.FeatureCount)),
		nf:     ds.FeatureCount,
	}
	return &Tree{
		Root:         b.build(ds.Samples, 0),
		FeatureCount: ds.FeatureCount,
		Schema:       cfg.Schema,
	}, nil
}

// builder carries the state shared across the recursive build: the set of
// features already tested on the current root-to-node path.
type builder struct {
	schema *Schema
	used   *bitset.BitSet
	nf     int
}

// valueRange returns the highest value feature can take at a node holding samples.
func (b *builder) valueRange(samples []Sample, feature int) int {
	if b.schema != nil && b.schema.Cardinality != nil {
		return b.schema.Cardinality[feature]
	}
	return maxFeatureValue(samples, feature)
}

// bestFeature returns the untested feature with the greatest information
// gain, or -1 when every feature is already used on this path.
func (b *builder) bestFeature(samples []Sample) (int, float64) {
	bestGain := -1.0
	best := -1
	for f := 0; f < b.nf; f++ {
		if b.used.Test(uint(f)) {
			continue
		}
		gain := InformationGain(samples, f, b.valueRange(samples, f))
		if gain > bestGain {
			bestGain = gain
			best = f
		}
	}
	return best, bestGain
}

func (b *builder) build(samples []Sample, value int) *Node {
	node := &Node{
		Feature: -1,
		Value:   value,
		Samples: len(samples),
		Entropy: Entropy(samples),
	}

	if isPure(samples) {
		node.Label = samples[0].Label
		return node
	}

	feature, gain := b.bestFeature(samples)
	if feature == -1 {
		node.Label = samples[0].Label
		return node
	}
	node.Feature = feature
	node.Gain = gain

	// The feature stays marked only while its own subtree is built, so a
	// sibling branch is free to test it again.
	b.used.Set(uint(feature))
	maxValue := b.valueRange(samples, feature)
	for v := 1; v <= maxValue; v++ {
		subset := Split(samples, feature, v)
		if len(subset) == 0 {
			continue
		}
		node.Children = append(node.Children, b.build(subset, v))
	}
	b.used.Clear(uint(feature))

	return node
}
