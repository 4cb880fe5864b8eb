package id3

import (
	"errors"
	"fmt"
)

// Label is a class label. Zero means "no label": test samples carry it and
// Classify returns it when a sample cannot be routed to a leaf.
type Label int

const (
	LabelNone Label = 0
	LabelNo   Label = 1
	LabelYes  Label = 2
)

func (l Label) String() string {
	switch l {
	case LabelNone:
		return "Unknown"
	case LabelNo:
		return "No"
	case LabelYes:
		return "Yes"
	default:
		return fmt.Sprintf("Class %d", int(l))
	}
}

// Sample is one row of a dataset: a fixed-length vector of categorical
// feature values (each >= 1) and its class label.
type Sample struct {
	Features []int
	Label    Label
}

// Dataset is a validated collection of samples that all share the same
// number of features.
type Dataset struct {
	Samples      []Sample
	FeatureCount int
}

// ErrEmptyDataset is returned when a tree is requested for a dataset
// without samples.
var ErrEmptyDataset = errors.New("id3: dataset has no samples")

// NewDataset validates samples and wraps them in a Dataset. Every sample must
// have the same, non-zero number of features and every feature value must be
// a positive integer. An empty slice yields an empty Dataset.
func NewDataset(samples []Sample) (*Dataset, error) {
	if len(samples) == 0 {
		return &Dataset{}, nil
	}

	featureCount := len(samples[0].Features)
	if featureCount == 0 {
		return nil, errors.New("id3: samples must have at least one feature")
	}
	for i, s := range samples {
		if len(s.Features) != featureCount {
			return nil, fmt.Errorf("id3: sample %d has %d features, want %d", i, len(s.Features), featureCount)
		}
		for j, v := range s.Features {
			if v < 1 {
				return nil, fmt.Errorf("id3: sample %d feature %d has value %d, values must be >= 1", i, j, v)
			}
		}
		if s.Label < 0 {
			return nil, fmt.Errorf("id3: sample %d has negative label %d", i, int(s.Label))
		}
	}

	return &Dataset{Samples: samples, FeatureCount: featureCount}, nil
}

// Len returns the number of samples.
func (d *Dataset) Len() int { return len(d.Samples) }

// Schema describes the features of a dataset. Both fields are optional.
type Schema struct {
	// Names holds a display name per feature, used by Print.
	Names []string

	// Cardinality fixes the number of values each feature can take
	// (values 1..Cardinality[i]). When nil, the range of a feature at a node
	// is 1..max value observed in that node's samples.
	Cardinality []int
}

// featureName returns the display name for feature i.
func (s *Schema) featureName(i int) string {
	if s != nil && i < len(s.Names) && s.Names[i] != "" {
		return s.Names[i]
	}
	return fmt.Sprintf("Feature %d", i)
}
