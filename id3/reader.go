package id3

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MaxFields is the maximum number of integers accepted on one line,
// including the label column of training files.
const MaxFields = 64

// ReadSamples parses whitespace-delimited integer rows from r, one sample per
// line. With withLabels set, the last integer on each line is the class label
// and the others are features; lines with fewer than two fields are skipped.
// Without it every integer is a feature, the label is LabelNone, and blank
// lines are skipped.
//
// All rows must have the same number of features.
func ReadSamples(r io.Reader, withLabels bool) (*Dataset, error) {
	minFields := 1
	if withLabels {
		minFields = 2
	}

	var samples []Sample
	featureCount := -1
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) < minFields {
			continue
		}
		if len(fields) > MaxFields {
			return nil, fmt.Errorf("id3: line %d has %d fields, at most %d are allowed", lineNo, len(fields), MaxFields)
		}

		values := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("id3: line %d field %d: %q is not an integer", lineNo, i+1, f)
			}
			values[i] = v
		}

		s := Sample{Features: values}
		if withLabels {
			s.Features = values[:len(values)-1]
			s.Label = Label(values[len(values)-1])
		}

		if featureCount == -1 {
			featureCount = len(s.Features)
		} else if len(s.Features) != featureCount {
			return nil, fmt.Errorf("id3: line %d has %d features, earlier lines have %d", lineNo, len(s.Features), featureCount)
		}
		samples = append(samples, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "id3: read samples")
	}

	return NewDataset(samples)
}

// ReadFile opens path and parses it with ReadSamples.
func ReadFile(path string, withLabels bool) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "id3: open %s", path)
	}
	defer f.Close()

	ds, err := ReadSamples(f, withLabels)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return ds, nil
}

// MatchFeatures returns an error when train and test rows have different
// feature counts. An empty test set matches any training set.
func MatchFeatures(train, test *Dataset) error {
	if test.Len() == 0 {
		return nil
	}
	if train.FeatureCount != test.FeatureCount {
		return fmt.Errorf("id3: training data has %d features, test data has %d", train.FeatureCount, test.FeatureCount)
	}
	return nil
}
