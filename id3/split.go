package id3

// Split returns the samples whose feature equals value, in their original
// order. Feature vectors are copied so the subset can be modified without
// touching the parent set.
func Split(samples []Sample, feature, value int) []Sample {
	var out []Sample
	for _, s := range samples {
		if s.Features[feature] != value {
			continue
		}
		features := make([]int, len(s.Features))
		copy(features, s.Features)
		out = append(out, Sample{Features: features, Label: s.Label})
	}
	return out
}

// maxFeatureValue returns the largest value feature takes in samples, or 0
// when samples is empty.
func maxFeatureValue(samples []Sample, feature int) int {
	best := 0
	for _, s := range samples {
		if s.Features[feature] > best {
			best = s.Features[feature]
		}
	}
	return best
}

// InformationGain returns the reduction in entropy obtained by partitioning
// samples on feature into the values 1..maxValue:
//
//	IG(S, f) = H(S) - sum over v of: |S_v|/|S| * H(S_v)
//
// Values with no samples contribute nothing.
func InformationGain(samples []Sample, feature, maxValue int) float64 {
	if len(samples) == 0 {
		return 0
	}

	before := Entropy(samples)
	after := 0.0
	total := float64(len(samples))
	for v := 1; v <= maxValue; v++ {
		subset := Split(samples, feature, v)
		if len(subset) == 0 {
			continue
		}
		after += float64(len(subset)) / total * Entropy(subset)
	}
	return before - after
}
