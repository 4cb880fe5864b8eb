package id3

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Entropy returns the Shannon entropy, in bits, of the label distribution of
// samples:
//
//	H(S) = -sum over labels c of: p(c) * log2(p(c))
//
// An empty or pure set has entropy 0.
func Entropy(samples []Sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	p := labelProbabilities(samples)
	// stat.Entropy uses the natural logarithm and skips zero probabilities.
	return stat.Entropy(p) / math.Ln2
}

// labelProbabilities returns the relative frequency of each distinct label,
// ordered by label so that the floating-point sum is deterministic.
func labelProbabilities(samples []Sample) []float64 {
	counts := labelCounts(samples)
	labels := make([]Label, 0, len(counts))
	for l := range counts {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

	total := float64(len(samples))
	p := make([]float64, len(labels))
	for i, l := range labels {
		p[i] = float64(counts[l]) / total
	}
	return p
}

// labelCounts tallies how many samples carry each label.
func labelCounts(samples []Sample) map[Label]int {
	counts := make(map[Label]int)
	for _, s := range samples {
		counts[s.Label]++
	}
	return counts
}

// isPure reports whether every sample has the same label.
func isPure(samples []Sample) bool {
	for _, s := range samples[1:] {
		if s.Label != samples[0].Label {
			return false
		}
	}
	return true
}
