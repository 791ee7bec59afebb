// SPDX-License-Identifier: EPL-2.0

package diff

import "math"

// Threshold is the absolute difference above which two samples are
// counted as differing. It is a fixed property of the tool, not a
// tunable.
const Threshold = 0.0001

// Result holds the aggregate statistics of one comparison.
type Result struct {
	// TotalSamples compared.
	TotalSamples int
	// Differing is the number of samples whose absolute difference
	// exceeds Threshold.
	Differing int
	// Percent is Differing relative to TotalSamples, in percent.
	Percent float64
	// Max is the largest absolute difference.
	Max float64
	// Avg is the arithmetic mean of the absolute differences.
	Avg float64
}

// Report is a Result together with the compared samples and the full
// per-sample difference sequence, kept for previewing.
type Report struct {
	Result

	SamplesA []float32
	SamplesB []float32
	Diffs    []float64
}

// Compare computes per-sample absolute differences between two sample
// sequences of equal length. Differences are computed in float64 so
// aggregates do not lose precision over long recordings.
//
// Returns ErrLengthMismatch when the sequences differ in length and
// ErrEmptyRecording when there is nothing to compare.
func Compare(a, b []float32) (*Report, error) {
	if len(a) != len(b) {
		return nil, ErrLengthMismatch
	}
	if len(a) == 0 {
		return nil, ErrEmptyRecording
	}

	diffs := make([]float64, len(a))

	var (
		sum       float64
		maxDiff   float64
		differing int
	)

	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		diffs[i] = d

		sum += d
		if d > maxDiff {
			maxDiff = d
		}
		if d > Threshold {
			differing++
		}
	}

	total := len(diffs)

	return &Report{
		Result: Result{
			TotalSamples: total,
			Differing:    differing,
			Percent:      float64(differing) / float64(total) * 100,
			Max:          maxDiff,
			Avg:          sum / float64(total),
		},
		SamplesA: a,
		SamplesB: b,
		Diffs:    diffs,
	}, nil
}
