// SPDX-License-Identifier: EPL-2.0

// Package diff computes sample-wise divergence statistics between two
// decoded audio recordings.
//
// # Comparison
//
// Compare takes two equal-length float32 sample sequences and
// produces a Report:
//
//	report, err := diff.Compare(samplesA, samplesB)
//	if err != nil {
//	    // Handle error
//	}
//	report.Render(os.Stdout)
//
// A sample pair counts as differing when its absolute difference
// exceeds the fixed Threshold (0.0001). Differences are accumulated
// in float64.
//
// # Output
//
// Render prints the aggregates followed by a preview of the first 10
// samples from each recording and their diffs:
//
//	Total samples: 4
//	Samples that differ: 1 (25.00%)
//	Maximum difference: 0.000200
//	Average difference: 0.000050
//
//	First 10 samples from each file:
//	File 1: [0.1000 0.2000 0.3000 0.4000]
//	File 2: [0.1000 0.2000 0.3000 0.4002]
//	Diffs:  [0.0000 0.0000 0.0000 0.0002]
//
// The labels and decimal precision are stable; treat them as the
// tool's output contract.
//
// # Errors
//
//   - ErrEmptyRecording: zero samples to compare
//   - ErrLengthMismatch: the sequences differ in length
package diff
