// SPDX-License-Identifier: EPL-2.0

package diff

import (
	"fmt"
	"io"
	"strings"
)

// previewLen is how many leading samples and diffs Render shows.
const previewLen = 10

// Render writes the human-readable report. The field labels and
// decimal precision are a stable output contract; tooling parses
// them.
func (r *Report) Render(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Total samples: %d\n", r.TotalSamples)
	fmt.Fprintf(&b, "Samples that differ: %d (%.2f%%)\n", r.Differing, r.Percent)
	fmt.Fprintf(&b, "Maximum difference: %.6f\n", r.Max)
	fmt.Fprintf(&b, "Average difference: %.6f\n", r.Avg)

	b.WriteString("\nFirst 10 samples from each file:\n")
	fmt.Fprintf(&b, "File 1: %s\n", previewFloat32(r.SamplesA))
	fmt.Fprintf(&b, "File 2: %s\n", previewFloat32(r.SamplesB))
	fmt.Fprintf(&b, "Diffs:  %s\n", previewFloat64(r.Diffs))

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// previewFloat32 formats up to previewLen leading values at 4 decimal
// places. Shorter sequences print whatever is available.
func previewFloat32(vals []float32) string {
	n := min(len(vals), previewLen)

	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("%.4f", vals[i])
	}

	return "[" + strings.Join(parts, " ") + "]"
}

func previewFloat64(vals []float64) string {
	n := min(len(vals), previewLen)

	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("%.4f", vals[i])
	}

	return "[" + strings.Join(parts, " ") + "]"
}
