// SPDX-License-Identifier: EPL-2.0

package diff

import "errors"

var (
	// ErrEmptyRecording indicates there were no samples to compare.
	ErrEmptyRecording = errors.New("no samples to compare")

	// ErrLengthMismatch indicates the two sample sequences differ in
	// length.
	ErrLengthMismatch = errors.New("sample sequences differ in length")
)
