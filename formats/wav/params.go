// SPDX-License-Identifier: EPL-2.0

package wav

import "fmt"

// fmt-chunk compression tags from the RIFF specification.
const (
	FormatPCM       = 1
	FormatIEEEFloat = 3
)

// FormatParams is the header parameter tuple of a WAV file. Two files
// are comparable sample-by-sample only when their params are
// field-wise equal, frame count included.
type FormatParams struct {
	// Channels is the interleaved channel count.
	Channels int
	// SampleBits is the bit depth of a single sample.
	SampleBits int
	// SampleRate in Hz.
	SampleRate int
	// AudioFormat is the compression tag (FormatPCM, FormatIEEEFloat).
	AudioFormat int
	// Frames is the number of frames in the data chunk.
	Frames int
}

// Equal reports whether every field matches.
func (p FormatParams) Equal(o FormatParams) bool {
	return p == o
}

// String renders the tuple the way the mismatch warning prints it.
func (p FormatParams) String() string {
	return fmt.Sprintf("channels=%d sampleBits=%d rate=%dHz format=%s frames=%d",
		p.Channels, p.SampleBits, p.SampleRate, p.formatName(), p.Frames)
}

func (p FormatParams) formatName() string {
	switch p.AudioFormat {
	case FormatPCM:
		return "PCM"
	case FormatIEEEFloat:
		return "IEEE_FLOAT"
	default:
		return fmt.Sprintf("unknown(%d)", p.AudioFormat)
	}
}
