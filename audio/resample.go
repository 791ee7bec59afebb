// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"

	"github.com/ik5/audiodiff/utils"
)

// Resample converts a clip to dstRate using Catmull-Rom cubic
// interpolation, preserving the channel count. The whole clip is
// resampled in one pass; for the short diagnostic recordings this
// tool works on there is no need for a streaming pipeline.
//
// No anti-aliasing filter is applied. When comparing a downsampled
// recording against a reference, any aliasing is part of the signal
// being measured.
func Resample(c *Clip, dstRate int) (*Clip, error) {
	if c.Channels < 1 {
		return nil, ErrNoChannels
	}
	if len(c.Samples)%c.Channels != 0 {
		return nil, ErrPartialFrame
	}
	if c.SampleRate < 1 || dstRate < 1 {
		return nil, ErrBadSampleRate
	}
	if dstRate == c.SampleRate {
		return c, nil
	}

	srcFrames := len(c.Samples) / c.Channels
	if srcFrames == 0 {
		return &Clip{SampleRate: dstRate, Channels: c.Channels}, nil
	}

	// ratio = source frames advanced per output frame
	ratio := float64(c.SampleRate) / float64(dstRate)
	dstFrames := int(math.Round(float64(srcFrames) / ratio))
	if dstFrames < 1 {
		dstFrames = 1
	}

	out := make([]float32, dstFrames*c.Channels)

	frameAt := func(idx, ch int) float32 {
		// Clamp at the edges so interpolation near the ends reuses
		// the boundary frames.
		if idx < 0 {
			idx = 0
		} else if idx >= srcFrames {
			idx = srcFrames - 1
		}
		return c.Samples[idx*c.Channels+ch]
	}

	for frame := 0; frame < dstFrames; frame++ {
		pos := float64(frame) * ratio
		i := int(pos)
		frac := float32(pos - float64(i))

		for ch := 0; ch < c.Channels; ch++ {
			y0 := frameAt(i-1, ch)
			y1 := frameAt(i, ch)
			y2 := frameAt(i+1, ch)
			y3 := frameAt(i+2, ch)
			out[frame*c.Channels+ch] = utils.CubicInterpolate(y0, y1, y2, y3, frac)
		}
	}

	return &Clip{
		Samples:    out,
		SampleRate: dstRate,
		Channels:   c.Channels,
	}, nil
}
