// SPDX-License-Identifier: EPL-2.0

package audio

// Mixdown averages the channels of a clip into a mono clip. A mono
// input is returned unchanged.
func Mixdown(c *Clip) (*Clip, error) {
	if c.Channels < 1 {
		return nil, ErrNoChannels
	}
	if len(c.Samples)%c.Channels != 0 {
		return nil, ErrPartialFrame
	}
	if c.Channels == 1 {
		return c, nil
	}

	frames := len(c.Samples) / c.Channels
	mono := make([]float32, frames)
	scale := 1.0 / float32(c.Channels)

	for frame := 0; frame < frames; frame++ {
		var sum float32
		base := frame * c.Channels
		for ch := 0; ch < c.Channels; ch++ {
			sum += c.Samples[base+ch]
		}
		mono[frame] = sum * scale
	}

	return &Clip{
		Samples:    mono,
		SampleRate: c.SampleRate,
		Channels:   1,
	}, nil
}
