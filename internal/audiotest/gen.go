// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides deterministic test signals shared by
// package tests.
package audiotest

import "math"

// Sine returns frames*channels interleaved samples of a sine tone,
// with the same value on every channel of a frame.
func Sine(sampleRate, channels, frames int, frequency float64) []float32 {
	out := make([]float32, frames*channels)
	for frame := 0; frame < frames; frame++ {
		t := float64(frame) / float64(sampleRate)
		v := float32(math.Sin(2 * math.Pi * frequency * t))
		for ch := 0; ch < channels; ch++ {
			out[frame*channels+ch] = v
		}
	}
	return out
}

// Constant returns frames*channels interleaved samples of a constant
// value.
func Constant(channels, frames int, value float32) []float32 {
	out := make([]float32, frames*channels)
	for i := range out {
		out[i] = value
	}
	return out
}

// Silence returns frames*channels zero samples.
func Silence(channels, frames int) []float32 {
	return make([]float32, frames*channels)
}

// Offset returns a copy of samples with delta added to every value.
func Offset(samples []float32, delta float32) []float32 {
	out := make([]float32, len(samples))
	for i, s := range samples {
		out[i] = s + delta
	}
	return out
}
