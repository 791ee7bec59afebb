// SPDX-License-Identifier: EPL-2.0

// Package audio defines the in-memory representation shared by all
// format decoders and the operations the comparison pipeline applies
// to it.
//
// # Clips
//
// A Clip is a fully decoded recording: interleaved float32 samples in
// the range [-1.0, 1.0] together with the sample rate and channel
// count. Decoders load the entire stream at once; the comparison
// tool works sample-by-sample over whole recordings and never
// streams.
//
//	clip := &audio.Clip{
//	    Samples:    samples, // interleaved
//	    SampleRate: 48000,
//	    Channels:   2,
//	}
//	fmt.Println(clip.Frames(), clip.Duration())
//
// # Decoders and the Registry
//
// Each format package provides a Decoder that produces a Clip. The
// Registry maps file extensions to decoders so callers can pick one
// by filename:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	reg.Register("mp3", mp3.Decoder{})
//
//	dec, ok := reg.Get("wav")
//
// # Operations
//
// Mixdown averages channels into a mono clip and Resample converts a
// clip to another sample rate using cubic interpolation. Both are
// used to reconcile recordings whose parameters differ before a
// sample-wise comparison is meaningful.
package audio
