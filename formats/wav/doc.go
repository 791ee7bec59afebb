// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV/RIFF audio files.
//
// Container parsing is handled by github.com/go-audio/wav; this
// package layers the comparison tool's sample decoding and header
// parameter model on top of it.
//
// # Reading
//
// Read (and ReadFile) load an entire WAV file at once and return its
// FormatParams together with the decoded float32 samples:
//
//	file, err := wav.ReadFile("render.wav")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(file.Params)          // channels=2 sampleBits=32 ...
//	fmt.Println(len(file.Samples))    // frames × channels
//
// Read accepts only 32-bit IEEE float sample data. The encoding tag
// is checked before decoding; handing it an integer-PCM file yields
// ErrUnsupportedSampleFormat rather than garbage floats.
//
// # FormatParams
//
// FormatParams is the header tuple (channels, sample bits, rate,
// compression tag, frame count). Two recordings may be compared
// sample-by-sample only when their params are field-wise Equal.
//
// # The registry decoder
//
// Decoder implements audio.Decoder for use with audio.Registry. It is
// more permissive than Read: 16-bit integer PCM is also accepted and
// normalized to floats in [-1, 1).
//
// # Writing
//
// WriteFloat32 emits the 32-bit float WAVs the comparison path
// consumes; WriteWAV16 emits mono 16-bit PCM:
//
//	var out bytes.Buffer
//	err := wav.WriteFloat32(&out, 48000, 2, samples)
//
// # Errors
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE stream
//   - ErrUnsupportedSampleFormat: encoding tag or bit depth we do not decode
//   - ErrNoDataChunk: container has no data chunk
//   - ErrTruncatedData: data chunk length is not a whole number of samples
package wav
