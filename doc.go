// SPDX-License-Identifier: EPL-2.0

// Package audiodiff compares audio recordings sample-by-sample and
// reports divergence statistics.
//
// The typical use is checking how far a processed or re-rendered
// recording drifted from its reference: total sample count, how many
// samples differ beyond a fixed threshold, the maximum and mean
// absolute difference, and a short preview of the leading values.
//
// # Supported Formats
//
// The package decodes the following audio formats:
//   - WAV (32-bit IEEE float, plus PCM 16-bit through the registry) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// # Quick Start
//
// The simplest way to compare two files:
//
//	cmp, err := audiodiff.CompareFiles("a.wav", "b.wav", audiodiff.Options{})
//	if err != nil {
//	    // Handle error
//	}
//	if cmp.Mismatch != nil {
//	    // Formats differ; cmp.Mismatch holds both descriptors
//	} else {
//	    cmp.Report.Render(os.Stdout)
//	}
//
// Two WAV files are compared strictly: their header parameter tuples
// (channels, sample bits, rate, compression tag, frame count) must be
// field-wise identical, and only 32-bit float sample data is decoded.
// A parameter mismatch is not an error; it is a successful comparison
// that stops before computing statistics.
//
// # Other formats and reconciliation
//
// Non-WAV inputs are decoded through the format registry into
// in-memory clips and compared by sample rate, channel count and
// frame count. Options can reconcile differing parameters first:
//
//	opts := audiodiff.Options{MatchRate: true, MixdownToMono: true}
//	cmp, err := audiodiff.CompareFiles("ref.wav", "render.mp3", opts)
//
// # Commands
//
// The repository ships two commands:
//
//	compare_audio [-resample] [-mono] <file1.wav> <file2.wav>
//	genwav -o out.wav [-rate 48000] [-channels 2] [-duration 5] [-freq 440] [-amp 0.5]
//
// compare_audio prints the report (or the format-mismatch warning) on
// stdout; genwav generates the sine-tone float32 WAVs the tool is
// usually pointed at.
//
// See the diff subpackage for the statistics themselves and the
// formats subpackages for the individual decoders.
package audiodiff
