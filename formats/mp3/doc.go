// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 audio into clips for comparison.
//
// Decoding is done by github.com/hajimehoshi/go-mp3, which emits
// 16-bit little-endian PCM with two interleaved channels for every
// input. The Decoder drains the stream in full and normalizes it to
// float32 samples in [-1, 1).
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("render.mp3")
//	clip, err := decoder.Decode(file)
package mp3
