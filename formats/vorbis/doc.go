// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio into clips for comparison.
//
// Decoding is done by github.com/jfreymuth/oggvorbis, which already
// produces interleaved float32 samples; the Decoder simply collects
// the whole stream into one clip.
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("render.ogg")
//	clip, err := decoder.Decode(file)
package vorbis
