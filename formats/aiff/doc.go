// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF audio into clips for comparison.
//
// Container parsing is handled by github.com/go-audio/aiff. Only
// 16-bit PCM data is accepted; samples are normalized to float32 in
// [-1, 1).
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("render.aiff")
//	clip, err := decoder.Decode(file)
package aiff
