// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrNoChannels indicates a clip with a channel count below one.
	ErrNoChannels = errors.New("clip has no channels")

	// ErrPartialFrame indicates a sample count that is not a multiple
	// of the channel count.
	ErrPartialFrame = errors.New("sample count must be multiple of channels")

	// ErrBadSampleRate indicates a sample rate below one Hz.
	ErrBadSampleRate = errors.New("sample rate must be positive")
)
