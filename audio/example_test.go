// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"

	"github.com/ik5/audiodiff/audio"
)

// Example_mixdown demonstrates averaging a stereo clip to mono.
func Example_mixdown() {
	stereo := &audio.Clip{
		Samples:    []float32{1.0, 0.0, -0.5, 0.5},
		SampleRate: 8000,
		Channels:   2,
	}

	mono, err := audio.Mixdown(stereo)
	if err != nil {
		fmt.Printf("Mixdown error: %v\n", err)
		return
	}

	fmt.Printf("Channels: %d\n", mono.Channels)
	fmt.Printf("Frames: %d\n", mono.Frames())
	fmt.Printf("Samples: %v\n", mono.Samples)
	// Output:
	// Channels: 1
	// Frames: 2
	// Samples: [0.5 0]
}

// Example_resample demonstrates converting a clip's sample rate.
func Example_resample() {
	clip := &audio.Clip{
		Samples:    make([]float32, 8000),
		SampleRate: 8000,
		Channels:   1,
	}

	out, err := audio.Resample(clip, 16000)
	if err != nil {
		fmt.Printf("Resample error: %v\n", err)
		return
	}

	fmt.Printf("Rate: %d Hz\n", out.SampleRate)
	fmt.Printf("Frames: %d\n", out.Frames())
	fmt.Printf("Duration: %v\n", out.Duration())
	// Output:
	// Rate: 16000 Hz
	// Frames: 16000
	// Duration: 1s
}
