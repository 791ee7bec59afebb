package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/ik5/audiodiff/formats/wav"
	"github.com/ik5/audiodiff/utils"
)

func main() {
	var (
		out      = flag.String("o", "", "output WAV file (required)")
		rate     = flag.Int("rate", 48000, "sample rate (Hz)")
		channels = flag.Int("channels", 2, "number of channels")
		duration = flag.Float64("duration", 5.0, "duration (seconds)")
		freq     = flag.Float64("freq", 440.0, "tone frequency (Hz)")
		amp      = flag.Float64("amp", 0.5, "amplitude (0.0-1.0)")
		bits     = flag.Int("bits", 32, "sample format: 32 (IEEE float) or 16 (PCM, mono only)")
	)
	flag.Parse()

	if *out == "" || *rate < 1 || *channels < 1 || *duration < 0 {
		flag.Usage()
		os.Exit(1)
	}
	if *bits != 32 && *bits != 16 {
		fatal(fmt.Errorf("-bits must be 32 or 16, got %d", *bits))
	}
	if *bits == 16 && *channels != 1 {
		fatal(fmt.Errorf("16-bit output is mono only"))
	}

	fmt.Println("Generating test WAV:")
	fmt.Printf("  Output: %s\n", *out)
	fmt.Printf("  Sample rate: %d Hz\n", *rate)
	fmt.Printf("  Channels: %d\n", *channels)
	fmt.Printf("  Duration: %.1f seconds\n", *duration)
	fmt.Printf("  Frequency: %.1f Hz\n", *freq)
	fmt.Printf("  Amplitude: %.2f\n", *amp)

	frames := int(float64(*rate) * *duration)

	samples := make([]float32, 0, frames**channels)
	for frame := 0; frame < frames; frame++ {
		t := float64(frame) / float64(*rate)
		v := float32(*amp * math.Sin(2*math.Pi*(*freq)*t))

		// Same sample on every channel
		for ch := 0; ch < *channels; ch++ {
			samples = append(samples, v)
		}
	}

	f, err := os.Create(*out)
	if err != nil {
		fatal(err)
	}

	switch *bits {
	case 32:
		err = wav.WriteFloat32(f, *rate, *channels, samples)
	case 16:
		pcm16 := make([]int16, len(samples))
		for i, s := range samples {
			pcm16[i] = utils.Float32ToInt16(s)
		}
		err = wav.WriteWAV16(f, *rate, pcm16)
	}
	if err != nil {
		f.Close()
		fatal(err)
	}

	if err := f.Close(); err != nil {
		fatal(err)
	}

	fmt.Printf("Successfully wrote %d frames\n", frames)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "genwav:", err)
	os.Exit(1)
}
