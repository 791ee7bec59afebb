// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audiodiff/audio"
	"github.com/ik5/audiodiff/utils"
)

// pcmStream is the part of gomp3.Decoder we consume, kept as an
// interface so tests can feed synthetic PCM.
type pcmStream interface {
	io.Reader
	SampleRate() int
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Clip, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return decodeAll(dec)
}

// decodeAll drains the 16-bit little-endian PCM stream go-mp3
// produces and normalizes it. go-mp3 always emits two interleaved
// channels regardless of the source.
func decodeAll(s pcmStream) (*audio.Clip, error) {
	data, err := io.ReadAll(s)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if len(data)%2 != 0 {
		return nil, ErrTruncatedStream
	}

	samples := make([]float32, len(data)/2)
	for i := range samples {
		v := int16(uint16(data[2*i]) | uint16(data[2*i+1])<<8)
		samples[i] = utils.Int16ToFloat32(v)
	}

	return &audio.Clip{
		Samples:    samples,
		SampleRate: s.SampleRate(),
		Channels:   2,
	}, nil
}
