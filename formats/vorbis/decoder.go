// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audiodiff/audio"
)

// floatStream is the part of oggvorbis.Reader we consume; tests
// substitute a fake.
type floatStream interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Clip, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return decodeAll(dec)
}

// decodeAll collects the decoded float32 stream into a single clip.
func decodeAll(s floatStream) (*audio.Clip, error) {
	var samples []float32

	buf := make([]float32, 4096)
	for {
		n, err := s.Read(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if n == 0 {
			break
		}
	}

	return &audio.Clip{
		Samples:    samples,
		SampleRate: s.SampleRate(),
		Channels:   s.Channels(),
	}, nil
}
