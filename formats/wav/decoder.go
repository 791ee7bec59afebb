// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ik5/audiodiff/audio"
)

// Decoder implements audio.Decoder for WAV input. Unlike Read, which
// enforces 32-bit float data for the header-strict comparison path,
// the registry decoder also accepts 16-bit integer PCM and normalizes
// it to floats.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Clip, error) {
	// go-audio/wav wants a ReadSeeker; buffering the stream is fine
	// since the whole file is decoded anyway.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	params, raw, err := readRaw(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var samples []float32

	switch {
	case params.AudioFormat == FormatIEEEFloat && params.SampleBits == 32:
		samples, err = decodeFloat32(raw)
	case params.AudioFormat == FormatPCM && params.SampleBits == 16:
		samples, err = decodePCM16(raw)
	default:
		return nil, fmt.Errorf("%w: %s %d-bit",
			ErrUnsupportedSampleFormat, params.formatName(), params.SampleBits)
	}
	if err != nil {
		return nil, err
	}

	return &audio.Clip{
		Samples:    samples,
		SampleRate: params.SampleRate,
		Channels:   params.Channels,
	}, nil
}
