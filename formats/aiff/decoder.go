// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audiodiff/audio"
	"github.com/ik5/audiodiff/utils"
)

// pcmSource is the slice of goaiff.Decoder we consume; tests
// substitute a fake.
type pcmSource interface {
	Format() *goaudio.Format
	FullPCMBuffer() (*goaudio.IntBuffer, error)
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Clip, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	// Only 16-bit PCM for now
	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	return decodeAll(dec)
}

// decodeAll reads the full PCM buffer and normalizes 16-bit values.
func decodeAll(src pcmSource) (*audio.Clip, error) {
	format := src.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	buf, err := src.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	samples := make([]float32, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = utils.Int16ToFloat32(int16(v))
	}

	return &audio.Clip{
		Samples:    samples,
		SampleRate: format.SampleRate,
		Channels:   format.NumChannels,
	}, nil
}
