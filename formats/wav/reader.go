// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/audiodiff/utils"
)

// File is a fully read WAV recording: the header parameter tuple plus
// the decoded sample sequence. The entire data chunk is loaded in one
// read; this tool does not stream.
type File struct {
	Params  FormatParams
	Samples []float32
}

// ReadFile reads and decodes the WAV file at path. The file handle is
// closed before returning on every path.
func ReadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	file, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return file, nil
}

// Read parses a WAV stream and decodes its samples. Only 32-bit IEEE
// float sample data is accepted here; the sample encoding is a
// validated precondition, not an assumption, so integer-PCM input
// fails with ErrUnsupportedSampleFormat instead of being silently
// reinterpreted as floats.
func Read(r io.ReadSeeker) (*File, error) {
	params, raw, err := readRaw(r)
	if err != nil {
		return nil, err
	}

	if params.AudioFormat != FormatIEEEFloat || params.SampleBits != 32 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSampleFormat, params.formatName())
	}

	samples, err := decodeFloat32(raw)
	if err != nil {
		return nil, err
	}

	return &File{Params: params, Samples: samples}, nil
}

// ReadParams parses only the header parameter tuple, without decoding
// sample data.
func ReadParams(r io.ReadSeeker) (FormatParams, error) {
	d := gowav.NewDecoder(r)
	return readParams(d)
}

// readRaw parses the container via go-audio/wav and returns the
// header params plus the raw bytes of the data chunk.
func readRaw(r io.ReadSeeker) (FormatParams, []byte, error) {
	d := gowav.NewDecoder(r)

	params, err := readParams(d)
	if err != nil {
		return FormatParams{}, nil, err
	}

	size := d.PCMChunk.Size
	raw := make([]byte, size)
	if _, err := io.ReadFull(d.PCMChunk, raw); err != nil {
		return FormatParams{}, nil, fmt.Errorf("read data chunk: %w", err)
	}

	return params, raw, nil
}

func readParams(d *gowav.Decoder) (FormatParams, error) {
	if !d.IsValidFile() {
		return FormatParams{}, ErrNotWavFile
	}

	if err := d.FwdToPCM(); err != nil {
		return FormatParams{}, fmt.Errorf("%w: %s", ErrNoDataChunk, err)
	}
	if d.PCMChunk == nil {
		return FormatParams{}, ErrNoDataChunk
	}

	params := FormatParams{
		Channels:    int(d.NumChans),
		SampleBits:  int(d.BitDepth),
		SampleRate:  int(d.SampleRate),
		AudioFormat: int(d.WavAudioFormat),
	}

	if params.Channels < 1 || params.SampleBits < 8 {
		return FormatParams{}, ErrUnsupportedWavLayout
	}

	bytesPerFrame := params.Channels * params.SampleBits / 8
	params.Frames = d.PCMChunk.Size / bytesPerFrame

	return params, nil
}

// decodeFloat32 reinterprets consecutive little-endian 4-byte groups
// as IEEE-754 float32 values.
func decodeFloat32(raw []byte) ([]float32, error) {
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncatedData, len(raw))
	}

	samples := make([]float32, len(raw)/4)
	for i := range samples {
		bits := binary.LittleEndian.Uint32(raw[4*i : 4*i+4])
		samples[i] = math.Float32frombits(bits)
	}

	return samples, nil
}

// decodePCM16 converts little-endian 16-bit PCM to normalized floats.
func decodePCM16(raw []byte) ([]float32, error) {
	if len(raw)%2 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncatedData, len(raw))
	}

	samples := make([]float32, len(raw)/2)
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(raw[2*i : 2*i+2]))
		samples[i] = utils.Int16ToFloat32(v)
	}

	return samples, nil
}
