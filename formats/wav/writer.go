// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// writeHeader writes the canonical 44-byte RIFF/fmt/data header.
func writeHeader(w io.Writer, format, channels, sampleRate, bits int, dataSize uint32) error {
	numChannels := uint16(channels)
	bitsPerSample := uint16(bits)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bitsPerSample/8)
	blockAlign := uint16(numChannels) * uint16(bitsPerSample/8)
	riffSize := 36 + dataSize

	header := make([]byte, 44)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], uint16(format))
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// WriteFloat32 writes an interleaved 32-bit IEEE float WAV at
// sampleRate with the given channel count. This is the format the
// comparison path consumes.
func WriteFloat32(w io.Writer, sampleRate, channels int, samples []float32) error {
	dataSize := uint32(len(samples) * 4)

	if err := writeHeader(w, FormatIEEEFloat, channels, sampleRate, 32, dataSize); err != nil {
		return err
	}

	if len(samples) == 0 {
		return nil
	}

	// Write in chunks to bound the conversion buffer
	const chunkSize = 4096

	bufSize := min(len(samples), chunkSize)
	buf := make([]byte, bufSize*4)

	for i := 0; i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))
		chunk := samples[i:end]
		buf = buf[:len(chunk)*4]

		for j, s := range chunk {
			binary.LittleEndian.PutUint32(buf[j*4:j*4+4], math.Float32bits(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	dataSize := uint32(len(samples) * 2)

	if err := writeHeader(w, FormatPCM, 1, sampleRate, 16, dataSize); err != nil {
		return err
	}

	if len(samples) == 0 {
		return nil
	}

	const chunkSize = 8192 // Write 16KB at a time

	bufSize := min(len(samples), chunkSize)
	buf := make([]byte, bufSize*2)

	for i := 0; i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))
		chunk := samples[i:end]
		buf = buf[:len(chunk)*2]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(buf[j*2:j*2+2], uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
