// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
	"time"
)

// Clip holds a fully decoded recording: interleaved float32 samples in
// [-1,1] plus the stream parameters needed to interpret them.
// Comparison works on whole recordings, so decoders load everything up
// front instead of streaming.
type Clip struct {
	// Samples are interleaved across channels (frame by frame).
	Samples []float32
	// SampleRate of the recording in Hz.
	SampleRate int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels int
}

// Frames returns the number of frames in the clip. A frame is one
// sample per channel.
func (c *Clip) Frames() int {
	if c.Channels < 1 {
		return 0
	}
	return len(c.Samples) / c.Channels
}

// Duration returns the play time of the clip.
func (c *Clip) Duration() time.Duration {
	if c.SampleRate < 1 {
		return 0
	}
	return time.Duration(c.Frames()) * time.Second / time.Duration(c.SampleRate)
}

// Decoder decodes an entire audio stream into a Clip.
type Decoder interface {
	Decode(r io.Reader) (*Clip, error)
}

// Registry maps format keys (file extensions such as "wav", "mp3",
// "ogg") to decoders.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// Formats returns the registered format keys in no particular order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	keys := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		keys = append(keys, k)
	}
	return keys
}
