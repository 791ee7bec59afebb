// SPDX-License-Identifier: EPL-2.0

package audiodiff

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ik5/audiodiff/audio"
	"github.com/ik5/audiodiff/diff"
	"github.com/ik5/audiodiff/formats/wav"
	"github.com/ik5/audiodiff/internal/audiotest"
)

// writeWavFile writes a float32 WAV into dir and returns its path.
func writeWavFile(t *testing.T, dir, name string, sampleRate, channels int, samples []float32) string {
	t.Helper()

	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create(%s) error = %v", name, err)
	}
	defer f.Close()

	if err := wav.WriteFloat32(f, sampleRate, channels, samples); err != nil {
		t.Fatalf("WriteFloat32(%s) error = %v", name, err)
	}

	return path
}

func TestCompareWAVFiles_Identical(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	samples := audiotest.Sine(8000, 2, 400, 440.0)

	pathA := writeWavFile(t, dir, "a.wav", 8000, 2, samples)
	pathB := writeWavFile(t, dir, "b.wav", 8000, 2, samples)

	cmp, err := CompareWAVFiles(pathA, pathB)
	if err != nil {
		t.Fatalf("CompareWAVFiles() error = %v, want nil", err)
	}

	if cmp.Mismatch != nil {
		t.Fatalf("Mismatch = %+v, want nil", cmp.Mismatch)
	}
	if cmp.Report == nil {
		t.Fatal("Report is nil, want report")
	}

	if cmp.Report.TotalSamples != 800 {
		t.Errorf("TotalSamples = %d, want 800", cmp.Report.TotalSamples)
	}
	if cmp.Report.Differing != 0 {
		t.Errorf("Differing = %d, want 0", cmp.Report.Differing)
	}
	if cmp.Report.Max != 0 {
		t.Errorf("Max = %f, want 0", cmp.Report.Max)
	}
	if cmp.Report.Avg != 0 {
		t.Errorf("Avg = %f, want 0", cmp.Report.Avg)
	}
}

func TestCompareWAVFiles_SingleDivergentSample(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	a := []float32{0.1, 0.2, 0.3, 0.4}
	b := audiotest.Offset(a, 0)
	b[3] = 0.4002

	pathA := writeWavFile(t, dir, "a.wav", 8000, 1, a)
	pathB := writeWavFile(t, dir, "b.wav", 8000, 1, b)

	cmp, err := CompareWAVFiles(pathA, pathB)
	if err != nil {
		t.Fatalf("CompareWAVFiles() error = %v, want nil", err)
	}
	if cmp.Report == nil {
		t.Fatal("Report is nil, want report")
	}

	if cmp.Report.Differing != 1 {
		t.Errorf("Differing = %d, want 1", cmp.Report.Differing)
	}
	if cmp.Report.Percent != 25 {
		t.Errorf("Percent = %f, want 25", cmp.Report.Percent)
	}
}

func TestCompareWAVFiles_RateMismatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	samples := audiotest.Constant(1, 100, 0.5)

	pathA := writeWavFile(t, dir, "a.wav", 48000, 1, samples)
	pathB := writeWavFile(t, dir, "b.wav", 44100, 1, samples)

	cmp, err := CompareWAVFiles(pathA, pathB)
	if err != nil {
		t.Fatalf("CompareWAVFiles() error = %v, want nil", err)
	}

	if cmp.Mismatch == nil {
		t.Fatal("Mismatch is nil, want mismatch for differing rates")
	}
	if cmp.Report != nil {
		t.Error("Report is non-nil, want no statistics for mismatched formats")
	}

	if !strings.Contains(cmp.Mismatch.A, "rate=48000Hz") {
		t.Errorf("Mismatch.A = %q, want rate=48000Hz", cmp.Mismatch.A)
	}
	if !strings.Contains(cmp.Mismatch.B, "rate=44100Hz") {
		t.Errorf("Mismatch.B = %q, want rate=44100Hz", cmp.Mismatch.B)
	}
}

func TestCompareWAVFiles_ChannelMismatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	pathA := writeWavFile(t, dir, "a.wav", 8000, 1, audiotest.Silence(1, 100))
	pathB := writeWavFile(t, dir, "b.wav", 8000, 2, audiotest.Silence(2, 100))

	cmp, err := CompareWAVFiles(pathA, pathB)
	if err != nil {
		t.Fatalf("CompareWAVFiles() error = %v, want nil", err)
	}

	if cmp.Mismatch == nil {
		t.Fatal("Mismatch is nil, want mismatch for differing channel counts")
	}
}

func TestCompareWAVFiles_MissingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pathA := writeWavFile(t, dir, "a.wav", 8000, 1, audiotest.Silence(1, 10))

	_, err := CompareWAVFiles(pathA, filepath.Join(dir, "missing.wav"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("CompareWAVFiles() error = %v, want os.ErrNotExist", err)
	}
}

func TestCompareWAVFiles_EmptyRecordings(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	pathA := writeWavFile(t, dir, "a.wav", 8000, 1, nil)
	pathB := writeWavFile(t, dir, "b.wav", 8000, 1, nil)

	_, err := CompareWAVFiles(pathA, pathB)
	if !errors.Is(err, diff.ErrEmptyRecording) {
		t.Errorf("CompareWAVFiles() error = %v, want ErrEmptyRecording", err)
	}
}

func TestCompareClips_RateMismatchWithoutOptions(t *testing.T) {
	t.Parallel()

	a := &audio.Clip{Samples: audiotest.Silence(1, 100), SampleRate: 48000, Channels: 1}
	b := &audio.Clip{Samples: audiotest.Silence(1, 100), SampleRate: 44100, Channels: 1}

	cmp, err := CompareClips(a, b, Options{})
	if err != nil {
		t.Fatalf("CompareClips() error = %v, want nil", err)
	}
	if cmp.Mismatch == nil {
		t.Fatal("Mismatch is nil, want mismatch for differing rates")
	}
}

func TestCompareClips_MatchRate(t *testing.T) {
	t.Parallel()

	// The same low-frequency tone captured at two rates.
	a := &audio.Clip{
		Samples:    audiotest.Sine(8000, 1, 800, 50.0),
		SampleRate: 8000,
		Channels:   1,
	}
	b := &audio.Clip{
		Samples:    audiotest.Sine(16000, 1, 1600, 50.0),
		SampleRate: 16000,
		Channels:   1,
	}

	cmp, err := CompareClips(a, b, Options{MatchRate: true})
	if err != nil {
		t.Fatalf("CompareClips() error = %v, want nil", err)
	}

	if cmp.Mismatch != nil {
		t.Fatalf("Mismatch = %+v, want nil after rate matching", cmp.Mismatch)
	}
	if cmp.Report.TotalSamples != 800 {
		t.Errorf("TotalSamples = %d, want 800", cmp.Report.TotalSamples)
	}
	// Cubic interpolation tracks a slow sine closely.
	if cmp.Report.Max > 0.01 {
		t.Errorf("Max = %f, want < 0.01", cmp.Report.Max)
	}
}

func TestCompareClips_Mixdown(t *testing.T) {
	t.Parallel()

	a := &audio.Clip{
		Samples:    audiotest.Constant(2, 100, 0.5),
		SampleRate: 8000,
		Channels:   2,
	}
	b := &audio.Clip{
		Samples:    audiotest.Constant(1, 100, 0.5),
		SampleRate: 8000,
		Channels:   1,
	}

	cmp, err := CompareClips(a, b, Options{MixdownToMono: true})
	if err != nil {
		t.Fatalf("CompareClips() error = %v, want nil", err)
	}

	if cmp.Mismatch != nil {
		t.Fatalf("Mismatch = %+v, want nil after mixdown", cmp.Mismatch)
	}
	if cmp.Report.Differing != 0 {
		t.Errorf("Differing = %d, want 0", cmp.Report.Differing)
	}
}

func TestCompareClips_FrameCountMismatch(t *testing.T) {
	t.Parallel()

	a := &audio.Clip{Samples: audiotest.Silence(1, 100), SampleRate: 8000, Channels: 1}
	b := &audio.Clip{Samples: audiotest.Silence(1, 99), SampleRate: 8000, Channels: 1}

	cmp, err := CompareClips(a, b, Options{})
	if err != nil {
		t.Fatalf("CompareClips() error = %v, want nil", err)
	}
	if cmp.Mismatch == nil {
		t.Fatal("Mismatch is nil, want mismatch for differing frame counts")
	}
}

func TestCompareFiles_StrictWAVPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	samples := audiotest.Sine(8000, 1, 100, 200.0)

	pathA := writeWavFile(t, dir, "a.wav", 8000, 1, samples)
	pathB := writeWavFile(t, dir, "b.wav", 8000, 1, samples)

	cmp, err := CompareFiles(pathA, pathB, Options{})
	if err != nil {
		t.Fatalf("CompareFiles() error = %v, want nil", err)
	}
	if cmp.Report == nil || cmp.Report.Differing != 0 {
		t.Errorf("CompareFiles() = %+v, want zero-divergence report", cmp)
	}
}

func TestCompareFiles_WAVWithOptionsUsesClipPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	// Stereo versus mono: the strict path would report a mismatch,
	// the clip path reconciles via mixdown.
	pathA := writeWavFile(t, dir, "a.wav", 8000, 2, audiotest.Constant(2, 50, 0.25))
	pathB := writeWavFile(t, dir, "b.wav", 8000, 1, audiotest.Constant(1, 50, 0.25))

	cmp, err := CompareFiles(pathA, pathB, Options{MixdownToMono: true})
	if err != nil {
		t.Fatalf("CompareFiles() error = %v, want nil", err)
	}
	if cmp.Mismatch != nil {
		t.Fatalf("Mismatch = %+v, want nil", cmp.Mismatch)
	}
	if cmp.Report.Differing != 0 {
		t.Errorf("Differing = %d, want 0", cmp.Report.Differing)
	}
}

func TestCompareFiles_UnknownExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	_, err := CompareFiles(path, path, Options{})
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("CompareFiles() error = %v, want ErrUnknownFormat", err)
	}
}

func TestNewFormatRegistry(t *testing.T) {
	t.Parallel()

	reg := NewFormatRegistry()

	for _, key := range []string{"wav", "mp3", "ogg", "aif", "aiff"} {
		if _, ok := reg.Get(key); !ok {
			t.Errorf("registry missing %q decoder", key)
		}
	}
}
