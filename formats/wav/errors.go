package wav

import "errors"

var (
	ErrNotWavFile              = errors.New("not a WAV file")
	ErrUnsupportedWavLayout    = errors.New("unsupported WAV layout")
	ErrUnsupportedSampleFormat = errors.New("unsupported WAV sample format")
	ErrNoDataChunk             = errors.New("WAV file has no data chunk")
	ErrTruncatedData           = errors.New("sample data truncated mid-sample")
)
