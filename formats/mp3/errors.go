package mp3

import "errors"

var (
	// ErrTruncatedStream indicates the PCM stream ended mid-sample.
	ErrTruncatedStream = errors.New("mp3 PCM stream truncated mid-sample")
)
