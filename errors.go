// SPDX-License-Identifier: EPL-2.0

package audiodiff

import "errors"

var (
	// ErrUnknownFormat indicates a file extension with no registered
	// decoder.
	ErrUnknownFormat = errors.New("unknown audio format")
)
