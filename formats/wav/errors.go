// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWav          = errors.New("not a WAV file")
	ErrInvalidChannels = errors.New("channel count must be at least 1")
	ErrPartialFrame    = errors.New("sample count must be a multiple of channels")
)
