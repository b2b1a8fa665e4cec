// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"

	"github.com/ik5/wavconv/audio"
)

var (
	ErrNotAWaveFile = errors.New("not a WAVE file")

	// ErrUnsupportedFormat is audio.ErrUnsupportedFormat, so both match with
	// errors.Is.
	ErrUnsupportedFormat = audio.ErrUnsupportedFormat
)
