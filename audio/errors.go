// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrChannelMismatch   = errors.New("left and right channel lengths differ")
)
