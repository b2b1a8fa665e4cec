// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"

	"github.com/ik5/wavconv/audio"
)

// Decode extracts the samples of a parsed file. Linear PCM is read at 8, 16,
// 24 or 32 bits; IEEE float only at 32 bits, scaled into the signed 32-bit
// range.
func Decode(w *Wave) (*audio.Samples, error) {
	f := w.Format

	switch {
	case f.Tag == FormatPCM:
	case f.Tag == FormatIEEEFloat && f.BitsPerSample == 32:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}

	s, err := audio.DecodePCM(w.Data, f.BitsPerSample, f.Channels, f.IsFloat())
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.SampleRate = f.SampleRate
	s.DurationMs = w.DurationMs

	return s, nil
}

// DecodeBytes parses and decodes a complete file.
func DecodeBytes(buf []byte) (*audio.Samples, error) {
	w, err := Parse(buf)
	if err != nil {
		return nil, err
	}

	return Decode(w)
}
