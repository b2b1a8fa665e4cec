// SPDX-License-Identifier: EPL-2.0

package wav

import "fmt"

// Format tags found in the fmt chunk.
const (
	FormatPCM       uint16 = 1
	FormatIEEEFloat uint16 = 3
)

const fmtChunkSize = 16

// Format is the content of a fmt chunk.
type Format struct {
	Tag            uint16
	Channels       int
	SampleRate     int
	AvgBytesPerSec int
	BlockAlign     int
	BitsPerSample  int
}

// NewPCMFormat returns a linear PCM format with consistent block align and
// byte rate.
func NewPCMFormat(channels, sampleRate, bitsPerSample int) Format {
	blockAlign := bitsPerSample * channels / 8

	return Format{
		Tag:            FormatPCM,
		Channels:       channels,
		SampleRate:     sampleRate,
		AvgBytesPerSec: sampleRate * blockAlign,
		BlockAlign:     blockAlign,
		BitsPerSample:  bitsPerSample,
	}
}

// IsFloat reports whether samples are IEEE floats.
func (f Format) IsFloat() bool { return f.Tag == FormatIEEEFloat }

// Bitrate in bits per second.
func (f Format) Bitrate() int { return f.SampleRate * f.BitsPerSample * f.Channels }

func (f Format) String() string {
	kind := fmt.Sprintf("tag %d", f.Tag)
	switch f.Tag {
	case FormatPCM:
		kind = "PCM"
	case FormatIEEEFloat:
		kind = "IEEE float"
	}

	return fmt.Sprintf("%s, %d ch, %d Hz, %d-bit", kind, f.Channels, f.SampleRate, f.BitsPerSample)
}
