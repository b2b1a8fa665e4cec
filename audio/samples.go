// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	goaudio "github.com/go-audio/audio"
)

// Samples holds decoded audio as one signed integer sequence per channel.
//
// Right is empty for mono. When it is not empty it has the same length as
// Left. Values are in the signed range of BitDepth (e.g. -128..127 for 8-bit).
type Samples struct {
	Left  []int
	Right []int

	// BitDepth is the current sample width: 8, 16, 24 or 32.
	BitDepth int
	// SampleRate in Hz.
	SampleRate int
	// DurationMs is the playback length of the source in milliseconds.
	// Resample derives its output length from it.
	DurationMs float64
}

// Channels returns 2 when Right holds samples and 1 otherwise.
func (s *Samples) Channels() int {
	if len(s.Right) == 0 {
		return 1
	}

	return 2
}

// Frames returns the number of samples per channel.
func (s *Samples) Frames() int { return len(s.Left) }

// Validate checks the channel length invariant and the bit depth.
func (s *Samples) Validate() error {
	if len(s.Right) != 0 && len(s.Right) != len(s.Left) {
		return fmt.Errorf("%w: left %d, right %d", ErrChannelMismatch, len(s.Left), len(s.Right))
	}

	if !ValidBitDepth(s.BitDepth) {
		return fmt.Errorf("%w: %d-bit samples", ErrUnsupportedFormat, s.BitDepth)
	}

	return nil
}

// IntBuffer returns the samples interleaved as a go-audio buffer.
func (s *Samples) IntBuffer() *goaudio.IntBuffer {
	channels := s.Channels()
	data := make([]int, 0, len(s.Left)*channels)

	for i, l := range s.Left {
		data = append(data, l)
		if channels == 2 {
			data = append(data, s.Right[i])
		}
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  s.SampleRate,
		},
		Data:           data,
		SourceBitDepth: s.BitDepth,
	}
}

// FromIntBuffer splits an interleaved go-audio buffer holding signed samples
// of the given bit depth. A trailing incomplete frame is dropped.
func FromIntBuffer(buf *goaudio.IntBuffer, bitDepth int) (*Samples, error) {
	if buf == nil || buf.Format == nil {
		return nil, fmt.Errorf("%w: missing buffer format", ErrUnsupportedFormat)
	}

	if !ValidBitDepth(bitDepth) {
		return nil, fmt.Errorf("%w: %d-bit samples", ErrUnsupportedFormat, bitDepth)
	}

	channels := buf.Format.NumChannels
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, channels)
	}

	frames := len(buf.Data) / channels
	s := &Samples{
		Left:       make([]int, frames),
		BitDepth:   bitDepth,
		SampleRate: buf.Format.SampleRate,
		DurationMs: durationMs(frames, buf.Format.SampleRate),
	}

	if channels == 2 {
		s.Right = make([]int, frames)
	}

	for i := range frames {
		s.Left[i] = buf.Data[i*channels]
		if channels == 2 {
			s.Right[i] = buf.Data[i*channels+1]
		}
	}

	return s, nil
}

func durationMs(frames, sampleRate int) float64 {
	if sampleRate <= 0 {
		return 0
	}

	return 1000 * float64(frames) / float64(sampleRate)
}
