// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"slices"
	"testing"

	goaudio "github.com/go-audio/audio"
)

func TestSamples_Channels(t *testing.T) {
	t.Parallel()

	mono := &Samples{Left: []int{1, 2}, BitDepth: 16}
	if mono.Channels() != 1 || mono.Frames() != 2 {
		t.Errorf("mono: Channels() = %d, Frames() = %d, want 1, 2", mono.Channels(), mono.Frames())
	}

	stereo := &Samples{Left: []int{1, 2}, Right: []int{3, 4}, BitDepth: 16}
	if stereo.Channels() != 2 {
		t.Errorf("stereo: Channels() = %d, want 2", stereo.Channels())
	}
}

func TestSamples_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		s       Samples
		wantErr error
	}{
		{"mono", Samples{Left: []int{1}, BitDepth: 8}, nil},
		{"stereo", Samples{Left: []int{1}, Right: []int{2}, BitDepth: 24}, nil},
		{"empty", Samples{BitDepth: 32}, nil},
		{"mismatch", Samples{Left: []int{1, 2}, Right: []int{2}, BitDepth: 16}, ErrChannelMismatch},
		{"bad depth", Samples{Left: []int{1}, BitDepth: 20}, ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.s.Validate()
			if tt.wantErr == nil && err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSamples_IntBufferRoundTrip(t *testing.T) {
	t.Parallel()

	s := &Samples{
		Left:       []int{1, 2, 3},
		Right:      []int{-1, -2, -3},
		BitDepth:   24,
		SampleRate: 48000,
	}

	buf := s.IntBuffer()
	if buf.Format.NumChannels != 2 || buf.Format.SampleRate != 48000 || buf.SourceBitDepth != 24 {
		t.Errorf("IntBuffer() format = %+v depth %d", *buf.Format, buf.SourceBitDepth)
	}

	if !slices.Equal(buf.Data, []int{1, -1, 2, -2, 3, -3}) {
		t.Errorf("IntBuffer().Data = %v, want interleaved", buf.Data)
	}

	back, err := FromIntBuffer(buf, 24)
	if err != nil {
		t.Fatalf("FromIntBuffer() error = %v", err)
	}

	if !slices.Equal(back.Left, s.Left) || !slices.Equal(back.Right, s.Right) {
		t.Errorf("FromIntBuffer() = %v / %v, want %v / %v", back.Left, back.Right, s.Left, s.Right)
	}

	// 3 frames at 48kHz
	if back.DurationMs != 1000*3.0/48000 {
		t.Errorf("DurationMs = %v, want %v", back.DurationMs, 1000*3.0/48000)
	}
}

func TestFromIntBuffer_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		buf  *goaudio.IntBuffer
		bits int
	}{
		{"nil buffer", nil, 16},
		{"nil format", &goaudio.IntBuffer{Data: []int{1}}, 16},
		{"bad depth", &goaudio.IntBuffer{Format: &goaudio.Format{NumChannels: 1, SampleRate: 8000}}, 4},
		{"quad", &goaudio.IntBuffer{Format: &goaudio.Format{NumChannels: 4, SampleRate: 8000}}, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := FromIntBuffer(tt.buf, tt.bits); !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("FromIntBuffer() error = %v, want ErrUnsupportedFormat", err)
			}
		})
	}
}

func TestFromIntBuffer_DropsPartialFrame(t *testing.T) {
	t.Parallel()

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{NumChannels: 2, SampleRate: 8000},
		Data:   []int{1, 2, 3, 4, 5},
	}

	s, err := FromIntBuffer(buf, 16)
	if err != nil {
		t.Fatalf("FromIntBuffer() error = %v", err)
	}

	if !slices.Equal(s.Left, []int{1, 3}) || !slices.Equal(s.Right, []int{2, 4}) {
		t.Errorf("FromIntBuffer() = %v / %v, want [1 3] / [2 4]", s.Left, s.Right)
	}
}
