// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"math"
	"slices"
	"testing"

	"github.com/ik5/wavconv/audio"
)

// mockOggVorbisReader simulates the oggvorbis.Reader for testing
type mockOggVorbisReader struct {
	sampleRate   int
	channels     int
	samples      []float32
	offset       int
	returnErrors bool
}

func (m *mockOggVorbisReader) SampleRate() int {
	return m.sampleRate
}

func (m *mockOggVorbisReader) Channels() int {
	return m.channels
}

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	// whole frames only
	n := min(len(buf), len(m.samples)-m.offset)
	n -= n % m.channels

	copy(buf, m.samples[m.offset:m.offset+n])
	m.offset += n

	if m.offset >= len(m.samples) {
		return n, io.EOF
	}

	return n, nil
}

var _ audio.Decoder = Decoder{}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("This is not Ogg Vorbis data")))
	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader(nil))
	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestDecode_Stereo(t *testing.T) {
	t.Parallel()

	m := &mockOggVorbisReader{
		sampleRate: 48000,
		channels:   2,
		samples:    []float32{0, 0.5, -0.5, 1, -1, 0.25},
	}

	s, err := decode(m)
	if err != nil {
		t.Fatalf("decode() error = %v", err)
	}

	wantLeft := []int{0, -1073741824, math.MinInt32}
	wantRight := []int{1073741823, math.MaxInt32, 536870911}

	if !slices.Equal(s.Left, wantLeft) || !slices.Equal(s.Right, wantRight) {
		t.Errorf("decode() = %v / %v, want %v / %v", s.Left, s.Right, wantLeft, wantRight)
	}

	if s.BitDepth != 32 || s.SampleRate != 48000 {
		t.Errorf("format = %d-bit %d Hz, want 32-bit 48000 Hz", s.BitDepth, s.SampleRate)
	}
}

func TestDecode_MonoManyReads(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 3*framesPerRead+17)
	for i := range samples {
		samples[i] = float32(i%200-100) / 100
	}

	s, err := decode(&mockOggVorbisReader{sampleRate: 16000, channels: 1, samples: samples})
	if err != nil {
		t.Fatalf("decode() error = %v", err)
	}

	if s.Frames() != len(samples) || s.Channels() != 1 {
		t.Fatalf("decode() = %d frames %d ch, want %d mono", s.Frames(), s.Channels(), len(samples))
	}

	wantMs := 1000 * float64(len(samples)) / 16000
	if s.DurationMs != wantMs {
		t.Errorf("DurationMs = %v, want %v", s.DurationMs, wantMs)
	}
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	_, err := decode(&mockOggVorbisReader{sampleRate: 44100, channels: 2, samples: []float32{0, 0}, returnErrors: true})
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("decode() error = %v, want io.ErrUnexpectedEOF", err)
	}

	_, err = decode(&mockOggVorbisReader{sampleRate: 44100, channels: 6})
	if !errors.Is(err, audio.ErrUnsupportedFormat) {
		t.Errorf("decode() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestDecode_Transformable(t *testing.T) {
	t.Parallel()

	s, err := decode(&mockOggVorbisReader{sampleRate: 8000, channels: 1, samples: []float32{1, -1, 0.5, 0}})
	if err != nil {
		t.Fatalf("decode() error = %v", err)
	}

	if err := audio.Transform(s, audio.Target{BitDepth: 16, SampleRate: 8000}); err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	want := []int{32767, -32768, 16383, 0}
	if !slices.Equal(s.Left, want) {
		t.Errorf("Left = %v, want %v", s.Left, want)
	}
}

func BenchmarkDecode(b *testing.B) {
	samples := make([]float32, 2*44100)
	for i := range samples {
		samples[i] = float32(math.Sin(float64(i) / 10))
	}

	b.ReportAllocs()

	for b.Loop() {
		_, _ = decode(&mockOggVorbisReader{sampleRate: 44100, channels: 2, samples: samples})
	}
}
