// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds WAV fixtures and sample sequences for tests.
//
// It does not import the audio packages so that their in-package tests can
// use it without import cycles.
package audiotest

import (
	"encoding/binary"
	"math"
)

// Chunk is an arbitrary RIFF chunk inserted into a fixture.
type Chunk struct {
	ID   string
	Data []byte
}

// WAV describes a fixture. Zero values select linear PCM and a consistent
// block align and byte rate.
type WAV struct {
	FormatTag     uint16
	Channels      int
	SampleRate    int
	BitsPerSample int
	Data          []byte

	// AvgBytesPerSec overrides the computed byte rate when non-zero.
	AvgBytesPerSec uint32
	// FmtExtra is appended to the 16-byte fmt payload and counted in its
	// declared length.
	FmtExtra []byte
	// DataLen overrides the declared data chunk length when non-zero.
	DataLen uint32

	// Before, Between and After are chunks placed before fmt, between fmt
	// and data, and after data.
	Before  []Chunk
	Between []Chunk
	After   []Chunk
}

// Bytes serializes the fixture.
func (w WAV) Bytes() []byte {
	tag := w.FormatTag
	if tag == 0 {
		tag = 1
	}

	blockAlign := w.BitsPerSample * w.Channels / 8
	avg := w.AvgBytesPerSec
	if avg == 0 {
		avg = uint32(w.SampleRate * blockAlign)
	}

	dataLen := w.DataLen
	if dataLen == 0 {
		dataLen = uint32(len(w.Data))
	}

	var body []byte
	body = append(body, "WAVE"...)
	for _, c := range w.Before {
		body = appendChunk(body, c.ID, c.Data)
	}

	fmtChunk := make([]byte, 16, 16+len(w.FmtExtra))
	binary.LittleEndian.PutUint16(fmtChunk[0:2], tag)
	binary.LittleEndian.PutUint16(fmtChunk[2:4], uint16(w.Channels))
	binary.LittleEndian.PutUint32(fmtChunk[4:8], uint32(w.SampleRate))
	binary.LittleEndian.PutUint32(fmtChunk[8:12], avg)
	binary.LittleEndian.PutUint16(fmtChunk[12:14], uint16(blockAlign))
	binary.LittleEndian.PutUint16(fmtChunk[14:16], uint16(w.BitsPerSample))
	fmtChunk = append(fmtChunk, w.FmtExtra...)
	body = appendChunk(body, "fmt ", fmtChunk)

	for _, c := range w.Between {
		body = appendChunk(body, c.ID, c.Data)
	}

	body = append(body, "data"...)
	body = binary.LittleEndian.AppendUint32(body, dataLen)
	body = append(body, w.Data...)

	for _, c := range w.After {
		body = appendChunk(body, c.ID, c.Data)
	}

	out := make([]byte, 0, len(body)+8)
	out = append(out, "RIFF"...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(body)))

	return append(out, body...)
}

func appendChunk(dst []byte, id string, data []byte) []byte {
	dst = append(dst, id...)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(data)))

	return append(dst, data...)
}

// PCM packs signed sample values as little-endian words of the given width.
// 8-bit values are stored offset by 128 as WAV requires.
func PCM(bits int, values ...int) []byte {
	width := bits / 8
	out := make([]byte, 0, len(values)*width)

	for _, v := range values {
		u := uint32(v)
		if bits == 8 {
			u = uint32(v + 128)
		}
		for b := range width {
			out = append(out, byte(u>>(8*b)))
		}
	}

	return out
}

// Float32PCM packs IEEE float samples as little-endian 32-bit words.
func Float32PCM(values ...float32) []byte {
	out := make([]byte, 0, len(values)*4)
	for _, v := range values {
		out = binary.LittleEndian.AppendUint32(out, math.Float32bits(v))
	}

	return out
}

// Interleave merges two equally long channels into left, right, left, ...
func Interleave(left, right []int) []int {
	out := make([]int, 0, len(left)*2)
	for i := range left {
		out = append(out, left[i], right[i])
	}

	return out
}

// Sine returns n samples of a sine wave with the given peak amplitude and a
// period of period samples.
func Sine(n int, amplitude float64, period int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = int(amplitude * math.Sin(2*math.Pi*float64(i)/float64(period)))
	}

	return out
}

// Ramp returns n samples stepping from start by step, wrapping inside the
// signed range of bits.
func Ramp(n, start, step, bits int) []int {
	lo := -(1 << (bits - 1))
	span := 1 << bits

	out := make([]int, n)
	for i := range out {
		v := start + i*step - lo
		v = ((v % span) + span) % span
		out[i] = v + lo
	}

	return out
}
