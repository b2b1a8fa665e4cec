// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	"github.com/ik5/wavconv/utils"
)

// ValidBitDepth reports whether bits is one of the supported PCM widths.
func ValidBitDepth(bits int) bool {
	switch bits {
	case 8, 16, 24, 32:
		return true
	}

	return false
}

// ToSigned maps a raw little-endian sample of the given width to its signed
// value. 8-bit PCM is offset binary (128 is silence); wider samples are two's
// complement.
func ToSigned(v uint32, bits int) int {
	if bits == 8 {
		return int(v) - 128
	}

	if v >= 1<<(bits-1) {
		return int(v) - 1<<bits
	}

	return int(v)
}

// ToUnsigned is the inverse of ToSigned.
func ToUnsigned(v int, bits int) uint32 {
	if bits == 8 {
		return uint32(v + 128)
	}

	if v < 0 {
		return uint32(v + 1<<bits)
	}

	return uint32(v)
}

// DecodePCM extracts little-endian samples of bitDepth bits from raw and
// splits them into channels. Stereo frames alternate left and right.
// When float is set the samples are 32-bit IEEE floats scaled into the signed
// 32-bit range.
//
// A trailing partial sample is ignored, and so is an unmatched final left
// sample of a stereo stream.
func DecodePCM(raw []byte, bitDepth, channels int, float bool) (*Samples, error) {
	if !ValidBitDepth(bitDepth) {
		return nil, fmt.Errorf("%w: %d-bit samples", ErrUnsupportedFormat, bitDepth)
	}

	if float && bitDepth != 32 {
		return nil, fmt.Errorf("%w: %d-bit float samples", ErrUnsupportedFormat, bitDepth)
	}

	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, channels)
	}

	width := bitDepth / 8
	n := len(raw) / width
	n -= n % channels

	s := &Samples{
		Left:     make([]int, 0, n/channels),
		BitDepth: bitDepth,
	}
	if channels == 2 {
		s.Right = make([]int, 0, n/2)
	}

	for i := range n {
		v := readSample(raw[i*width:i*width+width], bitDepth, float)
		if channels == 2 && i%2 == 1 {
			s.Right = append(s.Right, v)
		} else {
			s.Left = append(s.Left, v)
		}
	}

	return s, nil
}

func readSample(p []byte, bitDepth int, float bool) int {
	var u uint32
	for i := len(p) - 1; i >= 0; i-- {
		u = u<<8 | uint32(p[i])
	}

	if float {
		return int(utils.Float32ToInt32(math.Float32frombits(u)))
	}

	return ToSigned(u, bitDepth)
}

// AppendPCM writes the samples interleaved (left, right, left, ...) at their
// current bit depth as unsigned little-endian words.
func AppendPCM(w *utils.ByteWriter, s *Samples) {
	width := s.BitDepth / 8
	stereo := s.Channels() == 2

	var tmp [4]byte
	put := func(v int) {
		u := ToUnsigned(v, s.BitDepth)
		for b := range width {
			tmp[b] = byte(u >> (8 * b))
		}
		w.Append(tmp[:width])
	}

	for i, l := range s.Left {
		put(l)
		if stereo {
			put(s.Right[i])
		}
	}
}
