// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// SetBitDepth converts the samples to another width by shifting: left when
// widening, arithmetic right when narrowing. There is no dithering or
// rounding.
func (s *Samples) SetBitDepth(bits int) error {
	if !ValidBitDepth(bits) {
		return fmt.Errorf("%w: %d-bit target", ErrUnsupportedFormat, bits)
	}

	if !ValidBitDepth(s.BitDepth) {
		return fmt.Errorf("%w: %d-bit samples", ErrUnsupportedFormat, s.BitDepth)
	}

	shiftChannel(s.Left, bits-s.BitDepth)
	shiftChannel(s.Right, bits-s.BitDepth)
	s.BitDepth = bits

	return nil
}

func shiftChannel(ch []int, shift int) {
	switch {
	case shift > 0:
		for i := range ch {
			ch[i] <<= shift
		}
	case shift < 0:
		for i := range ch {
			ch[i] >>= -shift
		}
	}
}
