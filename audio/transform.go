// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Target describes the output format of a conversion.
type Target struct {
	// BitDepth of the output: 8, 16, 24 or 32.
	BitDepth int
	// Stereo selects two output channels, otherwise one.
	Stereo bool
	// SampleRate of the output in Hz.
	SampleRate int
}

// Validate checks that the target can be encoded.
func (t Target) Validate() error {
	if !ValidBitDepth(t.BitDepth) {
		return fmt.Errorf("%w: %d-bit target", ErrUnsupportedFormat, t.BitDepth)
	}

	if t.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrUnsupportedFormat, t.SampleRate)
	}

	return nil
}

// Transform converts s in place to the target format. The steps always run in
// this order:
//  1. channel policy (SetStereo)
//  2. sample rate conversion (Resample)
//  3. bit depth conversion (SetBitDepth)
//
// Nothing is modified when the target or the samples are invalid.
func Transform(s *Samples, t Target) error {
	if err := t.Validate(); err != nil {
		return err
	}

	if err := s.Validate(); err != nil {
		return err
	}

	if err := s.checkRate(t.SampleRate); err != nil {
		return err
	}

	s.SetStereo(t.Stereo)

	if err := s.Resample(t.SampleRate); err != nil {
		return err
	}

	return s.SetBitDepth(t.BitDepth)
}
