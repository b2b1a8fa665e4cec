// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

// Resample changes the sample rate by nearest-neighbour selection.
//
// The output holds floor(rate * DurationMs / 1000) samples per channel. A
// running index starts at 0 and grows by sourceRate/rate for every output
// sample, which takes the source sample at floor(index) - 1. That index is
// clamped to the channel bounds: it is -1 for the first sample when
// upsampling and can pass the last sample for some ratios.
//
// The output may not be longer than the source samples can cover at the new
// rate. A duration that asks for more fails with ErrUnsupportedFormat and
// leaves s unchanged.
func (s *Samples) Resample(rate int) error {
	if err := s.checkRate(rate); err != nil {
		return err
	}

	if rate == s.SampleRate {
		return nil
	}

	ratio := float64(s.SampleRate) / float64(rate)
	size := int(outputSize(rate, s.DurationMs))

	s.Left = resampleChannel(s.Left, ratio, size)
	if len(s.Right) != 0 {
		s.Right = resampleChannel(s.Right, ratio, size)
	}
	s.SampleRate = rate

	return nil
}

func (s *Samples) checkRate(rate int) error {
	if rate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrUnsupportedFormat, rate)
	}

	if rate == s.SampleRate {
		return nil
	}

	if s.SampleRate <= 0 {
		return fmt.Errorf("%w: source sample rate %d", ErrUnsupportedFormat, s.SampleRate)
	}

	if math.IsNaN(s.DurationMs) || math.IsInf(s.DurationMs, 0) || s.DurationMs < 0 {
		return fmt.Errorf("%w: duration %v ms", ErrUnsupportedFormat, s.DurationMs)
	}

	// The output may outrun the source by one sample at most.
	if len(s.Left) > 0 {
		ratio := float64(s.SampleRate) / float64(rate)
		limit := math.Ceil(float64(len(s.Left)+1)/ratio) + 1

		if size := outputSize(rate, s.DurationMs); size > limit {
			return fmt.Errorf("%w: duration %v ms needs %.0f samples at %d Hz, source holds %d",
				ErrUnsupportedFormat, s.DurationMs, size, rate, len(s.Left))
		}
	}

	return nil
}

// outputSize is floor(rate * durationMs / 1000).
func outputSize(rate int, durationMs float64) float64 {
	return math.Floor(float64(rate) * durationMs / 1000)
}

func resampleChannel(src []int, ratio float64, size int) []int {
	if len(src) == 0 {
		return nil
	}

	dst := make([]int, size)
	last := len(src) - 1
	index := 0.0

	for i := range dst {
		index += ratio
		j := int(math.Floor(index)) - 1
		dst[i] = src[max(0, min(j, last))]
	}

	return dst
}
