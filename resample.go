// SPDX-License-Identifier: EPL-2.0

package wavconv

import (
	"github.com/ik5/wavconv/audio"
)

// ResampleToMono16 converts samples to mono 16-bit PCM at targetRate and
// returns them with the output rate.
//
// It runs audio.Transform, so the stereo case keeps the left channel and the
// rate change uses nearest-neighbour selection. s is modified in place.
//
// Example:
//
//	s, _ := wav.DecodeBytes(data)
//	pcm16, rate, err := wavconv.ResampleToMono16(s, 8000)
//	if err != nil {
//	    return err
//	}
//	// pcm16 now contains mono 16-bit PCM at 8kHz
func ResampleToMono16(s *audio.Samples, targetRate int) ([]int16, int, error) {
	err := audio.Transform(s, audio.Target{BitDepth: 16, SampleRate: targetRate})
	if err != nil {
		return nil, targetRate, err
	}

	pcm16 := make([]int16, len(s.Left))
	for i, v := range s.Left {
		pcm16[i] = int16(v)
	}

	return pcm16, targetRate, nil
}
