// SPDX-License-Identifier: EPL-2.0

package audio

import "slices"

// SetStereo applies the channel policy. Mono becomes stereo by copying the
// left channel into the right one. Stereo becomes mono by dropping the right
// channel; the channels are not mixed.
func (s *Samples) SetStereo(stereo bool) {
	if !stereo {
		s.Right = nil
		return
	}

	if len(s.Right) == 0 {
		s.Right = slices.Clone(s.Left)
	}
}
