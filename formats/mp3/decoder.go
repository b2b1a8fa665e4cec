// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/wavconv/audio"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// go-mp3 always produces 16-bit little-endian stereo.
const (
	bitDepth = 16
	channels = 2
)

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Samples, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return decode(dec)
}

func decode(dec mp3Reader) (*audio.Samples, error) {
	pcm, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s, err := audio.DecodePCM(pcm, bitDepth, channels, false)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.SampleRate = dec.SampleRate()
	if s.SampleRate > 0 {
		s.DurationMs = 1000 * float64(s.Frames()) / float64(s.SampleRate)
	}

	return s, nil
}
