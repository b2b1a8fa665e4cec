// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/wavconv/audio"
	"github.com/ik5/wavconv/utils"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// Vorbis decodes to floats, which are scaled into 32-bit samples.
const bitDepth = 32

const framesPerRead = 4096

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Samples, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return decode(dec)
}

func decode(dec oggReader) (*audio.Samples, error) {
	channels := dec.Channels()
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("%w: %d channels", audio.ErrUnsupportedFormat, channels)
	}

	// Read returns a count of interleaved values, always whole frames.
	buf := make([]float32, framesPerRead*channels)
	var data []int

	for {
		n, err := dec.Read(buf)
		for _, v := range buf[:n] {
			data = append(data, int(utils.Float32ToInt32(v)))
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	s, err := audio.FromIntBuffer(&goaudio.IntBuffer{
		Format: &goaudio.Format{NumChannels: channels, SampleRate: dec.SampleRate()},
		Data:   data,
	}, bitDepth)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return s, nil
}
