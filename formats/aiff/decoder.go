// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/wavconv/audio"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

const framesPerRead = 4096

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Samples, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	return decode(dec, int(dec.BitDepth))
}

func decode(dec aiffReader, bitDepth int) (*audio.Samples, error) {
	if !audio.ValidBitDepth(bitDepth) {
		return nil, fmt.Errorf("%w: %d-bit AIFF", audio.ErrUnsupportedFormat, bitDepth)
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	all := &goaudio.IntBuffer{Format: format, SourceBitDepth: bitDepth}
	chunk := &goaudio.IntBuffer{Format: format, Data: make([]int, framesPerRead*max(format.NumChannels, 1))}

	for {
		n, err := dec.PCMBuffer(chunk)
		all.Data = append(all.Data, chunk.Data[:n]...)

		if errors.Is(err, io.EOF) || (err == nil && n == 0) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	s, err := audio.FromIntBuffer(all, bitDepth)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return s, nil
}
