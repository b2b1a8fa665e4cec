// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"time"

	"github.com/go-audio/riff"

	"github.com/ik5/wavconv/utils"
)

var (
	riffTag = string(riff.RiffID[:])
	waveTag = string(riff.WavFormatID[:])
	fmtTag  = string(riff.FmtID[:])
	dataTag = string(riff.DataFormatID[:])
)

// Wave is a parsed WAVE file. Data points into the buffer given to Parse and
// is valid as long as that buffer is.
type Wave struct {
	Format Format

	// Data is the sample payload of the data chunk.
	Data []byte
	// DataLen is the length declared by the data chunk. It can exceed
	// len(Data) for truncated files.
	DataLen uint32

	// DurationMs is 1000 * DataLen / AvgBytesPerSec, or 0 without a byte
	// rate.
	DurationMs float64
	// Bitrate is SampleRate * BitsPerSample * Channels.
	Bitrate int
}

// Duration returns DurationMs as a time.Duration.
func (w *Wave) Duration() time.Duration {
	return time.Duration(w.DurationMs * float64(time.Millisecond))
}

// Parse reads the RIFF header, the first fmt chunk and the first data chunk
// following it. Other chunks are skipped by their declared length.
func Parse(buf []byte) (*Wave, error) {
	c := utils.NewByteCursor(buf)

	if c.ReadASCII(4) != riffTag {
		return nil, fmt.Errorf("%w: missing RIFF header", ErrNotAWaveFile)
	}
	c.Skip(4)

	if c.ReadASCII(4) != waveTag {
		return nil, fmt.Errorf("%w: missing WAVE form type", ErrNotAWaveFile)
	}

	fmtLen, err := seekChunk(c, fmtTag)
	if err != nil {
		return nil, err
	}

	format := Format{
		Tag:            c.ReadLE16(),
		Channels:       int(c.ReadLE16()),
		SampleRate:     int(c.ReadLE32()),
		AvgBytesPerSec: int(c.ReadLE32()),
		BlockAlign:     int(c.ReadLE16()),
		BitsPerSample:  int(c.ReadLE16()),
	}
	c.Skip(int(fmtLen) - fmtChunkSize)

	dataLen, err := seekChunk(c, dataTag)
	if err != nil {
		return nil, err
	}

	w := &Wave{
		Format:  format,
		Data:    c.View(int(dataLen)),
		DataLen: dataLen,
		Bitrate: format.Bitrate(),
	}

	if format.AvgBytesPerSec > 0 {
		w.DurationMs = 1000 * float64(dataLen) / float64(format.AvgBytesPerSec)
	}

	return w, nil
}

// seekChunk advances c past the header of the next chunk tagged id and
// returns its declared length.
func seekChunk(c *utils.ByteCursor, id string) (uint32, error) {
	for !c.EOF() {
		tag := c.ReadASCII(4)
		size := c.ReadLE32()

		if tag == id {
			return size, nil
		}

		c.Skip(int(size))
	}

	return 0, fmt.Errorf("%w: no %q chunk", ErrNotAWaveFile, id)
}
