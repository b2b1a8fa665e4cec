// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/riff"

	"github.com/ik5/wavconv/audio"
	"github.com/ik5/wavconv/utils"
)

const headerSize = 44

// Encode serializes the samples as a linear PCM file at their current bit
// depth and sample rate. The writer starts at utils.DefaultWriterCapacity.
func Encode(s *audio.Samples) (*utils.ByteWriter, error) {
	return EncodeWithCapacity(s, utils.DefaultWriterCapacity)
}

// EncodeWithCapacity is Encode with an explicit initial writer capacity,
// which is also the writer's growth step.
func EncodeWithCapacity(s *audio.Samples, capacity int) (*utils.ByteWriter, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	if s.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrUnsupportedFormat, s.SampleRate)
	}

	f := NewPCMFormat(s.Channels(), s.SampleRate, s.BitDepth)
	dataLen := s.Frames() * f.BlockAlign

	w := utils.NewByteWriter(capacity)

	w.Append(riff.RiffID[:])
	w.WriteLE32(uint32(headerSize - 8 + dataLen))
	w.Append(riff.WavFormatID[:])

	w.Append(riff.FmtID[:])
	w.WriteLE32(fmtChunkSize)
	w.WriteLE16(f.Tag)
	w.WriteLE16(uint16(f.Channels))
	w.WriteLE32(uint32(f.SampleRate))
	w.WriteLE32(uint32(f.AvgBytesPerSec))
	w.WriteLE16(uint16(f.BlockAlign))
	w.WriteLE16(uint16(f.BitsPerSample))

	w.Append(riff.DataFormatID[:])
	w.WriteLE32(uint32(dataLen))
	audio.AppendPCM(w, s)

	return w, nil
}

// Write encodes the samples and writes the file to dst.
func Write(dst io.Writer, s *audio.Samples) (int64, error) {
	w, err := EncodeWithCapacity(s, headerSize+s.Frames()*s.Channels()*s.BitDepth/8)
	if err != nil {
		return 0, err
	}

	n, err := w.WriteTo(dst)
	if err != nil {
		return n, fmt.Errorf("%w", err)
	}

	return n, nil
}
