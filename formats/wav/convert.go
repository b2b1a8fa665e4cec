// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"github.com/ik5/wavconv/audio"
	"github.com/ik5/wavconv/utils"
)

// Convert decodes a parsed file, transforms it to the target format and
// encodes it. Use the writer's Len or Bytes, not its capacity.
func Convert(w *Wave, t audio.Target) (*utils.ByteWriter, error) {
	s, err := Decode(w)
	if err != nil {
		return nil, err
	}

	return Process(s, t)
}

// ConvertBytes is Convert returning only the bytes written.
func ConvertBytes(w *Wave, t audio.Target) ([]byte, error) {
	out, err := Convert(w, t)
	if err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// Process transforms already decoded samples in place and encodes them.
func Process(s *audio.Samples, t audio.Target) (*utils.ByteWriter, error) {
	if err := audio.Transform(s, t); err != nil {
		return nil, err
	}

	return Encode(s)
}
