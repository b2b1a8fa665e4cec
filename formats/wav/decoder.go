// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/ik5/wavconv/audio"
)

// Decoder reads a whole WAVE stream into memory and decodes it. It
// implements audio.Decoder.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Samples, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return DecodeBytes(buf)
}
