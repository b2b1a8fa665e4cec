// SPDX-License-Identifier: EPL-2.0

package wavconv

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ik5/wavconv/audio"
	"github.com/ik5/wavconv/formats/aiff"
	"github.com/ik5/wavconv/formats/mp3"
	"github.com/ik5/wavconv/formats/vorbis"
	"github.com/ik5/wavconv/formats/wav"
)

// DefaultRegistry returns a registry with every built-in decoder, keyed by
// file extension without the dot.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

// FormatOf returns the registry key for a file name: its lower-cased
// extension without the dot.
func FormatOf(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// Probe parses a WAV file and reports its format, duration and bitrate.
func Probe(data []byte) (*wav.Wave, error) {
	return wav.Parse(data)
}

// Convert converts a WAV file to the target format and returns the new file.
func Convert(data []byte, t audio.Target) ([]byte, error) {
	w, err := wav.Parse(data)
	if err != nil {
		return nil, err
	}

	return wav.ConvertBytes(w, t)
}

// ConvertFrom decodes r with the decoder registered for format in reg and
// renders it as a WAV file in the target format.
func ConvertFrom(reg *audio.Registry, format string, r io.Reader, t audio.Target) ([]byte, error) {
	dec, ok := reg.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	s, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", format, err)
	}

	out, err := wav.Process(s, t)
	if err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
