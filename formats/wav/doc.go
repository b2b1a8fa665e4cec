// SPDX-License-Identifier: EPL-2.0

// Package wav reads, converts and writes RIFF/WAVE files held in memory.
//
// # Supported Formats
//
// Reading:
//   - linear PCM (format tag 1) at 8, 16, 24 or 32 bits
//   - IEEE float (format tag 3) at 32 bits
//   - mono and stereo, any sample rate
//
// Writing is linear PCM only, at 8, 16, 24 or 32 bits.
//
// # Parsing
//
// Parse scans the RIFF chunks for the first fmt chunk and the first data
// chunk after it. Every other chunk is skipped by its declared length.
//
//	w, err := wav.Parse(buf)
//	if err != nil {
//	    // wav.ErrNotAWaveFile
//	}
//	fmt.Println(w.Format, w.Duration())
//
// The returned Wave keeps a view of the sample bytes; it does not copy buf.
//
// # Decoding
//
// Decode splits the sample bytes into signed per-channel samples:
//
//	s, err := wav.Decode(w)
//	if errors.Is(err, wav.ErrUnsupportedFormat) {
//	    // e.g. ADPCM or 16-bit float
//	}
//
// Decoder wraps DecodeBytes as an audio.Decoder for use with a registry.
//
// # Converting
//
// Convert decodes, transforms and re-encodes in one call:
//
//	out, err := wav.ConvertBytes(w, audio.Target{BitDepth: 16, SampleRate: 8000})
//
// Stereo input converted to mono keeps the left channel. Resampling picks the
// nearest earlier sample and does not filter.
//
// # Writing
//
// Encode returns a utils.ByteWriter holding the complete file; Write streams
// the same bytes to an io.Writer.
//
//	n, err := wav.Write(file, s)
//
// # File Format
//
// Encoded files consist of:
//   - RIFF header (12 bytes)
//   - fmt chunk (24 bytes): format tag 1, channels, sample rate, byte rate,
//     block align, bit depth
//   - data chunk: interleaved little-endian samples
package wav
