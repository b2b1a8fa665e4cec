// SPDX-License-Identifier: EPL-2.0

// Package aiff imports AIFF (Audio Interchange File Format) audio as
// audio.Samples.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
//
// # Supported Formats
//
//   - 8, 16, 24 and 32-bit PCM
//   - Mono and stereo
//   - Any sample rate
//
// # Decoding AIFF Files
//
//	file, _ := os.Open("audio.aif")
//	s, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // Handle error
//	}
//
// go-audio needs an io.ReadSeeker. Other readers are read into memory first.
//
// Samples keep the bit depth of the file, so writing them with wav.Write
// produces a WAV of the same format.
package aiff
