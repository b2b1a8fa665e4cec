// SPDX-License-Identifier: EPL-2.0

// Package vorbis imports Ogg Vorbis audio as audio.Samples.
//
// This package uses github.com/jfreymuth/oggvorbis for decoding. Vorbis
// decodes to floats in [-1, 1]; they are scaled into signed 32-bit samples
// the same way 32-bit IEEE float WAV data is.
//
// # Decoding
//
//	file, _ := os.Open("audio.ogg")
//	s, err := vorbis.Decoder{}.Decode(file)
//
// Mono and stereo streams are supported. Other channel layouts fail with
// audio.ErrUnsupportedFormat.
//
// Ogg Vorbis writing is not supported.
package vorbis
