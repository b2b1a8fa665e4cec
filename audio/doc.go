// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory sample model and the conversion
// pipeline shared by the format packages.
//
// # Samples
//
// Decoded audio is held in a Samples value: one signed integer slice per
// channel, plus the bit depth, sample rate and source duration.
//
//	type Samples struct {
//	    Left, Right []int
//	    BitDepth    int
//	    SampleRate  int
//	    DurationMs  float64
//	}
//
// Right is empty for mono audio. Sample values use the signed range of the
// bit depth, so 8-bit audio spans -128..127 even though WAV stores it as
// offset binary.
//
// # PCM Packing
//
// DecodePCM turns a little-endian PCM payload into Samples and AppendPCM
// writes them back. ToSigned and ToUnsigned convert single words.
//
// # Conversion
//
// Transform converts samples to a Target in three fixed steps:
//
//	err := audio.Transform(s, audio.Target{BitDepth: 16, SampleRate: 8000})
//
//  1. SetStereo duplicates the left channel or drops the right one.
//  2. Resample picks the nearest earlier source sample for every output
//     sample. Nothing is interpolated or filtered.
//  3. SetBitDepth shifts samples to the new width.
//
// # Format Registry
//
// The registry maps format names to decoders producing Samples:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// # Interoperability
//
// IntBuffer and FromIntBuffer convert to and from go-audio buffers, which is
// how the AIFF importer and other go-audio based code exchange samples.
package audio
