// SPDX-License-Identifier: EPL-2.0

// Package wavconv converts audio files to PCM WAV in memory.
//
// The core is a RIFF/WAVE codec: a WAV byte buffer is parsed, its samples
// are split into per-channel integer sequences, converted (channel count,
// sample rate, bit depth) and written back as a PCM WAV byte buffer.
//
// # Supported Formats
//
// Input:
//   - WAV: PCM 8/16/24/32-bit and 32-bit IEEE float, via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF via formats/aiff
//
// Output is PCM WAV at 8, 16, 24 or 32 bits, mono or stereo.
//
// # Quick Start
//
//	data, _ := os.ReadFile("speech.wav")
//
//	info, err := wavconv.Probe(data)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(info.DurationMs)
//
//	out, err := wavconv.Convert(data, audio.Target{BitDepth: 16, SampleRate: 8000})
//
// # Other Formats
//
// ConvertFrom looks the decoder up in a registry:
//
//	f, _ := os.Open("song.mp3")
//	out, err := wavconv.ConvertFrom(wavconv.DefaultRegistry(), "mp3", f, target)
//
// # Conversion Rules
//
//   - Mono to stereo duplicates the channel. Stereo to mono keeps the left
//     channel; channels are not mixed.
//   - Sample rate changes select the nearest earlier source sample. There is
//     no interpolation or low-pass filter.
//   - Bit depth changes shift samples; there is no dithering.
//
// These rules make output bit-exact for a given input and target.
//
// # Command Line
//
// cmd/wavconv wraps these functions in the wavconv command.
package wavconv
