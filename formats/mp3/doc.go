// SPDX-License-Identifier: EPL-2.0

// Package mp3 imports MP3 audio as audio.Samples.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
//
// # Decoding MP3 Files
//
//	file, _ := os.Open("audio.mp3")
//	s, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
// The whole stream is decoded into memory.
//
// # Output Format
//
//   - Bit depth: 16
//   - Channels: 2 (go-mp3 duplicates mono streams)
//   - Sample rate: that of the MP3 file
//
// # Converting to WAV
//
//	s, _ := mp3.Decoder{}.Decode(mp3File)
//	_ = audio.Transform(s, audio.Target{BitDepth: 16, SampleRate: 8000})
//	_, _ = wav.Write(wavFile, s)
//
// MP3 writing is not supported.
package mp3
