// SPDX-License-Identifier: EPL-2.0

package wavconv_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ik5/wavconv"
	"github.com/ik5/wavconv/audio"
	"github.com/ik5/wavconv/formats/wav"
)

// speech returns a WAV file with one second of 16 kHz mono 16-bit audio.
func speech() []byte {
	s := &audio.Samples{Left: make([]int, 16000), BitDepth: 16, SampleRate: 16000}
	for i := range s.Left {
		s.Left[i] = (i % 200) * 100
	}

	w, _ := wav.Encode(s)

	return w.Bytes()
}

// Example_basicUsage probes a file and converts it for telephony playback.
func Example_basicUsage() {
	data := speech()

	info, err := wavconv.Probe(data)
	if err != nil {
		fmt.Println("probe error:", err)
		return
	}
	fmt.Printf("Input: %s, %.0f ms\n", info.Format, info.DurationMs)

	out, err := wavconv.Convert(data, audio.Target{BitDepth: 8, SampleRate: 8000})
	if err != nil {
		fmt.Println("convert error:", err)
		return
	}

	info, _ = wavconv.Probe(out)
	fmt.Printf("Output: %s, %.0f ms, %d bytes\n", info.Format, info.DurationMs, len(out))
	// Output:
	// Input: PCM, 1 ch, 16000 Hz, 16-bit, 1000 ms
	// Output: PCM, 1 ch, 8000 Hz, 8-bit, 1000 ms, 8044 bytes
}

// Example_resampleToMono16 collects 16-bit mono samples at a new rate.
func Example_resampleToMono16() {
	s, err := wav.DecodeBytes(speech())
	if err != nil {
		fmt.Println("decode error:", err)
		return
	}

	pcm16, rate, err := wavconv.ResampleToMono16(s, 8000)
	if err != nil {
		fmt.Println("resample error:", err)
		return
	}

	fmt.Printf("Processed %d samples at %d Hz\n", len(pcm16), rate)
	// Output: Processed 8000 samples at 8000 Hz
}

// Example_multipleFormats lists the formats ConvertFrom accepts by default.
func Example_multipleFormats() {
	reg := wavconv.DefaultRegistry()
	fmt.Println(reg.Formats())

	out, err := wavconv.ConvertFrom(reg, wavconv.FormatOf("speech.WAV"), bytes.NewReader(speech()),
		audio.Target{BitDepth: 16, Stereo: true, SampleRate: 16000})
	if err != nil {
		fmt.Println("convert error:", err)
		return
	}
	fmt.Println("Output bytes:", len(out))
	// Output:
	// [aif aiff mp3 ogg wav]
	// Output bytes: 64044
}

// Example_errorHandling distinguishes the two failure kinds.
func Example_errorHandling() {
	_, err := wavconv.Convert([]byte("RIFF\x04\x00\x00\x00WAVE"), audio.Target{BitDepth: 16, SampleRate: 8000})
	fmt.Println("not a wave file:", errors.Is(err, wav.ErrNotAWaveFile))

	_, err = wavconv.Convert(speech(), audio.Target{BitDepth: 12, SampleRate: 8000})
	fmt.Println("unsupported format:", errors.Is(err, wav.ErrUnsupportedFormat))
	// Output:
	// not a wave file: true
	// unsupported format: true
}
