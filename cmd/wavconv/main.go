// SPDX-License-Identifier: EPL-2.0

// Command wavconv inspects audio files and converts them to PCM WAV.
//
// Usage:
//
//	wavconv [flags] <command> [args]
//
// Commands:
//
//	info     - Show format, duration and bitrate
//	convert  - Convert to PCM WAV at a chosen bit depth, channel count and rate
//	config   - Manage conversion profiles
package main

import (
	"fmt"
	"os"

	"github.com/ik5/wavconv/cmd/wavconv/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
