// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"github.com/spf13/cobra"

	"github.com/ik5/wavconv/audio"
	"github.com/ik5/wavconv/cmd/wavconv/internal/config"
)

// targetFlags are the conversion flags shared by convert and add-profile.
// Only flags set on the command line take effect.
type targetFlags struct {
	bits   int
	stereo bool
	mono   bool
	rate   int
}

func (f *targetFlags) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.bits, "bits", 0, "output bit depth: 8, 16, 24 or 32")
	cmd.Flags().BoolVar(&f.stereo, "stereo", false, "two output channels")
	cmd.Flags().BoolVar(&f.mono, "mono", false, "one output channel")
	cmd.Flags().IntVar(&f.rate, "rate", 0, "output sample rate in Hz")
	cmd.MarkFlagsMutuallyExclusive("stereo", "mono")
}

// profile returns the flags set on cmd as a profile.
func (f *targetFlags) profile(cmd *cobra.Command) *config.Profile {
	p := &config.Profile{}

	if cmd.Flags().Changed("bits") {
		p.Bits = f.bits
	}
	if cmd.Flags().Changed("rate") {
		p.SampleRate = f.rate
	}

	switch {
	case cmd.Flags().Changed("stereo"):
		stereo := f.stereo
		p.Stereo = &stereo
	case cmd.Flags().Changed("mono"):
		stereo := !f.mono
		p.Stereo = &stereo
	}

	return p
}

// resolve builds the target from the source format, then the profile, then
// the flags set on cmd.
func (f *targetFlags) resolve(cmd *cobra.Command, src *audio.Samples, p *config.Profile) audio.Target {
	t := audio.Target{
		BitDepth:   src.BitDepth,
		Stereo:     src.Channels() == 2,
		SampleRate: src.SampleRate,
	}

	t = p.Apply(t)

	return f.profile(cmd).Apply(t)
}
