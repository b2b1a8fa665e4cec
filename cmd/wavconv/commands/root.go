// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ik5/wavconv"
	"github.com/ik5/wavconv/audio"
	"github.com/ik5/wavconv/cmd/wavconv/internal/config"
	"github.com/ik5/wavconv/cmd/wavconv/internal/logging"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	configPath string
	verbose    bool

	cfg *config.Config
	log *zap.Logger
	reg *audio.Registry
}

// Execute runs the wavconv command line.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the wavconv command tree.
func NewRootCommand() *cobra.Command {
	a := &app{reg: wavconv.DefaultRegistry()}

	root := &cobra.Command{
		Use:   "wavconv",
		Short: "Inspect and convert WAV audio",
		Long: `wavconv - inspect audio files and convert them to PCM WAV.

Input formats: wav, mp3, ogg (vorbis), aiff.
Output is always a RIFF/WAVE PCM file at 8, 16, 24 or 32 bits.

Configuration is read from ~/.wavconv/config.yaml unless --config is set.
Named profiles hold conversion targets:

Examples:
  wavconv info speech.wav
  wavconv convert speech.wav --rate 8000 --mono --bits 8 -o phone.wav
  wavconv config add-profile phone --rate 8000 --mono --bits 8
  wavconv config use-profile phone
  wavconv convert speech.mp3`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/.wavconv/config.yaml)")

	root.AddCommand(
		newInfoCommand(a),
		newConvertCommand(a),
		newConfigCommand(a),
	)

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("config not available: %w", err)
	}
	a.cfg = cfg

	opts := cfg.LogOptions()
	if a.verbose {
		opts.Level = "debug"
	}

	log, err := logging.New(opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.log = log

	a.log.Debug("config loaded", zap.String("path", cfg.Path()))

	return nil
}
