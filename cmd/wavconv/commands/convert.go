// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ik5/wavconv"
	"github.com/ik5/wavconv/formats/wav"
)

func newConvertCommand(a *app) *cobra.Command {
	var (
		output  string
		profile string
		flags   targetFlags
	)

	cmd := &cobra.Command{
		Use:   "convert <input>",
		Short: "Convert an audio file to PCM WAV",
		Long: `Convert an audio file to PCM WAV.

The output keeps the source bit depth, channel count and sample rate unless
a profile or a flag overrides them. Flags win over the profile. Without
--profile the current profile from the config file is used, if any.

Without -o the file is written to the configured output_dir, or the system
temp directory, as wavconv-<uuid>.wav.

Examples:
  wavconv convert in.wav --rate 16000 --mono
  wavconv convert in.mp3 --profile phone -o out.wav`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]

			p, err := a.cfg.Profile(profile)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(input)
			if err != nil {
				return err
			}

			format := wavconv.FormatOf(input)
			dec, ok := a.reg.Get(format)
			if !ok {
				return fmt.Errorf("%w: %q", wavconv.ErrUnknownFormat, format)
			}

			s, err := dec.Decode(bytes.NewReader(data))
			if err != nil {
				return fmt.Errorf("decoding %s: %w", format, err)
			}

			target := flags.resolve(cmd, s, p)
			a.log.Debug("converting",
				zap.String("input", input),
				zap.String("format", format),
				zap.Int("bits", target.BitDepth),
				zap.Bool("stereo", target.Stereo),
				zap.Int("sample_rate", target.SampleRate),
			)

			out, err := wav.Process(s, target)
			if err != nil {
				a.log.Error("conversion failed", zap.String("input", input), zap.Error(err))
				return err
			}

			if output == "" {
				output = a.defaultOutput()
			}

			if err := writeFile(output, out); err != nil {
				return err
			}

			w, err := wav.Parse(out.Bytes())
			if err != nil {
				return err
			}

			a.log.Info("converted",
				zap.String("input", input),
				zap.String("output", output),
				zap.Int("bytes", out.Len()),
				zap.Float64("duration_ms", w.DurationMs),
			)

			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.0f\n", output, w.DurationMs)

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	cmd.Flags().StringVarP(&profile, "profile", "p", "", "conversion profile from the config file")
	flags.bind(cmd)

	return cmd
}

func (a *app) defaultOutput() string {
	dir := a.cfg.OutputDir
	if dir == "" {
		dir = os.TempDir()
	}

	return filepath.Join(dir, "wavconv-"+uuid.NewString()+".wav")
}

func writeFile(path string, src io.WriterTo) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := src.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return f.Close()
}
