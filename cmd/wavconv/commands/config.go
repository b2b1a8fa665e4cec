// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/ik5/wavconv/cmd/wavconv/internal/config"
)

func newConfigCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long: `Manage conversion profiles and settings.

A profile is a named conversion target. Fields left out of a profile keep
the value of the source file.

Examples:
  wavconv config show
  wavconv config add-profile phone --rate 8000 --mono --bits 8
  wavconv config use-profile phone
  wavconv config list-profiles`,
	}

	cmd.AddCommand(
		newConfigShowCommand(a),
		newConfigListProfilesCommand(a),
		newConfigAddProfileCommand(a),
		newConfigUseProfileCommand(a),
	)

	return cmd
}

func newConfigShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(a.cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n", a.cfg.Path())
			_, err = out.Write(data)
			return err
		},
	}
}

func newConfigListProfilesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list-profiles",
		Aliases: []string{"ls"},
		Short:   "List all profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			names := a.cfg.ProfileNames()
			if len(names) == 0 {
				fmt.Fprintln(out, "No profiles configured.")
				fmt.Fprintln(out, "Create one with: wavconv config add-profile <name>")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CURRENT\tNAME\tBITS\tCHANNELS\tRATE")

			for _, name := range names {
				current := ""
				if name == a.cfg.CurrentProfile {
					current = "*"
				}

				p := a.cfg.Profiles[name]
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					current, name, orSource(p.Bits), channelsOf(p), orSource(p.SampleRate))
			}

			return w.Flush()
		},
	}
}

func newConfigAddProfileCommand(a *app) *cobra.Command {
	var flags targetFlags

	cmd := &cobra.Command{
		Use:   "add-profile <name>",
		Short: "Create or replace a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			if err := a.cfg.AddProfile(name, flags.profile(cmd)); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Profile %q saved.\n", name)
			return nil
		},
	}

	flags.bind(cmd)

	return cmd
}

func newConfigUseProfileCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "use-profile <name>",
		Short: "Set the current profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			if err := a.cfg.UseProfile(name); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Switched to profile %q.\n", name)
			return nil
		},
	}
}

func orSource(v int) string {
	if v == 0 {
		return "source"
	}

	return fmt.Sprint(v)
}

func channelsOf(p *config.Profile) string {
	switch {
	case p.Stereo == nil:
		return "source"
	case *p.Stereo:
		return "stereo"
	default:
		return "mono"
	}
}
