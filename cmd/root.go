package cmd

import (
	"errors"
	"os"

	"rnpmrc-cli/internal/config"
	"rnpmrc-cli/internal/editor"
	"rnpmrc-cli/internal/profile"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rnpmrc",
	Short: "A simple tool to manage multiple .npmrc files",
	Long: `A simple tool to manage multiple .npmrc files.

Profiles live in ~/.rnpmrc as .npmrc.<name> files. Activating a profile
symlinks ~/.npmrc at it; the symlink target is the only record of which
profile is active.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return errors.New("no subcommand was used")
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// getStore resolves the home-relative paths, makes sure the config dir
// exists, and builds the profile store every command operates through.
func getStore() (*profile.Store, config.Paths, error) {
	paths, err := config.ResolvePaths()
	if err != nil {
		return nil, config.Paths{}, err
	}
	if err := paths.EnsureConfigDir(); err != nil {
		return nil, config.Paths{}, err
	}
	return profile.NewStore(paths, editor.ExecRunner{}), paths, nil
}
