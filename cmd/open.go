package cmd

import (
	"fmt"

	"rnpmrc-cli/internal/config"

	"github.com/spf13/cobra"
)

var openEditor string

var openCmd = &cobra.Command{
	Use:   "open [profile]",
	Short: "Opens a profile in an editor",
	Long: `Opens a profile in an editor and blocks until the editor exits.

The editor defaults to the "editor" key in ~/.rnpmrc/config.yaml, then the
RNPMRC_EDITOR environment variable, then vi.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		store, paths, err := getStore()
		if err != nil {
			return err
		}

		editorCmd := openEditor
		if editorCmd == "" {
			settings, err := config.LoadSettings(paths)
			if err != nil {
				return err
			}
			editorCmd = settings.Editor
		}

		if err := store.Open(name, editorCmd); err != nil {
			return fmt.Errorf("failed to open profile '%s': %w", name, err)
		}
		return nil
	},
}

func init() {
	openCmd.Flags().StringVarP(&openEditor, "editor", "e", "", "Editor to open file")
	rootCmd.AddCommand(openCmd)
}
