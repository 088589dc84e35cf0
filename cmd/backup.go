package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup [profile]",
	Short: "Creates a profile from the current .npmrc file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		store, _, err := getStore()
		if err != nil {
			return err
		}
		if err := store.Backup(name); err != nil {
			return fmt.Errorf("failed to back up into profile '%s': %w", name, err)
		}
		fmt.Printf("Profile '%s' created from current .npmrc.\n", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
}
