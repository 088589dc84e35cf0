package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var activateCmd = &cobra.Command{
	Use:   "activate [profile]",
	Short: "Activate profile",
	Long:  `Activate profile by symlinking ~/.npmrc at its file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		store, _, err := getStore()
		if err != nil {
			return err
		}
		if err := store.Activate(name); err != nil {
			return fmt.Errorf("failed to activate profile '%s': %w", name, err)
		}
		fmt.Printf("Profile '%s' activated.\n", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(activateCmd)
}
