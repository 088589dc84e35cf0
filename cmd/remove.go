package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove [profile]",
	Short: "Removes profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		store, _, err := getStore()
		if err != nil {
			return err
		}
		if err := store.Remove(name); err != nil {
			return fmt.Errorf("failed to remove profile '%s': %w", name, err)
		}
		fmt.Printf("Profile '%s' removed.\n", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
