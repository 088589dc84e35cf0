package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create [profile]",
	Short: "Creates new profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		store, _, err := getStore()
		if err != nil {
			return err
		}
		if err := store.Create(name); err != nil {
			return fmt.Errorf("failed to create profile '%s': %w", name, err)
		}
		fmt.Printf("Profile '%s' created.\n", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
}
