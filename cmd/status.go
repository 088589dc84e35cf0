package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Shows current active profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := getStore()
		if err != nil {
			return err
		}
		if name, ok := store.Active(); ok {
			fmt.Printf("'%s' is active\n", name)
		} else {
			fmt.Println("No active profile")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
