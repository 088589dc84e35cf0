package cmd

import (
	"fmt"
	"os"
	"strings"

	"rnpmrc-cli/internal/config"
	"rnpmrc-cli/internal/profile"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive profile menu",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, paths, err := getStore()
		if err != nil {
			return err
		}
		return runMenu(store, paths)
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(store *profile.Store, paths config.Paths) error {
	for {
		active, ok := store.Active()
		if !ok {
			active = "None"
		}
		fmt.Printf("\nActive profile: %s\n\n", active)

		prompt := promptui.Select{
			Label: "Main Menu",
			Items: []string{"Select Profile", "Create New Profile", "Exit"},
			Templates: &promptui.SelectTemplates{
				Active:   "-> {{ . | cyan }}",
				Inactive: "   {{ . }}",
				Selected: "-> {{ . | cyan }}",
			},
			HideSelected: true,
			Stdout:       &bellSkipper{},
		}

		_, result, err := prompt.Run()
		if err != nil {
			if err == promptui.ErrInterrupt {
				return nil
			}
			return err
		}

		switch result {
		case "Select Profile":
			if err := menuSelectProfile(store, paths); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		case "Create New Profile":
			if err := menuCreateProfile(store); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
		case "Exit":
			return nil
		}
	}
}

func menuSelectProfile(store *profile.Store, paths config.Paths) error {
	names, err := store.List()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Println("No profiles found.")
		return nil
	}

	items := append(names, "Back")
	prompt := promptui.Select{
		Label:  "Select Profile",
		Items:  items,
		Size:   10,
		Stdout: &bellSkipper{},
	}

	_, result, err := prompt.Run()
	if err != nil || result == "Back" {
		return nil
	}

	// List returns file names; the store operates on profile names.
	name := strings.TrimPrefix(result, config.ProfilePrefix)
	return menuProfileActions(store, paths, name)
}

func menuProfileActions(store *profile.Store, paths config.Paths, name string) error {
	prompt := promptui.Select{
		Label:  "Action",
		Items:  []string{"Activate", "Open", "Remove", "Back"},
		Stdout: &bellSkipper{},
	}

	_, result, err := prompt.Run()
	if err != nil {
		return nil
	}

	switch result {
	case "Activate":
		if err := store.Activate(name); err != nil {
			return err
		}
		fmt.Printf("Profile '%s' activated.\n", name)
	case "Open":
		settings, err := config.LoadSettings(paths)
		if err != nil {
			return err
		}
		return store.Open(name, settings.Editor)
	case "Remove":
		confirm := promptui.Prompt{
			Label:     fmt.Sprintf("Delete profile '%s'", name),
			IsConfirm: true,
		}
		if _, err := confirm.Run(); err != nil {
			return nil
		}
		if err := store.Remove(name); err != nil {
			return err
		}
		fmt.Printf("Profile '%s' removed.\n", name)
	case "Back":
	}
	return nil
}

func menuCreateProfile(store *profile.Store) error {
	prompt := promptui.Prompt{
		Label: "Profile Name",
		Validate: func(input string) error {
			if len(input) == 0 {
				return fmt.Errorf("name cannot be empty")
			}
			if strings.ContainsAny(input, "/\\") {
				return fmt.Errorf("name cannot contain path separators")
			}
			return nil
		},
	}
	name, err := prompt.Run()
	if err != nil {
		return nil
	}
	if err := store.Create(name); err != nil {
		return err
	}
	fmt.Printf("Profile '%s' created.\n", name)
	return nil
}

// bellSkipper is an io.WriteCloser that drops the bell character promptui
// emits on every keystroke.
type bellSkipper struct{}

func (bs *bellSkipper) Write(b []byte) (int, error) {
	const bell = 7
	var filtered []byte
	for _, c := range b {
		if c != bell {
			filtered = append(filtered, c)
		}
	}
	_, err := os.Stdout.Write(filtered)
	return len(b), err
}

func (bs *bellSkipper) Close() error {
	return nil
}
