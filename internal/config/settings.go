package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultEditor is used when neither the config file nor the environment
// names one.
const DefaultEditor = "vi"

// Settings are the user-tunable knobs, read from an optional config.yaml in
// the config dir and from RNPMRC_* environment variables.
type Settings struct {
	Editor string
}

// LoadSettings reads settings for the given paths. A missing config file is
// not an error; defaults apply.
func LoadSettings(p Paths) (Settings, error) {
	v := viper.New()
	v.SetConfigFile(filepath.Join(p.ConfigDir, "config.yaml"))
	v.SetConfigType("yaml")
	v.SetEnvPrefix("rnpmrc")
	v.AutomaticEnv()
	v.SetDefault("editor", DefaultEditor)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return Settings{
		Editor: v.GetString("editor"),
	}, nil
}
