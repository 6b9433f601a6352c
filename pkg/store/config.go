package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the on-disk database.
type Config interface {
	BasePath() (string, error)
}

// LoadConfig reads the `.dayring` config file (current directory, or the
// directory named by DAYRING_CONFIG_PATH) plus DAYRING_* environment
// overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.dayring.db")
	viper.SetConfigName(".dayring") // .yaml is implicit
	viper.SetEnvPrefix("DAYRING")
	viper.AutomaticEnv()

	if override := os.Getenv("DAYRING_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	return &fileConfig{Path: viper.GetString("path")}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() (string, error) {
	expanded, err := homedir.Expand(f.Path)
	if err != nil {
		return "", fmt.Errorf("store: expand path %q: %w", f.Path, err)
	}
	return expanded, nil
}
