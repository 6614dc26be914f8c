// Package config loads application configuration: data location, storage
// backend selection, and debug logging. Values come from defaults, an
// optional config file, and PRESENTLY_* environment variables, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/presently-app/presently/internal/constants"
)

type Config struct {
	DataDir string `mapstructure:"data_dir"`
	Backend string `mapstructure:"backend"` // file | sqlite | postgres
	ConnStr string `mapstructure:"conn_str"`
	Debug   bool   `mapstructure:"debug"`
}

// Load reads the config file from the user config directory (if present)
// and applies environment overrides. A missing config file is not an error.
func Load() (Config, error) {
	v := viper.New()

	configDir, err := os.UserConfigDir()
	if err != nil {
		return Config{}, fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	appDir := filepath.Join(configDir, constants.AppName)

	v.SetDefault("data_dir", appDir)
	v.SetDefault("backend", constants.DefaultStorageBackend)
	v.SetDefault("conn_str", "")
	v.SetDefault("debug", false)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(appDir)

	v.SetEnvPrefix(strings.ToUpper(constants.AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
