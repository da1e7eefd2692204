package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for chisel configuration.
const envPrefix = "CHISEL"

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind specific environment variables
	_ = v.BindEnv("scope", "CHISEL_SCOPE")
	_ = v.BindEnv("packagesDir", "CHISEL_PACKAGES_DIR")
	_ = v.BindEnv("initialVersion", "CHISEL_INITIAL_VERSION")
	_ = v.BindEnv("license", "CHISEL_LICENSE")
	_ = v.BindEnv("repoUrl", "CHISEL_REPO_URL")
	_ = v.BindEnv("defaultBranch", "CHISEL_DEFAULT_BRANCH")

	return &Loader{v: v}
}

// Load loads configuration for the given workspace root.
// A missing config file is not an error; defaults and environment
// variables still apply. Environment variables take precedence over
// file values.
func (l *Loader) Load(workspaceRoot string) (*Config, error) {
	configFile := filepath.Join(workspaceRoot, ConfigFileName)

	l.v.SetConfigFile(configFile)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
		// Config file not found is OK, we'll use defaults + env vars
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg.WithDefaults(), nil
}
