// Package config provides configuration loading for the chisel CLI.
package config

// ConfigFileName is the optional per-workspace config file, resolved
// relative to the workspace root.
const ConfigFileName = ".chiselrc.yaml"

// Config represents the chisel CLI configuration.
//
// Defaults target the ganache monorepo; a workspace config file or
// CHISEL_* environment variables override them.
type Config struct {
	// Scope is the registry scope new packages are published under,
	// without the leading "@". Env: CHISEL_SCOPE.
	Scope string `mapstructure:"scope"`

	// PackagesDir is the workspace-relative directory that holds packages.
	// Env: CHISEL_PACKAGES_DIR.
	PackagesDir string `mapstructure:"packagesDir"`

	// InitialVersion is the semantic version stamped into new manifests.
	// Env: CHISEL_INITIAL_VERSION.
	InitialVersion string `mapstructure:"initialVersion"`

	// License is the SPDX license identifier for new packages.
	// Env: CHISEL_LICENSE.
	License string `mapstructure:"license"`

	// RepoURL is the canonical repository URL, used to derive the
	// homepage, repository, and bugs fields. Env: CHISEL_REPO_URL.
	RepoURL string `mapstructure:"repoUrl"`

	// DefaultBranch is the branch homepage links point at.
	// Env: CHISEL_DEFAULT_BRANCH.
	DefaultBranch string `mapstructure:"defaultBranch"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	return &Config{
		Scope:          "ganache",
		PackagesDir:    "packages",
		InitialVersion: "0.1.0",
		License:        "MIT",
		RepoURL:        "https://github.com/trufflesuite/ganache",
		DefaultBranch:  "develop",
	}
}

// WithDefaults fills any unset field from DefaultConfig.
func (c *Config) WithDefaults() *Config {
	def := DefaultConfig()
	if c.Scope == "" {
		c.Scope = def.Scope
	}
	if c.PackagesDir == "" {
		c.PackagesDir = def.PackagesDir
	}
	if c.InitialVersion == "" {
		c.InitialVersion = def.InitialVersion
	}
	if c.License == "" {
		c.License = def.License
	}
	if c.RepoURL == "" {
		c.RepoURL = def.RepoURL
	}
	if c.DefaultBranch == "" {
		c.DefaultBranch = def.DefaultBranch
	}
	return c
}
