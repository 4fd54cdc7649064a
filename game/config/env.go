package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// DefaultDir is the profile directory used when none is configured.
const DefaultDir = "configs"

// Environment holds the settings read from SLIDE2048_* variables. Command
// line flags take precedence over these values.
type Environment struct {
	ConfigDir string `env:"SLIDE2048_CONFIG_DIR" envDefault:"configs"`
	Profile   string `env:"SLIDE2048_PROFILE"    envDefault:"classic"`
	Seed      int64  `env:"SLIDE2048_SEED"`
	Debug     bool   `env:"SLIDE2048_DEBUG"`
}

// LoadEnvironment parses the process environment.
func LoadEnvironment() (Environment, error) {
	var cfg Environment
	if err := env.Parse(&cfg); err != nil {
		return Environment{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ResolveDir returns the directory a Manager should read. A missing
// DefaultDir resolves to "" so the built-in profile is served; any other
// directory is returned unchanged and checked by NewManager.
func ResolveDir(dir string) string {
	if dir != DefaultDir {
		return dir
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return ""
	}
	return dir
}
