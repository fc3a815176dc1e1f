// SPDX-License-Identifier: MPL-2.0

// Package config loads and structurally validates the loader configuration
// tree consumed by the scan and validate commands.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name, used for the config directory.
	AppName = "loadstone"
	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the loadstone configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, Linux and others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
func ConfigDir() (string, error) {
	var dir string

	switch runtime.GOOS {
	case "windows":
		dir = os.Getenv("APPDATA")
		if dir == "" {
			dir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, "Library", "Application Support")
	default:
		dir = os.Getenv("XDG_CONFIG_HOME")
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			dir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(dir, AppName), nil
}

// Load reads the configuration at path, or the platform default location
// when path is empty. A missing default file is not an error: defaults are
// returned. The file is structurally validated against the embedded CUE
// schema before decoding.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("bootloader.timeout", defaults.Bootloader.Timeout)
	v.SetDefault("bootloader.picker", string(defaults.Bootloader.Picker))
	v.SetDefault("bootloader.hide_auxiliary", defaults.Bootloader.HideAuxiliary)
	v.SetDefault("scan.apple", defaults.Scan.Apple)

	if path == "" {
		dir, err := ConfigDir()
		if err != nil {
			return nil, err
		}
		candidate := filepath.Join(dir, ConfigFileName+".yaml")
		if _, err := os.Stat(candidate); err != nil {
			// No config file; run on defaults.
			var cfg Config
			if err := v.Unmarshal(&cfg); err != nil {
				return nil, fmt.Errorf("failed to parse defaults: %w", err)
			}
			return &cfg, nil
		}
		path = candidate
	}

	if err := loadValidatedIntoViper(v, path); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// loadValidatedIntoViper reads a YAML config file, validates it against the
// #Config CUE schema, and merges the result into viper.
func loadValidatedIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	sub := viper.New()
	sub.SetConfigType("yaml")
	if err := sub.ReadConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	tree := sub.AllSettings()

	userValue := ctx.Encode(tree)
	if userValue.Err() != nil {
		return fmt.Errorf("%s: %w", path, userValue.Err())
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if err := v.MergeConfigMap(tree); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
