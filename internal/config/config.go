// Package config holds the settings the declaration checkers consult:
// the target language version and the set of suppressed diagnostic codes.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quill-lang/quill/internal/diag"
)

// maxConfigFileSize caps config files to keep accidental large inputs from
// being slurped into memory.
const maxConfigFileSize = 1 << 20

// Config configures one checking pass.
type Config struct {
	// LanguageVersion selects version-gated behavior, such as the
	// prohibition of non-inner classes nested in enum entries.
	LanguageVersion Version `yaml:"languageVersion"`

	// Disabled lists diagnostic codes to suppress.
	Disabled []diag.Code `yaml:"disabled"`
}

// Default returns the configuration for the current language version with
// nothing suppressed.
func Default() Config {
	return Config{LanguageVersion: CurrentVersion}
}

// Load reads a YAML config file. Missing fields keep their defaults.
func Load(path string) (Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("stat config: %w", err)
	}
	if info.Size() > maxConfigFileSize {
		return Config{}, fmt.Errorf("config file %s exceeds %d bytes", path, maxConfigFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// NewBag builds a diagnostic bag honoring the suppressed codes.
func (c Config) NewBag() *diag.Bag {
	return diag.NewBagWithDisabled(c.Disabled)
}
