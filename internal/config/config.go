// Package config loads settings for the command-line tools from the
// environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"

	"github.com/reallyoldfogie/osr-replay-go/osr"
)

// Config holds tool settings. Flags override these values.
type Config struct {
	ModTable string `env:"OSR_MOD_TABLE" envDefault:"reference"`
	Locale   string `env:"OSR_LOCALE"    envDefault:"en"`
}

// ParseEnv loads Config from environment variables and validates it.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := cfg.Mods(); err != nil {
		return Config{}, err
	}
	if _, err := cfg.Language(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Mods resolves ModTable to an osr.ModTable.
func (c Config) Mods() (osr.ModTable, error) {
	return osr.ModTableByName(c.ModTable)
}

// Language parses Locale as a BCP 47 tag.
func (c Config) Language() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("parse locale %q: %w", c.Locale, err)
	}
	return tag, nil
}
