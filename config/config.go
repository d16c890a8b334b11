// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd).
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Built-in defaults. A helixsleuth.yaml file and bound command line
// flags override them.
const (
	defaultReportsDir  = ".helixsleuth"
	defaultMaxSequence = 10000
	defaultRandomMin   = 50
	defaultRandomMax   = 100
)

// SequenceConfig bounds accepted and generated sequences.
type SequenceConfig struct {
	// the maximum accepted sequence length in bases; zero disables the bound
	MaxLength int `mapstructure:"max-length"`

	// the length range for generated random sequences
	RandomMin int `mapstructure:"random-min"`
	RandomMax int `mapstructure:"random-max"`
}

// UIConfig selects the output front end.
type UIConfig struct {
	// whether a terminal gets the interactive explorer instead of the
	// plain renderer
	Interactive bool `mapstructure:"interactive"`
}

// Config is the root-level settings struct and is a mix of settings
// available in helixsleuth.yaml and those available from the command line.
type Config struct {
	// the directory saved reports are written to
	Reports string `mapstructure:"reports"`

	// sequence length settings
	Sequence SequenceConfig `mapstructure:"sequence"`

	// output settings
	UI UIConfig `mapstructure:"ui"`
}

// Init registers defaults and reads an optional helixsleuth.yaml from the
// working directory or the home directory. A missing file is not an error.
func Init() error {
	viper.SetConfigName("helixsleuth")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME")

	viper.SetDefault("reports", defaultReportsDir)
	viper.SetDefault("sequence.max-length", defaultMaxSequence)
	viper.SetDefault("sequence.random-min", defaultRandomMin)
	viper.SetDefault("sequence.random-max", defaultRandomMax)
	viper.SetDefault("ui.interactive", true)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}

		return fmt.Errorf("failed to read config file: %w", err)
	}

	return nil
}

// NewConfig returns a new Config struct populated by Viper settings
// (either from the local helixsleuth.yaml) and/or command line arguments.
func NewConfig() (Config, error) {
	var c Config

	if err := viper.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	return c, nil
}
