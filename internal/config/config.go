// Package config loads formfield command settings from an optional file and
// FORMFIELD_* environment variables.
package config

import (
	"fmt"
	"slices"

	"github.com/spf13/viper"
)

// Config holds command defaults. Command line flags override every value.
type Config struct {
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	Renderer string `mapstructure:"renderer" yaml:"renderer"`
	Output   string `mapstructure:"output" yaml:"output"`
	Title    string `mapstructure:"title" yaml:"title"`
	Sanitize bool   `mapstructure:"sanitize" yaml:"sanitize"`
	Strict   bool   `mapstructure:"strict" yaml:"strict"`
	Tree     bool   `mapstructure:"tree" yaml:"tree"`
}

// Default values used when neither the file nor the environment set a key.
const (
	DefaultRenderer = "html"
	DefaultTitle    = "Form"
)

// envBindings maps config keys to the environment variables that may set them.
var envBindings = map[string][]string{
	"log_level": {"FORMFIELD_LOG_LEVEL"},
	"renderer":  {"FORMFIELD_RENDERER"},
	"output":    {"FORMFIELD_OUTPUT"},
	"title":     {"FORMFIELD_TITLE"},
	"sanitize":  {"FORMFIELD_SANITIZE"},
	"strict":    {"FORMFIELD_STRICT"},
	"tree":      {"FORMFIELD_TREE"},
}

// Load reads path when it is not empty, then applies environment overrides.
// A missing file named explicitly is an error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("renderer", DefaultRenderer)
	v.SetDefault("title", DefaultTitle)

	if err := bindEnvs(v); err != nil {
		return Config{}, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}

func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		inputs := slices.Insert(slices.Clone(envs), 0, key)
		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}
	return nil
}
