// Package config loads the settings of a fixture registry.
//
// Settings can come from a YAML or TOML file, from .env files and from the process environment.
// The environment always has the last word.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/adamluzsi/fixreg"
)

const (
	EnvCleanup   = "FIXREG_CLEANUP"
	EnvFactories = "FIXREG_FACTORIES"
)

const (
	ErrUnsupportedFormat fixreg.Error = "ErrUnsupportedFormat"
	ErrInvalidValue      fixreg.Error = "ErrInvalidValue"
)

type Config struct {
	// Cleanup allows the schema reset at the end of the suite.
	//
	// default: false
	Cleanup bool `yaml:"cleanup" toml:"cleanup"`
	// Factories lists the entity types whose factories the registry is built from.
	Factories []string `yaml:"factories" toml:"factories"`
}

// Load reads a settings file.
// The format is picked by the file extension: .yaml, .yml or .toml.
func Load(path string) (Config, error) {
	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		bs, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(bs, &cfg); err != nil {
			return cfg, ErrInvalidValue.Wrap(err)
		}
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, ErrInvalidValue.Wrap(err)
		}
	default:
		return cfg, ErrUnsupportedFormat.F("%s", path)
	}
	return cfg, nil
}

// LoadEnv overlays the settings with the values of the given .env files and then the process environment.
func LoadEnv(cfg *Config, dotenvFiles ...string) error {
	env := map[string]string{}
	if 0 < len(dotenvFiles) {
		vs, err := godotenv.Read(dotenvFiles...)
		if err != nil {
			return err
		}
		env = vs
	}
	for _, key := range []string{EnvCleanup, EnvFactories} {
		if v, ok := os.LookupEnv(key); ok {
			env[key] = v
		}
	}
	if raw, ok := env[EnvCleanup]; ok {
		v, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return ErrInvalidValue.F("%s: %s", EnvCleanup, err.Error())
		}
		cfg.Cleanup = v
	}
	if raw, ok := env[EnvFactories]; ok {
		cfg.Factories = splitList(raw)
	}
	return nil
}

func (c Config) Validate() error {
	if len(c.Factories) == 0 {
		return fixreg.ErrMissingFactories
	}
	for i, name := range c.Factories {
		if strings.TrimSpace(name) == "" {
			return ErrInvalidValue.F("factories[%d] is empty", i)
		}
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
