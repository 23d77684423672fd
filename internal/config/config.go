package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/joho/godotenv"
	"github.com/skill-launcher/skill-launcher/internal/branding"
	"github.com/skill-launcher/skill-launcher/internal/userdata"
	"github.com/spf13/viper"
)

const fileType = "yaml"

// Recognized configuration keys.
const (
	KeyProjectRoot = "project_root"
	KeyExclude     = "exclude"
)

// Config wraps a viper instance bound to one config file.
type Config struct {
	v    *viper.Viper
	path string
}

// Load reads the config file for the given provider's home directory. A
// missing or unreadable file leaves every key at its default. A .env file in
// the working directory is loaded first; variables already set are kept.
func Load(p userdata.Provider) *Config {
	if wd, err := p.WorkingDir(); err == nil {
		_ = godotenv.Load(filepath.Join(wd, ".env"))
	}

	v := viper.New()
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault(KeyExclude, []string{})

	path, err := userdata.GetConfigPath(p)
	if err == nil {
		v.SetConfigFile(path)
		// Ignore error if config file doesn't exist yet.
		_ = v.ReadInConfig()
	}

	return &Config{v: v, path: path}
}

// FilePath returns the config file location; empty when the home directory
// could not be resolved.
func (c *Config) FilePath() string { return c.path }

// ProjectRoot returns the configured project root, if any.
func (c *Config) ProjectRoot() string {
	return c.v.GetString(KeyProjectRoot)
}

// Exclude returns the configured exclusion patterns. A plain string (as set
// from the command line or the environment) is split on commas.
func (c *Config) Exclude() []string {
	raw := c.v.GetStringSlice(KeyExclude)
	if s, ok := c.v.Get(KeyExclude).(string); ok {
		raw = strings.Split(s, ",")
	}

	var out []string
	for _, p := range raw {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Get returns a config value by key. Returns empty string if not set.
func (c *Config) Get(key string) string {
	return c.v.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func (c *Config) Set(key, value string) error {
	if c.path == "" {
		return fmt.Errorf("config file location unknown")
	}
	if err := validate(key, value); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(c.path), userdata.DirPermNormal); err != nil {
		return fmt.Errorf("creating config directory %s: %w", filepath.Dir(c.path), err)
	}

	c.v.Set(key, value)
	if err := c.v.WriteConfigAs(c.path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// validate rejects values that would be silently ignored later.
func validate(key, value string) error {
	switch key {
	case KeyProjectRoot:
		return nil
	case KeyExclude:
		for _, p := range strings.Split(value, ",") {
			if p = strings.TrimSpace(p); p != "" && !doublestar.ValidatePattern(p) {
				return fmt.Errorf("invalid exclude pattern %q", p)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown config key %q (known: %s, %s)", key, KeyProjectRoot, KeyExclude)
	}
}
