// Package config resolves the session configuration from, in ascending
// precedence: built-in defaults, an optional config file, AVATARHUB_*
// environment variables, and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the resolved session configuration.
type Config struct {
	APIURL           string `mapstructure:"api_url"`
	APIKey           string `mapstructure:"api_key"`
	PageSize         int    `mapstructure:"page_size"`
	PublicGroupsOnly bool   `mapstructure:"public_groups_only"`
	Offline          bool   `mapstructure:"offline"`
	LogFile          string `mapstructure:"log_file"`
	LogLevel         string `mapstructure:"log_level"`
}

const (
	defaultAPIURL   = "https://api.heygen.com"
	defaultPageSize = 20
)

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("api_url", defaultAPIURL)
	v.SetDefault("api_key", "")
	v.SetDefault("page_size", defaultPageSize)
	v.SetDefault("public_groups_only", false)
	v.SetDefault("offline", false)
	v.SetDefault("log_file", defaultLogFile())
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("AVATARHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func defaultLogFile() string {
	cache, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(cache, "avatarhub", "avatarhub.log")
}

// Load resolves the configuration. cfgFile may be empty, in which case
// the default location is tried and silently skipped when absent. flags
// may be nil; when given, set flags take the highest precedence.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := newViper()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", cfgFile, err)
		}
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(dir, "avatarhub"))
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: %w", err)
			}
		}
	}

	if flags != nil {
		// Flag names use dashes; config keys use underscores.
		bindings := map[string]string{
			"api_url":            "api-url",
			"api_key":            "api-key",
			"page_size":          "page-size",
			"public_groups_only": "public-only",
			"offline":            "offline",
			"log_file":           "log-file",
			"log_level":          "log-level",
		}
		for key, name := range bindings {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("config: bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if cfg.PageSize < 1 {
		return nil, fmt.Errorf("config: page_size must be > 0, got %d", cfg.PageSize)
	}
	return &cfg, nil
}
