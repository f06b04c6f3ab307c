/*
Package config loads runtime settings from defaults, an optional YAML config
file, WORDFREQ_* environment variables and command-line flags, in increasing
order of precedence.
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/wordfreq/internal/adapters/logging"
	"github.com/AntonioJCosta/wordfreq/internal/adapters/render"
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/unit"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeyUnit     = "unit"
	KeyFormat   = "format"
	KeyLogLevel = "log-level"
	KeyNoColor  = "no-color"

	envPrefix = "WORDFREQ"
)

// Config is the resolved runtime configuration.
type Config struct {
	Unit     string `mapstructure:"unit"`
	Format   string `mapstructure:"format"`
	LogLevel string `mapstructure:"log-level"`
	NoColor  bool   `mapstructure:"no-color"`

	UnitKind     unit.Kind     `mapstructure:"-"`
	OutputFormat render.Format `mapstructure:"-"`
	ConfigPath   string        `mapstructure:"-"` // file actually read, if any
}

// DefaultConfigPath returns $HOME/.config/wordfreq/config.yml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "wordfreq", "config.yml"), nil
}

/*
Load resolves the configuration. flags may be nil; flags that were set on the
command line override every other source. An explicit configPath must exist;
the default config file is optional.
*/
func Load(flags *pflag.FlagSet, configPath string) (Config, error) {
	var cfg Config

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault(KeyUnit, unit.Default.String())
	v.SetDefault(KeyFormat, string(render.HistogramFormat))
	v.SetDefault(KeyLogLevel, logging.DefaultLevel)
	v.SetDefault(KeyNoColor, false)

	if flags != nil {
		for _, key := range []string{KeyUnit, KeyFormat, KeyLogLevel, KeyNoColor} {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return cfg, fmt.Errorf("binding flag %s: %w", key, err)
				}
			}
		}
	}

	explicit := configPath != ""
	if !explicit {
		if p, err := DefaultConfigPath(); err == nil {
			configPath = p
		}
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var configFileNotFound viper.ConfigFileNotFoundError
			missing := errors.As(err, &configFileNotFound) || errors.Is(err, os.ErrNotExist)
			if explicit || !missing {
				return cfg, fmt.Errorf("reading config file %s: %w", configPath, err)
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	cfg.ConfigPath = v.ConfigFileUsed()
	if _, err := os.Stat(cfg.ConfigPath); err != nil {
		cfg.ConfigPath = ""
	}

	kind, err := unit.Parse(cfg.Unit)
	if err != nil {
		return cfg, err
	}
	cfg.UnitKind = kind

	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return cfg, err
	}
	cfg.OutputFormat = format

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return cfg, fmt.Errorf("invalid log-level %q: %w", cfg.LogLevel, err)
	}

	return cfg, nil
}
