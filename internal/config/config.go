// SPDX-License-Identifier: MIT

// Package config defines the CLI configuration, its defaults and how flags,
// environment and an optional YAML file are merged.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/metroline/dijkstra"
	"github.com/katalvlaran/metroline/internal/render"
)

// Defaults.
const (
	DefaultNetwork  = "metro.txt"
	DefaultFormat   = render.FormatText
	DefaultLogLevel = "info"

	// EnvPrefix prefixes every environment override, e.g. METROLINE_NETWORK.
	EnvPrefix = "METROLINE"

	// FileName is the config file looked up in the home directory.
	FileName = ".metroline.yaml"
)

// Keys shared by viper, the YAML file and the environment.
const (
	KeyNetwork  = "network"
	KeyPenalty  = "penalty"
	KeyFormat   = "format"
	KeyLogLevel = "log_level"
	KeyLogJSON  = "log_json"
)

// ErrInvalid indicates a configuration value outside its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Config is the resolved configuration of one CLI run.
type Config struct {
	// Network is the path of the network file.
	Network string `mapstructure:"network"`
	// Penalty is the cost of a line change in shortest-path queries.
	Penalty int64 `mapstructure:"penalty"`
	// Format selects the renderer.
	Format string `mapstructure:"format"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
	// LogJSON switches the stderr log handler to JSON.
	LogJSON bool `mapstructure:"log_json"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Network:  DefaultNetwork,
		Penalty:  dijkstra.DefaultTransferPenalty,
		Format:   DefaultFormat,
		LogLevel: DefaultLogLevel,
	}
}

// RegisterFlags adds the configuration flags to fs with their defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.StringP("network", "n", d.Network, "Path to the network file")
	fs.Int64("penalty", d.Penalty, "Transfer penalty for a line change")
	fs.StringP("format", "o", d.Format, "Output format ("+strings.Join(render.Formats(), "|")+")")
	fs.String("log-level", d.LogLevel, "Log level (debug|info|warn|error)")
	fs.Bool("log-json", d.LogJSON, "Emit logs as JSON")
}

// Load merges, from lowest to highest precedence, the defaults, the YAML
// file, METROLINE_* environment variables and flags set on fs. An empty
// file means $HOME/.metroline.yaml, which may be absent; an explicit file
// must exist. The result is validated.
func Load(v *viper.Viper, fs *pflag.FlagSet, file string) (Config, error) {
	d := Default()
	v.SetDefault(KeyNetwork, d.Network)
	v.SetDefault(KeyPenalty, d.Penalty)
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogJSON, d.LogJSON)

	if fs != nil {
		for key, flag := range map[string]string{
			KeyNetwork:  "network",
			KeyPenalty:  "penalty",
			KeyFormat:   "format",
			KeyLogLevel: "log-level",
			KeyLogJSON:  "log-json",
		} {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("config: bind flag %s: %w", flag, err)
				}
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := readFile(v, file); err != nil {
		return Config{}, err
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func readFile(v *viper.Viper, file string) error {
	explicit := file != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		file = filepath.Join(home, FileName)
	}

	v.SetConfigFile(file)
	v.SetConfigType("yaml")

	err := v.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !explicit && (errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)) {
		return nil
	}

	return fmt.Errorf("config: read %s: %w", file, err)
}

// Validate rejects a negative penalty, an unknown format or log level.
func (c Config) Validate() error {
	if c.Penalty < 0 {
		return fmt.Errorf("%w: penalty %d is negative", ErrInvalid, c.Penalty)
	}
	if !render.Valid(c.Format) {
		return fmt.Errorf("%w: format %q (want %s)", ErrInvalid, c.Format, strings.Join(render.Formats(), "|"))
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}

	return l, nil
}

// NewLogger builds the logger described by LogLevel and LogJSON, writing to w.
func (c Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := c.Level()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.LogJSON {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}
