/*
 * config.go, part of goZeff.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

// Package config loads the settings of the zeff command.
//
// Sources, from lowest to highest precedence:
//  1. defaults
//  2. a YAML file, given with --config or ZEFF_CONFIG
//  3. environment variables with the ZEFF_ prefix (ZEFF_PLOT_WIDTH -> plot.width)
//  4. command line flags that were explicitly set
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Sentinel errors, for errors.Is.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)

const (
	EnvPrefix = "ZEFF_"
	EnvConfig = EnvPrefix + "CONFIG"

	DefaultFormat    = "table"
	DefaultPrecision = 4
	DefaultWidth     = 6.0 //inches
	DefaultHeight    = 4.0
	DefaultLogLevel  = "info"
)

// Formats accepted for tabular output.
var Formats = []string{"table", "csv", "json", "markdown"}

var levels = []string{"debug", "info", "warn", "error"}

// Plot holds the size of the charts, in inches.
type Plot struct {
	Width  float64 `koanf:"width"`
	Height float64 `koanf:"height"`
}

// Log holds the logging settings.
type Log struct {
	Level string `koanf:"level"`
}

// Config holds all the settings.
type Config struct {
	//Dataset, if not empty, is a YAML dataset merged over the bundled element data.
	Dataset   string `koanf:"dataset"`
	Format    string `koanf:"format"`
	Precision int    `koanf:"precision"`
	Plot      Plot   `koanf:"plot"`
	Log       Log    `koanf:"log"`
}

func defaults() map[string]any {
	return map[string]any{
		"dataset":     "",
		"format":      DefaultFormat,
		"precision":   DefaultPrecision,
		"plot.width":  DefaultWidth,
		"plot.height": DefaultHeight,
		"log.level":   DefaultLogLevel,
	}
}

// flagKey maps a command line flag to its config key. An empty key means
// the flag is not a setting.
func flagKey(name string, value any) (string, any) {
	switch name {
	case "dataset", "format", "precision":
		return name, value
	case "width", "height":
		return "plot." + name, value
	case "verbose":
		if v, ok := value.(bool); ok && v {
			return "log.level", "debug"
		}
	case "log-level":
		return "log.level", value
	}
	return "", nil
}

// Load builds the configuration from the defaults, the file cfgFile (or
// the one in ZEFF_CONFIG if cfgFile is empty), the environment and flags.
// flags can be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("%w: defaults: %w", ErrLoadConfig, err)
	}
	if cfgFile == "" {
		cfgFile = os.Getenv(EnvConfig)
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: reading %s: %w", ErrLoadConfig, cfgFile, err)
		}
	}
	//ZEFF_PLOT_WIDTH -> plot.width
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		if s == "CONFIG" {
			return ""
		}
		return strings.ReplaceAll(strings.ToLower(s), "_", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: environment: %w", ErrLoadConfig, err)
	}
	if flags != nil {
		fp := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			return flagKey(f.Name, posflag.FlagVal(flags, f))
		})
		if err := k.Load(fp, nil); err != nil {
			return nil, fmt.Errorf("%w: flags: %w", ErrLoadConfig, err)
		}
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func isIn(container []string, test string) bool {
	for _, v := range container {
		if v == test {
			return true
		}
	}
	return false
}

// Validate checks that every setting has an allowed value.
func (c *Config) Validate() error {
	switch {
	case !isIn(Formats, c.Format):
		return fmt.Errorf("%w: format %q, must be one of %s", ErrInvalidConfig, c.Format, strings.Join(Formats, ", "))
	case c.Precision < 0 || c.Precision > 12:
		return fmt.Errorf("%w: precision %d out of range 0-12", ErrInvalidConfig, c.Precision)
	case c.Plot.Width <= 0 || c.Plot.Height <= 0:
		return fmt.Errorf("%w: plot size %gx%g", ErrInvalidConfig, c.Plot.Width, c.Plot.Height)
	case !isIn(levels, c.Log.Level):
		return fmt.Errorf("%w: log level %q, must be one of %s", ErrInvalidConfig, c.Log.Level, strings.Join(levels, ", "))
	}
	return nil
}
