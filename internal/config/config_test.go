/*
 * config_test.go, part of goZeff.
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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/zeff/internal/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "zeff.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("zeff", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("dataset", "", "")
	fs.String("format", config.DefaultFormat, "")
	fs.Int("precision", config.DefaultPrecision, "")
	fs.Float64("width", config.DefaultWidth, "")
	fs.Float64("height", config.DefaultHeight, "")
	fs.Bool("verbose", false, "")
	return fs
}

func TestDefaults(t *testing.T) {
	t.Setenv(config.EnvConfig, "")
	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "table", cfg.Format)
	assert.Equal(t, 4, cfg.Precision)
	assert.Equal(t, "", cfg.Dataset)
	assert.Equal(t, 6.0, cfg.Plot.Width)
	assert.Equal(t, 4.0, cfg.Plot.Height)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestPrecedence(t *testing.T) {
	path := writeConfig(t, `
format: csv
precision: 2
dataset: extra.yaml.zst
plot:
  width: 8
  height: 5
`)
	t.Run("file", func(t *testing.T) {
		cfg, err := config.Load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "csv", cfg.Format)
		assert.Equal(t, 2, cfg.Precision)
		assert.Equal(t, "extra.yaml.zst", cfg.Dataset)
		assert.Equal(t, 8.0, cfg.Plot.Width)
		assert.Equal(t, "info", cfg.Log.Level)
	})
	t.Run("file from environment", func(t *testing.T) {
		t.Setenv(config.EnvConfig, path)
		cfg, err := config.Load("", nil)
		require.NoError(t, err)
		assert.Equal(t, "csv", cfg.Format)
	})
	t.Run("environment over file", func(t *testing.T) {
		t.Setenv("ZEFF_FORMAT", "json")
		t.Setenv("ZEFF_PLOT_HEIGHT", "7.5")
		t.Setenv("ZEFF_LOG_LEVEL", "warn")
		cfg, err := config.Load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Format)
		assert.Equal(t, 7.5, cfg.Plot.Height)
		assert.Equal(t, 8.0, cfg.Plot.Width)
		assert.Equal(t, "warn", cfg.Log.Level)
	})
	t.Run("flags over environment", func(t *testing.T) {
		t.Setenv("ZEFF_FORMAT", "json")
		fs := testFlags()
		require.NoError(t, fs.Parse([]string{"--format", "markdown", "--width", "3", "--verbose"}))
		cfg, err := config.Load(path, fs)
		require.NoError(t, err)
		assert.Equal(t, "markdown", cfg.Format)
		assert.Equal(t, 3.0, cfg.Plot.Width)
		assert.Equal(t, "debug", cfg.Log.Level)
		//unset flags keep the lower sources.
		assert.Equal(t, 2, cfg.Precision)
	})
}

func TestInvalid(t *testing.T) {
	t.Setenv(config.EnvConfig, "")
	cases := map[string]string{
		"format":    "format: xml\n",
		"precision": "precision: 40\n",
		"size":      "plot:\n  width: 0\n",
		"level":     "log:\n  level: chatty\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, content), nil)
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.ErrorIs(t, err, config.ErrLoadConfig)
}
