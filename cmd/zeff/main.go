/*
 * main.go, part of goZeff.
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

// Command zeff computes effective nuclear charges with Slater's rules and
// the Clementi-Raimondi values, and prints or plots them.
package main

import (
	"fmt"
	"os"

	"github.com/rmera/zeff"
	"github.com/rmera/zeff/elements"
	"github.com/rmera/zeff/internal/config"
	"github.com/rmera/zeff/internal/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "dev"

var (
	// Global flags
	cfgFile string

	cfg    *config.Config
	table  *elements.Table
	source zeff.ElementSource

	logger *zap.Logger
	//replaced in tests
	newLogger = productionLogger
)

func productionLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	config := zap.NewProductionConfig()
	config.Level = lvl
	return config.Build()
}

// setup loads the configuration and the element data, and starts the logger.
func setup(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	logger, err = newLogger(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	table = elements.Default()
	if cfg.Dataset != "" {
		table, err = elements.Load(cfg.Dataset)
		if err != nil {
			return err
		}
		logger.Debug("Dataset loaded", zap.String("file", cfg.Dataset), zap.Int("elements", table.Len()))
	}
	source = zeff.FromTable(table)
	return nil
}

func renderer() render.Renderer {
	return render.Renderer{Format: cfg.Format, Precision: cfg.Precision}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "zeff",
		Short: "Effective nuclear charges with Slater's rules and Clementi-Raimondi values",
		Long: `zeff computes, for every occupied orbital of an element, the screening
constant, the effective nuclear charge and the screening percentage, using
Slater's rules and the Clementi-Raimondi (1963) values.

Elements are given by symbol or name, as in "Fe" or "Iron".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "YAML config file (or set "+config.EnvConfig+")")
	pf.String("dataset", "", "YAML dataset (.yaml, .yaml.gz or .yaml.zst) merged over the bundled element data")
	pf.StringP("format", "f", config.DefaultFormat, "Output format: table, csv, json or markdown")
	pf.IntP("precision", "p", config.DefaultPrecision, "Decimals in the output")
	pf.BoolP("verbose", "v", false, "Enable verbose logging")
	pf.String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn or error")

	root.AddCommand(
		newOrbitalsCmd(),
		newMethodCmd(zeff.MethodSlater),
		newMethodCmd(zeff.MethodClementi),
		newTableCmd(),
		newPlotCmd(),
		newTrendCmd(),
		newExportCmd(),
		newVersionCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
