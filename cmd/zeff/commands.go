/*
 * commands.go, part of goZeff.
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

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rmera/zeff"
	"github.com/rmera/zeff/elements"
	"github.com/rmera/zeff/internal/config"
	"github.com/rmera/zeff/zeffplot"
	"github.com/rmera/zeff/zeffstat"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

func elementTitle(el zeff.Element) string {
	return fmt.Sprintf("%s (%s, Z=%d)", el.Name(), el.Symbol(), el.AtomicNumber())
}

func newOrbitalsCmd() *cobra.Command {
	var sorted bool
	cmd := &cobra.Command{
		Use:   "orbitals <element>",
		Short: "List the occupied orbitals of an element",
		Long: `Lists the occupied orbitals of an element in filling (Madelung) order,
or sorted by n and l with --sorted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			el, err := source.Element(args[0])
			if err != nil {
				return err
			}
			orbs := zeff.OrbitalsOf(el)
			order := "filling order"
			if sorted {
				orbs = zeff.SortOrbitals(orbs)
				order = "sorted"
			}
			R := renderer()
			return R.Render(cmd.OutOrStdout(), R.OrbitalsTable(elementTitle(el)+", "+order, orbs))
		},
	}
	cmd.Flags().BoolVar(&sorted, "sorted", false, "Sort by n and l instead of filling order")
	return cmd
}

// newMethodCmd returns the slater or clementi command.
func newMethodCmd(m zeff.Method) *cobra.Command {
	name := strings.ToLower(m.String())
	return &cobra.Command{
		Use:   name + " <element>",
		Short: "Screening and Zeff of every orbital with the " + m.String() + " method",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			el, err := source.Element(args[0])
			if err != nil {
				return err
			}
			res, err := zeff.Compute(m, el, zeff.OrbitalsOf(el))
			if err != nil {
				return err
			}
			if !zeff.AllValid(res) {
				logger.Warn("Some orbitals have no value", zap.String("element", el.Symbol()), zap.String("method", m.String()))
			}
			R := renderer()
			return R.Render(cmd.OutOrStdout(), R.ResultsTable(m.String()+", "+elementTitle(el), res))
		},
	}
}

func summaries(ids []string) ([]*zeff.Summary, error) {
	ret := make([]*zeff.Summary, 0, len(ids))
	for _, id := range ids {
		s, err := zeff.ElementData(source, id)
		if err != nil {
			return nil, err
		}
		logger.Debug("Summary", zap.String("element", s.Symbol), zap.Int("orbitals", s.Len()))
		ret = append(ret, s)
	}
	return ret, nil
}

func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table <element>...",
		Short: "Full table of both methods for one or more elements",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sums, err := summaries(args)
			if err != nil {
				return err
			}
			R := renderer()
			for _, s := range sums {
				if err := R.Render(cmd.OutOrStdout(), R.SummaryTable(s)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

type plotFunc func(fname string, o zeffplot.Options, sums []*zeff.Summary) error

func single(f func(string, zeffplot.Options, *zeff.Summary) error) plotFunc {
	return func(fname string, o zeffplot.Options, sums []*zeff.Summary) error {
		if len(sums) != 1 {
			return fmt.Errorf("this chart takes exactly one element, got %d", len(sums))
		}
		return f(fname, o, sums[0])
	}
}

func multi(f func(string, zeffplot.Options, ...*zeff.Summary) error) plotFunc {
	return func(fname string, o zeffplot.Options, sums []*zeff.Summary) error {
		return f(fname, o, sums...)
	}
}

var plotKinds = map[string]plotFunc{
	"slater-zeff":        multi(zeffplot.SlaterZeff),
	"slater-screening":   multi(zeffplot.SlaterScreening),
	"clementi-zeff":      multi(zeffplot.ClementiZeff),
	"clementi-screening": multi(zeffplot.ClementiScreening),
	"compare":            multi(zeffplot.CompareZeff),
	"slater-both":        single(zeffplot.SlaterBoth),
	"clementi-both":      single(zeffplot.ClementiBoth),
}

func plotKindNames() []string {
	ret := make([]string, 0, len(plotKinds))
	for k := range plotKinds {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

func newPlotCmd() *cobra.Command {
	var output, title string
	cmd := &cobra.Command{
		Use:   "plot <kind> <element>...",
		Short: "Plot Zeff or screening percentages to a PNG, SVG or PDF file",
		Long: "Plots one of: " + strings.Join(plotKindNames(), ", ") + `.
The output format is given by the extension of the --output file.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ok := plotKinds[args[0]]
			if !ok {
				return fmt.Errorf("unknown plot kind %q, must be one of %s", args[0], strings.Join(plotKindNames(), ", "))
			}
			sums, err := summaries(args[1:])
			if err != nil {
				return err
			}
			o := zeffplot.Options{
				Width:  vg.Length(cfg.Plot.Width) * vg.Inch,
				Height: vg.Length(cfg.Plot.Height) * vg.Inch,
				Title:  title,
			}
			if err := f(output, o, sums); err != nil {
				return err
			}
			logger.Info("Chart written", zap.String("kind", args[0]), zap.String("file", output))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "zeff.png", "Output file (.png, .jpg, .svg, .pdf, .eps or .tiff)")
	cmd.Flags().StringVar(&title, "title", "", "Chart title (default: the element symbols)")
	cmd.Flags().Float64("width", config.DefaultWidth, "Chart width in inches")
	cmd.Flags().Float64("height", config.DefaultHeight, "Chart height in inches")
	return cmd
}

func newTrendCmd() *cobra.Command {
	var method string
	var bins int
	cmd := &cobra.Command{
		Use:   "trend <element>...",
		Short: "Zeff of the outermost orbital across elements, with a linear fit against Z",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := zeff.ParseMethod(method)
			if err != nil {
				return err
			}
			pts, err := zeffstat.Valence(source, args, m)
			if err != nil {
				return err
			}
			R := renderer()
			out := cmd.OutOrStdout()
			if err := R.Render(out, R.TrendTable(m.String()+", outermost orbitals", pts)); err != nil {
				return err
			}
			if l, err := zeffstat.Fit(pts); err == nil {
				if err := R.Render(out, R.FitTable("Linear fit, Zeff against Z", l)); err != nil {
					return err
				}
			} else {
				logger.Debug("No fit", zap.Error(err))
			}
			if s, err := zeffstat.Describe(pts); err == nil {
				if err := R.Render(out, R.StatsTable("Zeff statistics", s)); err != nil {
					return err
				}
			}
			if bins > 0 {
				H, err := zeffstat.Distribution(pts, bins)
				if err != nil {
					return err
				}
				return R.Render(out, R.HistogramTable("Screening percentages", H))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&method, "method", "m", "slater", "Method: slater or clementi")
	cmd.Flags().IntVar(&bins, "bins", 0, "If > 0, also print a histogram of the screening percentages with this many bins")
	return cmd
}

func newExportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the element data in use as a YAML dataset",
		Long: `Writes the bundled element data, merged with --dataset if given, as a YAML
dataset that --dataset can read back. With --output, the file is compressed
if its name ends in .gz or .zst.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return table.Write(cmd.OutOrStdout())
			}
			if err := elements.WriteDataset(output, table.Dataset()); err != nil {
				return err
			}
			logger.Info("Dataset written", zap.String("file", output), zap.Int("elements", table.Len()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: standard output)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "zeff", version)
		},
	}
}
