/*
 * zeffplot.go, part of goZeff
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

// Package zeffplot produces charts of the effective nuclear charges and
// screening percentages per orbital, for one or more elements.
// The format of the output file (png, svg, pdf, ...) is given by its extension.
package zeffplot

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/rmera/zeff"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrNoData is returned when none of the requested values is valid, for
// instance, Clementi charts for elements with Z>=87.
var ErrNoData = errors.New("zeffplot: no valid data to plot")

// Options for the output files.
type Options struct {
	Width  vg.Length
	Height vg.Length
	Title  string //if empty, the element symbols are used.
}

// DefaultOptions returns 6x4 inches and no title.
func DefaultOptions() Options {
	return Options{Width: 6 * vg.Inch, Height: 4 * vg.Inch}
}

// fill replaces the zero sizes in o with the default ones.
func (o Options) fill() Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	return o
}

// Quantity plotted.
type Quantity int

const (
	Zeff    Quantity = iota //effective nuclear charge
	Percent                 //screening percentage
)

const (
	zeffLabel    = "Effective nuclear charge"
	percentLabel = "Shielding / %"
	orbitalLabel = "Orbitals"
	zeffStep     = 5.0
	percentStep  = 10.0
	bothTicks    = 5
)

func (q Quantity) axisLabel() string {
	if q == Percent {
		return percentLabel
	}
	return zeffLabel
}

func (q Quantity) step() float64 {
	if q == Percent {
		return percentStep
	}
	return zeffStep
}

func (q Quantity) legend(m zeff.Method, symbol string) string {
	if q == Percent {
		return fmt.Sprintf("Shielding %% %s %s", m, symbol)
	}
	return fmt.Sprintf("Zeff %s %s", m, symbol)
}

func (q Quantity) of(r zeff.Result) zeff.Quantity {
	if q == Percent {
		return r.Percent
	}
	return r.Zeff
}

// orbitalAxis returns the labels of all the orbitals in sums, sorted
// by n and l, and the position of each label on the X axis.
func orbitalAxis(sums []*zeff.Summary) ([]string, map[string]int) {
	var all []zeff.Orbital
	seen := make(map[string]bool)
	for _, s := range sums {
		for _, r := range s.Rows {
			if !seen[r.Label] {
				seen[r.Label] = true
				all = append(all, r.Orbital)
			}
		}
	}
	all = zeff.SortOrbitals(all)
	labels := make([]string, len(all))
	pos := make(map[string]int, len(all))
	for i, o := range all {
		labels[i] = o.Label
		pos[o.Label] = i
	}
	return labels, pos
}

// points returns the valid values of quantity q with method m, placed on
// the X axis according to pos.
func points(s *zeff.Summary, m zeff.Method, q Quantity, pos map[string]int) plotter.XYs {
	pts := make(plotter.XYs, 0, len(s.Rows))
	for _, r := range s.Results(m) {
		v := q.of(r)
		if !v.Valid {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(pos[r.Orbital.Label]), Y: v.Value})
	}
	return pts
}

// stepTicks returns major ticks every step, from 0 to the first multiple of
// step above the data.
func stepTicks(step float64) plot.TickerFunc {
	return func(min, max float64) []plot.Tick {
		top := math.Round(max) + step
		ticks := make([]plot.Tick, 0, int(top/step)+1)
		for v := 0.0; v < top; v += step {
			ticks = append(ticks, plot.Tick{Value: v, Label: fmt.Sprintf("%g", v)})
		}
		return ticks
	}
}

// linTicks returns n evenly spaced ticks between 0 and the data maximum plus one.
func linTicks(n int) plot.TickerFunc {
	return func(min, max float64) []plot.Tick {
		top := math.Round(max) + 1
		ticks := make([]plot.Tick, n)
		for i := range ticks {
			v := top * float64(i) / float64(n-1)
			ticks[i] = plot.Tick{Value: v, Label: fmt.Sprintf("%.1f", v)}
		}
		return ticks
	}
}

func symbols(sums []*zeff.Summary) string {
	s := make([]string, len(sums))
	for i, v := range sums {
		s[i] = v.Symbol
	}
	return strings.Join(s, ", ")
}

func basicPlot(title, ylabel string, labels []string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = orbitalLabel
	p.Y.Label.Text = ylabel
	p.Y.Min = 0
	p.NominalX(labels...)
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	return p
}

// addLine adds the line and points for pts to p, and to its legend.
// The series number key, out of steps, sets the color and the glyph.
func addLine(p *plot.Plot, pts plotter.XYs, legend string, key, steps int, dashed bool) error {
	l, s, err := plotter.NewLinePoints(pts)
	if err != nil {
		return err
	}
	c := colors(key, steps)
	l.LineStyle.Color = c
	l.LineStyle.Width = vg.Points(1.5)
	if dashed {
		l.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Shape = getShape(key)
	p.Add(l, s)
	p.Legend.Add(legend, l, s)
	return nil
}

// Chart returns a plot of the quantity q, obtained with method m, for each
// element in sums, one line per element. The X axis has the orbitals of all
// the elements, sorted by n and l. Invalid values are left out. If no value
// is valid, Chart returns ErrNoData.
func Chart(m zeff.Method, q Quantity, sums ...*zeff.Summary) (*plot.Plot, error) {
	labels, pos := orbitalAxis(sums)
	p := basicPlot(symbols(sums), q.axisLabel(), labels)
	p.Y.Tick.Marker = stepTicks(q.step())
	var lines int
	for i, s := range sums {
		pts := points(s, m, q, pos)
		if len(pts) == 0 {
			continue
		}
		if err := addLine(p, pts, q.legend(m, s.Symbol), i, len(sums), false); err != nil {
			return nil, fmt.Errorf("zeffplot: %s: %w", s.Symbol, err)
		}
		lines++
	}
	if lines == 0 {
		return nil, ErrNoData
	}
	return p, nil
}

// Both returns two plots for the element in s with method m: the effective
// nuclear charges and the screening percentages. They share the X axis and
// are meant to be drawn aligned, one above the other (see SlaterBoth).
func Both(m zeff.Method, s *zeff.Summary) (zeffp, pctp *plot.Plot, err error) {
	labels, pos := orbitalAxis([]*zeff.Summary{s})
	ret := make([]*plot.Plot, 2)
	for i, q := range []Quantity{Zeff, Percent} {
		pts := points(s, m, q, pos)
		if len(pts) == 0 {
			return nil, nil, ErrNoData
		}
		p := basicPlot("", q.axisLabel(), labels)
		p.Y.Tick.Marker = linTicks(bothTicks)
		if err := addLine(p, pts, q.legend(m, s.Symbol), i, 2, false); err != nil {
			return nil, nil, fmt.Errorf("zeffplot: %s: %w", s.Symbol, err)
		}
		ret[i] = p
	}
	ret[0].Title.Text = s.Name
	ret[0].X.Label.Text = ""
	return ret[0], ret[1], nil
}

// Compare returns a plot with the effective nuclear charges of every element
// in sums, with both methods. Slater lines are solid, Clementi lines are dashed.
func Compare(sums ...*zeff.Summary) (*plot.Plot, error) {
	labels, pos := orbitalAxis(sums)
	p := basicPlot(symbols(sums), zeffLabel, labels)
	p.Y.Tick.Marker = stepTicks(zeffStep)
	var lines int
	for i, s := range sums {
		for _, m := range []zeff.Method{zeff.MethodSlater, zeff.MethodClementi} {
			pts := points(s, m, Zeff, pos)
			if len(pts) == 0 {
				continue
			}
			if err := addLine(p, pts, Zeff.legend(m, s.Symbol), i, len(sums), m == zeff.MethodClementi); err != nil {
				return nil, fmt.Errorf("zeffplot: %s: %w", s.Symbol, err)
			}
			lines++
		}
	}
	if lines == 0 {
		return nil, ErrNoData
	}
	return p, nil
}

func save(p *plot.Plot, err error, fname string, o Options) error {
	if err != nil {
		return err
	}
	o = o.fill()
	if o.Title != "" {
		p.Title.Text = o.Title
	}
	return p.Save(o.Width, o.Height, fname)
}

// SlaterZeff writes to fname a chart of the Slater effective nuclear charges
// of the elements in sums.
func SlaterZeff(fname string, o Options, sums ...*zeff.Summary) error {
	p, err := Chart(zeff.MethodSlater, Zeff, sums...)
	return save(p, err, fname, o)
}

// SlaterScreening writes to fname a chart of the Slater screening percentages
// of the elements in sums.
func SlaterScreening(fname string, o Options, sums ...*zeff.Summary) error {
	p, err := Chart(zeff.MethodSlater, Percent, sums...)
	return save(p, err, fname, o)
}

// ClementiZeff writes to fname a chart of the Clementi effective nuclear charges
// of the elements in sums.
func ClementiZeff(fname string, o Options, sums ...*zeff.Summary) error {
	p, err := Chart(zeff.MethodClementi, Zeff, sums...)
	return save(p, err, fname, o)
}

// ClementiScreening writes to fname a chart of the Clementi screening percentages
// of the elements in sums.
func ClementiScreening(fname string, o Options, sums ...*zeff.Summary) error {
	p, err := Chart(zeff.MethodClementi, Percent, sums...)
	return save(p, err, fname, o)
}

// CompareZeff writes to fname the chart given by Compare.
func CompareZeff(fname string, o Options, sums ...*zeff.Summary) error {
	p, err := Compare(sums...)
	return save(p, err, fname, o)
}

// SlaterBoth writes to fname the Slater effective nuclear charges and screening
// percentages of the element in s, in two aligned panels.
func SlaterBoth(fname string, o Options, s *zeff.Summary) error {
	return saveBoth(zeff.MethodSlater, fname, o, s)
}

// ClementiBoth writes to fname the Clementi effective nuclear charges and screening
// percentages of the element in s, in two aligned panels.
func ClementiBoth(fname string, o Options, s *zeff.Summary) error {
	return saveBoth(zeff.MethodClementi, fname, o, s)
}

func saveBoth(m zeff.Method, fname string, o Options, s *zeff.Summary) (err error) {
	top, bottom, err := Both(m, s)
	if err != nil {
		return err
	}
	o = o.fill()
	if o.Title != "" {
		top.Title.Text = o.Title
	}
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(fname), "."))
	c, err := draw.NewFormattedCanvas(o.Width, o.Height, format)
	if err != nil {
		return fmt.Errorf("zeffplot: %s: %w", fname, err)
	}
	tiles := draw.Tiles{
		Rows:      2,
		Cols:      1,
		PadX:      vg.Millimeter,
		PadY:      vg.Millimeter,
		PadTop:    vg.Points(2),
		PadBottom: vg.Points(2),
		PadLeft:   vg.Points(2),
		PadRight:  vg.Points(2),
	}
	plots := [][]*plot.Plot{{top}, {bottom}}
	canvases := plot.Align(plots, tiles, draw.New(c))
	for j := range plots {
		plots[j][0].Draw(canvases[j][0])
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if err2 := f.Close(); err == nil {
			err = err2
		}
	}()
	_, err = c.WriteTo(f)
	return err
}
