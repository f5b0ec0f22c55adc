/*
 * tables.go, part of goZeff.
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

package render

import (
	"fmt"
	"math"
	"strconv"

	"github.com/rmera/zeff"
	"github.com/rmera/zeff/zeffstat"
)

func intCell(i int) Cell { return Cell{Text: strconv.Itoa(i), Value: i} }

func textCell(s string) Cell { return Cell{Text: s, Value: s} }

func (R Renderer) quantity(q zeff.Quantity) Cell {
	if !q.Valid {
		return Cell{Text: q.Format(R.Precision)}
	}
	return Cell{Text: q.Format(R.Precision), Value: q.Value}
}

func title(name, symbol string, z int) string {
	return fmt.Sprintf("%s (%s, Z=%d)", name, symbol, z)
}

// SummaryTable returns the full table of s, with the columns given by
// zeff.Columns.
func (R Renderer) SummaryTable(s *zeff.Summary) *Table {
	t := &Table{Title: title(s.Name, s.Symbol, s.Z), Header: zeff.Columns()}
	for _, r := range s.Rows {
		cells := []Cell{intCell(r.N), textCell(r.Letter), intCell(r.L), textCell(r.Label)}
		for _, q := range r.Quantities() {
			cells = append(cells, R.quantity(q))
		}
		t.AppendRow(cells...)
	}
	return t
}

// OrbitalsTable returns the orbitals in orbs, in the given order.
func (R Renderer) OrbitalsTable(ttl string, orbs []zeff.Orbital) *Table {
	t := &Table{Title: ttl, Header: []string{zeff.ColN, zeff.ColL, zeff.ColLNum, zeff.ColOrbital}}
	for _, o := range orbs {
		t.AppendRow(intCell(o.N), textCell(o.Letter), intCell(o.L), textCell(o.Label))
	}
	return t
}

// ResultsTable returns the results of one method.
func (R Renderer) ResultsTable(ttl string, res []zeff.Result) *Table {
	t := &Table{Title: ttl, Header: []string{zeff.ColOrbital, "Status", "Zeff", "S", "% S"}}
	for _, r := range res {
		t.AppendRow(textCell(r.Orbital.Label), textCell(r.Status.String()), R.quantity(r.Zeff), R.quantity(r.Screening), R.quantity(r.Percent))
	}
	return t
}

// TrendTable returns the outermost orbital of each element in pts.
func (R Renderer) TrendTable(ttl string, pts []zeffstat.Point) *Table {
	t := &Table{Title: ttl, Header: []string{"Z", "Symbol", zeff.ColOrbital, "Status", "Zeff", "% S"}}
	for _, p := range pts {
		t.AppendRow(intCell(p.Z), textCell(p.Symbol), textCell(p.Orbital.Label), textCell(p.Status.String()), R.quantity(p.Zeff), R.quantity(p.Percent))
	}
	return t
}

// HistogramTable returns one row per bin of H.
func (R Renderer) HistogramTable(ttl string, H *zeffstat.Histogram) *Table {
	t := &Table{Title: ttl, Header: []string{"From", "To", "Count"}}
	d, c := H.Dividers(), H.Counts()
	for i, v := range c {
		t.AppendRow(R.quantity(zeff.Quantity{Value: d[i], Valid: true}), R.quantity(zeff.Quantity{Value: d[i+1], Valid: true}), R.quantity(zeff.Quantity{Value: v, Valid: true}))
	}
	return t
}

// FitTable returns the coefficients of the straight line l.
func (R Renderer) FitTable(ttl string, l zeffstat.Line) *Table {
	t := &Table{Title: ttl, Header: []string{"Slope", "Intercept", "R2", "N"}}
	t.AppendRow(R.quantity(zeff.Quantity{Value: l.Slope, Valid: true}), R.quantity(zeff.Quantity{Value: l.Intercept, Valid: true}), R.quantity(zeff.Quantity{Value: l.R2, Valid: true}), intCell(l.N))
	return t
}

// StatsTable returns the statistics in s.
func (R Renderer) StatsTable(ttl string, s zeffstat.Stats) *Table {
	t := &Table{Title: ttl, Header: []string{"N", "Mean", "Std", "Min", "Max"}}
	q := func(v float64) Cell { return R.quantity(zeff.Quantity{Value: v, Valid: !math.IsNaN(v)}) }
	t.AppendRow(intCell(s.N), q(s.Mean), q(s.Std), q(s.Min), q(s.Max))
	return t
}
