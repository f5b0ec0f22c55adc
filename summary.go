/*
 * summary.go, part of goZeff.
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

package zeff

import (
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Names of the summary columns.
const (
	ColN             = "n"
	ColL             = "l"
	ColLNum          = "l_num"
	ColOrbital       = "Orbital"
	ColSlaterZeff    = "Zeff Slater"
	ColSlaterS       = "S Slater"
	ColSlaterPct     = "% S Slater"
	ColClementiZeff  = "Zeff Clementi"
	ColClementiS     = "S Clementi"
	ColClementiPct   = "% S Clementi"
	numericColumns   = 6
	firstNumericCol  = 4
	summaryColumnNum = 10
)

var columns = [summaryColumnNum]string{ColN, ColL, ColLNum, ColOrbital, ColSlaterZeff, ColSlaterS, ColSlaterPct, ColClementiZeff, ColClementiS, ColClementiPct}

// Columns returns the headers of a summary table, in order.
func Columns() []string {
	ret := make([]string, len(columns))
	copy(ret, columns[:])
	return ret
}

// Row is one line of a summary: an orbital and its results with both methods.
type Row struct {
	Orbital
	Slater   Result
	Clementi Result
}

// Quantities returns the six numeric quantities of the row, in column order.
func (r Row) Quantities() [numericColumns]Quantity {
	return [numericColumns]Quantity{r.Slater.Zeff, r.Slater.Screening, r.Slater.Percent, r.Clementi.Zeff, r.Clementi.Screening, r.Clementi.Percent}
}

// Summary is the complete table for one element.
type Summary struct {
	Name     string
	Symbol   string
	Z        int
	Orbitals []Orbital //filling order
	Rows     []Row     //sorted by n and l
}

// Summarize computes both methods for all the orbitals of el, and returns
// the summary, with rows sorted by n and then l.
func Summarize(el Element) (*Summary, error) {
	orbs := OrbitalsOf(el)
	var slater, clementi []Result
	var g errgroup.Group
	g.Go(func() error {
		var err error
		slater, err = Slater(el, orbs)
		return err
	})
	g.Go(func() error {
		clementi = Clementi(el, orbs)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, errDecorate(err, "Summarize")
	}
	rows := make([]Row, len(orbs))
	for i, o := range orbs {
		rows[i] = Row{Orbital: o, Slater: slater[i], Clementi: clementi[i]}
	}
	sort.SliceStable(rows, func(i, j int) bool { return orbitalLess(rows[i].Orbital, rows[j].Orbital) })
	return &Summary{Name: el.Name(), Symbol: el.Symbol(), Z: el.AtomicNumber(), Orbitals: orbs, Rows: rows}, nil
}

// ElementData obtains the element id from src and returns its summary.
func ElementData(src ElementSource, id string) (*Summary, error) {
	el, err := src.Element(id)
	if err != nil {
		return nil, errDecorate(err, "ElementData")
	}
	s, err := Summarize(el)
	return s, errDecorate(err, "ElementData")
}

// Len returns the number of rows in the summary.
func (S *Summary) Len() int { return len(S.Rows) }

// Labels returns the orbital labels, in row order.
func (S *Summary) Labels() []string {
	ret := make([]string, len(S.Rows))
	for i, r := range S.Rows {
		ret[i] = r.Label
	}
	return ret
}

// Column returns the values of the numeric column name (n, l_num, or one of the
// six result columns), in row order. Invalid quantities are NaN.
func (S *Summary) Column(name string) ([]float64, error) {
	if !isIn(columns[:], name) || name == ColL || name == ColOrbital {
		return nil, newCError("Summary.Column", "no numeric column %q", name)
	}
	ret := make([]float64, len(S.Rows))
	for i, r := range S.Rows {
		switch name {
		case ColN:
			ret[i] = float64(r.N)
		case ColLNum:
			ret[i] = float64(r.L)
		default:
			ret[i] = r.Quantities()[colIndex(name)-firstNumericCol].Float()
		}
	}
	return ret, nil
}

func colIndex(name string) int {
	for i, v := range columns {
		if v == name {
			return i
		}
	}
	return -1
}

// Matrix returns a len(Rows)x6 matrix with the Zeff, S and %S values of the
// Slater method followed by those of the Clementi method. Invalid quantities
// are NaN. It returns nil for an empty summary.
func (S *Summary) Matrix() *mat.Dense {
	if len(S.Rows) == 0 {
		return nil
	}
	data := make([]float64, 0, len(S.Rows)*numericColumns)
	for _, r := range S.Rows {
		for _, q := range r.Quantities() {
			data = append(data, q.Float())
		}
	}
	return mat.NewDense(len(S.Rows), numericColumns, data)
}

// Results returns the results of method m, in row order.
func (S *Summary) Results(m Method) []Result {
	ret := make([]Result, len(S.Rows))
	for i, r := range S.Rows {
		if m == MethodClementi {
			ret[i] = r.Clementi
		} else {
			ret[i] = r.Slater
		}
	}
	return ret
}
