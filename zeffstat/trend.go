/*
 * trend.go, part of goZeff.
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

// Package zeffstat obtains periodic trends of the effective nuclear charge
// of the outermost orbital of a set of elements.
package zeffstat

import (
	"fmt"
	"strings"

	"github.com/rmera/zeff"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Error is the error type for this package. It implements zeff.Error.
type Error struct {
	message string
	deco    []string
}

func (err *Error) Error() string {
	if len(err.deco) == 0 {
		return "zeffstat: " + err.message
	}
	return strings.Join(err.deco, ": ") + ": " + err.message
}

// Decorate adds the caller's name to the error and returns the decoration.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append([]string{dec}, err.deco...)
	}
	return err.deco
}

func errDecorate(err error, caller string) error {
	if err2, ok := err.(zeff.Error); ok {
		err2.Decorate(caller)
	}
	return err
}

// Point is the outermost orbital of one element, with its Zeff and screening
// percentage with one method.
type Point struct {
	Symbol  string
	Z       int
	Orbital zeff.Orbital
	Status  zeff.Status
	Zeff    zeff.Quantity
	Percent zeff.Quantity
}

// Valid returns true if the point's values were computed.
func (p Point) Valid() bool { return p.Status == zeff.Computed }

// Valence returns, for each element in ids, in the same order, the point for its
// outermost orbital (highest n, and highest l among those) with the method m.
// Points for which m gives no values are returned, but not valid.
func Valence(src zeff.ElementSource, ids []string, m zeff.Method) ([]Point, error) {
	ret := make([]Point, 0, len(ids))
	for _, id := range ids {
		s, err := zeff.ElementData(src, id)
		if err != nil {
			return nil, errDecorate(err, "Valence")
		}
		last := s.Rows[len(s.Rows)-1]
		r := last.Slater
		if m == zeff.MethodClementi {
			r = last.Clementi
		}
		ret = append(ret, Point{Symbol: s.Symbol, Z: s.Z, Orbital: last.Orbital, Status: r.Status, Zeff: r.Zeff, Percent: r.Percent})
	}
	return ret, nil
}

func validXY(pts []Point) (x, y []float64) {
	for _, p := range pts {
		if !p.Valid() {
			continue
		}
		x = append(x, float64(p.Z))
		y = append(y, p.Zeff.Value)
	}
	return x, y
}

// Line is a least squares fit of Zeff = Intercept + Slope*Z.
type Line struct {
	Slope     float64
	Intercept float64
	R2        float64 //coefficient of determination
	N         int     //number of points used
}

func (l Line) String() string {
	return fmt.Sprintf("Zeff = %.4f + %.4f Z (R2 = %.4f, N = %d)", l.Intercept, l.Slope, l.R2, l.N)
}

// Fit fits a straight line to the valid points in pts. At least two valid
// points with different atomic numbers are needed.
func Fit(pts []Point) (Line, error) {
	x, y := validXY(pts)
	if len(x) < 2 {
		return Line{}, &Error{message: fmt.Sprintf("%d valid points, at least 2 needed", len(x)), deco: []string{"Fit"}}
	}
	if floats.Min(x) == floats.Max(x) {
		return Line{}, &Error{message: "all the points have the same atomic number", deco: []string{"Fit"}}
	}
	alpha, beta := stat.LinearRegression(x, y, nil, false)
	r2 := stat.RSquared(x, y, nil, alpha, beta)
	return Line{Slope: beta, Intercept: alpha, R2: r2, N: len(x)}, nil
}

// Stats describes the Zeff values of a set of points.
type Stats struct {
	N    int
	Mean float64
	Std  float64 //sample standard deviation, NaN for N=1
	Min  float64
	Max  float64
}

// Describe returns the statistics of the Zeff values of the valid points in pts.
func Describe(pts []Point) (Stats, error) {
	_, y := validXY(pts)
	if len(y) == 0 {
		return Stats{}, &Error{message: "no valid points", deco: []string{"Describe"}}
	}
	mean, std := stat.MeanStdDev(y, nil)
	return Stats{N: len(y), Mean: mean, Std: std, Min: floats.Min(y), Max: floats.Max(y)}, nil
}
