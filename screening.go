/*
 * screening.go, part of goZeff.
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
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rmera/zeff/elements"
)

// Method is one of the approximations used to obtain the screening constants.
type Method int

const (
	MethodSlater Method = iota
	MethodClementi
)

func (m Method) String() string {
	switch m {
	case MethodSlater:
		return "Slater"
	case MethodClementi:
		return "Clementi"
	}
	return "Method(" + strconv.Itoa(int(m)) + ")"
}

// ParseMethod returns the method named s. The comparison is case-insensitive.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(s) {
	case "slater":
		return MethodSlater, nil
	case "clementi":
		return MethodClementi, nil
	}
	return 0, newCError("ParseMethod", "unknown method %q", s)
}

// Status tells whether the values of a Result could be obtained.
type Status int

const (
	//The values were computed.
	Computed Status = iota
	//The method does not apply to the element (Clementi for Z>=87).
	Inapplicable
	//The method applies, but the data source has no value for the orbital.
	Untabulated
)

func (s Status) String() string {
	switch s {
	case Computed:
		return "computed"
	case Inapplicable:
		return "inapplicable"
	case Untabulated:
		return "untabulated"
	}
	return "Status(" + strconv.Itoa(int(s)) + ")"
}

// Quantity is a value that may be missing.
type Quantity struct {
	Value float64
	Valid bool
}

func valid(v float64) Quantity { return Quantity{Value: v, Valid: true} }

// Float returns the value, or NaN if the quantity is not valid.
func (q Quantity) Float() float64 {
	if !q.Valid {
		return math.NaN()
	}
	return q.Value
}

// Format returns the value with prec decimals, or "NaN" if the quantity is not
// valid. A negative prec gives the shortest exact representation.
func (q Quantity) Format(prec int) string {
	if !q.Valid {
		return "NaN"
	}
	return strconv.FormatFloat(q.Value, 'f', prec, 64)
}

func (q Quantity) String() string { return q.Format(-1) }

// Result contains the screening constant, the effective nuclear charge and the
// screening percentage obtained with one method for one orbital.
// The three quantities are valid only if Status is Computed.
type Result struct {
	Orbital   Orbital
	Method    Method
	Status    Status
	Screening Quantity //S
	Zeff      Quantity //Z-S
	Percent   Quantity //100*S/Z
}

func (r Result) String() string {
	return fmt.Sprintf("%s %s Zeff: %s S: %s %%S: %s", r.Orbital, r.Method, r.Zeff.Format(4), r.Screening.Format(4), r.Percent.Format(2))
}

func computed(o Orbital, m Method, z, s, zeff float64) Result {
	return Result{Orbital: o, Method: m, Status: Computed, Screening: valid(s), Zeff: valid(zeff), Percent: valid(100 * s / z)}
}

func missing(o Orbital, m Method, st Status) Result {
	return Result{Orbital: o, Method: m, Status: st}
}

// Slater returns, for each orbital in orbs, in the same order, the screening
// constant given by Slater's rules for el, and the Zeff and screening percentage
// derived from it. It returns an error if the element data cannot give the
// screening for one of the orbitals.
func Slater(el Element, orbs []Orbital) ([]Result, error) {
	z := el.AtomicNumber()
	if z < 1 {
		return nil, newCError("Slater", "invalid atomic number %d for %s", z, el.Symbol())
	}
	fz := float64(z)
	ret := make([]Result, 0, len(orbs))
	for _, o := range orbs {
		s, err := el.SlaterScreening(o.N, o.Letter)
		if err != nil {
			return nil, errDecorate(err, "Slater")
		}
		ret = append(ret, computed(o, MethodSlater, fz, s, fz-s))
	}
	return ret, nil
}

// Clementi returns, for each orbital in orbs, in the same order, the Zeff fitted
// by Clementi and Raimondi for el, and the screening constant and percentage
// derived from it. For elements beyond the parametrization (Z>=87) all the
// results are Inapplicable. Orbitals for which the data source has no value
// are Untabulated. Neither case is an error.
func Clementi(el Element, orbs []Orbital) []Result {
	z := el.AtomicNumber()
	ret := make([]Result, 0, len(orbs))
	if z < 1 || z >= elements.ClementiMaxZ {
		for _, o := range orbs {
			ret = append(ret, missing(o, MethodClementi, Inapplicable))
		}
		return ret
	}
	fz := float64(z)
	for _, o := range orbs {
		zeff, ok := el.ClementiZeff(o.N, o.Letter)
		if !ok {
			ret = append(ret, missing(o, MethodClementi, Untabulated))
			continue
		}
		ret = append(ret, computed(o, MethodClementi, fz, fz-zeff, zeff))
	}
	return ret
}

// SlaterFor obtains the element id from src and returns the Slater results for
// all its orbitals, in filling order.
func SlaterFor(src ElementSource, id string) ([]Result, error) {
	el, err := src.Element(id)
	if err != nil {
		return nil, errDecorate(err, "SlaterFor")
	}
	r, err := Slater(el, OrbitalsOf(el))
	return r, errDecorate(err, "SlaterFor")
}

// ClementiFor obtains the element id from src and returns the Clementi results
// for all its orbitals, in filling order.
func ClementiFor(src ElementSource, id string) ([]Result, error) {
	el, err := src.Element(id)
	if err != nil {
		return nil, errDecorate(err, "ClementiFor")
	}
	return Clementi(el, OrbitalsOf(el)), nil
}

// Compute runs the method m. See Slater and Clementi.
func Compute(m Method, el Element, orbs []Orbital) ([]Result, error) {
	switch m {
	case MethodSlater:
		return Slater(el, orbs)
	case MethodClementi:
		return Clementi(el, orbs), nil
	}
	return nil, newCError("Compute", "unknown method %v", m)
}

// AllValid returns true if every result in res was computed.
func AllValid(res []Result) bool {
	for _, r := range res {
		if r.Status != Computed {
			return false
		}
	}
	return true
}
