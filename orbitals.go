/*
 * orbitals.go, part of goZeff.
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
	"strconv"
)

// UnknownL is the azimuthal quantum number given to orbitals whose letter is
// not one of s, p, d, f (g orbitals and beyond).
const UnknownL = -1

var azimuthal = map[string]int{"s": 0, "p": 1, "d": 2, "f": 3}

// Orbital is one occupied subshell of an element.
type Orbital struct {
	N      int    //principal quantum number
	Letter string //s, p, d, f or other
	L      int    //azimuthal quantum number, UnknownL if Letter is not s, p, d or f
	Label  string //nl notation, i.e. "2p"
}

// NewOrbital returns the orbital for the given n and letter.
func NewOrbital(n int, letter string) Orbital {
	l, ok := azimuthal[letter]
	if !ok {
		l = UnknownL
	}
	return Orbital{N: n, Letter: letter, L: l, Label: strconv.Itoa(n) + letter}
}

func (o Orbital) String() string { return o.Label }

// Orbitals returns the orbitals of the element with name or symbol id, in
// the order given by the source (filling order for the bundled data). If the
// element is not found, the error from the source is returned, decorated.
func Orbitals(src ElementSource, id string) ([]Orbital, error) {
	el, err := src.Element(id)
	if err != nil {
		return nil, errDecorate(err, "Orbitals")
	}
	return OrbitalsOf(el), nil
}

// OrbitalsOf returns the orbitals of el, in the order of its configuration.
func OrbitalsOf(el Element) []Orbital {
	conf := el.Configuration()
	ret := make([]Orbital, 0, len(conf))
	for _, s := range conf {
		ret = append(ret, NewOrbital(s.N, s.L))
	}
	return ret
}

// SortOrbitals returns a copy of orbs sorted by n and then l. The sort is stable.
// Orbitals with UnknownL come first among those with the same n.
func SortOrbitals(orbs []Orbital) []Orbital {
	ret := make([]Orbital, len(orbs))
	copy(ret, orbs)
	sort.SliceStable(ret, func(i, j int) bool { return orbitalLess(ret[i], ret[j]) })
	return ret
}

func orbitalLess(a, b Orbital) bool {
	if a.N != b.N {
		return a.N < b.N
	}
	return a.L < b.L
}
