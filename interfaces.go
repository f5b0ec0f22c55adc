/*
 * interfaces.go, part of goZeff.
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

import "github.com/rmera/zeff/elements"

// Element is the interface for the atomic data needed by the calculations.
// Implementations must be safe for concurrent reads.
type Element interface {
	//Atomic number, always >0.
	AtomicNumber() int

	Symbol() string

	Name() string

	//Returns the occupied subshells, in filling order.
	Configuration() []elements.Subshell

	//Screening constant given by Slater's rules for an electron in the
	//subshell n,letter. Returns an error if the subshell is empty.
	SlaterScreening(n int, letter string) (float64, error)

	//Clementi-Raimondi Zeff for the subshell n,letter, and false if there is
	//no such value.
	ClementiZeff(n int, letter string) (float64, bool)
}

// ElementSource finds elements by name or symbol.
type ElementSource interface {
	//Element returns the element whose name or symbol is id.
	//Unknown identifiers give an error that matches ErrElementNotFound.
	Element(id string) (Element, error)
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Adds the caller's name to the error. Returns the current decoration. If passed an empty string, it just returns the current value.
}

// ErrElementNotFound is matched, through errors.Is, by the errors given for unknown element identifiers.
var ErrElementNotFound = elements.ErrNotFound

type tableSource struct {
	t *elements.Table
}

func (s tableSource) Element(id string) (Element, error) {
	e, err := s.t.Element(id)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// FromTable returns an ElementSource backed by the given table.
func FromTable(t *elements.Table) ElementSource {
	return tableSource{t}
}

// Bundled returns an ElementSource backed by the bundled periodic table.
func Bundled() ElementSource {
	return tableSource{elements.Default()}
}
