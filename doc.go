/*
 * doc.go, part of goZeff.
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
 */

/*Package zeff is the main package of the goZeff library. It computes screening
constants and effective nuclear charges (Zeff) for each orbital of an element,
using two classical approximations.

	**goZeff Capabilities**

    Decomposes the ground state electron configuration of an element in its
	orbitals, in filling order, with their n and l quantum numbers.

    Slater's empirical rules: screening constant S, Zeff=Z-S and the
	screening percentage 100*S/Z for each orbital.

    Clementi-Raimondi SCF values: Zeff for each orbital, and the S and
	percentage derived from it. The parametrization stops at Rn (Z=86);
	for heavier elements the values are reported as inapplicable, not as
	errors.

    Summary tables with both methods for each orbital, sorted by n and l, which
	can be exported as a gonum matrix.

    Charts (package zeffplot), periodic trends (package zeffstat), and the
	element data itself (package elements).

The element data is obtained through the ElementSource interface. Bundled()
returns the source backed by the bundled periodic table; other data sets can
be loaded with the elements package, or provided by any type implementing the
interface.

Every calculation is a pure function of its inputs: nothing is cached and
nothing is shared between calls.*/
package zeff
