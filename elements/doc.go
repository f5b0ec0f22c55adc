/*
 * doc.go, part of goZeff.
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

/*
Package elements is the periodic table behind goZeff. It provides, for each
element, the atomic number, the ground state electron configuration (in filling
order), the screening constants given by Slater's rules and the effective
nuclear charges fitted by Clementi and Raimondi.

The bundled table (Default) has all 118 elements, and Clementi-Raimondi values
from H to Kr. More values (or corrected configurations) can be read from a YAML
dataset, optionally gzip or zstd compressed, and merged over the bundled table:

	elements:
	  - symbol: Rb
	    clementi: {"5s": 4.985}

Lookups are by exact, case-sensitive, name or symbol.
*/
package elements
