/*
 * slater.go, part of goZeff.
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

package elements

import "fmt"

//Slater's contributions to the screening constant.
const (
	sameGroup1s   = 0.30
	sameGroup     = 0.35
	innerShell    = 0.85 //electrons in shell n-1, for s and p electrons
	deepShell     = 1.00
	leftOfNonSP   = 1.00 //everything to the left of a d or f group
	rightOfTarget = 0.0
)

//slaterGroup identifies one of Slater's groups:
//[1s][2s,2p][3s,3p][3d][4s,4p][4d][4f][5s,5p][5d]...
//s and p share rank 0, other letters have their l as rank.
type slaterGroup struct {
	n    int
	rank int
}

func groupOf(n int, letter string) slaterGroup {
	l := LIndex(letter)
	if l <= 1 {
		l = 0
	}
	return slaterGroup{n: n, rank: l}
}

//before returns true if g lies to the left of h in Slater's ordering.
func (g slaterGroup) before(h slaterGroup) bool {
	if g.n != h.n {
		return g.n < h.n
	}
	return g.rank < h.rank
}

func (g slaterGroup) sp() bool { return g.rank == 0 }

// SlaterScreening returns the screening constant that Slater's rules assign
// to an electron in the subshell (n, letter) of the element. It is an error
// to ask for a subshell with no electrons.
func (E *Element) SlaterScreening(n int, letter string) (float64, error) {
	if _, ok := E.subshell(n, letter); !ok {
		return 0, newError(fmt.Sprintf("no electrons in %d%s for %s", n, letter, E.symbol), "", nil)
	}
	target := groupOf(n, letter)
	var s float64
	for _, sub := range E.conf {
		g := groupOf(sub.N, sub.L)
		ne := float64(sub.Electrons)
		switch {
		case g == target:
			if sub.N == n && sub.L == letter {
				ne-- //the electron itself
			}
			if n == 1 {
				s += ne * sameGroup1s
			} else {
				s += ne * sameGroup
			}
		case g.before(target) && !target.sp():
			s += ne * leftOfNonSP
		case g.before(target) && sub.N == n-1:
			s += ne * innerShell
		case g.before(target):
			s += ne * deepShell
		default:
			s += ne * rightOfTarget
		}
	}
	return s, nil
}
