/*
 * configuration.go, part of goZeff.
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

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Letters lists the subshell letters in order of increasing l.
// Only the first four are classified by the rest of the library.
const Letters = "spdfghik"

// Subshell is one entry of an electron configuration.
type Subshell struct {
	N         int    //principal quantum number
	L         string //subshell letter
	Electrons int
}

// Label returns the nl notation for the subshell, i.e. "2p".
func (s Subshell) Label() string {
	return strconv.Itoa(s.N) + s.L
}

// LIndex returns the position of letter in Letters, or -1.
func LIndex(letter string) int {
	if len(letter) != 1 {
		return -1
	}
	return strings.IndexByte(Letters, letter[0])
}

var subshellRe = regexp.MustCompile(`^([1-9][0-9]*)([a-z])([0-9]+)$`)

//maximum nesting of noble gas cores, [Rn] needs 5.
const maxCoreDepth = 8

// ParseConfiguration parses a configuration in the usual notation,
// with optional noble gas cores between brackets, e.g. "[Ar] 3d6 4s2".
// The subshells are returned in filling (Madelung) order: increasing n+l,
// and increasing n for equal n+l. The order in the string is irrelevant.
func ParseConfiguration(conf string) ([]Subshell, error) {
	subs, err := expand(conf, 0)
	if err != nil {
		return nil, errDecorate(err, "ParseConfiguration")
	}
	seen := make(map[string]bool, len(subs))
	for _, s := range subs {
		if seen[s.Label()] {
			return nil, newError(fmt.Sprintf("subshell %s appears more than once in %q", s.Label(), conf), "", nil)
		}
		seen[s.Label()] = true
	}
	MadelungSort(subs)
	return subs, nil
}

func expand(conf string, depth int) ([]Subshell, error) {
	if depth > maxCoreDepth {
		return nil, newError(fmt.Sprintf("too many nested cores in %q", conf), "", nil)
	}
	fields := strings.Fields(conf)
	if len(fields) == 0 {
		return nil, newError("empty configuration", "", nil)
	}
	subs := make([]Subshell, 0, 20)
	for _, f := range fields {
		if strings.HasPrefix(f, "[") && strings.HasSuffix(f, "]") {
			core, ok := nobleCores[strings.Trim(f, "[]")]
			if !ok {
				return nil, newError(fmt.Sprintf("unknown core %s", f), "", nil)
			}
			inner, err := expand(core, depth+1)
			if err != nil {
				return nil, err
			}
			subs = append(subs, inner...)
			continue
		}
		s, err := parseSubshell(f)
		if err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, nil
}

func parseSubshell(token string) (Subshell, error) {
	m := subshellRe.FindStringSubmatch(token)
	if m == nil {
		return Subshell{}, newError(fmt.Sprintf("malformed subshell %q", token), "", nil)
	}
	n, _ := strconv.Atoi(m[1])
	e, _ := strconv.Atoi(m[3])
	l := LIndex(m[2])
	switch {
	case l < 0:
		return Subshell{}, newError(fmt.Sprintf("unknown subshell letter in %q", token), "", nil)
	case l >= n:
		return Subshell{}, newError(fmt.Sprintf("subshell %q not allowed for n=%d", token, n), "", nil)
	case e < 1 || e > 2*(2*l+1):
		return Subshell{}, newError(fmt.Sprintf("invalid occupancy in %q", token), "", nil)
	}
	return Subshell{N: n, L: m[2], Electrons: e}, nil
}

// MadelungSort sorts the subshells in place in filling order.
func MadelungSort(subs []Subshell) {
	sort.SliceStable(subs, func(i, j int) bool {
		li, lj := LIndex(subs[i].L), LIndex(subs[j].L)
		if subs[i].N+li != subs[j].N+lj {
			return subs[i].N+li < subs[j].N+lj
		}
		return subs[i].N < subs[j].N
	})
}

// FormatConfiguration writes the subshells in the usual notation, without
// cores, in the order given.
func FormatConfiguration(subs []Subshell) string {
	parts := make([]string, 0, len(subs))
	for _, s := range subs {
		parts = append(parts, s.Label()+strconv.Itoa(s.Electrons))
	}
	return strings.Join(parts, " ")
}
