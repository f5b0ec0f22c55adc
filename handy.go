/*
 * handy.go, part of goZeff.
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
	"strings"
)

// CError is the error returned by the calculations in this package when the
// element data is not usable.
type CError struct {
	msg  string
	deco []string
}

func (err *CError) Error() string {
	if len(err.deco) == 0 {
		return err.msg
	}
	return strings.Join(err.deco, ": ") + ": " + err.msg
}

// Decorate adds dec to the front of the error's decoration, unless dec is
// empty, and returns the decoration.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append([]string{dec}, err.deco...)
	}
	return err.deco
}

func newCError(caller, format string, a ...any) *CError {
	return &CError{msg: fmt.Sprintf(format, a...), deco: []string{caller}}
}

// errDecorate adds the caller's name to err if err is one of the errors
// of this library, and returns err.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
	}
	return err
}

// isIn returns true if test is in container.
func isIn(container []string, test string) bool {
	for _, v := range container {
		if v == test {
			return true
		}
	}
	return false
}
