/*
 * errors.go, part of goZeff.
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
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is matched (with errors.Is) by every error returned when an
// identifier is neither the name nor the symbol of a known element.
var ErrNotFound = errors.New("element not found")

// NotFoundError is returned by Table.Element for unknown identifiers.
type NotFoundError struct {
	Identifier string
	deco       []string
}

func (err *NotFoundError) Error() string {
	msg := fmt.Sprintf("invalid element name or symbol: %q", err.Identifier)
	if len(err.deco) > 0 {
		msg = strings.Join(err.deco, ": ") + ": " + msg
	}
	return msg
}

// Is makes errors.Is(err, ErrNotFound) true.
func (err *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Decorate adds the caller name to the error and returns the decoration so far.
// An empty string just returns the current decoration.
func (err *NotFoundError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append([]string{deco}, err.deco...)
	}
	return err.deco
}

// Error is the general structure for dataset errors: malformed configurations,
// inconsistent records and unreadable files. filename is empty when the
// problem is not tied to a file.
type Error struct {
	message  string
	filename string
	deco     []string
	err      error
}

func (err *Error) Error() string {
	var b strings.Builder
	if len(err.deco) > 0 {
		b.WriteString(strings.Join(err.deco, ": "))
		b.WriteString(": ")
	}
	if err.filename != "" {
		fmt.Fprintf(&b, "dataset %s: ", err.filename)
	}
	b.WriteString(err.message)
	if err.err != nil {
		b.WriteString(": ")
		b.WriteString(err.err.Error())
	}
	return b.String()
}

func (err *Error) Unwrap() error { return err.err }

// FileName returns the dataset file associated to the error, if any.
func (err *Error) FileName() string { return err.filename }

// Decorate adds new information to the error.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append([]string{deco}, err.deco...)
	}
	return err.deco
}

func newError(message, filename string, cause error) *Error {
	return &Error{message: message, filename: filename, err: cause}
}

// errDecorate decorates err with the caller's name if err is one of this
// package's errors, and returns it unchanged otherwise.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if d, ok := err.(interface{ Decorate(string) []string }); ok {
		d.Decorate(caller)
	}
	return err
}
