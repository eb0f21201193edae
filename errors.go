/*
 * errors.go, part of gonerdss.
 *
 * Copyright 2024 The gonerdss Authors
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

package nerdss

import (
	"errors"
	"fmt"
	"strings"
)

// The expected failure kinds. Errors returned by the package wrap one of
// these, so they can be checked with errors.Is.
var (
	ErrParse              = errors.New("unreadable ATOM record")
	ErrSingleChain        = errors.New("fewer than two chains in structure, no interaction is possible")
	ErrAmbiguousNormal    = errors.New("normal vector collinear with the COM-to-site vector")
	ErrDegenerateGeometry = errors.New("COM-to-site vector parallel to the normal vector")
	ErrInvalidInput       = errors.New("invalid input")
	ErrIO                 = errors.New("input/output error")
)

// CError is the general error type of the package. It fullfills the Error interface.
type CError struct {
	msg      string
	kind     error
	deco     []string
	critical bool
}

func newCError(kind error, msg string, caller string) *CError {
	return &CError{msg: msg, kind: kind, deco: []string{caller}, critical: true}
}

// Error returns a string with an error message.
func (err *CError) Error() string {
	if err.msg == "" {
		return fmt.Sprintf("gonerdss: %v", err.kind)
	}
	return fmt.Sprintf("gonerdss: %v: %s", err.kind, err.msg)
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical return whether the error is critical or it can be ignored
func (err *CError) Critical() bool { return err.critical }

func (err *CError) Unwrap() error { return err.kind }

// ParseError is returned when an ATOM record can't be reconciled with
// any of the known field layouts.
type ParseError struct {
	Line   int    //1-based line number in the input
	Text   string //the offending line
	Reason string
	deco   []string
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("gonerdss: line %d: %s: %q", err.Line, err.Reason, strings.TrimRight(err.Text, "\r\n"))
}

// Decorate adds new information to the error
func (err *ParseError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical is always true for parse errors, no partial structure is returned.
func (err *ParseError) Critical() bool { return true }

func (err *ParseError) Unwrap() error { return ErrParse }

// GeometryError is returned when the binding geometry of an interaction can't be
// represented, because the COM-to-site vector of one or both sides is parallel to
// the normal vector of that side.
type GeometryError struct {
	Chain1, Chain2 string
	Sides          []int //1, 2 or both
	deco           []string
}

func (err *GeometryError) Error() string {
	names := []string{err.Chain1, err.Chain2}
	s := make([]string, 0, len(err.Sides))
	for _, v := range err.Sides {
		name := names[v-1]
		if name == "" {
			name = fmt.Sprint(v)
		}
		s = append(s, name)
	}
	return fmt.Sprintf("gonerdss: %v for side(s) %s", ErrDegenerateGeometry, strings.Join(s, ", "))
}

// Decorate adds new information to the error
func (err *GeometryError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical is always true, the whole conversion is aborted.
func (err *GeometryError) Critical() bool { return true }

func (err *GeometryError) Unwrap() error { return ErrDegenerateGeometry }

// errDecorate adds the caller's name to err, if err implements Error,
// and returns it. Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
