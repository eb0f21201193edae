/*
 * prompt.go, part of gonerdss.
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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Console is a Provider that asks the user through a text interface.
// Answers that can't be parsed are asked again.
type Console struct {
	Out     io.Writer
	Default r3.Vec //normal direction given for an empty answer
	in      *bufio.Scanner
}

// NewConsole returns a Console reading answers from in and writing
// the questions to out. The default normal is (0,0,1).
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{Out: out, Default: r3.Vec{X: 0, Y: 0, Z: 1}, in: bufio.NewScanner(in)}
}

// readLine returns the next line from the input, without surrounding spaces.
func (C *Console) readLine() (string, error) {
	if !C.in.Scan() {
		if err := C.in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(C.in.Text()), nil
}

// Normal asks for the normal direction of one side of an interaction. An empty
// answer gives C.Default.
func (C *Console) Normal(q NormalQuery) (r3.Vec, error) {
	if q.Rejected != nil {
		fmt.Fprintf(C.Out, "Rejected: %v\n", q.Rejected)
	}
	v := r3.Sub(q.Site, q.COM)
	for {
		fmt.Fprintf(C.Out, "Chain %s, site binding %s. COM-to-site vector: (%.3f, %.3f, %.3f)\n", q.Chain, q.Partner, v.X, v.Y, v.Z)
		fmt.Fprintf(C.Out, "Normal vector relative to the COM [%g %g %g]: ", C.Default.X, C.Default.Y, C.Default.Z)
		line, err := C.readLine()
		if err != nil {
			return r3.Vec{}, newCError(ErrInvalidInput, err.Error(), "Console.Normal")
		}
		if line == "" {
			return C.Default, nil
		}
		n, err := parseVec(line)
		if err != nil {
			fmt.Fprintf(C.Out, "%v, please try again\n", err)
			continue
		}
		return n, nil
	}
}

// Sigma asks whether the site distance of an interaction is to be changed.
// An empty answer keeps the current one.
func (C *Console) Sigma(q SigmaQuery) (float64, bool, error) {
	if q.Rejected != nil {
		fmt.Fprintf(C.Out, "Rejected: %v\n", q.Rejected)
	}
	for {
		fmt.Fprintf(C.Out, "Sigma for %s-%s is %.4f nm. New value (empty to keep): ", q.Chain1, q.Chain2, q.Sigma)
		line, err := C.readLine()
		if err != nil {
			return 0, false, newCError(ErrInvalidInput, err.Error(), "Console.Sigma")
		}
		if line == "" {
			return 0, false, nil
		}
		d, err := strconv.ParseFloat(line, 64)
		if err != nil || d <= 0 {
			fmt.Fprintf(C.Out, "%q is not a positive number, please try again\n", line)
			continue
		}
		return d, true, nil
	}
}

// parseVec reads 3 numbers, separated by spaces and/or commas, optionally
// in brackets or parentheses.
func parseVec(s string) (r3.Vec, error) {
	s = strings.Trim(s, "[]() ")
	f := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	if len(f) != 3 {
		return r3.Vec{}, fmt.Errorf("expected 3 numbers, got %d", len(f))
	}
	var c [3]float64
	for i, v := range f {
		var err error
		if c[i], err = strconv.ParseFloat(v, 64); err != nil {
			return r3.Vec{}, fmt.Errorf("can't read %q as a number", v)
		}
	}
	return r3.Vec{X: c[0], Y: c[1], Z: c[2]}, nil
}
