/*
 * prompt_test.go, part of gonerdss.
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
	"bytes"
	"errors"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestConsoleNormal(Te *testing.T) {
	var out bytes.Buffer
	C := NewConsole(strings.NewReader("\n1 2\n[0, 1, 0]\nx y z\n1,1,0\n"), &out)
	q := NormalQuery{Chain: "A", Partner: "B", Site: r3.Vec{X: 1}}
	n, err := C.Normal(q)
	if err != nil || n != (r3.Vec{Z: 1}) {
		Te.Errorf("an empty answer should give the default, got %v %v", n, err)
	}
	n, err = C.Normal(q)
	if err != nil || n != (r3.Vec{Y: 1}) {
		Te.Errorf("expected (0,1,0) after a bad answer, got %v %v", n, err)
	}
	q.Rejected = ErrAmbiguousNormal
	n, err = C.Normal(q)
	if err != nil || n != (r3.Vec{X: 1, Y: 1}) {
		Te.Errorf("expected (1,1,0), got %v %v", n, err)
	}
	Te.Log(out.String())
	if strings.Count(out.String(), "please try again") != 2 {
		Te.Error("each bad answer should be asked again")
	}
	if !strings.Contains(out.String(), "Rejected") {
		Te.Error("the reason for a rejection should be shown")
	}
	if _, err := C.Normal(q); !errors.Is(err, ErrInvalidInput) {
		Te.Errorf("expected an error at the end of the input, got %v", err)
	}
}

func TestConsoleSigma(Te *testing.T) {
	var out bytes.Buffer
	C := NewConsole(strings.NewReader("abc\n-1\n0.5\n\n"), &out)
	q := SigmaQuery{Chain1: "A", Chain2: "B", Sigma: 0.25}
	d, ok, err := C.Sigma(q)
	if err != nil || !ok || d != 0.5 {
		Te.Errorf("expected 0.5, got %f %v %v", d, ok, err)
	}
	if _, ok, err = C.Sigma(q); err != nil || ok {
		Te.Errorf("an empty answer should keep sigma, got %v %v", ok, err)
	}
	if strings.Count(out.String(), "not a positive number") != 2 {
		Te.Errorf("bad answers should be asked again:\n%s", out.String())
	}
}

// The Console works as the Provider of a conversion.
func TestConsoleConvert(Te *testing.T) {
	var out bytes.Buffer
	//keep sigma, default normal for A, an invalid normal for B, then a valid one.
	C := NewConsole(strings.NewReader("\n\n1 -2 0\n0 1 1\n"), &out)
	opts := DefaultOptions()
	opts.Provider = C
	M, err := Convert(dimer(Te), opts)
	if err != nil {
		Te.Fatal(err)
	}
	n := M.Bindings[0].Normals[1]
	if !vecClose(n, Unit(r3.Vec{Y: 1, Z: 1}), 1e-12) {
		Te.Errorf("wrong normal for B: %v", n)
	}
}
