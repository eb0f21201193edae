/*
 * v3_test.go, part of gonerdss.
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

package v3

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestNewMatrix(Te *testing.T) {
	_, err := NewMatrix([]float64{1, 2, 3, 4})
	if err == nil {
		Te.Error("expected an error for a slice not divisible by 3")
	}
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("expected 3 vectors, got %d", A.NVecs())
	}
	fmt.Println(A)
	A.SetVec(1, r3.Vec{X: 100, Y: 5, Z: 6})
	if A.At(1, 0) != 100 {
		Te.Error("SetVec did not change the matrix")
	}
}

func TestSomeVecs(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18})
	if err != nil {
		Te.Fatal(err)
	}
	B := Zeros(3)
	if err := B.SomeVecsSafe(A, []int{1, 3, 5}); err != nil {
		Te.Error(err)
	}
	if B.Vec(2) != (r3.Vec{X: 16, Y: 17, Z: 18}) {
		Te.Errorf("wrong vector selected: %v", B.Vec(2))
	}
	C := Zeros(2)
	if err := C.SomeVecsSafe(A, []int{1, 30}); err == nil {
		Te.Error("expected an error for an out of range index")
	}
}

func TestMeanAndDist(Te *testing.T) {
	A, err := NewMatrix([]float64{0, 0, 0, 1, 2, 3, 2, 4, 6})
	if err != nil {
		Te.Fatal(err)
	}
	m := A.Mean()
	if m != (r3.Vec{X: 1, Y: 2, Z: 3}) {
		Te.Errorf("wrong mean: %v", m)
	}
	if d := A.Dist(0, A, 2); math.Abs(d-math.Sqrt(56)) > 1e-12 {
		Te.Errorf("wrong distance %f", d)
	}
}
