/*
 * geometric.go, part of gonerdss.
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
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// appzero is the tolerance used for every geometric comparison: norms,
// parallelism and the domain of the arccos.
const appzero float64 = 1e-6

// Unit returns the unit vector in the direction of v. A vector which norm
// is within appzero of 0 gives the zero vector, and one within appzero of 1
// is returned unchanged.
func Unit(v r3.Vec) r3.Vec {
	n := r3.Norm(v)
	if n <= appzero {
		return r3.Vec{}
	}
	if math.Abs(n-1) <= appzero {
		return v
	}
	return r3.Scale(1/n, v)
}

// Parallel returns true if the magnitude of the cross product of a and b is
// below appzero. The vectors are not normalized, so short vectors count as
// parallel more easily. A zero vector is parallel to everything.
func Parallel(a, b r3.Vec) bool {
	return r3.Norm(r3.Cross(a, b)) < appzero
}

// acos is the arccos of a cosine obtained from a dot product. Deviations from
// [-1,1] within appzero are floating point noise and are clamped, larger ones
// return NaN and false.
func acos(c float64) (float64, bool) {
	if c > 1+appzero || c < -1-appzero || math.IsNaN(c) {
		return math.NaN(), false
	}
	return math.Acos(math.Max(-1, math.Min(1, c))), true
}

// Angle takes 2 vectors and returns the angle in radians between them.
// Returns NaN if the angle can't be obtained.
func Angle(v1, v2 r3.Vec) float64 {
	a, _ := acos(r3.Dot(Unit(v1), Unit(v2)))
	return a
}

// Projection returns the projection of test in ref.
func Projection(test, ref r3.Vec) r3.Vec {
	u := Unit(ref)
	return r3.Scale(r3.Dot(test, u), u)
}

// PlaneProjection returns the projection of test on the plane normal to
// the vector normal.
func PlaneProjection(test, normal r3.Vec) r3.Vec {
	return r3.Sub(test, Projection(test, normal))
}

// aligned returns true if v and ref point in the same direction, compared
// component by component after normalizing both.
func aligned(v, ref r3.Vec) bool {
	u := Unit(v)
	r := Unit(ref)
	if r3.Norm(u) < appzero {
		return false
	}
	return math.Abs(u.X-r.X) < appzero && math.Abs(u.Y-r.Y) < appzero && math.Abs(u.Z-r.Z) < appzero
}
