/*
 * angles.go, part of gonerdss.
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
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Geometry is the binding geometry of one interaction: two polar angles
// (Theta1, Theta2), two torsion angles (Phi1, Phi2), one dihedral (Omega),
// all in radians, and the distance between the two interaction sites (Sigma).
// Phi1 or Phi2 are NaN when the COM-to-site vector of that side is parallel
// to the site-to-site vector, and the torsion is not defined.
type Geometry struct {
	Theta1, Theta2 float64
	Phi1, Phi2     float64
	Omega          float64
	Sigma          float64
}

// Angles returns the five angles in the order theta1, theta2, phi1, phi2, omega.
func (G Geometry) Angles() [5]float64 {
	return [5]float64{G.Theta1, G.Theta2, G.Phi1, G.Phi2, G.Omega}
}

func (G Geometry) String() string {
	return fmt.Sprintf("theta1: %.4f theta2: %.4f phi1: %s phi2: %s omega: %.4f sigma: %.4f",
		G.Theta1, G.Theta2, FormatAngle(G.Phi1), FormatAngle(G.Phi2), G.Omega, G.Sigma)
}

// FormatAngle formats an angle for the output files. NaN is written as nan.
func FormatAngle(a float64) string {
	if math.IsNaN(a) {
		return "nan"
	}
	return fmt.Sprintf("%.6f", a)
}

// BindingAngles returns the binding geometry of two chains, given their centers of mass,
// the interaction sites of each, and a normal point for each. Only the direction of each
// normal point from its COM is used. All the points must be in the same frame.
// If the COM-to-site vector of one or both sides is parallel to its normal vector, a
// *GeometryError listing the failing sides is returned.
func BindingAngles(com1, com2, site1, site2, norm1, norm2 r3.Vec) (Geometry, error) {
	var G Geometry
	v1 := r3.Sub(site1, com1)
	v2 := r3.Sub(site2, com2)
	sigma1 := r3.Sub(site1, site2)
	sigma2 := r3.Scale(-1, sigma1)
	n1 := Unit(r3.Sub(norm1, com1))
	n2 := Unit(r3.Sub(norm2, com2))
	var sides []int
	if Parallel(v1, n1) {
		sides = append(sides, 1)
	}
	if Parallel(v2, n2) {
		sides = append(sides, 2)
	}
	if len(sides) > 0 {
		return G, &GeometryError{Sides: sides, deco: []string{"BindingAngles"}}
	}
	var ok1, ok2 bool
	G.Theta1, ok1 = acos(r3.Dot(Unit(v1), Unit(sigma1)))
	G.Theta2, ok2 = acos(r3.Dot(Unit(v2), Unit(sigma2)))
	if !ok1 || !ok2 {
		return G, newCError(ErrInvalidInput, "polar angle out of domain", "BindingAngles")
	}
	//Both sides use sigma1 as the reference for the parallel check, the sign
	//of the torsion and the omega vector.
	var t1, t2 r3.Vec
	var err error
	G.Phi1, t1, err = torsion(v1, sigma1, sigma1, n1)
	if err != nil {
		return G, errDecorate(err, "BindingAngles")
	}
	G.Phi2, t2, err = torsion(v2, sigma2, sigma1, n2)
	if err != nil {
		return G, errDecorate(err, "BindingAngles")
	}
	var ok bool
	G.Omega, ok = acos(r3.Dot(t1, t2))
	if !ok {
		return G, newCError(ErrInvalidInput, "omega out of domain", "BindingAngles")
	}
	a := r3.Cross(sigma1, t1)
	b := r3.Cross(sigma1, t2)
	if aligned(r3.Cross(a, b), sigma1) {
		G.Omega = -G.Omega
	}
	G.Sigma = r3.Norm(sigma1)
	return G, nil
}

// torsion returns the torsion angle of the normal vector n around the COM-to-site
// vector v, measured from the plane defined by v and the site-to-site vector
// sigma, and the vector used for the omega angle. ref is the reference site-to-site
// vector for the parallel check, the sign and the omega vector.
// If ref is parallel to v, the torsion is NaN, and the omega vector is built from n.
func torsion(v, sigma, ref, n r3.Vec) (float64, r3.Vec, error) {
	if Parallel(ref, v) {
		return math.NaN(), Unit(r3.Cross(ref, n)), nil
	}
	t1 := Unit(r3.Cross(v, sigma))
	t2 := Unit(r3.Cross(v, n))
	phi, ok := acos(r3.Dot(t1, t2))
	if !ok {
		return phi, r3.Vec{}, newCError(ErrInvalidInput, "torsion out of domain", "torsion")
	}
	nproj := PlaneProjection(n, v)
	sproj := PlaneProjection(ref, v)
	if aligned(r3.Cross(sproj, nproj), v) {
		phi = -phi
	}
	return phi, Unit(r3.Cross(ref, v)), nil
}
