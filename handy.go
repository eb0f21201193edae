/*
 * handy.go, part of gonerdss.
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
	"strings"
)

// Deg2Rad converts an angle in degrees to radians.
func Deg2Rad(f float64) float64 {
	return f * math.Pi / 180
}

// Rad2Deg converts an angle in radians to degrees.
func Rad2Deg(f float64) float64 {
	return f * 180 / math.Pi
}

// Degrees returns a copy of G with all the angles in degrees. NaN angles stay NaN.
func (G Geometry) Degrees() Geometry {
	return Geometry{
		Theta1: Rad2Deg(G.Theta1),
		Theta2: Rad2Deg(G.Theta2),
		Phi1:   Rad2Deg(G.Phi1),
		Phi2:   Rad2Deg(G.Phi2),
		Omega:  Rad2Deg(G.Omega),
		Sigma:  G.Sigma,
	}
}

// Select returns a structure with only the chains of S in chains, in the
// order of S. The chains are shared, not copied. If fewer than two chains
// are selected, the structure is returned together with an error wrapping ErrSingleChain.
func (S *Structure) Select(chains []string) (*Structure, error) {
	ret := &Structure{Chains: make([]*Chain, 0, len(chains))}
	for _, c := range S.Chains {
		if isInString(chains, c.ID) {
			ret.Chains = append(ret.Chains, c)
		}
	}
	if len(ret.Chains) < 2 {
		return ret, newCError(ErrSingleChain, "selection "+strings.Join(chains, ","), "Select")
	}
	return ret, nil
}

// isInString returns true if test is in container, false otherwise.
func isInString(container []string, test string) bool {
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}
