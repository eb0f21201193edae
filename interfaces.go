/*
 * interfaces.go, part of gonerdss.
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

import "gonum.org/v1/gonum/spatial/r3"

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call also returns the "decoration" slice of strings resulting from the current call. If passed an empty string, it just returns the current value.
	Critical() bool
}

// Provider supplies the values that can't be derived from the structure
// alone. The caller of a Provider always validates the answer, and asks again
// if it is rejected, so implementations only need to obtain a value.
// Convert asks for each value at most Options.MaxAsk times (DefaultMaxAsk if
// not set) and then fails with the last rejection.
type Provider interface {

	//Normal returns the direction, relative to the COM of the chain in q,
	//of the normal vector for that side of the binding site. Only the
	//direction matters, the length is ignored.
	Normal(q NormalQuery) (r3.Vec, error)

	//Sigma returns a new site distance for the interaction described in q,
	//and false if the current distance is to be kept.
	Sigma(q SigmaQuery) (float64, bool, error)
}

// NormalQuery describes one side of an interaction for which a normal
// vector is requested. Rejected is not nil if a previous answer was
// rejected, and explains why.
type NormalQuery struct {
	Chain    string
	Partner  string
	COM      r3.Vec
	Site     r3.Vec
	Rejected error
}

// SigmaQuery describes an interaction for which a new site distance
// may be requested.
type SigmaQuery struct {
	Chain1, Chain2 string
	Sigma          float64
	Rejected       error
}
