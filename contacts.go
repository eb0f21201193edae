/*
 * contacts.go, part of gonerdss.
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
	"github.com/nerdss/gonerdss/histo"
)

// ContactHistograms returns a chain-by-chain matrix of histograms of the distances
// between contacting atoms, for the interactions ints of S. The (i,j) and (j,i)
// elements hold the contacts between the ith and jth chains of S.
// If dividers is nil, 10 bins from 0 to DefaultCutoff are used.
func ContactHistograms(S *Structure, ints []*Interaction, dividers []float64) *histo.Matrix {
	if dividers == nil {
		dividers = histo.Dividers(0, DefaultCutoff, 10)
	}
	M := histo.NewMatrix(S.IDs(), dividers)
	for _, in := range ints {
		i := M.Index(in.Chains[0])
		j := M.Index(in.Chains[1])
		if i < 0 || j < 0 {
			continue
		}
		M.AddData(i, j, in.Distances()...)
	}
	return M
}
