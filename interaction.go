/*
 * interaction.go, part of gonerdss.
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
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultCutoff is the contact distance, in nm, between two atoms of
// different chains.
const DefaultCutoff = 0.3

// Contact is one pair of atoms, one from each chain, closer than the cutoff.
type Contact struct {
	Atoms  [2]int    //structure-wide atom indexes (Atom.Index)
	Names  [2]string //atom types
	ResIDs [2]int
	Dist   float64
}

// ResiduePair is a unique pair of contacting residues, one from each chain.
type ResiduePair struct {
	ResIDs   [2]int
	ResNames [2]string
	CA       [2]r3.Vec //representative (alpha carbon) positions
}

// Interaction is the contact between two chains. Residues holds each
// contacting residue pair once, in the order in which they were first
// found, while Contacts keeps every atom pair found.
type Interaction struct {
	Chains   [2]string
	Residues []ResiduePair
	Contacts []Contact
}

// FindInteractions checks every pair of chains in S, in the order in which
// they appear in the structure, and returns one Interaction for each pair
// with at least one pair of atoms closer than, or at, cutoff.
// If cutoff is not positive, DefaultCutoff is used.
func FindInteractions(S *Structure, cutoff float64) []*Interaction {
	if cutoff <= 0 {
		cutoff = DefaultCutoff
	}
	ret := make([]*Interaction, 0, len(S.Chains))
	for i, c1 := range S.Chains {
		for _, c2 := range S.Chains[i+1:] {
			if in := chainContacts(c1, c2, cutoff); in != nil {
				ret = append(ret, in)
			}
		}
	}
	return ret
}

// chainContacts does the brute force atom-by-atom comparison between c1 and c2
// and returns nil if nothing is within cutoff.
func chainContacts(c1, c2 *Chain, cutoff float64) *Interaction {
	var in *Interaction
	seen := make(map[[2]int]bool)
	for i := 0; i < c1.Len(); i++ {
		for j := 0; j < c2.Len(); j++ {
			d := c1.Coords.Dist(i, c2.Coords, j)
			if d > cutoff {
				continue
			}
			if in == nil {
				in = &Interaction{Chains: [2]string{c1.ID, c2.ID}}
			}
			a1 := c1.Atoms[i]
			a2 := c2.Atoms[j]
			in.Contacts = append(in.Contacts, Contact{
				Atoms:  [2]int{a1.Index, a2.Index},
				Names:  [2]string{a1.Name, a2.Name},
				ResIDs: [2]int{a1.ResID, a2.ResID},
				Dist:   d,
			})
			key := [2]int{a1.ResID, a2.ResID}
			if seen[key] {
				continue
			}
			seen[key] = true
			in.Residues = append(in.Residues, ResiduePair{
				ResIDs:   key,
				ResNames: [2]string{a1.ResName, a2.ResName},
				CA:       [2]r3.Vec{c1.ResiduePos(i), c2.ResiduePos(j)},
			})
		}
	}
	return in
}

// Side returns the distinct contacting residues of one side (0 or 1) of
// the interaction, each only once, in order of appearance.
func (in *Interaction) Side(side int) []ResiduePosition {
	if side != 0 && side != 1 {
		panic("Interaction: side must be 0 or 1")
	}
	seen := make(map[int]bool)
	ret := make([]ResiduePosition, 0, len(in.Residues))
	for _, rp := range in.Residues {
		if seen[rp.ResIDs[side]] {
			continue
		}
		seen[rp.ResIDs[side]] = true
		ret = append(ret, ResiduePosition{ResID: rp.ResIDs[side], ResName: rp.ResNames[side], Pos: rp.CA[side]})
	}
	return ret
}

// Distances returns the distances of all the atom contacts in the interaction.
func (in *Interaction) Distances() []float64 {
	ret := make([]float64, len(in.Contacts))
	for i, c := range in.Contacts {
		ret[i] = c.Dist
	}
	return ret
}

// Has returns true if chain id is one of the two chains in the interaction.
func (in *Interaction) Has(id string) bool {
	return in.Chains[0] == id || in.Chains[1] == id
}
