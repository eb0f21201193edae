/*
 * atoms.go, part of gonerdss.
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
	"log"

	v3 "github.com/nerdss/gonerdss/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

// CAName is the atom name of the alpha carbon, which represents its residue.
const CAName = "CA"

// Atom contains the information read from one ATOM record, except for the
// coordinates, which are kept in the Coords matrix of the Chain.
type Atom struct {
	Index   int    //0-based position of the atom in the structure
	ID      int    //serial number in the file
	Name    string //atom type, e.g. CA
	ResName string //3-letter residue name
	ResID   int
	Chain   string
}

// Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	n := *A
	return &n
}

// ResiduePosition is the position of the atom representing a residue,
// normally its alpha carbon.
type ResiduePosition struct {
	ResID   int
	ResName string
	Pos     r3.Vec
	HasCA   bool //false if the residue had no CA and Pos is the mean of its atoms. Only set by Chain.Residues
}

// Chain is an ordered set of atoms sharing one chain identifier. Coordinates are in nm.
type Chain struct {
	ID     string
	Atoms  []*Atom
	Coords *v3.Matrix
	ca     *v3.Matrix //for each atom, the representative position of its residue
	res    []ResiduePosition
}

// NewChain builds a chain from its atoms and coordinates, and resolves
// the representative position for the residue of every atom.
// coords must have one vector per atom.
func NewChain(id string, atoms []*Atom, coords *v3.Matrix) (*Chain, error) {
	if len(atoms) == 0 {
		return nil, newCError(ErrInvalidInput, fmt.Sprintf("chain %s has no atoms", id), "NewChain")
	}
	if coords == nil || coords.NVecs() != len(atoms) {
		return nil, newCError(ErrInvalidInput, fmt.Sprintf("chain %s: mismatched number of atoms/coordinates", id), "NewChain")
	}
	C := &Chain{ID: id, Atoms: atoms, Coords: coords}
	if err := C.resolveResidues(); err != nil {
		return nil, errDecorate(err, "NewChain")
	}
	return C, nil
}

// resolveResidues scans the residues in order and copies the position of
// each alpha carbon to all the atoms that share its residue number. Residues
// without a CA get the mean position of their atoms.
func (C *Chain) resolveResidues() error {
	order := make([]int, 0, len(C.Atoms)/8+1)
	members := make(map[int][]int)
	for i, at := range C.Atoms {
		if _, ok := members[at.ResID]; !ok {
			order = append(order, at.ResID)
		}
		members[at.ResID] = append(members[at.ResID], i)
	}
	C.ca = v3.Zeros(len(C.Atoms))
	C.res = make([]ResiduePosition, 0, len(order))
	for _, resid := range order {
		idx := members[resid]
		rp := ResiduePosition{ResID: resid, ResName: C.Atoms[idx[0]].ResName}
		for _, i := range idx {
			if C.Atoms[i].Name == CAName {
				rp.Pos = C.Coords.Vec(i)
				rp.HasCA = true
			}
		}
		if !rp.HasCA {
			tmp := v3.Zeros(len(idx))
			if err := tmp.SomeVecsSafe(C.Coords, idx); err != nil {
				return errDecorate(err, "resolveResidues")
			}
			rp.Pos = tmp.Mean()
			log.Printf("gonerdss: residue %s%d of chain %s has no %s atom, the mean of its atoms will be used", rp.ResName, resid, C.ID, CAName)
		}
		for _, i := range idx {
			C.ca.SetVec(i, rp.Pos)
		}
		C.res = append(C.res, rp)
	}
	return nil
}

// Len returns the number of atoms in the chain.
func (C *Chain) Len() int {
	return len(C.Atoms)
}

// Atom returns the ith atom of the chain. Panics if out of range.
func (C *Chain) Atom(i int) *Atom {
	if i >= C.Len() {
		panic("Chain: Requested Atom out of bounds")
	}
	return C.Atoms[i]
}

// Coord returns the position of the ith atom of the chain.
func (C *Chain) Coord(i int) r3.Vec {
	return C.Coords.Vec(i)
}

// ResiduePos returns the representative (alpha carbon) position of the
// residue the ith atom belongs to.
func (C *Chain) ResiduePos(i int) r3.Vec {
	return C.ca.Vec(i)
}

// Residues returns the representative positions of the residues of the
// chain, in the order they were first found.
func (C *Chain) Residues() []ResiduePosition {
	ret := make([]ResiduePosition, len(C.res))
	copy(ret, C.res)
	return ret
}

// COM returns the center of mass of the chain, i.e. the mean position
// of all its atoms (all atoms are given the same weight).
func (C *Chain) COM() r3.Vec {
	return C.Coords.Mean()
}

// Structure is a set of chains, in the order in which they first appear
// in the input.
type Structure struct {
	Chains []*Chain
}

// Chain returns the chain with the given ID, or nil if there is none.
func (S *Structure) Chain(id string) *Chain {
	for _, c := range S.Chains {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// IDs returns the chain identifiers, in order.
func (S *Structure) IDs() []string {
	ret := make([]string, 0, len(S.Chains))
	for _, c := range S.Chains {
		ret = append(ret, c.ID)
	}
	return ret
}

// Len returns the total number of atoms in the structure.
func (S *Structure) Len() int {
	n := 0
	for _, c := range S.Chains {
		n += c.Len()
	}
	return n
}
