/*
 * json.go, part of gonerdss.
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
	"encoding/json"
	"io"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// JSONBinding is a ready-to-serialize container for a Binding. Undefined
// torsions are null.
type JSONBinding struct {
	Chains   [2]string     `json:"chains"`
	Residues [][2]int      `json:"residues"`
	Contacts int           `json:"contacts"`
	Sites    [2][3]float64 `json:"sites"`
	Normals  [2][3]float64 `json:"normals"`
	Sigma    float64       `json:"sigma"`
	Theta1   float64       `json:"theta1"`
	Theta2   float64       `json:"theta2"`
	Phi1     *float64      `json:"phi1"`
	Phi2     *float64      `json:"phi2"`
	Omega    float64       `json:"omega"`
}

// JSONChain is a ready-to-serialize container for a ChainModel.
type JSONChain struct {
	ID  string     `json:"id"`
	COM [3]float64 `json:"com"`
}

// JSONModel is a ready-to-serialize container for a Model.
type JSONModel struct {
	Centered bool          `json:"centered"`
	Chains   []JSONChain   `json:"chains"`
	Bindings []JSONBinding `json:"bindings"`
}

func arr(v r3.Vec) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func nullable(f float64) *float64 {
	if math.IsNaN(f) {
		return nil
	}
	return &f
}

// ToJSON returns the serializable form of M.
func (M *Model) ToJSON() *JSONModel {
	J := &JSONModel{Centered: M.centered, Chains: make([]JSONChain, 0, len(M.Chains)), Bindings: make([]JSONBinding, 0, len(M.Bindings))}
	for _, c := range M.Chains {
		J.Chains = append(J.Chains, JSONChain{ID: c.ID, COM: arr(c.COM)})
	}
	for _, b := range M.Bindings {
		g := b.Geometry
		jb := JSONBinding{
			Chains:   b.Chains(),
			Contacts: len(b.Interaction.Contacts),
			Sites:    [2][3]float64{arr(b.Site.Points[0]), arr(b.Site.Points[1])},
			Normals:  [2][3]float64{arr(b.Normals[0]), arr(b.Normals[1])},
			Sigma:    b.Site.Sigma,
			Theta1:   g.Theta1,
			Theta2:   g.Theta2,
			Phi1:     nullable(g.Phi1),
			Phi2:     nullable(g.Phi2),
			Omega:    g.Omega,
		}
		for _, r := range b.Interaction.Residues {
			jb.Residues = append(jb.Residues, r.ResIDs)
		}
		J.Bindings = append(J.Bindings, jb)
	}
	return J
}

// WriteJSON writes M to w in JSON format.
func WriteJSON(w io.Writer, M *Model) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(M.ToJSON()); err != nil {
		return newCError(ErrIO, err.Error(), "WriteJSON")
	}
	return nil
}
