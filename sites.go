/*
 * sites.go, part of gonerdss.
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
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Site is the pair of interaction sites of one interaction, one point for
// each chain, and the distance between them.
type Site struct {
	Points [2]r3.Vec
	Sigma  float64
}

// ResolveSite returns the interaction sites of in. Each site is the mean of the
// positions of the distinct contacting residues of that side.
func ResolveSite(in *Interaction) Site {
	var S Site
	for k := 0; k < 2; k++ {
		res := in.Side(k)
		var sum r3.Vec
		for _, r := range res {
			sum = r3.Add(sum, r.Pos)
		}
		S.Points[k] = r3.Scale(1/float64(len(res)), sum)
	}
	S.Sigma = r3.Norm(r3.Sub(S.Points[0], S.Points[1]))
	return S
}

// WithSigma returns a copy of S where the sites are d apart. Each site moves by
// half the difference along the line joining both sites, outwards if d is larger than
// the current distance.
func (S Site) WithSigma(d float64) (Site, error) {
	if d <= 0 {
		return S, newCError(ErrInvalidInput, fmt.Sprintf("sigma must be positive, got %g", d), "WithSigma")
	}
	if S.Sigma <= appzero {
		return S, newCError(ErrInvalidInput, "sites overlap, the direction to move them is undefined", "WithSigma")
	}
	dir := Unit(r3.Sub(S.Points[0], S.Points[1]))
	half := (d - S.Sigma) / 2
	ret := Site{Sigma: d}
	ret.Points[0] = r3.Add(S.Points[0], r3.Scale(half, dir))
	ret.Points[1] = r3.Sub(S.Points[1], r3.Scale(half, dir))
	return ret, nil
}

// ChainModel is one molecule of the reaction-diffusion model.
type ChainModel struct {
	ID  string
	COM r3.Vec
}

// Binding is an interaction between two chains together with everything
// needed to represent it in the reaction-diffusion model. Normals are unit
// directions, relative to the COM of the chain on each side.
type Binding struct {
	Interaction *Interaction
	Site        Site
	Normals     [2]r3.Vec
	Geometry    Geometry
}

// Chains returns the IDs of the chains of the binding.
func (b *Binding) Chains() [2]string {
	return b.Interaction.Chains
}

// LabeledSite is a site of a chain, as seen in the molecule files. The
// Label is the lowercase ID of the partner chain.
type LabeledSite struct {
	Label   string
	Partner string
	Pos     r3.Vec
}

// Model is the reaction-diffusion representation of a structure: one
// molecule per chain and one binding per chain pair in contact.
// All the points of a model are in nm.
type Model struct {
	Chains   []ChainModel
	Bindings []*Binding
	centered bool
}

// Chain returns the molecule with the given ID, or nil.
func (M *Model) Chain(id string) *ChainModel {
	for i := range M.Chains {
		if M.Chains[i].ID == id {
			return &M.Chains[i]
		}
	}
	return nil
}

// Interactions returns the interaction behind each binding of M, in the
// order of M.Bindings.
func (M *Model) Interactions() []*Interaction {
	ret := make([]*Interaction, 0, len(M.Bindings))
	for _, b := range M.Bindings {
		ret = append(ret, b.Interaction)
	}
	return ret
}

// IsCentered returns true if each molecule of M is in its own frame,
// with its COM at the origin.
func (M *Model) IsCentered() bool {
	return M.centered
}

// NormalPoints returns the normal points for the binding b of M, i.e.
// the COM of each chain plus the normal direction of that side.
func (M *Model) NormalPoints(b *Binding) [2]r3.Vec {
	var ret [2]r3.Vec
	for k, id := range b.Chains() {
		ret[k] = r3.Add(M.Chain(id).COM, b.Normals[k])
	}
	return ret
}

// Sites returns the sites of chain id, one per binding in which the chain
// takes part, in the order of the bindings.
func (M *Model) Sites(id string) []LabeledSite {
	var ret []LabeledSite
	for _, b := range M.Bindings {
		c := b.Chains()
		for k := 0; k < 2; k++ {
			if c[k] != id {
				continue
			}
			partner := c[1-k]
			ret = append(ret, LabeledSite{Label: SiteLabel(partner), Partner: partner, Pos: b.Site.Points[k]})
		}
	}
	return ret
}

// SiteLabel returns the name of the site that binds the chain partner.
func SiteLabel(partner string) string {
	return strings.ToLower(partner)
}

// solve (re)computes the binding geometry of b, using the COMs of M.
func (M *Model) solve(b *Binding) error {
	c := b.Chains()
	c1, c2 := M.Chain(c[0]), M.Chain(c[1])
	if c1 == nil || c2 == nil {
		return newCError(ErrInvalidInput, fmt.Sprintf("binding %s-%s refers to a chain not in the model", c[0], c[1]), "solve")
	}
	np := M.NormalPoints(b)
	g, err := BindingAngles(c1.COM, c2.COM, b.Site.Points[0], b.Site.Points[1], np[0], np[1])
	if err != nil {
		var gerr *GeometryError
		if errors.As(err, &gerr) {
			gerr.Chain1, gerr.Chain2 = c[0], c[1]
		}
		return errDecorate(err, "solve")
	}
	b.Geometry = g
	return nil
}

// SetSigma changes the site distance of the ith binding of M to d, and
// recomputes its geometry. On error, M is not modified.
// Sigma can't be changed once the model has been centered, as the
// sites of both chains are no longer in the same frame.
func (M *Model) SetSigma(i int, d float64) error {
	if M.centered {
		return newCError(ErrInvalidInput, "can't change sigma in a centered model", "SetSigma")
	}
	if i < 0 || i >= len(M.Bindings) {
		return newCError(ErrInvalidInput, fmt.Sprintf("no binding %d", i), "SetSigma")
	}
	b := M.Bindings[i]
	site, err := b.Site.WithSigma(d)
	if err != nil {
		return errDecorate(err, "SetSigma")
	}
	nb := *b
	nb.Site = site
	if err := M.solve(&nb); err != nil {
		return errDecorate(err, "SetSigma")
	}
	*b = nb
	return nil
}

// SetAllSigma sets the site distance of all the bindings of M to d.
// It stops at the first error.
func (M *Model) SetAllSigma(d float64) error {
	for i := range M.Bindings {
		if err := M.SetSigma(i, d); err != nil {
			return errDecorate(err, "SetAllSigma")
		}
	}
	return nil
}

// Centered returns a new model where each molecule is in its own frame, with
// the COM at the origin, and its sites displaced by the same amount. The geometries
// are those of M, as they can't be computed once the frames are different.
// M is not modified.
func (M *Model) Centered() *Model {
	ret := &Model{Chains: make([]ChainModel, len(M.Chains)), Bindings: make([]*Binding, len(M.Bindings)), centered: true}
	offsets := make(map[string]r3.Vec, len(M.Chains))
	for i, c := range M.Chains {
		offsets[c.ID] = c.COM
		ret.Chains[i] = ChainModel{ID: c.ID}
	}
	for i, b := range M.Bindings {
		nb := *b
		for k, id := range b.Chains() {
			nb.Site.Points[k] = r3.Sub(b.Site.Points[k], offsets[id])
		}
		ret.Bindings[i] = &nb
	}
	return ret
}
