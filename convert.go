/*
 * convert.go, part of gonerdss.
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

	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultMaxAsk is the number of times a Provider is asked for one value
// when Options.MaxAsk is not positive.
const DefaultMaxAsk = 20

// Options controls the conversion of a structure into a model.
type Options struct {
	//Contact distance in nm. Non positive values mean DefaultCutoff.
	Cutoff float64

	//Normal direction used for every side without an entry in Normals.
	//The zero vector means (0,0,1).
	DefaultNormal r3.Vec

	//Normal directions for specific sides of specific interactions, with
	//keys as returned by NormalKey.
	Normals map[string]r3.Vec

	//Site distances for specific interactions, with keys as returned by SigmaKey.
	//Either order of the chains is accepted.
	Sigmas map[string]float64

	//If positive, the site distance for interactions not in Sigmas.
	AllSigma float64

	//Put each molecule in its own frame, with its COM at the origin.
	Center bool

	//If not nil, asked for normals and site distances not given above,
	//and asked again for any rejected value.
	Provider Provider

	//Maximum number of times Provider is asked for each value before the
	//conversion fails. Non positive values mean DefaultMaxAsk.
	MaxAsk int
}

// DefaultOptions returns the default conversion options.
func DefaultOptions() Options {
	return Options{Cutoff: DefaultCutoff, DefaultNormal: r3.Vec{X: 0, Y: 0, Z: 1}}
}

// NormalKey returns the key in Options.Normals for the side of chain in its
// interaction with partner.
func NormalKey(chain, partner string) string {
	return chain + ":" + partner
}

// SigmaKey returns the key in Options.Sigmas for the interaction between c1 and c2.
func SigmaKey(c1, c2 string) string {
	return c1 + "-" + c2
}

func (O Options) defaultNormal() r3.Vec {
	if r3.Norm(O.DefaultNormal) <= appzero {
		return r3.Vec{X: 0, Y: 0, Z: 1}
	}
	return O.DefaultNormal
}

func (O Options) maxAsk() int {
	if O.MaxAsk <= 0 {
		return DefaultMaxAsk
	}
	return O.MaxAsk
}

// sigma returns the site distance requested for the interaction between c1 and c2, if any.
func (O Options) sigma(c1, c2 string) (float64, bool) {
	if d, ok := O.Sigmas[SigmaKey(c1, c2)]; ok {
		return d, true
	}
	if d, ok := O.Sigmas[SigmaKey(c2, c1)]; ok {
		return d, true
	}
	if O.AllSigma > 0 {
		return O.AllSigma, true
	}
	return 0, false
}

// Convert turns S into a reaction-diffusion model. It finds the interactions
// between all pairs of chains, reduces each to a pair of sites, and obtains the
// binding geometry of each. The normals and site distances are taken from opts,
// from opts.Provider, or from the defaults, in that order.
// Any error aborts the whole conversion, and no model is returned.
func Convert(S *Structure, opts Options) (*Model, error) {
	if S == nil || len(S.Chains) < 2 {
		return nil, newCError(ErrSingleChain, "", "Convert")
	}
	M := &Model{Chains: make([]ChainModel, 0, len(S.Chains))}
	for _, c := range S.Chains {
		M.Chains = append(M.Chains, ChainModel{ID: c.ID, COM: c.COM()})
	}
	ints := FindInteractions(S, opts.Cutoff)
	if len(ints) == 0 {
		log.Printf("gonerdss: no contacts between chains %v", S.IDs())
	}
	for _, in := range ints {
		b := &Binding{Interaction: in, Site: ResolveSite(in)}
		if err := opts.setSigma(b); err != nil {
			return nil, errDecorate(err, "Convert")
		}
		for k := 0; k < 2; k++ {
			n, err := opts.normal(M, b, k)
			if err != nil {
				return nil, errDecorate(err, "Convert")
			}
			b.Normals[k] = n
		}
		if err := M.solve(b); err != nil {
			return nil, errDecorate(err, "Convert")
		}
		M.Bindings = append(M.Bindings, b)
	}
	if opts.Center {
		M = M.Centered()
	}
	return M, nil
}

// setSigma changes the site distance of b if requested.
func (O Options) setSigma(b *Binding) error {
	c := b.Chains()
	d, ok := O.sigma(c[0], c[1])
	if !ok && O.Provider == nil {
		return nil
	}
	q := SigmaQuery{Chain1: c[0], Chain2: c[1], Sigma: b.Site.Sigma}
	var err error
	asked := 0
	for {
		if !ok {
			if asked >= O.maxAsk() {
				break
			}
			asked++
			d, ok, err = O.Provider.Sigma(q)
			if err != nil {
				return errDecorate(err, "setSigma")
			}
			if !ok {
				return nil
			}
		}
		var site Site
		site, err = b.Site.WithSigma(d)
		if err == nil {
			b.Site = site
			return nil
		}
		if O.Provider == nil {
			break
		}
		q.Rejected = err
		ok = false
	}
	return errDecorate(err, "setSigma")
}

// checkNormal returns an error if n can't be used as the normal of a side
// with the COM-to-site vector v.
func checkNormal(n, v r3.Vec) error {
	if r3.Norm(n) <= appzero {
		return newCError(ErrAmbiguousNormal, "zero normal vector", "checkNormal")
	}
	if Parallel(n, v) {
		return newCError(ErrAmbiguousNormal, fmt.Sprintf("normal (%.3f, %.3f, %.3f) is parallel to the COM-to-site vector (%.3f, %.3f, %.3f)", n.X, n.Y, n.Z, v.X, v.Y, v.Z), "checkNormal")
	}
	return nil
}

// normal returns the unit normal direction for the side k of b.
func (O Options) normal(M *Model, b *Binding, k int) (r3.Vec, error) {
	c := b.Chains()
	id, partner := c[k], c[1-k]
	com := M.Chain(id).COM
	q := NormalQuery{Chain: id, Partner: partner, COM: com, Site: b.Site.Points[k]}
	n, given := O.Normals[NormalKey(id, partner)]
	var err error
	asked := 0
	if !given {
		n = O.defaultNormal()
		if O.Provider != nil {
			asked++
			if n, err = O.Provider.Normal(q); err != nil {
				return n, errDecorate(err, "normal")
			}
		}
	}
	for {
		err = checkNormal(n, r3.Sub(q.Site, com))
		if err == nil {
			return Unit(n), nil
		}
		if O.Provider == nil || asked >= O.maxAsk() {
			return r3.Vec{}, errDecorate(err, "normal")
		}
		q.Rejected = err
		asked++
		if n, err = O.Provider.Normal(q); err != nil {
			return n, errDecorate(err, "normal")
		}
	}
}
