/*
 * convert_test.go, part of gonerdss.
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
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

// fakeProvider answers from fixed lists, and records the queries it gets.
type fakeProvider struct {
	normals  []r3.Vec
	sigmas   []float64
	nqueries []NormalQuery
	squeries []SigmaQuery
}

func (F *fakeProvider) Normal(q NormalQuery) (r3.Vec, error) {
	F.nqueries = append(F.nqueries, q)
	if len(F.normals) == 0 {
		return r3.Vec{}, fmt.Errorf("no more normals")
	}
	n := F.normals[0]
	F.normals = F.normals[1:]
	return n, nil
}

func (F *fakeProvider) Sigma(q SigmaQuery) (float64, bool, error) {
	F.squeries = append(F.squeries, q)
	if len(F.sigmas) == 0 {
		return 0, false, nil
	}
	d := F.sigmas[0]
	F.sigmas = F.sigmas[1:]
	return d, true, nil
}

func TestConvert(Te *testing.T) {
	M, err := Convert(dimer(Te), DefaultOptions())
	if err != nil {
		Te.Fatal(err)
	}
	if len(M.Chains) != 2 || len(M.Bindings) != 1 {
		Te.Fatalf("expected 2 chains and 1 binding, got %d and %d", len(M.Chains), len(M.Bindings))
	}
	G := M.Bindings[0].Geometry
	fmt.Println(G)
	const tol = 1e-6
	if math.Abs(G.Theta1-math.Pi/2) > tol || math.Abs(G.Theta2-math.Pi/2) > tol {
		Te.Errorf("expected both polar angles to be pi/2, got %f %f", G.Theta1, G.Theta2)
	}
	if math.Abs(math.Abs(G.Phi1)-math.Pi) > tol || math.Abs(G.Phi2) > tol {
		Te.Errorf("expected phi1 = pi and phi2 = 0, got %f %f", G.Phi1, G.Phi2)
	}
	if G.Omega > 0 || math.Abs(G.Omega+math.Acos(-0.6)) > tol {
		Te.Errorf("expected omega = -acos(-0.6), got %f", G.Omega)
	}
	if math.Abs(G.Sigma-0.25) > 1e-12 {
		Te.Errorf("expected sigma 0.25, got %f", G.Sigma)
	}
	if n := M.Bindings[0].Normals[1]; n != (r3.Vec{Z: 1}) {
		Te.Errorf("expected the default normal, got %v", n)
	}
	np := M.NormalPoints(M.Bindings[0])
	if !vecClose(np[0], r3.Add(M.Chain("A").COM, r3.Vec{Z: 1}), 1e-12) {
		Te.Errorf("wrong normal point %v", np[0])
	}
}

func TestConvertSingleChain(Te *testing.T) {
	S, _ := PDBRead(strings.NewReader(atomLine(1, "CA", "GLY", "A", 1, 0, 0, 0)))
	if _, err := Convert(S, DefaultOptions()); !errors.Is(err, ErrSingleChain) {
		Te.Errorf("expected ErrSingleChain, got %v", err)
	}
	if _, err := Convert(nil, DefaultOptions()); !errors.Is(err, ErrSingleChain) {
		Te.Errorf("expected ErrSingleChain for a nil structure, got %v", err)
	}
}

func TestConvertAmbiguousNormal(Te *testing.T) {
	opts := DefaultOptions()
	//parallel to the COM-to-site vector of chain A, (1/6, 1/3, 0)
	opts.Normals = map[string]r3.Vec{NormalKey("A", "B"): {X: 1, Y: 2}}
	_, err := Convert(dimer(Te), opts)
	if !errors.Is(err, ErrAmbiguousNormal) {
		Te.Fatalf("expected ErrAmbiguousNormal, got %v", err)
	}
	fmt.Println(err)
	opts.Normals[NormalKey("A", "B")] = r3.Vec{}
	if _, err = Convert(dimer(Te), opts); !errors.Is(err, ErrAmbiguousNormal) {
		Te.Errorf("expected ErrAmbiguousNormal for a zero normal, got %v", err)
	}
	//with a provider, the rejected normal is asked again.
	opts.Normals[NormalKey("A", "B")] = r3.Vec{X: -2, Y: -4}
	P := &fakeProvider{normals: []r3.Vec{{X: 0, Y: 0, Z: 2}, {X: 1, Y: 0, Z: 1}}}
	opts.Provider = P
	M, err := Convert(dimer(Te), opts)
	if err != nil {
		Te.Fatal(err)
	}
	if len(P.nqueries) != 2 {
		Te.Fatalf("expected 2 questions, got %d", len(P.nqueries))
	}
	if P.nqueries[0].Rejected == nil || P.nqueries[0].Chain != "A" || P.nqueries[0].Partner != "B" {
		Te.Errorf("wrong first query %+v", P.nqueries[0])
	}
	if P.nqueries[1].Rejected != nil || P.nqueries[1].Chain != "B" {
		Te.Errorf("wrong second query %+v", P.nqueries[1])
	}
	n := M.Bindings[0].Normals
	if n[0] != (r3.Vec{Z: 1}) || !vecClose(n[1], r3.Vec{X: math.Sqrt2 / 2, Z: math.Sqrt2 / 2}, 1e-12) {
		Te.Errorf("normals should be the unit vectors of the answers, got %v", n)
	}
}

func TestConvertSigma(Te *testing.T) {
	opts := DefaultOptions()
	opts.Sigmas = map[string]float64{SigmaKey("B", "A"): 1}
	M, err := Convert(dimer(Te), opts)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(M.Bindings[0].Geometry.Sigma-1) > 1e-12 {
		Te.Errorf("expected sigma 1, got %f", M.Bindings[0].Geometry.Sigma)
	}
	opts = DefaultOptions()
	opts.AllSigma = 0.5
	opts.Center = true
	M, err = Convert(dimer(Te), opts)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(M.Bindings[0].Site.Sigma-0.5) > 1e-12 || !M.IsCentered() {
		Te.Errorf("expected a centered model with sigma 0.5, got %f", M.Bindings[0].Site.Sigma)
	}
	//invalid answers are asked again
	P := &fakeProvider{sigmas: []float64{-1, 0.6}, normals: []r3.Vec{{Z: 1}, {Z: 1}}}
	opts = DefaultOptions()
	opts.Provider = P
	M, err = Convert(dimer(Te), opts)
	if err != nil {
		Te.Fatal(err)
	}
	if len(P.squeries) != 2 || P.squeries[1].Rejected == nil || math.Abs(P.squeries[0].Sigma-0.25) > 1e-12 {
		Te.Errorf("wrong sigma queries %+v", P.squeries)
	}
	if math.Abs(M.Bindings[0].Site.Sigma-0.6) > 1e-12 {
		Te.Errorf("expected sigma 0.6, got %f", M.Bindings[0].Site.Sigma)
	}
}

func TestConvertMaxAsk(Te *testing.T) {
	//always parallel to the COM-to-site vector of chain A
	bad := r3.Vec{X: 1, Y: 2}
	P := &fakeProvider{normals: []r3.Vec{bad, bad, bad, bad, bad}}
	opts := DefaultOptions()
	opts.Provider = P
	opts.MaxAsk = 3
	_, err := Convert(dimer(Te), opts)
	if !errors.Is(err, ErrAmbiguousNormal) {
		Te.Errorf("expected ErrAmbiguousNormal, got %v", err)
	}
	if len(P.nqueries) != 3 {
		Te.Errorf("expected 3 questions for the normal, got %d", len(P.nqueries))
	}
	P = &fakeProvider{sigmas: []float64{-1, -2, -3}}
	opts.Provider = P
	opts.MaxAsk = 2
	if _, err = Convert(dimer(Te), opts); !errors.Is(err, ErrInvalidInput) {
		Te.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if len(P.squeries) != 2 || len(P.nqueries) != 0 {
		Te.Errorf("expected 2 questions for sigma and none for normals, got %d and %d", len(P.squeries), len(P.nqueries))
	}
	if opts.MaxAsk = 0; opts.maxAsk() != DefaultMaxAsk {
		Te.Errorf("expected %d questions by default, got %d", DefaultMaxAsk, opts.maxAsk())
	}
}

func TestContactHistograms(Te *testing.T) {
	S := dimer(Te)
	H := ContactHistograms(S, FindInteractions(S, 0), nil)
	fmt.Println(H)
	D := H.View(1, 0)
	if D.Total() != 2 || D.View()[8] != 2 {
		Te.Errorf("expected both contacts in the 0.24-0.27 bin, got %v", D)
	}
	if H.View(0, 0).Total() != 0 {
		Te.Error("no contacts expected within a chain")
	}
}
