/*
 * write_test.go, part of gonerdss.
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
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestWriteInp(Te *testing.T) {
	M, err := Convert(dimer(Te), DefaultOptions())
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteInp(&buf, M, DefaultSimParams()); err != nil {
		Te.Fatal(err)
	}
	out := buf.String()
	Te.Log(out)
	for _, v := range []string{
		"start parameters", "nItr = 1000000", "end parameters",
		"WaterBox = [500, 500, 500]",
		"start molecules", "A : 10", "B : 10", "end molecules",
		"A(b) + B(a) <-> A(b!1).B(a!1)",
		"onRate3Dka = 120", "offRatekb = 3",
		"sigma = 0.250000",
		"norm1 = [0.000000, 0.000000, 1.000000]",
		"assocAngles = [1.570796, 1.570796, ",
	} {
		if !strings.Contains(out, v) {
			Te.Errorf("%q not found in output", v)
		}
	}
}

func TestWriteNaN(Te *testing.T) {
	M := &Model{
		Chains: []ChainModel{{ID: "A"}, {ID: "B", COM: r3.Vec{X: 2, Y: 1}}},
		Bindings: []*Binding{{
			Interaction: &Interaction{Chains: [2]string{"A", "B"}},
			Site:        Site{Points: [2]r3.Vec{{X: 1}, {X: 2}}, Sigma: 1},
			Normals:     [2]r3.Vec{{Z: 1}, {Z: 1}},
			Geometry:    Geometry{Theta1: math.Pi, Theta2: math.Pi / 2, Phi1: math.NaN(), Phi2: math.Pi / 2, Omega: math.Pi / 2, Sigma: 1},
		}},
	}
	var buf bytes.Buffer
	if err := WriteInp(&buf, M, DefaultSimParams()); err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(buf.String(), "assocAngles = [3.141593, 1.570796, nan, 1.570796, 1.570796]") {
		Te.Errorf("undefined torsion not written as nan:\n%s", buf.String())
	}
	buf.Reset()
	if err := WriteMol(&buf, M, "B", DefaultSimParams()); err != nil {
		Te.Fatal(err)
	}
	mol := buf.String()
	Te.Log(mol)
	//the site of B is written relative to its COM
	for _, v := range []string{"Name = B", "D = [12, 12, 12]", "a         0.0000    -1.0000     0.0000", "bonds = 1", "COM a"} {
		if !strings.Contains(mol, v) {
			Te.Errorf("%q not found in molecule file", v)
		}
	}
	if err := WriteMol(&buf, M, "Z", DefaultSimParams()); err == nil {
		Te.Error("expected an error for a chain not in the model")
	}
}

func TestWriteFiles(Te *testing.T) {
	opts := DefaultOptions()
	opts.Center = true
	M, err := Convert(dimer(Te), opts)
	if err != nil {
		Te.Fatal(err)
	}
	dir := filepath.Join(Te.TempDir(), "out")
	if err := WriteFiles(dir, M, DefaultSimParams()); err != nil {
		Te.Fatal(err)
	}
	for _, name := range []string{InpName, "A.mol", "B.mol"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil || info.Size() == 0 {
			Te.Errorf("file %s not written: %v", name, err)
		}
	}
	mol, err := os.ReadFile(filepath.Join(dir, "A.mol"))
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(string(mol), "b         0.1667     0.3333     0.0000") {
		Te.Errorf("wrong site in molecule file:\n%s", mol)
	}
}

func TestWriteJSON(Te *testing.T) {
	M, err := Convert(dimer(Te), DefaultOptions())
	if err != nil {
		Te.Fatal(err)
	}
	M.Bindings[0].Geometry.Phi2 = math.NaN()
	var buf bytes.Buffer
	if err := WriteJSON(&buf, M); err != nil {
		Te.Fatal(err)
	}
	var J JSONModel
	if err := json.Unmarshal(buf.Bytes(), &J); err != nil {
		Te.Fatal(err)
	}
	if len(J.Bindings) != 1 || J.Bindings[0].Phi2 != nil || J.Bindings[0].Phi1 == nil {
		Te.Errorf("undefined torsions should be null: %s", buf.String())
	}
	if J.Bindings[0].Contacts != 2 || len(J.Bindings[0].Residues) != 2 || J.Chains[1].ID != "B" {
		Te.Errorf("wrong JSON model: %s", buf.String())
	}
}
