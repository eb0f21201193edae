/*
 * plot_test.go, part of gonerdss.
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

package rdplot

import (
	"os"
	"path/filepath"
	"testing"

	nerdss "github.com/nerdss/gonerdss"
)

func testInteraction() *nerdss.Interaction {
	in := &nerdss.Interaction{Chains: [2]string{"A", "B"}}
	for i := 1; i <= 5; i++ {
		in.Residues = append(in.Residues, nerdss.ResiduePair{ResIDs: [2]int{i, 10 + i}, ResNames: [2]string{"ALA", "GLY"}})
		for j := 0; j < i; j++ {
			in.Contacts = append(in.Contacts, nerdss.Contact{ResIDs: [2]int{i, 10 + i}, Names: [2]string{"CA", "CA"}, Dist: 0.05 * float64(j+1)})
		}
	}
	return in
}

func TestContactMap(Te *testing.T) {
	in := testInteraction()
	name := filepath.Join(Te.TempDir(), "map.png")
	if err := ContactMap(in, "Contacts A-B", name); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(name); err != nil {
		Te.Error(err)
	}
	if err := ContactMap(&nerdss.Interaction{}, "empty", name); err == nil {
		Te.Error("expected an error for an interaction without contacts")
	}
}

func TestDistanceHisto(Te *testing.T) {
	in := testInteraction()
	name := filepath.Join(Te.TempDir(), "dist.svg")
	if err := DistanceHisto(in.Distances(), 6, "Distances A-B", name); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(name); err != nil {
		Te.Error(err)
	}
}

func TestColors(Te *testing.T) {
	r, g, b := colors(0, 5)
	if r != 255 || g != 0 || b != 0 {
		Te.Errorf("first level should be red, got %d %d %d", r, g, b)
	}
	r, g, b = colors(4, 5)
	if r != 0 || g != 0 || b != 255 {
		Te.Errorf("last level should be blue, got %d %d %d", r, g, b)
	}
}
