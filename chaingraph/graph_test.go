/*
 * graph_test.go, part of gonerdss.
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

package chaingraph

import (
	"fmt"
	"reflect"
	"testing"

	nerdss "github.com/nerdss/gonerdss"
)

func TestComplexes(Te *testing.T) {
	ints := []*nerdss.Interaction{
		{Chains: [2]string{"A", "B"}, Contacts: make([]nerdss.Contact, 3)},
		{Chains: [2]string{"B", "C"}, Contacts: make([]nerdss.Contact, 1)},
		{Chains: [2]string{"D", "E"}, Contacts: make([]nerdss.Contact, 2)},
	}
	G := New([]string{"A", "B", "C", "D", "E", "F"}, ints)
	cx := G.Complexes()
	fmt.Println("Complexes:", cx)
	expected := [][]string{{"A", "B", "C"}, {"D", "E"}, {"F"}}
	if !reflect.DeepEqual(cx, expected) {
		Te.Errorf("expected complexes %v, got %v", expected, cx)
	}
	if iso := G.Isolated(); !reflect.DeepEqual(iso, []string{"F"}) {
		Te.Errorf("expected F to be isolated, got %v", iso)
	}
	if p := G.Partners("B"); !reflect.DeepEqual(p, []string{"A", "C"}) {
		Te.Errorf("wrong partners for B: %v", p)
	}
	if w, ok := G.Weight(0, 1); !ok || w != 3 {
		Te.Errorf("expected weight 3 for A-B, got %f", w)
	}
}
