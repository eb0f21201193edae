/*
 * graph.go, part of gonerdss.
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
	"sort"

	nerdss "github.com/nerdss/gonerdss"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Chain is a node in the graph. IDs follow the order in which chains are given to New.
type Chain struct {
	id   int64
	Name string
}

// ID implements graph.Node.
func (C *Chain) ID() int64 {
	return C.id
}

// Binding is an undirected edge between two chains, with the number of
// atom contacts of the interaction as weight.
type Binding struct {
	C1, C2      *Chain
	Interaction *nerdss.Interaction
}

func (B *Binding) From() graph.Node {
	return B.C1
}

func (B *Binding) To() graph.Node {
	return B.C2
}

// ReversedEdge returns a copy of the edge with the ends swapped.
func (B *Binding) ReversedEdge() graph.Edge {
	return &Binding{C1: B.C2, C2: B.C1, Interaction: B.Interaction}
}

// Weight returns the number of atom contacts.
func (B *Binding) Weight() float64 {
	return float64(len(B.Interaction.Contacts))
}

// Graph is the undirected graph of the chains of a structure, where an edge
// joins each pair of interacting chains.
type Graph struct {
	*simple.WeightedUndirectedGraph
	chains []*Chain
}

// New returns the graph for the given chains and interactions. Interactions
// involving chains not in chains are ignored.
func New(chains []string, ints []*nerdss.Interaction) *Graph {
	G := &Graph{WeightedUndirectedGraph: simple.NewWeightedUndirectedGraph(0, 0)}
	for i, name := range chains {
		c := &Chain{id: int64(i), Name: name}
		G.chains = append(G.chains, c)
		G.AddNode(c)
	}
	for _, in := range ints {
		c1, c2 := G.Chain(in.Chains[0]), G.Chain(in.Chains[1])
		if c1 == nil || c2 == nil || c1 == c2 {
			continue
		}
		G.SetWeightedEdge(&Binding{C1: c1, C2: c2, Interaction: in})
	}
	return G
}

// Chain returns the node for the chain with the given name, or nil.
func (G *Graph) Chain(name string) *Chain {
	for _, c := range G.chains {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Partners returns the names of the chains interacting with the chain name,
// in the order of the chains of the graph.
func (G *Graph) Partners(name string) []string {
	c := G.Chain(name)
	if c == nil {
		return nil
	}
	ids := graph.NodesOf(G.From(c.ID()))
	return names(ids)
}

// Complexes returns the names of the chains of each set of chains that
// are connected by interactions. Each set is in the order of the chains
// of the graph, and the sets are sorted by their first chain.
func (G *Graph) Complexes() [][]string {
	cc := topo.ConnectedComponents(G)
	sort.Slice(cc, func(i, j int) bool { return minID(cc[i]) < minID(cc[j]) })
	ret := make([][]string, 0, len(cc))
	for _, v := range cc {
		ret = append(ret, names(v))
	}
	return ret
}

// Isolated returns the names of the chains that don't interact with any other.
func (G *Graph) Isolated() []string {
	var ret []string
	for _, c := range G.chains {
		if G.From(c.ID()).Len() == 0 {
			ret = append(ret, c.Name)
		}
	}
	return ret
}

func minID(nodes []graph.Node) int64 {
	m := nodes[0].ID()
	for _, n := range nodes[1:] {
		if n.ID() < m {
			m = n.ID()
		}
	}
	return m
}

func names(nodes []graph.Node) []string {
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })
	ret := make([]string, len(nodes))
	for i, n := range nodes {
		ret[i] = n.(*Chain).Name
	}
	return ret
}
