/*
 * bonds.go, part of molfeat.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package feat

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"
)

//DefaultBondTolerance is the factor by which the sum of the covalent radii
//of 2 atoms is multiplied to obtain the longest distance at which
//they are considered bonded.
const DefaultBondTolerance = 1.2

//BondOrder is the order of a bond, as guessed from its length.
type BondOrder int

const (
	NoBond BondOrder = iota
	Single
	Aromatic
	Double
	Triple
)

//orders are tried from the shortest to the longest.
var ordersByLength = []BondOrder{Triple, Double, Aromatic, Single}

//String returns the code for the bond order: 1, 2, 3 or Ar.
func (B BondOrder) String() string {
	switch B {
	case Single:
		return "1"
	case Aromatic:
		return "Ar"
	case Double:
		return "2"
	case Triple:
		return "3"
	}
	return "0"
}

//Symbol returns a SMILES-like symbol for the bond order.
func (B BondOrder) Symbol() string {
	switch B {
	case Aromatic:
		return ":"
	case Double:
		return "="
	case Triple:
		return "#"
	}
	return "-"
}

//bondOrder guesses the order of a bond between elements e1 and e2 separated by dist.
//The first order (shortest first) whose cutoff is larger than dist is returned.
//If no cutoff applies, the bond is taken to be single.
func bondOrder(e1, e2 *Element, dist float64) BondOrder {
	for _, o := range ordersByLength {
		h1, ok1 := e1.halfBonds[o]
		h2, ok2 := e2.halfBonds[o]
		if !ok1 || !ok2 {
			continue
		}
		if dist < h1+h2 {
			return o
		}
	}
	return Single
}

//BondGraph is the undirected graph of bonds of a molecule.
//Nodes are the atom indexes. It is not modified after creation, so it
//can be read concurrently.
type BondGraph struct {
	mol  *Molecule
	g    *simple.UndirectedGraph
	adj  [][]int //sorted neighbors of each atom
	elem []*Element
}

//NewBondGraph determines the bonds in mol. 2 atoms are bonded if their distance is
//not larger than the sum of their covalent radii times tolerance.
func NewBondGraph(mol *Molecule, tolerance float64) (*BondGraph, error) {
	if tolerance <= 0 {
		return nil, newError(ErrUnknownConfiguration, "NewBondGraph", "Bond tolerance must be positive, got %f", tolerance)
	}
	n := mol.Len()
	B := &BondGraph{
		mol:  mol,
		g:    simple.NewUndirectedGraph(),
		adj:  make([][]int, n),
		elem: make([]*Element, n),
	}
	for i := 0; i < n; i++ {
		e, err := LookupElement(mol.Symbol(i))
		if err != nil {
			return nil, errDecorate(err, "NewBondGraph")
		}
		B.elem[i] = e
		B.g.AddNode(simple.Node(i))
	}
	// O(n^2), fine for molecules, not thought for large systems.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := mol.Distance(i, j)
			if d <= (B.elem[i].CovRad+B.elem[j].CovRad)*tolerance {
				B.g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
				B.adj[i] = append(B.adj[i], j)
				B.adj[j] = append(B.adj[j], i)
			}
		}
	}
	for _, v := range B.adj {
		sort.Ints(v)
	}
	return B, nil
}

//Len returns the number of atoms in the graph.
func (B *BondGraph) Len() int {
	return len(B.adj)
}

//Graph returns the underlying gonum graph. Node IDs are atom indexes.
func (B *BondGraph) Graph() graph.Undirected {
	return B.g
}

//Bonded returns true if atoms i and j are bonded.
func (B *BondGraph) Bonded(i, j int) bool {
	return B.g.HasEdgeBetween(int64(i), int64(j))
}

//Neighbors returns the indexes of the atoms bonded to atom i, in ascending order.
//The returned slice must not be modified.
func (B *BondGraph) Neighbors(i int) []int {
	return B.adj[i]
}

//Degree returns the number of bonds of atom i (its coordination number).
func (B *BondGraph) Degree(i int) int {
	return len(B.adj[i])
}

//NBonds returns the total number of bonds.
func (B *BondGraph) NBonds() int {
	return B.g.Edges().Len()
}

//BondOrder returns the order of the bond between atoms i and j,
//or NoBond if they are not bonded.
func (B *BondGraph) BondOrder(i, j int) BondOrder {
	if !B.Bonded(i, j) {
		return NoBond
	}
	return bondOrder(B.elem[i], B.elem[j], B.mol.Distance(i, j))
}

//PathLengths returns the length, in bonds, of the shortest path between
//each pair of atoms. Disconnected pairs get -1.
func (B *BondGraph) PathLengths() [][]int {
	n := B.Len()
	ret := make([][]int, n)
	for i := 0; i < n; i++ {
		row := make([]int, n)
		for j := range row {
			row[j] = -1
		}
		var bf traverse.BreadthFirst
		bf.Walk(B.g, B.g.Node(int64(i)), func(node graph.Node, d int) bool {
			row[node.ID()] = d
			return false
		})
		ret[i] = row
	}
	return ret
}
