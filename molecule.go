/*
 * molecule.go, part of molfeat.
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
	"gonum.org/v1/gonum/mat"

	v3 "github.com/rmera/molfeat/v3"
)

//Molecule is an ordered set of atoms, each one with an element symbol
//and a position in 3D space. The order of the atoms is never changed
//by molfeat.
type Molecule struct {
	symbols []string
	numbers []int
	Coords  *v3.Matrix
}

//NewMolecule returns a Molecule with the given element symbols and coordinates.
//coords must have one vector per symbol, and all symbols need to be in the
//reference tables. The symbols slice is copied, coords is not.
func NewMolecule(symbols []string, coords *v3.Matrix) (*Molecule, error) {
	if coords == nil {
		coords = v3.Zeros(0)
	}
	if len(symbols) != coords.NVecs() {
		return nil, newError(ErrUnknownConfiguration, "NewMolecule", "%d symbols given for %d coordinates", len(symbols), coords.NVecs())
	}
	M := &Molecule{
		symbols: make([]string, len(symbols)),
		numbers: make([]int, len(symbols)),
		Coords:  coords,
	}
	copy(M.symbols, symbols)
	for i, s := range symbols {
		z, err := AtomicNumber(s)
		if err != nil {
			return nil, errDecorate(err, "NewMolecule")
		}
		M.numbers[i] = z
	}
	return M, nil
}

//MoleculeFromSlice is like NewMolecule but takes the coordinates
//as a flat slice, x,y,z for each atom.
func MoleculeFromSlice(symbols []string, xyz []float64) (*Molecule, error) {
	coords, err := v3.NewMatrix(xyz)
	if err != nil {
		return nil, newError(ErrUnknownConfiguration, "MoleculeFromSlice", "%s", err.Error())
	}
	M, err := NewMolecule(symbols, coords)
	if err != nil {
		return nil, errDecorate(err, "MoleculeFromSlice")
	}
	return M, nil
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.symbols)
}

//Symbol returns the element symbol of the ith atom.
func (M *Molecule) Symbol(i int) string {
	return M.symbols[i]
}

//Number returns the atomic number of the ith atom.
func (M *Molecule) Number(i int) int {
	return M.numbers[i]
}

//Symbols returns a copy of the element symbols, in atom order.
func (M *Molecule) Symbols() []string {
	ret := make([]string, len(M.symbols))
	copy(ret, M.symbols)
	return ret
}

//Distance returns the distance between atoms i and j.
func (M *Molecule) Distance(i, j int) float64 {
	return M.Coords.Distance(i, j)
}

//Distances returns the matrix of interatomic distances, or nil
//for a molecule without atoms.
func (M *Molecule) Distances() *mat.SymDense {
	return M.Coords.Distances()
}

//BondGraph returns the bond graph of the molecule, using the default tolerance.
func (M *Molecule) BondGraph() (*BondGraph, error) {
	return NewBondGraph(M, DefaultBondTolerance)
}
