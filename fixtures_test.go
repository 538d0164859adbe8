/*
 * fixtures_test.go, part of molfeat.
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
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

//C-H distance of methane
const chBond = 1.09198

//H-H distance in a regular tetrahedron with chBond as the C-H distance
var hhDist = chBond * math.Sqrt(8.0/3.0)

func mustMolecule(t testing.TB, symbols []string, xyz []float64) *Molecule {
	t.Helper()
	m, err := MoleculeFromSlice(symbols, xyz)
	require.NoError(t, err)
	return m
}

//methane, C first and then 4 H in a regular tetrahedron.
func methane(t testing.TB) *Molecule {
	a := chBond / math.Sqrt(3)
	return mustMolecule(t, []string{"C", "H", "H", "H", "H"}, []float64{
		0, 0, 0,
		a, a, a,
		a, -a, -a,
		-a, a, -a,
		-a, -a, a,
	})
}

//formaldehyde, H2C=O
func formaldehyde(t testing.TB) *Molecule {
	return mustMolecule(t, []string{"C", "O", "H", "H"}, []float64{
		0, 0, 0,
		0, 0, 1.21,
		0.94, 0, -0.54,
		-0.94, 0, -0.54,
	})
}

func water(t testing.TB) *Molecule {
	return mustMolecule(t, []string{"O", "H", "H"}, []float64{
		0, 0, 0,
		0.7570, 0.5859, 0,
		-0.7570, 0.5859, 0,
	})
}

//hydrogen peroxide, trans planar.
func peroxide(t testing.TB) *Molecule {
	return mustMolecule(t, []string{"H", "O", "O", "H"}, []float64{
		-0.2, 0.93, 0,
		0, 0, 0,
		1.475, 0, 0,
		1.675, -0.93, 0,
	})
}

//methane and a water molecule 10 A away, 8 atoms in total.
func methaneAndWater(t testing.TB) *Molecule {
	m := methane(t)
	w := water(t)
	symbols := append(m.Symbols(), w.Symbols()...)
	xyz := make([]float64, 0, 3*len(symbols))
	for i := 0; i < m.Len(); i++ {
		xyz = append(xyz, m.Coords.Vec(nil, i)...)
	}
	for i := 0; i < w.Len(); i++ {
		v := w.Coords.Vec(nil, i)
		v[0] += 10
		xyz = append(xyz, v...)
	}
	return mustMolecule(t, symbols, xyz)
}
