/*
 * bagofbonds_test.go, part of molfeat.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestBagOfBondsMethane(Te *testing.T) {
	B := NewBagOfBonds(nil)
	M, err := B.Fit([]*Molecule{methane(Te)})
	require.NoError(Te, err)
	assert.Equal(Te, []Bag{{Pair: PairType{"C", "H"}, Size: 4}, {Pair: PairType{"H", "H"}, Size: 6}}, M.Bags())
	assert.Equal(Te, 10, M.Width())
	assert.Equal(Te, []string{"C-H_0", "C-H_1", "C-H_2", "C-H_3", "H-H_0"}, M.Columns()[:5])
	res, err := M.Transform([]*Molecule{methane(Te)})
	require.NoError(Te, err)
	row := mat.Row(nil, 0, res)
	for i := 0; i < 4; i++ {
		assert.InDelta(Te, 6/chBond, row[i], 1e-9)
	}
	for i := 4; i < 10; i++ {
		assert.InDelta(Te, 1/hhDist, row[i], 1e-9)
	}
}

func TestBagOfBondsLargeToSmall(Te *testing.T) {
	B := NewBagOfBonds(&BagOfBondsOptions{Workers: 3})
	M, err := B.Fit([]*Molecule{methaneAndWater(Te)})
	require.NoError(Te, err)
	assert.Equal(Te, []Bag{
		{Pair: PairType{"C", "H"}, Size: 6},
		{Pair: PairType{"C", "O"}, Size: 1},
		{Pair: PairType{"H", "H"}, Size: 15},
		{Pair: PairType{"H", "O"}, Size: 6},
	}, M.Bags())
	require.Equal(Te, 28, M.Width())
	res, err := M.Transform([]*Molecule{methane(Te), methaneAndWater(Te)})
	require.NoError(Te, err)
	row := mat.Row(nil, 0, res)
	for i := 0; i < 4; i++ {
		assert.InDelta(Te, 6/chBond, row[i], 1e-9)
	}
	assert.Zero(Te, row[4])
	assert.Zero(Te, row[5])
	assert.Zero(Te, row[6]) //C-O
	for i := 7; i < 13; i++ {
		assert.InDelta(Te, 1/hhDist, row[i], 1e-9)
	}
	assert.Equal(Te, make([]float64, 15), row[13:])

	//bags are sorted in decreasing order, the water H-H goes first
	full := mat.Row(nil, 1, res)
	assert.InDelta(Te, 1/1.514, full[7], 1e-9)
	for i := 8; i < 22; i++ {
		assert.GreaterOrEqual(Te, full[i-1], full[i])
	}
	for _, v := range full {
		assert.Greater(Te, v, 0.0)
	}
}

func TestBagOfBondsMismatch(Te *testing.T) {
	M, err := NewBagOfBonds(nil).Fit([]*Molecule{methane(Te)})
	require.NoError(Te, err)
	//O-H was never seen
	_, err = M.Transform([]*Molecule{water(Te)})
	require.ErrorIs(Te, err, ErrSizeMismatch)
	//more C-H pairs than the bag can take
	_, err = M.Transform([]*Molecule{methaneAndWater(Te)})
	require.ErrorIs(Te, err, ErrSizeMismatch)

	var N *BagOfBondsModel
	_, err = N.Transform([]*Molecule{methane(Te)})
	require.ErrorIs(Te, err, ErrNotFitted)
	_, err = new(BagOfBondsModel).Transform([]*Molecule{methane(Te)})
	require.ErrorIs(Te, err, ErrNotFitted)
}

func TestBagOfBondsRestore(Te *testing.T) {
	all := []*Molecule{methane(Te), formaldehyde(Te), water(Te)}
	M, err := NewBagOfBonds(nil).Fit(all)
	require.NoError(Te, err)
	bags := M.Bags()
	//order should not matter
	bags[0], bags[len(bags)-1] = bags[len(bags)-1], bags[0]
	bags[1].Pair = PairType{bags[1].Pair[1], bags[1].Pair[0]}
	R, err := NewBagOfBondsModel(nil, bags)
	require.NoError(Te, err)
	assert.Equal(Te, M.Bags(), R.Bags())
	a, err := M.Transform(all)
	require.NoError(Te, err)
	b, err := R.Transform(all)
	require.NoError(Te, err)
	assert.True(Te, mat.Equal(a, b))

	_, err = NewBagOfBondsModel(nil, []Bag{{Pair: PairType{"C", "H"}, Size: 1}, {Pair: PairType{"H", "C"}, Size: 2}})
	assert.ErrorIs(Te, err, ErrUnknownConfiguration)
	_, err = NewBagOfBondsModel(nil, []Bag{{Pair: PairType{"C", "H"}, Size: -1}})
	assert.ErrorIs(Te, err, ErrUnknownConfiguration)
}
