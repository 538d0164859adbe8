/*
 * connectivity_test.go, part of molfeat.
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

func rows(m *mat.Dense) [][]float64 {
	r, _ := m.Dims()
	ret := make([][]float64, r)
	for i := range ret {
		ret[i] = mat.Row(nil, i, m)
	}
	return ret
}

func TestConnectivityMethane(Te *testing.T) {
	C, err := NewConnectivity(nil)
	require.NoError(Te, err)
	M, err := C.Fit([]*Molecule{methane(Te)})
	require.NoError(Te, err)
	assert.Equal(Te, []string{"C", "H"}, M.Vocabulary())
	res, err := M.Transform([]*Molecule{methane(Te)})
	require.NoError(Te, err)
	assert.Equal(Te, [][]float64{{1, 4}}, rows(res))
}

func TestConnectivityFit(Te *testing.T) {
	all := []*Molecule{methane(Te), formaldehyde(Te), water(Te), peroxide(Te)}
	cases := []struct {
		opts  ConnectivityOptions
		vocab []string
	}{
		{ConnectivityOptions{Depth: 1}, []string{"C", "H", "O"}},
		{ConnectivityOptions{Depth: 2}, []string{"C-H", "C-O", "H-O", "O-O"}},
		{ConnectivityOptions{Depth: 2, UseBondOrder: true}, []string{"C-H", "C=O", "H-O", "O-O"}},
		{ConnectivityOptions{Depth: 3}, []string{"H-C-H", "H-C-O", "H-O-H", "H-O-O"}},
		{ConnectivityOptions{Depth: 4}, []string{"H-O-O-H"}},
		{ConnectivityOptions{Depth: 1, UseBondOrder: true}, []string{"C", "H", "O"}},
		{ConnectivityOptions{Depth: 1, UseCoordination: true}, []string{"C3", "C4", "H1", "O1", "O2"}},
	}
	for _, c := range cases {
		C, err := NewConnectivity(&c.opts)
		require.NoError(Te, err)
		M, err := C.Fit(all)
		require.NoError(Te, err)
		assert.Equal(Te, c.vocab, M.Vocabulary(), "options %+v", c.opts)
		assert.Equal(Te, len(c.vocab), M.Width())
	}
}

func TestConnectivityTransform(Te *testing.T) {
	all := []*Molecule{methane(Te), formaldehyde(Te), water(Te)}
	C, err := NewConnectivity(&ConnectivityOptions{Depth: 2})
	require.NoError(Te, err)
	res, err := C.FitTransform(all)
	require.NoError(Te, err)
	//C-H C-O H-O
	assert.Equal(Te, [][]float64{
		{4, 0, 0},
		{2, 1, 0},
		{0, 0, 2},
	}, rows(res))

	//small to large: unknown chains are dropped
	M, err := C.Fit([]*Molecule{methane(Te)})
	require.NoError(Te, err)
	res, err = M.Transform(all)
	require.NoError(Te, err)
	assert.Equal(Te, [][]float64{{4}, {2}, {0}}, rows(res))
}

func TestConnectivityUnknown(Te *testing.T) {
	C, err := NewConnectivity(&ConnectivityOptions{Depth: 1, AddUnknown: true})
	require.NoError(Te, err)
	M, err := C.Fit([]*Molecule{methane(Te)})
	require.NoError(Te, err)
	assert.Equal(Te, 3, M.Width())
	assert.Equal(Te, []string{"C", "H", UnknownColumn}, M.Columns())
	res, err := M.Transform([]*Molecule{methane(Te), formaldehyde(Te), water(Te)})
	require.NoError(Te, err)
	assert.Equal(Te, [][]float64{
		{1, 4, 0},
		{1, 2, 1},
		{0, 2, 1},
	}, rows(res))
}

func TestConnectivityLargeToSmall(Te *testing.T) {
	all := []*Molecule{methane(Te), formaldehyde(Te), water(Te)}
	C, err := NewConnectivity(nil)
	require.NoError(Te, err)
	big, err := C.Fit(all)
	require.NoError(Te, err)
	small, err := C.Fit([]*Molecule{methane(Te)})
	require.NoError(Te, err)
	rb, err := big.Transform([]*Molecule{methane(Te)})
	require.NoError(Te, err)
	rs, err := small.Transform([]*Molecule{methane(Te)})
	require.NoError(Te, err)
	//C H O vs C H
	assert.Equal(Te, []float64{1, 4, 0}, mat.Row(nil, 0, rb))
	assert.Equal(Te, []float64{1, 4}, mat.Row(nil, 0, rs))
}

func TestConnectivityNotFitted(Te *testing.T) {
	var M *ConnectivityModel
	_, err := M.Transform([]*Molecule{methane(Te)})
	require.ErrorIs(Te, err, ErrNotFitted)
	_, err = new(ConnectivityModel).Transform([]*Molecule{methane(Te)})
	require.ErrorIs(Te, err, ErrNotFitted)
	assert.Equal(Te, 0, M.Width())
}

func TestConnectivityConfig(Te *testing.T) {
	_, err := NewConnectivity(&ConnectivityOptions{Depth: 0})
	require.ErrorIs(Te, err, ErrUnknownConfiguration)
	_, err = new(Connectivity).Fit([]*Molecule{methane(Te)})
	require.ErrorIs(Te, err, ErrUnknownConfiguration)
}

func TestConnectivityRestore(Te *testing.T) {
	all := []*Molecule{methane(Te), formaldehyde(Te), water(Te)}
	opts := &ConnectivityOptions{Depth: 2, UseBondOrder: true}
	C, err := NewConnectivity(opts)
	require.NoError(Te, err)
	M, err := C.Fit(all)
	require.NoError(Te, err)
	vocab := M.Vocabulary()
	//shuffled and repeated labels give the same model
	R, err := NewConnectivityModel(opts, append([]string{vocab[2], vocab[0]}, vocab...))
	require.NoError(Te, err)
	assert.Equal(Te, vocab, R.Vocabulary())
	a, err := M.Transform(all)
	require.NoError(Te, err)
	b, err := R.Transform(all)
	require.NoError(Te, err)
	assert.True(Te, mat.Equal(a, b))
}
