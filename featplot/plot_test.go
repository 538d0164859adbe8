/*
 * plot_test.go, part of molfeat.
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

package featplot

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/molfeat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func methane(t *testing.T) *feat.Molecule {
	a := 1.09198 / math.Sqrt(3)
	m, err := feat.MoleculeFromSlice([]string{"C", "H", "H", "H", "H"}, []float64{
		0, 0, 0,
		a, a, a,
		a, -a, -a,
		-a, a, -a,
		-a, -a, a,
	})
	require.NoError(t, err)
	return m
}

func TestChannels(Te *testing.T) {
	E, err := feat.NewEncodedBond(nil)
	require.NoError(Te, err)
	M, err := E.Fit([]*feat.Molecule{methane(Te)})
	require.NoError(Te, err)
	res, err := M.Transform([]*feat.Molecule{methane(Te)})
	require.NoError(Te, err)
	row := mat.Row(nil, 0, res)
	chans, err := Channels(M, row)
	require.NoError(Te, err)
	require.Len(Te, chans, 2)
	assert.Len(Te, chans[0], 100)
	assert.InDelta(Te, 0.2, chans[0][0].X, 1e-12)
	assert.Equal(Te, row[100+27], chans[1][27].Y)

	_, err = Channels(M, row[:10])
	assert.ErrorIs(Te, err, feat.ErrSizeMismatch)
	_, err = Channels(nil, row)
	assert.ErrorIs(Te, err, feat.ErrNotFitted)
}

func TestPlots(Te *testing.T) {
	dir := Te.TempDir()
	mols := []*feat.Molecule{methane(Te)}
	E, err := feat.NewEncodedBond(nil)
	require.NoError(Te, err)
	M, err := E.Fit(mols)
	require.NoError(Te, err)
	res, err := M.Transform(mols)
	require.NoError(Te, err)
	require.NoError(Te, EncodedBond(M, mat.Row(nil, 0, res), "Methane", filepath.Join(dir, "eb")))
	_, err = os.Stat(filepath.Join(dir, "eb.png"))
	assert.NoError(Te, err)

	require.NoError(Te, Distances(mols, 20, "Methane distances", filepath.Join(dir, "dist.svg")))
	_, err = os.Stat(filepath.Join(dir, "dist.svg"))
	assert.NoError(Te, err)

	err = Distances(mols, 0, "", filepath.Join(dir, "none"))
	assert.ErrorIs(Te, err, feat.ErrUnknownConfiguration)
}

func TestColors(Te *testing.T) {
	r, g, b := colors(0, 4)
	assert.Equal(Te, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})
	seen := make(map[[3]uint8]bool)
	for i := 0; i < 6; i++ {
		r, g, b := colors(i, 6)
		seen[[3]uint8{r, g, b}] = true
	}
	assert.Len(Te, seen, 6)
}
