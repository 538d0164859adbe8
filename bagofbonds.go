/*
 * bagofbonds.go, part of molfeat.
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
	"fmt"
	"slices"
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

//BagOfBondsOptions contains the options for the BagOfBonds featurizer.
type BagOfBondsOptions struct {
	//goroutines to use. All logical CPUs if not positive.
	Workers int
}

//BagOfBonds describes a molecule by the Coulomb interactions, Z_i*Z_j/d_ij, between
//its atoms, grouped in bags by element pair. Each bag is sorted in decreasing order
//and padded with zeros to the largest count of that pair found in the fit.
type BagOfBonds struct {
	opts BagOfBondsOptions
}

//Bag is the element pair of a bag, and its capacity.
type Bag struct {
	Pair PairType
	Size int
}

//NewBagOfBonds returns a new BagOfBonds featurizer. opts can be nil.
func NewBagOfBonds(opts *BagOfBondsOptions) *BagOfBonds {
	B := new(BagOfBonds)
	if opts != nil {
		B.opts = *opts
	}
	return B
}

func pairCounts(mol *Molecule) map[PairType]int {
	ret := make(map[PairType]int)
	moleculePairs(mol, func(i, j int, t PairType) {
		ret[t]++
	})
	return ret
}

//Fit learns, for each element pair, the largest number of atom pairs of that
//type in a single molecule of mols.
func (B *BagOfBonds) Fit(mols []*Molecule) (*BagOfBondsModel, error) {
	perMol, err := mapMolecules(mols, B.opts.Workers, func(mol *Molecule) (map[PairType]int, error) {
		return pairCounts(mol), nil
	})
	if err != nil {
		return nil, errDecorate(err, "BagOfBonds.Fit")
	}
	sizes := make(map[PairType]int)
	for _, counts := range perMol {
		for t, c := range counts {
			sizes[t] = max(sizes[t], c)
		}
	}
	bags := make([]Bag, 0, len(sizes))
	for _, t := range sortedPairTypes(sizes) {
		bags = append(bags, Bag{Pair: t, Size: sizes[t]})
	}
	M := newBagOfBondsModel(B.opts, bags)
	L().Debug("fitted featurizer", zap.String("featurizer", "BagOfBonds"),
		zap.Int("molecules", len(mols)), zap.Int("bags", len(bags)), zap.Int("width", M.Width()))
	return M, nil
}

//FitModel implements Featurizer.
func (B *BagOfBonds) FitModel(mols []*Molecule) (Transformer, error) {
	return B.Fit(mols)
}

//FitTransform fits the featurizer to mols and returns their features.
func (B *BagOfBonds) FitTransform(mols []*Molecule) (*mat.Dense, error) {
	M, err := B.Fit(mols)
	if err != nil {
		return nil, err
	}
	return M.Transform(mols)
}

//BagOfBondsModel is a fitted BagOfBonds featurizer.
type BagOfBondsModel struct {
	opts    BagOfBondsOptions
	bags    []Bag
	index   map[PairType]int
	offsets []int //position of each bag in the output row
	width   int
}

func newBagOfBondsModel(opts BagOfBondsOptions, bags []Bag) *BagOfBondsModel {
	M := &BagOfBondsModel{
		opts:    opts,
		bags:    bags,
		index:   make(map[PairType]int, len(bags)),
		offsets: make([]int, len(bags)),
	}
	for i, b := range bags {
		M.index[b.Pair] = i
		M.offsets[i] = M.width
		M.width += b.Size
	}
	return M
}

//NewBagOfBondsModel rebuilds a fitted model from its bags, as returned by the Bags method.
//The bags are sorted by element pair; repeated pairs or negative sizes give an error.
func NewBagOfBondsModel(opts *BagOfBondsOptions, bags []Bag) (*BagOfBondsModel, error) {
	sizes := make(map[PairType]int, len(bags))
	for _, b := range bags {
		p := NewPairType(b.Pair[0], b.Pair[1])
		if _, ok := sizes[p]; ok {
			return nil, newError(ErrUnknownConfiguration, "NewBagOfBondsModel", "Repeated bag %s", p)
		}
		if b.Size < 0 {
			return nil, newError(ErrUnknownConfiguration, "NewBagOfBondsModel", "Negative size %d for bag %s", b.Size, p)
		}
		sizes[p] = b.Size
	}
	sorted := make([]Bag, 0, len(bags))
	for _, t := range sortedPairTypes(sizes) {
		sorted = append(sorted, Bag{Pair: t, Size: sizes[t]})
	}
	var o BagOfBondsOptions
	if opts != nil {
		o = *opts
	}
	return newBagOfBondsModel(o, sorted), nil
}

//Bags returns a copy of the bags learned in the fit, in column order.
func (M *BagOfBondsModel) Bags() []Bag {
	if M == nil {
		return nil
	}
	return slices.Clone(M.bags)
}

//Width returns the number of columns of the output.
func (M *BagOfBondsModel) Width() int {
	if M == nil {
		return 0
	}
	return M.width
}

//Columns returns a name for each column, of the form "C-H_0".
func (M *BagOfBondsModel) Columns() []string {
	ret := make([]string, 0, M.Width())
	for _, b := range M.Bags() {
		for k := 0; k < b.Size; k++ {
			ret = append(ret, fmt.Sprintf("%s_%d", b.Pair, k))
		}
	}
	return ret
}

//Transform returns, for each molecule, its bags concatenated in the order of
//the Bags method. Each bag is sorted in decreasing order and zero-padded.
func (M *BagOfBondsModel) Transform(mols []*Molecule) (*mat.Dense, error) {
	if M == nil || M.index == nil {
		return nil, newError(ErrNotFitted, "BagOfBondsModel.Transform", "BagOfBonds featurizer has not been fitted")
	}
	ret, err := transformRows(mols, M.width, M.opts.Workers, M.fill)
	if err != nil {
		return nil, errDecorate(err, "BagOfBondsModel.Transform")
	}
	return ret, nil
}

func (M *BagOfBondsModel) fill(mol *Molecule, row []float64) error {
	values := make(map[PairType][]float64)
	moleculePairs(mol, func(i, j int, t PairType) {
		v := float64(mol.Number(i)*mol.Number(j)) / mol.Distance(i, j)
		values[t] = append(values[t], v)
	})
	//check every bag before writing anything.
	for _, t := range sortedPairTypes(values) {
		k, ok := M.index[t]
		size := 0
		if ok {
			size = M.bags[k].Size
		}
		if len(values[t]) > size {
			L().Debug("bag overflow", zap.String("featurizer", "BagOfBonds"), zap.Stringer("pair", t),
				zap.Int("count", len(values[t])), zap.Int("size", size))
			return newError(ErrSizeMismatch, "BagOfBondsModel.fill", "Molecule has %d %s pairs, the bag size is %d", len(values[t]), t, size)
		}
	}
	for t, v := range values {
		sort.Sort(sort.Reverse(sort.Float64Slice(v)))
		k := M.index[t]
		copy(row[M.offsets[k]:], v)
	}
	return nil
}
