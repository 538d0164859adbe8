/*
 * encodedbond.go, part of molfeat.
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
	"math"
	"slices"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//EncodedBondOptions contains the options for the EncodedBond featurizer.
type EncodedBondOptions struct {
	//only pairs of atoms separated by at most MaxDepth bonds contribute.
	//A negative value means all pairs contribute.
	MaxDepth  int
	Smoothing Smoothing
	Spacing   Spacing
	//number of grid points per element pair (the resolution)
	Segments int
	//limits of the grid, in A, before the spacing transformation.
	Start, End float64
	//scale factor applied to the differences between grid points and distances
	//before evaluating the kernel. Larger slopes give sharper peaks.
	Slope float64
	//If true, the grid spans the shortest and longest distance found
	//in the fit, instead of Start and End.
	AutoRange bool
	//bond tolerance for the bond graph. DefaultBondTolerance is used if not positive.
	Tolerance float64
	//goroutines to use. All logical CPUs if not positive.
	Workers int
}

//DefaultEncodedBondOptions returns the default options: all pairs, a normal
//bump kernel and 100 points linearly spaced between 0.2 and 6.0 A.
func DefaultEncodedBondOptions() *EncodedBondOptions {
	return &EncodedBondOptions{
		MaxDepth:  -1,
		Smoothing: Bump,
		Spacing:   Linear,
		Segments:  100,
		Start:     0.2,
		End:       6.0,
		Slope:     20,
		Tolerance: DefaultBondTolerance,
	}
}

//functions returns the kernel and the spacing transformation,
//or an error if the options are not valid.
func (O *EncodedBondOptions) functions(caller string) (kernel, space func(float64) float64, err error) {
	var ok bool
	if kernel, ok = O.Smoothing.kernel(); !ok {
		return nil, nil, newError(ErrUnknownConfiguration, caller, "Smoothing %d is not a valid smoothing function", int(O.Smoothing))
	}
	if space, ok = O.Spacing.transform(); !ok {
		return nil, nil, newError(ErrUnknownConfiguration, caller, "Spacing %d is not a valid spacing function", int(O.Spacing))
	}
	if O.Segments < 2 {
		return nil, nil, newError(ErrUnknownConfiguration, caller, "At least 2 segments are needed, got %d", O.Segments)
	}
	if O.Slope <= 0 || math.IsNaN(O.Slope) {
		return nil, nil, newError(ErrUnknownConfiguration, caller, "Slope must be positive, got %f", O.Slope)
	}
	if O.Spacing != Linear && (O.Start <= 0 || O.End <= 0) {
		return nil, nil, newError(ErrUnknownConfiguration, caller, "%s spacing needs positive grid limits, got %f, %f", O.Spacing, O.Start, O.End)
	}
	return kernel, space, nil
}

func (O *EncodedBondOptions) tolerance() float64 {
	if O.Tolerance <= 0 {
		return DefaultBondTolerance
	}
	return O.Tolerance
}

type pairDistance struct {
	t PairType
	d float64
	//the atoms are within MaxDepth bonds
	within bool
}

//pairs returns the element pair and distance for every pair of atoms
//in mol, and whether the pair is within MaxDepth bonds.
func (O *EncodedBondOptions) pairs(mol *Molecule) ([]pairDistance, error) {
	var depths [][]int
	if O.MaxDepth >= 0 {
		g, err := NewBondGraph(mol, O.tolerance())
		if err != nil {
			return nil, err
		}
		depths = g.PathLengths()
	}
	n := mol.Len()
	ret := make([]pairDistance, 0, n*(n-1)/2)
	moleculePairs(mol, func(i, j int, t PairType) {
		within := depths == nil || (depths[i][j] >= 0 && depths[i][j] <= O.MaxDepth)
		ret = append(ret, pairDistance{t: t, d: mol.Distance(i, j), within: within})
	})
	return ret, nil
}

//EncodedBond encodes all the interatomic distances of a molecule as
//smoothed histograms, one per element pair (a channel). The channels
//are learned with a fit.
type EncodedBond struct {
	opts EncodedBondOptions
}

//NewEncodedBond returns a new EncodedBond featurizer. If opts is nil
//DefaultEncodedBondOptions are used. Invalid options give an error
//of kind ErrUnknownConfiguration.
func NewEncodedBond(opts *EncodedBondOptions) (*EncodedBond, error) {
	if opts == nil {
		opts = DefaultEncodedBondOptions()
	}
	if _, _, err := opts.functions("NewEncodedBond"); err != nil {
		return nil, err
	}
	return &EncodedBond{opts: *opts}, nil
}

type encodedBondFit struct {
	types    map[PairType]bool
	min, max float64
}

//Fit learns the element pairs present in mols, and the range of the distances
//of the pairs within MaxDepth bonds. Every element pair gets a channel,
//whatever MaxDepth is.
func (E *EncodedBond) Fit(mols []*Molecule) (*EncodedBondModel, error) {
	if _, _, err := E.opts.functions("EncodedBond.Fit"); err != nil {
		return nil, err
	}
	perMol, err := mapMolecules(mols, E.opts.Workers, func(mol *Molecule) (encodedBondFit, error) {
		ps, err := E.opts.pairs(mol)
		if err != nil {
			return encodedBondFit{}, err
		}
		r := encodedBondFit{types: make(map[PairType]bool), min: math.Inf(1), max: math.Inf(-1)}
		for _, p := range ps {
			r.types[p.t] = true
			if !p.within {
				continue
			}
			r.min = math.Min(r.min, p.d)
			r.max = math.Max(r.max, p.d)
		}
		return r, nil
	})
	if err != nil {
		return nil, errDecorate(err, "EncodedBond.Fit")
	}
	types := make(map[PairType]bool)
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, r := range perMol {
		for t := range r.types {
			types[t] = true
		}
		lo = math.Min(lo, r.min)
		hi = math.Max(hi, r.max)
	}
	opts := E.opts
	M, err := newEncodedBondModel(&opts, sortedPairTypes(types))
	if err != nil {
		return nil, errDecorate(err, "EncodedBond.Fit")
	}
	//no pair within MaxDepth leaves the range unknown.
	if lo <= hi {
		M.min, M.max = lo, hi
		if opts.AutoRange {
			M.setGrid(lo, hi)
		}
	}
	L().Debug("fitted featurizer", zap.String("featurizer", "EncodedBond"),
		zap.Int("molecules", len(mols)), zap.Int("channels", len(M.pairs)),
		zap.Float64("min_distance", M.min), zap.Float64("max_distance", M.max), zap.Int("width", M.Width()))
	return M, nil
}

//FitModel implements Featurizer.
func (E *EncodedBond) FitModel(mols []*Molecule) (Transformer, error) {
	return E.Fit(mols)
}

//FitTransform fits the featurizer to mols and returns their features.
func (E *EncodedBond) FitTransform(mols []*Molecule) (*mat.Dense, error) {
	M, err := E.Fit(mols)
	if err != nil {
		return nil, err
	}
	return M.Transform(mols)
}

//EncodedBondModel is a fitted EncodedBond featurizer.
type EncodedBondModel struct {
	opts          EncodedBondOptions
	pairs         []PairType
	index         map[PairType]int
	grid          []float64
	kernel, space func(float64) float64
	min, max      float64
}

func newEncodedBondModel(opts *EncodedBondOptions, pairs []PairType) (*EncodedBondModel, error) {
	kernel, space, err := opts.functions("newEncodedBondModel")
	if err != nil {
		return nil, err
	}
	M := &EncodedBondModel{
		opts:   *opts,
		pairs:  pairs,
		index:  make(map[PairType]int, len(pairs)),
		grid:   make([]float64, opts.Segments),
		kernel: kernel,
		space:  space,
		min:    math.NaN(),
		max:    math.NaN(),
	}
	for i, p := range pairs {
		M.index[p] = i
	}
	M.setGrid(opts.Start, opts.End)
	return M, nil
}

func (M *EncodedBondModel) setGrid(start, end float64) {
	floats.Span(M.grid, M.space(start), M.space(end))
}

//NewEncodedBondModel rebuilds a fitted model from its element pairs, as returned
//by the PairTypes method. The grid always spans opts.Start to opts.End; to restore
//a model fitted with AutoRange, set them to the values returned by DistanceRange.
func NewEncodedBondModel(opts *EncodedBondOptions, pairs []PairType) (*EncodedBondModel, error) {
	if opts == nil {
		opts = DefaultEncodedBondOptions()
	}
	set := make(map[PairType]bool, len(pairs))
	for _, p := range pairs {
		set[NewPairType(p[0], p[1])] = true
	}
	M, err := newEncodedBondModel(opts, sortedPairTypes(set))
	if err != nil {
		return nil, errDecorate(err, "NewEncodedBondModel")
	}
	return M, nil
}

//PairTypes returns a copy of the element pairs (channels), in column order.
func (M *EncodedBondModel) PairTypes() []PairType {
	if M == nil {
		return nil
	}
	return slices.Clone(M.pairs)
}

//Grid returns a copy of the grid points of each channel, in the spacing
//(i.e. transformed) space.
func (M *EncodedBondModel) Grid() []float64 {
	if M == nil {
		return nil
	}
	return slices.Clone(M.grid)
}

//DistanceRange returns the shortest and longest distances considered in the fit.
//Both are NaN if the model was not produced by a fit, or no pairs were found.
func (M *EncodedBondModel) DistanceRange() (float64, float64) {
	if M == nil {
		return math.NaN(), math.NaN()
	}
	return M.min, M.max
}

//Spacing returns the spacing function of the grid.
func (M *EncodedBondModel) Spacing() Spacing {
	if M == nil {
		return Linear
	}
	return M.opts.Spacing
}

//Smoothing returns the smoothing function used to encode each distance.
func (M *EncodedBondModel) Smoothing() Smoothing {
	if M == nil {
		return Bump
	}
	return M.opts.Smoothing
}

//Segments returns the number of grid points per channel.
func (M *EncodedBondModel) Segments() int {
	if M == nil {
		return 0
	}
	return len(M.grid)
}

//Width returns the number of columns of the output.
func (M *EncodedBondModel) Width() int {
	if M == nil {
		return 0
	}
	return len(M.pairs) * len(M.grid)
}

//Columns returns a name for each column, of the form "C-H_0".
func (M *EncodedBondModel) Columns() []string {
	if M == nil {
		return nil
	}
	ret := make([]string, 0, M.Width())
	for _, p := range M.pairs {
		for k := range M.grid {
			ret = append(ret, fmt.Sprintf("%s_%d", p, k))
		}
	}
	return ret
}

//Transform returns, for each molecule, the smoothed histograms of distances
//of each channel, concatenated in channel order. Pairs of elements not seen
//in the fit are ignored.
func (M *EncodedBondModel) Transform(mols []*Molecule) (*mat.Dense, error) {
	if M == nil || M.index == nil {
		return nil, newError(ErrNotFitted, "EncodedBondModel.Transform", "EncodedBond featurizer has not been fitted")
	}
	seg := len(M.grid)
	ret, err := transformRows(mols, M.Width(), M.opts.Workers, func(mol *Molecule, row []float64) error {
		ps, err := M.opts.pairs(mol)
		if err != nil {
			return err
		}
		for _, p := range ps {
			k, ok := M.index[p.t]
			if !ok || !p.within {
				continue
			}
			M.encode(row[k*seg:(k+1)*seg], p.d)
		}
		return nil
	})
	if err != nil {
		return nil, errDecorate(err, "EncodedBondModel.Transform")
	}
	return ret, nil
}

//encode adds the contribution of distance d to the channel ch.
func (M *EncodedBondModel) encode(ch []float64, d float64) {
	x := M.space(d)
	for i, theta := range M.grid {
		ch[i] += M.kernel(M.opts.Slope * (theta - x))
	}
}
