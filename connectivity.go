/*
 * connectivity.go, part of molfeat.
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
	"slices"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

//UnknownColumn is the name of the extra column that collects the
//chains absent from the vocabulary, when ConnectivityOptions.AddUnknown is set.
const UnknownColumn = "UNKNOWN"

//ConnectivityOptions contains the options for the Connectivity featurizer.
type ConnectivityOptions struct {
	//number of atoms in the chains counted: 1 atoms, 2 bonds, 3 angles, 4 dihedrals...
	Depth int
	//annotate bonds with their bond order
	UseBondOrder bool
	//annotate atoms with their coordination number
	UseCoordination bool
	//count chains not seen during the fit in an extra, last, column.
	//If false, those chains are ignored.
	AddUnknown bool
	//bond tolerance for the bond graph. DefaultBondTolerance is used if not positive.
	Tolerance float64
	//goroutines to use. All logical CPUs if not positive.
	Workers int
}

//DefaultConnectivityOptions returns options to count atoms by element.
func DefaultConnectivityOptions() *ConnectivityOptions {
	return &ConnectivityOptions{Depth: 1, Tolerance: DefaultBondTolerance}
}

func (O *ConnectivityOptions) validate(caller string) error {
	if O.Depth < 1 {
		return newError(ErrUnknownConfiguration, caller, "Connectivity depth must be at least 1, got %d", O.Depth)
	}
	return nil
}

func (O *ConnectivityOptions) tolerance() float64 {
	if O.Tolerance <= 0 {
		return DefaultBondTolerance
	}
	return O.Tolerance
}

func (O *ConnectivityOptions) labelOptions() LabelOptions {
	return LabelOptions{BondOrder: O.UseBondOrder, Coordination: O.UseCoordination}
}

//labels returns the canonical label of every chain in mol.
func (O *ConnectivityOptions) labels(mol *Molecule) ([]string, error) {
	g, err := NewBondGraph(mol, O.tolerance())
	if err != nil {
		return nil, err
	}
	return g.Labels(O.Depth, O.labelOptions()), nil
}

//Connectivity counts the chains of atoms (atoms, bonds, angles, dihedrals...)
//of each type in a molecule. The types of chains are learned with a fit.
type Connectivity struct {
	opts ConnectivityOptions
}

//NewConnectivity returns a Connectivity featurizer. If opts is nil,
//DefaultConnectivityOptions are used.
func NewConnectivity(opts *ConnectivityOptions) (*Connectivity, error) {
	if opts == nil {
		opts = DefaultConnectivityOptions()
	}
	if err := opts.validate("NewConnectivity"); err != nil {
		return nil, err
	}
	return &Connectivity{opts: *opts}, nil
}

//Fit learns the vocabulary of chain labels present in mols and returns
//the fitted model.
func (C *Connectivity) Fit(mols []*Molecule) (*ConnectivityModel, error) {
	if err := C.opts.validate("Connectivity.Fit"); err != nil {
		return nil, err
	}
	perMol, err := mapMolecules(mols, C.opts.Workers, C.opts.labels)
	if err != nil {
		return nil, errDecorate(err, "Connectivity.Fit")
	}
	vocab := lo.Uniq(lo.Flatten(perMol))
	slices.Sort(vocab)
	M := newConnectivityModel(C.opts, vocab)
	L().Debug("fitted featurizer", zap.String("featurizer", "Connectivity"),
		zap.Int("molecules", len(mols)), zap.Int("depth", C.opts.Depth), zap.Int("width", M.Width()))
	return M, nil
}

//FitModel implements Featurizer.
func (C *Connectivity) FitModel(mols []*Molecule) (Transformer, error) {
	return C.Fit(mols)
}

//FitTransform fits the featurizer to mols and returns their features.
func (C *Connectivity) FitTransform(mols []*Molecule) (*mat.Dense, error) {
	M, err := C.Fit(mols)
	if err != nil {
		return nil, err
	}
	return M.Transform(mols)
}

//ConnectivityModel is a fitted Connectivity featurizer.
type ConnectivityModel struct {
	opts  ConnectivityOptions
	vocab []string
	index map[string]int
}

func newConnectivityModel(opts ConnectivityOptions, vocab []string) *ConnectivityModel {
	M := &ConnectivityModel{opts: opts, vocab: vocab, index: make(map[string]int, len(vocab))}
	for i, v := range vocab {
		M.index[v] = i
	}
	return M
}

//NewConnectivityModel rebuilds a fitted model from a vocabulary, as
//returned by the Vocabulary method. labels is copied and sorted.
func NewConnectivityModel(opts *ConnectivityOptions, labels []string) (*ConnectivityModel, error) {
	if opts == nil {
		opts = DefaultConnectivityOptions()
	}
	if err := opts.validate("NewConnectivityModel"); err != nil {
		return nil, err
	}
	vocab := lo.Uniq(labels)
	slices.Sort(vocab)
	return newConnectivityModel(*opts, vocab), nil
}

//Vocabulary returns a copy of the labels learned in the fit, in column order.
func (M *ConnectivityModel) Vocabulary() []string {
	if M == nil {
		return nil
	}
	return slices.Clone(M.vocab)
}

//Width returns the number of columns of the output.
func (M *ConnectivityModel) Width() int {
	if M == nil {
		return 0
	}
	if M.opts.AddUnknown {
		return len(M.vocab) + 1
	}
	return len(M.vocab)
}

//Columns returns the vocabulary, plus UnknownColumn if unknown chains are counted.
func (M *ConnectivityModel) Columns() []string {
	ret := M.Vocabulary()
	if M != nil && M.opts.AddUnknown {
		ret = append(ret, UnknownColumn)
	}
	return ret
}

//Transform counts, for each molecule, the chains of each label in the vocabulary.
func (M *ConnectivityModel) Transform(mols []*Molecule) (*mat.Dense, error) {
	if M == nil || M.index == nil {
		return nil, newError(ErrNotFitted, "ConnectivityModel.Transform", "Connectivity featurizer has not been fitted")
	}
	width := M.Width()
	ret, err := transformRows(mols, width, M.opts.Workers, func(mol *Molecule, row []float64) error {
		labels, err := M.opts.labels(mol)
		if err != nil {
			return err
		}
		for _, l := range labels {
			if k, ok := M.index[l]; ok {
				row[k]++
			} else if M.opts.AddUnknown {
				row[width-1]++
			}
		}
		return nil
	})
	if err != nil {
		return nil, errDecorate(err, "ConnectivityModel.Transform")
	}
	return ret, nil
}
