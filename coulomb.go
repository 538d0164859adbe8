/*
 * coulomb.go, part of molfeat.
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

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

//CoulombOptions contains the options for the CoulombMatrix featurizer.
type CoulombOptions struct {
	//goroutines to use. All logical CPUs if not positive.
	Workers int
}

//CoulombMatrix describes a molecule by the matrix of nuclear repulsions
//between its atoms, Z_i*Z_j/d_ij, with 0.5*Z_i^2.4 in the diagonal.
//The size of the matrix is the size of the largest molecule in the fit;
//smaller molecules are padded with zeros.
type CoulombMatrix struct {
	opts CoulombOptions
}

//NewCoulombMatrix returns a new CoulombMatrix featurizer. opts can be nil.
func NewCoulombMatrix(opts *CoulombOptions) *CoulombMatrix {
	C := new(CoulombMatrix)
	if opts != nil {
		C.opts = *opts
	}
	return C
}

//Fit records the number of atoms of the largest molecule in mols.
func (C *CoulombMatrix) Fit(mols []*Molecule) (*CoulombMatrixModel, error) {
	sizes, err := mapMolecules(mols, C.opts.Workers, func(mol *Molecule) (int, error) {
		return mol.Len(), nil
	})
	if err != nil {
		return nil, errDecorate(err, "CoulombMatrix.Fit")
	}
	M := &CoulombMatrixModel{opts: C.opts, size: lo.Max(sizes), fitted: true}
	L().Debug("fitted featurizer", zap.String("featurizer", "CoulombMatrix"),
		zap.Int("molecules", len(mols)), zap.Int("size", M.size), zap.Int("width", M.Width()))
	return M, nil
}

//FitModel implements Featurizer.
func (C *CoulombMatrix) FitModel(mols []*Molecule) (Transformer, error) {
	return C.Fit(mols)
}

//FitTransform fits the featurizer to mols and returns their features.
func (C *CoulombMatrix) FitTransform(mols []*Molecule) (*mat.Dense, error) {
	M, err := C.Fit(mols)
	if err != nil {
		return nil, err
	}
	return M.Transform(mols)
}

//CoulombMatrixModel is a fitted CoulombMatrix featurizer.
type CoulombMatrixModel struct {
	opts   CoulombOptions
	size   int
	fitted bool
}

//NewCoulombMatrixModel rebuilds a fitted model for molecules of up to size atoms.
func NewCoulombMatrixModel(opts *CoulombOptions, size int) (*CoulombMatrixModel, error) {
	if size < 0 {
		return nil, newError(ErrUnknownConfiguration, "NewCoulombMatrixModel", "Negative size %d", size)
	}
	M := &CoulombMatrixModel{size: size, fitted: true}
	if opts != nil {
		M.opts = *opts
	}
	return M, nil
}

//Size returns the number of atoms of the largest molecule in the fit,
//the dimension of the matrices produced.
func (M *CoulombMatrixModel) Size() int {
	if M == nil {
		return 0
	}
	return M.size
}

//Width returns the number of columns of the output.
func (M *CoulombMatrixModel) Width() int {
	return M.Size() * M.Size()
}

//Columns returns a name for each column, of the form "C_i_j".
func (M *CoulombMatrixModel) Columns() []string {
	n := M.Size()
	ret := make([]string, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			ret = append(ret, fmt.Sprintf("C_%d_%d", i, j))
		}
	}
	return ret
}

func (M *CoulombMatrixModel) check(caller string) error {
	if M == nil || !M.fitted {
		return newError(ErrNotFitted, caller, "CoulombMatrix featurizer has not been fitted")
	}
	return nil
}

//fill puts the Coulomb matrix of mol in dst, a row-major n x n
//matrix with n the model size.
func (M *CoulombMatrixModel) fill(mol *Molecule, dst []float64) error {
	n := mol.Len()
	if n > M.size {
		L().Debug("molecule too large", zap.String("featurizer", "CoulombMatrix"), zap.Int("atoms", n), zap.Int("size", M.size))
		return newError(ErrSizeMismatch, "CoulombMatrixModel.fill", "Molecule with %d atoms, the matrix size is %d", n, M.size)
	}
	for i := 0; i < n; i++ {
		zi := float64(mol.Number(i))
		dst[i*M.size+i] = 0.5 * math.Pow(zi, 2.4)
		for j := i + 1; j < n; j++ {
			v := zi * float64(mol.Number(j)) / mol.Distance(i, j)
			dst[i*M.size+j] = v
			dst[j*M.size+i] = v
		}
	}
	return nil
}

//Matrix returns the Coulomb matrix for a single molecule, padded to the model size.
func (M *CoulombMatrixModel) Matrix(mol *Molecule) (*mat.SymDense, error) {
	if err := M.check("CoulombMatrixModel.Matrix"); err != nil {
		return nil, err
	}
	if M.size == 0 {
		if mol.Len() > 0 {
			return nil, newError(ErrSizeMismatch, "CoulombMatrixModel.Matrix", "Molecule with %d atoms, the matrix size is 0", mol.Len())
		}
		return &mat.SymDense{}, nil
	}
	data := make([]float64, M.size*M.size)
	if err := M.fill(mol, data); err != nil {
		return nil, errDecorate(err, "CoulombMatrixModel.Matrix")
	}
	return mat.NewSymDense(M.size, data), nil
}

//Transform returns, for each molecule, its Coulomb matrix flattened in row-major
//order. Atoms are kept in input order.
func (M *CoulombMatrixModel) Transform(mols []*Molecule) (*mat.Dense, error) {
	if err := M.check("CoulombMatrixModel.Transform"); err != nil {
		return nil, err
	}
	ret, err := transformRows(mols, M.Width(), M.opts.Workers, M.fill)
	if err != nil {
		return nil, errDecorate(err, "CoulombMatrixModel.Transform")
	}
	return ret, nil
}
