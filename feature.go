/*
 * feature.go, part of molfeat.
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
	"runtime"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

//Featurizer is a feature generator that has not been fitted yet.
//FitModel learns the vocabulary (or size bounds) from a set of molecules
//and returns the fitted Transformer.
type Featurizer interface {
	FitModel(mols []*Molecule) (Transformer, error)
	FitTransform(mols []*Molecule) (*mat.Dense, error)
}

//Transformer is a fitted feature generator. Transform returns a matrix with one
//row per molecule, in input order, and Width() columns. The width never changes
//for a given Transformer.
type Transformer interface {
	Transform(mols []*Molecule) (*mat.Dense, error)
	Width() int
	//Columns returns a name for each column of the output.
	Columns() []string
}

//workers returns the number of goroutines to use, n if positive,
//otherwise the number of logical CPUs.
func workers(n int) int {
	if n > 0 {
		return n
	}
	return runtime.NumCPU()
}

//forEach runs f(i, mols[i]) for every molecule, with at most nworkers
//goroutines at the same time. It returns the first error found, if any.
func forEach(mols []*Molecule, nworkers int, f func(i int, m *Molecule) error) error {
	var g errgroup.Group
	g.SetLimit(workers(nworkers))
	for i, m := range mols {
		g.Go(func() error {
			if m == nil {
				return errors.Wrapf(newError(ErrUnknownConfiguration, "forEach", "nil molecule"), "molecule %d", i)
			}
			if err := f(i, m); err != nil {
				return errors.Wrapf(err, "molecule %d", i)
			}
			return nil
		})
	}
	return g.Wait()
}

//mapMolecules applies f to every molecule concurrently and returns
//the results in input order. On error, no results are returned.
func mapMolecules[T any](mols []*Molecule, nworkers int, f func(*Molecule) (T, error)) ([]T, error) {
	ret := make([]T, len(mols))
	err := forEach(mols, nworkers, func(i int, m *Molecule) error {
		r, err := f(m)
		ret[i] = r
		return err
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}

//transformRows fills one row of width elements per molecule, concurrently,
//using f, which gets a zeroed row to fill. Each goroutine only writes its own row.
//An empty matrix is returned if there are no molecules, or if width is 0.
func transformRows(mols []*Molecule, width, nworkers int, f func(mol *Molecule, row []float64) error) (*mat.Dense, error) {
	data := make([]float64, len(mols)*width)
	err := forEach(mols, nworkers, func(i int, m *Molecule) error {
		return f(m, data[i*width:(i+1)*width])
	})
	if err != nil {
		return nil, err
	}
	if len(mols) == 0 || width == 0 {
		return &mat.Dense{}, nil
	}
	return mat.NewDense(len(mols), width, data), nil
}
