/*
 * v3.go, part of molfeat.
 *
 * Copyright 2015 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const cols int = 3

//Matrix is a set of vectors in 3D space.
//Within the package it is understood that a "vector" is a row vector, i.e. the
//cartesian coordinates of a point in 3D space.
type Matrix struct {
	*mat.Dense
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
//The data slice is used as backing storage, not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, &Error{fmt.Sprintf("Input slice length %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}}
	}
	if rows == 0 {
		//gonum refuses zero-sized Dense matrices, we represent
		//an empty set of vectors with a nil Dense.
		return &Matrix{}, nil
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	if vecs == 0 {
		return &Matrix{}
	}
	return &Matrix{mat.NewDense(vecs, cols, nil)}
}

//NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	if F == nil || F.Dense == nil {
		return 0
	}
	r, _ := F.Dims()
	return r
}

//Vec copies the ith vector of F into dst, which is allocated if nil,
//and returns it.
func (F *Matrix) Vec(dst []float64, i int) []float64 {
	if dst == nil {
		dst = make([]float64, cols)
	}
	return mat.Row(dst, i, F.Dense)
}

//Distance returns the euclidean distance between the ith and jth vectors of F.
func (F *Matrix) Distance(i, j int) float64 {
	var a, b [cols]float64
	mat.Row(a[:], i, F.Dense)
	mat.Row(b[:], j, F.Dense)
	return floats.Distance(a[:], b[:], 2)
}

//Distances returns a symmetric matrix with all the pairwise
//distances between the vectors of F. The diagonal is zero.
//It returns nil for an empty F.
func (F *Matrix) Distances() *mat.SymDense {
	n := F.NVecs()
	if n == 0 {
		return nil
	}
	d := mat.NewSymDense(n, nil)
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = F.Vec(nil, i)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d.SetSym(i, j, floats.Distance(rows[i], rows[j], 2))
		}
	}
	return d
}

//String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	n := F.NVecs()
	if n == 0 {
		return "[ ]"
	}
	v := make([]string, 0, n)
	row := make([]float64, cols)
	for i := 0; i < n; i++ {
		F.Vec(row, i)
		v = append(v, fmt.Sprintf("%6.2f %6.2f %6.2f", row[0], row[1], row[2]))
	}
	return "\n[" + strings.Join(v, "\n ") + " ]"
}

//Error is the error type returned by the package.
type Error struct {
	message string
	deco    []string
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	err.deco = append(err.deco, dec)
	return err.deco
}
