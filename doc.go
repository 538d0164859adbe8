/*
 * doc.go, part of molfeat.
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

/*
Package feat turns molecules, given as element symbols plus cartesian coordinates,
into fixed-length vectors of numbers, to be used as input for machine-learning models.

The featurizers are:

  - Connectivity: counts the atoms, bonds, angles, dihedrals (or longer chains)
    of each type. Bonds can be annotated with their order and atoms with their
    coordination number.
  - EncodedBond: smoothed histograms of the interatomic distances, one per
    pair of elements.
  - CoulombMatrix: the matrix of nuclear repulsions, zero-padded to the size of
    the largest molecule seen.
  - BagOfBonds: the off-diagonal Coulomb terms grouped by pair of elements,
    sorted and zero-padded.

All featurizers work in 2 steps. Fit, on an unfitted featurizer, learns a vocabulary
(or size bounds) from a set of molecules and returns a fitted model. The model's
Transform maps any set of molecules to a matrix with one row per molecule and a
number of columns that is fixed by the fit. Molecules are processed concurrently.

Errors returned by the package wrap one of ErrNotFitted, ErrSizeMismatch,
ErrUnknownConfiguration and ErrUnknownElement, so they can be told apart with errors.Is.
*/
package feat
