/*
 * pairs.go, part of molfeat.
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
	"strings"

	"github.com/samber/lo"
)

//PairType is an unordered pair of elements. The symbols are always
//kept in alphabetical order, so C-H and H-C are the same PairType.
type PairType [2]string

//NewPairType returns the PairType for elements a and b.
func NewPairType(a, b string) PairType {
	if b < a {
		a, b = b, a
	}
	return PairType{a, b}
}

//ParsePairType parses a PairType from its string representation, e.g. "C-H".
func ParsePairType(s string) (PairType, error) {
	a, b, ok := strings.Cut(s, "-")
	if !ok || a == "" || b == "" {
		return PairType{}, newError(ErrUnknownConfiguration, "ParsePairType", "Invalid pair type %q", s)
	}
	return NewPairType(a, b), nil
}

func (P PairType) String() string {
	return P[0] + "-" + P[1]
}

func comparePairTypes(a, b PairType) int {
	if c := strings.Compare(a[0], b[0]); c != 0 {
		return c
	}
	return strings.Compare(a[1], b[1])
}

//SortPairTypes sorts p in alphabetical order, the order of the
//columns of all featurizers.
func SortPairTypes(p []PairType) {
	slices.SortFunc(p, comparePairTypes)
}

//sortedPairTypes returns the keys of set in alphabetical order.
func sortedPairTypes[V any](set map[PairType]V) []PairType {
	ret := lo.Keys(set)
	SortPairTypes(ret)
	return ret
}

//moleculePairs calls f for every pair of atoms i<j in mol.
func moleculePairs(mol *Molecule, f func(i, j int, t PairType)) {
	n := mol.Len()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			f(i, j, NewPairType(mol.Symbol(i), mol.Symbol(j)))
		}
	}
}
