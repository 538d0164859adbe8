/*
 * atomicdata.go, part of molfeat.
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

//Element holds the reference data molfeat needs for one chemical element.
type Element struct {
	Symbol string
	Number int
	//covalent radius in A, from Cordero et al., 2008 (DOI:10.1039/B801115J)
	CovRad float64
	//half bond lengths in A for each bond order. The cutoff for a bond of
	//a given order between 2 atoms is the sum of both half lengths.
	halfBonds map[BondOrder]float64
}

//A map for assigning reference data to elements.
//Note that just common "bio-elements" and a few others are present
var elements = map[string]*Element{
	"H":  {Symbol: "H", Number: 1, CovRad: 0.31, halfBonds: map[BondOrder]float64{Single: 0.6}},
	"He": {Symbol: "He", Number: 2, CovRad: 0.28},
	"Li": {Symbol: "Li", Number: 3, CovRad: 1.28},
	"Be": {Symbol: "Be", Number: 4, CovRad: 0.96},
	"B":  {Symbol: "B", Number: 5, CovRad: 0.84, halfBonds: map[BondOrder]float64{Double: 0.75, Single: 0.9}},
	"C": {Symbol: "C", Number: 6, CovRad: 0.76, halfBonds: map[BondOrder]float64{
		Triple: 0.62, Double: 0.69, Aromatic: 0.72, Single: 0.85}},
	"N": {Symbol: "N", Number: 7, CovRad: 0.71, halfBonds: map[BondOrder]float64{
		Triple: 0.565, Double: 0.63, Aromatic: 0.655, Single: 0.74}},
	"O": {Symbol: "O", Number: 8, CovRad: 0.66, halfBonds: map[BondOrder]float64{
		Triple: 0.53, Double: 0.59, Aromatic: 0.62, Single: 0.725}},
	"F":  {Symbol: "F", Number: 9, CovRad: 0.57, halfBonds: map[BondOrder]float64{Single: 0.65}},
	"Ne": {Symbol: "Ne", Number: 10, CovRad: 0.58},
	"Na": {Symbol: "Na", Number: 11, CovRad: 1.66},
	"Mg": {Symbol: "Mg", Number: 12, CovRad: 1.41},
	"Al": {Symbol: "Al", Number: 13, CovRad: 1.21},
	"Si": {Symbol: "Si", Number: 14, CovRad: 1.11, halfBonds: map[BondOrder]float64{Single: 1.1}},
	"P":  {Symbol: "P", Number: 15, CovRad: 1.07, halfBonds: map[BondOrder]float64{Double: 0.9, Single: 1.1}},
	"S": {Symbol: "S", Number: 16, CovRad: 1.05, halfBonds: map[BondOrder]float64{
		Double: 0.95, Aromatic: 0.98, Single: 1.07}},
	"Cl": {Symbol: "Cl", Number: 17, CovRad: 1.02, halfBonds: map[BondOrder]float64{Single: 1.045}},
	"Ar": {Symbol: "Ar", Number: 18, CovRad: 1.06},
	"K":  {Symbol: "K", Number: 19, CovRad: 2.03},
	"Ca": {Symbol: "Ca", Number: 20, CovRad: 1.76},
	"Cr": {Symbol: "Cr", Number: 24, CovRad: 1.39},
	"Mn": {Symbol: "Mn", Number: 25, CovRad: 1.61}, //hs
	"Fe": {Symbol: "Fe", Number: 26, CovRad: 1.52}, //hs
	"Co": {Symbol: "Co", Number: 27, CovRad: 1.5},  //hs
	"Ni": {Symbol: "Ni", Number: 28, CovRad: 1.24},
	"Cu": {Symbol: "Cu", Number: 29, CovRad: 1.32},
	"Zn": {Symbol: "Zn", Number: 30, CovRad: 1.22},
	"Se": {Symbol: "Se", Number: 34, CovRad: 1.2},
	"Br": {Symbol: "Br", Number: 35, CovRad: 1.2, halfBonds: map[BondOrder]float64{Single: 1.2}},
	"I":  {Symbol: "I", Number: 53, CovRad: 1.39, halfBonds: map[BondOrder]float64{Single: 1.4}},
}

//LookupElement returns the reference data for the element with the given
//symbol, or an error of kind ErrUnknownElement.
func LookupElement(symbol string) (*Element, error) {
	e, ok := elements[symbol]
	if !ok {
		return nil, newError(ErrUnknownElement, "LookupElement", "No reference data for element %q", symbol)
	}
	return e, nil
}

//AtomicNumber returns the atomic number for symbol.
func AtomicNumber(symbol string) (int, error) {
	e, err := LookupElement(symbol)
	if err != nil {
		return 0, errDecorate(err, "AtomicNumber")
	}
	return e.Number, nil
}

//CovalentRadius returns the covalent radius, in A, for symbol.
func CovalentRadius(symbol string) (float64, error) {
	e, err := LookupElement(symbol)
	if err != nil {
		return 0, errDecorate(err, "CovalentRadius")
	}
	return e.CovRad, nil
}
