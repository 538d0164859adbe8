/*
 * kernels.go, part of molfeat.
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
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

//Smoothing is the kernel used to spread one distance over the grid of
//an EncodedBond channel.
type Smoothing int

const (
	//Bump is the standard normal density, centered at the distance.
	Bump Smoothing = iota
	//SaturatingStep is the standard normal cumulative distribution. It goes
	//from 0 to 1 around the distance.
	SaturatingStep
)

//ParseSmoothing returns the Smoothing with the given name.
//Accepted names are "norm" or "bump", and "norm_cdf" or "saturating-step".
func ParseSmoothing(name string) (Smoothing, error) {
	switch name {
	case "norm", "bump":
		return Bump, nil
	case "norm_cdf", "saturating-step":
		return SaturatingStep, nil
	}
	return 0, newError(ErrUnknownConfiguration, "ParseSmoothing", "%q is not a valid smoothing function", name)
}

func (S Smoothing) String() string {
	switch S {
	case Bump:
		return "norm"
	case SaturatingStep:
		return "norm_cdf"
	}
	return "invalid"
}

func (S Smoothing) kernel() (func(float64) float64, bool) {
	switch S {
	case Bump:
		return distuv.UnitNormal.Prob, true
	case SaturatingStep:
		return distuv.UnitNormal.CDF, true
	}
	return nil, false
}

//Spacing is the transformation applied to distances (and to the grid limits)
//before placing them on the grid of an EncodedBond channel.
type Spacing int

const (
	Linear Spacing = iota
	Inverse
	Log
)

//ParseSpacing returns the Spacing with the given name: "linear", "inverse" or "log".
func ParseSpacing(name string) (Spacing, error) {
	switch name {
	case "linear":
		return Linear, nil
	case "inverse":
		return Inverse, nil
	case "log":
		return Log, nil
	}
	return 0, newError(ErrUnknownConfiguration, "ParseSpacing", "%q is not a valid spacing function", name)
}

func (S Spacing) String() string {
	switch S {
	case Linear:
		return "linear"
	case Inverse:
		return "inverse"
	case Log:
		return "log"
	}
	return "invalid"
}

func (S Spacing) transform() (func(float64) float64, bool) {
	switch S {
	case Linear:
		return func(x float64) float64 { return x }, true
	case Inverse:
		return func(x float64) float64 { return 1 / x }, true
	case Log:
		return math.Log, true
	}
	return nil, false
}
