/*
 * plot.go, part of molfeat.
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

//Package featplot draws the features produced by molfeat featurizers,
//using gonum/plot.
package featplot

import (
	"image/color"
	"math"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/rmera/molfeat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Size of the saved plots, in inches.
var (
	Width  = 6.0
	Height = 4.0
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//Channels splits row, a row produced by M.Transform, in one
//set of points per pair type, with the grid values as X.
//The returned slice follows the order of M.PairTypes().
func Channels(M *feat.EncodedBondModel, row []float64) ([]plotter.XYs, error) {
	if M == nil {
		return nil, errors.Wrap(feat.ErrNotFitted, "featplot.Channels")
	}
	if len(row) != M.Width() {
		return nil, errors.Wrapf(feat.ErrSizeMismatch, "featplot.Channels: row with %d elements, model width is %d", len(row), M.Width())
	}
	grid := M.Grid()
	seg := len(grid)
	ret := make([]plotter.XYs, 0, len(M.PairTypes()))
	for k := range M.PairTypes() {
		xy := make(plotter.XYs, seg)
		for i, g := range grid {
			xy[i].X = g
			xy[i].Y = row[k*seg+i]
		}
		ret = append(ret, xy)
	}
	return ret, nil
}

//EncodedBond plots, as lines, the channels of row, a row of the output of M.Transform.
//Each pair type gets its own color and legend entry. Pair types with
//all-zero channels are skipped. The plot is saved in PNG format in plotname+".png",
//unless plotname already has an extension supported by gonum/plot.
func EncodedBond(M *feat.EncodedBondModel, row []float64, title, plotname string) error {
	chans, err := Channels(M, row)
	if err != nil {
		return err
	}
	p := basicPlot(title, "Grid ("+M.Spacing().String()+")", "Intensity")
	pairs := M.PairTypes()
	for k, xy := range chans {
		if allZero(xy) {
			continue
		}
		l, err := plotter.NewLine(xy)
		if err != nil {
			return errors.Wrapf(err, "featplot.EncodedBond: channel %s", pairs[k])
		}
		r, g, b := colors(k, len(chans))
		l.LineStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		l.LineStyle.Width = vg.Points(1.5)
		p.Add(l)
		p.Legend.Add(pairs[k].String(), l)
	}
	p.Legend.Top = true
	return save(p, plotname)
}

//Distances plots a histogram of the pairwise distances of the molecules in mols,
//one per pair type, using bins bins. The plot is saved like in EncodedBond.
func Distances(mols []*feat.Molecule, bins int, title, plotname string) error {
	if bins < 1 {
		return errors.Wrapf(feat.ErrUnknownConfiguration, "featplot.Distances: %d bins", bins)
	}
	values := make(map[feat.PairType]plotter.Values)
	var order []feat.PairType
	for i, mol := range mols {
		if mol == nil {
			return errors.Wrapf(feat.ErrUnknownConfiguration, "featplot.Distances: nil molecule %d", i)
		}
		for a := 0; a < mol.Len(); a++ {
			for b := a + 1; b < mol.Len(); b++ {
				t := feat.NewPairType(mol.Symbol(a), mol.Symbol(b))
				if _, ok := values[t]; !ok {
					order = append(order, t)
				}
				values[t] = append(values[t], mol.Distance(a, b))
			}
		}
	}
	feat.SortPairTypes(order)
	p := basicPlot(title, "Distance (A)", "Count")
	for k, t := range order {
		h, err := plotter.NewHist(values[t], bins)
		if err != nil {
			return errors.Wrapf(err, "featplot.Distances: pair %s", t)
		}
		r, g, b := colors(k, len(order))
		h.FillColor = color.RGBA{R: r, G: g, B: b, A: 128}
		h.LineStyle.Width = 0
		p.Add(h)
		p.Legend.Add(t.String(), h)
	}
	p.Legend.Top = true
	return save(p, plotname)
}

func allZero(xy plotter.XYs) bool {
	for _, v := range xy {
		if v.Y != 0 {
			return false
		}
	}
	return true
}

func save(p *plot.Plot, plotname string) error {
	filename := plotname
	switch filepath.Ext(plotname) {
	case ".png", ".svg", ".pdf", ".eps", ".jpg", ".jpeg", ".tif", ".tiff":
	default:
		filename = plotname + ".png"
	}
	if err := p.Save(vg.Length(Width)*vg.Inch, vg.Length(Height)*vg.Inch, filename); err != nil {
		return errors.Wrapf(err, "featplot: saving %s", filename)
	}
	return nil
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var i, f, p, q, t float64
	var r, g, b float64
	maxcolor := 255.0
	conversion := maxcolor * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i = math.Floor(h)
	f = h - i
	p = v * (1 - s)
	q = v * (1 - s*f)
	t = v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default: //case 5
		r, g, b = v, p, q
	}
	return uint8(r * conversion), uint8(g * conversion), uint8(b * conversion)
}

//colors returns a color for the key-th of steps series, going
//through the hues and skipping the yellows.
func colors(key, steps int) (r, g, b uint8) {
	norm := 260.0 / float64(steps)
	hp := float64(key)*norm + 20.0
	h := hp + 20.0
	if hp < 55 {
		h = hp - 20.0
	}
	return iHVS2RGB(h, 1.0, 1.0)
}
