/*
 * plot.go, part of gonerdss.
 *
 * Copyright 2024 The gonerdss Authors
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

package rdplot

import (
	"fmt"
	"image/color"
	"math"

	nerdss "github.com/nerdss/gonerdss"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Size is the width and height of the plots produced.
var Size = 5 * vg.Inch

// ContactMap plots the contacting residues of in, one point per residue pair,
// with the residue number of the first chain in the X axis. The color of each point goes
// from red to blue with the number of atom contacts between the two residues.
// The format of the file is given by its extension (png, svg, pdf, eps...).
func ContactMap(in *nerdss.Interaction, title, file string) error {
	if in == nil || len(in.Residues) == 0 {
		return fmt.Errorf("gonerdss/rdplot.ContactMap: no contacts to plot")
	}
	counts := make(map[[2]int]int, len(in.Residues))
	maxc := 1
	for _, c := range in.Contacts {
		counts[c.ResIDs]++
		if counts[c.ResIDs] > maxc {
			maxc = counts[c.ResIDs]
		}
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Residue, chain " + in.Chains[0]
	p.Y.Label.Text = "Residue, chain " + in.Chains[1]
	p.Add(plotter.NewGrid())
	pts := make(plotter.XYs, len(in.Residues))
	for i, r := range in.Residues {
		pts[i].X = float64(r.ResIDs[0])
		pts[i].Y = float64(r.ResIDs[1])
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		gs := s.GlyphStyle
		r, g, b := colors(counts[in.Residues[i].ResIDs]-1, maxc)
		gs.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		gs.Shape = draw.CircleGlyph{}
		return gs
	}
	p.Add(s)
	return p.Save(Size, Size, file)
}

// DistanceHisto plots a histogram of the distances dists, in nm, with the given number of bins.
func DistanceHisto(dists []float64, bins int, title, file string) error {
	if len(dists) == 0 {
		return fmt.Errorf("gonerdss/rdplot.DistanceHisto: no data to plot")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Distance (nm)"
	p.Y.Label.Text = "Contacts"
	h, err := plotter.NewHist(plotter.Values(dists), bins)
	if err != nil {
		return err
	}
	h.FillColor = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	p.Add(h)
	return p.Save(Size, Size, file)
}

// takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func hsv2rgb(h, s, v float64) (uint8, uint8, uint8) {
	c := v * 255
	if s == 0 {
		return uint8(c), uint8(c), uint8(c)
	}
	h /= 60
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	var r, g, b float64
	switch int(i) % 6 {
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
	default:
		r, g, b = v, p, q
	}
	return uint8(r * 255), uint8(g * 255), uint8(b * 255)
}

// colors returns the color for the key-th of steps levels, going
// from red to blue.
func colors(key, steps int) (r, g, b uint8) {
	if steps < 2 {
		return hsv2rgb(0, 1, 1)
	}
	h := 240 * float64(key) / float64(steps-1)
	return hsv2rgb(h, 1, 1)
}
