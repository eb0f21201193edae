/*
 * histo.go, part of gonerdss.
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

package histo

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Dividers returns n+1 evenly spaced dividers from min to max, defining n bins.
func Dividers(min, max float64, n int) []float64 {
	if n < 1 || max <= min {
		panic("gonerdss/histo.Dividers: need at least one bin and max > min")
	}
	return floats.Span(make([]float64, n+1), min, max)
}

// Data is a histogram. Values outside the range of the dividers are not counted.
type Data struct {
	label      string
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

// NewData returns a new histogram with the given dividers and label, filled with
// rawdata, which can be nil. rawdata is not modified.
func NewData(label string, dividers []float64, rawdata []float64) *Data {
	if len(dividers) < 2 {
		panic("gonerdss/histo.NewData: at least 2 dividers are needed")
	}
	d := &Data{label: label}
	d.dividers = make([]float64, len(dividers))
	copy(d.dividers, dividers)
	d.histo = make([]float64, len(dividers)-1)
	if len(rawdata) > 0 {
		d.rehisto(rawdata)
	}
	return d
}

// rehisto replaces the contents of the histogram with those of rawdata.
func (D *Data) rehisto(rawdata []float64) {
	r := make([]float64, len(rawdata))
	copy(r, rawdata)
	sort.Float64s(r)
	//stat.Histogram panics with values off limits, so they are removed first.
	maxi := sort.SearchFloat64s(r, D.dividers[len(D.dividers)-1])
	mini := sort.SearchFloat64s(r, D.dividers[0])
	r = r[mini:maxi]
	D.total = len(r)
	D.normalized = false
	D.histo = stat.Histogram(nil, D.dividers, r, nil)
}

// Label returns the label of the histogram.
func (D *Data) Label() string {
	return D.label
}

// Total returns the number of values counted in the histogram.
func (D *Data) Total() int {
	return D.total
}

// AddData adds the given data point(s) to the histogram.
func (D *Data) AddData(point ...float64) {
	norma := D.normalized
	if norma {
		D.UnNormalize()
	}
	last := len(D.dividers) - 1
	for _, v := range point {
		if v < D.dividers[0] || v >= D.dividers[last] {
			continue
		}
		//first divider larger than v
		j := sort.SearchFloat64s(D.dividers, v)
		if j < len(D.dividers) && D.dividers[j] == v {
			j++
		}
		D.histo[j-1]++
		D.total++
	}
	if norma {
		D.Normalize()
	}
}

// Normalize divides each bin by the total number of values counted.
func (D *Data) Normalize() {
	if D.total <= 0 || D.normalized {
		return
	}
	floats.Scale(1/float64(D.total), D.histo)
	D.normalized = true
}

// UnNormalize returns the bins to raw counts.
func (D *Data) UnNormalize() {
	if D.total <= 0 || !D.normalized {
		return
	}
	floats.Scale(float64(D.total), D.histo)
	D.normalized = false
}

// View returns the bins of the histogram. Changes to the slice affect the histogram.
func (D *Data) View() []float64 {
	return D.histo
}

// Mode returns the center of the most populated bin.
func (D *Data) Mode() float64 {
	i := floats.MaxIdx(D.histo)
	return (D.dividers[i] + D.dividers[i+1]) / 2
}

// String returns a 3-line representation of the histogram.
func (D *Data) String() string {
	ret := fmt.Sprintf("Label: %s, Normalized: %v, TotalData: %d\n", D.label, D.normalized, D.total)
	d := make([]string, 0, len(D.histo))
	h := make([]string, 0, len(D.histo))
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

// Matrix is a square, symmetric matrix of histograms, with one labeled row
// (and column) per object, normally chains. All the histograms share the same dividers.
type Matrix struct {
	labels   []string
	d        []*Data //row-major, the (i,j) and (j,i) elements are the same histogram
	dividers []float64
}

// NewMatrix returns a Matrix with one row per label, filled with empty histograms.
func NewMatrix(labels []string, dividers []float64) *Matrix {
	n := len(labels)
	M := &Matrix{labels: append([]string(nil), labels...), d: make([]*Data, n*n)}
	M.dividers = append([]float64(nil), dividers...)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			h := NewData(labels[i]+"-"+labels[j], dividers, nil)
			M.d[i*n+j] = h
			M.d[j*n+i] = h
		}
	}
	return M
}

// Labels returns the labels of the rows of M.
func (M *Matrix) Labels() []string {
	return append([]string(nil), M.labels...)
}

// Index returns the row of the given label, or -1.
func (M *Matrix) Index(label string) int {
	for i, v := range M.labels {
		if v == label {
			return i
		}
	}
	return -1
}

func (M *Matrix) rc2i(r, c int) int {
	n := len(M.labels)
	if r < 0 || c < 0 || r >= n || c >= n {
		panic(fmt.Sprintf("gonerdss/histo.Matrix: element (%d,%d) out of range for %d rows", r, c, n))
	}
	return n*r + c
}

// View returns the histogram in the r,c position.
func (M *Matrix) View(r, c int) *Data {
	return M.d[M.rc2i(r, c)]
}

// AddData adds the points to the histogram in the r,c position
// (which is the same as the c,r one).
func (M *Matrix) AddData(r, c int, point ...float64) {
	M.d[M.rc2i(r, c)].AddData(point...)
}

// NormalizeAll normalizes all the histograms in the matrix.
func (M *Matrix) NormalizeAll() {
	for _, v := range M.d {
		v.Normalize() //no-op for the already normalized symmetric elements
	}
}

// String returns a representation of the upper triangle of M.
func (M *Matrix) String() string {
	n := len(M.labels)
	t := make([]string, 0, n*(n+1)/2)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			t = append(t, M.View(i, j).String())
		}
	}
	return fmt.Sprintf("rows: %d | Data:\n", n) + strings.Join(t, "\n\n")
}
