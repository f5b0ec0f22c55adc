/*
 * histogram.go, part of goZeff.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 */

package zeffstat

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Histogram counts the screening percentages of a set of points in the bins
// given by its dividers.
type Histogram struct {
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

// Distribution returns the histogram of the screening percentages of the
// valid points in pts, with bins bins of equal width between 0 and 100.
func Distribution(pts []Point, bins int) (*Histogram, error) {
	if bins < 1 {
		return nil, &Error{message: fmt.Sprintf("invalid number of bins: %d", bins), deco: []string{"Distribution"}}
	}
	dividers := make([]float64, bins+1)
	floats.Span(dividers, 0, 100)
	raw := make([]float64, 0, len(pts))
	for _, p := range pts {
		if p.Valid() {
			raw = append(raw, p.Percent.Value)
		}
	}
	return NewHistogram(dividers, raw), nil
}

// NewHistogram returns a new histogram from the dividers and rawdata given.
// rawdata can be nil. In that case, an empty histogram is created. Values out of
// the range of the dividers are left out. Neither slice is modified.
func NewHistogram(dividers []float64, rawdata []float64) *Histogram {
	H := new(Histogram)
	H.dividers = make([]float64, len(dividers))
	copy(H.dividers, dividers)
	H.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		data := make([]float64, len(rawdata))
		copy(data, rawdata)
		H.rehisto(data)
	}
	return H
}

func (H *Histogram) rehisto(rawdata []float64) {
	sort.Float64s(rawdata)
	//stat.Histogram panics with values out of the dividers, so we remove them first.
	maxi := sort.SearchFloat64s(rawdata, H.dividers[len(H.dividers)-1])
	rawdata = rawdata[:maxi]
	mini := sort.SearchFloat64s(rawdata, H.dividers[0])
	rawdata = rawdata[mini:]
	H.total = len(rawdata)
	H.histo = stat.Histogram(nil, H.dividers, rawdata, nil)
}

// Total returns the number of values counted.
func (H *Histogram) Total() int { return H.total }

// Normalized returns true if the histogram is normalized.
func (H *Histogram) Normalized() bool { return H.normalized }

// Normalize divides each count by the total.
func (H *Histogram) Normalize() { H.normaunnorma(true) }

// UnNormalize reverts Normalize.
func (H *Histogram) UnNormalize() { H.normaunnorma(false) }

func (H *Histogram) normaunnorma(normalize bool) {
	if H.total <= 0 || H.normalized == normalize {
		return
	}
	n := float64(H.total)
	H.normalized = false
	if normalize {
		n = 1 / float64(H.total)
		H.normalized = true
	}
	floats.Scale(n, H.histo)
}

// Dividers returns a copy of the bin limits.
func (H *Histogram) Dividers() []float64 {
	ret := make([]float64, len(H.dividers))
	copy(ret, H.dividers)
	return ret
}

// Counts returns a copy of the histogram.
func (H *Histogram) Counts() []float64 {
	ret := make([]float64, len(H.histo))
	copy(ret, H.histo)
	return ret
}

// String prints the histogram as 3 lines of text.
func (H *Histogram) String() string {
	ret := fmt.Sprintf("Normalized: %v, TotalData: %d\n", H.normalized, H.total)
	d := make([]string, 0, len(H.histo))
	h := make([]string, 0, len(H.histo))
	for i, v := range H.histo {
		d = append(d, fmt.Sprintf("%6.2f-%6.2f", H.dividers[i], H.dividers[i+1]))
		h = append(h, fmt.Sprintf("%13.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

func (H *Histogram) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}{
		Normalized: H.normalized,
		Total:      H.total,
		Dividers:   H.dividers,
		Histo:      H.histo,
	})
}
