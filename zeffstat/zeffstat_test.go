/*
 * zeffstat_test.go, part of goZeff.
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
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/rmera/zeff"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

var period2 = []string{"Li", "Be", "B", "C", "N", "O", "F", "Ne"}

func TestValence(Te *testing.T) {
	pts, err := Valence(zeff.Bundled(), []string{"Fe", "Br", "H", "U"}, zeff.MethodSlater)
	if err != nil {
		Te.Fatal(err)
	}
	labels := make([]string, len(pts))
	for i, p := range pts {
		labels[i] = p.Orbital.Label
	}
	if got := strings.Join(labels, " "); got != "4s 4p 1s 7s" {
		Te.Errorf("unexpected valence orbitals %s", got)
	}
	if math.Abs(pts[0].Zeff.Value-3.75) > 1e-9 {
		Te.Errorf("unexpected Fe 4s Zeff %v", pts[0].Zeff)
	}
	pts, err = Valence(zeff.Bundled(), []string{"U", "Rb"}, zeff.MethodClementi)
	if err != nil {
		Te.Fatal(err)
	}
	if pts[0].Valid() || pts[0].Status != zeff.Inapplicable || pts[1].Status != zeff.Untabulated {
		Te.Errorf("unexpected statuses %v %v", pts[0].Status, pts[1].Status)
	}
	_, err = Valence(zeff.Bundled(), []string{"C", "Uo"}, zeff.MethodSlater)
	if !errors.Is(err, zeff.ErrElementNotFound) {
		Te.Errorf("expected ErrElementNotFound, got %v", err)
	}
}

func TestFitPeriod2(Te *testing.T) {
	pts, err := Valence(zeff.Bundled(), period2, zeff.MethodSlater)
	if err != nil {
		Te.Fatal(err)
	}
	//Slater's rules add 0.65 per proton along a period.
	l, err := Fit(pts)
	if err != nil {
		Te.Fatal(err)
	}
	if !scalar.EqualWithinAbs(l.Slope, 0.65, 1e-9) || !scalar.EqualWithinAbs(l.Intercept, -0.65, 1e-9) || !scalar.EqualWithinAbs(l.R2, 1, 1e-9) || l.N != 8 {
		Te.Errorf("unexpected fit %v", l)
	}
	pts, err = Valence(zeff.Bundled(), period2, zeff.MethodClementi)
	if err != nil {
		Te.Fatal(err)
	}
	l, err = Fit(pts)
	if err != nil {
		Te.Fatal(err)
	}
	if l.Slope < 0.6 || l.Slope > 0.7 || l.R2 < 0.99 {
		Te.Errorf("unexpected Clementi fit %v", l)
	}
}

func TestFitErrors(Te *testing.T) {
	pts, _ := Valence(zeff.Bundled(), []string{"Rb", "Sr", "C"}, zeff.MethodClementi)
	_, err := Fit(pts)
	var e *Error
	if !errors.As(err, &e) || !strings.HasPrefix(err.Error(), "Fit: ") {
		Te.Errorf("expected a decorated *Error, got %v", err)
	}
	pts, _ = Valence(zeff.Bundled(), []string{"C", "C"}, zeff.MethodSlater)
	if _, err := Fit(pts); err == nil {
		Te.Errorf("a single atomic number should not be fitted")
	}
	if _, err := Describe(nil); err == nil {
		Te.Errorf("no points should give an error")
	}
}

func TestDescribe(Te *testing.T) {
	pts, _ := Valence(zeff.Bundled(), period2, zeff.MethodSlater)
	s, err := Describe(pts)
	if err != nil {
		Te.Fatal(err)
	}
	//1.30, 1.95 ... 5.85
	if s.N != 8 || !scalar.EqualWithinAbs(s.Mean, 3.575, 1e-9) || s.Min != pts[0].Zeff.Value || s.Max != pts[7].Zeff.Value {
		Te.Errorf("unexpected stats %+v", s)
	}
	if !scalar.EqualWithinAbs(s.Std, 0.65*math.Sqrt(6), 1e-9) {
		Te.Errorf("unexpected std %v", s.Std)
	}
}

func TestDistribution(Te *testing.T) {
	pts, _ := Valence(zeff.Bundled(), period2, zeff.MethodSlater)
	H, err := Distribution(pts, 4)
	if err != nil {
		Te.Fatal(err)
	}
	if H.Total() != 8 || !floats.Equal(H.Dividers(), []float64{0, 25, 50, 75, 100}) {
		Te.Errorf("unexpected histogram %v", H)
	}
	//%S goes from 56.67 (Li) down to 41.5 (Ne)
	if !floats.Equal(H.Counts(), []float64{0, 6, 2, 0}) {
		Te.Errorf("unexpected counts %v", H.Counts())
	}
	H.Normalize()
	H.Normalize()
	if !H.Normalized() || H.Counts()[1] != 0.75 {
		Te.Errorf("unexpected normalized counts %v", H.Counts())
	}
	H.UnNormalize()
	if H.Counts()[1] != 6 {
		Te.Errorf("unexpected counts after UnNormalize %v", H.Counts())
	}
	if _, err := Distribution(pts, 0); err == nil {
		Te.Errorf("0 bins should give an error")
	}
	j, err := json.Marshal(H)
	if err != nil || !strings.Contains(string(j), `"total":8`) {
		Te.Errorf("unexpected JSON %s %v", j, err)
	}
	out := NewHistogram([]float64{0, 1}, []float64{-1, 0.5, 1, 2})
	if out.Total() != 1 {
		Te.Errorf("values out of range should be left out, got %d", out.Total())
	}
}
