/*
 * render_test.go, part of goZeff.
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

package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rmera/zeff"
	"github.com/rmera/zeff/zeffstat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summary(t *testing.T, id string) *zeff.Summary {
	t.Helper()
	s, err := zeff.ElementData(zeff.Bundled(), id)
	require.NoError(t, err)
	return s
}

func TestSummaryTable(t *testing.T) {
	tab := Renderer{Precision: 2}.SummaryTable(summary(t, "C"))
	assert.Equal(t, "Carbon (C, Z=6)", tab.Title)
	assert.Equal(t, zeff.Columns(), tab.Header)
	require.Len(t, tab.Rows, 3)
	row := tab.Rows[2]
	require.Len(t, row, len(tab.Header))
	assert.Equal(t, "2p", row[3].Text)
	assert.Equal(t, 1, row[2].Value)
	assert.Equal(t, "3.25", row[4].Text)
	assert.Equal(t, "2.75", row[5].Text)
	assert.Equal(t, "3.14", row[7].Text)
}

func TestFormats(t *testing.T) {
	s := summary(t, "C")
	cases := map[string][]string{
		"table":    {"Carbon (C, Z=6)", "Zeff Slater", "│ 2p", "5.7000"},
		"csv":      {"n,l,l_num,Orbital,Zeff Slater", "2,p,1,2p,3.2500,2.7500"},
		"markdown": {"| n | l | l_num | Orbital |", "| 1 | s | 0 | 1s | 5.7000 |"},
	}
	for format, want := range cases {
		t.Run(format, func(t *testing.T) {
			R := Renderer{Format: format, Precision: 4}
			var buf bytes.Buffer
			require.NoError(t, R.Render(&buf, R.SummaryTable(s)))
			for _, w := range want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
	err := Renderer{Format: "xml"}.Render(&bytes.Buffer{}, &Table{})
	assert.ErrorContains(t, err, "unknown format")
}

func TestJSONMissingValues(t *testing.T) {
	R := Renderer{Format: "json", Precision: 3}
	var buf bytes.Buffer
	require.NoError(t, R.Render(&buf, R.SummaryTable(summary(t, "U"))))
	var out struct {
		Title string           `json:"title"`
		Rows  []map[string]any `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "Uranium (U, Z=92)", out.Title)
	require.NotEmpty(t, out.Rows)
	first := out.Rows[0]
	assert.Equal(t, "1s", first[zeff.ColOrbital])
	assert.Nil(t, first[zeff.ColClementiZeff])
	assert.InDelta(t, 91.7, first[zeff.ColSlaterZeff], 1e-9)
}

func TestResultsAndOrbitals(t *testing.T) {
	R := Renderer{Format: "table", Precision: 3}
	res, err := zeff.ClementiFor(zeff.Bundled(), "Rb")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, R.Render(&buf, R.ResultsTable("Rb", res)))
	assert.Contains(t, buf.String(), "untabulated")
	assert.Contains(t, buf.String(), "NaN")

	orbs, err := zeff.Orbitals(zeff.Bundled(), "Fe")
	require.NoError(t, err)
	tab := R.OrbitalsTable("Fe", orbs)
	labels := make([]string, len(tab.Rows))
	for i, r := range tab.Rows {
		labels[i] = r[3].Text
	}
	assert.Equal(t, "1s 2s 2p 3s 3p 4s 3d", strings.Join(labels, " "))
}

func TestTrendTable(t *testing.T) {
	pts, err := zeffstat.Valence(zeff.Bundled(), []string{"Li", "Na"}, zeff.MethodSlater)
	require.NoError(t, err)
	R := Renderer{Format: "csv", Precision: 2}
	var buf bytes.Buffer
	require.NoError(t, R.Render(&buf, R.TrendTable("", pts)))
	assert.Contains(t, buf.String(), "3,Li,2s,computed,1.30")
	assert.Contains(t, buf.String(), "11,Na,3s,computed,2.20")
}

func TestEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Renderer{}.Render(&buf, &Table{Title: "nothing", Header: []string{"a"}}))
	assert.Contains(t, buf.String(), "(0 rows)")
}

func TestHistogramTable(t *testing.T) {
	pts, err := zeffstat.Valence(zeff.Bundled(), []string{"Li", "Be", "B", "C", "N", "O", "F", "Ne"}, zeff.MethodSlater)
	require.NoError(t, err)
	H, err := zeffstat.Distribution(pts, 4)
	require.NoError(t, err)
	tab := Renderer{Precision: 0}.HistogramTable("", H)
	require.Len(t, tab.Rows, 4)
	assert.Equal(t, "25", tab.Rows[1][0].Text)
	assert.Equal(t, "50", tab.Rows[1][1].Text)
	assert.Equal(t, "6", tab.Rows[1][2].Text)
	assert.Equal(t, 2.0, tab.Rows[2][2].Value)
}

func TestFitAndStatsTables(t *testing.T) {
	R := Renderer{Format: "json", Precision: 2}
	var buf bytes.Buffer
	require.NoError(t, R.Render(&buf, R.FitTable("fit", zeffstat.Line{Slope: 0.65, Intercept: -0.65, R2: 1, N: 8})))
	assert.Contains(t, buf.String(), `"Slope": 0.65`)
	assert.Contains(t, buf.String(), `"N": 8`)

	//a single point has no standard deviation.
	pts, err := zeffstat.Valence(zeff.Bundled(), []string{"Na"}, zeff.MethodSlater)
	require.NoError(t, err)
	s, err := zeffstat.Describe(pts)
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, R.Render(&buf, R.StatsTable("stats", s)))
	assert.Contains(t, buf.String(), `"Std": null`)

	tab := Renderer{Precision: 3}.StatsTable("", s)
	assert.Equal(t, "NaN", tab.Rows[0][2].Text)
	assert.Equal(t, "2.200", tab.Rows[0][1].Text)
}
