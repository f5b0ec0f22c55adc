/*
 * elements_test.go, part of goZeff.
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

package elements

import (
	"bytes"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"
)

func labels(subs []Subshell) string {
	l := make([]string, 0, len(subs))
	for _, s := range subs {
		l = append(l, s.Label())
	}
	return strings.Join(l, " ")
}

func TestDefaultTable(Te *testing.T) {
	T := Default()
	if T.Len() != 118 {
		Te.Fatalf("expected 118 elements, got %d", T.Len())
	}
	for z := 1; z <= 118; z++ {
		E, ok := T.ByNumber(z)
		if !ok {
			Te.Fatalf("missing Z=%d", z)
		}
		var total int
		for _, s := range E.Configuration() {
			total += s.Electrons
		}
		if total != z {
			Te.Errorf("%s has %d electrons", E.Symbol(), total)
		}
	}
	if s := T.Symbols(); s[0] != "H" || s[117] != "Og" {
		Te.Errorf("symbols not sorted by atomic number: %v", s)
	}
	if Default() != T {
		Te.Errorf("Default should build the table only once")
	}
}

func TestLookup(Te *testing.T) {
	T := Default()
	for _, id := range []string{"Carbon", "C"} {
		E, err := T.Element(id)
		if err != nil {
			Te.Fatal(err)
		}
		if E.AtomicNumber() != 6 || E.Name() != "Carbon" || E.Symbol() != "C" {
			Te.Errorf("wrong element for %s: %v", id, E)
		}
	}
	for _, id := range []string{"Unobtainium", "Uo", "carbon", " C", "c", ""} {
		_, err := T.Element(id)
		if !errors.Is(err, ErrNotFound) {
			Te.Errorf("%q: expected ErrNotFound, got %v", id, err)
		}
		var nf *NotFoundError
		if !errors.As(err, &nf) || nf.Identifier != id {
			Te.Errorf("%q: expected a *NotFoundError with the identifier, got %v", id, err)
		}
	}
}

func TestNotFoundDecoration(Te *testing.T) {
	_, err := Default().Element("Uo")
	nf := err.(*NotFoundError)
	nf.Decorate("Orbitals")
	deco := nf.Decorate("")
	if len(deco) != 1 || deco[0] != "Orbitals" {
		Te.Errorf("unexpected decoration %v", deco)
	}
	if !strings.HasPrefix(err.Error(), "Orbitals: ") || !strings.Contains(err.Error(), `"Uo"`) {
		Te.Errorf("unexpected message %q", err.Error())
	}
}

func TestParseConfiguration(Te *testing.T) {
	cases := map[string]string{
		"1s1":                    "1s",
		"[He] 2s2 2p2":           "1s 2s 2p",
		"[Ar] 3d6 4s2":           "1s 2s 2p 3s 3p 4s 3d",
		"4s2 3d6 [Ar]":           "1s 2s 2p 3s 3p 4s 3d",
		"[Kr] 4d10":              "1s 2s 2p 3s 3p 4s 3d 4p 4d",
		"[Xe] 4f14 5d10 6s2 6p1": "1s 2s 2p 3s 3p 4s 3d 4p 5s 4d 5p 6s 4f 5d 6p",
		"[Rn] 5f3 6d1 7s2":       "1s 2s 2p 3s 3p 4s 3d 4p 5s 4d 5p 6s 4f 5d 6p 7s 5f 6d",
		"[Rn] 5f14 6d10 7s2 5g1": "1s 2s 2p 3s 3p 4s 3d 4p 5s 4d 5p 6s 4f 5d 6p 7s 5f 6d 5g",
	}
	for conf, expected := range cases {
		subs, err := ParseConfiguration(conf)
		if err != nil {
			Te.Errorf("%s: %v", conf, err)
			continue
		}
		if got := labels(subs); got != expected {
			Te.Errorf("%s: expected %s, got %s", conf, expected, got)
		}
	}
	subs, _ := ParseConfiguration("[Ar] 3d6 4s2")
	if FormatConfiguration(subs) != "1s2 2s2 2p6 3s2 3p6 4s2 3d6" {
		Te.Errorf("unexpected format %s", FormatConfiguration(subs))
	}
}

func TestParseConfigurationErrors(Te *testing.T) {
	bad := []string{"", "  ", "2d1", "1s3", "2p7", "1s0", "[Zz] 1s1", "1s2 1s2", "3q1", "s2", "[He]2s1", "1S2"}
	for _, conf := range bad {
		if _, err := ParseConfiguration(conf); err == nil {
			Te.Errorf("%q should not parse", conf)
		} else {
			var e *Error
			if !errors.As(err, &e) {
				Te.Errorf("%q: expected *Error, got %T", conf, err)
			}
		}
	}
}

func slaterFor(Te *testing.T, id string, n int, l string) float64 {
	Te.Helper()
	E, err := Default().Element(id)
	if err != nil {
		Te.Fatal(err)
	}
	s, err := E.SlaterScreening(n, l)
	if err != nil {
		Te.Fatal(err)
	}
	return s
}

func TestSlaterScreening(Te *testing.T) {
	cases := []struct {
		id       string
		n        int
		l        string
		expected float64
	}{
		{"H", 1, "s", 0},
		{"He", 1, "s", 0.30},
		{"N", 1, "s", 0.30},
		{"N", 2, "s", 3.10},
		{"N", 2, "p", 3.10},
		{"Na", 3, "s", 8.80},
		{"Fe", 3, "d", 19.75},
		{"Fe", 4, "s", 22.25},
		{"Zn", 4, "s", 25.65},
		{"Zn", 3, "d", 21.15},
		{"Br", 4, "p", 27.40},
		{"U", 5, "f", 78.70},
	}
	for _, c := range cases {
		got := slaterFor(Te, c.id, c.n, c.l)
		if math.Abs(got-c.expected) > 1e-9 {
			Te.Errorf("%s %d%s: expected %.4f, got %.4f", c.id, c.n, c.l, c.expected, got)
		}
	}
	C, _ := Default().Element("C")
	if _, err := C.SlaterScreening(3, "s"); err == nil {
		Te.Errorf("empty subshell should give an error")
	}
}

func TestClementiZeff(Te *testing.T) {
	N, _ := Default().Element("N")
	for l, exp := range map[string]float64{"1s": 6.6651, "2s": 3.8474, "2p": 3.834} {
		z, ok := N.ClementiZeff(int(l[0]-'0'), l[1:])
		if !ok || z != exp {
			Te.Errorf("N %s: expected %.3f, got %.3f %v", l, exp, z, ok)
		}
	}
	for _, id := range []string{"Rb", "U", "Og"} {
		E, _ := Default().Element(id)
		if _, ok := E.ClementiZeff(1, "s"); ok {
			Te.Errorf("%s should have no bundled Clementi values", id)
		}
	}
	//every bundled value must belong to an occupied subshell.
	for sym, values := range clementiRaimondi {
		E, err := Default().Element(sym)
		if err != nil {
			Te.Fatal(err)
		}
		if len(values) != len(E.Configuration()) {
			Te.Errorf("%s: %d Clementi values for %d subshells", sym, len(values), len(E.Configuration()))
		}
	}
}

func TestMergeAndLoad(Te *testing.T) {
	ds := &Dataset{Elements: []Record{
		{Symbol: "Rb", Clementi: map[string]float64{"5s": 4.985}},
		{Symbol: "N", Number: 7, Clementi: map[string]float64{"2p": 3.9}},
	}}
	dir := Te.TempDir()
	for _, name := range []string{"extra.yaml", "extra.yaml.gz", "extra.yaml.zst"} {
		fname := filepath.Join(dir, name)
		if err := WriteDataset(fname, ds); err != nil {
			Te.Fatal(err)
		}
		T, err := Load(fname)
		if err != nil {
			Te.Fatalf("%s: %v", name, err)
		}
		Rb, _ := T.Element("Rubidium")
		if z, ok := Rb.ClementiZeff(5, "s"); !ok || z != 4.985 {
			Te.Errorf("%s: merged value not found: %v %v", name, z, ok)
		}
		N, _ := T.Element("N")
		if z, _ := N.ClementiZeff(2, "p"); z != 3.9 {
			Te.Errorf("%s: value not replaced: %v", name, z)
		}
		if z, _ := N.ClementiZeff(2, "s"); z != 3.8474 {
			Te.Errorf("%s: untouched value lost: %v", name, z)
		}
	}
	N, _ := Default().Element("N")
	if z, _ := N.ClementiZeff(2, "p"); z != 3.834 {
		Te.Errorf("Merge modified the bundled table")
	}
}

func TestMergeErrors(Te *testing.T) {
	bad := map[string]*Dataset{
		"conflict":     {Elements: []Record{{Symbol: "N", Number: 8}}},
		"nosymbol":     {Elements: []Record{{Name: "Nitrogen"}}},
		"heavy":        {Elements: []Record{{Symbol: "U", Clementi: map[string]float64{"1s": 91}}}},
		"empty shell":  {Elements: []Record{{Symbol: "C", Clementi: map[string]float64{"3s": 2}}}},
		"out of range": {Elements: []Record{{Symbol: "C", Clementi: map[string]float64{"1s": 7}}}},
		"incomplete":   {Elements: []Record{{Symbol: "Uue", Number: 119}}},
		"electrons":    {Elements: []Record{{Symbol: "C", Configuration: "[He] 2s2 2p3"}}},
	}
	for name, ds := range bad {
		if _, err := Default().Merge(ds); err == nil {
			Te.Errorf("%s: expected an error", name)
		}
	}
}

func TestDatasetRoundTrip(Te *testing.T) {
	fname := filepath.Join(Te.TempDir(), "all.yaml.zst")
	if err := WriteDataset(fname, Default().Dataset()); err != nil {
		Te.Fatal(err)
	}
	ds, err := ReadDataset(fname)
	if err != nil {
		Te.Fatal(err)
	}
	T, err := NewTable(ds)
	if err != nil {
		Te.Fatal(err)
	}
	if T.Len() != Default().Len() {
		Te.Errorf("lost elements: %d", T.Len())
	}
	Fe, _ := T.Element("Fe")
	if Fe.ConfigurationString() != "[Ar] 3d6 4s2" {
		Te.Errorf("configuration changed: %s", Fe.ConfigurationString())
	}
	if _, err := ReadDataset(filepath.Join(Te.TempDir(), "missing.yaml")); err == nil {
		Te.Errorf("missing file should give an error")
	}
}

func TestTableWrite(Te *testing.T) {
	var buf bytes.Buffer
	if err := Default().Write(&buf); err != nil {
		Te.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "elements:\n") {
		Te.Errorf("unexpected layout: %.40s", buf.String())
	}
	ds, err := DecodeDataset(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	if len(ds.Elements) != 118 || ds.Elements[6].Clementi["2p"] != 3.834 {
		Te.Errorf("dataset changed when written")
	}
}
