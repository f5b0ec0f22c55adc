/*
 * table.go, part of goZeff.
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
	"fmt"
	"sort"
	"sync"
)

// Record is the serializable form of an element, as found in dataset files.
// Clementi maps nl labels ("2p") to Clementi-Raimondi effective nuclear charges.
type Record struct {
	Number        int                `yaml:"number"`
	Symbol        string             `yaml:"symbol"`
	Name          string             `yaml:"name,omitempty"`
	Configuration string             `yaml:"configuration,omitempty"`
	Clementi      map[string]float64 `yaml:"clementi,omitempty"`
}

// Dataset is a list of element records.
type Dataset struct {
	Elements []Record `yaml:"elements"`
}

// Element is a chemical element with its ground state configuration and the
// parameters needed for Slater's rules and the Clementi-Raimondi values.
// Elements are read-only once built.
type Element struct {
	number   int
	symbol   string
	name     string
	confstr  string
	conf     []Subshell //Madelung order
	clementi map[string]float64
}

func (E *Element) AtomicNumber() int { return E.number }
func (E *Element) Symbol() string    { return E.symbol }
func (E *Element) Name() string      { return E.name }

// Configuration returns a copy of the configuration, in filling order.
func (E *Element) Configuration() []Subshell {
	ret := make([]Subshell, len(E.conf))
	copy(ret, E.conf)
	return ret
}

// ConfigurationString returns the configuration as given in the dataset,
// i.e. with noble gas cores.
func (E *Element) ConfigurationString() string { return E.confstr }

// ClementiZeff returns the Clementi-Raimondi effective nuclear charge for the
// (n, letter) subshell, and false if there is no such value.
func (E *Element) ClementiZeff(n int, letter string) (float64, bool) {
	if E.number >= ClementiMaxZ {
		return 0, false
	}
	z, ok := E.clementi[fmt.Sprintf("%d%s", n, letter)]
	return z, ok
}

func (E *Element) String() string {
	return fmt.Sprintf("%s (%s, Z=%d) %s", E.name, E.symbol, E.number, FormatConfiguration(E.conf))
}

func (E *Element) subshell(n int, letter string) (Subshell, bool) {
	for _, s := range E.conf {
		if s.N == n && s.L == letter {
			return s, true
		}
	}
	return Subshell{}, false
}

func (E *Element) record() Record {
	r := Record{Number: E.number, Symbol: E.symbol, Name: E.name, Configuration: E.confstr}
	if len(E.clementi) > 0 {
		r.Clementi = make(map[string]float64, len(E.clementi))
		for k, v := range E.clementi {
			r.Clementi[k] = v
		}
	}
	return r
}

func newElement(r Record) (*Element, error) {
	switch {
	case r.Number < 1:
		return nil, newError(fmt.Sprintf("invalid atomic number %d for %q", r.Number, r.Symbol), "", nil)
	case r.Symbol == "" || r.Name == "":
		return nil, newError(fmt.Sprintf("element %d needs both a name and a symbol", r.Number), "", nil)
	}
	conf, err := ParseConfiguration(r.Configuration)
	if err != nil {
		return nil, errDecorate(err, r.Symbol)
	}
	var total int
	for _, s := range conf {
		total += s.Electrons
	}
	if total != r.Number {
		return nil, newError(fmt.Sprintf("configuration %q has %d electrons, %s has Z=%d", r.Configuration, total, r.Symbol, r.Number), "", nil)
	}
	E := &Element{number: r.Number, symbol: r.Symbol, name: r.Name, confstr: r.Configuration, conf: conf}
	if len(r.Clementi) > 0 && r.Number >= ClementiMaxZ {
		return nil, newError(fmt.Sprintf("Clementi values given for %s, but Z>=%d", r.Symbol, ClementiMaxZ), "", nil)
	}
	E.clementi = make(map[string]float64, len(r.Clementi))
	for label, z := range r.Clementi {
		found := false
		for _, s := range conf {
			if s.Label() == label {
				found = true
				break
			}
		}
		if !found {
			return nil, newError(fmt.Sprintf("Clementi value for %s, which is empty in %s", label, r.Symbol), "", nil)
		}
		if z <= 0 || z > float64(r.Number) {
			return nil, newError(fmt.Sprintf("Clementi value %g for %s %s out of range", z, r.Symbol, label), "", nil)
		}
		E.clementi[label] = z
	}
	return E, nil
}

// Table is a read-only collection of elements, indexed by name and symbol.
// It is safe for concurrent use.
type Table struct {
	byName   map[string]*Element
	bySymbol map[string]*Element
	sorted   []*Element //by atomic number
}

// NewTable builds a Table from a Dataset. Every record must be complete and
// names, symbols and atomic numbers must not repeat.
func NewTable(ds *Dataset) (*Table, error) {
	T := &Table{
		byName:   make(map[string]*Element, len(ds.Elements)),
		bySymbol: make(map[string]*Element, len(ds.Elements)),
		sorted:   make([]*Element, 0, len(ds.Elements)),
	}
	numbers := make(map[int]bool, len(ds.Elements))
	for _, r := range ds.Elements {
		E, err := newElement(r)
		if err != nil {
			return nil, errDecorate(err, "NewTable")
		}
		if _, ok := T.bySymbol[E.symbol]; ok || numbers[E.number] {
			return nil, newError(fmt.Sprintf("element %s (Z=%d) repeated", E.symbol, E.number), "", nil)
		}
		if _, ok := T.byName[E.name]; ok {
			return nil, newError(fmt.Sprintf("element name %s repeated", E.name), "", nil)
		}
		T.byName[E.name] = E
		T.bySymbol[E.symbol] = E
		numbers[E.number] = true
		T.sorted = append(T.sorted, E)
	}
	sort.Slice(T.sorted, func(i, j int) bool { return T.sorted[i].number < T.sorted[j].number })
	return T, nil
}

// Element returns the element whose name or symbol is exactly id.
// Matching is case-sensitive and does not trim spaces. Unknown identifiers
// give a *NotFoundError.
func (T *Table) Element(id string) (*Element, error) {
	if E, ok := T.byName[id]; ok {
		return E, nil
	}
	if E, ok := T.bySymbol[id]; ok {
		return E, nil
	}
	return nil, &NotFoundError{Identifier: id}
}

// ByNumber returns the element with atomic number z.
func (T *Table) ByNumber(z int) (*Element, bool) {
	i := sort.Search(len(T.sorted), func(i int) bool { return T.sorted[i].number >= z })
	if i < len(T.sorted) && T.sorted[i].number == z {
		return T.sorted[i], true
	}
	return nil, false
}

// Len returns the number of elements in the table.
func (T *Table) Len() int { return len(T.sorted) }

// Symbols returns the element symbols sorted by atomic number.
func (T *Table) Symbols() []string {
	ret := make([]string, 0, len(T.sorted))
	for _, E := range T.sorted {
		ret = append(ret, E.symbol)
	}
	return ret
}

// Dataset returns the records for the table, sorted by atomic number.
func (T *Table) Dataset() *Dataset {
	ds := &Dataset{Elements: make([]Record, 0, len(T.sorted))}
	for _, E := range T.sorted {
		ds.Elements = append(ds.Elements, E.record())
	}
	return ds
}

// Merge returns a new table with the records in ds laid over the ones in T.
// Records are matched by symbol. For a known element, a non-empty
// configuration replaces the old one and Clementi values are added or
// replaced one by one; name and number, if given, must agree with T.
// Records for unknown symbols must be complete. T is not modified.
func (T *Table) Merge(ds *Dataset) (*Table, error) {
	base := T.Dataset()
	index := make(map[string]int, len(base.Elements))
	for i, r := range base.Elements {
		index[r.Symbol] = i
	}
	for _, r := range ds.Elements {
		if r.Symbol == "" {
			return nil, newError("record without symbol", "", nil)
		}
		i, ok := index[r.Symbol]
		if !ok {
			base.Elements = append(base.Elements, r)
			index[r.Symbol] = len(base.Elements) - 1
			continue
		}
		old := &base.Elements[i]
		if (r.Number != 0 && r.Number != old.Number) || (r.Name != "" && r.Name != old.Name) {
			return nil, newError(fmt.Sprintf("record for %s conflicts with %s (Z=%d)", r.Symbol, old.Name, old.Number), "", nil)
		}
		if r.Configuration != "" {
			old.Configuration = r.Configuration
		}
		if len(r.Clementi) > 0 && old.Clementi == nil {
			old.Clementi = make(map[string]float64, len(r.Clementi))
		}
		for k, v := range r.Clementi {
			old.Clementi[k] = v
		}
	}
	merged, err := NewTable(base)
	return merged, errDecorate(err, "Merge")
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the bundled table: the 118 elements with their ground
// state configurations, and the Clementi-Raimondi values for H to Kr.
func Default() *Table {
	defaultOnce.Do(func() {
		ds := &Dataset{Elements: make([]Record, len(atomicData))}
		copy(ds.Elements, atomicData)
		for i := range ds.Elements {
			ds.Elements[i].Clementi = clementiRaimondi[ds.Elements[i].Symbol]
		}
		var err error
		defaultTable, err = NewTable(ds)
		if err != nil {
			panic("goZeff/elements: bundled dataset is broken: " + err.Error())
		}
	})
	return defaultTable
}
