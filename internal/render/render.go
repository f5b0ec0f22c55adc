/*
 * render.go, part of goZeff.
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

// Package render writes the tables of the zeff command as text tables, CSV,
// JSON or markdown.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#101F38")).
	Bold(true)

// Cell is one value of a table. Text is what the text formats show, Value
// what goes into JSON (nil for missing values).
type Cell struct {
	Text  string
	Value any
}

// Table is a titled set of rows with a header.
type Table struct {
	Title  string
	Header []string
	Rows   [][]Cell
}

// AppendRow adds a row to the table.
func (t *Table) AppendRow(cells ...Cell) {
	t.Rows = append(t.Rows, cells)
}

// Renderer writes tables in one format.
type Renderer struct {
	Format    string //table, csv, json or markdown
	Precision int    //decimals for the numeric values
}

// Render writes t to w.
func (R Renderer) Render(w io.Writer, t *Table) error {
	switch R.Format {
	case "json":
		return renderJSON(w, t)
	case "csv", "md", "markdown":
		tw := prettyTable(t)
		tw.SetOutputMirror(w)
		if R.Format == "csv" {
			tw.RenderCSV()
		} else {
			tw.RenderMarkdown()
		}
		return nil
	case "table", "":
		return renderTable(w, t)
	}
	return fmt.Errorf("render: unknown format %q", R.Format)
}

func prettyTable(t *Table) table.Writer {
	tw := table.NewWriter()
	header := make(table.Row, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	tw.AppendHeader(header)
	for _, r := range t.Rows {
		row := make(table.Row, len(r))
		for i, c := range r {
			row[i] = c.Text
		}
		tw.AppendRow(row)
	}
	return tw
}

func renderTable(w io.Writer, t *Table) error {
	if t.Title != "" {
		if _, err := fmt.Fprintln(w, titleStyle.Render(t.Title)); err != nil {
			return err
		}
	}
	if len(t.Rows) == 0 {
		_, err := fmt.Fprintln(w, "(0 rows)")
		return err
	}
	tw := prettyTable(t)
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Header = text.FormatDefault
	tw.Render()
	return nil
}

func renderJSON(w io.Writer, t *Table) error {
	rows := make([]map[string]any, 0, len(t.Rows))
	for _, r := range t.Rows {
		m := make(map[string]any, len(r))
		for i, c := range r {
			m[t.Header[i]] = c.Value
		}
		rows = append(rows, m)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Title string           `json:"title,omitempty"`
		Rows  []map[string]any `json:"rows"`
	}{t.Title, rows})
}
