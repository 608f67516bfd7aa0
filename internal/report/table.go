// SPDX-License-Identifier: MPL-2.0

package report

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Styles colors the rendered tables.
type Styles struct {
	Header lipgloss.Style
	Cell   lipgloss.Style
	Muted  lipgloss.Style
	Border lipgloss.Style
}

// PlainStyles returns unstyled cells with a small horizontal padding.
func PlainStyles() Styles {
	cell := lipgloss.NewStyle().Padding(0, 1)
	return Styles{Header: cell, Cell: cell, Muted: cell, Border: lipgloss.NewStyle()}
}

// UnitsTable renders one row per unit and scale of every family in s.
func UnitsTable(s Snapshot, st Styles) string {
	var rows [][]string
	// Scale rows are rendered muted.
	muted := map[int]bool{}
	for _, f := range s.Families {
		for _, u := range f.Units {
			factor := u.Factor
			if u.Calibratable {
				factor += " *"
			}
			rows = append(rows, []string{f.Name, "unit", u.Name, strings.Join(u.Symbols, " "), factor})
		}
		for _, sc := range f.Scales {
			muted[len(rows)] = true
			rows = append(rows, []string{f.Name, "scale", sc.Name, strings.Join(sc.Symbols, " "), sc.Offset + " " + sc.Unit})
		}
	}

	return newTable(st, func(row int) bool { return muted[row] }).
		Headers("FAMILY", "KIND", "NAME", "SYMBOLS", "FACTOR / OFFSET").
		Rows(rows...).
		String()
}

// FamiliesTable renders one row per family in s.
func FamiliesTable(s Snapshot, st Styles) string {
	rows := make([][]string, 0, len(s.Families))
	for _, f := range s.Families {
		rows = append(rows, []string{
			strconv.Itoa(int(f.ID)),
			f.Name,
			f.Sense,
			f.Kind,
			f.Canonical,
			strconv.Itoa(len(f.Units)),
			strconv.Itoa(len(f.Scales)),
		})
	}

	return newTable(st, func(int) bool { return false }).
		Headers("ID", "NAME", "SENSE", "KIND", "CANONICAL", "UNITS", "SCALES").
		Rows(rows...).
		String()
}

func newTable(st Styles, muted func(row int) bool) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(st.Border).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return st.Header
			case muted(row):
				return st.Muted
			default:
				return st.Cell
			}
		})
}
