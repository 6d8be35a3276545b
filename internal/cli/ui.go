package cli

import (
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
	colorAmber = lipgloss.Color("220")

	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleWarning = lipgloss.NewStyle().Foreground(colorAmber)
)

// newTable returns a rounded-border table with styled headers; rows listed
// in degenerate are highlighted.
func newTable(headers []string, rows [][]string, degenerate map[int]bool) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if degenerate[row] {
				return styleWarning.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// formatComplex renders v with parts at or below tol shown as zero, and
// drops a zero imaginary part entirely.
func formatComplex(v complex128, tol float64) string {
	re, im := real(v), imag(v)
	if math.Abs(re) <= tol {
		re = 0
	}
	if math.Abs(im) <= tol {
		return strconv.FormatFloat(re, 'g', 6, 64)
	}
	return strconv.FormatComplex(complex(re, im), 'g', 6, 128)
}
