// Package table provides a terminal table renderer backed by lipgloss.
// Consumers supply data via the TableData interface rather than building
// lipgloss tables directly.
package table

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	// Packages
	lipgloss "github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// TableData is the interface that data sources implement to be rendered
// as a terminal table.
type TableData interface {
	// Header returns the column header labels.
	Header() []string

	// Len returns the number of rows.
	Len() int

	// Row returns the cell values for row i. Values are converted to
	// strings via FormatCell. Return nil to skip a row.
	// Wrap a value in Bold{} to render it in bold.
	Row(i int) []any
}

// Bold wraps a cell value so that FormatCell renders it in bold.
type Bold struct{ Value any }

///////////////////////////////////////////////////////////////////////////////
// STYLES

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	boldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Render renders the table data as a string suitable for terminal output.
// Numbers are right-aligned, and the table is wrapped to the terminal width
// when it would not otherwise fit.
func Render(data TableData) string {
	header := data.Header()
	rows := make([][]string, 0, data.Len())
	numeric := make([][]bool, 0, data.Len())
	for i := range data.Len() {
		row := data.Row(i)
		if row == nil {
			continue
		}
		cells := make([]string, len(header))
		aligned := make([]bool, len(header))
		for j := range cells {
			if j < len(row) {
				cells[j] = FormatCell(row[j])
				aligned[j] = isNumber(row[j])
			} else {
				cells[j] = FormatCell(nil)
			}
		}
		rows = append(rows, cells)
		numeric = append(numeric, aligned)
	}

	t := lgtable.New().
		Headers(header...).
		Rows(rows...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Wrap(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == lgtable.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(numeric) && col < len(numeric[row]) && numeric[row][col]:
				return numberStyle
			default:
				return cellStyle
			}
		})

	// Only constrain to terminal width if the natural render exceeds it
	result := t.Render()
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && lipgloss.Width(result) > w {
		result = t.Width(w).Render()
	}

	return result
}

///////////////////////////////////////////////////////////////////////////////
// HELPERS

// Truncate shortens s to max runes, collapsing newlines and appending "…"
// if truncated.
func Truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

// FormatCell converts a value to a display string for a table cell.
// It handles nil, empty strings, zero integers, floats, and Bold wrapping.
func FormatCell(v any) string {
	if v == nil {
		return "-"
	}
	if val, ok := v.(Bold); ok {
		return boldStyle.Render(FormatCell(val.Value))
	}
	return formatValue(v)
}

// RenderMarkdown renders the table data as a Markdown table string,
// suitable for passing back to a language model or a markdown viewer.
func RenderMarkdown(data TableData) string {
	header := data.Header()
	if len(header) == 0 {
		return ""
	}
	var buf strings.Builder

	// Header row
	buf.WriteString("|")
	for _, h := range header {
		buf.WriteString(" ")
		buf.WriteString(h)
		buf.WriteString(" |")
	}
	buf.WriteString("\n|")
	for range header {
		buf.WriteString("---|")
	}

	// Data rows
	for i := range data.Len() {
		row := data.Row(i)
		if row == nil {
			continue
		}
		buf.WriteString("\n|")
		for j := range header {
			buf.WriteString(" ")
			if j < len(row) {
				buf.WriteString(formatMarkdownCell(row[j]))
			} else {
				buf.WriteString("-")
			}
			buf.WriteString(" |")
		}
	}
	return buf.String()
}

// formatMarkdownCell converts a cell value to a plain-text markdown cell string.
// Bold values are wrapped in ** markers and pipes are escaped.
func formatMarkdownCell(v any) string {
	if v == nil {
		return "-"
	}
	if val, ok := v.(Bold); ok {
		inner := formatMarkdownCell(val.Value)
		if inner == "-" {
			return "-"
		}
		return "**" + inner + "**"
	}
	return strings.ReplaceAll(formatValue(v), "|", "\\|")
}

// formatValue renders a plain cell value, using "-" for empty values
func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		if val == "" {
			return "-"
		}
		return val
	case time.Time:
		if val.IsZero() {
			return "-"
		}
		return val.Format("2006-01-02 15:04")
	case int:
		if val == 0 {
			return "-"
		}
		return strconv.Itoa(val)
	case int64:
		if val == 0 {
			return "-"
		}
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		s := fmt.Sprint(val)
		if s == "" {
			return "-"
		}
		return s
	}
}

// isNumber returns true for integer and floating point cell values
func isNumber(v any) bool {
	switch val := v.(type) {
	case Bold:
		return isNumber(val.Value)
	case int, int64, uint, uint64, float32, float64:
		return true
	default:
		return false
	}
}
