package table_test

import (
	"strings"
	"testing"
	"time"

	// Packages
	table "github.com/mutablelogic/go-weatherstock/pkg/ui/table"
	assert "github.com/stretchr/testify/assert"
)

type rows [][]any

func (r rows) Header() []string { return []string{"A", "B"} }
func (r rows) Len() int          { return len(r) }
func (r rows) Row(i int) []any   { return r[i] }

func Test_table_001(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("-", table.FormatCell(nil))
	assert.Equal("-", table.FormatCell(""))
	assert.Equal("-", table.FormatCell(0))
	assert.Equal("-", table.FormatCell(int64(0)))
	assert.Equal("42", table.FormatCell(42))
	assert.Equal("0", table.FormatCell(0.0))
	assert.Equal("1.25", table.FormatCell(1.25))
	assert.Equal("-", table.FormatCell(time.Time{}))
	assert.Equal("2026-10-18 09:30", table.FormatCell(time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)))
	assert.Equal("true", table.FormatCell(true))
}

func Test_table_002(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("short", table.Truncate("short", 10))
	assert.Equal("a b", table.Truncate("a\nb", 10))
	assert.Equal("abcd…", table.Truncate("abcdefgh", 5))
}

func Test_table_003(t *testing.T) {
	assert := assert.New(t)

	md := table.RenderMarkdown(rows{
		{"x|y", table.Bold{Value: 1.5}},
		nil,
		{"only"},
		{table.Bold{Value: ""}, nil},
	})
	assert.Equal(strings.Join([]string{
		"| A | B |",
		"|---|---|",
		"| x\\|y | **1.5** |",
		"| only | - |",
		"| - | - |",
	}, "\n"), md)
}

func Test_table_004(t *testing.T) {
	assert := assert.New(t)

	// Terminal rendering contains headers and cells
	out := table.Render(rows{{"cell", 2}})
	assert.Contains(out, "A")
	assert.Contains(out, "cell")
	assert.Contains(out, "2")

	// Short rows are padded and nil rows skipped
	out = table.Render(rows{{"only"}, nil})
	assert.Contains(out, "only")
	assert.Contains(out, "-")
	assert.Equal(5, strings.Count(out, "\n")+1)
}
