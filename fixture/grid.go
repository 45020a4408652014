package fixture

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Table is a result set: column names and rows of nil, int64 or string.
type Table struct {
	Columns []string
	Rows    [][]any
}

// Grid renders the table in the fixture grid format: ASCII borders, left
// aligned cells, NULL as an empty cell.
func (t *Table) Grid() string {
	return FormatGrid(t)
}

// FormatGrid renders a table in the fixture grid format.
func FormatGrid(t *Table) string {
	w := table.NewWriter()

	style := table.StyleDefault
	style.Format.Header = text.FormatDefault
	w.SetStyle(style)

	header := make(table.Row, len(t.Columns))
	configs := make([]table.ColumnConfig, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignLeft,
			AlignHeader: text.AlignLeft,
		}
	}
	w.AppendHeader(header)
	w.SetColumnConfigs(configs)

	for _, r := range t.Rows {
		row := make(table.Row, len(r))
		for i, v := range r {
			row[i] = formatCell(v)
		}
		w.AppendRow(row)
	}
	return w.Render()
}

func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case []byte:
		return string(x)
	}
	return fmt.Sprint(v)
}
