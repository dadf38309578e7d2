// Package export renders tabular report sections as xlsx workbooks.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	defaultColumnWidth = 18
	headerFillColor    = "#D9E1F2"
)

// Column defines one worksheet column and how to read its value from a row
type Column[T any] struct {
	Header string
	Width  float64
	Value  func(row T) interface{}
}

// Workbook writes rows into a single-sheet workbook with a styled, frozen
// header row and an autofilter over the data range.
func Workbook[T any](sheet string, columns []Column[T], rows []T) (*excelize.File, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("export %s: no columns defined", sheet)
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("export %s: %w", sheet, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFillColor}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("export %s: header style: %w", sheet, err)
	}

	headers := make([]interface{}, len(columns))
	for i, c := range columns {
		headers[i] = c.Header
		col, _ := excelize.ColumnNumberToName(i + 1)
		width := c.Width
		if width <= 0 {
			width = defaultColumnWidth
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			f.Close()
			return nil, fmt.Errorf("export %s: column width: %w", sheet, err)
		}
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		f.Close()
		return nil, fmt.Errorf("export %s: header row: %w", sheet, err)
	}
	last, _ := excelize.ColumnNumberToName(len(columns))
	if err := f.SetCellStyle(sheet, "A1", last+"1", headerStyle); err != nil {
		f.Close()
		return nil, fmt.Errorf("export %s: header style: %w", sheet, err)
	}

	for r, row := range rows {
		values := make([]interface{}, len(columns))
		for i, c := range columns {
			values[i] = c.Value(row)
		}
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			f.Close()
			return nil, fmt.Errorf("export %s: row %d: %w", sheet, r+1, err)
		}
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("export %s: freeze header: %w", sheet, err)
	}
	if len(rows) > 0 {
		ref := fmt.Sprintf("A1:%s%d", last, len(rows)+1)
		if err := f.AutoFilter(sheet, ref, nil); err != nil {
			f.Close()
			return nil, fmt.Errorf("export %s: autofilter: %w", sheet, err)
		}
	}
	return f, nil
}
