package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type part struct {
	Code string
	Qty  int
}

func partColumns() []Column[part] {
	return []Column[part]{
		{Header: "Part code", Width: 20, Value: func(p part) interface{} { return p.Code }},
		{Header: "Quantity", Value: func(p part) interface{} { return p.Qty }},
	}
}

func TestWorkbookWritesHeaderAndRows(t *testing.T) {
	f, err := Workbook("Inventory", partColumns(), []part{{"A-1", 3}, {"B-2", 0}})
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Inventory")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Part code", "Quantity"}, rows[0])
	assert.Equal(t, []string{"A-1", "3"}, rows[1])
	assert.Equal(t, []string{"B-2", "0"}, rows[2])

	styleID, err := f.GetCellStyle("Inventory", "B1")
	require.NoError(t, err)
	assert.NotZero(t, styleID)
}

func TestWorkbookEmptyRows(t *testing.T) {
	f, err := Workbook("Alerts", partColumns(), nil)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Alerts")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestWorkbookRequiresColumns(t *testing.T) {
	_, err := Workbook[part]("Empty", nil, nil)
	assert.Error(t, err)
}
