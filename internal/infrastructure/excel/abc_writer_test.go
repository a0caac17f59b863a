package excel_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/infrastructure/excel"
)

func TestWriteABC(t *testing.T) {
	report := &dto.ABCReportDTO{
		Period: dto.PeriodDTO{StartDate: "2026-02-14", EndDate: "2026-03-15", Days: 30},
		Summary: dto.ABCSummaryDTO{
			Products:     2,
			TotalRevenue: decimal.NewFromInt(600),
			Classes: []dto.ABCClassDTO{
				{Class: "A", Products: 1, Revenue: decimal.NewFromInt(480), RevenuePct: decimal.NewFromInt(80)},
				{Class: "B", Products: 0},
				{Class: "C", Products: 1, Revenue: decimal.NewFromInt(120), RevenuePct: decimal.NewFromInt(20)},
			},
		},
		Products: []dto.ABCItemDTO{
			{Rank: 1, ProductID: "p1", ProductName: "Café", UnitsSold: 32, Revenue: decimal.NewFromInt(480), Class: "A"},
			{Rank: 2, ProductID: "p2", ProductName: "Agua", UnitsSold: 24, Revenue: decimal.NewFromInt(120), Class: "C"},
		},
	}

	out, err := excel.NewABCWriter().WriteABC(context.Background(), report)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"ABC", "Resumen"}, f.GetSheetList())

	rows, err := f.GetRows("ABC")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Producto", rows[0][2])
	assert.Equal(t, "p1", rows[1][1])
	assert.Equal(t, "Café", rows[1][2])
	assert.Equal(t, "A", rows[1][7])
	assert.Equal(t, "C", rows[2][7])

	summary, err := f.GetRows("Resumen")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-14", summary[0][1])
	assert.Equal(t, "Clase", summary[5][0])
	assert.Equal(t, "A", summary[6][0])
}

func TestWriteABC_SinReporte(t *testing.T) {
	_, err := excel.NewABCWriter().WriteABC(context.Background(), nil)
	assert.Error(t, err)
}
