// Package excel exporta reportes a hojas de cálculo XLSX (excelize).
package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/analytics"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
)

const (
	sheetProducts = "ABC"
	sheetSummary  = "Resumen"
)

var abcHeader = []any{"#", "ID", "Producto", "Unidades", "Ingresos", "% ingresos", "% acumulado", "Clase"}

var _ analytics.ABCSpreadsheetWriter = (*ABCWriter)(nil)

// ABCWriter escribe el análisis ABC en un libro con dos hojas: detalle y resumen por clase.
type ABCWriter struct{}

// NewABCWriter construye el writer.
func NewABCWriter() *ABCWriter { return &ABCWriter{} }

// WriteABC devuelve los bytes del libro XLSX.
func (w *ABCWriter) WriteABC(_ context.Context, report *dto.ABCReportDTO) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("excel: reporte vacío")
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetProducts); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}
	if err := writeProducts(f, report.Products); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return nil, fmt.Errorf("excel: crear hoja: %w", err)
	}
	if err := writeSummary(f, report); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func writeProducts(f *excelize.File, items []dto.ABCItemDTO) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("excel: estilo: %w", err)
	}
	if err := f.SetSheetRow(sheetProducts, "A1", &abcHeader); err != nil {
		return fmt.Errorf("excel: cabecera: %w", err)
	}
	if err := f.SetRowStyle(sheetProducts, 1, 1, bold); err != nil {
		return fmt.Errorf("excel: estilo cabecera: %w", err)
	}
	for i, it := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{
			it.Rank, it.ProductID, it.ProductName, it.UnitsSold,
			it.Revenue.InexactFloat64(), it.RevenuePct.InexactFloat64(), it.CumulativePct.InexactFloat64(),
			it.Class,
		}
		if err := f.SetSheetRow(sheetProducts, cell, &values); err != nil {
			return fmt.Errorf("excel: fila %d: %w", i+2, err)
		}
	}
	return f.SetColWidth(sheetProducts, "C", "C", 32)
}

func writeSummary(f *excelize.File, report *dto.ABCReportDTO) error {
	rows := [][]any{
		{"Desde", report.Period.StartDate},
		{"Hasta", report.Period.EndDate},
		{"Productos", report.Summary.Products},
		{"Ingresos totales", report.Summary.TotalRevenue.InexactFloat64()},
		{},
		{"Clase", "Productos", "Ingresos", "% ingresos"},
	}
	for _, c := range report.Summary.Classes {
		rows = append(rows, []any{c.Class, c.Products, c.Revenue.InexactFloat64(), c.RevenuePct.InexactFloat64()})
	}
	for i, values := range rows {
		if len(values) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetSummary, cell, &values); err != nil {
			return fmt.Errorf("excel: resumen fila %d: %w", i+1, err)
		}
	}
	return nil
}
