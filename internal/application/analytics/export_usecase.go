package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain/metrics"
)

// InventoryReportRenderer puerto de salida para renderizar el inventario valorizado en PDF.
type InventoryReportRenderer interface {
	RenderInventoryValue(ctx context.Context, report *dto.InventoryValueDTO, generatedAt time.Time) ([]byte, error)
}

// ABCSpreadsheetWriter puerto de salida para exportar el análisis ABC a una hoja de cálculo.
type ABCSpreadsheetWriter interface {
	WriteABC(ctx context.Context, report *dto.ABCReportDTO) ([]byte, error)
}

// ExportUseCase exporta reportes a archivos descargables.
// Los datos son exactamente los del reporte JSON correspondiente.
type ExportUseCase struct {
	reports *ReportUseCase
	pdf     InventoryReportRenderer
	xlsx    ABCSpreadsheetWriter
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(reports *ReportUseCase, pdf InventoryReportRenderer, xlsx ABCSpreadsheetWriter) *ExportUseCase {
	return &ExportUseCase{reports: reports, pdf: pdf, xlsx: xlsx}
}

// InventoryValuePDF devuelve (pdfBytes, filename, err).
func (uc *ExportUseCase) InventoryValuePDF(ctx context.Context) ([]byte, string, error) {
	report, err := uc.reports.InventoryValue(ctx)
	if err != nil {
		return nil, "", err
	}
	now := uc.reports.now()
	doc, err := uc.pdf.RenderInventoryValue(ctx, report, now)
	if err != nil {
		return nil, "", fmt.Errorf("export: pdf inventario: %w", err)
	}
	return doc, fmt.Sprintf("inventario-%s.pdf", now.Format(metrics.DateLayout)), nil
}

// ABCAnalysisXLSX devuelve (xlsxBytes, filename, err) con el análisis ABC de la ventana pedida.
func (uc *ExportUseCase) ABCAnalysisXLSX(ctx context.Context, q dto.ReportQuery) ([]byte, string, error) {
	report, err := uc.reports.ABCAnalysis(ctx, q)
	if err != nil {
		return nil, "", err
	}
	doc, err := uc.xlsx.WriteABC(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("export: xlsx abc: %w", err)
	}
	return doc, fmt.Sprintf("abc-%s_%s.xlsx", report.Period.StartDate, report.Period.EndDate), nil
}
