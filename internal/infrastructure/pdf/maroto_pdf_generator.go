// Package pdf genera el reporte de inventario valorizado en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Productos / Unidades / Costo / Venta / Ganancia   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Categoría | Prod. | Unid. | Costo | Venta | Ganancia│
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES                                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/Backoffice-api/internal/application/analytics"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var _ analytics.InventoryReportRenderer = (*MarotoPDFGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa analytics.InventoryReportRenderer usando Maroto v2.
type MarotoPDFGenerator struct {
	printer *message.Printer
}

// NewMarotoPDFGenerator construye el generador. Los importes se formatean en español.
func NewMarotoPDFGenerator() *MarotoPDFGenerator {
	return &MarotoPDFGenerator{printer: message.NewPrinter(language.Spanish)}
}

// RenderInventoryValue genera el PDF del inventario valorizado y devuelve sus bytes.
func (g *MarotoPDFGenerator) RenderInventoryValue(
	_ context.Context,
	report *dto.InventoryValueDTO,
	generatedAt time.Time,
) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("pdf: reporte vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Inventario valorizado", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.summaryRow(report.Summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, c := range report.Categories {
		m.AddRows(g.categoryRow(c))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(report.Summary))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("INVENTARIO VALORIZADO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Valor del stock a precio de compra y de venta", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// summaryRow: cinco indicadores en una fila.
func (g *MarotoPDFGenerator) summaryRow(s dto.InventoryValueSummaryDTO) core.Row {
	box := func(label, value string, size int) core.Col {
		return col.New(size).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6, Align: align.Center}),
		)
	}
	return row.New(14).Add(
		box("Productos", g.printer.Sprintf("%d", s.Products), 2),
		box("Unidades", g.printer.Sprintf("%d", s.Units), 2),
		box("Valor a costo", g.money(s.CostValue), 3),
		box("Valor a venta", g.money(s.SaleValue), 3),
		box("Ganancia potencial", g.money(s.PotentialProfit), 2),
	)
}

// tableHeaderRow: cabecera de la tabla por categoría.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("Categoría", 3, align.Left),
		h("Prod.", 1, align.Center),
		h("Unid.", 2, align.Center),
		h("Costo", 2, align.Right),
		h("Venta", 2, align.Right),
		h("Ganancia", 2, align.Right),
	)
}

func (g *MarotoPDFGenerator) categoryRow(c dto.CategoryInventoryDTO) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	return row.New(7).Add(
		cell(c.CategoryName, 3, align.Left),
		cell(g.printer.Sprintf("%d", c.Products), 1, align.Center),
		cell(g.printer.Sprintf("%d", c.Units), 2, align.Center),
		cell(g.money(c.CostValue), 2, align.Right),
		cell(g.money(c.SaleValue), 2, align.Right),
		cell(g.money(c.PotentialProfit), 2, align.Right),
	)
}

func (g *MarotoPDFGenerator) totalsRow(s dto.InventoryValueSummaryDTO) core.Row {
	grand := func(v string, size int) core.Col {
		return col.New(size).Add(text.New(v, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right,
			Color: colorPrimary, Top: 1, Right: 1,
		}))
	}
	return row.New(9).Add(
		col.New(3).Add(text.New("TOTAL", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1, Left: 1})),
		col.New(3),
		grand(g.money(s.CostValue), 2),
		grand(g.money(s.SaleValue), 2),
		grand(g.money(s.PotentialProfit), 2),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// money: "$" + importe con separador de miles del locale y dos decimales.
func (g *MarotoPDFGenerator) money(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return "$" + g.printer.Sprintf("%.2f", f)
}
