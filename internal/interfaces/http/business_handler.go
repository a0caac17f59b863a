package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Backoffice-api/internal/application/analytics"
	"github.com/jhoicas/Backoffice-api/internal/application/dto"
)

// Content types de las exportaciones.
const (
	mimePDF  = "application/pdf"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// BusinessHandler expone los reportes de /api/business. Cada petición calcula sobre datos frescos.
type BusinessHandler struct {
	reports *analytics.ReportUseCase
	exports *analytics.ExportUseCase
}

// NewBusinessHandler construye el handler.
func NewBusinessHandler(reports *analytics.ReportUseCase, exports *analytics.ExportUseCase) *BusinessHandler {
	return &BusinessHandler{reports: reports, exports: exports}
}

// Mount registra las rutas. Las rutas fijas van antes que las de :productId.
func (h *BusinessHandler) Mount(r fiber.Router) {
	r.Get("/inventory/value", plain(h.reports.InventoryValue))
	r.Get("/inventory/value/pdf", h.InventoryValuePDF)

	r.Get("/products/profit-margin", withQuery(h.reports.ProfitMargins))
	r.Get("/products/low-stock", withQuery(h.reports.LowStock))
	r.Get("/products/rotation", withQuery(h.reports.Rotation))
	r.Get("/products/abc-analysis", withQuery(h.reports.ABCAnalysis))
	r.Get("/products/abc-analysis/export", h.ABCAnalysisXLSX)
	r.Get("/products/restock-suggestions", withQuery(h.reports.RestockSuggestions))
	r.Get("/products/dead-stock", withQuery(h.reports.DeadStock))
	r.Get("/products/:productId/profit", byID("productId", h.reports.ProductProfit))
	r.Get("/products/:productId/rotation", byIDWithQuery("productId", h.reports.ProductRotation))
	r.Get("/products/:productId/demand-forecast", byIDWithQuery("productId", h.reports.DemandForecast))
	r.Post("/products/:productId/simulate-price", h.SimulatePrice)

	r.Get("/sales/analytics", withQuery(h.reports.SalesAnalytics))
	r.Get("/sales/top-products", withQuery(h.reports.TopProducts))
	r.Get("/sales/trend", withQuery(h.reports.SalesTrend))
	r.Get("/sales/roi", withQuery(h.reports.ROI))
	r.Get("/sales/by-weekday", withQuery(h.reports.ByWeekday))
	r.Get("/sales/by-hour", withQuery(h.reports.ByHour))
	r.Get("/sales/monthly", withQuery(h.reports.Monthly))
	r.Get("/sales/cross-sell", withQuery(h.reports.CrossSell))

	r.Get("/clients/segmentation", plain(h.reports.Segmentation))
	r.Get("/clients/top", withQuery(h.reports.TopClients))
	r.Get("/clients/retention", withQuery(h.reports.Retention))
	r.Get("/clients/:clientId/value", byID("clientId", h.reports.ClientValue))
	r.Get("/clients/:clientId/predict-purchase", byID("clientId", h.reports.PredictPurchase))

	r.Get("/categories/performance", withQuery(h.reports.CategoryPerformance))
	r.Get("/pricing/analysis", plain(h.reports.PricingAnalysis))
	r.Post("/scenarios/simulate", h.SimulateScenario)
}

// ── Adaptadores ───────────────────────────────────────────────────────────────

func plain[T any](fn func(context.Context) (*T, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := fn(c.UserContext())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
}

func withQuery[T any](fn func(context.Context, dto.ReportQuery) (*T, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var q dto.ReportQuery
		if err := bindQuery(c, &q); err != nil {
			return respondError(c, err)
		}
		out, err := fn(c.UserContext(), q)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
}

func byID[T any](param string, fn func(context.Context, string) (*T, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := fn(c.UserContext(), c.Params(param))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
}

func byIDWithQuery[T any](param string, fn func(context.Context, string, dto.ReportQuery) (*T, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var q dto.ReportQuery
		if err := bindQuery(c, &q); err != nil {
			return respondError(c, err)
		}
		out, err := fn(c.UserContext(), c.Params(param), q)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
}

// ── Simulaciones ──────────────────────────────────────────────────────────────

// SimulatePrice godoc
// @Summary      Simular cambio de precio
// @Tags         business
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId  path  string                    true  "Producto"
// @Param        body       body  dto.SimulatePriceRequest  true  "new_price o percentage"
// @Success      200  {object}  dto.PriceSimulationDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/business/products/{productId}/simulate-price [post]
func (h *BusinessHandler) SimulatePrice(c *fiber.Ctx) error {
	var in dto.SimulatePriceRequest
	if err := bindBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.reports.SimulatePrice(c.UserContext(), c.Params("productId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SimulateScenario godoc
// @Summary      Simular escenario de precio, costo y demanda
// @Tags         business
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScenarioRequest  true  "Variaciones porcentuales"
// @Success      200  {object}  dto.ScenarioDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/business/scenarios/simulate [post]
func (h *BusinessHandler) SimulateScenario(c *fiber.Ctx) error {
	var in dto.ScenarioRequest
	if err := bindBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.reports.SimulateScenario(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ── Exportaciones ─────────────────────────────────────────────────────────────

// InventoryValuePDF godoc
// @Summary      Inventario valorizado en PDF
// @Tags         business
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/business/inventory/value/pdf [get]
func (h *BusinessHandler) InventoryValuePDF(c *fiber.Ctx) error {
	doc, filename, err := h.exports.InventoryValuePDF(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, mimePDF, filename, doc)
}

// ABCAnalysisXLSX godoc
// @Summary      Análisis ABC en XLSX
// @Tags         business
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        days       query  int     false  "Ventana en días"  default(365)
// @Param        startDate  query  string  false  "YYYY-MM-DD"
// @Param        endDate    query  string  false  "YYYY-MM-DD"
// @Success      200  {file}  binary
// @Router       /api/business/products/abc-analysis/export [get]
func (h *BusinessHandler) ABCAnalysisXLSX(c *fiber.Ctx) error {
	var q dto.ReportQuery
	if err := bindQuery(c, &q); err != nil {
		return respondError(c, err)
	}
	doc, filename, err := h.exports.ABCAnalysisXLSX(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, mimeXLSX, filename, doc)
}

func sendFile(c *fiber.Ctx, contentType, filename string, body []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(body)
}
