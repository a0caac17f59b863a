package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Backoffice-api/internal/application/analytics"
)

// DashboardHandler maneja el resumen ejecutivo.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve el resumen del día y del mes en curso.
// GET /api/business/dashboard
//
// Respuesta: DashboardSummaryDTO (ventas y margen de hoy y del mes, top 5 productos,
// valor del inventario, productos con stock bajo y date_label).
// No requiere parámetros; las fechas se calculan en el servidor.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
