package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/business/dashboard.
// KPIs del día y del mes en curso, el Top 5 de productos del mes y alertas de inventario.
type DashboardSummaryDTO struct {
	// Métricas del día actual (00:00 – 23:59)
	TodaySales  decimal.Decimal `json:"today_sales"`  // ingresos de hoy
	TodayMargin decimal.Decimal `json:"today_margin"` // ingresos − costo de hoy
	TodayOrders int             `json:"today_orders"`

	// Métricas del mes en curso (día 1 – hoy)
	MonthlySales  decimal.Decimal `json:"monthly_sales"`
	MonthlyMargin decimal.Decimal `json:"monthly_margin"`
	MonthlyOrders int             `json:"monthly_orders"`

	// Top 5 productos por ingreso del mes (de mayor a menor)
	TopProducts []TopProductDTO `json:"top_products"`

	// Inventario
	InventoryValue   decimal.Decimal `json:"inventory_value"` // Σ stock × purchase_price
	LowStockProducts int             `json:"low_stock_products"`

	DateLabel string `json:"date_label"` // ej: "Febrero 2026"
}

// TopProductDTO resumen de un producto para el widget del dashboard.
type TopProductDTO struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	QuantitySold int             `json:"quantity_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	MarginPct    decimal.Decimal `json:"margin_pct"` // (revenue − costo) / costo × 100
}
