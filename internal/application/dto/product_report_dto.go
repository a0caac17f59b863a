package dto

import "github.com/shopspring/decimal"

// ProductProfitDTO GET /api/business/products/:productId/profit.
// ProfitMargin es el margen sobre el costo formateado ("66.67%").
type ProductProfitDTO struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Profit        decimal.Decimal `json:"profit"`
	MarginPct     decimal.Decimal `json:"margin_pct"`
	ProfitMargin  string          `json:"profit_margin"`
}

// ── Inventario ────────────────────────────────────────────────────────────────

// InventoryValueSummaryDTO totales del inventario valorizado.
type InventoryValueSummaryDTO struct {
	Products        int             `json:"products"`
	Units           int             `json:"units"`
	CostValue       decimal.Decimal `json:"cost_value"` // Σ stock × purchase_price
	SaleValue       decimal.Decimal `json:"sale_value"` // Σ stock × sale_price
	PotentialProfit decimal.Decimal `json:"potential_profit"`
}

// CategoryInventoryDTO inventario valorizado de una categoría.
type CategoryInventoryDTO struct {
	CategoryID      string          `json:"category_id"`
	CategoryName    string          `json:"category_name"`
	Products        int             `json:"products"`
	Units           int             `json:"units"`
	CostValue       decimal.Decimal `json:"cost_value"`
	SaleValue       decimal.Decimal `json:"sale_value"`
	PotentialProfit decimal.Decimal `json:"potential_profit"`
}

// InventoryValueDTO GET /api/business/inventory/value.
type InventoryValueDTO struct {
	Summary    InventoryValueSummaryDTO `json:"summary"`
	Categories []CategoryInventoryDTO   `json:"categories"`
}

// ── Márgenes y precios ────────────────────────────────────────────────────────

// ProductMarginDTO margen de un producto.
type ProductMarginDTO struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	CategoryName  string          `json:"category_name"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Profit        decimal.Decimal `json:"profit"`
	MarginPct     decimal.Decimal `json:"margin_pct"`
	Band          string          `json:"band"`
}

// MarginSummaryDTO resumen de márgenes.
type MarginSummaryDTO struct {
	Products      int             `json:"products"`
	AvgMarginPct  decimal.Decimal `json:"avg_margin_pct"`
	NegativeCount int             `json:"negative_count"`
}

// ProfitMarginReportDTO GET /api/business/products/profit-margin.
type ProfitMarginReportDTO struct {
	Limit    int                `json:"limit"`
	Summary  MarginSummaryDTO   `json:"summary"`
	Products []ProductMarginDTO `json:"products"`
}

// PricingBandDTO productos dentro de una banda de margen.
type PricingBandDTO struct {
	Band         string          `json:"band"`
	Products     int             `json:"products"`
	AvgMarginPct decimal.Decimal `json:"avg_margin_pct"`
}

// PricingSummaryDTO promedios de precios y márgenes.
type PricingSummaryDTO struct {
	Products         int             `json:"products"`
	AvgSalePrice     decimal.Decimal `json:"avg_sale_price"`
	AvgPurchasePrice decimal.Decimal `json:"avg_purchase_price"`
	AvgMarginPct     decimal.Decimal `json:"avg_margin_pct"`
	MinMarginPct     decimal.Decimal `json:"min_margin_pct"`
	MaxMarginPct     decimal.Decimal `json:"max_margin_pct"`
}

// PricingAnalysisDTO GET /api/business/pricing/analysis.
type PricingAnalysisDTO struct {
	Summary  PricingSummaryDTO  `json:"summary"`
	Bands    []PricingBandDTO   `json:"bands"`
	Products []ProductMarginDTO `json:"products"`
}

// ── Stock ─────────────────────────────────────────────────────────────────────

// StockItemDTO producto con su stock valorizado.
type StockItemDTO struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	CategoryName string          `json:"category_name"`
	Stock        int             `json:"stock"`
	CostValue    decimal.Decimal `json:"cost_value"`
}

// StockSummaryDTO totales de una lista de stock.
type StockSummaryDTO struct {
	Products  int             `json:"products"`
	Units     int             `json:"units"`
	CostValue decimal.Decimal `json:"cost_value"`
}

// LowStockReportDTO GET /api/business/products/low-stock.
type LowStockReportDTO struct {
	Threshold int             `json:"threshold"`
	Summary   StockSummaryDTO `json:"summary"`
	Products  []StockItemDTO  `json:"products"`
}

// DeadStockReportDTO GET /api/business/products/dead-stock.
type DeadStockReportDTO struct {
	Period   PeriodDTO       `json:"period"`
	Summary  StockSummaryDTO `json:"summary"`
	Products []StockItemDTO  `json:"products"`
}

// ── Rotación ──────────────────────────────────────────────────────────────────

// ProductRotationDTO rotación de un producto en la ventana.
type ProductRotationDTO struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Stock         int             `json:"stock"`
	UnitsSold     int             `json:"units_sold"`
	RotationRate  decimal.Decimal `json:"rotation_rate"`
	DaysToSellOut DaysOrNA        `json:"days_to_sell_out"`
}

// ProductRotationReportDTO GET /api/business/products/:productId/rotation.
type ProductRotationReportDTO struct {
	Period PeriodDTO `json:"period"`
	ProductRotationDTO
}

// RotationSummaryDTO resumen de rotación.
type RotationSummaryDTO struct {
	Products        int             `json:"products"`
	UnitsSold       int             `json:"units_sold"`
	AvgRotationRate decimal.Decimal `json:"avg_rotation_rate"`
}

// RotationReportDTO GET /api/business/products/rotation.
type RotationReportDTO struct {
	Period   PeriodDTO            `json:"period"`
	Summary  RotationSummaryDTO   `json:"summary"`
	Products []ProductRotationDTO `json:"products"`
}

// ── ABC ───────────────────────────────────────────────────────────────────────

// ABCItemDTO producto clasificado.
type ABCItemDTO struct {
	Rank          int             `json:"rank"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	UnitsSold     int             `json:"units_sold"`
	Revenue       decimal.Decimal `json:"revenue"`
	RevenuePct    decimal.Decimal `json:"revenue_pct"`
	CumulativePct decimal.Decimal `json:"cumulative_pct"`
	Class         string          `json:"class"`
}

// ABCClassDTO totales de una clase.
type ABCClassDTO struct {
	Class      string          `json:"class"`
	Products   int             `json:"products"`
	Revenue    decimal.Decimal `json:"revenue"`
	RevenuePct decimal.Decimal `json:"revenue_pct"`
}

// ABCSummaryDTO resumen del análisis ABC.
type ABCSummaryDTO struct {
	Products     int             `json:"products"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	Classes      []ABCClassDTO   `json:"classes"`
}

// ABCReportDTO GET /api/business/products/abc-analysis.
type ABCReportDTO struct {
	Period   PeriodDTO     `json:"period"`
	Summary  ABCSummaryDTO `json:"summary"`
	Products []ABCItemDTO  `json:"products"`
}

// ── Demanda ───────────────────────────────────────────────────────────────────

// DemandForecastDTO GET /api/business/products/:productId/demand-forecast.
type DemandForecastDTO struct {
	Lookback        PeriodDTO       `json:"lookback"`
	ProductID       string          `json:"product_id"`
	ProductName     string          `json:"product_name"`
	HorizonDays     int             `json:"horizon_days"`
	UnitsSold       int             `json:"units_sold"`
	AvgDailySales   decimal.Decimal `json:"avg_daily_sales"`
	PredictedDemand decimal.Decimal `json:"predicted_demand"`
	Stock           int             `json:"stock"`
	RestockNeed     int             `json:"restock_need"`
}

// RestockItemDTO sugerencia de reposición de un producto.
type RestockItemDTO struct {
	ProductID       string          `json:"product_id"`
	ProductName     string          `json:"product_name"`
	Stock           int             `json:"stock"`
	PredictedDemand decimal.Decimal `json:"predicted_demand"`
	RestockQty      int             `json:"restock_qty"`
	EstimatedCost   decimal.Decimal `json:"estimated_cost"`
}

// RestockSummaryDTO totales de la reposición sugerida.
type RestockSummaryDTO struct {
	Products      int             `json:"products"`
	Units         int             `json:"units"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
}

// RestockReportDTO GET /api/business/products/restock-suggestions.
type RestockReportDTO struct {
	Lookback    PeriodDTO         `json:"lookback"`
	HorizonDays int               `json:"horizon_days"`
	Summary     RestockSummaryDTO `json:"summary"`
	Products    []RestockItemDTO  `json:"products"`
}

// ── Categorías ────────────────────────────────────────────────────────────────

// CategoryPerformanceItemDTO ventas de una categoría en la ventana.
type CategoryPerformanceItemDTO struct {
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Products     int             `json:"products"`
	UnitsSold    int             `json:"units_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
	Cost         decimal.Decimal `json:"cost"`
	Profit       decimal.Decimal `json:"profit"`
	MarginPct    decimal.Decimal `json:"margin_pct"`
	RevenuePct   decimal.Decimal `json:"revenue_pct"`
}

// CategoryPerformanceSummaryDTO totales del reporte por categoría.
type CategoryPerformanceSummaryDTO struct {
	Categories int             `json:"categories"`
	UnitsSold  int             `json:"units_sold"`
	Revenue    decimal.Decimal `json:"revenue"`
	Profit     decimal.Decimal `json:"profit"`
}

// CategoryPerformanceDTO GET /api/business/categories/performance.
type CategoryPerformanceDTO struct {
	Period     PeriodDTO                     `json:"period"`
	Summary    CategoryPerformanceSummaryDTO `json:"summary"`
	Categories []CategoryPerformanceItemDTO  `json:"categories"`
}
