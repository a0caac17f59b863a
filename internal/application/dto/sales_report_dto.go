package dto

import "github.com/shopspring/decimal"

// SalesSummaryDTO agregado de un conjunto de ventas.
type SalesSummaryDTO struct {
	Sales         int             `json:"sales"`
	UnitsSold     int             `json:"units_sold"`
	Revenue       decimal.Decimal `json:"revenue"`
	AverageSale   decimal.Decimal `json:"average_sale"`
	MinSale       decimal.Decimal `json:"min_sale"`
	MaxSale       decimal.Decimal `json:"max_sale"`
	UniqueClients int             `json:"unique_clients"`
}

// ProductSalesDTO ventas de un producto en la ventana.
type ProductSalesDTO struct {
	Rank        int             `json:"rank"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitsSold   int             `json:"units_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
	RevenuePct  decimal.Decimal `json:"revenue_pct"`
}

// SalesAnalyticsDTO GET /api/business/sales/analytics.
type SalesAnalyticsDTO struct {
	Period   PeriodDTO         `json:"period"`
	Summary  SalesSummaryDTO   `json:"summary"`
	Products []ProductSalesDTO `json:"products"`
}

// TopProductsDTO GET /api/business/sales/top-products.
type TopProductsDTO struct {
	Period   PeriodDTO         `json:"period"`
	Limit    int               `json:"limit"`
	Summary  SalesSummaryDTO   `json:"summary"`
	Products []ProductSalesDTO `json:"products"`
}

// SalesBucketDTO ventas agrupadas por una dimensión de tiempo.
type SalesBucketDTO struct {
	Key         string          `json:"key"`   // 2026-02-01, 0-6, 0-23, 1-12
	Label       string          `json:"label"` // etiqueta legible
	Sales       int             `json:"sales"`
	UnitsSold   int             `json:"units_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
	AverageSale decimal.Decimal `json:"average_sale"`
}

// SalesDistributionDTO reportes de ventas por día, día de semana, hora o mes.
// Buckets siempre contiene el universo completo de la dimensión.
type SalesDistributionDTO struct {
	Period    PeriodDTO        `json:"period"`
	Dimension string           `json:"dimension"` // day | weekday | hour | month
	Year      int              `json:"year,omitempty"`
	Summary   SalesSummaryDTO  `json:"summary"`
	Buckets   []SalesBucketDTO `json:"buckets"`
}

// ProductROIDTO retorno de un producto.
type ProductROIDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitsSold   int             `json:"units_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
	Cost        decimal.Decimal `json:"cost"`
	Profit      decimal.Decimal `json:"profit"`
	ROI         decimal.Decimal `json:"roi"`
}

// ROISummaryDTO totales del ROI. ProfitMargin es utilidad / ingresos × 100.
type ROISummaryDTO struct {
	Sales        int             `json:"sales"`
	Revenue      decimal.Decimal `json:"revenue"`
	Cost         decimal.Decimal `json:"cost"`
	Profit       decimal.Decimal `json:"profit"`
	ROI          decimal.Decimal `json:"roi"`
	ProfitMargin decimal.Decimal `json:"profit_margin"`
}

// ROIReportDTO GET /api/business/sales/roi.
type ROIReportDTO struct {
	Period   PeriodDTO       `json:"period"`
	Summary  ROISummaryDTO   `json:"summary"`
	Products []ProductROIDTO `json:"products"`
}

// ProductRefDTO referencia mínima a un producto.
type ProductRefDTO struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
}

// CrossSellPairDTO par de productos comprados juntos. Porcentajes en 0–100.
type CrossSellPairDTO struct {
	ProductA       ProductRefDTO   `json:"product_a"`
	ProductB       ProductRefDTO   `json:"product_b"`
	Count          int             `json:"count"`
	SupportPct     decimal.Decimal `json:"support_pct"`
	ConfidenceAtoB decimal.Decimal `json:"confidence_a_to_b"`
	ConfidenceBtoA decimal.Decimal `json:"confidence_b_to_a"`
}

// CrossSellSummaryDTO totales del análisis de venta cruzada.
type CrossSellSummaryDTO struct {
	Transactions int             `json:"transactions"` // ventas con 2+ productos
	Pairs        int             `json:"pairs"`
	MinSupport   decimal.Decimal `json:"min_support"`
}

// CrossSellDTO GET /api/business/sales/cross-sell.
type CrossSellDTO struct {
	Period  PeriodDTO           `json:"period"`
	Limit   int                 `json:"limit"`
	Summary CrossSellSummaryDTO `json:"summary"`
	Pairs   []CrossSellPairDTO  `json:"pairs"`
}
