package dto

import "github.com/shopspring/decimal"

// SimulatePriceRequest cuerpo de POST /api/business/products/:productId/simulate-price.
// Se requiere new_price o percentage; new_price tiene prioridad.
type SimulatePriceRequest struct {
	NewPrice   *decimal.Decimal `json:"new_price"`
	Percentage *decimal.Decimal `json:"percentage"`
}

// PricePointDTO precio, utilidad y valor del stock en un escenario.
type PricePointDTO struct {
	Price           decimal.Decimal `json:"price"`
	Profit          decimal.Decimal `json:"profit"`
	MarginPct       decimal.Decimal `json:"margin_pct"`
	StockValue      decimal.Decimal `json:"stock_value"`
	PotentialProfit decimal.Decimal `json:"potential_profit"`
}

// PriceImpactDTO diferencias entre el precio simulado y el actual.
type PriceImpactDTO struct {
	PriceChangePct       decimal.Decimal `json:"price_change_pct"`
	ProfitDelta          decimal.Decimal `json:"profit_delta"`
	StockValueDelta      decimal.Decimal `json:"stock_value_delta"`
	PotentialProfitDelta decimal.Decimal `json:"potential_profit_delta"`
}

// PriceSimulationDTO respuesta de la simulación de precio.
type PriceSimulationDTO struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Stock         int             `json:"stock"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Current       PricePointDTO   `json:"current"`
	Simulated     PricePointDTO   `json:"simulated"`
	Impact        PriceImpactDTO  `json:"impact"`
}

// ScenarioRequest cuerpo de POST /api/business/scenarios/simulate.
// Variaciones porcentuales (+10 = subir 10 %); se requiere al menos una.
type ScenarioRequest struct {
	PriceChangePct  *decimal.Decimal `json:"price_change_pct"`
	CostChangePct   *decimal.Decimal `json:"cost_change_pct"`
	DemandChangePct *decimal.Decimal `json:"demand_change_pct"`
	Days            int              `json:"days" validate:"min=0,max=3650"`
	StartDate       string           `json:"startDate"`
	EndDate         string           `json:"endDate"`
}

// ScenarioTotalsDTO totales de un escenario.
type ScenarioTotalsDTO struct {
	UnitsSold decimal.Decimal `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
	Cost      decimal.Decimal `json:"cost"`
	Profit    decimal.Decimal `json:"profit"`
	MarginPct decimal.Decimal `json:"margin_pct"`
}

// ScenarioImpactDTO diferencias escenario − base.
type ScenarioImpactDTO struct {
	RevenueDelta   decimal.Decimal `json:"revenue_delta"`
	CostDelta      decimal.Decimal `json:"cost_delta"`
	ProfitDelta    decimal.Decimal `json:"profit_delta"`
	ProfitDeltaPct decimal.Decimal `json:"profit_delta_pct"`
}

// ScenarioProductDTO base y escenario de un producto.
type ScenarioProductDTO struct {
	ProductID   string            `json:"product_id"`
	ProductName string            `json:"product_name"`
	Baseline    ScenarioTotalsDTO `json:"baseline"`
	Scenario    ScenarioTotalsDTO `json:"scenario"`
}

// ScenarioChangesDTO variaciones aplicadas (eco de la petición).
type ScenarioChangesDTO struct {
	PriceChangePct  *decimal.Decimal `json:"price_change_pct,omitempty"`
	CostChangePct   *decimal.Decimal `json:"cost_change_pct,omitempty"`
	DemandChangePct *decimal.Decimal `json:"demand_change_pct,omitempty"`
}

// ScenarioDTO respuesta de la simulación de escenario.
type ScenarioDTO struct {
	Period   PeriodDTO            `json:"period"`
	Changes  ScenarioChangesDTO   `json:"changes"`
	Baseline ScenarioTotalsDTO    `json:"baseline"`
	Scenario ScenarioTotalsDTO    `json:"scenario"`
	Impact   ScenarioImpactDTO    `json:"impact"`
	Products []ScenarioProductDTO `json:"products"`
}
