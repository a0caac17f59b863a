package metrics

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/domain"
)

// PriceChange cambio hipotético de precio. NewPrice tiene prioridad sobre Percentage.
type PriceChange struct {
	NewPrice   *decimal.Decimal
	Percentage *decimal.Decimal // +10 = subir 10 %
}

// PriceSimulation resultado de simular un nuevo precio de venta sobre el stock actual.
type PriceSimulation struct {
	Stock                  int
	Cost                   decimal.Decimal
	CurrentPrice           decimal.Decimal
	NewPrice               decimal.Decimal
	PriceChangePct         decimal.Decimal
	CurrentProfit          decimal.Decimal
	NewProfit              decimal.Decimal
	ProfitDelta            decimal.Decimal
	CurrentMarginPct       decimal.Decimal
	NewMarginPct           decimal.Decimal
	CurrentStockValue      decimal.Decimal // stock × precio actual
	NewStockValue          decimal.Decimal // stock × nuevo precio
	CurrentPotentialProfit decimal.Decimal
	NewPotentialProfit     decimal.Decimal
}

// SimulatePrice recalcula utilidad, margen y valor del stock con el precio hipotético.
func SimulatePrice(salePrice, purchasePrice decimal.Decimal, stock int, change PriceChange) (PriceSimulation, error) {
	var newPrice decimal.Decimal
	switch {
	case change.NewPrice != nil:
		newPrice = *change.NewPrice
	case change.Percentage != nil:
		newPrice = salePrice.Mul(hundred.Add(*change.Percentage)).Div(hundred)
	default:
		return PriceSimulation{}, domain.ErrMissingSimulationInput
	}
	if newPrice.IsNegative() {
		return PriceSimulation{}, fmt.Errorf("%w: el precio simulado no puede ser negativo", domain.ErrInvalidInput)
	}

	qty := decimal.NewFromInt(int64(stock))
	curProfit := Profit(salePrice, purchasePrice)
	newProfit := Profit(newPrice, purchasePrice)

	return PriceSimulation{
		Stock:                  stock,
		Cost:                   purchasePrice,
		CurrentPrice:           salePrice,
		NewPrice:               newPrice,
		PriceChangePct:         Percent(newPrice.Sub(salePrice), salePrice),
		CurrentProfit:          curProfit,
		NewProfit:              newProfit,
		ProfitDelta:            newProfit.Sub(curProfit),
		CurrentMarginPct:       MarginPct(salePrice, purchasePrice),
		NewMarginPct:           MarginPct(newPrice, purchasePrice),
		CurrentStockValue:      salePrice.Mul(qty),
		NewStockValue:          newPrice.Mul(qty),
		CurrentPotentialProfit: curProfit.Mul(qty),
		NewPotentialProfit:     newProfit.Mul(qty),
	}, nil
}

// ScenarioChange variaciones porcentuales de un escenario. Nil = sin cambio.
type ScenarioChange struct {
	PricePct  *decimal.Decimal
	CostPct   *decimal.Decimal
	DemandPct *decimal.Decimal
}

// Empty indica que el escenario no modifica nada.
func (c ScenarioChange) Empty() bool {
	return c.PricePct == nil && c.CostPct == nil && c.DemandPct == nil
}

// Totals agregado de unidades, ingresos y costo de un período.
type Totals struct {
	Units   decimal.Decimal
	Revenue decimal.Decimal
	Cost    decimal.Decimal
}

// Profit ingresos − costo.
func (t Totals) Profit() decimal.Decimal { return t.Revenue.Sub(t.Cost) }

// MarginPct utilidad sobre costo × 100.
func (t Totals) MarginPct() decimal.Decimal { return Percent(t.Profit(), t.Cost) }

// Add suma dos totales.
func (t Totals) Add(o Totals) Totals {
	return Totals{Units: t.Units.Add(o.Units), Revenue: t.Revenue.Add(o.Revenue), Cost: t.Cost.Add(o.Cost)}
}

// ApplyScenario proyecta los totales base con las variaciones de precio, costo y demanda.
// La demanda escala unidades, ingresos y costo; el precio solo ingresos; el costo solo costo.
func ApplyScenario(base Totals, change ScenarioChange) (Totals, error) {
	if change.Empty() {
		return Totals{}, domain.ErrMissingSimulationInput
	}
	price, cost, demand := factor(change.PricePct), factor(change.CostPct), factor(change.DemandPct)
	if price.IsNegative() || cost.IsNegative() || demand.IsNegative() {
		return Totals{}, fmt.Errorf("%w: las variaciones no pueden ser menores a -100%%", domain.ErrInvalidInput)
	}
	return Totals{
		Units:   base.Units.Mul(demand),
		Revenue: base.Revenue.Mul(price).Mul(demand),
		Cost:    base.Cost.Mul(cost).Mul(demand),
	}, nil
}

func factor(pct *decimal.Decimal) decimal.Decimal {
	if pct == nil {
		return decimal.NewFromInt(1)
	}
	return hundred.Add(*pct).Div(hundred)
}
