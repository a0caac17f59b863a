package metrics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// LookbackFactor la demanda se estima con un histórico de 3 × el horizonte pedido.
const LookbackFactor = 3

// Forecast pronóstico de demanda de un producto.
type Forecast struct {
	HorizonDays  int
	LookbackDays int
	UnitsSold    int             // unidades en el histórico
	AvgDaily     decimal.Decimal // unidades/día
	Predicted    decimal.Decimal // unidades esperadas en el horizonte
	Stock        int
	RestockNeed  int // max(0, ceil(Predicted − Stock))
}

// ForecastDemand proyecta el promedio diario del histórico sobre el horizonte.
func ForecastDemand(unitsSold, lookbackDays, horizonDays, stock int) Forecast {
	avg := SafeDiv(decimal.NewFromInt(int64(unitsSold)), decimal.NewFromInt(int64(lookbackDays)), decimal.Zero)
	predicted := decimal.Zero
	if lookbackDays > 0 {
		predicted = decimal.NewFromInt(int64(unitsSold * horizonDays)).Div(decimal.NewFromInt(int64(lookbackDays)))
	}
	need := predicted.Sub(decimal.NewFromInt(int64(stock))).Ceil()
	if need.IsNegative() {
		need = decimal.Zero
	}
	return Forecast{
		HorizonDays:  horizonDays,
		LookbackDays: lookbackDays,
		UnitsSold:    unitsSold,
		AvgDaily:     avg,
		Predicted:    predicted,
		Stock:        stock,
		RestockNeed:  int(need.IntPart()),
	}
}

// PurchasePrediction intervalo medio entre compras y fecha estimada de la próxima.
type PurchasePrediction struct {
	Purchases       int
	LastPurchase    time.Time
	AvgIntervalDays decimal.Decimal
	NextPurchase    time.Time
}

// PredictNextPurchase requiere al menos dos compras; ok=false en otro caso.
func PredictNextPurchase(dates []time.Time) (PurchasePrediction, bool) {
	if len(dates) < 2 {
		return PurchasePrediction{Purchases: len(dates)}, false
	}
	sorted := make([]time.Time, len(dates))
	copy(sorted, dates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	first, last := sorted[0], sorted[len(sorted)-1]
	span := decimal.NewFromInt(int64(last.Sub(first))).Div(decimal.NewFromInt(int64(day)))
	avg := span.Div(decimal.NewFromInt(int64(len(sorted) - 1)))
	next := last.Add(time.Duration(avg.Mul(decimal.NewFromInt(int64(day))).IntPart()))

	return PurchasePrediction{
		Purchases:       len(sorted),
		LastPurchase:    last,
		AvgIntervalDays: avg,
		NextPurchase:    next,
	}, true
}
