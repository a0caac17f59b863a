package metrics

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SafeDiv num/den, o fallback si den es cero.
func SafeDiv(num, den, fallback decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return fallback
	}
	return num.Div(den)
}

// Percent part/total × 100 (0 si total es cero).
func Percent(part, total decimal.Decimal) decimal.Decimal {
	return SafeDiv(part, total, decimal.Zero).Mul(hundred)
}

// Profit utilidad unitaria: salePrice − purchasePrice (puede ser negativa).
func Profit(salePrice, purchasePrice decimal.Decimal) decimal.Decimal {
	return salePrice.Sub(purchasePrice)
}

// MarginPct margen sobre el costo: (salePrice − purchasePrice) / purchasePrice × 100.
// Con purchasePrice = 0 devuelve 0.
func MarginPct(salePrice, purchasePrice decimal.Decimal) decimal.Decimal {
	return Percent(Profit(salePrice, purchasePrice), purchasePrice)
}

// FormatPct formatea un porcentaje con dos decimales, ej: "66.67%".
func FormatPct(p decimal.Decimal) string {
	return fmt.Sprintf("%s%%", p.StringFixed(2))
}

// RotationRate unidades vendidas / stock actual (0 si no hay stock).
func RotationRate(unitsSold, stock int) decimal.Decimal {
	return SafeDiv(decimal.NewFromInt(int64(unitsSold)), decimal.NewFromInt(int64(stock)), decimal.Zero)
}

// DaysToSellOut ceil(stock / unitsSold × windowDays). ok=false cuando no hubo ventas ("N/A").
func DaysToSellOut(stock, unitsSold, windowDays int) (days int, ok bool) {
	if unitsSold <= 0 {
		return 0, false
	}
	num := stock * windowDays
	return (num + unitsSold - 1) / unitsSold, true
}

// ROI (revenue − cost) / cost × 100 (0 si cost es cero).
func ROI(revenue, cost decimal.Decimal) decimal.Decimal {
	return Percent(revenue.Sub(cost), cost)
}

// Pricing bands sobre el margen (costo).
const (
	BandNegative = "negative"
	BandLow      = "low"    // [0, 20)
	BandMedium   = "medium" // [20, 50)
	BandHigh     = "high"   // >= 50
)

var (
	bandLowLimit  = decimal.NewFromInt(20)
	bandHighLimit = decimal.NewFromInt(50)
)

// MarginBand clasifica un margen porcentual en su banda.
func MarginBand(marginPct decimal.Decimal) string {
	switch {
	case marginPct.IsNegative():
		return BandNegative
	case marginPct.LessThan(bandLowLimit):
		return BandLow
	case marginPct.LessThan(bandHighLimit):
		return BandMedium
	default:
		return BandHigh
	}
}
