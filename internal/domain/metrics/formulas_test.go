package metrics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Backoffice-api/internal/domain/metrics"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestMarginPct_SobreCosto(t *testing.T) {
	cases := []struct {
		sale, purchase, want string
	}{
		{"100", "60", "66.67"},
		{"50", "100", "-50"},
		{"10", "10", "0"},
		{"10", "0", "0"},
	}
	for _, c := range cases {
		got := metrics.MarginPct(d(c.sale), d(c.purchase)).Round(2)
		assert.True(t, d(c.want).Equal(got), "sale=%s purchase=%s: got %s", c.sale, c.purchase, got)
	}
}

func TestMarginPct_FormulaExacta(t *testing.T) {
	sale, purchase := d("123.45"), d("67.89")
	want := sale.Sub(purchase).Div(purchase).Mul(decimal.NewFromInt(100))
	assert.True(t, want.Equal(metrics.MarginPct(sale, purchase)))
}

func TestFormatPct(t *testing.T) {
	assert.Equal(t, "66.67%", metrics.FormatPct(metrics.MarginPct(d("100"), d("60"))))
	assert.Equal(t, "0.00%", metrics.FormatPct(decimal.Zero))
}

func TestRotationRate(t *testing.T) {
	assert.True(t, d("2.5").Equal(metrics.RotationRate(25, 10)))
	assert.True(t, metrics.RotationRate(25, 0).IsZero(), "sin stock la rotación es 0")
}

func TestDaysToSellOut(t *testing.T) {
	days, ok := metrics.DaysToSellOut(10, 3, 30)
	assert.True(t, ok)
	assert.Equal(t, 100, days) // ceil(10/3*30)

	days, ok = metrics.DaysToSellOut(0, 5, 30)
	assert.True(t, ok)
	assert.Equal(t, 0, days)

	_, ok = metrics.DaysToSellOut(10, 0, 30)
	assert.False(t, ok, "sin ventas el resultado es N/A")
}

func TestROI(t *testing.T) {
	assert.True(t, d("50").Equal(metrics.ROI(d("150"), d("100"))))
	assert.True(t, metrics.ROI(d("150"), decimal.Zero).IsZero())
}

func TestMarginBand(t *testing.T) {
	assert.Equal(t, metrics.BandNegative, metrics.MarginBand(d("-0.01")))
	assert.Equal(t, metrics.BandLow, metrics.MarginBand(d("0")))
	assert.Equal(t, metrics.BandMedium, metrics.MarginBand(d("20")))
	assert.Equal(t, metrics.BandHigh, metrics.MarginBand(d("50")))
}

func TestSafeDiv(t *testing.T) {
	assert.True(t, d("-1").Equal(metrics.SafeDiv(d("5"), decimal.Zero, d("-1"))))
	assert.True(t, d("2.5").Equal(metrics.SafeDiv(d("5"), d("2"), decimal.Zero)))
}
