package metrics

import (
	"time"

	"github.com/shopspring/decimal"
)

// Segmentos de clientes.
const (
	SegmentVIP         = "VIP"
	SegmentLoyal       = "Loyal"
	SegmentRegular     = "Regular"
	SegmentAtRisk      = "At-risk"
	SegmentInactive    = "Inactive"
	SegmentNoPurchases = "No purchases"
)

// Segments todos los segmentos en orden de mayor a menor valor.
var Segments = []string{
	SegmentVIP, SegmentLoyal, SegmentRegular, SegmentAtRisk, SegmentInactive, SegmentNoPurchases,
}

var (
	monetaryHigh = decimal.NewFromInt(1000)
	monetaryMid  = decimal.NewFromInt(500)
	monetaryLow  = decimal.NewFromInt(100)
)

// Loyalty puntaje de fidelidad desglosado por componente.
type Loyalty struct {
	Score         int
	Recency       int // 0–30
	Frequency     int // 5–35
	Monetary      int // 5–35
	DaysSinceLast int
	Segment       string
}

// ScoreLoyalty calcula recencia + frecuencia + monto y el segmento resultante.
func ScoreLoyalty(now time.Time, purchases int, spent decimal.Decimal, lastPurchase time.Time) Loyalty {
	if purchases == 0 {
		return Loyalty{Segment: SegmentNoPurchases}
	}

	l := Loyalty{DaysSinceLast: int(now.Sub(lastPurchase) / day)}

	switch {
	case l.DaysSinceLast <= 30:
		l.Recency = 30
	case l.DaysSinceLast <= 60:
		l.Recency = 20
	case l.DaysSinceLast <= 90:
		l.Recency = 10
	}

	switch {
	case purchases >= 10:
		l.Frequency = 35
	case purchases >= 5:
		l.Frequency = 25
	case purchases >= 2:
		l.Frequency = 15
	default:
		l.Frequency = 5
	}

	switch {
	case spent.GreaterThanOrEqual(monetaryHigh):
		l.Monetary = 35
	case spent.GreaterThanOrEqual(monetaryMid):
		l.Monetary = 25
	case spent.GreaterThanOrEqual(monetaryLow):
		l.Monetary = 15
	default:
		l.Monetary = 5
	}

	l.Score = l.Recency + l.Frequency + l.Monetary
	l.Segment = SegmentFor(l.Score)
	return l
}

// SegmentFor segmento según el puntaje.
func SegmentFor(score int) string {
	switch {
	case score >= 80:
		return SegmentVIP
	case score >= 60:
		return SegmentLoyal
	case score >= 40:
		return SegmentRegular
	case score >= 20:
		return SegmentAtRisk
	default:
		return SegmentInactive
	}
}
