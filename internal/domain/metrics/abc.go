package metrics

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Clases ABC.
const (
	ClassA = "A"
	ClassB = "B"
	ClassC = "C"
)

var (
	abcLimitA = decimal.NewFromInt(80)
	abcLimitB = decimal.NewFromInt(95)
)

// ABCInput ingreso de un elemento a clasificar.
type ABCInput struct {
	Key     string
	Revenue decimal.Decimal
}

// ABCEntry elemento clasificado. SharePct y CumulativePct van sin redondear.
type ABCEntry struct {
	Key           string
	Revenue       decimal.Decimal
	SharePct      decimal.Decimal
	CumulativePct decimal.Decimal
	Class         string
}

// ClassifyABC ordena por ingreso descendente (empates por Key) y asigna A si el acumulado
// es <= 80 %, B si es <= 95 % y C en el resto. Sin ingresos, todo cae en C.
func ClassifyABC(items []ABCInput) []ABCEntry {
	sorted := make([]ABCInput, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		if c := sorted[i].Revenue.Cmp(sorted[j].Revenue); c != 0 {
			return c > 0
		}
		return sorted[i].Key < sorted[j].Key
	})

	var total decimal.Decimal
	for _, it := range sorted {
		total = total.Add(it.Revenue)
	}

	out := make([]ABCEntry, 0, len(sorted))
	var cum decimal.Decimal
	for _, it := range sorted {
		cum = cum.Add(it.Revenue)
		e := ABCEntry{
			Key:           it.Key,
			Revenue:       it.Revenue,
			SharePct:      Percent(it.Revenue, total),
			CumulativePct: Percent(cum, total),
			Class:         ClassC,
		}
		if total.IsPositive() {
			switch {
			case e.CumulativePct.LessThanOrEqual(abcLimitA):
				e.Class = ClassA
			case e.CumulativePct.LessThanOrEqual(abcLimitB):
				e.Class = ClassB
			}
		}
		out = append(out, e)
	}
	return out
}
