package metrics

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DefaultMinSupport soporte mínimo por defecto (1 % de las transacciones).
var DefaultMinSupport = decimal.NewFromFloat(0.01)

// ProductPair par de productos comprados juntos. A < B.
// Support y las confianzas son fracciones en [0, 1].
type ProductPair struct {
	A, B         string
	Count        int
	Support      decimal.Decimal
	ConfidenceAB decimal.Decimal // P(B | A)
	ConfidenceBA decimal.Decimal // P(A | B)
}

// CrossSell calcula soporte y confianza de cada par no ordenado en las transacciones
// con dos o más productos distintos. Devuelve los pares con soporte >= minSupport,
// ordenados por frecuencia descendente, y el total de transacciones consideradas.
func CrossSell(baskets [][]string, minSupport decimal.Decimal) ([]ProductPair, int) {
	type key struct{ a, b string }
	pairCount := map[key]int{}
	itemCount := map[string]int{}
	transactions := 0

	for _, basket := range baskets {
		items := distinct(basket)
		if len(items) < 2 {
			continue
		}
		transactions++
		for i, a := range items {
			itemCount[a]++
			for _, b := range items[i+1:] {
				pairCount[key{a, b}]++
			}
		}
	}
	if transactions == 0 {
		return []ProductPair{}, 0
	}

	total := decimal.NewFromInt(int64(transactions))
	out := make([]ProductPair, 0, len(pairCount))
	for k, n := range pairCount {
		count := decimal.NewFromInt(int64(n))
		support := count.Div(total)
		if support.LessThan(minSupport) {
			continue
		}
		out = append(out, ProductPair{
			A:            k.a,
			B:            k.b,
			Count:        n,
			Support:      support,
			ConfidenceAB: SafeDiv(count, decimal.NewFromInt(int64(itemCount[k.a])), decimal.Zero),
			ConfidenceBA: SafeDiv(count, decimal.NewFromInt(int64(itemCount[k.b])), decimal.Zero),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out, transactions
}

// distinct devuelve los ids sin repetir y ordenados.
func distinct(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
